package config

type (
	InternalConfig struct {
		App App
		JWT JWT
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env                            string
		Port                           string
		Timezone                       string
		EndpointPrefix                 string
		MaxRequests                    int
		ShutdownTimeoutInSeconds       int
		RequestTimeoutInSeconds        int
		LoginSessionExpiredTimeInHours int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
