package constvars

const (
	MIMEApplicationJSON = "application/json"
)

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-Id"
)

const (
	StatusOK      = 200
	StatusCreated = 201

	StatusBadRequest     = 400
	StatusUnauthorized   = 401
	StatusForbidden      = 403
	StatusNotFound       = 404
	StatusRequestTimeout = 408

	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)

const (
	URLParamPatientID     = "patientID"
	URLParamAppointmentID = "appointmentID"
	URLParamTemplateID    = "templateID"
	URLParamDate          = "date"
)
