package requests

type CreateAppointment struct {
	PatientID int    `json:"patientId" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required,date_ymd"`
	StartTime string `json:"startTime" validate:"required,time_hm"`
	EndTime   string `json:"endTime" validate:"required,time_hm"`
	Type      string `json:"type" validate:"required,max=60"`
	Status    string `json:"status" validate:"omitempty,oneof=confirmed pending canceled"`
	Notes     string `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateAppointment struct {
	Date      *string `json:"date" validate:"omitempty,date_ymd"`
	StartTime *string `json:"startTime" validate:"omitempty,time_hm"`
	EndTime   *string `json:"endTime" validate:"omitempty,time_hm"`
	Type      *string `json:"type" validate:"omitempty,max=60"`
	Status    *string `json:"status" validate:"omitempty,oneof=confirmed pending canceled"`
	Notes     *string `json:"notes" validate:"omitempty,max=2000"`
}
