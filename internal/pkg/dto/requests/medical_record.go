package requests

type CreateMedicalRecord struct {
	PatientID  int    `json:"patientId" validate:"required,gt=0"`
	Date       string `json:"date" validate:"omitempty,date_ymd"`
	RecordType string `json:"recordType" validate:"required,max=60"`
	Content    string `json:"content" validate:"required"`
}
