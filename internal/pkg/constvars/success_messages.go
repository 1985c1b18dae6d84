package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	RegisterSuccess   = "practitioner registered successfully"
	LoginSuccess      = "successfully login"
	LogoutSuccess     = "successfully logout"
	ProfileGetSuccess = "get profile successfully"

	// Patient messages
	PatientCreatedSuccess = "patient created successfully"
	PatientUpdatedSuccess = "patient updated successfully"
	PatientGetSuccess     = "get patient successfully"
	PatientListSuccess    = "get patients successfully"

	// Appointment messages
	AppointmentCreatedSuccess = "appointment created successfully"
	AppointmentUpdatedSuccess = "appointment updated successfully"
	AppointmentListSuccess    = "get appointments successfully"

	// Medical record messages
	MedicalRecordCreatedSuccess = "medical record created successfully"
	MedicalRecordListSuccess    = "get medical records successfully"

	// WhatsApp template messages
	TemplateCreatedSuccess = "whatsapp template created successfully"
	TemplateUpdatedSuccess = "whatsapp template updated successfully"
	TemplateGetSuccess     = "get whatsapp template successfully"
	TemplateListSuccess    = "get whatsapp templates successfully"
)
