package database

import "atenda-service/internal/app/models"

// Store groups the five entity collections. It is constructed once in main
// and handed to the repositories; there is no package-level instance.
type Store struct {
	Users             *Collection[models.User]
	Patients          *Collection[models.Patient]
	Appointments      *Collection[models.Appointment]
	MedicalRecords    *Collection[models.MedicalRecord]
	WhatsappTemplates *Collection[models.WhatsappTemplate]
}

func NewStore() *Store {
	return &Store{
		Users:             NewCollection[models.User](),
		Patients:          NewCollection[models.Patient](),
		Appointments:      NewCollection[models.Appointment](),
		MedicalRecords:    NewCollection[models.MedicalRecord](),
		WhatsappTemplates: NewCollection[models.WhatsappTemplate](),
	}
}
