package medicalrecords

import (
	"context"

	"atenda-service/internal/app/models"
	"atenda-service/internal/pkg/dto/requests"
)

// MedicalRecordRepository has no update or delete: the record history is
// append-only.
type MedicalRecordRepository interface {
	Create(ctx context.Context, record models.MedicalRecord) models.MedicalRecord
	FindByID(ctx context.Context, id int) (models.MedicalRecord, bool)
	FindByPatientID(ctx context.Context, patientID int) []models.MedicalRecord
}

type MedicalRecordUsecase interface {
	ListByPatient(ctx context.Context, session *models.Session, patientID int) ([]models.MedicalRecord, error)
	Create(ctx context.Context, session *models.Session, request *requests.CreateMedicalRecord) (*models.MedicalRecord, error)
}
