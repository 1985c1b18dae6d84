package patients

import (
	"context"

	"atenda-service/internal/app/models"
	"atenda-service/internal/pkg/dto/requests"
)

type PatientRepository interface {
	Create(ctx context.Context, patient models.Patient) models.Patient
	FindByID(ctx context.Context, id int) (models.Patient, bool)
	FindByUserID(ctx context.Context, userID int) []models.Patient
	Update(ctx context.Context, id int, patch *requests.UpdatePatient) (models.Patient, bool)
}

type PatientUsecase interface {
	ListBySession(ctx context.Context, session *models.Session) ([]models.Patient, error)
	GetByID(ctx context.Context, session *models.Session, patientID int) (*models.Patient, error)
	Create(ctx context.Context, session *models.Session, request *requests.CreatePatient) (*models.Patient, error)
	Update(ctx context.Context, session *models.Session, patientID int, request *requests.UpdatePatient) (*models.Patient, error)
}
