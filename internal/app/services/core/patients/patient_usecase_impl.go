package patients

import (
	"context"
	"time"

	"atenda-service/internal/app/models"
	"atenda-service/internal/pkg/constvars"
	"atenda-service/internal/pkg/dto/requests"
	"atenda-service/internal/pkg/exceptions"
)

type patientUsecase struct {
	PatientRepository PatientRepository
}

func NewPatientUsecase(patientRepository PatientRepository) PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
	}
}

func (uc *patientUsecase) ListBySession(ctx context.Context, session *models.Session) ([]models.Patient, error) {
	return uc.PatientRepository.FindByUserID(ctx, session.UserID), nil
}

func (uc *patientUsecase) GetByID(ctx context.Context, session *models.Session, patientID int) (*models.Patient, error) {
	patient, ok := uc.PatientRepository.FindByID(ctx, patientID)
	if !ok {
		return nil, exceptions.ErrResourceNotFound("patient")
	}
	if !patient.OwnedBy(session.UserID) {
		return nil, exceptions.ErrResourceForbidden("patient")
	}
	return &patient, nil
}

func (uc *patientUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreatePatient) (*models.Patient, error) {
	status := request.Status
	if status == "" {
		status = constvars.StatusActive
	}

	now := time.Now()
	// The owner is always the session's practitioner; any userId supplied
	// by the client is ignored by shape.
	patient := uc.PatientRepository.Create(ctx, models.Patient{
		UserID:     session.UserID,
		Name:       request.Name,
		Email:      request.Email,
		Phone:      request.Phone,
		BirthDate:  request.BirthDate,
		Profession: request.Profession,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	})

	return &patient, nil
}

func (uc *patientUsecase) Update(ctx context.Context, session *models.Session, patientID int, request *requests.UpdatePatient) (*models.Patient, error) {
	existing, ok := uc.PatientRepository.FindByID(ctx, patientID)
	if !ok {
		return nil, exceptions.ErrResourceNotFound("patient")
	}
	if !existing.OwnedBy(session.UserID) {
		return nil, exceptions.ErrResourceForbidden("patient")
	}

	patient, _ := uc.PatientRepository.Update(ctx, patientID, request)
	return &patient, nil
}
