package medicalrecords

import (
	"context"
	"time"

	"atenda-service/internal/app/models"
	"atenda-service/internal/app/services/core/patients"
	"atenda-service/internal/pkg/constvars"
	"atenda-service/internal/pkg/dto/requests"
	"atenda-service/internal/pkg/exceptions"
)

type medicalRecordUsecase struct {
	MedicalRecordRepository MedicalRecordRepository
	PatientRepository       patients.PatientRepository
}

func NewMedicalRecordUsecase(
	medicalRecordRepository MedicalRecordRepository,
	patientRepository patients.PatientRepository,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		MedicalRecordRepository: medicalRecordRepository,
		PatientRepository:       patientRepository,
	}
}

func (uc *medicalRecordUsecase) ListByPatient(ctx context.Context, session *models.Session, patientID int) ([]models.MedicalRecord, error) {
	if err := uc.authorizePatient(ctx, session, patientID); err != nil {
		return nil, err
	}
	return uc.MedicalRecordRepository.FindByPatientID(ctx, patientID), nil
}

func (uc *medicalRecordUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateMedicalRecord) (*models.MedicalRecord, error) {
	if err := uc.authorizePatient(ctx, session, request.PatientID); err != nil {
		return nil, err
	}

	now := time.Now()
	recordDate := now
	if request.Date != "" {
		// Validated as date_ymd upstream; interpreted in local time.
		parsed, err := time.ParseInLocation(constvars.AppointmentDateLayout, request.Date, time.Local)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		recordDate = parsed
	}

	record := uc.MedicalRecordRepository.Create(ctx, models.MedicalRecord{
		PatientID:  request.PatientID,
		UserID:     session.UserID,
		Date:       recordDate,
		RecordType: request.RecordType,
		Content:    request.Content,
		CreatedAt:  now,
	})

	return &record, nil
}

func (uc *medicalRecordUsecase) authorizePatient(ctx context.Context, session *models.Session, patientID int) error {
	patient, ok := uc.PatientRepository.FindByID(ctx, patientID)
	if !ok {
		return exceptions.ErrResourceNotFound("patient")
	}
	if !patient.OwnedBy(session.UserID) {
		return exceptions.ErrResourceForbidden("patient")
	}
	return nil
}
