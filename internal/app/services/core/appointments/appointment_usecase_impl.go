package appointments

import (
	"context"
	"time"

	"atenda-service/internal/app/models"
	"atenda-service/internal/app/services/core/patients"
	"atenda-service/internal/pkg/constvars"
	"atenda-service/internal/pkg/dto/requests"
	"atenda-service/internal/pkg/exceptions"
)

type appointmentUsecase struct {
	AppointmentRepository AppointmentRepository
	PatientRepository     patients.PatientRepository
}

func NewAppointmentUsecase(
	appointmentRepository AppointmentRepository,
	patientRepository patients.PatientRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		PatientRepository:     patientRepository,
	}
}

func (uc *appointmentUsecase) ListBySession(ctx context.Context, session *models.Session) ([]models.Appointment, error) {
	return uc.AppointmentRepository.FindByUserID(ctx, session.UserID), nil
}

func (uc *appointmentUsecase) ListByDate(ctx context.Context, session *models.Session, date string) ([]models.Appointment, error) {
	if _, err := time.Parse(constvars.AppointmentDateLayout, date); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamDate)
	}
	return uc.AppointmentRepository.FindByUserIDAndDate(ctx, session.UserID, date), nil
}

func (uc *appointmentUsecase) ListByPatient(ctx context.Context, session *models.Session, patientID int) ([]models.Appointment, error) {
	if err := uc.authorizePatient(ctx, session, patientID); err != nil {
		return nil, err
	}
	return uc.AppointmentRepository.FindByPatientID(ctx, patientID), nil
}

func (uc *appointmentUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*models.Appointment, error) {
	// The appointment must reference a patient owned by the same
	// practitioner; the check happens before anything is stored.
	if err := uc.authorizePatient(ctx, session, request.PatientID); err != nil {
		return nil, err
	}

	status := request.Status
	if status == "" {
		status = constvars.AppointmentStatusPending
	}

	now := time.Now()
	appointment := uc.AppointmentRepository.Create(ctx, models.Appointment{
		PatientID: request.PatientID,
		UserID:    session.UserID,
		Date:      request.Date,
		StartTime: request.StartTime,
		EndTime:   request.EndTime,
		Type:      request.Type,
		Status:    status,
		Notes:     request.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	})

	return &appointment, nil
}

func (uc *appointmentUsecase) Update(ctx context.Context, session *models.Session, appointmentID int, request *requests.UpdateAppointment) (*models.Appointment, error) {
	existing, ok := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if !ok {
		return nil, exceptions.ErrResourceNotFound("appointment")
	}
	if !existing.OwnedBy(session.UserID) {
		return nil, exceptions.ErrResourceForbidden("appointment")
	}

	appointment, _ := uc.AppointmentRepository.Update(ctx, appointmentID, request)
	return &appointment, nil
}

func (uc *appointmentUsecase) authorizePatient(ctx context.Context, session *models.Session, patientID int) error {
	patient, ok := uc.PatientRepository.FindByID(ctx, patientID)
	if !ok {
		return exceptions.ErrResourceNotFound("patient")
	}
	if !patient.OwnedBy(session.UserID) {
		return exceptions.ErrResourceForbidden("patient")
	}
	return nil
}
