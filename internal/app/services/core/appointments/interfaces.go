package appointments

import (
	"context"

	"atenda-service/internal/app/models"
	"atenda-service/internal/pkg/dto/requests"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment models.Appointment) models.Appointment
	FindByID(ctx context.Context, id int) (models.Appointment, bool)
	FindByUserID(ctx context.Context, userID int) []models.Appointment
	FindByPatientID(ctx context.Context, patientID int) []models.Appointment
	FindByUserIDAndDate(ctx context.Context, userID int, date string) []models.Appointment
	Update(ctx context.Context, id int, patch *requests.UpdateAppointment) (models.Appointment, bool)
}

type AppointmentUsecase interface {
	ListBySession(ctx context.Context, session *models.Session) ([]models.Appointment, error)
	ListByDate(ctx context.Context, session *models.Session, date string) ([]models.Appointment, error)
	ListByPatient(ctx context.Context, session *models.Session, patientID int) ([]models.Appointment, error)
	Create(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*models.Appointment, error)
	Update(ctx context.Context, session *models.Session, appointmentID int, request *requests.UpdateAppointment) (*models.Appointment, error)
}
