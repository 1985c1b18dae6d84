package appointments

import (
	"context"
	"time"

	"atenda-service/internal/app/drivers/database"
	"atenda-service/internal/app/models"
	"atenda-service/internal/pkg/dto/requests"
)

type appointmentMemoryRepository struct {
	collection *database.Collection[models.Appointment]
}

func NewAppointmentMemoryRepository(collection *database.Collection[models.Appointment]) AppointmentRepository {
	return &appointmentMemoryRepository{collection: collection}
}

func (r *appointmentMemoryRepository) Create(ctx context.Context, appointment models.Appointment) models.Appointment {
	return r.collection.Insert(func(id int) models.Appointment {
		appointment.ID = id
		return appointment
	})
}

func (r *appointmentMemoryRepository) FindByID(ctx context.Context, id int) (models.Appointment, bool) {
	return r.collection.Get(id)
}

func (r *appointmentMemoryRepository) FindByUserID(ctx context.Context, userID int) []models.Appointment {
	return r.collection.Where(func(appointment models.Appointment) bool {
		return appointment.UserID == userID
	})
}

func (r *appointmentMemoryRepository) FindByPatientID(ctx context.Context, patientID int) []models.Appointment {
	return r.collection.Where(func(appointment models.Appointment) bool {
		return appointment.PatientID == patientID
	})
}

// Date matching is an exact string comparison on the stored calendar day.
func (r *appointmentMemoryRepository) FindByUserIDAndDate(ctx context.Context, userID int, date string) []models.Appointment {
	return r.collection.Where(func(appointment models.Appointment) bool {
		return appointment.UserID == userID && appointment.Date == date
	})
}

func (r *appointmentMemoryRepository) Update(ctx context.Context, id int, patch *requests.UpdateAppointment) (models.Appointment, bool) {
	return r.collection.Update(id, func(appointment models.Appointment) models.Appointment {
		if patch.Date != nil {
			appointment.Date = *patch.Date
		}
		if patch.StartTime != nil {
			appointment.StartTime = *patch.StartTime
		}
		if patch.EndTime != nil {
			appointment.EndTime = *patch.EndTime
		}
		if patch.Type != nil {
			appointment.Type = *patch.Type
		}
		if patch.Status != nil {
			appointment.Status = *patch.Status
		}
		if patch.Notes != nil {
			appointment.Notes = *patch.Notes
		}
		appointment.UpdatedAt = time.Now()
		return appointment
	})
}
