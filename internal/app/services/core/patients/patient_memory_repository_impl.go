package patients

import (
	"context"
	"time"

	"atenda-service/internal/app/drivers/database"
	"atenda-service/internal/app/models"
	"atenda-service/internal/pkg/dto/requests"
)

type patientMemoryRepository struct {
	collection *database.Collection[models.Patient]
}

func NewPatientMemoryRepository(collection *database.Collection[models.Patient]) PatientRepository {
	return &patientMemoryRepository{collection: collection}
}

func (r *patientMemoryRepository) Create(ctx context.Context, patient models.Patient) models.Patient {
	return r.collection.Insert(func(id int) models.Patient {
		patient.ID = id
		return patient
	})
}

func (r *patientMemoryRepository) FindByID(ctx context.Context, id int) (models.Patient, bool) {
	return r.collection.Get(id)
}

func (r *patientMemoryRepository) FindByUserID(ctx context.Context, userID int) []models.Patient {
	return r.collection.Where(func(patient models.Patient) bool {
		return patient.UserID == userID
	})
}

func (r *patientMemoryRepository) Update(ctx context.Context, id int, patch *requests.UpdatePatient) (models.Patient, bool) {
	return r.collection.Update(id, func(patient models.Patient) models.Patient {
		if patch.Name != nil {
			patient.Name = *patch.Name
		}
		if patch.Email != nil {
			patient.Email = *patch.Email
		}
		if patch.Phone != nil {
			patient.Phone = *patch.Phone
		}
		if patch.BirthDate != nil {
			patient.BirthDate = *patch.BirthDate
		}
		if patch.Profession != nil {
			patient.Profession = *patch.Profession
		}
		if patch.Status != nil {
			patient.Status = *patch.Status
		}
		patient.UpdatedAt = time.Now()
		return patient
	})
}
