package medicalrecords

import (
	"context"

	"atenda-service/internal/app/drivers/database"
	"atenda-service/internal/app/models"
)

type medicalRecordMemoryRepository struct {
	collection *database.Collection[models.MedicalRecord]
}

func NewMedicalRecordMemoryRepository(collection *database.Collection[models.MedicalRecord]) MedicalRecordRepository {
	return &medicalRecordMemoryRepository{collection: collection}
}

func (r *medicalRecordMemoryRepository) Create(ctx context.Context, record models.MedicalRecord) models.MedicalRecord {
	return r.collection.Insert(func(id int) models.MedicalRecord {
		record.ID = id
		return record
	})
}

func (r *medicalRecordMemoryRepository) FindByID(ctx context.Context, id int) (models.MedicalRecord, bool) {
	return r.collection.Get(id)
}

func (r *medicalRecordMemoryRepository) FindByPatientID(ctx context.Context, patientID int) []models.MedicalRecord {
	return r.collection.Where(func(record models.MedicalRecord) bool {
		return record.PatientID == patientID
	})
}
