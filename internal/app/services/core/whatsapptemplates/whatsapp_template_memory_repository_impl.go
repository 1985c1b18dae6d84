package whatsapptemplates

import (
	"context"
	"time"

	"atenda-service/internal/app/drivers/database"
	"atenda-service/internal/app/models"
	"atenda-service/internal/pkg/dto/requests"
)

type whatsappTemplateMemoryRepository struct {
	collection *database.Collection[models.WhatsappTemplate]
}

func NewWhatsappTemplateMemoryRepository(collection *database.Collection[models.WhatsappTemplate]) WhatsappTemplateRepository {
	return &whatsappTemplateMemoryRepository{collection: collection}
}

func (r *whatsappTemplateMemoryRepository) Create(ctx context.Context, template models.WhatsappTemplate) models.WhatsappTemplate {
	return r.collection.Insert(func(id int) models.WhatsappTemplate {
		template.ID = id
		return template
	})
}

func (r *whatsappTemplateMemoryRepository) FindByID(ctx context.Context, id int) (models.WhatsappTemplate, bool) {
	return r.collection.Get(id)
}

func (r *whatsappTemplateMemoryRepository) FindByUserID(ctx context.Context, userID int) []models.WhatsappTemplate {
	return r.collection.Where(func(template models.WhatsappTemplate) bool {
		return template.UserID == userID
	})
}

func (r *whatsappTemplateMemoryRepository) Update(ctx context.Context, id int, patch *requests.UpdateWhatsappTemplate) (models.WhatsappTemplate, bool) {
	return r.collection.Update(id, func(template models.WhatsappTemplate) models.WhatsappTemplate {
		if patch.Name != nil {
			template.Name = *patch.Name
		}
		if patch.Message != nil {
			template.Message = *patch.Message
		}
		if patch.TimeBeforeAppointment != nil {
			template.TimeBeforeAppointment = *patch.TimeBeforeAppointment
		}
		if patch.Status != nil {
			template.Status = *patch.Status
		}
		if patch.RequestConfirmation != nil {
			template.RequestConfirmation = *patch.RequestConfirmation
		}
		if patch.SendTime != nil {
			template.SendTime = *patch.SendTime
		}
		template.UpdatedAt = time.Now()
		return template
	})
}
