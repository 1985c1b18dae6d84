package whatsapptemplates

import (
	"context"

	"atenda-service/internal/app/models"
	"atenda-service/internal/pkg/dto/requests"
)

type WhatsappTemplateRepository interface {
	Create(ctx context.Context, template models.WhatsappTemplate) models.WhatsappTemplate
	FindByID(ctx context.Context, id int) (models.WhatsappTemplate, bool)
	FindByUserID(ctx context.Context, userID int) []models.WhatsappTemplate
	Update(ctx context.Context, id int, patch *requests.UpdateWhatsappTemplate) (models.WhatsappTemplate, bool)
}

type WhatsappTemplateUsecase interface {
	ListBySession(ctx context.Context, session *models.Session) ([]models.WhatsappTemplate, error)
	GetByID(ctx context.Context, session *models.Session, templateID int) (*models.WhatsappTemplate, error)
	Create(ctx context.Context, session *models.Session, request *requests.CreateWhatsappTemplate) (*models.WhatsappTemplate, error)
	Update(ctx context.Context, session *models.Session, templateID int, request *requests.UpdateWhatsappTemplate) (*models.WhatsappTemplate, error)
}
