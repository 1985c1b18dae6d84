package whatsapptemplates

import (
	"context"
	"time"

	"atenda-service/internal/app/models"
	"atenda-service/internal/pkg/constvars"
	"atenda-service/internal/pkg/dto/requests"
	"atenda-service/internal/pkg/exceptions"
)

type whatsappTemplateUsecase struct {
	TemplateRepository WhatsappTemplateRepository
}

func NewWhatsappTemplateUsecase(templateRepository WhatsappTemplateRepository) WhatsappTemplateUsecase {
	return &whatsappTemplateUsecase{
		TemplateRepository: templateRepository,
	}
}

func (uc *whatsappTemplateUsecase) ListBySession(ctx context.Context, session *models.Session) ([]models.WhatsappTemplate, error) {
	return uc.TemplateRepository.FindByUserID(ctx, session.UserID), nil
}

func (uc *whatsappTemplateUsecase) GetByID(ctx context.Context, session *models.Session, templateID int) (*models.WhatsappTemplate, error) {
	template, ok := uc.TemplateRepository.FindByID(ctx, templateID)
	if !ok {
		return nil, exceptions.ErrResourceNotFound("whatsapp template")
	}
	if !template.OwnedBy(session.UserID) {
		return nil, exceptions.ErrResourceForbidden("whatsapp template")
	}
	return &template, nil
}

func (uc *whatsappTemplateUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateWhatsappTemplate) (*models.WhatsappTemplate, error) {
	status := request.Status
	if status == "" {
		status = constvars.StatusActive
	}

	now := time.Now()
	template := uc.TemplateRepository.Create(ctx, models.WhatsappTemplate{
		UserID:                session.UserID,
		Name:                  request.Name,
		Message:               request.Message,
		TimeBeforeAppointment: request.TimeBeforeAppointment,
		Status:                status,
		RequestConfirmation:   request.RequestConfirmation,
		SendTime:              request.SendTime,
		CreatedAt:             now,
		UpdatedAt:             now,
	})

	return &template, nil
}

func (uc *whatsappTemplateUsecase) Update(ctx context.Context, session *models.Session, templateID int, request *requests.UpdateWhatsappTemplate) (*models.WhatsappTemplate, error) {
	existing, ok := uc.TemplateRepository.FindByID(ctx, templateID)
	if !ok {
		return nil, exceptions.ErrResourceNotFound("whatsapp template")
	}
	if !existing.OwnedBy(session.UserID) {
		return nil, exceptions.ErrResourceForbidden("whatsapp template")
	}

	template, _ := uc.TemplateRepository.Update(ctx, templateID, request)
	return &template, nil
}
