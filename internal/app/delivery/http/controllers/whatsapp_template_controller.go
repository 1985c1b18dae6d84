package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"atenda-service/internal/app/models"
	"atenda-service/internal/app/services/core/whatsapptemplates"
	"atenda-service/internal/pkg/constvars"
	"atenda-service/internal/pkg/dto/requests"
	"atenda-service/internal/pkg/exceptions"
	"atenda-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WhatsappTemplateController struct {
	Log             *zap.Logger
	TemplateUsecase whatsapptemplates.WhatsappTemplateUsecase
}

func NewWhatsappTemplateController(logger *zap.Logger, templateUsecase whatsapptemplates.WhatsappTemplateUsecase) *WhatsappTemplateController {
	return &WhatsappTemplateController{
		Log:             logger,
		TemplateUsecase: templateUsecase,
	}
}

func (ctrl *WhatsappTemplateController) ListTemplates(w http.ResponseWriter, r *http.Request) {
	session := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.TemplateUsecase.ListBySession(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TemplateListSuccess, result)
}

func (ctrl *WhatsappTemplateController) GetTemplate(w http.ResponseWriter, r *http.Request) {
	session := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	templateID, err := strconv.Atoi(chi.URLParam(r, constvars.URLParamTemplateID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamTemplateID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.TemplateUsecase.GetByID(ctx, session, templateID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TemplateGetSuccess, result)
}

func (ctrl *WhatsappTemplateController) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateWhatsappTemplate)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.TemplateUsecase.Create(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.TemplateCreatedSuccess, result)
}

func (ctrl *WhatsappTemplateController) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	templateID, err := strconv.Atoi(chi.URLParam(r, constvars.URLParamTemplateID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamTemplateID))
		return
	}

	request := new(requests.UpdateWhatsappTemplate)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.TemplateUsecase.Update(ctx, session, templateID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TemplateUpdatedSuccess, result)
}
