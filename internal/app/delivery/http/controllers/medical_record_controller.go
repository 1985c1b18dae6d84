package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"atenda-service/internal/app/models"
	"atenda-service/internal/app/services/core/medicalrecords"
	"atenda-service/internal/pkg/constvars"
	"atenda-service/internal/pkg/dto/requests"
	"atenda-service/internal/pkg/exceptions"
	"atenda-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MedicalRecordController struct {
	Log                  *zap.Logger
	MedicalRecordUsecase medicalrecords.MedicalRecordUsecase
}

func NewMedicalRecordController(logger *zap.Logger, medicalRecordUsecase medicalrecords.MedicalRecordUsecase) *MedicalRecordController {
	return &MedicalRecordController{
		Log:                  logger,
		MedicalRecordUsecase: medicalRecordUsecase,
	}
}

func (ctrl *MedicalRecordController) ListMedicalRecordsByPatient(w http.ResponseWriter, r *http.Request) {
	session := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	patientID, err := strconv.Atoi(chi.URLParam(r, constvars.URLParamPatientID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamPatientID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MedicalRecordUsecase.ListByPatient(ctx, session, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicalRecordListSuccess, result)
}

func (ctrl *MedicalRecordController) CreateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateMedicalRecord)
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

	result, err := ctrl.MedicalRecordUsecase.Create(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MedicalRecordCreatedSuccess, result)
}
