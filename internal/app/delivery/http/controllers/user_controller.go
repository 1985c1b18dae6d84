package controllers

import (
	"context"
	"net/http"
	"time"

	"atenda-service/internal/app/models"
	"atenda-service/internal/app/services/core/users"
	"atenda-service/internal/pkg/constvars"
	"atenda-service/internal/pkg/exceptions"
	"atenda-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type UserController struct {
	Log         *zap.Logger
	UserUsecase users.UserUsecase
}

func NewUserController(logger *zap.Logger, userUsecase users.UserUsecase) *UserController {
	return &UserController{
		Log:         logger,
		UserUsecase: userUsecase,
	}
}

func (ctrl *UserController) GetProfileBySession(w http.ResponseWriter, r *http.Request) {
	session := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.UserUsecase.GetProfileBySession(ctx, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileGetSuccess, result)
}
