package middlewares

import (
	"atenda-service/internal/app/config"
	"atenda-service/internal/app/services/shared/sessions"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log               *zap.Logger
	SessionRepository sessions.SessionRepository
	InternalConfig    *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, sessionRepository sessions.SessionRepository, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:               logger,
		SessionRepository: sessionRepository,
		InternalConfig:    internalConfig,
	}
}
