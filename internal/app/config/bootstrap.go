package config

import (
	"atenda-service/internal/app/drivers/database"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Store          *database.Store
	Logger         *logrus.Logger
	ZapLogger      *zap.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
}
