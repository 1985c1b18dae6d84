package routers

import (
	"atenda-service/internal/app/delivery/http/controllers"
	"atenda-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMedicalRecordRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicalRecordController *controllers.MedicalRecordController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", medicalRecordController.CreateMedicalRecord)
}
