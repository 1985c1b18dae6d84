package routers

import (
	"fmt"
	"time"

	"atenda-service/internal/app/config"
	"atenda-service/internal/app/delivery/http/controllers"
	"atenda-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	patientController *controllers.PatientController,
	appointmentController *controllers.AppointmentController,
	medicalRecordController *controllers.MedicalRecordController,
	templateController *controllers.WhatsappTemplateController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging(logger))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		attachAuthRoutes(r, middlewares, authController)
		attachUserRoutes(r, middlewares, userController)

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, patientController, appointmentController, medicalRecordController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})

		r.Route("/medical-records", func(r chi.Router) {
			attachMedicalRecordRoutes(r, middlewares, medicalRecordController)
		})

		r.Route("/whatsapp-templates", func(r chi.Router) {
			attachWhatsappTemplateRoutes(r, middlewares, templateController)
		})
	})
}
