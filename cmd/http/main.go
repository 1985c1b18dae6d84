package main

import (
	"atenda-service/internal/app/config"
	"atenda-service/internal/app/delivery/http/controllers"
	"atenda-service/internal/app/delivery/http/middlewares"
	"atenda-service/internal/app/delivery/http/routers"
	"atenda-service/internal/app/drivers/database"
	"atenda-service/internal/app/drivers/logger"
	"atenda-service/internal/app/services/core/appointments"
	"atenda-service/internal/app/services/core/auth"
	"atenda-service/internal/app/services/core/medicalrecords"
	"atenda-service/internal/app/services/core/patients"
	"atenda-service/internal/app/services/core/users"
	"atenda-service/internal/app/services/core/whatsapptemplates"
	"atenda-service/internal/app/services/shared/sessions"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	store := database.NewStore()
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Store:          store,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Printf("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Sessions
	sessionRepository := sessions.NewMemorySessionRepository()

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, sessionRepository, bootstrap.InternalConfig)

	// User
	userRepository := users.NewUserMemoryRepository(bootstrap.Store.Users)
	userUsecase := users.NewUserUsecase(userRepository)
	userController := controllers.NewUserController(bootstrap.ZapLogger, userUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(userRepository, sessionRepository, bootstrap.InternalConfig)
	authController := controllers.NewAuthController(bootstrap.ZapLogger, authUsecase)

	// Patient
	patientRepository := patients.NewPatientMemoryRepository(bootstrap.Store.Patients)
	patientUsecase := patients.NewPatientUsecase(patientRepository)
	patientController := controllers.NewPatientController(bootstrap.ZapLogger, patientUsecase)

	// Appointment
	appointmentRepository := appointments.NewAppointmentMemoryRepository(bootstrap.Store.Appointments)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, patientRepository)
	appointmentController := controllers.NewAppointmentController(bootstrap.ZapLogger, appointmentUsecase)

	// Medical Record
	medicalRecordRepository := medicalrecords.NewMedicalRecordMemoryRepository(bootstrap.Store.MedicalRecords)
	medicalRecordUsecase := medicalrecords.NewMedicalRecordUsecase(medicalRecordRepository, patientRepository)
	medicalRecordController := controllers.NewMedicalRecordController(bootstrap.ZapLogger, medicalRecordUsecase)

	// Whatsapp Template
	templateRepository := whatsapptemplates.NewWhatsappTemplateMemoryRepository(bootstrap.Store.WhatsappTemplates)
	templateUsecase := whatsapptemplates.NewWhatsappTemplateUsecase(templateRepository)
	templateController := controllers.NewWhatsappTemplateController(bootstrap.ZapLogger, templateUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
		appMiddlewares,
		authController,
		userController,
		patientController,
		appointmentController,
		medicalRecordController,
		templateController,
	)
}
