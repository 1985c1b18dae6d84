package routers

import (
	"atenda-service/internal/app/delivery/http/controllers"
	"atenda-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	patientController *controllers.PatientController,
	appointmentController *controllers.AppointmentController,
	medicalRecordController *controllers.MedicalRecordController,
) {
	router.Use(middlewares.Authenticate)

	router.Get("/", patientController.ListPatients)
	router.Post("/", patientController.CreatePatient)
	router.Get("/{patientID}", patientController.GetPatient)
	router.Put("/{patientID}", patientController.UpdatePatient)
	router.Get("/{patientID}/appointments", appointmentController.ListAppointmentsByPatient)
	router.Get("/{patientID}/medical-records", medicalRecordController.ListMedicalRecordsByPatient)
}
