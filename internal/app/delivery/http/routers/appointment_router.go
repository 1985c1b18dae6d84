package routers

import (
	"atenda-service/internal/app/delivery/http/controllers"
	"atenda-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", appointmentController.ListAppointments)
	router.Get("/date/{date}", appointmentController.ListAppointmentsByDate)
	router.Post("/", appointmentController.CreateAppointment)
	router.Put("/{appointmentID}", appointmentController.UpdateAppointment)
}
