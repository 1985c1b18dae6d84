package routers

import (
	"atenda-service/internal/app/delivery/http/controllers"
	"atenda-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachWhatsappTemplateRoutes(router chi.Router, middlewares *middlewares.Middlewares, templateController *controllers.WhatsappTemplateController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", templateController.ListTemplates)
	router.Post("/", templateController.CreateTemplate)
	router.Get("/{templateID}", templateController.GetTemplate)
	router.Put("/{templateID}", templateController.UpdateTemplate)
}
