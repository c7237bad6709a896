package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aryabanda/Hospital-management-system/internal/api/http/handler"
	"github.com/aryabanda/Hospital-management-system/pkg/authorize"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	ph *handler.PatientHandler,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := api.Group("/patients", authRequired)

	patients.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionList), ph.List)

	me := patients.Group("/me")
	me.Get("/", ph.GetMe)
	me.Put("/", ph.UpsertMe)
	me.Get("/dashboard", ph.Dashboard)

	p := patients.Group("/:id")
	p.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionRead), ph.GetByID)
	p.Get("/treatments", requirePerm(authorize.ResourceTreatment, authorize.ActionRead), ah.Treatments)
	p.Get("/history", requirePerm(authorize.ResourceTreatment, authorize.ActionRead), ah.History)
}
