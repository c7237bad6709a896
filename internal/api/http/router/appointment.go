package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aryabanda/Hospital-management-system/internal/api/http/handler"
	"github.com/aryabanda/Hospital-management-system/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired)

	appts.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionBook), ah.Book)
	appts.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.List)
	appts.Get("/mine", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.ListMine)
	appts.Get("/assigned", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.ListAssigned)

	a := appts.Group("/:id")
	a.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.GetByID)
	a.Patch("/cancel", requirePerm(authorize.ResourceAppointment, authorize.ActionCancel), ah.Cancel)
	a.Patch("/reschedule", requirePerm(authorize.ResourceAppointment, authorize.ActionReschedule), ah.Reschedule)
	a.Patch("/complete", requirePerm(authorize.ResourceAppointment, authorize.ActionComplete), ah.Complete)
}
