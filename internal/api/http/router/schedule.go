package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aryabanda/Hospital-management-system/internal/api/http/handler"
	"github.com/aryabanda/Hospital-management-system/pkg/authorize"
)

func (r *Router) registerScheduleRoutes(
	api fiber.Router,
	sh *handler.ScheduleHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	schedule := api.Group("/schedule", authRequired)

	schedule.Get("/window", sh.Window)
	schedule.Put("/availability", requirePerm(authorize.ResourceAvailability, authorize.ActionManage), sh.SetAvailability)
}
