package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aryabanda/Hospital-management-system/internal/api/http/handler"
	"github.com/aryabanda/Hospital-management-system/pkg/authorize"
)

func (r *Router) registerDoctorRoutes(
	api fiber.Router,
	dh *handler.DoctorHandler,
	sh *handler.ScheduleHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	doctors := api.Group("/doctors", authRequired)

	doctors.Get("/", requirePerm(authorize.ResourceDoctor, authorize.ActionList), dh.List)
	doctors.Post("/", requirePerm(authorize.ResourceDoctor, authorize.ActionManage), dh.Create)

	me := doctors.Group("/me")
	me.Get("/", dh.GetMe)
	me.Put("/profile", requirePerm(authorize.ResourceAvailability, authorize.ActionManage), dh.UpsertProfile)
	me.Get("/patients", requirePerm(authorize.ResourcePatient, authorize.ActionList), dh.MyPatients)

	d := doctors.Group("/:id")
	d.Get("/", requirePerm(authorize.ResourceDoctor, authorize.ActionRead), dh.GetByID)
	d.Get("/availability", requirePerm(authorize.ResourceAvailability, authorize.ActionRead), sh.GetAvailability)
	d.Get("/slots", requirePerm(authorize.ResourceAvailability, authorize.ActionRead), sh.OpenSlots)
	d.Patch("/approve", requirePerm(authorize.ResourceDoctor, authorize.ActionApprove), dh.Approve)
	d.Patch("/block", requirePerm(authorize.ResourceDoctor, authorize.ActionBlock), dh.SetBlocked(true))
	d.Patch("/unblock", requirePerm(authorize.ResourceDoctor, authorize.ActionBlock), dh.SetBlocked(false))
}
