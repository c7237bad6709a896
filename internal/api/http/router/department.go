package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aryabanda/Hospital-management-system/internal/api/http/handler"
	"github.com/aryabanda/Hospital-management-system/pkg/authorize"
)

func (r *Router) registerDepartmentRoutes(
	api fiber.Router,
	dh *handler.DepartmentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	depts := api.Group("/departments", authRequired)

	depts.Get("/", requirePerm(authorize.ResourceDepartment, authorize.ActionList), dh.List)
	depts.Post("/", requirePerm(authorize.ResourceDepartment, authorize.ActionManage), dh.Create)

	d := depts.Group("/:id")
	d.Get("/", requirePerm(authorize.ResourceDepartment, authorize.ActionRead), dh.GetByID)
	d.Patch("/", requirePerm(authorize.ResourceDepartment, authorize.ActionManage), dh.Update)
}
