package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aryabanda/Hospital-management-system/internal/service/department"
)

type DepartmentHandler struct {
	svc department.Service
}

func NewDepartmentHandler(svc department.Service) *DepartmentHandler {
	return &DepartmentHandler{svc: svc}
}

func mapDepartmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, department.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, department.ErrNameTaken):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /departments
func (h *DepartmentHandler) List(c fiber.Ctx) error {
	depts, err := h.svc.List(c.Context())
	if err != nil {
		return mapDepartmentError(c, err)
	}

	return ok(c, depts)
}

// GET /departments/:id
func (h *DepartmentHandler) GetByID(c fiber.Ctx) error {
	deptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid department id")
	}

	detail, err := h.svc.GetByID(c.Context(), deptID)
	if err != nil {
		return mapDepartmentError(c, err)
	}

	return ok(c, detail)
}

// POST /departments (admin)
func (h *DepartmentHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	dept, err := h.svc.Create(c.Context(), department.CreateRequest{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		return mapDepartmentError(c, err)
	}

	return created(c, dept)
}

// PATCH /departments/:id (admin)
func (h *DepartmentHandler) Update(c fiber.Ctx) error {
	deptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid department id")
	}

	var body struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	dept, err := h.svc.Update(c.Context(), deptID, department.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		return mapDepartmentError(c, err)
	}

	return ok(c, dept)
}
