package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aryabanda/Hospital-management-system/internal/service/doctor"
	pasetotoken "github.com/aryabanda/Hospital-management-system/pkg/paseto"
)

type DoctorHandler struct {
	svc doctor.Service
}

func NewDoctorHandler(svc doctor.Service) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

func mapDoctorError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, doctor.ErrNotFound),
		errors.Is(err, doctor.ErrUserNotFound),
		errors.Is(err, doctor.ErrDepartmentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, doctor.ErrEmailTaken):
		return conflict(c, err.Error())
	case errors.Is(err, doctor.ErrNotADoctor):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// POST /doctors (admin)
func (h *DoctorHandler) Create(c fiber.Ctx) error {
	var body struct {
		FirstName     string  `json:"first_name"`
		LastName      string  `json:"last_name"`
		Email         string  `json:"email"`
		Password      string  `json:"password"`
		DepartmentID  *string `json:"department_id"`
		Qualification *string `json:"qualification"`
		Experience    int     `json:"experience_years"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FirstName == "" || body.LastName == "" || body.Email == "" || body.Password == "" {
		return badRequest(c, "first_name, last_name, email and password are required")
	}

	req := doctor.CreateRequest{
		FirstName:     body.FirstName,
		LastName:      body.LastName,
		Email:         body.Email,
		Password:      body.Password,
		Qualification: body.Qualification,
		Experience:    body.Experience,
	}
	if body.DepartmentID != nil {
		id, err := uuid.Parse(*body.DepartmentID)
		if err != nil {
			return badRequest(c, "invalid department_id")
		}
		req.DepartmentID = &id
	}

	doc, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return created(c, doc)
}

// PATCH /doctors/:id/approve (admin)
func (h *DoctorHandler) Approve(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	if err := h.svc.Approve(c.Context(), doctorID); err != nil {
		return mapDoctorError(c, err)
	}

	return noContent(c)
}

// PATCH /doctors/:id/block and /doctors/:id/unblock (admin)
func (h *DoctorHandler) SetBlocked(blocked bool) fiber.Handler {
	return func(c fiber.Ctx) error {
		doctorID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return badRequest(c, "invalid doctor id")
		}

		if err := h.svc.SetBlocked(c.Context(), doctorID, blocked); err != nil {
			return mapDoctorError(c, err)
		}

		return noContent(c)
	}
}

// GET /doctors
func (h *DoctorHandler) List(c fiber.Ctx) error {
	var q struct {
		DepartmentID string `query:"department_id"`
		ApprovedOnly bool   `query:"approved_only"`
		Page         int    `query:"page"`
		PerPage      int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := doctor.ListRequest{
		ApprovedOnly: q.ApprovedOnly,
		Page:         q.Page,
		PerPage:      q.PerPage,
	}
	if q.DepartmentID != "" {
		id, err := uuid.Parse(q.DepartmentID)
		if err != nil {
			return badRequest(c, "invalid department_id")
		}
		req.DepartmentID = &id
	}

	doctors, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, doctors)
}

// GET /doctors/:id
func (h *DoctorHandler) GetByID(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	doc, err := h.svc.GetByID(c.Context(), doctorID)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, doc)
}

// GET /doctors/me (doctor)
func (h *DoctorHandler) GetMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	doc, err := h.svc.GetByUserID(c.Context(), claims.UserID)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, doc)
}

// PUT /doctors/me/profile (doctor)
func (h *DoctorHandler) UpsertProfile(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		DepartmentID  *string `json:"department_id"`
		Qualification *string `json:"qualification"`
		Experience    *int    `json:"experience_years"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := doctor.UpsertProfileRequest{
		Qualification: body.Qualification,
		Experience:    body.Experience,
	}
	if body.DepartmentID != nil {
		id, err := uuid.Parse(*body.DepartmentID)
		if err != nil {
			return badRequest(c, "invalid department_id")
		}
		req.DepartmentID = &id
	}

	profile, err := h.svc.UpsertProfile(c.Context(), claims.UserID, req)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, profile)
}

// GET /doctors/me/patients (doctor)
func (h *DoctorHandler) MyPatients(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	patients, err := h.svc.PatientsOfDoctor(c.Context(), claims.UserID)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, patients)
}
