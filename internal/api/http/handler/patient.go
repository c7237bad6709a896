package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aryabanda/Hospital-management-system/internal/service/patient"
	pasetotoken "github.com/aryabanda/Hospital-management-system/pkg/paseto"
	"github.com/aryabanda/Hospital-management-system/pkg/util/slottime"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrNotFound),
		errors.Is(err, patient.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrNotAPatient):
		return forbidden(c)
	case errors.Is(err, patient.ErrBadContact):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /patients/me (patient)
func (h *PatientHandler) GetMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	profile, err := h.svc.GetProfile(c.Context(), claims.UserID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, profile)
}

// PUT /patients/me (patient)
func (h *PatientHandler) UpsertMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		DateOfBirth *string `json:"date_of_birth"`
		Gender      *string `json:"gender"`
		Contact     *string `json:"contact"`
		Address     *string `json:"address"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := patient.UpsertProfileRequest{
		Gender:  body.Gender,
		Contact: body.Contact,
		Address: body.Address,
	}
	if body.DateOfBirth != nil {
		dob, err := slottime.ParseDate(*body.DateOfBirth)
		if err != nil {
			return badRequest(c, "invalid date_of_birth")
		}
		if dob.After(time.Now()) {
			return badRequest(c, "date_of_birth is in the future")
		}
		req.DateOfBirth = &dob
	}

	profile, err := h.svc.UpsertProfile(c.Context(), claims.UserID, req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, profile)
}

// GET /patients/me/dashboard (patient)
func (h *PatientHandler) Dashboard(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	dash, err := h.svc.GetDashboard(c.Context(), claims.UserID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, dash)
}

// GET /patients (admin, doctor)
func (h *PatientHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	patients, err := h.svc.List(c.Context(), q.Page, q.PerPage)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, patients)
}

// GET /patients/:id (admin, doctor)
func (h *PatientHandler) GetByID(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	profile, err := h.svc.GetByID(c.Context(), patientID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, profile)
}
