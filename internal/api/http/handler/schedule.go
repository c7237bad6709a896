package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aryabanda/Hospital-management-system/internal/service/scheduling"
	pasetotoken "github.com/aryabanda/Hospital-management-system/pkg/paseto"
)

type ScheduleHandler struct {
	svc scheduling.Service
}

func NewScheduleHandler(svc scheduling.Service) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func mapScheduleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scheduling.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, scheduling.ErrInvalidDate):
		return badRequest(c, err.Error())
	case errors.Is(err, scheduling.ErrDoctorNotBookable):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /schedule/window
func (h *ScheduleHandler) Window(c fiber.Ctx) error {
	return ok(c, h.svc.Window())
}

// GET /doctors/:id/availability
func (h *ScheduleHandler) GetAvailability(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	days, err := h.svc.GetAvailability(c.Context(), doctorID)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, days)
}

// PUT /schedule/availability (doctor sets their own days)
func (h *ScheduleHandler) SetAvailability(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Days map[string]bool `json:"days"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Days == nil {
		return badRequest(c, "days is required")
	}

	if err := h.svc.SetAvailability(c.Context(), claims.UserID, scheduling.SetAvailabilityRequest{
		Days: body.Days,
	}); err != nil {
		return mapScheduleError(c, err)
	}

	return noContent(c)
}

// GET /doctors/:id/slots
func (h *ScheduleHandler) OpenSlots(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var q struct {
		Date string `query:"date"`
	}
	_ = c.Bind().Query(&q)

	if q.Date != "" {
		slots, err := h.svc.OpenSlotsForDate(c.Context(), doctorID, q.Date)
		if err != nil {
			return mapScheduleError(c, err)
		}
		return ok(c, slots)
	}

	days, err := h.svc.OpenSlots(c.Context(), doctorID)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, days)
}
