package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aryabanda/Hospital-management-system/internal/service/appointment"
	"github.com/aryabanda/Hospital-management-system/pkg/authorize"
	pasetotoken "github.com/aryabanda/Hospital-management-system/pkg/paseto"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func actorFromFiber(c fiber.Ctx) (appointment.Actor, bool) {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok {
		return appointment.Actor{}, false
	}
	return appointment.Actor{UserID: claims.UserID, Role: claims.Role}, true
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound),
		errors.Is(err, appointment.ErrDoctorNotFound),
		errors.Is(err, appointment.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidDate),
		errors.Is(err, appointment.ErrInvalidSlot),
		errors.Is(err, appointment.ErrDiagnosisRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, appointment.ErrSlotTaken),
		errors.Is(err, appointment.ErrDayUnavailable),
		errors.Is(err, appointment.ErrDoctorNotBookable),
		errors.Is(err, appointment.ErrNotCancellable),
		errors.Is(err, appointment.ErrNotReschedulable),
		errors.Is(err, appointment.ErrNotCompletable):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrNotOwner):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

func listRequestFromQuery(c fiber.Ctx) (appointment.ListRequest, error) {
	var q struct {
		DoctorID  string `query:"doctor_id"`
		PatientID string `query:"patient_id"`
		Status    string `query:"status"`
		From      string `query:"from"`
		To        string `query:"to"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.DoctorID != "" {
		id, err := uuid.Parse(q.DoctorID)
		if err != nil {
			return req, errors.New("invalid doctor_id")
		}
		req.DoctorID = &id
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return req, errors.New("invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.From != "" {
		req.From = &q.From
	}
	if q.To != "" {
		req.To = &q.To
	}
	return req, nil
}

// POST /appointments
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	actor, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		DoctorID string  `json:"doctor_id"`
		Date     string  `json:"date"`
		Time     string  `json:"time"`
		Reason   *string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.DoctorID == "" || body.Date == "" || body.Time == "" {
		return badRequest(c, "doctor_id, date and time are required")
	}

	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}

	appt, err := h.svc.Book(c.Context(), actor, appointment.BookRequest{
		DoctorID: doctorID,
		Date:     body.Date,
		Time:     body.Time,
		Reason:   body.Reason,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

// PATCH /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	actor, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Cancel(c.Context(), actor, apptID); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}

// PATCH /appointments/:id/reschedule
func (h *AppointmentHandler) Reschedule(c fiber.Ctx) error {
	actor, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Date == "" || body.Time == "" {
		return badRequest(c, "date and time are required")
	}

	appt, err := h.svc.Reschedule(c.Context(), actor, apptID, appointment.RescheduleRequest{
		Date: body.Date,
		Time: body.Time,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// PATCH /appointments/:id/complete
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	actor, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Diagnosis    string  `json:"diagnosis"`
		Prescription *string `json:"prescription"`
		Notes        *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	treatment, err := h.svc.Complete(c.Context(), actor, apptID, appointment.TreatmentRequest{
		Diagnosis:    body.Diagnosis,
		Prescription: body.Prescription,
		Notes:        body.Notes,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, treatment)
}

// GET /appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	actor, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), actor, apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// GET /appointments (admin)
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	if claims.Role != authorize.UserRoleAdmin {
		return forbidden(c)
	}

	req, err := listRequestFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	appts, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appts)
}

// GET /appointments/mine (patient)
func (h *AppointmentHandler) ListMine(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	req, err := listRequestFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	appts, err := h.svc.ListForPatient(c.Context(), claims.UserID, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appts)
}

// GET /appointments/assigned (doctor)
func (h *AppointmentHandler) ListAssigned(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	req, err := listRequestFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	appts, err := h.svc.ListForDoctor(c.Context(), claims.UserID, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appts)
}

// GET /patients/:id/treatments
func (h *AppointmentHandler) Treatments(c fiber.Ctx) error {
	actor, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	treatments, err := h.svc.Treatments(c.Context(), actor, patientID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, treatments)
}

// GET /patients/:id/history
func (h *AppointmentHandler) History(c fiber.Ctx) error {
	actor, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	entries, err := h.svc.History(c.Context(), actor, patientID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, entries)
}
