package appointment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/aryabanda/Hospital-management-system/config"
	"github.com/aryabanda/Hospital-management-system/internal/repo"
	entappt "github.com/aryabanda/Hospital-management-system/internal/repo/appointment"
	entdoc "github.com/aryabanda/Hospital-management-system/internal/repo/doctorprofile"
	entpat "github.com/aryabanda/Hospital-management-system/internal/repo/patientprofile"
	enttreat "github.com/aryabanda/Hospital-management-system/internal/repo/treatment"
	"github.com/aryabanda/Hospital-management-system/pkg/authorize"
	"github.com/aryabanda/Hospital-management-system/pkg/util/slottime"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Actor identifies who is performing an operation, taken from token claims.
type Actor struct {
	UserID uuid.UUID
	Role   string
}

func (a Actor) isAdmin() bool { return a.Role == authorize.UserRoleAdmin }

type BookRequest struct {
	DoctorID uuid.UUID
	Date     string // "2006-01-02"
	Time     string // "04:00 PM" or "16:00"
	Reason   *string
}

type RescheduleRequest struct {
	Date string
	Time string
}

type TreatmentRequest struct {
	Diagnosis    string
	Prescription *string
	Notes        *string
}

type ListRequest struct {
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
	Status    *string
	From      *string
	To        *string
	Page      int
	PerPage   int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Book(ctx context.Context, actor Actor, req BookRequest) (*repo.Appointment, error)
	Cancel(ctx context.Context, actor Actor, apptID uuid.UUID) error
	Reschedule(ctx context.Context, actor Actor, apptID uuid.UUID, req RescheduleRequest) (*repo.Appointment, error)
	Complete(ctx context.Context, actor Actor, apptID uuid.UUID, req TreatmentRequest) (*repo.Treatment, error)

	GetByID(ctx context.Context, actor Actor, apptID uuid.UUID) (*repo.Appointment, error)
	List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error)
	ListForDoctor(ctx context.Context, doctorUserID uuid.UUID, req ListRequest) ([]*repo.Appointment, error)
	ListForPatient(ctx context.Context, patientUserID uuid.UUID, req ListRequest) ([]*repo.Appointment, error)

	Treatments(ctx context.Context, actor Actor, patientID uuid.UUID) ([]*repo.Treatment, error)
	History(ctx context.Context, actor Actor, patientID uuid.UUID) ([]HistoryEntry, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db     *repo.Client
	nc     *nats.Conn
	window map[string]struct{}
}

func New(db *repo.Client, nc *nats.Conn, cfg config.SchedulingConfig) Service {
	window := make(map[string]struct{})
	for _, slot := range slottime.Window(cfg.StartHour, cfg.EndHour, cfg.SlotMinutes) {
		window[slot] = struct{}{}
	}
	return &appointmentService{db: db, nc: nc, window: window}
}

// normalizeSchedule validates and converts boundary date/time strings into
// the stored forms. The slot must fall on the configured grid.
func (s *appointmentService) normalizeSchedule(date, timeStr string) (time.Time, string, error) {
	day, err := slottime.ParseDate(date)
	if err != nil {
		return time.Time{}, "", ErrInvalidDate
	}

	slot, err := slottime.Parse(timeStr)
	if err != nil {
		return time.Time{}, "", ErrInvalidSlot
	}
	if _, ok := s.window[slot]; !ok {
		return time.Time{}, "", ErrInvalidSlot
	}
	return day, slot, nil
}

func (s *appointmentService) Book(ctx context.Context, actor Actor, req BookRequest) (*repo.Appointment, error) {
	day, slot, err := s.normalizeSchedule(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	patient, err := s.db.PatientProfile.Query().
		Where(entpat.UserID(actor.UserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient profile: %w", err)
	}

	doctor, err := s.db.DoctorProfile.Query().
		Where(entdoc.ID(req.DoctorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor profile: %w", err)
	}
	if !doctor.Approved || doctor.Blocked {
		return nil, ErrDoctorNotBookable
	}
	if !doctor.Availability[day.Format(slottime.LayoutDate)] {
		return nil, ErrDayUnavailable
	}

	appt, err := s.bookTx(ctx, doctor.ID, patient.ID, day, slot, req.Reason)
	if err != nil {
		return nil, err
	}

	s.publish("booked", appt.ID)
	return appt, nil
}

// bookTx claims the slot inside one transaction: a row lock over the
// conflicting key, an existence check, then the insert. The partial unique
// index on (doctor_id, date, slot) backs this up at the database level.
func (s *appointmentService) bookTx(ctx context.Context, doctorID, patientID uuid.UUID, day time.Time, slot string, reason *string) (*repo.Appointment, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	holders, err := tx.Appointment.Query().
		Where(
			entappt.DoctorID(doctorID),
			entappt.DateEQ(day),
			entappt.SlotEQ(slot),
		).
		ForUpdate().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}
	if err := claimErr(holderStatuses(holders)); err != nil {
		return nil, err
	}

	c := tx.Appointment.Create().
		SetDoctorID(doctorID).
		SetPatientID(patientID).
		SetDate(day).
		SetSlot(slot)
	if reason != nil {
		c = c.SetNillableReason(reason)
	}

	appt, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) Cancel(ctx context.Context, actor Actor, apptID uuid.UUID) error {
	appt, err := s.get(ctx, apptID)
	if err != nil {
		return err
	}

	// Ownership first: a foreign appointment is never "already cancelled".
	if err := s.authorizeActor(ctx, actor, appt); err != nil {
		return err
	}
	if err := cancelableErr(appt.Status); err != nil {
		return err
	}

	// Conditional write: a concurrent complete or cancel that lands first
	// leaves zero matched rows instead of overwriting a terminal status.
	n, err := s.db.Appointment.Update().
		Where(
			entappt.ID(appt.ID),
			entappt.StatusEQ(entappt.StatusBooked),
		).
		SetStatus(entappt.StatusCancelled).
		SetCancelledAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}
	if n == 0 {
		return ErrNotCancellable
	}

	s.publish("cancelled", appt.ID)
	return nil
}

func (s *appointmentService) Reschedule(ctx context.Context, actor Actor, apptID uuid.UUID, req RescheduleRequest) (*repo.Appointment, error) {
	day, slot, err := s.normalizeSchedule(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	appt, err := s.get(ctx, apptID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeActor(ctx, actor, appt); err != nil {
		return nil, err
	}
	if err := reschedulableErr(appt.Status); err != nil {
		return nil, err
	}

	// Moving to the same slot is a success no-op; no event is emitted.
	if appt.Date.Equal(day) && appt.Slot == slot {
		return appt, nil
	}

	doctor, err := s.db.DoctorProfile.Query().
		Where(entdoc.ID(appt.DoctorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor profile: %w", err)
	}
	if !doctor.Availability[day.Format(slottime.LayoutDate)] {
		return nil, ErrDayUnavailable
	}

	moved, err := s.rescheduleTx(ctx, appt, day, slot)
	if err != nil {
		return nil, err
	}

	s.publish("rescheduled", moved.ID)
	return moved, nil
}

func (s *appointmentService) rescheduleTx(ctx context.Context, appt *repo.Appointment, day time.Time, slot string) (*repo.Appointment, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Conflict check excludes the appointment being moved.
	holders, err := tx.Appointment.Query().
		Where(
			entappt.DoctorID(appt.DoctorID),
			entappt.DateEQ(day),
			entappt.SlotEQ(slot),
			entappt.IDNEQ(appt.ID),
		).
		ForUpdate().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}
	if err := claimErr(holderStatuses(holders)); err != nil {
		return nil, err
	}

	// The status predicate keeps a concurrently cancelled or completed
	// appointment where it is; zero matched rows means we lost that race.
	n, err := tx.Appointment.Update().
		Where(
			entappt.ID(appt.ID),
			entappt.StatusEQ(entappt.StatusBooked),
		).
		SetDate(day).
		SetSlot(slot).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("reschedule appointment: %w", err)
	}
	if n == 0 {
		return nil, ErrNotReschedulable
	}

	moved, err := tx.Appointment.Get(ctx, appt.ID)
	if err != nil {
		return nil, fmt.Errorf("reload appointment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reschedule: %w", err)
	}
	return moved, nil
}

func (s *appointmentService) Complete(ctx context.Context, actor Actor, apptID uuid.UUID, req TreatmentRequest) (*repo.Treatment, error) {
	if strings.TrimSpace(req.Diagnosis) == "" {
		return nil, ErrDiagnosisRequired
	}

	appt, err := s.get(ctx, apptID)
	if err != nil {
		return nil, err
	}

	// Only the assigned doctor may complete.
	doctor, err := s.db.DoctorProfile.Query().
		Where(entdoc.UserID(actor.UserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotOwner
		}
		return nil, fmt.Errorf("get doctor profile: %w", err)
	}
	if appt.DoctorID != doctor.ID {
		return nil, ErrNotOwner
	}
	if err := completableErr(appt.Status); err != nil {
		return nil, err
	}

	treatment, err := s.completeTx(ctx, appt, req)
	if err != nil {
		return nil, err
	}

	s.publish("completed", appt.ID)
	return treatment, nil
}

// completeTx flips the appointment to completed and writes the treatment
// record in the same transaction; neither outlives the other.
func (s *appointmentService) completeTx(ctx context.Context, appt *repo.Appointment, req TreatmentRequest) (*repo.Treatment, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := tx.Appointment.Update().
		Where(
			entappt.ID(appt.ID),
			entappt.StatusEQ(entappt.StatusBooked),
		).
		SetStatus(entappt.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete appointment: %w", err)
	}
	if n == 0 {
		return nil, ErrNotCompletable
	}

	c := tx.Treatment.Create().
		SetAppointmentID(appt.ID).
		SetDoctorID(appt.DoctorID).
		SetPatientID(appt.PatientID).
		SetDiagnosis(req.Diagnosis)
	if req.Prescription != nil {
		c = c.SetNillablePrescription(req.Prescription)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	treatment, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create treatment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit completion: %w", err)
	}
	return treatment, nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func (s *appointmentService) GetByID(ctx context.Context, actor Actor, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.get(ctx, apptID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeActor(ctx, actor, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *appointmentService) List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error) {
	return s.list(ctx, req)
}

func (s *appointmentService) ListForDoctor(ctx context.Context, doctorUserID uuid.UUID, req ListRequest) ([]*repo.Appointment, error) {
	doctor, err := s.db.DoctorProfile.Query().
		Where(entdoc.UserID(doctorUserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor profile: %w", err)
	}

	req.DoctorID = &doctor.ID
	req.PatientID = nil
	return s.list(ctx, req)
}

func (s *appointmentService) ListForPatient(ctx context.Context, patientUserID uuid.UUID, req ListRequest) ([]*repo.Appointment, error) {
	patient, err := s.db.PatientProfile.Query().
		Where(entpat.UserID(patientUserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient profile: %w", err)
	}

	req.PatientID = &patient.ID
	req.DoctorID = nil
	return s.list(ctx, req)
}

func (s *appointmentService) list(ctx context.Context, req ListRequest) ([]*repo.Appointment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query()

	if req.DoctorID != nil {
		q = q.Where(entappt.DoctorID(*req.DoctorID))
	}
	if req.PatientID != nil {
		q = q.Where(entappt.PatientID(*req.PatientID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.From != nil {
		from, err := slottime.ParseDate(*req.From)
		if err != nil {
			return nil, ErrInvalidDate
		}
		q = q.Where(entappt.DateGTE(from))
	}
	if req.To != nil {
		to, err := slottime.ParseDate(*req.To)
		if err != nil {
			return nil, ErrInvalidDate
		}
		q = q.Where(entappt.DateLT(to))
	}

	appts, err := q.
		Order(entappt.ByDate(sql.OrderDesc()), entappt.BySlot(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *appointmentService) Treatments(ctx context.Context, actor Actor, patientID uuid.UUID) ([]*repo.Treatment, error) {
	if err := s.authorizePatientScope(ctx, actor, patientID); err != nil {
		return nil, err
	}

	treatments, err := s.db.Treatment.Query().
		Where(enttreat.PatientID(patientID)).
		Order(enttreat.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list treatments: %w", err)
	}
	return treatments, nil
}

// HistoryEntry pairs a completed appointment with its treatment record.
type HistoryEntry struct {
	Appointment *repo.Appointment `json:"appointment"`
	Treatment   *repo.Treatment   `json:"treatment,omitempty"`
}

func (s *appointmentService) History(ctx context.Context, actor Actor, patientID uuid.UUID) ([]HistoryEntry, error) {
	if err := s.authorizePatientScope(ctx, actor, patientID); err != nil {
		return nil, err
	}

	appts, err := s.db.Appointment.Query().
		Where(
			entappt.PatientID(patientID),
			entappt.StatusEQ(entappt.StatusCompleted),
		).
		Order(entappt.ByDate(sql.OrderDesc()), entappt.BySlot(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list completed appointments: %w", err)
	}

	treatments, err := s.db.Treatment.Query().
		Where(enttreat.PatientID(patientID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list treatments: %w", err)
	}

	byAppt := make(map[uuid.UUID]*repo.Treatment, len(treatments))
	for _, t := range treatments {
		byAppt[t.AppointmentID] = t
	}

	out := make([]HistoryEntry, 0, len(appts))
	for _, a := range appts {
		out = append(out, HistoryEntry{Appointment: a, Treatment: byAppt[a.ID]})
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *appointmentService) get(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

// authorizeActor checks that the actor may act on this appointment: the
// owning patient, the assigned doctor, or an admin.
func (s *appointmentService) authorizeActor(ctx context.Context, actor Actor, appt *repo.Appointment) error {
	if actor.isAdmin() {
		return nil
	}

	if actor.Role == authorize.UserRoleDoctor {
		doctor, err := s.db.DoctorProfile.Query().
			Where(entdoc.UserID(actor.UserID)).
			Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return ErrNotOwner
			}
			return fmt.Errorf("get doctor profile: %w", err)
		}
		if appt.DoctorID != doctor.ID {
			return ErrNotOwner
		}
		return nil
	}

	patient, err := s.db.PatientProfile.Query().
		Where(entpat.UserID(actor.UserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotOwner
		}
		return fmt.Errorf("get patient profile: %w", err)
	}
	if appt.PatientID != patient.ID {
		return ErrNotOwner
	}
	return nil
}

// authorizePatientScope guards patient-scoped views: the patient themself,
// a doctor who has treated them, or an admin.
func (s *appointmentService) authorizePatientScope(ctx context.Context, actor Actor, patientID uuid.UUID) error {
	if actor.isAdmin() {
		return nil
	}

	switch actor.Role {
	case authorize.UserRolePatient:
		patient, err := s.db.PatientProfile.Query().
			Where(entpat.UserID(actor.UserID)).
			Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return ErrNotOwner
			}
			return fmt.Errorf("get patient profile: %w", err)
		}
		if patient.ID != patientID {
			return ErrNotOwner
		}
		return nil

	case authorize.UserRoleDoctor:
		doctor, err := s.db.DoctorProfile.Query().
			Where(entdoc.UserID(actor.UserID)).
			Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return ErrNotOwner
			}
			return fmt.Errorf("get doctor profile: %w", err)
		}
		seen, err := s.db.Appointment.Query().
			Where(
				entappt.DoctorID(doctor.ID),
				entappt.PatientID(patientID),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check doctor-patient link: %w", err)
		}
		if !seen {
			return ErrNotOwner
		}
		return nil
	}

	return ErrNotOwner
}

// publish emits a fire-and-forget appointment event. Delivery failures are
// logged and never surface to the caller.
func (s *appointmentService) publish(event string, apptID uuid.UUID) {
	if s.nc == nil {
		return
	}
	subject := fmt.Sprintf("hospital.appointment.%s.%s", event, apptID.String())
	if err := s.nc.Publish(subject, []byte(apptID.String())); err != nil {
		slog.Warn("appointment event publish failed", "subject", subject, "err", err)
	}
}
