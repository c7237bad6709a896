package scheduling

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/aryabanda/Hospital-management-system/config"
	"github.com/aryabanda/Hospital-management-system/internal/repo"
	entappt "github.com/aryabanda/Hospital-management-system/internal/repo/appointment"
	entdoc "github.com/aryabanda/Hospital-management-system/internal/repo/doctorprofile"
	"github.com/aryabanda/Hospital-management-system/pkg/util/slottime"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// DaySlots is one available day with its remaining open slot times.
type DaySlots struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

type SetAvailabilityRequest struct {
	// Days maps "YYYY-MM-DD" to a working-day flag. The stored map is
	// replaced wholesale; days absent here become unavailable.
	Days map[string]bool
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Availability flags, owned by the doctor.
	GetAvailability(ctx context.Context, doctorID uuid.UUID) (map[string]bool, error)
	SetAvailability(ctx context.Context, doctorUserID uuid.UUID, req SetAvailabilityRequest) error

	// Open slots, consumed by patients choosing a time.
	OpenSlots(ctx context.Context, doctorID uuid.UUID) ([]DaySlots, error)
	OpenSlotsForDate(ctx context.Context, doctorID uuid.UUID, date string) ([]string, error)

	// Window reports the configured bookable daily window.
	Window() []string
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type schedulingService struct {
	db     *repo.Client
	window []string
}

func New(db *repo.Client, cfg config.SchedulingConfig) Service {
	return &schedulingService{
		db:     db,
		window: slottime.Window(cfg.StartHour, cfg.EndHour, cfg.SlotMinutes),
	}
}

func (s *schedulingService) Window() []string {
	out := make([]string, len(s.window))
	copy(out, s.window)
	return out
}

func (s *schedulingService) GetAvailability(ctx context.Context, doctorID uuid.UUID) (map[string]bool, error) {
	doc, err := s.db.DoctorProfile.Query().
		Where(entdoc.ID(doctorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor profile: %w", err)
	}

	// Only working days appear in the result; false entries carry no
	// information beyond absence.
	out := make(map[string]bool, len(doc.Availability))
	for day, open := range doc.Availability {
		if open {
			out[day] = true
		}
	}
	return out, nil
}

func (s *schedulingService) SetAvailability(ctx context.Context, doctorUserID uuid.UUID, req SetAvailabilityRequest) error {
	normalized, err := NormalizeAvailability(req.Days)
	if err != nil {
		return err
	}

	n, err := s.db.DoctorProfile.Update().
		Where(entdoc.UserID(doctorUserID)).
		SetAvailability(normalized).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set availability: %w", err)
	}
	if n == 0 {
		return ErrDoctorNotFound
	}
	return nil
}

func (s *schedulingService) OpenSlots(ctx context.Context, doctorID uuid.UUID) ([]DaySlots, error) {
	doc, err := s.bookableDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	days := make([]string, 0, len(doc.Availability))
	for day, open := range doc.Availability {
		if open {
			days = append(days, day)
		}
	}
	sort.Strings(days)

	out := make([]DaySlots, 0, len(days))
	for _, day := range days {
		slots, err := s.openSlotsOn(ctx, doctorID, day)
		if err != nil {
			return nil, err
		}
		out = append(out, DaySlots{Date: day, Slots: slots})
	}
	return out, nil
}

func (s *schedulingService) OpenSlotsForDate(ctx context.Context, doctorID uuid.UUID, date string) ([]string, error) {
	if _, err := slottime.ParseDate(date); err != nil {
		return nil, ErrInvalidDate
	}

	doc, err := s.bookableDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	// A day the doctor is not working contributes no slots; indistinguishable
	// from a day absent from the availability map.
	if !doc.Availability[date] {
		return []string{}, nil
	}
	return s.openSlotsOn(ctx, doctorID, date)
}

func (s *schedulingService) bookableDoctor(ctx context.Context, doctorID uuid.UUID) (*repo.DoctorProfile, error) {
	doc, err := s.db.DoctorProfile.Query().
		Where(entdoc.ID(doctorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor profile: %w", err)
	}
	if !doc.Approved || doc.Blocked {
		return nil, ErrDoctorNotBookable
	}
	return doc, nil
}

func (s *schedulingService) openSlotsOn(ctx context.Context, doctorID uuid.UUID, date string) ([]string, error) {
	day, err := slottime.ParseDate(date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	booked, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(doctorID),
			entappt.DateEQ(day),
			entappt.StatusEQ(entappt.StatusBooked),
		).
		Select(entappt.FieldSlot).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query booked slots: %w", err)
	}

	return FilterOpen(s.window, booked), nil
}

// FilterOpen returns the window slots not present in taken, preserving order.
func FilterOpen(window, taken []string) []string {
	occupied := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		occupied[t] = struct{}{}
	}

	open := make([]string, 0, len(window))
	for _, slot := range window {
		if _, ok := occupied[slot]; !ok {
			open = append(open, slot)
		}
	}
	return open
}

// NormalizeAvailability validates the day keys and drops false entries so
// the stored map only carries working days.
func NormalizeAvailability(days map[string]bool) (map[string]bool, error) {
	out := make(map[string]bool, len(days))
	for day, open := range days {
		t, err := slottime.ParseDate(day)
		if err != nil {
			return nil, ErrInvalidDate
		}
		if !open {
			continue
		}
		out[t.Format(slottime.LayoutDate)] = true
	}
	return out, nil
}
