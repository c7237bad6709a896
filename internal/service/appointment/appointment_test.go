package appointment

import (
	"errors"
	"testing"
	"time"

	"github.com/aryabanda/Hospital-management-system/config"
)

func newTestService() *appointmentService {
	cfg := config.SchedulingConfig{StartHour: 11, EndHour: 17, SlotMinutes: 30}
	return New(nil, nil, cfg).(*appointmentService)
}

func TestNormalizeSchedule(t *testing.T) {
	s := newTestService()

	tests := []struct {
		name     string
		date     string
		time     string
		wantSlot string
		wantErr  error
	}{
		{name: "meridiem input", date: "2025-03-09", time: "04:00 PM", wantSlot: "16:00"},
		{name: "canonical input", date: "2025-03-09", time: "11:30", wantSlot: "11:30"},
		{name: "first slot", date: "2025-03-09", time: "11:00 AM", wantSlot: "11:00"},
		{name: "last slot", date: "2025-03-09", time: "04:30 PM", wantSlot: "16:30"},
		{name: "bad date", date: "09-03-2025", time: "11:00", wantErr: ErrInvalidDate},
		{name: "unparseable time", date: "2025-03-09", time: "four", wantErr: ErrInvalidSlot},
		{name: "before window", date: "2025-03-09", time: "10:30 AM", wantErr: ErrInvalidSlot},
		{name: "after window", date: "2025-03-09", time: "05:00 PM", wantErr: ErrInvalidSlot},
		{name: "off grid", date: "2025-03-09", time: "11:15", wantErr: ErrInvalidSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, slot, err := s.normalizeSchedule(tt.date, tt.time)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if slot != tt.wantSlot {
				t.Errorf("slot = %q, want %q", slot, tt.wantSlot)
			}
			if day.Hour() != 0 || day.Location() != time.UTC {
				t.Errorf("date not normalized to UTC midnight: %v", day)
			}
		})
	}
}

func TestActorIsAdmin(t *testing.T) {
	if (Actor{Role: "patient"}).isAdmin() {
		t.Error("patient reported as admin")
	}
	if !(Actor{Role: "admin"}).isAdmin() {
		t.Error("admin not recognized")
	}
}
