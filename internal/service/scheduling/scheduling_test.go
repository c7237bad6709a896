package scheduling

import (
	"errors"
	"reflect"
	"testing"

	"github.com/aryabanda/Hospital-management-system/pkg/util/slottime"
)

func TestFilterOpen(t *testing.T) {
	window := slottime.Window(11, 17, 30)

	tests := []struct {
		name  string
		taken []string
		want  int
		first string
	}{
		{name: "empty day", taken: nil, want: 12, first: "11:00"},
		{name: "one booked", taken: []string{"11:00"}, want: 11, first: "11:30"},
		{name: "fully booked", taken: window, want: 0},
		{name: "taken outside window ignored", taken: []string{"09:00", "17:00"}, want: 12, first: "11:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open := FilterOpen(window, tt.taken)
			if len(open) != tt.want {
				t.Fatalf("got %d open slots, want %d: %v", len(open), tt.want, open)
			}
			if tt.want > 0 && open[0] != tt.first {
				t.Errorf("first open slot = %q, want %q", open[0], tt.first)
			}
		})
	}
}

func TestFilterOpenPreservesOrder(t *testing.T) {
	window := slottime.Window(11, 17, 30)
	open := FilterOpen(window, []string{"12:00", "15:30"})

	for i := 1; i < len(open); i++ {
		if open[i-1] >= open[i] {
			t.Fatalf("slots out of order: %v", open)
		}
	}
}

func TestNormalizeAvailability(t *testing.T) {
	got, err := NormalizeAvailability(map[string]bool{
		"2025-03-09": true,
		"2025-03-10": false,
		"2025-03-11": true,
	})
	if err != nil {
		t.Fatalf("NormalizeAvailability: %v", err)
	}

	want := map[string]bool{"2025-03-09": true, "2025-03-11": true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalizeAvailabilityRejectsBadDate(t *testing.T) {
	_, err := NormalizeAvailability(map[string]bool{"09/03/2025": true})
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
