package appointment

import (
	"errors"
	"testing"

	entappt "github.com/aryabanda/Hospital-management-system/internal/repo/appointment"
	"github.com/aryabanda/Hospital-management-system/internal/service/scheduling"
	"github.com/aryabanda/Hospital-management-system/pkg/util/slottime"
)

func TestClaimErr(t *testing.T) {
	tests := []struct {
		name    string
		holders []entappt.Status
		wantErr error
	}{
		{name: "free slot", holders: nil},
		{name: "booked holder blocks", holders: []entappt.Status{entappt.StatusBooked}, wantErr: ErrSlotTaken},
		{name: "cancelled holder frees the slot", holders: []entappt.Status{entappt.StatusCancelled}},
		{name: "completed holder frees the slot", holders: []entappt.Status{entappt.StatusCompleted}},
		{name: "booked among cancelled still blocks", holders: []entappt.Status{entappt.StatusCancelled, entappt.StatusBooked}, wantErr: ErrSlotTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := claimErr(tt.holders); !errors.Is(err, tt.wantErr) {
				t.Fatalf("claimErr = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMutationGuards(t *testing.T) {
	guards := []struct {
		name  string
		guard func(entappt.Status) error
		want  error
	}{
		{name: "cancel", guard: cancelableErr, want: ErrNotCancellable},
		{name: "reschedule", guard: reschedulableErr, want: ErrNotReschedulable},
		{name: "complete", guard: completableErr, want: ErrNotCompletable},
	}

	for _, g := range guards {
		t.Run(g.name, func(t *testing.T) {
			if err := g.guard(entappt.StatusBooked); err != nil {
				t.Fatalf("booked should be mutable, got %v", err)
			}
			if err := g.guard(entappt.StatusCancelled); !errors.Is(err, g.want) {
				t.Fatalf("cancelled: err = %v, want %v", err, g.want)
			}
			if err := g.guard(entappt.StatusCompleted); !errors.Is(err, g.want) {
				t.Fatalf("completed: err = %v, want %v", err, g.want)
			}
		})
	}
}

// TestBookingLifecycle walks one doctor's day through the decision rules:
// claims occupy slots, only booked claims suppress them, terminal statuses
// refuse further mutation, and a cancelled slot is rebookable.
func TestBookingLifecycle(t *testing.T) {
	window := slottime.Window(11, 17, 30)
	ledger := map[string]entappt.Status{}

	taken := func() []string {
		var out []string
		for slot, st := range ledger {
			if st == entappt.StatusBooked {
				out = append(out, slot)
			}
		}
		return out
	}
	claim := func(slot string) error {
		var holders []entappt.Status
		if st, ok := ledger[slot]; ok {
			holders = append(holders, st)
		}
		if err := claimErr(holders); err != nil {
			return err
		}
		ledger[slot] = entappt.StatusBooked
		return nil
	}

	if open := scheduling.FilterOpen(window, taken()); len(open) != 12 {
		t.Fatalf("fresh day should expose 12 slots, got %d", len(open))
	}

	// First booking wins the slot, the competing one conflicts.
	if err := claim("11:00"); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	if err := claim("11:00"); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("competing booking: err = %v, want ErrSlotTaken", err)
	}

	open := scheduling.FilterOpen(window, taken())
	if len(open) != 11 || open[0] != "11:30" {
		t.Fatalf("after booking: open = %v", open)
	}

	// Cancelling releases the slot and the next booking takes it again.
	if err := cancelableErr(ledger["11:00"]); err != nil {
		t.Fatalf("cancel refused: %v", err)
	}
	ledger["11:00"] = entappt.StatusCancelled

	if open := scheduling.FilterOpen(window, taken()); len(open) != 12 {
		t.Fatalf("cancelled slot should reopen, got %d open", len(open))
	}
	if err := claim("11:00"); err != nil {
		t.Fatalf("rebooking a cancelled slot failed: %v", err)
	}

	// Completion is terminal: no second completion, no late cancel.
	if err := completableErr(ledger["11:00"]); err != nil {
		t.Fatalf("complete refused: %v", err)
	}
	ledger["11:00"] = entappt.StatusCompleted

	if err := completableErr(ledger["11:00"]); !errors.Is(err, ErrNotCompletable) {
		t.Fatalf("second completion: err = %v, want ErrNotCompletable", err)
	}
	if err := cancelableErr(ledger["11:00"]); !errors.Is(err, ErrNotCancellable) {
		t.Fatalf("cancel after completion: err = %v, want ErrNotCancellable", err)
	}
}
