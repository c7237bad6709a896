package appointment

import (
	"github.com/aryabanda/Hospital-management-system/internal/repo"
	entappt "github.com/aryabanda/Hospital-management-system/internal/repo/appointment"
)

// Booked is the only status a mutation may start from. Cancelled and
// completed appointments never change again.

func cancelableErr(st entappt.Status) error {
	if st != entappt.StatusBooked {
		return ErrNotCancellable
	}
	return nil
}

func reschedulableErr(st entappt.Status) error {
	if st != entappt.StatusBooked {
		return ErrNotReschedulable
	}
	return nil
}

func completableErr(st entappt.Status) error {
	if st != entappt.StatusBooked {
		return ErrNotCompletable
	}
	return nil
}

// claimErr decides a slot claim from the statuses of the appointments
// already sitting on the same (doctor, date, slot) key. Only a booked
// holder blocks; cancelled and completed holders leave the slot free.
func claimErr(holders []entappt.Status) error {
	for _, st := range holders {
		if st == entappt.StatusBooked {
			return ErrSlotTaken
		}
	}
	return nil
}

func holderStatuses(appts []*repo.Appointment) []entappt.Status {
	out := make([]entappt.Status, len(appts))
	for i, a := range appts {
		out[i] = a.Status
	}
	return out
}
