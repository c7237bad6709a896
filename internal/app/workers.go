package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/aryabanda/Hospital-management-system/internal/repo"
	entappt "github.com/aryabanda/Hospital-management-system/internal/repo/appointment"
	"github.com/aryabanda/Hospital-management-system/internal/service/notification"
	"github.com/aryabanda/Hospital-management-system/pkg/util/slottime"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	NC       *nats.Conn
	DB       *repo.Client
	NotifSvc notification.Service
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startNotificationWorker(p.NC, p.DB, p.NotifSvc)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// notification_worker
// ---------------------------------------------------------------------------

// apptEvent describes the in-app notifications an appointment event fans out to.
type apptEvent struct {
	subject      string
	notifType    string
	patientTitle string
	doctorTitle  string
}

var apptEvents = []apptEvent{
	{
		subject:      "hospital.appointment.booked.*",
		notifType:    "appointment_booked",
		patientTitle: "Appointment booked",
		doctorTitle:  "New appointment",
	},
	{
		subject:      "hospital.appointment.cancelled.*",
		notifType:    "appointment_cancelled",
		patientTitle: "Appointment cancelled",
		doctorTitle:  "Appointment cancelled",
	},
	{
		subject:      "hospital.appointment.rescheduled.*",
		notifType:    "appointment_rescheduled",
		patientTitle: "Appointment rescheduled",
		doctorTitle:  "Appointment rescheduled",
	},
	{
		subject:      "hospital.appointment.completed.*",
		notifType:    "appointment_completed",
		patientTitle: "Visit completed",
		doctorTitle:  "Visit completed",
	},
}

func startNotificationWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service) {
	for _, ev := range apptEvents {
		ev := ev
		_, err := nc.Subscribe(ev.subject, func(msg *nats.Msg) {
			apptIDStr := strings.TrimSpace(string(msg.Data))
			apptID, err := uuid.Parse(apptIDStr)
			if err != nil {
				return
			}

			ctx := context.Background()

			appt, err := db.Appointment.Query().
				Where(entappt.ID(apptID)).
				Only(ctx)
			if err != nil {
				slog.Warn("notification_worker: appointment not found", "id", apptIDStr, "err", err)
				return
			}

			notifyAppointmentParties(ctx, db, notifSvc, appt, ev)
		})
		if err != nil {
			slog.Error("notification_worker: subscribe failed", "subject", ev.subject, "err", err)
		}
	}

	slog.Info("notification_worker: started")
}

func notifyAppointmentParties(
	ctx context.Context,
	db *repo.Client,
	notifSvc notification.Service,
	appt *repo.Appointment,
	ev apptEvent,
) {
	body := fmt.Sprintf("%s at %s", slottime.FormatDate(appt.Date), slottime.Format12h(appt.Slot))
	data := map[string]any{
		"appointment_id": appt.ID.String(),
		"date":           slottime.FormatDate(appt.Date),
		"slot":           appt.Slot,
	}

	patientProfile, err := db.PatientProfile.Get(ctx, appt.PatientID)
	if err != nil {
		slog.Warn("notification_worker: patient profile not found", "id", appt.PatientID, "err", err)
	} else {
		if _, err := notifSvc.Create(ctx, notification.CreateRequest{
			UserID: patientProfile.UserID,
			Type:   ev.notifType,
			Title:  ev.patientTitle,
			Body:   &body,
			Data:   data,
		}); err != nil {
			slog.Warn("notification_worker: create patient notification failed", "err", err)
		}
	}

	doctorProfile, err := db.DoctorProfile.Get(ctx, appt.DoctorID)
	if err != nil {
		slog.Warn("notification_worker: doctor profile not found", "id", appt.DoctorID, "err", err)
		return
	}
	if _, err := notifSvc.Create(ctx, notification.CreateRequest{
		UserID: doctorProfile.UserID,
		Type:   ev.notifType,
		Title:  ev.doctorTitle,
		Body:   &body,
		Data:   data,
	}); err != nil {
		slog.Warn("notification_worker: create doctor notification failed", "err", err)
	}
}
