package app

import (
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/aryabanda/Hospital-management-system/config"
	"github.com/aryabanda/Hospital-management-system/internal/repo"
	"github.com/aryabanda/Hospital-management-system/internal/service/appointment"
	"github.com/aryabanda/Hospital-management-system/internal/service/department"
	"github.com/aryabanda/Hospital-management-system/internal/service/doctor"
	"github.com/aryabanda/Hospital-management-system/internal/service/notification"
	"github.com/aryabanda/Hospital-management-system/internal/service/patient"
	"github.com/aryabanda/Hospital-management-system/internal/service/scheduling"
	"github.com/aryabanda/Hospital-management-system/pkg/authorize"
	"github.com/aryabanda/Hospital-management-system/pkg/crypto"
	pasetotoken "github.com/aryabanda/Hospital-management-system/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideSchedulingService,
		ProvideAppointmentService,
		ProvideDoctorService,
		ProvidePatientService,
		ProvideDepartmentService,
		ProvideNotificationService,
		ProvidePasetoManager,
	),
)

func ProvideSchedulingService(db *repo.Client, cfg *config.Config) scheduling.Service {
	return scheduling.New(db, cfg.Scheduling)
}

func ProvideAppointmentService(db *repo.Client, nc *nats.Conn, cfg *config.Config) appointment.Service {
	return appointment.New(db, nc, cfg.Scheduling)
}

func ProvideDoctorService(db *repo.Client, authz authorize.IAuthorization) doctor.Service {
	return doctor.New(db, authz)
}

func ProvidePatientService(db *repo.Client, cfg *config.Config) (patient.Service, error) {
	key, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, err
	}
	return patient.New(db, key), nil
}

func ProvideDepartmentService(db *repo.Client) department.Service {
	return department.New(db)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
