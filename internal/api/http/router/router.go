package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/aryabanda/Hospital-management-system/config"
	"github.com/aryabanda/Hospital-management-system/internal/api/http/handler"
	"github.com/aryabanda/Hospital-management-system/internal/api/http/middleware"
	"github.com/aryabanda/Hospital-management-system/internal/service/appointment"
	"github.com/aryabanda/Hospital-management-system/internal/service/department"
	"github.com/aryabanda/Hospital-management-system/internal/service/doctor"
	"github.com/aryabanda/Hospital-management-system/internal/service/notification"
	"github.com/aryabanda/Hospital-management-system/internal/service/patient"
	"github.com/aryabanda/Hospital-management-system/internal/service/scheduling"
	"github.com/aryabanda/Hospital-management-system/pkg/authorize"
	pasetotoken "github.com/aryabanda/Hospital-management-system/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	SchedulingSvc   scheduling.Service
	AppointmentSvc  appointment.Service
	DoctorSvc       doctor.Service
	PatientSvc      patient.Service
	DepartmentSvc   department.Service
	NotificationSvc notification.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	scheduleH := handler.NewScheduleHandler(r.p.SchedulingSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	doctorH := handler.NewDoctorHandler(r.p.DoctorSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	departmentH := handler.NewDepartmentHandler(r.p.DepartmentSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerScheduleRoutes(api, scheduleH, authRequired, requirePerm)
	r.registerAppointmentRoutes(api, appointmentH, authRequired, requirePerm)
	r.registerDoctorRoutes(api, doctorH, scheduleH, authRequired, requirePerm)
	r.registerPatientRoutes(api, patientH, appointmentH, authRequired, requirePerm)
	r.registerDepartmentRoutes(api, departmentH, authRequired, requirePerm)
	r.registerNotificationRoutes(api, notificationH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
