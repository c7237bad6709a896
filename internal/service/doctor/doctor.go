package doctor

import (
	"context"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/aryabanda/Hospital-management-system/internal/repo"
	entappt "github.com/aryabanda/Hospital-management-system/internal/repo/appointment"
	entdept "github.com/aryabanda/Hospital-management-system/internal/repo/department"
	entdoc "github.com/aryabanda/Hospital-management-system/internal/repo/doctorprofile"
	entpat "github.com/aryabanda/Hospital-management-system/internal/repo/patientprofile"
	entuser "github.com/aryabanda/Hospital-management-system/internal/repo/user"
	"github.com/aryabanda/Hospital-management-system/pkg/authorize"
	"github.com/aryabanda/Hospital-management-system/pkg/util/password"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	FirstName     string
	LastName      string
	Email         string
	Password      string // temporary credential set by the admin
	DepartmentID  *uuid.UUID
	Qualification *string
	Experience    int
}

type UpsertProfileRequest struct {
	DepartmentID  *uuid.UUID
	Qualification *string
	Experience    *int
}

type ListRequest struct {
	DepartmentID *uuid.UUID
	ApprovedOnly bool
	Page         int
	PerPage      int
}

// Doctor is the directory view: profile plus the user's name.
type Doctor struct {
	Profile *repo.DoctorProfile `json:"profile"`
	User    *repo.User          `json:"user"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Doctor, error)
	Approve(ctx context.Context, doctorID uuid.UUID) error
	SetBlocked(ctx context.Context, doctorID uuid.UUID, blocked bool) error

	List(ctx context.Context, req ListRequest) ([]Doctor, error)
	GetByID(ctx context.Context, doctorID uuid.UUID) (*Doctor, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Doctor, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, req UpsertProfileRequest) (*repo.DoctorProfile, error)

	PatientsOfDoctor(ctx context.Context, doctorUserID uuid.UUID) ([]*repo.PatientProfile, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type doctorService struct {
	db    *repo.Client
	authz authorize.IAuthorization
}

func New(db *repo.Client, authz authorize.IAuthorization) Service {
	return &doctorService{db: db, authz: authz}
}

func (s *doctorService) Create(ctx context.Context, req CreateRequest) (*Doctor, error) {
	taken, err := s.db.User.Query().
		Where(entuser.Email(req.Email)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	if req.DepartmentID != nil {
		ok, err := s.db.Department.Query().
			Where(entdept.ID(*req.DepartmentID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check department: %w", err)
		}
		if !ok {
			return nil, ErrDepartmentNotFound
		}
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	u, err := tx.User.Create().
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetEmail(req.Email).
		SetPasswordHash(hash).
		SetRole(entuser.RoleDoctor).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	pc := tx.DoctorProfile.Create().
		SetUserID(u.ID).
		SetExperienceYears(req.Experience)
	if req.DepartmentID != nil {
		pc = pc.SetDepartmentID(*req.DepartmentID)
	}
	if req.Qualification != nil {
		pc = pc.SetNillableQualification(req.Qualification)
	}

	profile, err := pc.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create doctor profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit doctor: %w", err)
	}

	// RBAC grants are best-effort; a failed grant is repairable by re-running
	// system init, while a rollback here would orphan nothing.
	if s.authz != nil {
		if err := authorize.AssignHospitalRole(ctx, s.authz, u.ID.String(), authorize.UserRoleDoctor); err != nil {
			slog.Warn("assign doctor role failed", "user_id", u.ID, "err", err)
		}
		if err := authorize.AssignUserSelfRole(ctx, s.authz, u.ID.String()); err != nil {
			slog.Warn("assign self role failed", "user_id", u.ID, "err", err)
		}
	}

	return &Doctor{Profile: profile, User: u}, nil
}

func (s *doctorService) Approve(ctx context.Context, doctorID uuid.UUID) error {
	n, err := s.db.DoctorProfile.Update().
		Where(entdoc.ID(doctorID)).
		SetApproved(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("approve doctor: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *doctorService) SetBlocked(ctx context.Context, doctorID uuid.UUID, blocked bool) error {
	n, err := s.db.DoctorProfile.Update().
		Where(entdoc.ID(doctorID)).
		SetBlocked(blocked).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set doctor blocked: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *doctorService) List(ctx context.Context, req ListRequest) ([]Doctor, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.DoctorProfile.Query()
	if req.DepartmentID != nil {
		q = q.Where(entdoc.DepartmentID(*req.DepartmentID))
	}
	if req.ApprovedOnly {
		q = q.Where(entdoc.Approved(true), entdoc.Blocked(false))
	}

	profiles, err := q.
		Order(entdoc.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}

	return s.attachUsers(ctx, profiles)
}

func (s *doctorService) GetByID(ctx context.Context, doctorID uuid.UUID) (*Doctor, error) {
	profile, err := s.db.DoctorProfile.Query().
		Where(entdoc.ID(doctorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get doctor profile: %w", err)
	}
	return s.withUser(ctx, profile)
}

func (s *doctorService) GetByUserID(ctx context.Context, userID uuid.UUID) (*Doctor, error) {
	profile, err := s.db.DoctorProfile.Query().
		Where(entdoc.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get doctor profile: %w", err)
	}
	return s.withUser(ctx, profile)
}

func (s *doctorService) UpsertProfile(ctx context.Context, userID uuid.UUID, req UpsertProfileRequest) (*repo.DoctorProfile, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u.Role != entuser.RoleDoctor {
		return nil, ErrNotADoctor
	}

	if req.DepartmentID != nil {
		ok, err := s.db.Department.Query().
			Where(entdept.ID(*req.DepartmentID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check department: %w", err)
		}
		if !ok {
			return nil, ErrDepartmentNotFound
		}
	}

	profile, err := s.db.DoctorProfile.Query().
		Where(entdoc.UserID(userID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get doctor profile: %w", err)
	}

	if repo.IsNotFound(err) {
		c := s.db.DoctorProfile.Create().SetUserID(userID)
		if req.DepartmentID != nil {
			c = c.SetDepartmentID(*req.DepartmentID)
		}
		if req.Qualification != nil {
			c = c.SetNillableQualification(req.Qualification)
		}
		if req.Experience != nil {
			c = c.SetExperienceYears(*req.Experience)
		}
		profile, err = c.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create doctor profile: %w", err)
		}
		return profile, nil
	}

	upd := s.db.DoctorProfile.UpdateOne(profile)
	if req.DepartmentID != nil {
		upd = upd.SetDepartmentID(*req.DepartmentID)
	}
	if req.Qualification != nil {
		upd = upd.SetNillableQualification(req.Qualification)
	}
	if req.Experience != nil {
		upd = upd.SetExperienceYears(*req.Experience)
	}

	profile, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update doctor profile: %w", err)
	}
	return profile, nil
}

// PatientsOfDoctor returns the distinct patients who have ever held an
// appointment with this doctor.
func (s *doctorService) PatientsOfDoctor(ctx context.Context, doctorUserID uuid.UUID) ([]*repo.PatientProfile, error) {
	profile, err := s.db.DoctorProfile.Query().
		Where(entdoc.UserID(doctorUserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get doctor profile: %w", err)
	}

	ids, err := s.db.Appointment.Query().
		Where(entappt.DoctorID(profile.ID)).
		Unique(true).
		Select(entappt.FieldPatientID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patient ids: %w", err)
	}

	patientIDs := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		patientIDs = append(patientIDs, id)
	}
	if len(patientIDs) == 0 {
		return []*repo.PatientProfile{}, nil
	}

	patients, err := s.db.PatientProfile.Query().
		Where(entpat.IDIn(patientIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (s *doctorService) withUser(ctx context.Context, profile *repo.DoctorProfile) (*Doctor, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(profile.UserID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get doctor user: %w", err)
	}
	return &Doctor{Profile: profile, User: u}, nil
}

func (s *doctorService) attachUsers(ctx context.Context, profiles []*repo.DoctorProfile) ([]Doctor, error) {
	if len(profiles) == 0 {
		return []Doctor{}, nil
	}

	ids := make([]uuid.UUID, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}

	users, err := s.db.User.Query().
		Where(entuser.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctor users: %w", err)
	}

	byID := make(map[uuid.UUID]*repo.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	out := make([]Doctor, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, Doctor{Profile: p, User: byID[p.UserID]})
	}
	return out, nil
}
