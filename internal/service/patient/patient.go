package patient

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/aryabanda/Hospital-management-system/internal/repo"
	entappt "github.com/aryabanda/Hospital-management-system/internal/repo/appointment"
	entpat "github.com/aryabanda/Hospital-management-system/internal/repo/patientprofile"
	entuser "github.com/aryabanda/Hospital-management-system/internal/repo/user"
	"github.com/aryabanda/Hospital-management-system/pkg/crypto"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpsertProfileRequest struct {
	DateOfBirth *time.Time
	Gender      *string
	Contact     *string // plaintext; stored encrypted
	Address     *string
}

// Profile is the decrypted view handed to handlers.
type Profile struct {
	Record  *repo.PatientProfile `json:"record"`
	User    *repo.User           `json:"user"`
	Contact string               `json:"contact,omitempty"`
}

// Dashboard carries the patient home-screen counters.
type Dashboard struct {
	Upcoming  int `json:"upcoming"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, req UpsertProfileRequest) (*Profile, error)
	GetDashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error)

	// Admin views.
	List(ctx context.Context, page, perPage int) ([]*repo.PatientProfile, error)
	GetByID(ctx context.Context, patientID uuid.UUID) (*Profile, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db  *repo.Client
	key []byte // AES-256 key for contact encryption
}

func New(db *repo.Client, encryptionKey []byte) Service {
	return &patientService{db: db, key: encryptionKey}
}

func (s *patientService) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	record, err := s.db.PatientProfile.Query().
		Where(entpat.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient profile: %w", err)
	}
	return s.view(ctx, record)
}

func (s *patientService) UpsertProfile(ctx context.Context, userID uuid.UUID, req UpsertProfileRequest) (*Profile, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u.Role != entuser.RolePatient {
		return nil, ErrNotAPatient
	}

	var encrypted *string
	if req.Contact != nil {
		enc, err := crypto.Encrypt(s.key, *req.Contact)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadContact, err)
		}
		encrypted = &enc
	}

	record, err := s.db.PatientProfile.Query().
		Where(entpat.UserID(userID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get patient profile: %w", err)
	}

	if repo.IsNotFound(err) {
		c := s.db.PatientProfile.Create().SetUserID(userID)
		if req.DateOfBirth != nil {
			c = c.SetNillableDateOfBirth(req.DateOfBirth)
		}
		if req.Gender != nil {
			c = c.SetGender(entpat.Gender(*req.Gender))
		}
		if encrypted != nil {
			c = c.SetNillableContactEncrypted(encrypted)
		}
		if req.Address != nil {
			c = c.SetNillableAddress(req.Address)
		}
		record, err = c.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create patient profile: %w", err)
		}
		return s.view(ctx, record)
	}

	upd := s.db.PatientProfile.UpdateOne(record)
	if req.DateOfBirth != nil {
		upd = upd.SetNillableDateOfBirth(req.DateOfBirth)
	}
	if req.Gender != nil {
		upd = upd.SetGender(entpat.Gender(*req.Gender))
	}
	if encrypted != nil {
		upd = upd.SetNillableContactEncrypted(encrypted)
	}
	if req.Address != nil {
		upd = upd.SetNillableAddress(req.Address)
	}

	record, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient profile: %w", err)
	}
	return s.view(ctx, record)
}

func (s *patientService) GetDashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	record, err := s.db.PatientProfile.Query().
		Where(entpat.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient profile: %w", err)
	}

	counts := map[entappt.Status]int{}
	for _, status := range []entappt.Status{entappt.StatusBooked, entappt.StatusCompleted, entappt.StatusCancelled} {
		n, err := s.db.Appointment.Query().
			Where(
				entappt.PatientID(record.ID),
				entappt.StatusEQ(status),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s appointments: %w", status, err)
		}
		counts[status] = n
	}

	return &Dashboard{
		Upcoming:  counts[entappt.StatusBooked],
		Completed: counts[entappt.StatusCompleted],
		Cancelled: counts[entappt.StatusCancelled],
	}, nil
}

func (s *patientService) List(ctx context.Context, page, perPage int) ([]*repo.PatientProfile, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	records, err := s.db.PatientProfile.Query().
		Order(entpat.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return records, nil
}

func (s *patientService) GetByID(ctx context.Context, patientID uuid.UUID) (*Profile, error) {
	record, err := s.db.PatientProfile.Query().
		Where(entpat.ID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient profile: %w", err)
	}
	return s.view(ctx, record)
}

// view decrypts the contact field and joins the owning user. A record whose
// contact cannot be decrypted is still returned, just without the contact.
func (s *patientService) view(ctx context.Context, record *repo.PatientProfile) (*Profile, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(record.UserID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get patient user: %w", err)
	}

	out := &Profile{Record: record, User: u}
	if record.ContactEncrypted != nil {
		if contact, err := crypto.Decrypt(s.key, *record.ContactEncrypted); err == nil {
			out.Contact = contact
		}
	}
	return out, nil
}
