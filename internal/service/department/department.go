package department

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aryabanda/Hospital-management-system/internal/repo"
	entdept "github.com/aryabanda/Hospital-management-system/internal/repo/department"
	entdoc "github.com/aryabanda/Hospital-management-system/internal/repo/doctorprofile"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type UpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Detail is a department together with its approved doctor roster.
type Detail struct {
	Department *repo.Department      `json:"department"`
	Doctors    []*repo.DoctorProfile `json:"doctors"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Department, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Department, error)
	List(ctx context.Context) ([]*repo.Department, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Detail, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type departmentService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &departmentService{db: db}
}

func (s *departmentService) Create(ctx context.Context, req CreateRequest) (*repo.Department, error) {
	exists, err := s.db.Department.Query().
		Where(entdept.Name(req.Name)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check department name: %w", err)
	}
	if exists {
		return nil, ErrNameTaken
	}

	dept, err := s.db.Department.Create().
		SetName(req.Name).
		SetNillableDescription(req.Description).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("create department: %w", err)
	}
	return dept, nil
}

func (s *departmentService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Department, error) {
	upd := s.db.Department.UpdateOneID(id)
	if req.Name != nil {
		upd = upd.SetName(*req.Name)
	}
	if req.Description != nil {
		upd = upd.SetNillableDescription(req.Description)
	}

	dept, err := upd.Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if repo.IsConstraintError(err) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("update department: %w", err)
	}
	return dept, nil
}

func (s *departmentService) List(ctx context.Context) ([]*repo.Department, error) {
	depts, err := s.db.Department.Query().
		Order(entdept.ByName()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return depts, nil
}

func (s *departmentService) GetByID(ctx context.Context, id uuid.UUID) (*Detail, error) {
	dept, err := s.db.Department.Query().
		Where(entdept.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get department: %w", err)
	}

	doctors, err := s.db.DoctorProfile.Query().
		Where(
			entdoc.DepartmentID(id),
			entdoc.Approved(true),
			entdoc.Blocked(false),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list department doctors: %w", err)
	}

	return &Detail{Department: dept, Doctors: doctors}, nil
}
