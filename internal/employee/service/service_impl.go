package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rosterd/internal/employee/domain"
	"gorm.io/gorm"
)

type service struct {
	db    *gorm.DB
	repo  domain.Repository
	genID *snowflake.Node
}

func NewService(db *gorm.DB, repo domain.Repository, genID *snowflake.Node) domain.Service {
	return &service{db: db, repo: repo, genID: genID}
}

func (s *service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Employee, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		return nil, domain.ErrInvalidName
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = domain.RoleWorker
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	now := time.Now().UTC()
	employee := domain.Employee{
		ID:        s.genID.Generate(),
		AccountID: strings.TrimSpace(req.AccountID),
		FirstName: firstName,
		LastName:  lastName,
		Phone:     strings.TrimSpace(req.Phone),
		Notes:     strings.TrimSpace(req.Notes),
		Role:      role,
		IsActive:  true,
		BranchID:  req.BranchID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (s *service) Get(ctx context.Context, id string) (*domain.Employee, error) {
	employeeID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidEmployee
	}

	employee, err := s.repo.Get(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return employee, nil
}

func (s *service) List(ctx context.Context, branchID string) ([]domain.Employee, error) {
	var filter *snowflake.ID
	if raw := strings.TrimSpace(branchID); raw != "" {
		id, err := snowflake.ParseString(raw)
		if err != nil {
			return nil, domain.ErrInvalidEmployee
		}
		filter = &id
	}
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req domain.UpdateRequest) (*domain.Employee, error) {
	employee, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		employee.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		employee.LastName = strings.TrimSpace(*req.LastName)
	}
	if employee.FirstName == "" || employee.LastName == "" {
		return nil, domain.ErrInvalidName
	}
	if req.Phone != nil {
		employee.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Notes != nil {
		employee.Notes = strings.TrimSpace(*req.Notes)
	}
	if req.Role != nil {
		role := strings.TrimSpace(*req.Role)
		if !domain.ValidRole(role) {
			return nil, domain.ErrInvalidRole
		}
		employee.Role = role
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	if req.BranchID != nil {
		employee.BranchID = req.BranchID
	}
	employee.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, *employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	employee, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Unassign(ctx, employee.ID); err != nil {
			return err
		}
		return repo.Delete(ctx, employee.ID)
	})
}
