package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	employeedomain "github.com/smallbiznis/rosterd/internal/employee/domain"
	"github.com/smallbiznis/rosterd/internal/notification/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type service struct {
	repo         domain.Repository
	employeeRepo employeedomain.Repository
	genID        *snowflake.Node
	log          *zap.Logger
}

func NewService(
	repo domain.Repository,
	employeeRepo employeedomain.Repository,
	genID *snowflake.Node,
	log *zap.Logger,
) domain.Service {
	return &service{
		repo:         repo,
		employeeRepo: employeeRepo,
		genID:        genID,
		log:          log.Named("notification.service"),
	}
}

func (s *service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Notification, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, domain.ErrInvalidMessage
	}

	if _, err := s.employeeRepo.Get(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeedomain.ErrNotFound
		}
		return nil, err
	}

	notification := domain.Notification{
		ID:         s.genID.Generate(),
		EmployeeID: req.EmployeeID,
		Message:    req.Message,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, err
	}
	return &notification, nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID snowflake.ID) ([]domain.Notification, error) {
	return s.repo.ListByEmployee(ctx, employeeID)
}

func (s *service) ListForBranch(ctx context.Context, branchID snowflake.ID) ([]domain.Notification, error) {
	return s.repo.ListByBranch(ctx, branchID)
}

func (s *service) MarkRead(ctx context.Context, employeeID snowflake.ID, id string) error {
	notificationID, err := snowflake.ParseString(id)
	if err != nil {
		return domain.ErrNotFound
	}

	notification, err := s.repo.Get(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if notification.EmployeeID != employeeID {
		return domain.ErrNotFound
	}

	return s.repo.MarkRead(ctx, notification.ID)
}
