package service

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	branchdomain "github.com/smallbiznis/rosterd/internal/branch/domain"
	employeedomain "github.com/smallbiznis/rosterd/internal/employee/domain"
	"github.com/smallbiznis/rosterd/internal/preference/domain"
	slotdomain "github.com/smallbiznis/rosterd/internal/slot/domain"
	"github.com/smallbiznis/rosterd/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type service struct {
	repo         domain.Repository
	branchRepo   branchdomain.Repository
	employeeRepo employeedomain.Repository
	genID        *snowflake.Node
	log          *zap.Logger
}

func NewService(
	repo domain.Repository,
	branchRepo branchdomain.Repository,
	employeeRepo employeedomain.Repository,
	genID *snowflake.Node,
	log *zap.Logger,
) domain.Service {
	return &service{
		repo:         repo,
		branchRepo:   branchRepo,
		employeeRepo: employeeRepo,
		genID:        genID,
		log:          log.Named("preference.service"),
	}
}

func (s *service) Submit(ctx context.Context, req domain.SubmitRequest) (*domain.ShiftPreference, error) {
	if !req.ShiftType.Valid() {
		return nil, slotdomain.ErrInvalidShiftType
	}
	if !req.DayOfWeek.Valid() {
		return nil, slotdomain.ErrInvalidDay
	}

	if _, err := s.employeeRepo.Get(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeedomain.ErrNotFound
		}
		return nil, err
	}

	room, err := s.branchRepo.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, branchdomain.ErrRoomNotFound
		}
		return nil, err
	}
	if room.BranchID != req.BranchID {
		return nil, slotdomain.ErrRoomOutsideBranch
	}

	week := normalizeDate(req.WeekStartDate)
	now := time.Now().UTC()

	existing, err := s.repo.FindByIdentity(ctx, req.EmployeeID, week, req.DayOfWeek, req.ShiftType, req.RoomID)
	if err == nil {
		if err := s.repo.UpdateStatus(ctx, existing.ID, domain.StatusPending, now); err != nil {
			return nil, err
		}
		existing.Status = domain.StatusPending
		existing.UpdatedAt = now
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	preference := domain.ShiftPreference{
		ID:            s.genID.Generate(),
		EmployeeID:    req.EmployeeID,
		BranchID:      req.BranchID,
		WeekStartDate: week,
		DayOfWeek:     req.DayOfWeek,
		ShiftType:     req.ShiftType,
		RoomID:        req.RoomID,
		Status:        domain.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, preference); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return s.repo.FindByIdentity(ctx, req.EmployeeID, week, req.DayOfWeek, req.ShiftType, req.RoomID)
		}
		return nil, err
	}
	return &preference, nil
}

func (s *service) List(ctx context.Context, filter domain.ListFilter) ([]domain.ShiftPreference, error) {
	if filter.Week != nil {
		week := normalizeDate(*filter.Week)
		filter.Week = &week
	}
	return s.repo.List(ctx, filter)
}

func (s *service) Review(ctx context.Context, id string, status domain.Status) (*domain.ShiftPreference, error) {
	if status != domain.StatusApproved && status != domain.StatusRejected {
		return nil, domain.ErrInvalidReviewStatus
	}

	preferenceID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	preference, err := s.repo.Get(ctx, preferenceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateStatus(ctx, preference.ID, status, now); err != nil {
		return nil, err
	}

	s.log.Info("preference reviewed",
		zap.Int64("preference_id", preference.ID.Int64()),
		zap.String("status", string(status)))

	preference.Status = status
	preference.UpdatedAt = now
	return preference, nil
}

func normalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
