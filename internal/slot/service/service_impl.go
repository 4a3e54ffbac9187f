package service

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	branchdomain "github.com/smallbiznis/rosterd/internal/branch/domain"
	"github.com/smallbiznis/rosterd/internal/slot/domain"
	"github.com/smallbiznis/rosterd/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type service struct {
	repo       domain.Repository
	branchRepo branchdomain.Repository
	genID      *snowflake.Node
	log        *zap.Logger
}

func NewService(repo domain.Repository, branchRepo branchdomain.Repository, genID *snowflake.Node, log *zap.Logger) domain.Service {
	return &service{
		repo:       repo,
		branchRepo: branchRepo,
		genID:      genID,
		log:        log.Named("slot.service"),
	}
}

func (s *service) WithTx(tx *gorm.DB) domain.Service {
	return &service{
		repo:       s.repo.WithTx(tx),
		branchRepo: s.branchRepo.WithTx(tx),
		genID:      s.genID,
		log:        s.log,
	}
}

// FindOrCreate returns the canonical slot for the identity tuple
// (room, shift_type, date, start_time). An existing match is returned
// unchanged: day_of_week and end_time are first-write-wins. Creation
// races are resolved by the store's unique index; the loser re-fetches
// the winner's row.
func (s *service) FindOrCreate(ctx context.Context, req domain.ResolveRequest) (*domain.ShiftSlot, error) {
	if !req.ShiftType.Valid() {
		return nil, domain.ErrInvalidShiftType
	}
	if !req.DayOfWeek.Valid() {
		return nil, domain.ErrInvalidDay
	}

	room, err := s.branchRepo.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, branchdomain.ErrRoomNotFound
		}
		return nil, err
	}
	if room.BranchID != req.BranchID {
		return nil, domain.ErrRoomOutsideBranch
	}

	date := normalizeDate(req.Date)

	existing, err := s.repo.FindByIdentity(ctx, req.RoomID, req.ShiftType, date, req.StartTime)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	slot := domain.ShiftSlot{
		ID:        s.genID.Generate(),
		RoomID:    req.RoomID,
		ShiftType: req.ShiftType,
		DayOfWeek: req.DayOfWeek,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, slot); err != nil {
		if db.IsDuplicateKeyErr(err) {
			// Lost the creation race; the unique index guarantees the
			// winner is now visible.
			return s.repo.FindByIdentity(ctx, req.RoomID, req.ShiftType, date, req.StartTime)
		}
		return nil, err
	}

	return &slot, nil
}

func (s *service) Collect(ctx context.Context, slotID snowflake.ID) (bool, error) {
	count, err := s.repo.CountEntries(ctx, slotID)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if err := s.repo.Delete(ctx, slotID); err != nil {
		return false, err
	}

	s.log.Debug("collected orphaned shift slot", zap.Int64("slot_id", slotID.Int64()))
	return true, nil
}

func normalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
