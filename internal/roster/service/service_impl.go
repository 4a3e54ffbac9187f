package service

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	branchdomain "github.com/smallbiznis/rosterd/internal/branch/domain"
	"github.com/smallbiznis/rosterd/internal/clock"
	employeedomain "github.com/smallbiznis/rosterd/internal/employee/domain"
	"github.com/smallbiznis/rosterd/internal/roster/domain"
	slotdomain "github.com/smallbiznis/rosterd/internal/slot/domain"
	"github.com/smallbiznis/rosterd/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type service struct {
	db           *gorm.DB
	repo         domain.Repository
	slotRepo     slotdomain.Repository
	slotSvc      slotdomain.Service
	branchRepo   branchdomain.Repository
	employeeRepo employeedomain.Repository
	genID        *snowflake.Node
	log          *zap.Logger
	clock        clock.Clock
	observers    []domain.ApprovalObserver
}

type Params struct {
	fx.In

	DB           *gorm.DB
	Repo         domain.Repository
	SlotRepo     slotdomain.Repository
	SlotSvc      slotdomain.Service
	BranchRepo   branchdomain.Repository
	EmployeeRepo employeedomain.Repository
	GenID        *snowflake.Node
	Log          *zap.Logger
	Clock        clock.Clock
	Observers    []domain.ApprovalObserver `group:"approval_observers"`
}

func NewService(p Params) domain.Service {
	return &service{
		db:           p.DB,
		repo:         p.Repo,
		slotRepo:     p.SlotRepo,
		slotSvc:      p.SlotSvc,
		branchRepo:   p.BranchRepo,
		employeeRepo: p.EmployeeRepo,
		genID:        p.GenID,
		log:          p.Log.Named("roster.service"),
		clock:        p.Clock,
		observers:    p.Observers,
	}
}

func (s *service) Reconcile(ctx context.Context, req domain.ReconcileRequest) (*domain.ReconcileResult, error) {
	status := req.Status
	if status == "" {
		status = domain.StatusDraft
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	week := weekDate(req.WeekStartDate)

	if _, err := s.branchRepo.GetBranch(ctx, req.BranchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, branchdomain.ErrNotFound
		}
		return nil, err
	}

	affected := 0
	approved := make([]domain.ScheduleEntry, 0)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		slots := s.slotSvc.WithTx(tx)
		branches := s.branchRepo.WithTx(tx)
		employees := s.employeeRepo.WithTx(tx)

		for _, day := range req.Grid {
			if !day.Day.Valid() {
				if req.Strict {
					return slotdomain.ErrInvalidDay
				}
				s.log.Warn("skipping day with unknown label", zap.String("day", string(day.Day)))
				continue
			}

			for _, group := range day.Shifts {
				if !group.ShiftType.Valid() {
					if req.Strict {
						return slotdomain.ErrInvalidShiftType
					}
					s.log.Warn("skipping shift group with unknown type",
						zap.String("shift_type", string(group.ShiftType)))
					continue
				}

				for _, cell := range group.Rooms {
					room, err := branches.GetRoomByName(ctx, req.BranchID, cell.RoomName)
					if err != nil {
						if errors.Is(err, gorm.ErrRecordNotFound) {
							if req.Strict {
								return &domain.UnknownRoomError{Room: cell.RoomName}
							}
							s.log.Warn("skipping entry for unknown room",
								zap.String("room", cell.RoomName),
								zap.Int64("branch_id", req.BranchID.Int64()))
							continue
						}
						return err
					}

					employeeID, err := s.resolveEmployee(ctx, employees, cell.EmployeeID, req.Strict)
					if err != nil {
						return err
					}

					slot, err := slots.FindOrCreate(ctx, slotdomain.ResolveRequest{
						BranchID:  req.BranchID,
						RoomID:    room.ID,
						ShiftType: group.ShiftType,
						DayOfWeek: day.Day,
						Date:      week.AddDate(0, 0, dayOffset(day.Day)),
					})
					if err != nil {
						return err
					}

					entry, created, err := s.upsertEntry(ctx, repo, week, req.BranchID, slot.ID, employeeID, status)
					if err != nil {
						return err
					}
					if status == domain.StatusApproved && (created || entry.Status != domain.StatusApproved) {
						approved = append(approved, withStatus(*entry, employeeID, status))
					}
					affected++
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyApproved(ctx, approved)

	return &domain.ReconcileResult{EntriesAffected: affected}, nil
}

// resolveEmployee maps an optional employee reference to a concrete id.
// The tolerant path treats an unresolved id as "no employee"; the strict
// creation path makes it a hard error.
func (s *service) resolveEmployee(ctx context.Context, repo employeedomain.Repository, id *snowflake.ID, strict bool) (*snowflake.ID, error) {
	if id == nil {
		return nil, nil
	}

	employee, err := repo.Get(ctx, *id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if strict {
				return nil, employeedomain.ErrNotFound
			}
			s.log.Warn("skipping unresolved employee reference", zap.Int64("employee_id", id.Int64()))
			return nil, nil
		}
		return nil, err
	}
	return &employee.ID, nil
}

func (s *service) upsertEntry(ctx context.Context, repo domain.Repository, week time.Time, branchID snowflake.ID, shiftID snowflake.ID, employeeID *snowflake.ID, status domain.Status) (*domain.ScheduleEntry, bool, error) {
	now := time.Now().UTC()

	existing, err := repo.GetByIdentity(ctx, week, branchID, shiftID)
	if err == nil {
		if err := repo.UpdateAssignment(ctx, existing.ID, employeeID, status, now); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	entry := domain.ScheduleEntry{
		ID:            s.genID.Generate(),
		WeekStartDate: week,
		ShiftID:       shiftID,
		EmployeeID:    employeeID,
		BranchID:      branchID,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := repo.Create(ctx, entry); err != nil {
		if db.IsDuplicateKeyErr(err) {
			// Concurrent submission won the insert; fall back to updating
			// its row. Last writer wins on employee/status.
			winner, getErr := repo.GetByIdentity(ctx, week, branchID, shiftID)
			if getErr != nil {
				return nil, false, getErr
			}
			if err := repo.UpdateAssignment(ctx, winner.ID, employeeID, status, now); err != nil {
				return nil, false, err
			}
			return winner, false, nil
		}
		return nil, false, err
	}
	return &entry, true, nil
}

func (s *service) BulkUpdateStatus(ctx context.Context, req domain.BulkUpdateRequest) (int, error) {
	if !req.Status.Valid() {
		return 0, domain.ErrInvalidStatus
	}

	week := weekDate(req.WeekStartDate)

	if _, err := s.branchRepo.GetBranch(ctx, req.BranchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, branchdomain.ErrNotFound
		}
		return 0, err
	}

	updated := 0
	approved := make([]domain.ScheduleEntry, 0)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		slotRepo := s.slotRepo.WithTx(tx)
		employees := s.employeeRepo.WithTx(tx)

		for _, filter := range req.Filters {
			slots, err := slotRepo.FindMatching(ctx, req.BranchID, filter.RoomName, filter.ShiftType, filter.Day)
			if err != nil {
				return err
			}
			if len(slots) == 0 {
				s.log.Warn("no slot matches status update filter",
					zap.String("room", filter.RoomName),
					zap.String("shift_type", string(filter.ShiftType)),
					zap.String("day", string(filter.Day)))
				continue
			}

			for _, slot := range slots {
				entry, err := repo.GetByIdentity(ctx, week, req.BranchID, slot.ID)
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						s.log.Warn("no schedule entry for matched slot",
							zap.Int64("slot_id", slot.ID.Int64()),
							zap.Time("week", week))
						continue
					}
					return err
				}

				// Bulk updates are tolerant like saves: a reference to an
				// employee that no longer exists keeps the current
				// assignment instead of writing a dangling id.
				employeeID := entry.EmployeeID
				if filter.EmployeeID != nil {
					resolved, err := s.resolveEmployee(ctx, employees, filter.EmployeeID, false)
					if err != nil {
						return err
					}
					if resolved != nil {
						employeeID = resolved
					}
				}

				now := time.Now().UTC()
				if err := repo.UpdateAssignment(ctx, entry.ID, employeeID, req.Status, now); err != nil {
					return err
				}
				if req.Status == domain.StatusApproved && entry.Status != domain.StatusApproved {
					approved = append(approved, withStatus(*entry, employeeID, req.Status))
				}
				updated++
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	s.notifyApproved(ctx, approved)

	return updated, nil
}

func (s *service) UpdateEntryStatus(ctx context.Context, id string, status domain.Status) (*domain.ScheduleEntry, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	entryID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, domain.ErrInvalidEntry
	}

	entry, err := s.repo.Get(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateAssignment(ctx, entry.ID, entry.EmployeeID, status, now); err != nil {
		return nil, err
	}

	wasApproved := entry.Status == domain.StatusApproved
	entry.Status = status
	entry.UpdatedAt = now

	if status == domain.StatusApproved && !wasApproved {
		s.notifyApproved(ctx, []domain.ScheduleEntry{*entry})
	}

	return entry, nil
}

func (s *service) ResolveWeek(ctx context.Context, branchID snowflake.ID, status domain.Status, requested *time.Time) (*time.Time, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	if requested != nil {
		week := weekDate(*requested)
		return &week, nil
	}

	current := weekStart(s.clock.Now())
	has, err := s.repo.HasWeek(ctx, branchID, current, status)
	if err != nil {
		return nil, err
	}
	if has {
		return &current, nil
	}

	return s.repo.MaxWeek(ctx, branchID, status)
}

func (s *service) Fetch(ctx context.Context, req domain.FetchRequest) ([]domain.RosterItem, error) {
	if _, err := s.branchRepo.GetBranch(ctx, req.BranchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, branchdomain.ErrNotFound
		}
		return nil, err
	}

	week, err := s.ResolveWeek(ctx, req.BranchID, req.Status, req.Week)
	if err != nil {
		return nil, err
	}
	if week == nil {
		// No schedule for this branch+status at all. Empty, not an error.
		return []domain.RosterItem{}, nil
	}

	rows, err := s.repo.FetchRoster(ctx, req.BranchID, req.Status, *week)
	if err != nil {
		return nil, err
	}

	items := make([]domain.RosterItem, 0, len(rows))
	for _, row := range rows {
		item := domain.RosterItem{
			WeekStartDate: row.WeekStartDate.Format("2006-01-02"),
			ShiftDetails: domain.ShiftDetails{
				ShiftType: row.ShiftType,
				Room:      row.RoomName,
				StartTime: row.StartTime,
				EndTime:   row.EndTime,
			},
			Day:          row.Day,
			Status:       row.Status,
			EmployeeName: joinName(row.FirstName, row.LastName),
		}
		if row.EmployeeID != nil {
			id := row.EmployeeID.String()
			item.EmployeeID = &id
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *service) ListWeeks(ctx context.Context, branchID snowflake.ID, status *domain.Status) ([]time.Time, error) {
	if status != nil && !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	if _, err := s.branchRepo.GetBranch(ctx, branchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, branchdomain.ErrNotFound
		}
		return nil, err
	}

	return s.repo.ListWeeks(ctx, branchID, status)
}

func (s *service) DeleteByWeek(ctx context.Context, branchID snowflake.ID, week time.Time) (int64, error) {
	week = weekDate(week)

	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		slots := s.slotSvc.WithTx(tx)

		slotIDs, err := repo.SlotIDsForWeek(ctx, branchID, week)
		if err != nil {
			return err
		}

		deleted, err = repo.DeleteByWeek(ctx, branchID, week)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return domain.ErrEntryNotFound
		}

		for _, slotID := range slotIDs {
			if _, err := slots.Collect(ctx, slotID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("deleted weekly roster",
		zap.Int64("branch_id", branchID.Int64()),
		zap.Time("week", week),
		zap.Int64("deleted", deleted))

	return deleted, nil
}

func (s *service) DeleteEntry(ctx context.Context, id string) error {
	entryID, err := snowflake.ParseString(id)
	if err != nil {
		return domain.ErrInvalidEntry
	}

	entry, err := s.repo.Get(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEntryNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		slots := s.slotSvc.WithTx(tx)

		if err := repo.Delete(ctx, entry.ID); err != nil {
			return err
		}
		_, err := slots.Collect(ctx, entry.ShiftID)
		return err
	})
}

func (s *service) notifyApproved(ctx context.Context, entries []domain.ScheduleEntry) {
	if len(entries) == 0 {
		return
	}
	for _, entry := range entries {
		s.log.Info("schedule entry approved",
			zap.Int64("entry_id", entry.ID.Int64()),
			zap.Int64("branch_id", entry.BranchID.Int64()),
			zap.Time("week", entry.WeekStartDate))
		for _, observer := range s.observers {
			observer.ScheduleApproved(ctx, entry)
		}
	}
}

func withStatus(entry domain.ScheduleEntry, employeeID *snowflake.ID, status domain.Status) domain.ScheduleEntry {
	entry.EmployeeID = employeeID
	entry.Status = status
	return entry
}

func joinName(first, last string) string {
	switch {
	case first == "" && last == "":
		return ""
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

// weekDate normalizes an arbitrary timestamp to a UTC calendar date.
func weekDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// weekStart returns the most recent Sunday on or before t.
func weekStart(t time.Time) time.Time {
	d := weekDate(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

func dayOffset(day slotdomain.DayOfWeek) int {
	switch day {
	case slotdomain.Sunday:
		return 0
	case slotdomain.Monday:
		return 1
	case slotdomain.Tuesday:
		return 2
	case slotdomain.Wednesday:
		return 3
	case slotdomain.Thursday:
		return 4
	case slotdomain.Friday:
		return 5
	case slotdomain.Saturday:
		return 6
	default:
		return 0
	}
}
