package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	branchdomain "github.com/smallbiznis/rosterd/internal/branch/domain"
	branchrepository "github.com/smallbiznis/rosterd/internal/branch/repository"
	"github.com/smallbiznis/rosterd/internal/config"
	employeedomain "github.com/smallbiznis/rosterd/internal/employee/domain"
	employeerepository "github.com/smallbiznis/rosterd/internal/employee/repository"
	"github.com/smallbiznis/rosterd/internal/notification/domain"
	notificationrepository "github.com/smallbiznis/rosterd/internal/notification/repository"
	rosterdomain "github.com/smallbiznis/rosterd/internal/roster/domain"
	slotdomain "github.com/smallbiznis/rosterd/internal/slot/domain"
	slotrepository "github.com/smallbiznis/rosterd/internal/slot/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type notificationFixture struct {
	db       *gorm.DB
	svc      domain.Service
	repo     domain.Repository
	slotRepo slotdomain.Repository
	genID    *snowflake.Node
	branch   branchdomain.Branch
	worker   employeedomain.Employee
	worker2  employeedomain.Employee
}

func newNotificationFixture(t *testing.T) *notificationFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&branchdomain.Branch{},
		&branchdomain.Room{},
		&employeedomain.Employee{},
		&slotdomain.ShiftSlot{},
		&domain.Notification{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	ctx := context.Background()
	branchRepo := branchrepository.NewRepository(db)
	employeeRepo := employeerepository.NewRepository(db)
	repo := notificationrepository.NewRepository(db)
	svc := NewService(repo, employeeRepo, node, zaptest.NewLogger(t))

	branch := branchdomain.Branch{ID: node.Generate(), Name: "Downtown", Slug: "downtown"}
	require.NoError(t, branchRepo.CreateBranch(ctx, branch))
	worker := employeedomain.Employee{ID: node.Generate(), FirstName: "Ada", LastName: "Okafor", Role: employeedomain.RoleWorker, IsActive: true, BranchID: &branch.ID}
	worker2 := employeedomain.Employee{ID: node.Generate(), FirstName: "Ben", LastName: "Silva", Role: employeedomain.RoleWorker, IsActive: true, BranchID: &branch.ID}
	require.NoError(t, employeeRepo.Create(ctx, worker))
	require.NoError(t, employeeRepo.Create(ctx, worker2))

	return &notificationFixture{
		db:       db,
		svc:      svc,
		repo:     repo,
		slotRepo: slotrepository.NewRepository(db),
		genID:    node,
		branch:   branch,
		worker:   worker,
		worker2:  worker2,
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates for a known employee", func(t *testing.T) {
		f := newNotificationFixture(t)
		notification, err := f.svc.Create(ctx, domain.CreateRequest{
			EmployeeID: f.worker.ID,
			Message:    "Your shift has been approved.",
		})
		require.NoError(t, err)
		assert.False(t, notification.IsRead)
	})

	t.Run("blank message is rejected", func(t *testing.T) {
		f := newNotificationFixture(t)
		_, err := f.svc.Create(ctx, domain.CreateRequest{EmployeeID: f.worker.ID, Message: "   "})
		assert.ErrorIs(t, err, domain.ErrInvalidMessage)
	})

	t.Run("unknown employee is rejected", func(t *testing.T) {
		f := newNotificationFixture(t)
		_, err := f.svc.Create(ctx, domain.CreateRequest{EmployeeID: f.genID.Generate(), Message: "hello"})
		assert.ErrorIs(t, err, employeedomain.ErrNotFound)
	})
}

func TestListing(t *testing.T) {
	ctx := context.Background()

	t.Run("lists an employee's notifications newest first", func(t *testing.T) {
		f := newNotificationFixture(t)
		base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		for i, message := range []string{"first", "second", "third"} {
			require.NoError(t, f.repo.Create(ctx, domain.Notification{
				ID:         f.genID.Generate(),
				EmployeeID: f.worker.ID,
				Message:    message,
				CreatedAt:  base.Add(time.Duration(i) * time.Minute),
			}))
		}
		require.NoError(t, f.repo.Create(ctx, domain.Notification{
			ID:         f.genID.Generate(),
			EmployeeID: f.worker2.ID,
			Message:    "not yours",
			CreatedAt:  base,
		}))

		notifications, err := f.svc.ListForEmployee(ctx, f.worker.ID)
		require.NoError(t, err)
		require.Len(t, notifications, 3)
		assert.Equal(t, "third", notifications[0].Message)
		assert.Equal(t, "first", notifications[2].Message)
	})

	t.Run("branch listing spans all employees of the branch", func(t *testing.T) {
		f := newNotificationFixture(t)
		for _, employee := range []employeedomain.Employee{f.worker, f.worker2} {
			_, err := f.svc.Create(ctx, domain.CreateRequest{EmployeeID: employee.ID, Message: "shift approved"})
			require.NoError(t, err)
		}

		notifications, err := f.svc.ListForBranch(ctx, f.branch.ID)
		require.NoError(t, err)
		assert.Len(t, notifications, 2)

		notifications, err = f.svc.ListForBranch(ctx, f.genID.Generate())
		require.NoError(t, err)
		assert.Empty(t, notifications)
	})
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("marks own notification read", func(t *testing.T) {
		f := newNotificationFixture(t)
		notification, err := f.svc.Create(ctx, domain.CreateRequest{EmployeeID: f.worker.ID, Message: "hello"})
		require.NoError(t, err)

		require.NoError(t, f.svc.MarkRead(ctx, f.worker.ID, notification.ID.String()))

		stored, err := f.repo.Get(ctx, notification.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsRead)
	})

	t.Run("someone else's notification reads as not found", func(t *testing.T) {
		f := newNotificationFixture(t)
		notification, err := f.svc.Create(ctx, domain.CreateRequest{EmployeeID: f.worker.ID, Message: "hello"})
		require.NoError(t, err)

		err = f.svc.MarkRead(ctx, f.worker2.ID, notification.ID.String())
		assert.ErrorIs(t, err, domain.ErrNotFound)

		stored, err := f.repo.Get(ctx, notification.ID)
		require.NoError(t, err)
		assert.False(t, stored.IsRead)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		f := newNotificationFixture(t)
		err := f.svc.MarkRead(ctx, f.worker.ID, "not-an-id")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestApprovalNotifier(t *testing.T) {
	ctx := context.Background()
	week := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	newEntry := func(f *notificationFixture, employeeID *snowflake.ID, shiftID snowflake.ID) rosterdomain.ScheduleEntry {
		return rosterdomain.ScheduleEntry{
			ID:            f.genID.Generate(),
			WeekStartDate: week,
			ShiftID:       shiftID,
			BranchID:      f.branch.ID,
			EmployeeID:    employeeID,
			Status:        rosterdomain.StatusApproved,
		}
	}

	t.Run("writes an enriched message when the slot is known", func(t *testing.T) {
		f := newNotificationFixture(t)
		notifier := NewApprovalNotifier(config.Config{NotifyOnApproval: true}, f.svc, f.slotRepo, f.genID, zaptest.NewLogger(t))

		slot := slotdomain.ShiftSlot{
			ID:        f.genID.Generate(),
			RoomID:    f.genID.Generate(),
			ShiftType: slotdomain.ShiftMorning,
			DayOfWeek: slotdomain.Monday,
			Date:      week.AddDate(0, 0, 1),
		}
		require.NoError(t, f.db.Create(&slot).Error)

		notifier.ScheduleApproved(ctx, newEntry(f, &f.worker.ID, slot.ID))

		notifications, err := f.svc.ListForEmployee(ctx, f.worker.ID)
		require.NoError(t, err)
		require.Len(t, notifications, 1)
		assert.Contains(t, notifications[0].Message, "morning")
		assert.Contains(t, notifications[0].Message, "2026-03-02")
	})

	t.Run("falls back to the week when the slot is gone", func(t *testing.T) {
		f := newNotificationFixture(t)
		notifier := NewApprovalNotifier(config.Config{NotifyOnApproval: true}, f.svc, f.slotRepo, f.genID, zaptest.NewLogger(t))

		notifier.ScheduleApproved(ctx, newEntry(f, &f.worker.ID, f.genID.Generate()))

		notifications, err := f.svc.ListForEmployee(ctx, f.worker.ID)
		require.NoError(t, err)
		require.Len(t, notifications, 1)
		assert.Contains(t, notifications[0].Message, "week of 2026-03-01")
	})

	t.Run("skips unassigned entries and disabled config", func(t *testing.T) {
		f := newNotificationFixture(t)

		enabled := NewApprovalNotifier(config.Config{NotifyOnApproval: true}, f.svc, f.slotRepo, f.genID, zaptest.NewLogger(t))
		enabled.ScheduleApproved(ctx, newEntry(f, nil, f.genID.Generate()))

		disabled := NewApprovalNotifier(config.Config{}, f.svc, f.slotRepo, f.genID, zaptest.NewLogger(t))
		disabled.ScheduleApproved(ctx, newEntry(f, &f.worker.ID, f.genID.Generate()))

		var count int64
		require.NoError(t, f.db.Model(&domain.Notification{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})
}
