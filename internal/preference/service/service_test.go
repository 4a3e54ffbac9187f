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
	employeedomain "github.com/smallbiznis/rosterd/internal/employee/domain"
	employeerepository "github.com/smallbiznis/rosterd/internal/employee/repository"
	"github.com/smallbiznis/rosterd/internal/preference/domain"
	preferencerepository "github.com/smallbiznis/rosterd/internal/preference/repository"
	slotdomain "github.com/smallbiznis/rosterd/internal/slot/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type preferenceFixture struct {
	db     *gorm.DB
	svc    domain.Service
	genID  *snowflake.Node
	branch branchdomain.Branch
	room   branchdomain.Room
	worker employeedomain.Employee
}

func newPreferenceFixture(t *testing.T) *preferenceFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&branchdomain.Branch{},
		&branchdomain.Room{},
		&employeedomain.Employee{},
		&domain.ShiftPreference{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	ctx := context.Background()
	branchRepo := branchrepository.NewRepository(db)
	employeeRepo := employeerepository.NewRepository(db)
	svc := NewService(preferencerepository.NewRepository(db), branchRepo, employeeRepo, node, zaptest.NewLogger(t))

	branch := branchdomain.Branch{ID: node.Generate(), Name: "Downtown", Slug: "downtown"}
	require.NoError(t, branchRepo.CreateBranch(ctx, branch))
	room := branchdomain.Room{ID: node.Generate(), BranchID: branch.ID, Name: "Room A"}
	require.NoError(t, branchRepo.CreateRoom(ctx, room))
	worker := employeedomain.Employee{ID: node.Generate(), FirstName: "Ada", LastName: "Okafor", Role: employeedomain.RoleWorker, IsActive: true, BranchID: &branch.ID}
	require.NoError(t, employeeRepo.Create(ctx, worker))

	return &preferenceFixture{db: db, svc: svc, genID: node, branch: branch, room: room, worker: worker}
}

func (f *preferenceFixture) submitRequest() domain.SubmitRequest {
	return domain.SubmitRequest{
		EmployeeID:    f.worker.ID,
		BranchID:      f.branch.ID,
		WeekStartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DayOfWeek:     slotdomain.Monday,
		ShiftType:     slotdomain.ShiftMorning,
		RoomID:        f.room.ID,
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending preference", func(t *testing.T) {
		f := newPreferenceFixture(t)
		preference, err := f.svc.Submit(ctx, f.submitRequest())
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, preference.Status)
		assert.Equal(t, f.worker.ID, preference.EmployeeID)
	})

	t.Run("resubmitting the same wish resets it to pending", func(t *testing.T) {
		f := newPreferenceFixture(t)
		first, err := f.svc.Submit(ctx, f.submitRequest())
		require.NoError(t, err)

		_, err = f.svc.Review(ctx, first.ID.String(), domain.StatusRejected)
		require.NoError(t, err)

		second, err := f.svc.Submit(ctx, f.submitRequest())
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, domain.StatusPending, second.Status)

		var count int64
		require.NoError(t, f.db.Model(&domain.ShiftPreference{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("a different day is a different wish", func(t *testing.T) {
		f := newPreferenceFixture(t)
		first, err := f.svc.Submit(ctx, f.submitRequest())
		require.NoError(t, err)

		req := f.submitRequest()
		req.DayOfWeek = slotdomain.Tuesday
		second, err := f.svc.Submit(ctx, req)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("room outside branch is rejected", func(t *testing.T) {
		f := newPreferenceFixture(t)
		other := branchdomain.Branch{ID: f.genID.Generate(), Name: "Uptown", Slug: "uptown"}
		require.NoError(t, branchrepository.NewRepository(f.db).CreateBranch(ctx, other))

		req := f.submitRequest()
		req.BranchID = other.ID
		_, err := f.svc.Submit(ctx, req)
		assert.ErrorIs(t, err, slotdomain.ErrRoomOutsideBranch)
	})

	t.Run("unknown employee is rejected", func(t *testing.T) {
		f := newPreferenceFixture(t)
		req := f.submitRequest()
		req.EmployeeID = f.genID.Generate()
		_, err := f.svc.Submit(ctx, req)
		assert.ErrorIs(t, err, employeedomain.ErrNotFound)
	})

	t.Run("invalid enums are rejected", func(t *testing.T) {
		f := newPreferenceFixture(t)

		req := f.submitRequest()
		req.ShiftType = "overnight"
		_, err := f.svc.Submit(ctx, req)
		assert.ErrorIs(t, err, slotdomain.ErrInvalidShiftType)

		req = f.submitRequest()
		req.DayOfWeek = "Someday"
		_, err = f.svc.Submit(ctx, req)
		assert.ErrorIs(t, err, slotdomain.ErrInvalidDay)
	})
}

func TestReview(t *testing.T) {
	ctx := context.Background()

	t.Run("approves a pending preference", func(t *testing.T) {
		f := newPreferenceFixture(t)
		preference, err := f.svc.Submit(ctx, f.submitRequest())
		require.NoError(t, err)

		reviewed, err := f.svc.Review(ctx, preference.ID.String(), domain.StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, reviewed.Status)
	})

	t.Run("re-review flips the decision", func(t *testing.T) {
		f := newPreferenceFixture(t)
		preference, err := f.svc.Submit(ctx, f.submitRequest())
		require.NoError(t, err)

		_, err = f.svc.Review(ctx, preference.ID.String(), domain.StatusApproved)
		require.NoError(t, err)
		reviewed, err := f.svc.Review(ctx, preference.ID.String(), domain.StatusRejected)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusRejected, reviewed.Status)
	})

	t.Run("pending is not a review target", func(t *testing.T) {
		f := newPreferenceFixture(t)
		preference, err := f.svc.Submit(ctx, f.submitRequest())
		require.NoError(t, err)

		_, err = f.svc.Review(ctx, preference.ID.String(), domain.StatusPending)
		assert.ErrorIs(t, err, domain.ErrInvalidReviewStatus)
	})

	t.Run("missing or malformed id is not found", func(t *testing.T) {
		f := newPreferenceFixture(t)
		_, err := f.svc.Review(ctx, f.genID.Generate().String(), domain.StatusApproved)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = f.svc.Review(ctx, "not-an-id", domain.StatusApproved)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by employee and week", func(t *testing.T) {
		f := newPreferenceFixture(t)
		employeeRepo := employeerepository.NewRepository(f.db)
		other := employeedomain.Employee{ID: f.genID.Generate(), FirstName: "Ben", LastName: "Silva", Role: employeedomain.RoleWorker, IsActive: true, BranchID: &f.branch.ID}
		require.NoError(t, employeeRepo.Create(ctx, other))

		week1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		week2 := week1.AddDate(0, 0, 7)

		_, err := f.svc.Submit(ctx, f.submitRequest())
		require.NoError(t, err)

		req := f.submitRequest()
		req.WeekStartDate = week2
		_, err = f.svc.Submit(ctx, req)
		require.NoError(t, err)

		req = f.submitRequest()
		req.EmployeeID = other.ID
		_, err = f.svc.Submit(ctx, req)
		require.NoError(t, err)

		mine, err := f.svc.List(ctx, domain.ListFilter{EmployeeID: &f.worker.ID})
		require.NoError(t, err)
		assert.Len(t, mine, 2)

		thisWeek, err := f.svc.List(ctx, domain.ListFilter{EmployeeID: &f.worker.ID, Week: &week1})
		require.NoError(t, err)
		assert.Len(t, thisWeek, 1)

		branchWide, err := f.svc.List(ctx, domain.ListFilter{BranchID: &f.branch.ID})
		require.NoError(t, err)
		assert.Len(t, branchWide, 3)
	})
}
