package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	branchdomain "github.com/smallbiznis/rosterd/internal/branch/domain"
	"github.com/smallbiznis/rosterd/internal/employee/domain"
	employeerepository "github.com/smallbiznis/rosterd/internal/employee/repository"
	rosterdomain "github.com/smallbiznis/rosterd/internal/roster/domain"
	slotdomain "github.com/smallbiznis/rosterd/internal/slot/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type employeeFixture struct {
	db    *gorm.DB
	svc   domain.Service
	genID *snowflake.Node
}

func newEmployeeFixture(t *testing.T) *employeeFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&branchdomain.Branch{},
		&branchdomain.Room{},
		&domain.Employee{},
		&slotdomain.ShiftSlot{},
		&rosterdomain.ScheduleEntry{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return &employeeFixture{
		db:    db,
		svc:   NewService(db, employeerepository.NewRepository(db), node),
		genID: node,
	}
}

func TestCreateEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to an active worker", func(t *testing.T) {
		f := newEmployeeFixture(t)
		employee, err := f.svc.Create(ctx, domain.CreateRequest{FirstName: " Ada ", LastName: "Okafor"})
		require.NoError(t, err)
		assert.Equal(t, "Ada", employee.FirstName)
		assert.Equal(t, domain.RoleWorker, employee.Role)
		assert.True(t, employee.IsActive)
	})

	t.Run("blank names are rejected", func(t *testing.T) {
		f := newEmployeeFixture(t)
		_, err := f.svc.Create(ctx, domain.CreateRequest{FirstName: "  ", LastName: "Okafor"})
		assert.ErrorIs(t, err, domain.ErrInvalidName)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		f := newEmployeeFixture(t)
		_, err := f.svc.Create(ctx, domain.CreateRequest{FirstName: "Ada", LastName: "Okafor", Role: "owner"})
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})
}

func TestUpdateEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("patches only the provided fields", func(t *testing.T) {
		f := newEmployeeFixture(t)
		employee, err := f.svc.Create(ctx, domain.CreateRequest{FirstName: "Ada", LastName: "Okafor", Phone: "555-0100"})
		require.NoError(t, err)

		role := domain.RoleAdmin
		inactive := false
		updated, err := f.svc.Update(ctx, employee.ID.String(), domain.UpdateRequest{Role: &role, IsActive: &inactive})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, updated.Role)
		assert.False(t, updated.IsActive)
		assert.Equal(t, "555-0100", updated.Phone)
	})

	t.Run("cannot blank out a name", func(t *testing.T) {
		f := newEmployeeFixture(t)
		employee, err := f.svc.Create(ctx, domain.CreateRequest{FirstName: "Ada", LastName: "Okafor"})
		require.NoError(t, err)

		blank := "  "
		_, err = f.svc.Update(ctx, employee.ID.String(), domain.UpdateRequest{FirstName: &blank})
		assert.ErrorIs(t, err, domain.ErrInvalidName)
	})

	t.Run("missing employee is not found", func(t *testing.T) {
		f := newEmployeeFixture(t)
		_, err := f.svc.Update(ctx, f.genID.Generate().String(), domain.UpdateRequest{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDeleteEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("unassigns schedule entries and slots instead of cascading", func(t *testing.T) {
		f := newEmployeeFixture(t)
		employee, err := f.svc.Create(ctx, domain.CreateRequest{FirstName: "Ada", LastName: "Okafor"})
		require.NoError(t, err)

		slot := slotdomain.ShiftSlot{
			ID:                 f.genID.Generate(),
			RoomID:             f.genID.Generate(),
			ShiftType:          slotdomain.ShiftMorning,
			DayOfWeek:          slotdomain.Monday,
			Date:               time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			AssignedEmployeeID: &employee.ID,
		}
		require.NoError(t, f.db.Create(&slot).Error)

		entry := rosterdomain.ScheduleEntry{
			ID:            f.genID.Generate(),
			WeekStartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			ShiftID:       slot.ID,
			BranchID:      f.genID.Generate(),
			EmployeeID:    &employee.ID,
			Status:        rosterdomain.StatusApproved,
		}
		require.NoError(t, f.db.Create(&entry).Error)

		require.NoError(t, f.svc.Delete(ctx, employee.ID.String()))

		_, err = f.svc.Get(ctx, employee.ID.String())
		assert.ErrorIs(t, err, domain.ErrNotFound)

		var storedEntry rosterdomain.ScheduleEntry
		require.NoError(t, f.db.First(&storedEntry, "id = ?", entry.ID).Error)
		assert.Nil(t, storedEntry.EmployeeID)

		var storedSlot slotdomain.ShiftSlot
		require.NoError(t, f.db.First(&storedSlot, "id = ?", slot.ID).Error)
		assert.Nil(t, storedSlot.AssignedEmployeeID)
	})

	t.Run("missing employee is not found", func(t *testing.T) {
		f := newEmployeeFixture(t)
		err := f.svc.Delete(ctx, f.genID.Generate().String())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListEmployees(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by branch", func(t *testing.T) {
		f := newEmployeeFixture(t)
		branchID := f.genID.Generate()
		otherBranchID := f.genID.Generate()

		_, err := f.svc.Create(ctx, domain.CreateRequest{FirstName: "Ada", LastName: "Okafor", BranchID: &branchID})
		require.NoError(t, err)
		_, err = f.svc.Create(ctx, domain.CreateRequest{FirstName: "Ben", LastName: "Silva", BranchID: &otherBranchID})
		require.NoError(t, err)

		all, err := f.svc.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 2)

		scoped, err := f.svc.List(ctx, branchID.String())
		require.NoError(t, err)
		require.Len(t, scoped, 1)
		assert.Equal(t, "Ada", scoped[0].FirstName)
	})
}
