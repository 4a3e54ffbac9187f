package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/rosterd/internal/branch/domain"
	branchrepository "github.com/smallbiznis/rosterd/internal/branch/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type branchFixture struct {
	db    *gorm.DB
	svc   domain.Service
	repo  domain.Repository
	genID *snowflake.Node
}

func newBranchFixture(t *testing.T) *branchFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&domain.Branch{}, &domain.Room{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	repo := branchrepository.NewRepository(db)
	return &branchFixture{db: db, svc: NewService(repo, node), repo: repo, genID: node}
}

func TestCreateBranch(t *testing.T) {
	ctx := context.Background()

	t.Run("slugifies the name", func(t *testing.T) {
		f := newBranchFixture(t)
		branch, err := f.svc.CreateBranch(ctx, domain.CreateBranchRequest{Name: "  Midtown Clinic  ", Location: "5th Ave"})
		require.NoError(t, err)
		assert.Equal(t, "Midtown Clinic", branch.Name)
		assert.Equal(t, "midtown-clinic", branch.Slug)
		assert.Equal(t, "5th Ave", branch.Location)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		f := newBranchFixture(t)
		_, err := f.svc.CreateBranch(ctx, domain.CreateBranchRequest{Name: "   "})
		assert.ErrorIs(t, err, domain.ErrInvalidName)
	})
}

func TestGetBranch(t *testing.T) {
	ctx := context.Background()

	t.Run("round trips by id", func(t *testing.T) {
		f := newBranchFixture(t)
		created, err := f.svc.CreateBranch(ctx, domain.CreateBranchRequest{Name: "Downtown"})
		require.NoError(t, err)

		fetched, err := f.svc.GetBranch(ctx, created.ID.String())
		require.NoError(t, err)
		assert.Equal(t, created.ID, fetched.ID)
	})

	t.Run("missing branch is not found", func(t *testing.T) {
		f := newBranchFixture(t)
		_, err := f.svc.GetBranch(ctx, f.genID.Generate().String())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("malformed id is invalid", func(t *testing.T) {
		f := newBranchFixture(t)
		_, err := f.svc.GetBranch(ctx, "not-an-id")
		assert.ErrorIs(t, err, domain.ErrInvalidBranch)
	})
}

func TestRooms(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and lists rooms under a branch", func(t *testing.T) {
		f := newBranchFixture(t)
		branch, err := f.svc.CreateBranch(ctx, domain.CreateBranchRequest{Name: "Downtown"})
		require.NoError(t, err)

		for _, name := range []string{"Room B", "Room A"} {
			_, err := f.svc.CreateRoom(ctx, domain.CreateRoomRequest{BranchID: branch.ID, Name: name})
			require.NoError(t, err)
		}

		rooms, err := f.svc.ListRooms(ctx, branch.ID.String())
		require.NoError(t, err)
		require.Len(t, rooms, 2)
		assert.Equal(t, "Room A", rooms[0].Name)
		assert.Equal(t, "Room B", rooms[1].Name)
	})

	t.Run("room under an unknown branch is rejected", func(t *testing.T) {
		f := newBranchFixture(t)
		_, err := f.svc.CreateRoom(ctx, domain.CreateRoomRequest{BranchID: f.genID.Generate(), Name: "Room A"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("looks up a room by name within the branch", func(t *testing.T) {
		f := newBranchFixture(t)
		branch, err := f.svc.CreateBranch(ctx, domain.CreateBranchRequest{Name: "Downtown"})
		require.NoError(t, err)
		created, err := f.svc.CreateRoom(ctx, domain.CreateRoomRequest{BranchID: branch.ID, Name: "Room A"})
		require.NoError(t, err)

		room, err := f.repo.GetRoomByName(ctx, branch.ID, "Room A")
		require.NoError(t, err)
		assert.Equal(t, created.ID, room.ID)

		_, err = f.repo.GetRoomByName(ctx, branch.ID, "Boiler Room")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
