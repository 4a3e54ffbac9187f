package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/smallbiznis/rosterd/internal/branch/domain"
	"gorm.io/gorm"
)

type service struct {
	repo  domain.Repository
	genID *snowflake.Node
}

func NewService(repo domain.Repository, genID *snowflake.Node) domain.Service {
	return &service{repo: repo, genID: genID}
}

func (s *service) CreateBranch(ctx context.Context, req domain.CreateBranchRequest) (*domain.Branch, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	now := time.Now().UTC()
	branch := domain.Branch{
		ID:        s.genID.Generate(),
		Name:      name,
		Slug:      slug.Make(name),
		Location:  strings.TrimSpace(req.Location),
		Notes:     strings.TrimSpace(req.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateBranch(ctx, branch); err != nil {
		return nil, err
	}
	return &branch, nil
}

func (s *service) GetBranch(ctx context.Context, id string) (*domain.Branch, error) {
	branchID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidBranch
	}

	branch, err := s.repo.GetBranch(ctx, branchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return branch, nil
}

func (s *service) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	return s.repo.ListBranches(ctx)
}

func (s *service) CreateRoom(ctx context.Context, req domain.CreateRoomRequest) (*domain.Room, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	if _, err := s.repo.GetBranch(ctx, req.BranchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	room := domain.Room{
		ID:          s.genID.Generate(),
		BranchID:    req.BranchID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.CreateRoom(ctx, room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *service) ListRooms(ctx context.Context, branchID string) ([]domain.Room, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(branchID))
	if err != nil {
		return nil, domain.ErrInvalidBranch
	}

	if _, err := s.repo.GetBranch(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return s.repo.ListRooms(ctx, id)
}
