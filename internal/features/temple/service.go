package temple

import (
	"context"
	"fmt"
	"strings"
)

type TempleService interface {
	CreateTemple(ctx context.Context, temple *Temple) error
	GetTemple(ctx context.Context, id string) (*Temple, error)
	ListTemples(ctx context.Context) ([]Temple, error)
	UpdateTemple(ctx context.Context, id string, temple *Temple) error
	DeleteTemple(ctx context.Context, id string) error
}

type TempleServiceImpl struct {
	TempleRepo TempleRepository
}

func NewTempleService(templeRepo TempleRepository) TempleService {
	return &TempleServiceImpl{TempleRepo: templeRepo}
}

func (s *TempleServiceImpl) CreateTemple(ctx context.Context, temple *Temple) error {
	if strings.TrimSpace(temple.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return s.TempleRepo.Create(ctx, temple)
}

func (s *TempleServiceImpl) GetTemple(ctx context.Context, id string) (*Temple, error) {
	return s.TempleRepo.Get(ctx, id)
}

func (s *TempleServiceImpl) ListTemples(ctx context.Context) ([]Temple, error) {
	return s.TempleRepo.List(ctx)
}

func (s *TempleServiceImpl) UpdateTemple(ctx context.Context, id string, temple *Temple) error {
	if strings.TrimSpace(temple.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return s.TempleRepo.Update(ctx, id, temple)
}

func (s *TempleServiceImpl) DeleteTemple(ctx context.Context, id string) error {
	return s.TempleRepo.Delete(ctx, id)
}
