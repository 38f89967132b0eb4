package club

import (
	"context"
	"fmt"
	"strings"

	"bbt-connect/internal/features/region"
)

type ClubService interface {
	CreateClub(ctx context.Context, club *ReadingClub) error
	GetClub(ctx context.Context, id string) (*ReadingClub, error)
	ListClubs(ctx context.Context) ([]ReadingClub, error)
	ListClubsByRegion(ctx context.Context, regionID string) ([]ReadingClub, error)
	UpdateClub(ctx context.Context, id string, club *ReadingClub) error
	DeleteClub(ctx context.Context, id string) error
}

type ClubServiceImpl struct {
	ClubRepo      ClubRepository
	RegionService region.RegionService
}

func NewClubService(clubRepo ClubRepository, regionService region.RegionService) ClubService {
	return &ClubServiceImpl{
		ClubRepo:      clubRepo,
		RegionService: regionService,
	}
}

// CreateClub writes the club document and then records its ID on the
// parent region's denormalized array. The two writes are sequential, not
// transactional: a failure between them leaves the region array behind,
// which the next re-assignment repairs.
func (s *ClubServiceImpl) CreateClub(ctx context.Context, club *ReadingClub) error {
	if strings.TrimSpace(club.Name) == "" {
		return fmt.Errorf("name is required")
	}

	if err := s.ClubRepo.Create(ctx, club); err != nil {
		return err
	}

	if club.RegionID != "" {
		return s.RegionService.AttachChild(ctx, club.RegionID, region.FieldReadingClubs, club.ID.Hex())
	}
	return nil
}

func (s *ClubServiceImpl) GetClub(ctx context.Context, id string) (*ReadingClub, error) {
	return s.ClubRepo.Get(ctx, id)
}

func (s *ClubServiceImpl) ListClubs(ctx context.Context) ([]ReadingClub, error) {
	return s.ClubRepo.List(ctx)
}

func (s *ClubServiceImpl) ListClubsByRegion(ctx context.Context, regionID string) ([]ReadingClub, error) {
	return s.ClubRepo.ListByRegion(ctx, regionID)
}

// UpdateClub re-syncs the region arrays when the club moved between regions
func (s *ClubServiceImpl) UpdateClub(ctx context.Context, id string, club *ReadingClub) error {
	if strings.TrimSpace(club.Name) == "" {
		return fmt.Errorf("name is required")
	}

	old, err := s.ClubRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.ClubRepo.Update(ctx, id, club); err != nil {
		return err
	}

	if old.RegionID != club.RegionID {
		if old.RegionID != "" {
			if err := s.RegionService.DetachChild(ctx, old.RegionID, region.FieldReadingClubs, id); err != nil {
				return err
			}
		}
		if club.RegionID != "" {
			return s.RegionService.AttachChild(ctx, club.RegionID, region.FieldReadingClubs, id)
		}
	}
	return nil
}

func (s *ClubServiceImpl) DeleteClub(ctx context.Context, id string) error {
	old, err := s.ClubRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.ClubRepo.Delete(ctx, id); err != nil {
		return err
	}

	if old.RegionID != "" {
		return s.RegionService.DetachChild(ctx, old.RegionID, region.FieldReadingClubs, id)
	}
	return nil
}
