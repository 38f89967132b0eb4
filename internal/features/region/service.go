package region

import (
	"context"
	"fmt"
	"strings"

	"bbt-connect/pkg/utils"
)

type RegionService interface {
	CreateRegion(ctx context.Context, region *Region) error
	GetRegion(ctx context.Context, id string) (*Region, error)
	ListRegions(ctx context.Context) ([]Region, error)
	UpdateRegion(ctx context.Context, id string, region *Region) error
	DeleteRegion(ctx context.Context, id string) error
	AttachChild(ctx context.Context, regionID, field, childID string) error
	DetachChild(ctx context.Context, regionID, field, childID string) error
}

type RegionServiceImpl struct {
	RegionRepo RegionRepository
}

func NewRegionService(regionRepo RegionRepository) RegionService {
	return &RegionServiceImpl{RegionRepo: regionRepo}
}

func (s *RegionServiceImpl) CreateRegion(ctx context.Context, region *Region) error {
	if strings.TrimSpace(region.Name) == "" {
		return fmt.Errorf("name is required")
	}
	region.Slug = utils.Slugify(region.Name)
	return s.RegionRepo.Create(ctx, region)
}

func (s *RegionServiceImpl) GetRegion(ctx context.Context, id string) (*Region, error) {
	return s.RegionRepo.Get(ctx, id)
}

func (s *RegionServiceImpl) ListRegions(ctx context.Context) ([]Region, error) {
	return s.RegionRepo.List(ctx)
}

func (s *RegionServiceImpl) UpdateRegion(ctx context.Context, id string, region *Region) error {
	if strings.TrimSpace(region.Name) == "" {
		return fmt.Errorf("name is required")
	}
	region.Slug = utils.Slugify(region.Name)
	return s.RegionRepo.Update(ctx, id, region)
}

func (s *RegionServiceImpl) DeleteRegion(ctx context.Context, id string) error {
	region, err := s.RegionRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if len(region.ReadingClubIDs) > 0 || len(region.WhatsappGroupIDs) > 0 {
		return fmt.Errorf("region still has linked clubs or groups")
	}
	return s.RegionRepo.Delete(ctx, id)
}

// AttachChild records a child document ID on the region's denormalized
// array. Called by the club and whatsapp services after the child write.
func (s *RegionServiceImpl) AttachChild(ctx context.Context, regionID, field, childID string) error {
	return s.RegionRepo.AddChildID(ctx, regionID, field, childID)
}

func (s *RegionServiceImpl) DetachChild(ctx context.Context, regionID, field, childID string) error {
	return s.RegionRepo.RemoveChildID(ctx, regionID, field, childID)
}
