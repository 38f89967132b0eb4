package whatsapp

import (
	"context"
	"fmt"
	"strings"

	"bbt-connect/internal/features/region"
)

type GroupService interface {
	CreateGroup(ctx context.Context, group *Group) error
	GetGroup(ctx context.Context, id string) (*Group, error)
	ListGroups(ctx context.Context) ([]Group, error)
	ListGroupsByRegion(ctx context.Context, regionID string) ([]Group, error)
	UpdateGroup(ctx context.Context, id string, group *Group) error
	DeleteGroup(ctx context.Context, id string) error
}

type GroupServiceImpl struct {
	GroupRepo     GroupRepository
	RegionService region.RegionService
}

func NewGroupService(groupRepo GroupRepository, regionService region.RegionService) GroupService {
	return &GroupServiceImpl{
		GroupRepo:     groupRepo,
		RegionService: regionService,
	}
}

func (s *GroupServiceImpl) CreateGroup(ctx context.Context, group *Group) error {
	if err := validateGroup(group); err != nil {
		return err
	}

	if err := s.GroupRepo.Create(ctx, group); err != nil {
		return err
	}

	if group.RegionID != "" {
		return s.RegionService.AttachChild(ctx, group.RegionID, region.FieldWhatsappGroups, group.ID.Hex())
	}
	return nil
}

func (s *GroupServiceImpl) GetGroup(ctx context.Context, id string) (*Group, error) {
	return s.GroupRepo.Get(ctx, id)
}

func (s *GroupServiceImpl) ListGroups(ctx context.Context) ([]Group, error) {
	return s.GroupRepo.List(ctx)
}

func (s *GroupServiceImpl) ListGroupsByRegion(ctx context.Context, regionID string) ([]Group, error) {
	return s.GroupRepo.ListByRegion(ctx, regionID)
}

func (s *GroupServiceImpl) UpdateGroup(ctx context.Context, id string, group *Group) error {
	if err := validateGroup(group); err != nil {
		return err
	}

	old, err := s.GroupRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.GroupRepo.Update(ctx, id, group); err != nil {
		return err
	}

	if old.RegionID != group.RegionID {
		if old.RegionID != "" {
			if err := s.RegionService.DetachChild(ctx, old.RegionID, region.FieldWhatsappGroups, id); err != nil {
				return err
			}
		}
		if group.RegionID != "" {
			return s.RegionService.AttachChild(ctx, group.RegionID, region.FieldWhatsappGroups, id)
		}
	}
	return nil
}

func (s *GroupServiceImpl) DeleteGroup(ctx context.Context, id string) error {
	old, err := s.GroupRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.GroupRepo.Delete(ctx, id); err != nil {
		return err
	}

	if old.RegionID != "" {
		return s.RegionService.DetachChild(ctx, old.RegionID, region.FieldWhatsappGroups, id)
	}
	return nil
}

func validateGroup(group *Group) error {
	if strings.TrimSpace(group.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if group.InviteLink != "" && !strings.HasPrefix(group.InviteLink, "https://") {
		return fmt.Errorf("invite link must be an https URL")
	}
	return nil
}
