package whatsapp

import (
	"github.com/gofiber/fiber/v2"
)

type GroupController struct {
	GroupService GroupService
}

func NewGroupController(groupService GroupService) *GroupController {
	return &GroupController{GroupService: groupService}
}

// Create godoc
func (c *GroupController) Create(ctx *fiber.Ctx) error {
	var group Group
	if err := ctx.BodyParser(&group); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := c.GroupService.CreateGroup(ctx.Context(), &group); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(group)
}

// List godoc
func (c *GroupController) List(ctx *fiber.Ctx) error {
	if regionID := ctx.Query("region"); regionID != "" {
		groups, err := c.GroupService.ListGroupsByRegion(ctx.Context(), regionID)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.JSON(groups)
	}

	groups, err := c.GroupService.ListGroups(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(groups)
}

// Get godoc
func (c *GroupController) Get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	group, err := c.GroupService.GetGroup(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "WhatsApp group not found"})
	}
	return ctx.JSON(group)
}

// Update godoc
func (c *GroupController) Update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var group Group
	if err := ctx.BodyParser(&group); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := c.GroupService.UpdateGroup(ctx.Context(), id, &group); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(group)
}

// Delete godoc
func (c *GroupController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := c.GroupService.DeleteGroup(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
