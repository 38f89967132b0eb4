package region

import (
	"github.com/gofiber/fiber/v2"
)

type RegionController struct {
	RegionService RegionService
}

func NewRegionController(regionService RegionService) *RegionController {
	return &RegionController{RegionService: regionService}
}

// Create godoc
func (c *RegionController) Create(ctx *fiber.Ctx) error {
	var region Region
	if err := ctx.BodyParser(&region); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := c.RegionService.CreateRegion(ctx.Context(), &region); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(region)
}

// List godoc
func (c *RegionController) List(ctx *fiber.Ctx) error {
	regions, err := c.RegionService.ListRegions(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(regions)
}

// Get godoc
func (c *RegionController) Get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	region, err := c.RegionService.GetRegion(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Region not found"})
	}
	return ctx.JSON(region)
}

// Update godoc
func (c *RegionController) Update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var region Region
	if err := ctx.BodyParser(&region); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := c.RegionService.UpdateRegion(ctx.Context(), id, &region); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(region)
}

// Delete godoc
func (c *RegionController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := c.RegionService.DeleteRegion(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
