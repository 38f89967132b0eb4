package temple

import (
	"github.com/gofiber/fiber/v2"
)

type TempleController struct {
	TempleService TempleService
}

func NewTempleController(templeService TempleService) *TempleController {
	return &TempleController{TempleService: templeService}
}

// Create godoc
func (c *TempleController) Create(ctx *fiber.Ctx) error {
	var temple Temple
	if err := ctx.BodyParser(&temple); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := c.TempleService.CreateTemple(ctx.Context(), &temple); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(temple)
}

// List godoc
func (c *TempleController) List(ctx *fiber.Ctx) error {
	temples, err := c.TempleService.ListTemples(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(temples)
}

// Get godoc
func (c *TempleController) Get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	temple, err := c.TempleService.GetTemple(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Temple not found"})
	}
	return ctx.JSON(temple)
}

// Update godoc
func (c *TempleController) Update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var temple Temple
	if err := ctx.BodyParser(&temple); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := c.TempleService.UpdateTemple(ctx.Context(), id, &temple); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(temple)
}

// Delete godoc
func (c *TempleController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := c.TempleService.DeleteTemple(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
