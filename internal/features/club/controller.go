package club

import (
	"github.com/gofiber/fiber/v2"
)

type ClubController struct {
	ClubService ClubService
}

func NewClubController(clubService ClubService) *ClubController {
	return &ClubController{ClubService: clubService}
}

// Create godoc
func (c *ClubController) Create(ctx *fiber.Ctx) error {
	var club ReadingClub
	if err := ctx.BodyParser(&club); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := c.ClubService.CreateClub(ctx.Context(), &club); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(club)
}

// List godoc
func (c *ClubController) List(ctx *fiber.Ctx) error {
	if regionID := ctx.Query("region"); regionID != "" {
		clubs, err := c.ClubService.ListClubsByRegion(ctx.Context(), regionID)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.JSON(clubs)
	}

	clubs, err := c.ClubService.ListClubs(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(clubs)
}

// Get godoc
func (c *ClubController) Get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	club, err := c.ClubService.GetClub(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reading club not found"})
	}
	return ctx.JSON(club)
}

// Update godoc
func (c *ClubController) Update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var club ReadingClub
	if err := ctx.BodyParser(&club); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := c.ClubService.UpdateClub(ctx.Context(), id, &club); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(club)
}

// Delete godoc
func (c *ClubController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := c.ClubService.DeleteClub(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
