package reportgen

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type GenerationController struct {
	GenerationService GenerationService
}

func NewGenerationController(generationService GenerationService) *GenerationController {
	return &GenerationController{GenerationService: generationService}
}

// Statistics godoc
func (c *GenerationController) Statistics(ctx *fiber.Ctx) error {
	stats, err := c.GenerationService.Statistics(ctx.Context())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(stats)
}

// Export godoc
func (c *GenerationController) Export(ctx *fiber.Ctx) error {
	format, mode, err := parseParams(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	artifact, err := c.GenerationService.Generate(ctx.Context(), format, mode)
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Set("Content-Type", artifact.ContentType)
	ctx.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", artifact.FileName))
	return ctx.Send(artifact.Bytes)
}

// Deliver godoc
func (c *GenerationController) Deliver(ctx *fiber.Ctx) error {
	format, mode, err := parseParams(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	delivery, err := c.GenerationService.GenerateAndDeliver(ctx.Context(), format, mode)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(delivery)
}

func parseParams(ctx *fiber.Ctx) (Format, Mode, error) {
	format := Format(ctx.Query("format", string(FormatPDF)))
	if format != FormatPDF && format != FormatExcel {
		return "", "", fmt.Errorf("unsupported format: %s", format)
	}
	mode := Mode(ctx.Query("mode", string(ModeSummary)))
	if mode != ModeSummary && mode != ModeDetailed {
		return "", "", fmt.Errorf("unsupported mode: %s", mode)
	}
	return format, mode, nil
}

// respondError keeps the three user-facing failure cases distinct: nothing
// to report, generation failed, delivery failed.
func respondError(ctx *fiber.Ctx, err error) error {
	var deliveryErr *DeliveryError
	var renderErr *RenderError
	var aggErr *AggregationError

	switch {
	case errors.Is(err, ErrNoData):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No reports available to generate"})
	case errors.As(err, &deliveryErr):
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Delivery failed: " + deliveryErr.Reason})
	case errors.As(err, &renderErr), errors.As(err, &aggErr):
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Report generation failed: " + err.Error()})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
