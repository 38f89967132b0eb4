package report

import (
	"strconv"

	"bbt-connect/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ReportController struct {
	ReportService ReportService
}

func NewReportController(reportService ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// Create godoc
func (c *ReportController) Create(ctx *fiber.Ctx) error {
	var report MonthlyReport
	if err := ctx.BodyParser(&report); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if claims, ok := ctx.Locals(utils.UserClaimsKey).(*utils.UserClaims); ok {
		report.UploadedBy = claims.UserID
	}

	if err := c.ReportService.CreateReport(ctx.Context(), &report); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(report)
}

// List godoc
func (c *ReportController) List(ctx *fiber.Ctx) error {
	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
		}
		reports, err := c.ReportService.ListReportsByYear(ctx.Context(), year)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.JSON(reports)
	}

	reports, err := c.ReportService.ListReports(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(reports)
}

// Get godoc
func (c *ReportController) Get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	report, err := c.ReportService.GetReport(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
	}
	return ctx.JSON(report)
}

// Upload godoc
func (c *ReportController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	month := ctx.FormValue("month")
	year, err := strconv.Atoi(ctx.FormValue("year"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
	}

	var uploadedBy string
	if claims, ok := ctx.Locals(utils.UserClaimsKey).(*utils.UserClaims); ok {
		uploadedBy = claims.UserID
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not open uploaded file"})
	}
	defer file.Close()

	report, err := c.ReportService.UploadReport(ctx.Context(), file, fileHeader.Filename, month, year, uploadedBy)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(report)
}
