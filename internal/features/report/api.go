package report

import (
	"bbt-connect/internal/config"
	"bbt-connect/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ReportApi struct {
	ReportController *ReportController
	Config           *config.Config
}

func NewReportApi(reportController *ReportController, config *config.Config) *ReportApi {
	return &ReportApi{
		ReportController: reportController,
		Config:           config,
	}
}

func (api *ReportApi) Setup(app *fiber.App) {
	group := app.Group("/api/reports", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Post("/", api.ReportController.Create)
	group.Post("/upload", api.ReportController.Upload)
	group.Get("/", api.ReportController.List)
	group.Get("/:id", api.ReportController.Get)
}
