package reportgen

import (
	"bbt-connect/internal/config"
	"bbt-connect/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type GenerationApi struct {
	GenerationController *GenerationController
	Config               *config.Config
}

func NewGenerationApi(generationController *GenerationController, config *config.Config) *GenerationApi {
	return &GenerationApi{
		GenerationController: generationController,
		Config:               config,
	}
}

func (api *GenerationApi) Setup(app *fiber.App) {
	group := app.Group("/api/statistics", middleware.AuthMiddleware(api.Config.SkipAuth))
	group.Get("/", api.GenerationController.Statistics)
	group.Get("/export", api.GenerationController.Export)
	group.Post("/deliver", api.GenerationController.Deliver)

	// Persisted artifacts are served from the export directory
	app.Static(api.Config.ExportURL, api.Config.ExportDir)
}
