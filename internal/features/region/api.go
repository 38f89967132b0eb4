package region

import (
	"bbt-connect/internal/config"
	"bbt-connect/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type RegionApi struct {
	RegionController *RegionController
	Config           *config.Config
}

func NewRegionApi(regionController *RegionController, config *config.Config) *RegionApi {
	return &RegionApi{
		RegionController: regionController,
		Config:           config,
	}
}

func (api *RegionApi) Setup(app *fiber.App) {
	group := app.Group("/api/regions", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Post("/", api.RegionController.Create)
	group.Get("/", api.RegionController.List)
	group.Get("/:id", api.RegionController.Get)
	group.Put("/:id", api.RegionController.Update)
	group.Delete("/:id", api.RegionController.Delete)
}
