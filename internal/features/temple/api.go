package temple

import (
	"bbt-connect/internal/config"
	"bbt-connect/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type TempleApi struct {
	TempleController *TempleController
	Config           *config.Config
}

func NewTempleApi(templeController *TempleController, config *config.Config) *TempleApi {
	return &TempleApi{
		TempleController: templeController,
		Config:           config,
	}
}

func (api *TempleApi) Setup(app *fiber.App) {
	group := app.Group("/api/temples", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Post("/", api.TempleController.Create)
	group.Get("/", api.TempleController.List)
	group.Get("/:id", api.TempleController.Get)
	group.Put("/:id", api.TempleController.Update)
	group.Delete("/:id", api.TempleController.Delete)
}
