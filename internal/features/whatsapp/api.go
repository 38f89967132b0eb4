package whatsapp

import (
	"bbt-connect/internal/config"
	"bbt-connect/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type GroupApi struct {
	GroupController *GroupController
	Config          *config.Config
}

func NewGroupApi(groupController *GroupController, config *config.Config) *GroupApi {
	return &GroupApi{
		GroupController: groupController,
		Config:          config,
	}
}

func (api *GroupApi) Setup(app *fiber.App) {
	group := app.Group("/api/whatsapp-groups", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Post("/", api.GroupController.Create)
	group.Get("/", api.GroupController.List)
	group.Get("/:id", api.GroupController.Get)
	group.Put("/:id", api.GroupController.Update)
	group.Delete("/:id", api.GroupController.Delete)
}
