package book

import (
	"bbt-connect/internal/config"
	"bbt-connect/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type BookApi struct {
	BookController *BookController
	Config         *config.Config
}

func NewBookApi(bookController *BookController, config *config.Config) *BookApi {
	return &BookApi{
		BookController: bookController,
		Config:         config,
	}
}

func (api *BookApi) Setup(app *fiber.App) {
	group := app.Group("/api/books", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Post("/", api.BookController.Create)
	group.Get("/", api.BookController.List)
	group.Get("/:id", api.BookController.Get)
	group.Put("/:id", api.BookController.Update)
	group.Delete("/:id", api.BookController.Delete)
}
