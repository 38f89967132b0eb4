package book

import (
	"github.com/gofiber/fiber/v2"
)

type BookController struct {
	BookService BookService
}

func NewBookController(bookService BookService) *BookController {
	return &BookController{BookService: bookService}
}

// Create godoc
func (c *BookController) Create(ctx *fiber.Ctx) error {
	var book Book
	if err := ctx.BodyParser(&book); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := c.BookService.CreateBook(ctx.Context(), &book); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(book)
}

// List godoc
func (c *BookController) List(ctx *fiber.Ctx) error {
	books, err := c.BookService.ListBooks(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(books)
}

// Get godoc
func (c *BookController) Get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	book, err := c.BookService.GetBook(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Book not found"})
	}
	return ctx.JSON(book)
}

// Update godoc
func (c *BookController) Update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var book Book
	if err := ctx.BodyParser(&book); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := c.BookService.UpdateBook(ctx.Context(), id, &book); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(book)
}

// Delete godoc
func (c *BookController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := c.BookService.DeleteBook(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
