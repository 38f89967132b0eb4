package book

import (
	"context"
	"fmt"
	"strings"
)

type BookService interface {
	CreateBook(ctx context.Context, book *Book) error
	GetBook(ctx context.Context, id string) (*Book, error)
	ListBooks(ctx context.Context) ([]Book, error)
	UpdateBook(ctx context.Context, id string, book *Book) error
	DeleteBook(ctx context.Context, id string) error
}

type BookServiceImpl struct {
	BookRepo BookRepository
}

func NewBookService(bookRepo BookRepository) BookService {
	return &BookServiceImpl{BookRepo: bookRepo}
}

func (s *BookServiceImpl) CreateBook(ctx context.Context, book *Book) error {
	if err := validateBook(book); err != nil {
		return err
	}
	return s.BookRepo.Create(ctx, book)
}

func (s *BookServiceImpl) GetBook(ctx context.Context, id string) (*Book, error) {
	return s.BookRepo.Get(ctx, id)
}

func (s *BookServiceImpl) ListBooks(ctx context.Context) ([]Book, error) {
	return s.BookRepo.List(ctx)
}

func (s *BookServiceImpl) UpdateBook(ctx context.Context, id string, book *Book) error {
	if err := validateBook(book); err != nil {
		return err
	}
	return s.BookRepo.Update(ctx, id, book)
}

func (s *BookServiceImpl) DeleteBook(ctx context.Context, id string) error {
	return s.BookRepo.Delete(ctx, id)
}

func validateBook(book *Book) error {
	if strings.TrimSpace(book.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if book.Points < 0 {
		return fmt.Errorf("points must be non-negative")
	}
	return nil
}
