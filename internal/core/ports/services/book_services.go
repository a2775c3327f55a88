package services

import (
	"context"

	"github.com/openshelf/library_circulation_app/internal/core/domain"
	"github.com/openshelf/library_circulation_app/internal/dto"
)

// BookSvcFacade defines inventory operations on books.
type BookSvcFacade interface {
	// CreateBook validates and persists a new book.
	CreateBook(ctx context.Context, req dto.CreateBookRequest) (*domain.Book, error)

	// GetBookByID retrieves a single book together with its derived
	// circulation status.
	GetBookByID(ctx context.Context, bookID int) (*domain.BookWithStatus, error)

	// DeleteBook removes a book and cascades the removal of its active loan.
	DeleteBook(ctx context.Context, bookID int) error
}
