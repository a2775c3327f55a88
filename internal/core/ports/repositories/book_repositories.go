package repositories

import (
	"context"

	"github.com/openshelf/library_circulation_app/internal/core/domain"
)

// BookReader defines read operations for book data.
type BookReader interface {
	// FindBookByID retrieves a specific book by its accession number.
	FindBookByID(ctx context.Context, bookID int) (*domain.Book, error)

	// ListBooksWithStatus retrieves books in primary-key order together with
	// their derived circulation status. A non-nil idFilter restricts the
	// listing to a single book.
	ListBooksWithStatus(ctx context.Context, idFilter *int) ([]domain.BookWithStatus, error)
}

// BookWriter defines write operations for book data.
type BookWriter interface {
	// SaveBook persists a new book.
	SaveBook(ctx context.Context, book domain.Book) error

	// DeleteBook removes a book and, in the same transaction, any active loan
	// referencing it.
	DeleteBook(ctx context.Context, bookID int) error
}

// BookRepositoryFacade combines all book-related repository interfaces.
type BookRepositoryFacade interface {
	BookReader
	BookWriter
}
