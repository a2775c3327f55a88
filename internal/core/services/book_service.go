package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openshelf/library_circulation_app/internal/apperrors"
	"github.com/openshelf/library_circulation_app/internal/core/domain"
	portsrepo "github.com/openshelf/library_circulation_app/internal/core/ports/repositories"
	portssvc "github.com/openshelf/library_circulation_app/internal/core/ports/services"
	"github.com/openshelf/library_circulation_app/internal/dto"
)

// bookServiceImpl implements the BookSvcFacade interface.
type bookServiceImpl struct {
	BaseService
	bookRepo portsrepo.BookRepositoryFacade
}

// NewBookService creates a new book inventory service.
func NewBookService(repo portsrepo.BookRepositoryFacade) portssvc.BookSvcFacade {
	return &bookServiceImpl{bookRepo: repo}
}

// Ensure bookServiceImpl implements the BookSvcFacade interface
var _ portssvc.BookSvcFacade = (*bookServiceImpl)(nil)

func (s *bookServiceImpl) CreateBook(ctx context.Context, req dto.CreateBookRequest) (*domain.Book, error) {
	if err := validateBookFields(req); err != nil {
		s.LogWarn(ctx, "Rejected invalid book", slog.String("reason", err.Error()))
		return nil, err
	}

	book := domain.Book{
		BookID:    req.BookID,
		Title:     strings.TrimSpace(req.Title),
		Author:    strings.TrimSpace(req.Author),
		Publisher: strings.TrimSpace(req.Publisher),
		Year:      req.Year,
	}

	if err := s.bookRepo.SaveBook(ctx, book); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save book", slog.Int("book_id", book.BookID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Book created", slog.Int("book_id", book.BookID), slog.String("title", book.Title))
	return &book, nil
}

// GetBookByID retrieves a single book with its status derived from loan
// existence, same query shape as the listing.
func (s *bookServiceImpl) GetBookByID(ctx context.Context, bookID int) (*domain.BookWithStatus, error) {
	if bookID <= 0 {
		return nil, fmt.Errorf("%w: book ID must be positive", apperrors.ErrValidation)
	}

	rows, err := s.bookRepo.ListBooksWithStatus(ctx, &bookID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find book", slog.Int("book_id", bookID))
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: book %d", apperrors.ErrNotFound, bookID)
	}
	return &rows[0], nil
}

// DeleteBook removes a book from the inventory. The repository removes any
// active loan in the same transaction, so no orphaned loan survives.
func (s *bookServiceImpl) DeleteBook(ctx context.Context, bookID int) error {
	if bookID <= 0 {
		return fmt.Errorf("%w: book ID must be positive", apperrors.ErrValidation)
	}

	if err := s.bookRepo.DeleteBook(ctx, bookID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete book", slog.Int("book_id", bookID))
		}
		return err
	}

	s.LogInfo(ctx, "Book deleted", slog.Int("book_id", bookID))
	return nil
}

func validateBookFields(req dto.CreateBookRequest) error {
	switch {
	case req.BookID <= 0:
		return fmt.Errorf("%w: book ID must be positive", apperrors.ErrValidation)
	case req.Year <= 0:
		return fmt.Errorf("%w: year must be positive", apperrors.ErrValidation)
	case strings.TrimSpace(req.Title) == "":
		return fmt.Errorf("%w: title must not be empty", apperrors.ErrValidation)
	case strings.TrimSpace(req.Author) == "":
		return fmt.Errorf("%w: author must not be empty", apperrors.ErrValidation)
	case strings.TrimSpace(req.Publisher) == "":
		return fmt.Errorf("%w: publisher must not be empty", apperrors.ErrValidation)
	}
	return nil
}
