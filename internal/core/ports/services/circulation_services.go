package services

import (
	"context"

	"github.com/openshelf/library_circulation_app/internal/core/domain"
	"github.com/openshelf/library_circulation_app/internal/dto"
)

// CirculationSvcFacade is the issue/return state machine for books.
// A book is either available or on loan; both transitions are atomic with
// respect to concurrent callers.
type CirculationSvcFacade interface {
	// IssueBook creates a loan for an available book. Returns
	// apperrors.ErrNotFound when the book does not exist and
	// apperrors.ErrConflict when it is already on loan.
	IssueBook(ctx context.Context, req dto.IssueBookRequest) (*domain.Loan, error)

	// ReturnBook closes the active loan for a book. Returns
	// apperrors.ErrNotFound when the book is not on loan.
	ReturnBook(ctx context.Context, bookID int) error
}
