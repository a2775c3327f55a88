package repositories

import (
	"context"

	"github.com/openshelf/library_circulation_app/internal/core/domain"
)

// LoanReader defines read operations for active-loan data.
type LoanReader interface {
	// FindLoanByBookID retrieves the active loan for a book, if any.
	FindLoanByBookID(ctx context.Context, bookID int) (*domain.Loan, error)

	// ListActiveLoans retrieves all active loans joined with the referenced
	// book's title, ordered by issue date then loan ID.
	ListActiveLoans(ctx context.Context) ([]domain.LoanWithTitle, error)
}

// LoanWriter defines write operations for active-loan data.
type LoanWriter interface {
	// CreateLoan persists a new loan. The storage layer enforces the
	// at-most-one-active-loan-per-book invariant: it returns
	// apperrors.ErrConflict when the book is already on loan and
	// apperrors.ErrNotFound when the book does not exist.
	CreateLoan(ctx context.Context, loan domain.Loan) error

	// CloseLoan deletes the active loan for a book. Returns
	// apperrors.ErrNotFound when the book has no active loan.
	CloseLoan(ctx context.Context, bookID int) error
}

// LoanRepositoryFacade combines all loan-related repository interfaces.
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
}
