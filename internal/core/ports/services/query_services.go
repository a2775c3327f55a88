package services

import (
	"context"

	"github.com/openshelf/library_circulation_app/internal/core/domain"
)

// QuerySvcFacade provides read-only joined views over inventory and loans.
type QuerySvcFacade interface {
	// ListBooksWithStatus lists books with their derived circulation status,
	// optionally filtered to a single accession number.
	ListBooksWithStatus(ctx context.Context, idFilter *int) ([]domain.BookWithStatus, error)

	// ListLoansWithOverdue lists active loans with the referenced book's
	// title and the overdue flag evaluated against the current time.
	ListLoansWithOverdue(ctx context.Context) ([]domain.LoanWithOverdue, error)
}
