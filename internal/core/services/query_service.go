package services

import (
	"context"

	"github.com/openshelf/library_circulation_app/internal/core/domain"
	portsrepo "github.com/openshelf/library_circulation_app/internal/core/ports/repositories"
	portssvc "github.com/openshelf/library_circulation_app/internal/core/ports/services"
)

// queryServiceImpl implements the QuerySvcFacade interface. Read-only:
// overdue-ness is recomputed from the clock on every listing, never stored.
type queryServiceImpl struct {
	BaseService
	bookRepo portsrepo.BookReader
	loanRepo portsrepo.LoanReader
	clock    Clock
}

// QueryOption is a functional option for configuring the query service.
type QueryOption func(*queryServiceImpl)

// WithQueryClock overrides the wall clock used for overdue evaluation.
func WithQueryClock(c Clock) QueryOption {
	return func(s *queryServiceImpl) {
		s.clock = c
	}
}

// NewQueryService creates the read-only listing service.
func NewQueryService(bookRepo portsrepo.BookReader, loanRepo portsrepo.LoanReader, options ...QueryOption) portssvc.QuerySvcFacade {
	svc := &queryServiceImpl{
		bookRepo: bookRepo,
		loanRepo: loanRepo,
		clock:    realClock{},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure queryServiceImpl implements the QuerySvcFacade interface
var _ portssvc.QuerySvcFacade = (*queryServiceImpl)(nil)

func (s *queryServiceImpl) ListBooksWithStatus(ctx context.Context, idFilter *int) ([]domain.BookWithStatus, error) {
	books, err := s.bookRepo.ListBooksWithStatus(ctx, idFilter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list books")
		return nil, err
	}
	return books, nil
}

func (s *queryServiceImpl) ListLoansWithOverdue(ctx context.Context) ([]domain.LoanWithOverdue, error) {
	loans, err := s.loanRepo.ListActiveLoans(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active loans")
		return nil, err
	}

	now := s.clock.Now()
	rows := make([]domain.LoanWithOverdue, len(loans))
	for i, l := range loans {
		rows[i] = domain.LoanWithOverdue{
			Loan:      l.Loan,
			BookTitle: l.BookTitle,
			Overdue:   l.IsOverdue(now),
		}
	}
	return rows, nil
}
