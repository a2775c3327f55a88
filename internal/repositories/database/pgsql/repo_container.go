package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/openshelf/library_circulation_app/internal/core/ports/repositories"
)

// RepositoryProvider aggregates the pgsql repositories over one shared pool.
type RepositoryProvider struct {
	Book     portsrepo.BookRepositoryFacade
	Loan     portsrepo.LoanRepositoryFacade
	Activity portsrepo.ActivityRepository
}

// NewRepositoryProvider creates all repositories backed by the given pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *RepositoryProvider {
	return &RepositoryProvider{
		Book:     newPgxBookRepository(pool),
		Loan:     newPgxLoanRepository(pool),
		Activity: newPgxActivityRepository(pool),
	}
}
