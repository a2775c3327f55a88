package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openshelf/library_circulation_app/internal/apperrors"
	"github.com/openshelf/library_circulation_app/internal/core/domain"
	portsrepo "github.com/openshelf/library_circulation_app/internal/core/ports/repositories"
	"github.com/openshelf/library_circulation_app/internal/models"
)

type PgxLoanRepository struct {
	BaseRepository
}

// newPgxLoanRepository creates a new repository for the circulation ledger.
func newPgxLoanRepository(pool *pgxpool.Pool) portsrepo.LoanRepositoryFacade {
	return &PgxLoanRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxLoanRepository implements portsrepo.LoanRepositoryFacade
var _ portsrepo.LoanRepositoryFacade = (*PgxLoanRepository)(nil)

func toModelLoan(d domain.Loan) models.Loan {
	return models.Loan{
		LoanID:             d.LoanID,
		BookID:             d.BookID,
		BorrowerName:       d.BorrowerName,
		RegistrationNumber: d.RegistrationNumber,
		IssueDate:          d.IssueDate,
		DueDate:            d.DueDate,
	}
}

func toDomainLoan(m models.Loan) domain.Loan {
	return domain.Loan{
		LoanID:             m.LoanID,
		BookID:             m.BookID,
		BorrowerName:       m.BorrowerName,
		RegistrationNumber: m.RegistrationNumber,
		IssueDate:          m.IssueDate,
		DueDate:            m.DueDate,
	}
}

// CreateLoan inserts a new loan. The insert itself is the availability check:
// the UNIQUE constraint on loans.book_id guarantees at most one active loan
// per book even under concurrent issuers, and the foreign key guarantees the
// book exists. No check-then-act window.
func (r *PgxLoanRepository) CreateLoan(ctx context.Context, loan domain.Loan) error {
	m := toModelLoan(loan)

	query := `
		INSERT INTO loans (loan_id, book_id, borrower_name, registration_number, issue_date, due_date)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LoanID,
		m.BookID,
		m.BorrowerName,
		m.RegistrationNumber,
		m.IssueDate,
		m.DueDate,
	)
	if err != nil {
		switch pgErrCode(err) {
		case pgErrUniqueViolation:
			return fmt.Errorf("%w: book %d is already on loan", apperrors.ErrConflict, m.BookID)
		case pgErrForeignKeyViolation:
			return fmt.Errorf("%w: book %d", apperrors.ErrNotFound, m.BookID)
		}
		return fmt.Errorf("failed to create loan for book %d: %w", m.BookID, err)
	}
	return nil
}

// CloseLoan deletes the active loan for a book. The single DELETE is the
// whole return transition; the second of two racing returns sees zero rows.
func (r *PgxLoanRepository) CloseLoan(ctx context.Context, bookID int) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM loans WHERE book_id = $1;`, bookID)
	if err != nil {
		return fmt.Errorf("failed to close loan for book %d: %w", bookID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: book %d is not on loan", apperrors.ErrNotFound, bookID)
	}
	return nil
}

// FindLoanByBookID retrieves the active loan for a book.
func (r *PgxLoanRepository) FindLoanByBookID(ctx context.Context, bookID int) (*domain.Loan, error) {
	query := `
		SELECT loan_id, book_id, borrower_name, registration_number, issue_date, due_date
		FROM loans
		WHERE book_id = $1;
	`
	var m models.Loan
	err := r.Pool.QueryRow(ctx, query, bookID).Scan(
		&m.LoanID,
		&m.BookID,
		&m.BorrowerName,
		&m.RegistrationNumber,
		&m.IssueDate,
		&m.DueDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loan for book %d: %w", bookID, err)
	}

	loan := toDomainLoan(m)
	return &loan, nil
}

// ListActiveLoans retrieves all active loans joined with the book title.
func (r *PgxLoanRepository) ListActiveLoans(ctx context.Context) ([]domain.LoanWithTitle, error) {
	query := `
		SELECT l.loan_id, l.book_id, l.borrower_name, l.registration_number, l.issue_date, l.due_date, b.title
		FROM loans l
		JOIN books b ON b.book_id = l.book_id
		ORDER BY l.issue_date, l.loan_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active loans: %w", err)
	}
	defer rows.Close()

	loans := []domain.LoanWithTitle{}
	for rows.Next() {
		var m models.Loan
		var title string
		if err := rows.Scan(
			&m.LoanID,
			&m.BookID,
			&m.BorrowerName,
			&m.RegistrationNumber,
			&m.IssueDate,
			&m.DueDate,
			&title,
		); err != nil {
			return nil, fmt.Errorf("failed to scan loan row: %w", err)
		}
		loans = append(loans, domain.LoanWithTitle{Loan: toDomainLoan(m), BookTitle: title})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loan rows: %w", err)
	}

	return loans, nil
}
