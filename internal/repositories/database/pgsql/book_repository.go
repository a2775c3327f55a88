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

type PgxBookRepository struct {
	BaseRepository
}

// newPgxBookRepository creates a new repository for book inventory data.
func newPgxBookRepository(pool *pgxpool.Pool) portsrepo.BookRepositoryFacade {
	return &PgxBookRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxBookRepository implements portsrepo.BookRepositoryFacade
var _ portsrepo.BookRepositoryFacade = (*PgxBookRepository)(nil)

func toModelBook(d domain.Book) models.Book {
	return models.Book{
		BookID:    d.BookID,
		Title:     d.Title,
		Author:    d.Author,
		Publisher: d.Publisher,
		Year:      d.Year,
	}
}

func toDomainBook(m models.Book) domain.Book {
	return domain.Book{
		BookID:    m.BookID,
		Title:     m.Title,
		Author:    m.Author,
		Publisher: m.Publisher,
		Year:      m.Year,
	}
}

// SaveBook inserts a new book.
func (r *PgxBookRepository) SaveBook(ctx context.Context, book domain.Book) error {
	modelBook := toModelBook(book)

	query := `
		INSERT INTO books (book_id, title, author, publisher, year)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelBook.BookID,
		modelBook.Title,
		modelBook.Author,
		modelBook.Publisher,
		modelBook.Year,
	)
	if err != nil {
		if pgErrCode(err) == pgErrUniqueViolation {
			return fmt.Errorf("%w: book with ID %d already exists", apperrors.ErrDuplicate, modelBook.BookID)
		}
		return fmt.Errorf("failed to save book %d: %w", modelBook.BookID, err)
	}
	return nil
}

// FindBookByID retrieves a book by its accession number.
func (r *PgxBookRepository) FindBookByID(ctx context.Context, bookID int) (*domain.Book, error) {
	query := `
		SELECT book_id, title, author, publisher, year
		FROM books
		WHERE book_id = $1;
	`
	var m models.Book
	err := r.Pool.QueryRow(ctx, query, bookID).Scan(
		&m.BookID,
		&m.Title,
		&m.Author,
		&m.Publisher,
		&m.Year,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find book by ID %d: %w", bookID, err)
	}

	book := toDomainBook(m)
	return &book, nil
}

// DeleteBook removes a book and any active loan referencing it within a
// single transaction, so a reader can never observe an orphaned loan.
func (r *PgxBookRepository) DeleteBook(ctx context.Context, bookID int) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error after commit
	}()

	// Cascade first: the loan row references the book row.
	if _, err := tx.Exec(ctx, `DELETE FROM loans WHERE book_id = $1;`, bookID); err != nil {
		return fmt.Errorf("failed to delete loan for book %d: %w", bookID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM books WHERE book_id = $1;`, bookID)
	if err != nil {
		return fmt.Errorf("failed to delete book %d: %w", bookID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: book %d", apperrors.ErrNotFound, bookID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit delete of book %d: %w", bookID, err)
	}
	return nil
}

// ListBooksWithStatus retrieves books in accession-number order with their
// circulation status derived from loan existence. There is no stored
// availability flag to fall out of sync with the ledger.
func (r *PgxBookRepository) ListBooksWithStatus(ctx context.Context, idFilter *int) ([]domain.BookWithStatus, error) {
	query := `
		SELECT b.book_id, b.title, b.author, b.publisher, b.year, (l.loan_id IS NOT NULL) AS on_loan
		FROM books b
		LEFT JOIN loans l ON l.book_id = b.book_id
	`
	args := []any{}
	if idFilter != nil {
		query += ` WHERE b.book_id = $1`
		args = append(args, *idFilter)
	}
	query += ` ORDER BY b.book_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []domain.BookWithStatus{}
	for rows.Next() {
		var m models.Book
		var onLoan bool
		if err := rows.Scan(&m.BookID, &m.Title, &m.Author, &m.Publisher, &m.Year, &onLoan); err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		status := domain.StatusAvailable
		if onLoan {
			status = domain.StatusOnLoan
		}
		books = append(books, domain.BookWithStatus{Book: toDomainBook(m), Status: status})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book rows: %w", err)
	}

	return books, nil
}
