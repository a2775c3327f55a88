package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/openshelf/library_circulation_app/internal/apperrors"
	"github.com/openshelf/library_circulation_app/internal/core/domain"
	portsrepo "github.com/openshelf/library_circulation_app/internal/core/ports/repositories"
	portssvc "github.com/openshelf/library_circulation_app/internal/core/ports/services"
	"github.com/openshelf/library_circulation_app/internal/dto"
)

// circulationServiceImpl implements the CirculationSvcFacade interface.
// The issue transition is a single conditional insert at the ledger, so two
// issuers racing on the same book resolve with exactly one winner; there is
// no availability check separate from the write.
type circulationServiceImpl struct {
	BaseService
	bookRepo portsrepo.BookReader
	loanRepo portsrepo.LoanRepositoryFacade
	clock    Clock
}

// CirculationOption is a functional option for configuring the circulation service.
type CirculationOption func(*circulationServiceImpl)

// WithClock overrides the wall clock, used by tests for deterministic dates.
func WithClock(c Clock) CirculationOption {
	return func(s *circulationServiceImpl) {
		s.clock = c
	}
}

// NewCirculationService creates the issue/return service.
func NewCirculationService(bookRepo portsrepo.BookReader, loanRepo portsrepo.LoanRepositoryFacade, options ...CirculationOption) portssvc.CirculationSvcFacade {
	svc := &circulationServiceImpl{
		bookRepo: bookRepo,
		loanRepo: loanRepo,
		clock:    realClock{},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure circulationServiceImpl implements the CirculationSvcFacade interface
var _ portssvc.CirculationSvcFacade = (*circulationServiceImpl)(nil)

func (s *circulationServiceImpl) IssueBook(ctx context.Context, req dto.IssueBookRequest) (*domain.Loan, error) {
	if err := validateIssueRequest(req); err != nil {
		s.LogWarn(ctx, "Rejected invalid issue request", slog.String("reason", err.Error()))
		return nil, err
	}

	// Friendly existence check so an unknown book reports NotFound rather
	// than a constraint error. The insert below remains the authority: a
	// book deleted between here and there still fails safely.
	if _, err := s.bookRepo.FindBookByID(ctx, req.BookID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up book for issue", slog.Int("book_id", req.BookID))
		}
		return nil, err
	}

	issueDate := domain.DateOf(s.clock.Now())
	loan := domain.Loan{
		LoanID:             uuid.NewString(),
		BookID:             req.BookID,
		BorrowerName:       strings.TrimSpace(req.BorrowerName),
		RegistrationNumber: strings.TrimSpace(req.RegistrationNumber),
		IssueDate:          issueDate,
		DueDate:            domain.DueDateFor(issueDate),
	}

	if err := s.loanRepo.CreateLoan(ctx, loan); err != nil {
		if errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Issue refused", slog.Int("book_id", req.BookID), slog.String("reason", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to create loan", slog.Int("book_id", req.BookID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Book issued",
		slog.Int("book_id", loan.BookID),
		slog.String("loan_id", loan.LoanID),
		slog.String("registration_number", loan.RegistrationNumber),
		slog.Time("due_date", loan.DueDate))
	return &loan, nil
}

func (s *circulationServiceImpl) ReturnBook(ctx context.Context, bookID int) error {
	if bookID <= 0 {
		return fmt.Errorf("%w: book ID must be positive", apperrors.ErrValidation)
	}

	// The delete is the whole transition: a second return of the same book
	// finds no loan row and reports NotFound instead of succeeding twice.
	if err := s.loanRepo.CloseLoan(ctx, bookID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Return refused, book not on loan", slog.Int("book_id", bookID))
		} else {
			s.LogError(ctx, err, "Failed to close loan", slog.Int("book_id", bookID))
		}
		return err
	}

	s.LogInfo(ctx, "Book returned", slog.Int("book_id", bookID))
	return nil
}

func validateIssueRequest(req dto.IssueBookRequest) error {
	switch {
	case req.BookID <= 0:
		return fmt.Errorf("%w: book ID must be positive", apperrors.ErrValidation)
	case strings.TrimSpace(req.BorrowerName) == "":
		return fmt.Errorf("%w: borrower name must not be empty", apperrors.ErrValidation)
	case strings.TrimSpace(req.RegistrationNumber) == "":
		return fmt.Errorf("%w: registration number must not be empty", apperrors.ErrValidation)
	}
	return nil
}
