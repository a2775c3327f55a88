package domain

import "time"

const (
	// LoanPeriodDays is the number of days a borrower may keep a book.
	LoanPeriodDays = 15
	// GracePeriodDays is the grace period past the due date before a loan
	// is flagged overdue on listings.
	GracePeriodDays = 7
)

// Loan is an active loan of a single book. At most one loan may reference a
// given book at any time; returning the book destroys the loan record.
type Loan struct {
	LoanID             string
	BookID             int
	BorrowerName       string
	RegistrationNumber string
	IssueDate          time.Time
	DueDate            time.Time
}

// OverdueThreshold returns the date past which the loan is flagged overdue.
func (l Loan) OverdueThreshold() time.Time {
	return l.DueDate.AddDate(0, 0, GracePeriodDays)
}

// IsOverdue reports whether the loan is overdue at the given instant.
// The comparison is date-granular: a loan becomes overdue the day after
// the overdue threshold, not at some time during that day.
func (l Loan) IsOverdue(now time.Time) bool {
	return DateOf(now).After(l.OverdueThreshold())
}

// DueDateFor computes the due date for a loan issued at the given instant.
func DueDateFor(issuedAt time.Time) time.Time {
	return DateOf(issuedAt).AddDate(0, 0, LoanPeriodDays)
}

// DateOf truncates an instant to its UTC calendar date. Loan dates are kept
// at date granularity, matching how due and overdue dates are communicated
// to borrowers.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LoanWithTitle is a loan joined with the referenced book's title for display.
type LoanWithTitle struct {
	Loan
	BookTitle string
}

// LoanWithOverdue is a loan row as rendered on the issued-books listing.
type LoanWithOverdue struct {
	Loan
	BookTitle string
	Overdue   bool
}
