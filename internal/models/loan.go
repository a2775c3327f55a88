package models

import "time"

// Loan mirrors a row of the loans table. Only active loans are stored;
// returning a book deletes the row.
type Loan struct {
	LoanID             string
	BookID             int
	BorrowerName       string
	RegistrationNumber string
	IssueDate          time.Time
	DueDate            time.Time
}
