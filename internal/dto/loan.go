package dto

import (
	"github.com/openshelf/library_circulation_app/internal/core/domain"
)

// dateLayout is the wire format for loan dates; they carry no time component.
const dateLayout = "2006-01-02"

// IssueBookRequest defines the data needed to issue a book to a borrower.
type IssueBookRequest struct {
	BookID             int    `json:"bookID" binding:"required,gt=0"`
	BorrowerName       string `json:"borrowerName" binding:"required"`
	RegistrationNumber string `json:"registrationNumber" binding:"required"`
}

// LoanResponse defines the data returned for a newly created loan.
type LoanResponse struct {
	LoanID             string `json:"loanID"`
	BookID             int    `json:"bookID"`
	BorrowerName       string `json:"borrowerName"`
	RegistrationNumber string `json:"registrationNumber"`
	IssueDate          string `json:"issueDate"`
	DueDate            string `json:"dueDate"`
}

// LoanListResponse is a row of the issued-books listing.
type LoanListResponse struct {
	LoanResponse
	BookTitle   string `json:"bookTitle"`
	OverdueDate string `json:"overdueDate"`
	IsOverdue   bool   `json:"isOverdue"`
}

// ToLoanResponse converts a domain.Loan to a LoanResponse DTO.
func ToLoanResponse(l *domain.Loan) LoanResponse {
	return LoanResponse{
		LoanID:             l.LoanID,
		BookID:             l.BookID,
		BorrowerName:       l.BorrowerName,
		RegistrationNumber: l.RegistrationNumber,
		IssueDate:          l.IssueDate.Format(dateLayout),
		DueDate:            l.DueDate.Format(dateLayout),
	}
}

// ToLoanListResponse converts loan listing rows to DTOs.
func ToLoanListResponse(loans []domain.LoanWithOverdue) []LoanListResponse {
	res := make([]LoanListResponse, len(loans))
	for i, l := range loans {
		res[i] = LoanListResponse{
			LoanResponse: ToLoanResponse(&l.Loan),
			BookTitle:    l.BookTitle,
			OverdueDate:  l.OverdueThreshold().Format(dateLayout),
			IsOverdue:    l.Overdue,
		}
	}
	return res
}
