package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openshelf/library_circulation_app/internal/apperrors"
	"github.com/openshelf/library_circulation_app/internal/core/domain"
	"github.com/openshelf/library_circulation_app/internal/dto"
	"github.com/openshelf/library_circulation_app/internal/handlers"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockCirculationService is a mock type for the CirculationSvcFacade interface
type MockCirculationService struct {
	mock.Mock
}

func (m *MockCirculationService) IssueBook(ctx context.Context, req dto.IssueBookRequest) (*domain.Loan, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockCirculationService) ReturnBook(ctx context.Context, bookID int) error {
	args := m.Called(ctx, bookID)
	return args.Error(0)
}

type LoanHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCircSvc  *MockCirculationService
	mockQuerySvc *MockQueryService
}

func (suite *LoanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockCircSvc = new(MockCirculationService)
	suite.mockQuerySvc = new(MockQueryService)

	suite.router = gin.New()
	public := suite.router.Group("/api/v1")
	protected := suite.router.Group("/api/v1")
	handlers.RegisterLoanRoutes(public, protected, suite.mockCircSvc, suite.mockQuerySvc)
}

func (suite *LoanHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LoanHandlerTestSuite) TestIssueBook_Success() {
	req := dto.IssueBookRequest{BookID: 1, BorrowerName: "Alice", RegistrationNumber: "REG1"}
	issueDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	loan := &domain.Loan{
		LoanID:             "loan-1",
		BookID:             1,
		BorrowerName:       "Alice",
		RegistrationNumber: "REG1",
		IssueDate:          issueDate,
		DueDate:            domain.DueDateFor(issueDate),
	}
	suite.mockCircSvc.On("IssueBook", mock.Anything, req).Return(loan, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/loans", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.LoanResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("loan-1", resp.LoanID)
	suite.Equal("2024-01-01", resp.IssueDate)
	suite.Equal("2024-01-16", resp.DueDate)
	suite.mockCircSvc.AssertExpectations(suite.T())
}

func (suite *LoanHandlerTestSuite) TestIssueBook_BindError() {
	w := suite.performRequest(http.MethodPost, "/api/v1/loans", gin.H{"bookID": 1})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCircSvc.AssertNotCalled(suite.T(), "IssueBook", mock.Anything, mock.Anything)
}

func (suite *LoanHandlerTestSuite) TestIssueBook_BookNotFound() {
	req := dto.IssueBookRequest{BookID: 42, BorrowerName: "Alice", RegistrationNumber: "REG1"}
	suite.mockCircSvc.On("IssueBook", mock.Anything, req).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/loans", req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LoanHandlerTestSuite) TestIssueBook_AlreadyOnLoan() {
	req := dto.IssueBookRequest{BookID: 1, BorrowerName: "Bob", RegistrationNumber: "REG2"}
	conflictErr := fmt.Errorf("%w: book 1 is already on loan", apperrors.ErrConflict)
	suite.mockCircSvc.On("IssueBook", mock.Anything, req).Return(nil, conflictErr).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/loans", req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *LoanHandlerTestSuite) TestReturnBook_Success() {
	suite.mockCircSvc.On("ReturnBook", mock.Anything, 1).Return(nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/loans/1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockCircSvc.AssertExpectations(suite.T())
}

func (suite *LoanHandlerTestSuite) TestReturnBook_NotOnLoan() {
	suite.mockCircSvc.On("ReturnBook", mock.Anything, 1).Return(apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/loans/1", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LoanHandlerTestSuite) TestReturnBook_BadID() {
	w := suite.performRequest(http.MethodDelete, "/api/v1/loans/abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCircSvc.AssertNotCalled(suite.T(), "ReturnBook", mock.Anything, mock.Anything)
}

func (suite *LoanHandlerTestSuite) TestListLoans() {
	issueDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	rows := []domain.LoanWithOverdue{
		{
			Loan: domain.Loan{
				LoanID:             "loan-1",
				BookID:             1,
				BorrowerName:       "Alice",
				RegistrationNumber: "REG1",
				IssueDate:          issueDate,
				DueDate:            domain.DueDateFor(issueDate),
			},
			BookTitle: "One",
			Overdue:   true,
		},
	}
	suite.mockQuerySvc.On("ListLoansWithOverdue", mock.Anything).Return(rows, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/loans", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.LoanListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("One", resp[0].BookTitle)
	suite.Equal("2024-01-23", resp[0].OverdueDate)
	suite.True(resp[0].IsOverdue)
}

func (suite *LoanHandlerTestSuite) TestListLoans_Empty() {
	suite.mockQuerySvc.On("ListLoansWithOverdue", mock.Anything).Return([]domain.LoanWithOverdue{}, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/loans", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("[]", w.Body.String())
}

func TestLoanHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LoanHandlerTestSuite))
}
