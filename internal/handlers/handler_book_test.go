package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/openshelf/library_circulation_app/internal/apperrors"
	"github.com/openshelf/library_circulation_app/internal/core/domain"
	"github.com/openshelf/library_circulation_app/internal/dto"
	"github.com/openshelf/library_circulation_app/internal/handlers"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Service mocks ---

// MockBookService is a mock type for the BookSvcFacade interface
type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) CreateBook(ctx context.Context, req dto.CreateBookRequest) (*domain.Book, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockBookService) GetBookByID(ctx context.Context, bookID int) (*domain.BookWithStatus, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookWithStatus), args.Error(1)
}

func (m *MockBookService) DeleteBook(ctx context.Context, bookID int) error {
	args := m.Called(ctx, bookID)
	return args.Error(0)
}

// MockQueryService is a mock type for the QuerySvcFacade interface
type MockQueryService struct {
	mock.Mock
}

func (m *MockQueryService) ListBooksWithStatus(ctx context.Context, idFilter *int) ([]domain.BookWithStatus, error) {
	args := m.Called(ctx, idFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookWithStatus), args.Error(1)
}

func (m *MockQueryService) ListLoansWithOverdue(ctx context.Context) ([]domain.LoanWithOverdue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoanWithOverdue), args.Error(1)
}

// --- Test Suite ---

type BookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockBookSvc  *MockBookService
	mockQuerySvc *MockQueryService
}

func (suite *BookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockBookSvc = new(MockBookService)
	suite.mockQuerySvc = new(MockQueryService)

	suite.router = gin.New()
	// Route both groups without auth so handler behavior is tested in isolation.
	public := suite.router.Group("/api/v1")
	protected := suite.router.Group("/api/v1")
	handlers.RegisterBookRoutes(public, protected, suite.mockBookSvc, suite.mockQuerySvc)
}

func (suite *BookHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
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

func (suite *BookHandlerTestSuite) TestCreateBook_Success() {
	req := dto.CreateBookRequest{BookID: 1, Title: "T", Author: "A", Publisher: "P", Year: 2020}
	created := &domain.Book{BookID: 1, Title: "T", Author: "A", Publisher: "P", Year: 2020}
	suite.mockBookSvc.On("CreateBook", mock.Anything, req).Return(created, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/books", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.BookResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.BookID)
	suite.Equal(domain.StatusAvailable, resp.Status)
	suite.mockBookSvc.AssertExpectations(suite.T())
}

func (suite *BookHandlerTestSuite) TestCreateBook_BindError() {
	// Missing required fields fails gin binding before the service is reached.
	w := suite.performRequest(http.MethodPost, "/api/v1/books", gin.H{"title": "only a title"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBookSvc.AssertNotCalled(suite.T(), "CreateBook", mock.Anything, mock.Anything)
}

func (suite *BookHandlerTestSuite) TestCreateBook_Duplicate() {
	req := dto.CreateBookRequest{BookID: 1, Title: "T", Author: "A", Publisher: "P", Year: 2020}
	dupErr := fmt.Errorf("%w: book 1 already exists", apperrors.ErrDuplicate)
	suite.mockBookSvc.On("CreateBook", mock.Anything, req).Return(nil, dupErr).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/books", req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *BookHandlerTestSuite) TestListBooks() {
	rows := []domain.BookWithStatus{
		{Book: domain.Book{BookID: 1, Title: "One"}, Status: domain.StatusAvailable},
		{Book: domain.Book{BookID: 2, Title: "Two"}, Status: domain.StatusOnLoan},
	}
	suite.mockQuerySvc.On("ListBooksWithStatus", mock.Anything, (*int)(nil)).Return(rows, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/books", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.BookResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal(domain.StatusAvailable, resp[0].Status)
	suite.Equal(domain.StatusOnLoan, resp[1].Status)
}

func (suite *BookHandlerTestSuite) TestListBooks_WithFilter() {
	id := 2
	rows := []domain.BookWithStatus{
		{Book: domain.Book{BookID: 2, Title: "Two"}, Status: domain.StatusOnLoan},
	}
	suite.mockQuerySvc.On("ListBooksWithStatus", mock.Anything, &id).Return(rows, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/books?id=2", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockQuerySvc.AssertExpectations(suite.T())
}

func (suite *BookHandlerTestSuite) TestListBooks_BadFilter() {
	w := suite.performRequest(http.MethodGet, "/api/v1/books?id=abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.performRequest(http.MethodGet, "/api/v1/books?id=-1", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.mockQuerySvc.AssertNotCalled(suite.T(), "ListBooksWithStatus", mock.Anything, mock.Anything)
}

func (suite *BookHandlerTestSuite) TestGetBook_Success() {
	book := &domain.BookWithStatus{
		Book:   domain.Book{BookID: 3, Title: "Three", Author: "A", Publisher: "P", Year: 2001},
		Status: domain.StatusOnLoan,
	}
	suite.mockBookSvc.On("GetBookByID", mock.Anything, 3).Return(book, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/books/3", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BookResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(3, resp.BookID)
	suite.Equal(domain.StatusOnLoan, resp.Status)
	suite.mockBookSvc.AssertExpectations(suite.T())
}

func (suite *BookHandlerTestSuite) TestGetBook_NotFound() {
	suite.mockBookSvc.On("GetBookByID", mock.Anything, 99).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/books/99", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *BookHandlerTestSuite) TestGetBook_BadID() {
	w := suite.performRequest(http.MethodGet, "/api/v1/books/abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBookSvc.AssertNotCalled(suite.T(), "GetBookByID", mock.Anything, mock.Anything)
}

func (suite *BookHandlerTestSuite) TestDeleteBook_Success() {
	suite.mockBookSvc.On("DeleteBook", mock.Anything, 5).Return(nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/books/5", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockBookSvc.AssertExpectations(suite.T())
}

func (suite *BookHandlerTestSuite) TestDeleteBook_NotFound() {
	suite.mockBookSvc.On("DeleteBook", mock.Anything, 99).Return(apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/books/99", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *BookHandlerTestSuite) TestDeleteBook_BadID() {
	w := suite.performRequest(http.MethodDelete, "/api/v1/books/abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBookSvc.AssertNotCalled(suite.T(), "DeleteBook", mock.Anything, mock.Anything)
}

func TestBookHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BookHandlerTestSuite))
}
