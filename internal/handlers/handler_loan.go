package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openshelf/library_circulation_app/internal/apperrors"
	portssvc "github.com/openshelf/library_circulation_app/internal/core/ports/services"
	"github.com/openshelf/library_circulation_app/internal/dto"
	"github.com/openshelf/library_circulation_app/internal/middleware"
)

// loanHandler handles HTTP requests for issuing and returning books.
type loanHandler struct {
	circulationService portssvc.CirculationSvcFacade
	queryService       portssvc.QuerySvcFacade
}

func newLoanHandler(cs portssvc.CirculationSvcFacade, qs portssvc.QuerySvcFacade) *loanHandler {
	return &loanHandler{
		circulationService: cs,
		queryService:       qs,
	}
}

// RegisterLoanRoutes registers routes related to loans. The listing is
// public; issue and return are expected to sit behind the auth middleware.
func RegisterLoanRoutes(public *gin.RouterGroup, protected *gin.RouterGroup, cs portssvc.CirculationSvcFacade, qs portssvc.QuerySvcFacade) {
	h := newLoanHandler(cs, qs)

	public.GET("/loans", h.listLoans)
	protected.POST("/loans", h.issueBook)
	protected.DELETE("/loans/:bookID", h.returnBook)
}

// issueBook godoc
// @Summary Issue a book to a borrower
// @Description Creates a loan for an available book; due date is the issue date plus 15 days
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   loan body dto.IssueBookRequest true "Loan details"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Book not found"
// @Failure 409 {object} map[string]string "Book already on loan"
// @Security BearerAuth
// @Router /loans [post]
func (h *loanHandler) issueBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.IssueBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for IssueBook", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	loan, err := h.circulationService.IssueBook(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Book is already on loan"})
		} else {
			logger.Error("Failed to issue book in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue book"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

// returnBook godoc
// @Summary Return a book
// @Description Closes the active loan for a book, making it available again
// @Tags loans
// @Param   bookID path int true "Book ID"
// @Success 204 "Returned"
// @Failure 400 {object} map[string]string "Invalid book ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Book not on loan"
// @Security BearerAuth
// @Router /loans/{bookID} [delete]
func (h *loanHandler) returnBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bookID, err := strconv.Atoi(c.Param("bookID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Book ID must be an integer"})
		return
	}

	if err := h.circulationService.ReturnBook(c.Request.Context(), bookID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book is not on loan"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to return book in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to return book"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// listLoans godoc
// @Summary List active loans
// @Description Lists active loans with book title and the overdue flag evaluated at read time
// @Tags loans
// @Produce  json
// @Success 200 {array} dto.LoanListResponse
// @Router /loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	loans, err := h.queryService.ListLoansWithOverdue(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list loans", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list loans"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanListResponse(loans))
}
