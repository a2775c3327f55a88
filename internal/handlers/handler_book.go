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

// bookHandler handles HTTP requests related to the book inventory.
type bookHandler struct {
	bookService  portssvc.BookSvcFacade
	queryService portssvc.QuerySvcFacade
}

func newBookHandler(bs portssvc.BookSvcFacade, qs portssvc.QuerySvcFacade) *bookHandler {
	return &bookHandler{
		bookService:  bs,
		queryService: qs,
	}
}

// RegisterBookRoutes registers routes related to books. Reads are public;
// mutations are expected to sit behind the auth middleware via the group.
func RegisterBookRoutes(public *gin.RouterGroup, protected *gin.RouterGroup, bs portssvc.BookSvcFacade, qs portssvc.QuerySvcFacade) {
	h := newBookHandler(bs, qs)

	public.GET("/books", h.listBooks)
	public.GET("/books/:id", h.getBook)
	protected.POST("/books", h.createBook)
	protected.DELETE("/books/:id", h.deleteBook)
}

// createBook godoc
// @Summary Register a new book
// @Description Adds a book to the inventory with a librarian-assigned ID
// @Tags books
// @Accept  json
// @Produce  json
// @Param   book body dto.CreateBookRequest true "Book details"
// @Success 201 {object} dto.BookResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Book ID already exists"
// @Security BearerAuth
// @Router /books [post]
func (h *bookHandler) createBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBook", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	book, err := h.bookService.CreateBook(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create book in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create book"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCreatedBookResponse(book))
}

// listBooks godoc
// @Summary List books with circulation status
// @Description Lists the inventory in accession-number order; each row carries the derived AVAILABLE/ON_LOAN status
// @Tags books
// @Produce  json
// @Param   id query int false "Restrict to a single book ID"
// @Success 200 {array} dto.BookResponse
// @Failure 400 {object} map[string]string "Invalid id filter"
// @Router /books [get]
func (h *bookHandler) listBooks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var idFilter *int
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
			return
		}
		idFilter = &id
	}

	books, err := h.queryService.ListBooksWithStatus(c.Request.Context(), idFilter)
	if err != nil {
		logger.Error("Failed to list books", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list books"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBookResponse(books))
}

// getBook godoc
// @Summary Get a single book
// @Description Retrieves one book with its derived AVAILABLE/ON_LOAN status
// @Tags books
// @Produce  json
// @Param   id path int true "Book ID"
// @Success 200 {object} dto.BookResponse
// @Failure 400 {object} map[string]string "Invalid book ID"
// @Failure 404 {object} map[string]string "Book not found"
// @Router /books/{id} [get]
func (h *bookHandler) getBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bookID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Book ID must be an integer"})
		return
	}

	book, err := h.bookService.GetBookByID(c.Request.Context(), bookID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get book in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get book"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBookResponse(*book))
}

// deleteBook godoc
// @Summary Delete a book
// @Description Removes a book and any active loan referencing it
// @Tags books
// @Param   id path int true "Book ID"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Invalid book ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Book not found"
// @Security BearerAuth
// @Router /books/{id} [delete]
func (h *bookHandler) deleteBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bookID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Book ID must be an integer"})
		return
	}

	if err := h.bookService.DeleteBook(c.Request.Context(), bookID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to delete book in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete book"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
