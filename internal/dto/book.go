package dto

import (
	"github.com/openshelf/library_circulation_app/internal/core/domain"
)

// CreateBookRequest defines the data needed to register a new book.
type CreateBookRequest struct {
	BookID    int    `json:"bookID" binding:"required,gt=0"`
	Title     string `json:"title" binding:"required"`
	Author    string `json:"author" binding:"required"`
	Publisher string `json:"publisher" binding:"required"`
	Year      int    `json:"year" binding:"required,gt=0"`
}

// BookResponse defines the data returned for a book on listings.
type BookResponse struct {
	BookID    int               `json:"bookID"`
	Title     string            `json:"title"`
	Author    string            `json:"author"`
	Publisher string            `json:"publisher"`
	Year      int               `json:"year"`
	Status    domain.BookStatus `json:"status"`
}

// ToBookResponse converts a domain.BookWithStatus to a BookResponse DTO.
func ToBookResponse(b domain.BookWithStatus) BookResponse {
	return BookResponse{
		BookID:    b.BookID,
		Title:     b.Title,
		Author:    b.Author,
		Publisher: b.Publisher,
		Year:      b.Year,
		Status:    b.Status,
	}
}

// ToListBookResponse converts a slice of domain.BookWithStatus to DTOs.
func ToListBookResponse(books []domain.BookWithStatus) []BookResponse {
	res := make([]BookResponse, len(books))
	for i, b := range books {
		res[i] = ToBookResponse(b)
	}
	return res
}

// ToCreatedBookResponse converts a freshly created book, which is available
// by construction, to a BookResponse DTO.
func ToCreatedBookResponse(b *domain.Book) BookResponse {
	return ToBookResponse(domain.BookWithStatus{Book: *b, Status: domain.StatusAvailable})
}
