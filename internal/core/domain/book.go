package domain

// BookStatus is the derived circulation state of a book. It is never stored;
// a book is on loan exactly when an active loan references it.
type BookStatus string

const (
	StatusAvailable BookStatus = "AVAILABLE"
	StatusOnLoan    BookStatus = "ON_LOAN"
)

// Book is a single physical copy in the inventory. BookID is the
// librarian-assigned accession number and is immutable once created.
type Book struct {
	BookID    int
	Title     string
	Author    string
	Publisher string
	Year      int
}

// BookWithStatus pairs a book with its derived circulation status for listings.
type BookWithStatus struct {
	Book
	Status BookStatus
}
