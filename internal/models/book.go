package models

// Book mirrors a row of the books table.
type Book struct {
	BookID    int
	Title     string
	Author    string
	Publisher string
	Year      int
}
