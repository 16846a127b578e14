package book

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Book represents a book entity. Field order matches the column order of
// the books table and the property order of the request schemas.
type Book struct {
	ISBN      string `json:"isbn"`
	AmazonURL string `json:"amazon_url"`
	Author    string `json:"author"`
	Language  string `json:"language"`
	Pages     int    `json:"pages"`
	Publisher string `json:"publisher"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
}

// NotFoundError reports that no book exists for the given ISBN. The
// message text is load-bearing: existing clients match on it verbatim,
// including the missing closing quote.
type NotFoundError struct {
	ISBN string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("There is no book with an isbn '%s", e.ISBN)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DuplicateISBNError reports a primary-key violation on create. Message is
// the driver's own text; clients match on the books_pkey constraint name.
type DuplicateISBNError struct {
	ISBN    string
	Message string
}

func (e *DuplicateISBNError) Error() string { return e.Message }
