package library

import (
	"errors"
	"strings"
)

var (
	// ErrBookNotFound is returned when no record carries the requested id.
	ErrBookNotFound = errors.New("book not found")
	// ErrAlreadyIssued is returned by Issue when every record with the id is issued.
	ErrAlreadyIssued = errors.New("book already issued")
	// ErrNotIssued is returned by Return when every record with the id is available.
	ErrNotIssued = errors.New("book is not issued")
	// ErrBorrowerRequired is returned by Issue when the borrower name is blank.
	ErrBorrowerRequired = errors.New("borrower name is required")
)

// Catalog holds the book records in insertion order. Lookups are linear
// scans; there are no secondary indexes.
type Catalog struct {
	books []Book
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Add appends a new available record. Duplicate ids are accepted.
func (c *Catalog) Add(id int, title, author string) {
	c.books = append(c.books, Book{
		ID:        id,
		Title:     title,
		Author:    author,
		Available: true,
	})
}

// FindByTitle returns every record whose title equals title exactly.
func (c *Catalog) FindByTitle(title string) []Book {
	var found []Book
	for _, b := range c.books {
		if b.Title == title {
			found = append(found, b)
		}
	}
	return found
}

// FindByID returns every record with the given id.
func (c *Catalog) FindByID(id int) []Book {
	var found []Book
	for _, b := range c.books {
		if b.ID == id {
			found = append(found, b)
		}
	}
	return found
}

// Issue lends the first available record with the given id to borrower and
// returns the updated record.
func (c *Catalog) Issue(id int, borrower string) (Book, error) {
	if strings.TrimSpace(borrower) == "" {
		return Book{}, ErrBorrowerRequired
	}
	seen := false
	for i := range c.books {
		b := &c.books[i]
		if b.ID != id {
			continue
		}
		seen = true
		if b.Available {
			b.Available = false
			b.Borrower = borrower
			return *b, nil
		}
	}
	if seen {
		return Book{}, ErrAlreadyIssued
	}
	return Book{}, ErrBookNotFound
}

// Return marks the first issued record with the given id as available again.
func (c *Catalog) Return(id int) (Book, error) {
	seen := false
	for i := range c.books {
		b := &c.books[i]
		if b.ID != id {
			continue
		}
		seen = true
		if !b.Available {
			b.Available = true
			b.Borrower = ""
			return *b, nil
		}
	}
	if seen {
		return Book{}, ErrNotIssued
	}
	return Book{}, ErrBookNotFound
}

// Delete removes every record with the given id and reports how many were
// removed.
func (c *Catalog) Delete(id int) int {
	kept := c.books[:0]
	for _, b := range c.books {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	removed := len(c.books) - len(kept)
	// Zero the tail so dropped records are not retained by the backing array.
	clear(c.books[len(kept):])
	c.books = kept
	return removed
}

// List returns a copy of all records in insertion order.
func (c *Catalog) List() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

// Len reports the number of records.
func (c *Catalog) Len() int { return len(c.books) }
