package library

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LibraryManager is a thin façade over the Catalog, keeping CLI code simple.
type LibraryManager struct {
	catalog *Catalog
	log     *slog.Logger
}

// NewLibraryManager creates a manager over an empty catalog. A nil logger
// falls back to slog.Default().
func NewLibraryManager(logger *slog.Logger) *LibraryManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &LibraryManager{catalog: NewCatalog(), log: logger}
}

// ------------------ Book helpers ------------------

func (lm *LibraryManager) AddBook(id int, title, author string) {
	lm.catalog.Add(id, title, author)
	lm.log.Info("book added", "id", id, "title", title, "books", lm.catalog.Len())
}

func (lm *LibraryManager) GetAllBooks() []Book { return lm.catalog.List() }

// ------------------ Search ------------------

func (lm *LibraryManager) SearchByTitle(title string) []Book {
	books := lm.catalog.FindByTitle(title)
	lm.log.Debug("search by title", "title", title, "matches", len(books))
	return books
}

func (lm *LibraryManager) SearchByID(id int) []Book {
	books := lm.catalog.FindByID(id)
	lm.log.Debug("search by id", "id", id, "matches", len(books))
	return books
}

// ------------------ Circulation ------------------

// IssueBook lends the first available copy with the given id to borrower.
func (lm *LibraryManager) IssueBook(id int, borrower string) (Book, error) {
	b, err := lm.catalog.Issue(id, borrower)
	if err != nil {
		lm.log.Info("issue rejected", "id", id, "borrower", borrower, "err", err)
		return b, err
	}
	lm.log.Info("book issued", "id", id, "title", b.Title, "borrower", borrower)
	return b, nil
}

// ReturnBook takes back the first issued copy with the given id.
func (lm *LibraryManager) ReturnBook(id int) (Book, error) {
	b, err := lm.catalog.Return(id)
	if err != nil {
		lm.log.Info("return rejected", "id", id, "err", err)
		return b, err
	}
	lm.log.Info("book returned", "id", id, "title", b.Title)
	return b, nil
}

// DeleteBook removes every record with the given id.
func (lm *LibraryManager) DeleteBook(id int) int {
	n := lm.catalog.Delete(id)
	lm.log.Info("books deleted", "id", id, "removed", n, "books", lm.catalog.Len())
	return n
}

// ------------------ Seeding ------------------

// ImportSeedFile loads the initial books from the YAML file at path
// (relative paths resolve from cwd).
func (lm *LibraryManager) ImportSeedFile(path string) (int, error) {
	if strings.TrimSpace(path) == "" {
		return 0, fmt.Errorf("seed file path cannot be empty")
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return 0, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return lm.ImportSeed(f)
}

// ImportSeed decodes a SeedData document from r and adds its books in order.
// Entries with a borrower are issued to that borrower right after being added.
// Nothing is added unless the whole document is valid.
func (lm *LibraryManager) ImportSeed(r io.Reader) (int, error) {
	var data SeedData
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, fmt.Errorf("parse seed: %w", err)
	}
	for i, b := range data.Books {
		if strings.TrimSpace(b.Title) == "" {
			return 0, fmt.Errorf("seed entry %d (id %d): title is required", i+1, b.ID)
		}
	}

	for _, b := range data.Books {
		lm.catalog.Add(b.ID, b.Title, b.Author)
		if borrower := strings.TrimSpace(b.Borrower); borrower != "" {
			lm.issueLast(borrower)
		}
	}
	lm.log.Info("seed imported", "books", len(data.Books))
	return len(data.Books), nil
}

// issueLast issues the most recently added record. Issue by id would pick an
// earlier available duplicate instead.
func (lm *LibraryManager) issueLast(borrower string) {
	last := &lm.catalog.books[len(lm.catalog.books)-1]
	last.Available = false
	last.Borrower = borrower
}

// ------------------ Utilities ------------------

// PrettyBook formats a book the way the menu prints it.
func PrettyBook(b Book) string {
	status := "Available"
	if !b.Available {
		status = "Issued to " + b.Borrower
	}
	return fmt.Sprintf("ID: %d, Title: %s, Author: %s, Status: %s", b.ID, b.Title, b.Author, status)
}
