package library

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) (*LibraryManager, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewLibraryManager(logger), &buf
}

func TestManagerCirculationFlow(t *testing.T) {
	mgr, logs := newManager(t)
	mgr.AddBook(1, "Book", "Author")

	b, err := mgr.IssueBook(1, "Alice")
	require.NoError(t, err)
	assert.Equal(t, "Book", b.Title)

	_, err = mgr.IssueBook(1, "Bob")
	assert.ErrorIs(t, err, ErrAlreadyIssued)

	_, err = mgr.ReturnBook(1)
	require.NoError(t, err)
	_, err = mgr.ReturnBook(1)
	assert.ErrorIs(t, err, ErrNotIssued)

	assert.Equal(t, 1, mgr.DeleteBook(1))
	assert.Empty(t, mgr.GetAllBooks())

	out := logs.String()
	assert.Contains(t, out, "book added")
	assert.Contains(t, out, "book issued")
	assert.Contains(t, out, "issue rejected")
	assert.Contains(t, out, "book returned")
	assert.Contains(t, out, "books deleted")
}

func TestManagerSearch(t *testing.T) {
	mgr, _ := newManager(t)
	mgr.AddBook(1, "Dune", "Herbert")
	mgr.AddBook(2, "Dune", "Villeneuve")
	mgr.AddBook(1, "Emma", "Austen")

	assert.Len(t, mgr.SearchByTitle("Dune"), 2)
	assert.Len(t, mgr.SearchByID(1), 2)
	assert.Empty(t, mgr.SearchByID(9))
}

func TestNewLibraryManagerNilLogger(t *testing.T) {
	mgr := NewLibraryManager(nil)
	mgr.AddBook(1, "Emma", "Austen")
	assert.Len(t, mgr.GetAllBooks(), 1)
}

func TestImportSeed(t *testing.T) {
	mgr, _ := newManager(t)
	seed := `
books:
  - id: 1
    title: Dune
    author: Frank Herbert
  - id: 1
    title: Dune
    author: Frank Herbert
    borrower: Sam
  - id: 2
    title: Emma
    author: Jane Austen
`
	n, err := mgr.ImportSeed(strings.NewReader(seed))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	books := mgr.GetAllBooks()
	require.Len(t, books, 3)
	assert.True(t, books[0].Available)
	assert.False(t, books[1].Available)
	assert.Equal(t, "Sam", books[1].Borrower)
	assert.Equal(t, "Emma", books[2].Title)
}

func TestImportSeedRejectsInvalidDocument(t *testing.T) {
	tests := []struct {
		name string
		seed string
	}{
		{name: "malformed yaml", seed: "books: [id: 1"},
		{name: "missing title", seed: "books:\n  - id: 1\n    title: Emma\n  - id: 2\n    author: Nobody\n"},
		{name: "non-numeric id", seed: "books:\n  - id: one\n    title: Emma\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr, _ := newManager(t)
			_, err := mgr.ImportSeed(strings.NewReader(tt.seed))
			require.Error(t, err)
			assert.Empty(t, mgr.GetAllBooks())
		})
	}
}

func TestImportSeedEmptyDocument(t *testing.T) {
	mgr, _ := newManager(t)
	n, err := mgr.ImportSeed(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestImportSeedFile(t *testing.T) {
	mgr, _ := newManager(t)
	tmp := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(tmp, []byte("books:\n  - id: 4\n    title: Hello\n    author: Anon\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	n, err := mgr.ImportSeedFile(tmp)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "Hello", mgr.SearchByID(4)[0].Title)

	_, err = mgr.ImportSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	_, err = mgr.ImportSeedFile(" ")
	assert.Error(t, err)
}

func TestPrettyBook(t *testing.T) {
	assert.Equal(t, "ID: 1, Title: Dune, Author: Herbert, Status: Available",
		PrettyBook(Book{ID: 1, Title: "Dune", Author: "Herbert", Available: true}))
	assert.Equal(t, "ID: 1, Title: Dune, Author: Herbert, Status: Issued to Sam",
		PrettyBook(Book{ID: 1, Title: "Dune", Author: "Herbert", Borrower: "Sam"}))
}
