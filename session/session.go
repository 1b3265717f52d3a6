package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"library-catalog/library"

	"github.com/google/uuid"
)

const menu = `
------ Library Management System Menu ------
1. Add a new book
2. Search for a book by title
3. Search for a book by ID
4. Issue a book
5. Return a book
6. List all books
7. Delete a book
8. Exit
Enter your choice: `

// Menu choices.
const (
	choiceAdd = iota + 1
	choiceSearchTitle
	choiceSearchID
	choiceIssue
	choiceReturn
	choiceList
	choiceDelete
	choiceExit
)

// Session runs the interactive menu loop over a LibraryManager. It owns the
// manager for its whole lifetime.
type Session struct {
	id     uuid.UUID
	in     *bufio.Reader
	inErr  error
	out    io.Writer
	mgr    *library.LibraryManager
	screen Screen
	log    *slog.Logger
}

// New creates a session reading commands from in and writing to out. A nil
// screen disables clearing; a nil logger uses slog.Default().
func New(in io.Reader, out io.Writer, mgr *library.LibraryManager, screen Screen, logger *slog.Logger) *Session {
	if screen == nil {
		screen = NoopScreen{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.New()
	return &Session{
		id:     id,
		in:     bufio.NewReader(in),
		out:    out,
		mgr:    mgr,
		screen: screen,
		log:    logger.With("session", id.String()),
	}
}

// ID identifies the session in log records.
func (s *Session) ID() uuid.UUID { return s.id }

// Run loops until the user picks Exit, input ends, or ctx is done. It
// returns nil on a normal exit.
func (s *Session) Run(ctx context.Context) error {
	s.log.Info("session started", "books", len(s.mgr.GetAllBooks()))
	defer s.log.Info("session ended")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, menu)
		line, ok := s.readLine()
		if !ok {
			return s.inputErr()
		}

		// Non-numeric input falls through to the invalid choice branch.
		choice, _ := strconv.Atoi(line)

		switch choice {
		case choiceAdd:
			s.handleAddBook()
		case choiceSearchTitle:
			s.handleSearchByTitle()
		case choiceSearchID:
			s.handleSearchByID()
		case choiceIssue:
			s.handleIssue()
		case choiceReturn:
			s.handleReturn()
		case choiceList:
			s.handleList()
		case choiceDelete:
			s.handleDelete()
		case choiceExit:
			fmt.Fprintln(s.out, "Exiting program...")
			return nil
		default:
			s.log.Debug("invalid menu choice", "input", line)
			fmt.Fprintln(s.out, "Invalid choice. Please enter a number from 1 to 8.")
		}

		s.screen.Pause(s.in)
		s.screen.Clear()
	}
}

func (s *Session) inputErr() error {
	if s.inErr != nil {
		return fmt.Errorf("read input: %w", s.inErr)
	}
	return nil
}

// readLine returns the next input line with surrounding whitespace removed.
// Lines have no length limit. A final line without a newline is still
// returned; the following call reports end of input.
func (s *Session) readLine() (string, bool) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.inErr = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimSpace(line), true
}

func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

// promptInt re-prompts until the user enters an integer or input ends.
func (s *Session) promptInt(label string) (int, bool) {
	for {
		text, ok := s.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(text)
		if err == nil {
			return n, true
		}
		s.log.Debug("invalid number", "input", text)
		fmt.Fprintf(s.out, "Invalid number: '%s'.\n", text)
	}
}

func (s *Session) handleAddBook() {
	id, ok := s.promptInt("Enter book ID: ")
	if !ok {
		return
	}
	title, ok := s.prompt("Enter book title: ")
	if !ok {
		return
	}
	author, ok := s.prompt("Enter book author: ")
	if !ok {
		return
	}

	s.mgr.AddBook(id, title, author)
	fmt.Fprintln(s.out, "Book added successfully.")
}

func (s *Session) handleSearchByTitle() {
	title, ok := s.prompt("Enter book title to search: ")
	if !ok {
		return
	}

	books := s.mgr.SearchByTitle(title)
	if len(books) == 0 {
		fmt.Fprintf(s.out, "Book with title '%s' not found.\n", title)
		return
	}
	s.printBooks(books)
}

func (s *Session) handleSearchByID() {
	id, ok := s.promptInt("Enter book ID to search: ")
	if !ok {
		return
	}

	books := s.mgr.SearchByID(id)
	if len(books) == 0 {
		fmt.Fprintf(s.out, "Book with ID '%d' not found.\n", id)
		return
	}
	s.printBooks(books)
}

func (s *Session) handleIssue() {
	id, ok := s.promptInt("Enter book ID to issue: ")
	if !ok {
		return
	}
	name, ok := s.prompt("Enter student name: ")
	if !ok {
		return
	}

	book, err := s.mgr.IssueBook(id, name)
	switch {
	case err == nil:
		fmt.Fprintf(s.out, "Book '%s' issued to %s.\n", book.Title, book.Borrower)
	case errors.Is(err, library.ErrBookNotFound):
		fmt.Fprintf(s.out, "Book with ID '%d' not found.\n", id)
	case errors.Is(err, library.ErrAlreadyIssued):
		fmt.Fprintf(s.out, "Book with ID '%d' is already issued.\n", id)
	case errors.Is(err, library.ErrBorrowerRequired):
		fmt.Fprintln(s.out, "Student name cannot be empty.")
	default:
		fmt.Fprintf(s.out, "Error issuing book: %v\n", err)
	}
}

func (s *Session) handleReturn() {
	id, ok := s.promptInt("Enter book ID to return: ")
	if !ok {
		return
	}

	book, err := s.mgr.ReturnBook(id)
	switch {
	case err == nil:
		fmt.Fprintf(s.out, "Book '%s' returned successfully.\n", book.Title)
	case errors.Is(err, library.ErrBookNotFound):
		fmt.Fprintf(s.out, "Book with ID '%d' not found.\n", id)
	case errors.Is(err, library.ErrNotIssued):
		fmt.Fprintf(s.out, "Book with ID '%d' is already available.\n", id)
	default:
		fmt.Fprintf(s.out, "Error returning book: %v\n", err)
	}
}

func (s *Session) handleList() {
	books := s.mgr.GetAllBooks()
	if len(books) == 0 {
		fmt.Fprintln(s.out, "Library is empty.")
		return
	}
	fmt.Fprintln(s.out, "List of all books in the library:")
	s.printBooks(books)
}

func (s *Session) handleDelete() {
	id, ok := s.promptInt("Enter book ID to delete: ")
	if !ok {
		return
	}

	if s.mgr.DeleteBook(id) == 0 {
		fmt.Fprintf(s.out, "Book with ID '%d' not found.\n", id)
		return
	}
	fmt.Fprintf(s.out, "Book with ID '%d' deleted successfully.\n", id)
}

func (s *Session) printBooks(books []library.Book) {
	for _, b := range books {
		fmt.Fprintln(s.out, library.PrettyBook(b))
	}
}
