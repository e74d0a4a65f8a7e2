package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"shelftrack/book"
	"shelftrack/repo"
	"shelftrack/service"
)

// menu drives the interactive loop. Input and output are injected so the
// loop can run against scripted sessions in tests.
type menu struct {
	svc *service.Service
	in  *bufio.Scanner
	out io.Writer
}

func newMenu(svc *service.Service, in io.Reader, out io.Writer) *menu {
	return &menu{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run dispatches menu choices until the operator exits or input ends. No
// operation failure ever terminates the loop.
func (m *menu) Run(ctx context.Context) {
	for {
		fmt.Fprintln(m.out, "\n====== EBOOKSTORE MENU ======")
		fmt.Fprintln(m.out, "1. Enter book")
		fmt.Fprintln(m.out, "2. Update book")
		fmt.Fprintln(m.out, "3. Delete book")
		fmt.Fprintln(m.out, "4. Search books")
		fmt.Fprintln(m.out, "5. View details of all books")
		fmt.Fprintln(m.out, "0. Exit")

		choice, err := m.prompt("\nEnter your choice: ")
		if err != nil {
			return
		}

		switch choice {
		case "1":
			m.enterBook(ctx)
		case "2":
			m.updateBook(ctx)
		case "3":
			m.deleteBook(ctx)
		case "4":
			m.searchBooks(ctx)
		case "5":
			m.viewAllBooks(ctx)
		case "0":
			fmt.Fprintln(m.out, "Goodbye! Have a great day.")
			return
		default:
			fmt.Fprintln(m.out, "Invalid selection. Please choose again.")
		}
	}
}

func (m *menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *menu) promptInt(label string) (int64, error) {
	s, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return n, nil
}

func (m *menu) fail(action string, err error) {
	fmt.Fprintf(m.out, "Error %s: %v\n", action, err)
}

func (m *menu) enterBook(ctx context.Context) {
	id, err := m.promptInt("Enter book ID: ")
	if err != nil {
		m.fail("adding book", err)
		return
	}
	title, err := m.prompt("Enter book title: ")
	if err != nil {
		m.fail("adding book", err)
		return
	}
	authorID, err := m.promptInt("Enter author ID: ")
	if err != nil {
		m.fail("adding book", err)
		return
	}
	qty, err := m.promptInt("Enter quantity: ")
	if err != nil {
		m.fail("adding book", err)
		return
	}

	if err := m.svc.EnterBook(ctx, id, title, authorID, qty); err != nil {
		if errors.Is(err, repo.ErrDuplicateID) {
			fmt.Fprintf(m.out, "Error adding book: a book with ID %d already exists\n", id)
			return
		}
		m.fail("adding book", err)
		return
	}
	fmt.Fprintf(m.out, "Book %q successfully added.\n", title)
}

func (m *menu) updateBook(ctx context.Context) {
	bookID, err := m.promptInt("Enter the ID of the book to update: ")
	if err != nil {
		m.fail("updating book", err)
		return
	}

	fmt.Fprintln(m.out, "\nUpdate Options:")
	fmt.Fprintln(m.out, "1. Quantity")
	fmt.Fprintln(m.out, "2. Title")
	fmt.Fprintln(m.out, "3. Author ID")
	fmt.Fprintln(m.out, "4. Author Name/Country")

	choice, err := m.prompt("Enter your choice (1-4): ")
	if err != nil {
		m.fail("updating book", err)
		return
	}

	switch choice {
	case "1":
		qty, err := m.promptInt("Enter new quantity: ")
		if err == nil {
			err = m.svc.UpdateQty(ctx, bookID, qty)
		}
		if err != nil {
			m.fail("updating book", err)
			return
		}
	case "2":
		title, err := m.prompt("Enter new title: ")
		if err == nil {
			err = m.svc.UpdateTitle(ctx, bookID, title)
		}
		if err != nil {
			m.fail("updating book", err)
			return
		}
	case "3":
		authorID, err := m.promptInt("Enter new author ID: ")
		if err == nil {
			err = m.svc.UpdateAuthorRef(ctx, bookID, authorID)
		}
		if err != nil {
			m.fail("updating book", err)
			return
		}
	case "4":
		if !m.updateAuthor(ctx, bookID) {
			return
		}
	default:
		fmt.Fprintln(m.out, "Invalid choice.")
		return
	}

	fmt.Fprintln(m.out, "Book/Author updated successfully.")
}

// updateAuthor runs update mode 4 and reports whether a row was written.
// Blank input keeps the current value.
func (m *menu) updateAuthor(ctx context.Context, bookID int64) bool {
	author, err := m.svc.CurrentAuthor(ctx, bookID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			fmt.Fprintln(m.out, "Author not found for this book.")
		} else {
			m.fail("updating author", err)
		}
		return false
	}

	fmt.Fprintf(m.out, "Current Author: %s (%s)\n", author.Name, author.Country)

	name, err := m.prompt("Enter new author name (leave blank to keep current): ")
	if err != nil {
		m.fail("updating author", err)
		return false
	}
	if name == "" {
		name = author.Name
	}

	country, err := m.prompt("Enter new country (leave blank to keep current): ")
	if err != nil {
		m.fail("updating author", err)
		return false
	}
	if country == "" {
		country = author.Country
	}

	if err := m.svc.RenameAuthor(ctx, author.ID, name, country); err != nil {
		m.fail("updating author", err)
		return false
	}
	return true
}

func (m *menu) deleteBook(ctx context.Context) {
	bookID, err := m.promptInt("Enter the ID of the book to delete: ")
	if err != nil {
		m.fail("deleting book", err)
		return
	}
	if err := m.svc.DeleteBook(ctx, bookID); err != nil {
		m.fail("deleting book", err)
		return
	}
	fmt.Fprintf(m.out, "Book with ID %d deleted successfully.\n", bookID)
}

func (m *menu) searchBooks(ctx context.Context) {
	keyword, err := m.prompt("Enter a keyword to search for: ")
	if err != nil {
		m.fail("searching books", err)
		return
	}
	books, err := m.svc.SearchBooks(ctx, keyword)
	if err != nil {
		m.fail("searching books", err)
		return
	}
	if len(books) == 0 {
		fmt.Fprintln(m.out, "No books found with that keyword.")
		return
	}

	fmt.Fprintln(m.out, "\nSearch Results:")
	lines := lo.Map(books, func(b book.Book, _ int) string {
		return fmt.Sprintf("ID: %d, Title: %s, Author ID: %d, Quantity: %d",
			b.ID, b.Title, b.AuthorID, b.Qty)
	})
	fmt.Fprintln(m.out, strings.Join(lines, "\n"))
}

func (m *menu) viewAllBooks(ctx context.Context) {
	details, err := m.svc.ViewAllBooks(ctx)
	if err != nil {
		m.fail("viewing books", err)
		return
	}

	fmt.Fprintln(m.out, "\nBook Details:")
	lines := lo.Map(details, func(d book.BookDetail, _ int) string {
		return fmt.Sprintf("ID: %d, Title: %s, Author: %s (%s), Quantity: %d",
			d.ID, d.Title, d.AuthorName, d.AuthorCountry, d.Qty)
	})
	fmt.Fprintln(m.out, strings.Join(lines, "\n"))
}
