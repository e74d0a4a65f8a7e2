// Package service provides the data operations between the menu and the
// repository. Each operation validates its arguments, acquires a fresh
// storage handle, and releases it before returning.
package service

import (
	"context"
	"fmt"

	"shelftrack/book"
	"shelftrack/logger"
	"shelftrack/repo"
	"shelftrack/validator"
)

// Service exposes the bookstore operations. It holds only the database
// path; no storage state persists between operations.
type Service struct {
	dbPath string
}

// New creates a Service operating on the database at dbPath.
func New(dbPath string) *Service {
	return &Service{dbPath: dbPath}
}

func (s *Service) withRepo(fn func(*repo.Repo) error) error {
	r, err := repo.Open(s.dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := r.Close(); err != nil {
			logger.Warn("Failed to close storage", "error", err)
		}
	}()
	return fn(r)
}

// Setup ensures the schema exists and the sample rows are seeded. Safe to
// call repeatedly.
func (s *Service) Setup(ctx context.Context) error {
	return s.withRepo(func(r *repo.Repo) error {
		if err := r.Bootstrap(ctx); err != nil {
			return fmt.Errorf("bootstrap storage: %w", err)
		}
		return nil
	})
}

// EnterBook inserts a new book row. The author id is not checked against
// the author table, and the quantity is deliberately unconstrained.
func (s *Service) EnterBook(ctx context.Context, id int64, title string, authorID, qty int64) error {
	if err := validator.ValidateID(id); err != nil {
		return fmt.Errorf("book id: %w", err)
	}
	if err := validator.ValidateNonEmpty(title); err != nil {
		return fmt.Errorf("title: %w", err)
	}
	logger.Debug("Adding book", "id", id, "title", title)
	return s.withRepo(func(r *repo.Repo) error {
		return r.InsertBook(ctx, book.Book{ID: id, Title: title, AuthorID: authorID, Qty: qty})
	})
}

// UpdateQty replaces the quantity of the book with the given id. A missing
// book id matches zero rows and still succeeds.
func (s *Service) UpdateQty(ctx context.Context, bookID, qty int64) error {
	logger.Debug("Updating book quantity", "id", bookID, "qty", qty)
	return s.withRepo(func(r *repo.Repo) error {
		_, err := r.UpdateBookQty(ctx, bookID, qty)
		return err
	})
}

// UpdateTitle replaces the title of the book with the given id.
func (s *Service) UpdateTitle(ctx context.Context, bookID int64, title string) error {
	if err := validator.ValidateNonEmpty(title); err != nil {
		return fmt.Errorf("title: %w", err)
	}
	logger.Debug("Updating book title", "id", bookID, "title", title)
	return s.withRepo(func(r *repo.Repo) error {
		_, err := r.UpdateBookTitle(ctx, bookID, title)
		return err
	})
}

// UpdateAuthorRef repoints the book at another author id, which may or may
// not exist.
func (s *Service) UpdateAuthorRef(ctx context.Context, bookID, authorID int64) error {
	logger.Debug("Updating book author reference", "id", bookID, "authorID", authorID)
	return s.withRepo(func(r *repo.Repo) error {
		_, err := r.UpdateBookAuthorID(ctx, bookID, authorID)
		return err
	})
}

// CurrentAuthor returns the author linked to the given book, or
// repo.ErrNotFound when the book is missing or orphaned.
func (s *Service) CurrentAuthor(ctx context.Context, bookID int64) (*book.Author, error) {
	var a *book.Author
	err := s.withRepo(func(r *repo.Repo) error {
		var err error
		a, err = r.AuthorByBookID(ctx, bookID)
		return err
	})
	return a, err
}

// RenameAuthor rewrites an author's name and country. The change shows on
// every book linked to the author.
func (s *Service) RenameAuthor(ctx context.Context, authorID int64, name, country string) error {
	if err := validator.ValidateNonEmpty(name); err != nil {
		return fmt.Errorf("author name: %w", err)
	}
	if err := validator.ValidateNonEmpty(country); err != nil {
		return fmt.Errorf("author country: %w", err)
	}
	logger.Debug("Updating author", "id", authorID, "name", name, "country", country)
	return s.withRepo(func(r *repo.Repo) error {
		_, err := r.UpdateAuthor(ctx, book.Author{ID: authorID, Name: name, Country: country})
		return err
	})
}

// DeleteBook removes the book with the given id. Deleting a missing id is
// reported as success.
func (s *Service) DeleteBook(ctx context.Context, bookID int64) error {
	logger.Debug("Deleting book", "id", bookID)
	return s.withRepo(func(r *repo.Repo) error {
		_, err := r.DeleteBook(ctx, bookID)
		return err
	})
}

// SearchBooks returns the books whose title contains keyword. No matches
// yields an empty slice, not an error.
func (s *Service) SearchBooks(ctx context.Context, keyword string) ([]book.Book, error) {
	var books []book.Book
	err := s.withRepo(func(r *repo.Repo) error {
		var err error
		books, err = r.SearchBooks(ctx, keyword)
		return err
	})
	return books, err
}

// ViewAllBooks returns every book joined with its author's identity.
func (s *Service) ViewAllBooks(ctx context.Context) ([]book.BookDetail, error) {
	var details []book.BookDetail
	err := s.withRepo(func(r *repo.Repo) error {
		var err error
		details, err = r.ListBookDetails(ctx)
		return err
	})
	return details, err
}

// GetBook fetches a single book by id, with repo.ErrNotFound when absent.
func (s *Service) GetBook(ctx context.Context, bookID int64) (*book.Book, error) {
	var b *book.Book
	err := s.withRepo(func(r *repo.Repo) error {
		var err error
		b, err = r.GetBook(ctx, bookID)
		return err
	})
	return b, err
}
