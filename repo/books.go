package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"shelftrack/book"
)

// InsertBook adds a new book row. A primary-key collision is reported as
// ErrDuplicateID; authorID is not checked against the author table.
func (r *Repo) InsertBook(ctx context.Context, b book.Book) error {
	query, args, err := sq.Insert("book").
		Columns("id", "title", "authorID", "qty").
		Values(b.ID, b.Title, b.AuthorID, b.Qty).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert book %d: %w", b.ID, translate(err))
	}
	return nil
}

// UpdateBookQty replaces the quantity of the book with the given id and
// returns the number of rows matched. A missing id matches zero rows and is
// not an error.
func (r *Repo) UpdateBookQty(ctx context.Context, id, qty int64) (int64, error) {
	return r.updateBook(ctx, id, sq.Update("book").Set("qty", qty))
}

// UpdateBookTitle replaces the title of the book with the given id.
func (r *Repo) UpdateBookTitle(ctx context.Context, id int64, title string) (int64, error) {
	return r.updateBook(ctx, id, sq.Update("book").Set("title", title))
}

// UpdateBookAuthorID repoints the book at another author id. The new id is
// not checked against the author table.
func (r *Repo) UpdateBookAuthorID(ctx context.Context, id, authorID int64) (int64, error) {
	return r.updateBook(ctx, id, sq.Update("book").Set("authorID", authorID))
}

func (r *Repo) updateBook(ctx context.Context, id int64, builder sq.UpdateBuilder) (int64, error) {
	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update book %d: %w", id, translate(err))
	}
	return res.RowsAffected()
}

// DeleteBook removes the book with the given id and returns the number of
// rows removed. Deleting a missing id is a no-op, not an error, and the
// book's author is never touched.
func (r *Repo) DeleteBook(ctx context.Context, id int64) (int64, error) {
	query, args, err := sq.Delete("book").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete book %d: %w", id, err)
	}
	return res.RowsAffected()
}

// GetBook fetches a single book by id, returning ErrNotFound when absent.
func (r *Repo) GetBook(ctx context.Context, id int64) (*book.Book, error) {
	query, args, err := sq.Select("id", "title", "authorID", "qty").
		From("book").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var b book.Book
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&b.ID, &b.Title, &b.AuthorID, &b.Qty)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("book %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}
	return &b, nil
}

// SearchBooks returns every book whose title contains keyword as a
// substring, with the storage engine's default LIKE case semantics. An
// empty keyword matches everything. No matches yields an empty slice.
func (r *Repo) SearchBooks(ctx context.Context, keyword string) ([]book.Book, error) {
	query, args, err := sq.Select("id", "title", "authorID", "qty").
		From("book").
		Where(sq.Like{"title": "%" + keyword + "%"}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search books %q: %w", keyword, err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.AuthorID, &b.Qty); err != nil {
			return nil, fmt.Errorf("scan book row: %w", err)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// ListBookDetails returns all books joined with their author's name and
// country. Books whose authorID has no matching author are silently
// excluded by the inner join. Row order is whatever the engine returns.
func (r *Repo) ListBookDetails(ctx context.Context) ([]book.BookDetail, error) {
	query, args, err := sq.Select("b.id", "b.title", "b.authorID", "b.qty", "a.name", "a.country").
		From("book b").
		Join("author a ON b.authorID = a.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list book details: %w", err)
	}
	defer rows.Close()

	details := []book.BookDetail{}
	for rows.Next() {
		var d book.BookDetail
		if err := rows.Scan(&d.ID, &d.Title, &d.AuthorID, &d.Qty, &d.AuthorName, &d.AuthorCountry); err != nil {
			return nil, fmt.Errorf("scan book detail row: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}
