package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"shelftrack/book"
)

func (r *Repo) insertAuthor(ctx context.Context, a book.Author) error {
	query, args, err := sq.Insert("author").
		Columns("id", "name", "country").
		Values(a.ID, a.Name, a.Country).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert author %d: %w", a.ID, translate(err))
	}
	return nil
}

// AuthorByBookID resolves the author currently linked to the given book via
// a join, returning ErrNotFound when the book is missing or orphaned.
func (r *Repo) AuthorByBookID(ctx context.Context, bookID int64) (*book.Author, error) {
	query, args, err := sq.Select("a.id", "a.name", "a.country").
		From("author a").
		Join("book b ON b.authorID = a.id").
		Where(sq.Eq{"b.id": bookID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var a book.Author
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.Name, &a.Country)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("author for book %d: %w", bookID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("author for book %d: %w", bookID, err)
	}
	return &a, nil
}

// UpdateAuthor rewrites the name and country of the author row. Every book
// linked to the author sees the change, since this mutates the author
// record rather than any book-author link.
func (r *Repo) UpdateAuthor(ctx context.Context, a book.Author) (int64, error) {
	query, args, err := sq.Update("author").
		Set("name", a.Name).
		Set("country", a.Country).
		Where(sq.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update author %d: %w", a.ID, translate(err))
	}
	return res.RowsAffected()
}
