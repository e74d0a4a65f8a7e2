package repo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"shelftrack/book"
	"shelftrack/logger"
)

// Foreign keys are declared but not enforced: the store is opened without
// the _foreign_keys pragma, so orphaned authorID values stay representable.
const schema = `
           CREATE TABLE IF NOT EXISTS "author" (
               id integer primary key,
               name text not null,
               country text not null
           );

           CREATE TABLE IF NOT EXISTS "book" (
               id integer primary key,
               title text not null,
               authorID integer not null,
               qty integer not null,
               FOREIGN KEY (authorID) REFERENCES author(id)
           );
`

var seedAuthors = []book.Author{
	{ID: 1290, Name: "Charles Dickens", Country: "England"},
	{ID: 8937, Name: "J.K. Rowling", Country: "England"},
	{ID: 2356, Name: "C.S. Lewis", Country: "Ireland"},
	{ID: 6380, Name: "J.R.R. Tolkien", Country: "South Africa"},
	{ID: 5620, Name: "Lewis Carroll", Country: "England"},
}

var seedBooks = []book.Book{
	{ID: 3001, Title: "A Tale of Two Cities", AuthorID: 1290, Qty: 30},
	{ID: 3002, Title: "Harry Potter and the Philosopher's Stone", AuthorID: 8937, Qty: 40},
	{ID: 3003, Title: "The Lion, the Witch and the Wardrobe", AuthorID: 2356, Qty: 25},
	{ID: 3004, Title: "The Lord of the Rings", AuthorID: 6380, Qty: 37},
	{ID: 3005, Title: "Alice's Adventures in Wonderland", AuthorID: 5620, Qty: 12},
}

// Bootstrap creates both tables if absent, then seeds each table with the
// fixed sample rows only while that table is empty. Repeat calls are
// idempotent: existing tables and rows, seeded or not, are left untouched.
func (r *Repo) Bootstrap(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	n, err := r.CountAuthors(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		logger.Info("Seeding author table", "rows", len(seedAuthors))
		for _, a := range seedAuthors {
			if err := r.insertAuthor(ctx, a); err != nil {
				return err
			}
		}
	}

	n, err = r.CountBooks(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		logger.Info("Seeding book table", "rows", len(seedBooks))
		for _, b := range seedBooks {
			if err := r.InsertBook(ctx, b); err != nil {
				return err
			}
		}
	}

	return nil
}

// CountAuthors returns the number of rows in the author table.
func (r *Repo) CountAuthors(ctx context.Context) (int64, error) {
	return r.countRows(ctx, "author")
}

// CountBooks returns the number of rows in the book table.
func (r *Repo) CountBooks(ctx context.Context) (int64, error) {
	return r.countRows(ctx, "book")
}

func (r *Repo) countRows(ctx context.Context, table string) (int64, error) {
	query, args, err := sq.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, err
	}
	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s rows: %w", table, err)
	}
	return n, nil
}
