package repo

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"shelftrack/logger"
)

// Repo is a handle to the bookstore database. Every operation opens its own
// Repo and closes it when done, so no storage state outlives an operation.
type Repo struct {
	db   *sql.DB
	path string
}

// Open opens the SQLite database at path, creating the file if absent.
func Open(path string) (*Repo, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", path, err)
	}
	return &Repo{db: db, path: path}, nil
}

func (r *Repo) Close() error {
	if r.db != nil {
		logger.Debug("Closing database connection", "path", r.path)
		return r.db.Close()
	}
	return nil
}

func (r *Repo) Ping() error {
	if r.db != nil {
		return r.db.Ping()
	}
	return sql.ErrConnDone
}
