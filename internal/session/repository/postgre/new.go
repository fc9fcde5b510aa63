package postgre

import (
	"database/sql"
	"fmt"

	"kazileo/internal/session"
	"kazileo/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for user sessions.
func New(db *sql.DB, l log.Logger) session.Repository {
	if db == nil {
		panic("session/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("session/repository/postgre.%s", method)
}
