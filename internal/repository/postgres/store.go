package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"attendancehub/internal/domain"

	"github.com/lib/pq"
)

// Postgres error codes the repositories translate into domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Store is the shared record store over an injected connection pool.
// Reads go straight to the pool; every write runs in its own transaction that is
// committed on success and rolled back on failure.
type Store struct {
	DB *sql.DB
}

// NewStore returns a Store using db. The caller owns db.
func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

// Get runs a query that returns rows.
func (s *Store) Get(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

// GetOne runs a query expected to return at most one row.
func (s *Store) GetOne(ctx context.Context, query string, args ...any) *sql.Row {
	return s.DB.QueryRowContext(ctx, query, args...)
}

// Set executes a single mutating statement and returns the number of affected rows.
func (s *Store) Set(ctx context.Context, query string, args ...any) (int64, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return 0, fmt.Errorf("rollback after %v: %w", err, rbErr)
		}
		return 0, classify(err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

// classify maps driver errors onto domain sentinels, keeping the original message.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w", pqErr.Message, domain.ErrConflict)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w", pqErr.Message, domain.ErrInvalidReference)
		}
		switch pqErr.Code.Class() {
		case "22", "23":
			return fmt.Errorf("%s: %w", pqErr.Message, domain.ErrInvalidInput)
		}
	}
	return err
}
