package repository

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when an entity or installment id does not exist.
// Callers must treat it as a referential error, never as a reason to
// create a placeholder row.
var ErrNotFound = errors.New("not found")

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// TransactionFilter narrows ListTransactions. Zero values mean "no filter".
type TransactionFilter struct {
	Month    string // YYYY-MM; matches the entry date prefix
	Type     string // entrada | saida
	Category string
	Search   string // case-insensitive substring of description or category
}

// inTx runs fn inside a transaction, rolling back on error. Entity and
// schedule rows are always written together through this helper so a
// creation is atomic: both land or neither does.
func (r *Repository) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
