package repository

import (
	"fmt"
	"strings"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/models"
)

// AppendTransaction appends one entry to the transactions ledger
func (r *Repository) AppendTransaction(t *models.Transaction) error {
	query := `
		INSERT INTO gf.transactions (id, entry_date, description, category, type, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRow(query, t.ID, t.Date, t.Description, t.Category, t.Type, t.Amount, t.Status).
		Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}
	return nil
}

// ListTransactions retrieves ledger entries matching the filter, newest
// date first
func (r *Repository) ListTransactions(f TransactionFilter) ([]models.Transaction, error) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, v interface{}) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.Month != "" {
		add("entry_date LIKE $%d", f.Month+"%")
	}
	if f.Type != "" {
		add("type = $%d", f.Type)
	}
	if f.Category != "" {
		add("category = $%d", f.Category)
	}
	if f.Search != "" {
		args = append(args, "%"+strings.ToLower(f.Search)+"%")
		conds = append(conds, fmt.Sprintf("(LOWER(description) LIKE $%d OR LOWER(category) LIKE $%d)", len(args), len(args)))
	}

	query := `
		SELECT id, entry_date, description, category, type, amount, status, created_at
		FROM gf.transactions`
	if len(conds) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\t\tORDER BY entry_date DESC, created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.Date, &t.Description, &t.Category, &t.Type,
			&t.Amount, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// DeleteTransaction removes one ledger entry
func (r *Repository) DeleteTransaction(id string) error {
	res, err := r.db.Exec(`DELETE FROM gf.transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
