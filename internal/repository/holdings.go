package repository

import (
	"database/sql"
	"fmt"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/models"
)

// CreateHolding creates a new portfolio position
func (r *Repository) CreateHolding(h *models.Holding) error {
	query := `
		INSERT INTO gf.holdings (id, symbol, type, quantity, manual_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, h.ID, h.Symbol, h.Type, h.Quantity, h.ManualPrice).
		Scan(&h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create holding: %w", err)
	}
	return nil
}

// ListHoldings retrieves every portfolio position
func (r *Repository) ListHoldings() ([]models.Holding, error) {
	query := `
		SELECT id, symbol, type, quantity, manual_price, created_at, updated_at
		FROM gf.holdings
		ORDER BY symbol`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	defer rows.Close()

	var out []models.Holding
	for rows.Next() {
		var h models.Holding
		if err := rows.Scan(&h.ID, &h.Symbol, &h.Type, &h.Quantity, &h.ManualPrice,
			&h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// GetHolding retrieves one position by id
func (r *Repository) GetHolding(id string) (*models.Holding, error) {
	h := &models.Holding{}
	query := `
		SELECT id, symbol, type, quantity, manual_price, created_at, updated_at
		FROM gf.holdings
		WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&h.ID, &h.Symbol, &h.Type, &h.Quantity,
		&h.ManualPrice, &h.CreatedAt, &h.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find holding: %w", err)
	}
	return h, nil
}

// UpdateHolding updates a position's quantity and manual price
func (r *Repository) UpdateHolding(h *models.Holding) error {
	query := `
		UPDATE gf.holdings
		SET quantity = $2, manual_price = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`
	res, err := r.db.Exec(query, h.ID, h.Quantity, h.ManualPrice)
	if err != nil {
		return fmt.Errorf("failed to update holding: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteHolding removes one position
func (r *Repository) DeleteHolding(id string) error {
	res, err := r.db.Exec(`DELETE FROM gf.holdings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
