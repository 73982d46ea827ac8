package repository

import (
	"database/sql"
	"fmt"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/models"
)

// CreateCard creates a new card in the database
func (r *Repository) CreateCard(card *models.Card) error {
	query := `
		INSERT INTO gf.cards (id, name, credit_limit, color, close_day, due_day, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, card.ID, card.Name, card.Limit, card.Color, card.CloseDay, card.DueDay).
		Scan(&card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}
	return nil
}

// GetCard retrieves a card by id
func (r *Repository) GetCard(id string) (*models.Card, error) {
	card := &models.Card{}
	query := `
		SELECT id, name, credit_limit, color, close_day, due_day, created_at, updated_at
		FROM gf.cards
		WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&card.ID, &card.Name, &card.Limit, &card.Color, &card.CloseDay, &card.DueDay,
		&card.CreatedAt, &card.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find card: %w", err)
	}
	return card, nil
}

// ListCards retrieves all cards ordered by creation time
func (r *Repository) ListCards() ([]models.Card, error) {
	query := `
		SELECT id, name, credit_limit, color, close_day, due_day, created_at, updated_at
		FROM gf.cards
		ORDER BY created_at`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		var c models.Card
		if err := rows.Scan(&c.ID, &c.Name, &c.Limit, &c.Color, &c.CloseDay, &c.DueDay,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// UpdateCard updates a card's settings (limit, color, billing-cycle days)
func (r *Repository) UpdateCard(card *models.Card) error {
	query := `
		UPDATE gf.cards
		SET name = $2, credit_limit = $3, color = $4, close_day = $5, due_day = $6,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`
	res, err := r.db.Exec(query, card.ID, card.Name, card.Limit, card.Color, card.CloseDay, card.DueDay)
	if err != nil {
		return fmt.Errorf("failed to update card: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCard deletes a card. Charges and installments referencing it are
// removed by the ON DELETE CASCADE constraints, so no orphans survive.
func (r *Repository) DeleteCard(id string) error {
	res, err := r.db.Exec(`DELETE FROM gf.cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateCharge persists a charge together with its installment rows in a
// single transaction.
func (r *Repository) CreateCharge(charge *models.Charge, installments []models.CardInstallment) error {
	return r.inTx(func(tx *sql.Tx) error {
		query := `
			INSERT INTO gf.card_charges (id, card_id, purchase_date, description, amount, installments, first_month, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP)
			RETURNING created_at`
		err := tx.QueryRow(query, charge.ID, charge.CardID, charge.Date, charge.Description,
			charge.Amount, charge.Installments, charge.FirstMonth).Scan(&charge.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to create charge: %w", err)
		}
		for i := range installments {
			in := &installments[i]
			_, err := tx.Exec(`
				INSERT INTO gf.card_installments (id, charge_id, card_id, idx, count, month, amount, status)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				in.ID, in.ChargeID, in.CardID, in.Index, in.Count, in.Month, in.Amount, in.Status)
			if err != nil {
				return fmt.Errorf("failed to create installment %d: %w", in.Index, err)
			}
		}
		return nil
	})
}

// ListCharges retrieves all charges of a card, newest purchase first
func (r *Repository) ListCharges(cardID string) ([]models.Charge, error) {
	query := `
		SELECT id, card_id, purchase_date, description, amount, installments, first_month, created_at
		FROM gf.card_charges
		WHERE card_id = $1
		ORDER BY purchase_date DESC, created_at DESC`
	rows, err := r.db.Query(query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list charges: %w", err)
	}
	defer rows.Close()

	var charges []models.Charge
	for rows.Next() {
		var c models.Charge
		if err := rows.Scan(&c.ID, &c.CardID, &c.Date, &c.Description, &c.Amount,
			&c.Installments, &c.FirstMonth, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan charge: %w", err)
		}
		charges = append(charges, c)
	}
	return charges, rows.Err()
}

// DeleteCharge deletes a charge and, via cascade, its installments
func (r *Repository) DeleteCharge(id string) error {
	res, err := r.db.Exec(`DELETE FROM gf.card_charges WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete charge: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

const cardInstallmentCols = `
	i.id, i.charge_id, i.card_id, i.idx, i.count, i.month, i.amount, i.status,
	COALESCE(c.description, '')`

func scanCardInstallments(rows *sql.Rows) ([]models.CardInstallment, error) {
	var out []models.CardInstallment
	for rows.Next() {
		var in models.CardInstallment
		if err := rows.Scan(&in.ID, &in.ChargeID, &in.CardID, &in.Index, &in.Count,
			&in.Month, &in.Amount, &in.Status, &in.Description); err != nil {
			return nil, fmt.Errorf("failed to scan installment: %w", err)
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

// CardInstallments retrieves every installment of a card ordered by month
// and installment index
func (r *Repository) CardInstallments(cardID string) ([]models.CardInstallment, error) {
	query := `
		SELECT ` + cardInstallmentCols + `
		FROM gf.card_installments i
		LEFT JOIN gf.card_charges c ON c.id = i.charge_id
		WHERE i.card_id = $1
		ORDER BY i.month, i.idx`
	rows, err := r.db.Query(query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list card installments: %w", err)
	}
	defer rows.Close()
	return scanCardInstallments(rows)
}

// CardInstallmentsForMonth retrieves the installments targeting one
// invoice month
func (r *Repository) CardInstallmentsForMonth(cardID, month string) ([]models.CardInstallment, error) {
	query := `
		SELECT ` + cardInstallmentCols + `
		FROM gf.card_installments i
		LEFT JOIN gf.card_charges c ON c.id = i.charge_id
		WHERE i.card_id = $1 AND i.month = $2
		ORDER BY i.idx`
	rows, err := r.db.Query(query, cardID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoice installments: %w", err)
	}
	defer rows.Close()
	return scanCardInstallments(rows)
}

// GetCardInstallment retrieves a single installment by id
func (r *Repository) GetCardInstallment(id string) (*models.CardInstallment, error) {
	in := &models.CardInstallment{}
	query := `
		SELECT ` + cardInstallmentCols + `
		FROM gf.card_installments i
		LEFT JOIN gf.card_charges c ON c.id = i.charge_id
		WHERE i.id = $1`
	err := r.db.QueryRow(query, id).Scan(&in.ID, &in.ChargeID, &in.CardID, &in.Index,
		&in.Count, &in.Month, &in.Amount, &in.Status, &in.Description)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find installment: %w", err)
	}
	return in, nil
}

// SetCardInstallmentStatus updates an installment's payment status
func (r *Repository) SetCardInstallmentStatus(id, status string) error {
	res, err := r.db.Exec(`UPDATE gf.card_installments SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update installment status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
