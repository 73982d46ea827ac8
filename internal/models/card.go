package models

import "time"

// Card represents a credit card with its billing-cycle configuration
type Card struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Limit    float64 `json:"limit"`
	Color    string  `json:"color"`
	CloseDay int     `json:"close_day"` // statement closing day (1-31)
	DueDay   int     `json:"due_day"`   // payment due day (1-31)

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Charge represents a card purchase, possibly split into installments
type Charge struct {
	ID           string  `json:"id"`
	CardID       string  `json:"card_id"`
	Date         string  `json:"date"` // purchase date, YYYY-MM-DD
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`      // total purchase amount
	Installments int     `json:"installments"` // N >= 1
	FirstMonth   string  `json:"first_month"` // first invoice month, YYYY-MM

	CreatedAt time.Time `json:"created_at"`
}

// CardInstallment is one slice of a charge assigned to an invoice month
type CardInstallment struct {
	ID       string  `json:"id"`
	ChargeID string  `json:"charge_id"`
	CardID   string  `json:"card_id"`
	Index    int     `json:"index"` // 1-based, ..Count
	Count    int     `json:"count"`
	Month    string  `json:"month"` // target invoice month, YYYY-MM
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"` // StatusPending | StatusPaid

	Description string `json:"description"` // denormalized from the charge
}
