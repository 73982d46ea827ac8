package models

import "time"

// Transaction type and status values follow the vocabulary of the ledger:
// entries are "entrada" (income) or "saida" (expense), and are either
// "pago" (settled) or "pendente".
const (
	TypeIncome  = "entrada"
	TypeExpense = "saida"

	StatusPaid    = "pago"
	StatusPending = "pendente"
)

// Transaction represents one ledger entry
type Transaction struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Type        string  `json:"type"` // TypeIncome | TypeExpense
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"` // StatusPaid | StatusPending

	CreatedAt time.Time `json:"created_at"`
}
