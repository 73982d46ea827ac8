package models

import "time"

// Loan represents a loan amortized with the level-payment (Price) method
type Loan struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Principal  float64 `json:"principal"`
	Months     int     `json:"months"`      // term in periods
	Rate       float64 `json:"rate"`        // periodic interest rate, percent
	StartMonth string  `json:"start_month"` // YYYY-MM

	CreatedAt time.Time `json:"created_at"`
}

// LoanInstallment is one period of a loan's amortization plan
type LoanInstallment struct {
	ID        string  `json:"id"`
	LoanID    string  `json:"loan_id"`
	Index     int     `json:"index"` // 1-based period index
	Count     int     `json:"count"`
	Month     string  `json:"month"`     // target period, YYYY-MM
	Payment   float64 `json:"payment"`   // installment due
	Interest  float64 `json:"interest"`  // interest portion
	Principal float64 `json:"principal"` // principal portion
	Balance   float64 `json:"balance"`   // remaining balance after this period
	Status    string  `json:"status"`    // StatusPending | StatusPaid
}
