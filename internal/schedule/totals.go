package schedule

// InstallmentSnapshot is the slice of an installment the aggregate
// computations need, detached from how it is stored.
type InstallmentSnapshot struct {
	Month  Month
	Amount float64
	Paid   bool
}

// CardTotals summarises a card for one viewed invoice month.
type CardTotals struct {
	Limit     float64 `json:"limit"`
	Used      float64 `json:"used"`
	Pending   float64 `json:"pending"`
	Available float64 `json:"available"`
}

// LoanTotals summarises a loan across its whole plan.
type LoanTotals struct {
	Payment       float64 `json:"payment"`
	TotalPaid     float64 `json:"total_paid"`
	TotalInterest float64 `json:"total_interest"`
	Outstanding   float64 `json:"outstanding"`
}

// ComputeCardTotals recomputes the card aggregates for the viewed month.
// Used and Pending count installments targeting that month only. Available
// is the limit minus every unpaid installment targeting the viewed month or
// any later one: future commitments reduce available credit, matching
// revolving-credit semantics.
func ComputeCardTotals(limit float64, viewed Month, installments []InstallmentSnapshot) CardTotals {
	var used, pending, committed float64
	for _, in := range installments {
		if in.Month == viewed {
			used += in.Amount
			if !in.Paid {
				pending += in.Amount
			}
		}
		if !in.Paid && in.Month >= viewed {
			committed += in.Amount
		}
	}
	available := limit - committed
	if available < 0 {
		available = 0
	}
	return CardTotals{
		Limit:     Round2(limit),
		Used:      Round2(used),
		Pending:   Round2(pending),
		Available: Round2(available),
	}
}

// ComputeLoanTotals recomputes the loan aggregates over its full plan.
// Rows must be ordered by period index. Outstanding is the principal still
// owed: the sum of principal portions of unpaid rows, which under
// sequential payment equals the declining balance after the paid prefix
// and stays meaningful when rows are settled out of order. Zero once every
// row is paid.
func ComputeLoanTotals(rows []LoanRow, paid []bool) LoanTotals {
	var t LoanTotals
	if len(rows) > 0 {
		t.Payment = rows[0].Payment
	}
	for k, r := range rows {
		t.TotalInterest += r.Interest
		if k < len(paid) && paid[k] {
			t.TotalPaid += r.Payment
		} else {
			t.Outstanding += r.Principal
		}
	}
	t.TotalPaid = Round2(t.TotalPaid)
	t.TotalInterest = Round2(t.TotalInterest)
	t.Outstanding = Round2(t.Outstanding)
	return t
}
