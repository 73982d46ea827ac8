package schedule

import "math"

// LoanRow is one period of an amortization plan.
type LoanRow struct {
	Index     int     // 1-based period index
	Month     Month   // target period
	Payment   float64 // installment due this period
	Interest  float64 // interest portion
	Principal float64 // principal portion
	Balance   float64 // remaining balance after this period
}

// Payment computes the level (Price system) installment for a loan.
// ratePercent is the periodic rate in percent (2.5 means 2.5% per period).
// A zero rate degenerates to straight principal division.
func Payment(principal, ratePercent float64, periods int) float64 {
	if periods <= 0 {
		return 0
	}
	i := ratePercent / 100
	if i == 0 {
		return principal / float64(periods)
	}
	return principal * i / (1 - math.Pow(1+i, float64(-periods)))
}

// Amortize builds the full level-payment schedule for a loan starting at
// the given month. Every amount is rounded to cents; the final period's
// principal portion is forced to the remaining balance so the plan closes
// at exactly zero and the sum of principal portions equals the original
// principal to the cent. The final period's payment is recomputed as
// interest + principal to absorb the rounding residual.
func Amortize(principal, ratePercent float64, periods int, start Month) (float64, []LoanRow) {
	if periods < 1 {
		periods = 1
	}
	payment := Round2(Payment(principal, ratePercent, periods))
	i := ratePercent / 100

	rows := make([]LoanRow, 0, periods)
	balance := principal
	for k := 1; k <= periods; k++ {
		interest := Round2(balance * i)
		principalPart := Round2(payment - interest)
		due := payment
		if k == periods {
			principalPart = Round2(balance)
			due = Round2(interest + principalPart)
		}
		balance = Round2(balance - principalPart)
		if balance < 0 {
			balance = 0
		}
		rows = append(rows, LoanRow{
			Index:     k,
			Month:     start.Add(k - 1),
			Payment:   due,
			Interest:  interest,
			Principal: principalPart,
			Balance:   balance,
		})
	}
	return payment, rows
}
