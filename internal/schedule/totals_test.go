package schedule

import "testing"

func TestComputeCardTotalsStrictPolicy(t *testing.T) {
	// limit 1000, one pending 400 this month, one pending 200 next month.
	// Under the current-and-future-pending policy available = 1000-600.
	current := Month("2025-06")
	ins := []InstallmentSnapshot{
		{Month: "2025-06", Amount: 400, Paid: false},
		{Month: "2025-07", Amount: 200, Paid: false},
	}
	got := ComputeCardTotals(1000, current, ins)
	if Cents(got.Used) != 40000 {
		t.Errorf("used = %.2f, want 400.00", got.Used)
	}
	if Cents(got.Pending) != 40000 {
		t.Errorf("pending = %.2f, want 400.00", got.Pending)
	}
	if Cents(got.Available) != 40000 {
		t.Errorf("available = %.2f, want 400.00 (future commitments reduce credit)", got.Available)
	}
}

func TestComputeCardTotalsPaidAndPast(t *testing.T) {
	current := Month("2025-06")
	ins := []InstallmentSnapshot{
		{Month: "2025-05", Amount: 150, Paid: false}, // past, unpaid: not committed
		{Month: "2025-06", Amount: 100, Paid: true},  // counts in used, not pending
		{Month: "2025-06", Amount: 50, Paid: false},
		{Month: "2025-08", Amount: 75, Paid: true}, // future but settled
	}
	got := ComputeCardTotals(500, current, ins)
	if Cents(got.Used) != 15000 {
		t.Errorf("used = %.2f, want 150.00", got.Used)
	}
	if Cents(got.Pending) != 5000 {
		t.Errorf("pending = %.2f, want 50.00", got.Pending)
	}
	if Cents(got.Available) != 45000 {
		t.Errorf("available = %.2f, want 450.00", got.Available)
	}
}

func TestComputeCardTotalsNeverNegative(t *testing.T) {
	got := ComputeCardTotals(100, "2025-01", []InstallmentSnapshot{
		{Month: "2025-01", Amount: 400, Paid: false},
	})
	if got.Available != 0 {
		t.Errorf("available = %.2f, want clamped 0", got.Available)
	}
}

func TestComputeLoanTotals(t *testing.T) {
	_, rows := Amortize(1200, 0, 12, Month("2025-01"))
	paid := make([]bool, 12)
	paid[0], paid[1], paid[2] = true, true, true

	got := ComputeLoanTotals(rows, paid)
	if Cents(got.Payment) != 10000 {
		t.Errorf("payment = %.2f, want 100.00", got.Payment)
	}
	if Cents(got.TotalPaid) != 30000 {
		t.Errorf("total paid = %.2f, want 300.00", got.TotalPaid)
	}
	if Cents(got.TotalInterest) != 0 {
		t.Errorf("total interest = %.2f, want 0.00", got.TotalInterest)
	}
	if Cents(got.Outstanding) != 90000 {
		t.Errorf("outstanding = %.2f, want 900.00", got.Outstanding)
	}
}

func TestComputeLoanTotalsAllPaid(t *testing.T) {
	_, rows := Amortize(500, 1.5, 4, Month("2025-01"))
	paid := []bool{true, true, true, true}
	got := ComputeLoanTotals(rows, paid)
	if got.Outstanding != 0 {
		t.Errorf("outstanding = %.2f, want 0 when fully settled", got.Outstanding)
	}
	var sumInterest int64
	for _, r := range rows {
		sumInterest += Cents(r.Interest)
	}
	if Cents(got.TotalInterest) != sumInterest {
		t.Errorf("total interest = %.2f, want sum over all rows regardless of status", got.TotalInterest)
	}
}
