package schedule

import "testing"

func TestAmortizeZeroInterest(t *testing.T) {
	payment, rows := Amortize(1200, 0, 12, Month("2025-01"))
	if Cents(payment) != 10000 {
		t.Fatalf("payment = %.2f, want 100.00", payment)
	}
	if len(rows) != 12 {
		t.Fatalf("got %d rows, want 12", len(rows))
	}
	wantBalance := 1200.00
	for k, r := range rows {
		wantBalance -= 100
		if Cents(r.Interest) != 0 {
			t.Errorf("row %d: interest = %.2f, want 0", k+1, r.Interest)
		}
		if Cents(r.Principal) != 10000 {
			t.Errorf("row %d: principal = %.2f, want 100.00", k+1, r.Principal)
		}
		if Cents(r.Balance) != Cents(wantBalance) {
			t.Errorf("row %d: balance = %.2f, want %.2f", k+1, r.Balance, wantBalance)
		}
	}
	if rows[0].Month != "2025-01" || rows[11].Month != "2025-12" {
		t.Errorf("months = %s..%s, want 2025-01..2025-12", rows[0].Month, rows[11].Month)
	}
}

func TestAmortizeLevelPayment(t *testing.T) {
	payment, rows := Amortize(1000, 2, 3, Month("2025-01"))
	// 1000 * 0.02 / (1 - 1.02^-3) = 346.7547..., rounded to cents.
	if Cents(payment) != 34675 {
		t.Fatalf("payment = %.2f, want 346.75", payment)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if Cents(rows[2].Balance) != 0 {
		t.Errorf("final balance = %.2f, want 0.00", rows[2].Balance)
	}
	if Cents(rows[0].Interest) != 2000 {
		t.Errorf("first interest = %.2f, want 20.00", rows[0].Interest)
	}
	var sumPrincipal, sumInterest, sumPayments int64
	for k, r := range rows {
		sumPrincipal += Cents(r.Principal)
		sumInterest += Cents(r.Interest)
		sumPayments += Cents(r.Payment)
		if k < len(rows)-1 && Cents(r.Payment) != Cents(payment) {
			t.Errorf("row %d: payment = %.2f, want constant %.2f", k+1, r.Payment, payment)
		}
	}
	if sumPrincipal != 100000 {
		t.Errorf("sum of principal portions = %d cents, want 100000", sumPrincipal)
	}
	if sumPayments-sumInterest != 100000 {
		t.Errorf("payments (%d) - interest (%d) != principal", sumPayments, sumInterest)
	}
	// Total interest for this plan is 40.26 within a cent of rounding.
	if sumInterest < 4024 || sumInterest > 4028 {
		t.Errorf("total interest = %d cents, want ~4026", sumInterest)
	}
	last := rows[2]
	if Cents(last.Payment) != Cents(last.Interest)+Cents(last.Principal) {
		t.Errorf("final payment %.2f != interest %.2f + principal %.2f",
			last.Payment, last.Interest, last.Principal)
	}
}

func TestAmortizeProperties(t *testing.T) {
	cases := []struct {
		principal float64
		rate      float64
		periods   int
	}{
		{500, 1.5, 6},
		{9999.99, 3.25, 24},
		{1, 0, 1},
		{250.10, 0, 7},
		{100000, 0.99, 48},
	}
	for _, c := range cases {
		payment, rows := Amortize(c.principal, c.rate, c.periods, Month("2024-11"))
		if len(rows) != c.periods {
			t.Fatalf("%.2f/%.2f%%/%d: got %d rows", c.principal, c.rate, c.periods, len(rows))
		}
		if Cents(rows[len(rows)-1].Balance) != 0 {
			t.Errorf("%.2f/%.2f%%/%d: final balance %.2f != 0",
				c.principal, c.rate, c.periods, rows[len(rows)-1].Balance)
		}
		var sum int64
		prev := Cents(c.principal)
		for _, r := range rows {
			sum += Cents(r.Principal)
			if Cents(r.Balance) > prev {
				t.Errorf("%.2f/%.2f%%/%d: balance increased at period %d",
					c.principal, c.rate, c.periods, r.Index)
			}
			prev = Cents(r.Balance)
			if r.Index < c.periods && Cents(r.Payment) != Cents(payment) {
				t.Errorf("%.2f/%.2f%%/%d: period %d payment %.2f != %.2f",
					c.principal, c.rate, c.periods, r.Index, r.Payment, payment)
			}
		}
		if sum != Cents(c.principal) {
			t.Errorf("%.2f/%.2f%%/%d: principal portions sum to %d cents, want %d",
				c.principal, c.rate, c.periods, sum, Cents(c.principal))
		}
	}
}

func TestPaymentZeroPeriods(t *testing.T) {
	if got := Payment(1000, 2, 0); got != 0 {
		t.Errorf("Payment with 0 periods = %f, want 0", got)
	}
}
