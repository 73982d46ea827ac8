package schedule

// ChargeRow is one installment of a card purchase spread across invoices.
type ChargeRow struct {
	Index  int     // 1-based installment index
	Count  int     // total number of installments
	Month  Month   // target invoice month
	Amount float64 // installment amount
}

// Spread divides a purchase total evenly across count consecutive invoice
// months anchored at first. Amounts are rounded to cents and the last
// installment absorbs the rounding remainder, so the installments always
// sum back to the original total exactly.
func Spread(total float64, count int, first Month) []ChargeRow {
	if count < 1 {
		count = 1
	}
	per := Round2(total / float64(count))
	rows := make([]ChargeRow, 0, count)
	for k := 0; k < count; k++ {
		amount := per
		if k == count-1 {
			amount = Round2(total - per*float64(count-1))
		}
		rows = append(rows, ChargeRow{
			Index:  k + 1,
			Count:  count,
			Month:  first.Add(k),
			Amount: amount,
		})
	}
	return rows
}
