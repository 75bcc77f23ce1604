package finboard

// Bill is a recurring obligation with a due date.
type Bill struct {
	ID        string
	Name      string
	Amount    Money
	DueDate   Date
	IsAutoPay bool
	Category  string
}

// DaysUntilDue returns the whole number of days until the bill is due
// on the given day; negative means overdue.
func (b Bill) DaysUntilDue(today Date) int { return b.DueDate.Sub(today) }

// IsOverdue reports whether the due date has passed.
func (b Bill) IsOverdue(today Date) bool { return b.DaysUntilDue(today) < 0 }

// DueWithin reports whether the bill is due between today and today+days
// inclusive. Overdue bills are not "due within".
func (b Bill) DueWithin(today Date, days int) bool {
	until := b.DaysUntilDue(today)
	return until >= 0 && until <= days
}

// UpcomingBillsTotal sums the bills due within the next 30 days.
// Overdue bills are excluded; they are surfaced separately.
func UpcomingBillsTotal(bills []Bill, today Date, currency string) Money {
	total := M(0, currency)
	for _, b := range bills {
		if b.DueWithin(today, 30) {
			total = total.Add(b.Amount)
		}
	}
	return total
}

// OverdueBills returns the bills whose due date has passed, in input order.
func OverdueBills(bills []Bill, today Date) []Bill {
	var out []Bill
	for _, b := range bills {
		if b.IsOverdue(today) {
			out = append(out, b)
		}
	}
	return out
}
