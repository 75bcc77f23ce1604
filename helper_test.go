package finboard

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// expense is a helper for test to create a completed expense record
func expense(day Date, desc string, cat Category, amount float64) Record {
	return NewRecord(day, desc, cat, USD(amount), Expense)
}

// income is a helper for test to create a completed income record
func income(day Date, desc string, cat Category, amount float64) Record {
	return NewRecord(day, desc, cat, USD(amount), Income)
}
