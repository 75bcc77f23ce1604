package finboard

import (
	"sort"
)

// Aggregations over record subsets. All functions here are pure: they
// take the subset and parameters they need, read no hidden state, and
// return zero values for empty input rather than erroring.
//
// Records whose status does not net (failed, refunded) are excluded
// from every total, see Status.Nets.

// TotalByKind sums the amounts of the records of a given kind.
// Returns zero money for an empty subset.
func TotalByKind(records []Record, kind Kind, currency string) Money {
	total := M(0, currency)
	for _, r := range records {
		if r.Kind != kind || !r.Status.Nets() {
			continue
		}
		total = total.Add(r.Amount)
	}
	return total
}

// NetForPeriod returns income minus expenses over the inclusive period.
func NetForPeriod(records []Record, period Range, currency string) Money {
	in := period.filter(records)
	return TotalByKind(in, Income, currency).Sub(TotalByKind(in, Expense, currency))
}

func (r Range) filter(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if r.Contains(rec.Date) {
			out = append(out, rec)
		}
	}
	return out
}

// MonthlyTotal is the income and expense total of one calendar month.
type MonthlyTotal struct {
	Month    Range // the full calendar month
	Income   Money
	Expenses Money
}

// Label returns the month identifier, e.g. "2026-01".
func (t MonthlyTotal) Label() string { return t.Month.Identifier() }

// MonthlyTotals groups records by the calendar month of their date and
// sums income and expenses per month. Months with no records are
// omitted; the result is ordered chronologically ascending.
func MonthlyTotals(records []Record, currency string) []MonthlyTotal {
	byMonth := make(map[Date]*MonthlyTotal)
	for _, r := range records {
		if !r.Status.Nets() {
			continue
		}
		first := r.Date.StartOf(Monthly)
		t, ok := byMonth[first]
		if !ok {
			t = &MonthlyTotal{
				Month:    Monthly.Range(first),
				Income:   M(0, currency),
				Expenses: M(0, currency),
			}
			byMonth[first] = t
		}
		switch r.Kind {
		case Income:
			t.Income = t.Income.Add(r.Amount)
		case Expense:
			t.Expenses = t.Expenses.Add(r.Amount)
		}
	}

	out := make([]MonthlyTotal, 0, len(byMonth))
	for _, t := range byMonth {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month.From.Before(out[j].Month.From)
	})
	return out
}

// CategoryTotal is the expense total of one category.
type CategoryTotal struct {
	Category Category
	Total    Money
}

// ExpenseBreakdown sums expenses per category. Categories with no
// expense records are omitted; the result follows the canonical
// category order.
func ExpenseBreakdown(records []Record, currency string) []CategoryTotal {
	totals := make(map[Category]Money)
	for _, r := range records {
		if r.Kind != Expense || !r.Status.Nets() {
			continue
		}
		t, ok := totals[r.Category]
		if !ok {
			t = M(0, currency)
		}
		totals[r.Category] = t.Add(r.Amount)
	}

	out := make([]CategoryTotal, 0, len(totals))
	for _, c := range Categories {
		if t, ok := totals[c]; ok {
			out = append(out, CategoryTotal{Category: c, Total: t})
		}
	}
	return out
}

// SavingsRate returns the share of income kept, (income-expenses)/income,
// as a percentage. Zero income gives a zero rate.
func SavingsRate(income, expenses Money) Percent {
	return income.Sub(expenses).PercentOf(income)
}

// DaysUntil returns the whole number of days from today until target.
// Negative means elapsed: a target one day in the past returns -1.
func DaysUntil(target, today Date) int { return target.Sub(today) }
