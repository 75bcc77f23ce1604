package finboard

import (
	"testing"
	"time"
)

func TestTotalByKind(t *testing.T) {
	records := sampleRecords()

	gotIncome := TotalByKind(records, Income, "USD")
	if !gotIncome.Equal(USD(5500)) {
		t.Errorf("income total = %v, want 5500", gotIncome)
	}

	// Pending expenses count, refunded do not.
	gotExpenses := TotalByKind(records, Expense, "USD")
	want := USD(156.32).Add(USD(15.99)).Add(USD(45.20))
	if !gotExpenses.Equal(want) {
		t.Errorf("expense total = %v, want %v", gotExpenses, want)
	}

	if gotIncome.IsNegative() || gotExpenses.IsNegative() {
		t.Error("totals must never be negative")
	}
}

func TestTotalByKindEmpty(t *testing.T) {
	if got := TotalByKind(nil, Expense, "USD"); !got.Equal(USD(0)) {
		t.Errorf("empty total = %v, want 0", got)
	}
}

func TestMonthlyTotals(t *testing.T) {
	records := sampleRecords()
	totals := MonthlyTotals(records, "USD")

	if len(totals) != 1 {
		t.Fatalf("got %d months, want 1", len(totals))
	}
	m := totals[0]
	if m.Label() != "2026-01" {
		t.Errorf("label = %q, want 2026-01", m.Label())
	}
	if !m.Income.Equal(USD(5500)) {
		t.Errorf("income = %v, want 5500", m.Income)
	}
	// Pending gas counts, refunded Amazon does not.
	want := USD(156.32).Add(USD(15.99)).Add(USD(45.20))
	if !m.Expenses.Equal(want) {
		t.Errorf("expenses = %v, want %v", m.Expenses, want)
	}
}

func TestMonthlyTotalsSparseAndSorted(t *testing.T) {
	records := []Record{
		income(NewDate(2026, time.March, 1), "Salary", Salary, 1000),
		expense(NewDate(2026, time.January, 5), "Rent", Bills, 800),
		// February intentionally empty.
	}
	totals := MonthlyTotals(records, "USD")

	if len(totals) != 2 {
		t.Fatalf("got %d months, want 2 (gap months omitted)", len(totals))
	}
	if totals[0].Label() != "2026-01" || totals[1].Label() != "2026-03" {
		t.Errorf("months = %q, %q; want ascending 2026-01, 2026-03", totals[0].Label(), totals[1].Label())
	}
}

func TestNetForPeriod(t *testing.T) {
	records := sampleRecords()
	jan := Monthly.Range(NewDate(2026, time.January, 1))

	got := NetForPeriod(records, jan, "USD")
	want := USD(5500).Sub(USD(156.32).Add(USD(15.99)).Add(USD(45.20)))
	if !got.Equal(want) {
		t.Errorf("net = %v, want %v", got, want)
	}

	feb := Monthly.Range(NewDate(2026, time.February, 1))
	if got := NetForPeriod(records, feb, "USD"); !got.IsZero() {
		t.Errorf("net of an empty month = %v, want 0", got)
	}
}

func TestExpenseBreakdown(t *testing.T) {
	records := sampleRecords()
	breakdown := ExpenseBreakdown(records, "USD")

	byCat := map[Category]Money{}
	for _, ct := range breakdown {
		byCat[ct.Category] = ct.Total
	}
	if !byCat[Food].Equal(USD(156.32)) {
		t.Errorf("food = %v, want 156.32", byCat[Food])
	}
	if !byCat[Entertainment].Equal(USD(15.99)) {
		t.Errorf("entertainment = %v, want 15.99", byCat[Entertainment])
	}
	if _, ok := byCat[Shopping]; ok {
		t.Error("refunded record must not appear in the breakdown")
	}
	if _, ok := byCat[Salary]; ok {
		t.Error("income categories must not appear in an expense breakdown")
	}
}

func TestSavingsRate(t *testing.T) {
	tests := []struct {
		name     string
		income   Money
		expenses Money
		want     Percent
	}{
		{"half saved", USD(5000), USD(2500), 50},
		{"all spent", USD(5000), USD(5000), 0},
		{"overspent", USD(4000), USD(5000), -25},
		{"no income", USD(0), USD(5000), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SavingsRate(tt.income, tt.expenses)
			if !got.Equal(tt.want) {
				t.Errorf("SavingsRate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	today := NewDate(2026, time.January, 25)

	tests := []struct {
		name   string
		target Date
		want   int
	}{
		{"today", today, 0},
		{"tomorrow", today.Add(1), 1},
		{"yesterday", today.Add(-1), -1},
		{"first of next month", NewDate(2026, time.February, 1), 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(tt.target, today); got != tt.want {
				t.Errorf("DaysUntil = %d, want %d", got, tt.want)
			}
		})
	}
}
