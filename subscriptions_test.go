package finboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMonthlyEquivalent(t *testing.T) {
	monthly := Subscription{Name: "Netflix", Amount: USD(15.99), BillingCycle: MonthlyCycle}
	if got := monthly.MonthlyEquivalent(); !got.Equal(USD(15.99)) {
		t.Errorf("monthly equivalent = %v, want 15.99", got)
	}

	yearly := Subscription{Name: "GitHub Pro", Amount: USD(48), BillingCycle: YearlyCycle}
	if got := yearly.MonthlyEquivalent(); !got.Equal(USD(4)) {
		t.Errorf("yearly equivalent = %v, want 4", got)
	}

	// A yearly price that does not divide evenly keeps its precision.
	odd := Subscription{Amount: USD(100), BillingCycle: YearlyCycle}
	want := decimal.NewFromInt(100).Div(decimal.NewFromInt(12))
	if got := odd.MonthlyEquivalent(); !got.Amount().Equal(want) {
		t.Errorf("odd equivalent = %v, want %v", got.Amount(), want)
	}
}

func TestAnnualCost(t *testing.T) {
	monthly := Subscription{Amount: USD(15.99), BillingCycle: MonthlyCycle}
	if got := monthly.AnnualCost(); !got.Equal(USD(191.88)) {
		t.Errorf("annual cost = %v, want 191.88", got)
	}
	yearly := Subscription{Amount: USD(48), BillingCycle: YearlyCycle}
	if got := yearly.AnnualCost(); !got.Equal(USD(48)) {
		t.Errorf("annual cost = %v, want 48", got)
	}
}

func TestTotalMonthlySubscriptions(t *testing.T) {
	subs := []Subscription{
		{Name: "Netflix", Amount: USD(15.99), BillingCycle: MonthlyCycle},
		{Name: "Spotify", Amount: USD(9.99), BillingCycle: MonthlyCycle},
		{Name: "GitHub Pro", Amount: USD(48), BillingCycle: YearlyCycle},
	}
	got := TotalMonthlySubscriptions(subs, "USD")
	if !got.Equal(USD(29.98)) {
		t.Errorf("total = %v, want 29.98", got)
	}

	if got := TotalMonthlySubscriptions(nil, "USD"); !got.IsZero() {
		t.Errorf("empty total = %v, want 0", got)
	}
}

func TestParseBillingCycle(t *testing.T) {
	tests := []struct {
		in   string
		want BillingCycle
		err  bool
	}{
		{"monthly", MonthlyCycle, false},
		{"Yearly", YearlyCycle, false},
		{" MONTHLY ", MonthlyCycle, false},
		{"weekly", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBillingCycle(tt.in)
			if (err != nil) != tt.err {
				t.Fatalf("error = %v, wantErr %v", err, tt.err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubscriptionNextBilling(t *testing.T) {
	s := Subscription{Name: "iCloud", Amount: USD(2.99), BillingCycle: MonthlyCycle,
		NextBillingDate: NewDate(2026, time.February, 3)}
	today := NewDate(2026, time.January, 25)
	if got := DaysUntil(s.NextBillingDate, today); got != 9 {
		t.Errorf("days until billing = %d, want 9", got)
	}
}
