package finboard

import (
	"testing"

	"github.com/shopspring/decimal"
)

// approxEqual compares two Money to the cent.
func approxEqual(a, b Money) bool {
	cent := decimal.New(1, -2)
	return a.Amount().Sub(b.Amount()).Abs().LessThanOrEqual(cent)
}

func TestCompoundFutureValue(t *testing.T) {
	tests := []struct {
		name      string
		principal Money
		rate      Percent
		years     int
		want      Money
	}{
		{"12% over 5 years", USD(10000), 12, 5, USD(17623.42)},
		{"zero rate", USD(10000), 0, 5, USD(10000)},
		{"zero years", USD(10000), 12, 0, USD(10000)},
		{"negative years", USD(10000), 12, -3, USD(10000)},
		{"one year", USD(1000), 10, 1, USD(1100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompoundFutureValue(tt.principal, tt.rate, tt.years)
			if !approxEqual(got, tt.want) {
				t.Errorf("CompoundFutureValue = %v, want about %v", got, tt.want)
			}
		})
	}
}

func TestLoanPayment(t *testing.T) {
	// Zero rate degenerates to exact division.
	got := LoanPayment(USD(100000), 0, 12)
	want := Money{value: decimal.NewFromInt(100000).Div(decimal.NewFromInt(12)), cur: "USD"}
	if !got.Equal(want) {
		t.Errorf("zero-rate payment = %v, want exactly 100000/12", got)
	}

	// Standard 30-year mortgage figure, to the dollar.
	got = LoanPayment(USD(250000), 4.1, 360)
	if diff := got.Amount().Sub(decimal.NewFromInt(1208)).Abs(); diff.GreaterThan(decimal.NewFromInt(1)) {
		t.Errorf("payment = %v, want about 1208", got)
	}

	// Degenerate payment counts.
	if got := LoanPayment(USD(100000), 5, 0); !got.IsZero() {
		t.Errorf("zero payments = %v, want 0", got)
	}
	if got := LoanPayment(USD(100000), 5, -1); !got.IsZero() {
		t.Errorf("negative payments = %v, want 0", got)
	}
}

func TestLoanSchedule(t *testing.T) {
	s := NewLoanSchedule(USD(12000), 0, 12)
	if !s.Payment.Equal(USD(1000)) {
		t.Errorf("payment = %v, want 1000", s.Payment)
	}
	if !s.TotalPayment.Equal(USD(12000)) {
		t.Errorf("total = %v, want 12000", s.TotalPayment)
	}
	if !s.TotalInterest.IsZero() {
		t.Errorf("interest = %v, want 0", s.TotalInterest)
	}

	s = NewLoanSchedule(USD(250000), 4.1, 360)
	if !s.TotalInterest.IsPositive() {
		t.Errorf("interest = %v, want positive", s.TotalInterest)
	}
	if !s.TotalPayment.Equal(s.Payment.Mul(Q(360))) {
		t.Errorf("total %v must be payment %v times 360", s.TotalPayment, s.Payment)
	}
}

func TestRequiredPeriodicSavings(t *testing.T) {
	tests := []struct {
		name    string
		target  Money
		current Money
		periods int
		want    Money
	}{
		{"standard", USD(50000), USD(12500), 24, USD(1562.50)},
		{"already reached", USD(50000), USD(50000), 24, USD(0)},
		{"overshoot clamps to zero", USD(50000), USD(60000), 24, USD(0)},
		{"no periods", USD(50000), USD(0), 0, USD(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RequiredPeriodicSavings(tt.target, tt.current, tt.periods)
			if !got.Equal(tt.want) {
				t.Errorf("RequiredPeriodicSavings = %v, want %v", got, tt.want)
			}
			if got.IsNegative() {
				t.Error("required savings must never be negative")
			}
		})
	}
}
