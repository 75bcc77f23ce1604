package finboard

import "github.com/shopspring/decimal"

// Planning arithmetic: compound growth, loan amortization and goal
// savings. All functions are pure and keep the calculation exact on
// decimals until the caller asks for display.

// CompoundFutureValue returns principal * (1 + rate/100)^years.
// For years <= 0 the principal is returned unchanged: there is no
// negative compounding.
func CompoundFutureValue(principal Money, annualRatePercent Percent, years int) Money {
	if years <= 0 {
		return principal
	}
	growth := decimal.NewFromInt(1).Add(ratio(annualRatePercent))
	return M(principal.Amount().Mul(growth.Pow(decimal.NewFromInt(int64(years)))), principal.Currency())
}

// LoanPayment returns the fixed periodic payment of an amortizing loan
// over numberOfPayments monthly installments:
//
//	P * r * (1+r)^n / ((1+r)^n - 1)   with r = annual rate / 12 / 100
//
// A zero rate degrades to principal/numberOfPayments so the rate term
// never divides by zero. Zero or negative numberOfPayments yields zero
// money.
func LoanPayment(principal Money, annualRatePercent Percent, numberOfPayments int) Money {
	if numberOfPayments <= 0 {
		return M(0, principal.Currency())
	}
	n := decimal.NewFromInt(int64(numberOfPayments))
	if annualRatePercent == 0 {
		return M(principal.Amount().Div(n), principal.Currency())
	}
	r := ratio(annualRatePercent).Div(decimal.NewFromInt(12))
	pow := decimal.NewFromInt(1).Add(r).Pow(n)
	payment := principal.Amount().Mul(r).Mul(pow).Div(pow.Sub(decimal.NewFromInt(1)))
	return M(payment, principal.Currency())
}

// LoanSchedule summarizes an amortizing loan.
type LoanSchedule struct {
	Payment       Money // fixed periodic payment
	TotalPayment  Money // payment * number of installments
	TotalInterest Money // total payment minus principal
}

// NewLoanSchedule computes the payment, total payment and total
// interest of an amortizing loan.
func NewLoanSchedule(principal Money, annualRatePercent Percent, numberOfPayments int) LoanSchedule {
	payment := LoanPayment(principal, annualRatePercent, numberOfPayments)
	total := payment.Mul(Q(numberOfPayments))
	return LoanSchedule{
		Payment:       payment,
		TotalPayment:  total,
		TotalInterest: total.Sub(principal),
	}
}

// RequiredPeriodicSavings returns (target-current)/numberOfPeriods,
// clamped to zero when the goal is already met. Zero or negative
// numberOfPeriods also yields zero.
func RequiredPeriodicSavings(target, current Money, numberOfPeriods int) Money {
	if numberOfPeriods <= 0 {
		return M(0, target.Currency())
	}
	remaining := target.Sub(current)
	if !remaining.IsPositive() {
		return M(0, target.Currency())
	}
	return M(remaining.Amount().Div(decimal.NewFromInt(int64(numberOfPeriods))), target.Currency())
}

// ratio converts a percentage to its decimal ratio (12% -> 0.12).
func ratio(p Percent) decimal.Decimal {
	return decimal.NewFromFloat(float64(p)).Div(decimal.NewFromInt(100))
}
