package finboard

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BillingCycle is the renewal period of a subscription.
type BillingCycle string

const (
	MonthlyCycle BillingCycle = "monthly"
	YearlyCycle  BillingCycle = "yearly"
)

func ParseBillingCycle(s string) (BillingCycle, error) {
	switch BillingCycle(strings.ToLower(strings.TrimSpace(s))) {
	case MonthlyCycle:
		return MonthlyCycle, nil
	case YearlyCycle:
		return YearlyCycle, nil
	default:
		return "", fmt.Errorf("unknown billing cycle %q", s)
	}
}

// Subscription is a recurring service charge.
type Subscription struct {
	ID              string
	Name            string
	Amount          Money
	BillingCycle    BillingCycle
	NextBillingDate Date
	Category        string
}

// MonthlyEquivalent returns the subscription cost normalized to one
// month: yearly subscriptions are divided by twelve.
func (s Subscription) MonthlyEquivalent() Money {
	if s.BillingCycle == YearlyCycle {
		return M(s.Amount.Amount().Div(decimal.NewFromInt(12)), s.Amount.Currency())
	}
	return s.Amount
}

// AnnualCost returns the subscription cost over a full year.
func (s Subscription) AnnualCost() Money {
	if s.BillingCycle == YearlyCycle {
		return s.Amount
	}
	return s.Amount.Mul(Q(12))
}

// TotalMonthlySubscriptions sums the monthly equivalent of all
// subscriptions.
func TotalMonthlySubscriptions(subs []Subscription, currency string) Money {
	total := M(0, currency)
	for _, s := range subs {
		total = total.Add(s.MonthlyEquivalent())
	}
	return total
}
