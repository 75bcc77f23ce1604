package finboard

import "fmt"

// BudgetStatus classifies how much of a budget is used.
type BudgetStatus int

const (
	// OnTrack means at most 80% of the budget is used.
	OnTrack BudgetStatus = iota
	// NearLimit means more than 80% and up to 100% is used.
	NearLimit
	// OverBudget means spending exceeds the budget.
	OverBudget
)

func (s BudgetStatus) String() string {
	switch s {
	case OnTrack:
		return "on-track"
	case NearLimit:
		return "near-limit"
	case OverBudget:
		return "over-budget"
	default:
		return "unknown"
	}
}

// BudgetCategory is a monthly spending envelope. Spent is an
// authoritative externally-supplied figure, not derived from the
// record store; SpentFromRecords exists for reconciliation but never
// feeds the usage status.
type BudgetCategory struct {
	Name  string // unique key, matches a record Category name
	Limit Money  // budget limit, > 0
	Spent Money  // amount spent so far, >= 0
}

// BudgetUsage is the derived usage of one budget category.
type BudgetUsage struct {
	PercentUsed Percent
	Status      BudgetStatus
	Remaining   Money // Limit - Spent, may be negative
}

// Usage computes the percent of the budget used and its status.
// Boundaries are inclusive of the lower class: exactly 80% is still
// on-track, exactly 100% is still near-limit.
func (b BudgetCategory) Usage() BudgetUsage {
	percent := b.Spent.PercentOf(b.Limit)
	var status BudgetStatus
	switch {
	case b.Spent.GreaterThan(b.Limit):
		status = OverBudget
	case b.Spent.Amount().Mul(newDecimal(5)).GreaterThan(b.Limit.Amount().Mul(newDecimal(4))):
		// spent/limit > 80% without leaving decimal arithmetic
		status = NearLimit
	default:
		status = OnTrack
	}
	return BudgetUsage{
		PercentUsed: percent,
		Status:      status,
		Remaining:   b.Limit.Sub(b.Spent),
	}
}

// SpentFromRecords sums the netting expense records of this budget's
// category over the given subset. It is the derived counterpart of the
// authoritative Spent figure and the two can legitimately diverge.
func (b BudgetCategory) SpentFromRecords(records []Record) Money {
	total := M(0, b.Limit.Currency())
	for _, r := range records {
		if r.Kind == Expense && string(r.Category) == b.Name && r.Status.Nets() {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// TotalBudgetUsage aggregates all categories into one overall usage.
// Categories are assumed to share a currency; an empty set is fully
// on-track.
func TotalBudgetUsage(budgets []BudgetCategory) BudgetUsage {
	if len(budgets) == 0 {
		return BudgetUsage{Status: OnTrack}
	}
	total := BudgetCategory{Name: "total"}
	total.Limit = M(0, budgets[0].Limit.Currency())
	total.Spent = M(0, budgets[0].Spent.Currency())
	for _, b := range budgets {
		total.Limit = total.Limit.Add(b.Limit)
		total.Spent = total.Spent.Add(b.Spent)
	}
	return total.Usage()
}

// Validate checks the budget category fields.
func (b BudgetCategory) Validate() error {
	if b.Name == "" {
		return invalid("name", "budget name is missing")
	}
	if !b.Limit.IsPositive() {
		return invalid("limit", "budget limit must be positive, got %s", b.Limit)
	}
	if b.Spent.IsNegative() {
		return invalid("spent", "spent cannot be negative, got %s", b.Spent)
	}
	return nil
}

var _ fmt.Stringer = OnTrack
