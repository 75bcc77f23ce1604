package finboard

// HealthScore grades the overall financial posture on a 0-100 scale,
// built from five 0-20 sub-scores.
type HealthScore struct {
	Overall          int
	SavingsRate      int // share of income kept
	BudgetDiscipline int // budgets kept within limits
	EmergencyFund    int // months of expenses covered by goal savings
	BillPunctuality  int // absence of overdue bills
	Diversification  int // spread of investment asset classes
}

// NewHealthScore derives the health score from the dashboard summary
// and the snapshot collections. Each sub-score is clamped to [0, 20].
func NewHealthScore(snap *Snapshot, on Date, currency string) HealthScore {
	summary := NewSummary(snap, on, currency)

	var h HealthScore

	// A 50% savings rate or better earns full marks.
	h.SavingsRate = clampScore(int(float64(summary.SavingsRate) / 50 * 20))

	// Budget discipline: full marks with every category on track,
	// losing ground per near-limit or over-budget category.
	budgets := snap.Budgets()
	if len(budgets) == 0 {
		h.BudgetDiscipline = 20
	} else {
		score := 20
		for _, b := range budgets {
			switch b.Usage().Status {
			case NearLimit:
				score -= 2
			case OverBudget:
				score -= 5
			}
		}
		h.BudgetDiscipline = clampScore(score)
	}

	// Emergency fund: six months of expenses saved earns full marks.
	if summary.MonthlyExpenses.IsPositive() {
		months := summary.Goals.TotalSaved.AsFloat() / summary.MonthlyExpenses.AsFloat()
		h.EmergencyFund = clampScore(int(months / 6 * 20))
	} else {
		h.EmergencyFund = 20
	}

	// Punctuality: each overdue bill costs a third of the sub-score.
	h.BillPunctuality = clampScore(20 - 7*len(OverdueBills(snap.Bills(), on)))

	// Diversification: four or more asset classes earn full marks.
	classes := len(AllocationByType(snap.Investments(), currency))
	h.Diversification = clampScore(classes * 5)

	h.Overall = h.SavingsRate + h.BudgetDiscipline + h.EmergencyFund + h.BillPunctuality + h.Diversification
	return h
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 20 {
		return 20
	}
	return s
}
