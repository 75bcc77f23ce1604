package finboard

// SavingsGoal is a target amount to save by a deadline.
type SavingsGoal struct {
	ID            string
	Name          string
	TargetAmount  Money // > 0
	CurrentAmount Money // >= 0
	Deadline      Date
}

// Progress returns current/target as a percentage. It can exceed 100
// when the goal is overfunded; use Capped for display bars.
func (g SavingsGoal) Progress() Percent {
	return g.CurrentAmount.PercentOf(g.TargetAmount)
}

// Capped returns the progress clamped to 100 for display.
func (g SavingsGoal) Capped() Percent {
	return g.Progress().Clamp(100)
}

// IsComplete reports whether the goal is fully funded.
func (g SavingsGoal) IsComplete() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// DaysRemaining returns the whole number of days until the deadline;
// negative means the deadline has passed.
func (g SavingsGoal) DaysRemaining(today Date) int { return g.Deadline.Sub(today) }

// RequiredMonthlySavings returns the amount to put aside each month to
// reach the target by the deadline, zero when already met or when the
// deadline has passed.
func (g SavingsGoal) RequiredMonthlySavings(today Date) Money {
	months := monthsUntil(today, g.Deadline)
	return RequiredPeriodicSavings(g.TargetAmount, g.CurrentAmount, months)
}

// monthsUntil counts the number of whole calendar months from 'from'
// to 'to', at least 1 when 'to' is in the future.
func monthsUntil(from, to Date) int {
	if !to.After(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if months < 1 {
		months = 1
	}
	return months
}

// GoalsProgress aggregates all goals into a single saved/target pair.
type GoalsProgress struct {
	TotalSaved  Money
	TotalTarget Money
	Percent     Percent
}

// NewGoalsProgress sums saved and target amounts over all goals.
func NewGoalsProgress(goals []SavingsGoal, currency string) GoalsProgress {
	p := GoalsProgress{TotalSaved: M(0, currency), TotalTarget: M(0, currency)}
	for _, g := range goals {
		p.TotalSaved = p.TotalSaved.Add(g.CurrentAmount)
		p.TotalTarget = p.TotalTarget.Add(g.TargetAmount)
	}
	p.Percent = p.TotalSaved.PercentOf(p.TotalTarget)
	return p
}
