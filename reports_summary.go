package finboard

// Summary provides an at-a-glance overview of the finances on a given
// date: the figures the dashboard's stat cards display.
type Summary struct {
	Date            Date
	Currency        string
	TotalBalance    Money // net of all netting records
	MonthlyIncome   Money // income in the month containing Date
	MonthlyExpenses Money // expenses in the month containing Date
	MonthlyNet      Money
	SavingsRate     Percent
	BudgetUsed      BudgetUsage
	InvestmentValue Money
	InvestmentMove  Percent // value-weighted 24h change
	UpcomingBills   Money   // due within 30 days
	Subscriptions   Money   // total monthly equivalent
	Goals           GoalsProgress
}

// NewSummary computes the dashboard summary over a snapshot on a given
// date in a given reporting currency.
func NewSummary(snap *Snapshot, on Date, currency string) *Summary {
	records := snap.All()
	month := Monthly.Range(on)
	inMonth := month.filter(records)

	income := TotalByKind(inMonth, Income, currency)
	expenses := TotalByKind(inMonth, Expense, currency)

	balance := M(0, currency)
	for _, r := range records {
		balance = balance.Add(r.Impact())
	}

	return &Summary{
		Date:            on,
		Currency:        currency,
		TotalBalance:    balance,
		MonthlyIncome:   income,
		MonthlyExpenses: expenses,
		MonthlyNet:      income.Sub(expenses),
		SavingsRate:     SavingsRate(income, expenses),
		BudgetUsed:      TotalBudgetUsage(snap.Budgets()),
		InvestmentValue: TotalInvestmentValue(snap.Investments(), currency),
		InvestmentMove:  WeightedChange24h(snap.Investments()),
		UpcomingBills:   UpcomingBillsTotal(snap.Bills(), on, currency),
		Subscriptions:   TotalMonthlySubscriptions(snap.Subscriptions(), currency),
		Goals:           NewGoalsProgress(snap.Goals(), currency),
	}
}
