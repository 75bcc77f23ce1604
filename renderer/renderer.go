package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/finboard/finboard"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// view bundles the data handed to a template with the formatter its
// helper functions use.
type view struct {
	fmt   *Formatter
	today finboard.Date
}

func (v view) funcs() template.FuncMap {
	return template.FuncMap{
		"money":    v.fmt.Currency,
		"signed":   func(m finboard.Money) string { return m.SignedString() },
		"percent":  v.fmt.Percentage,
		"pct":      func(p finboard.Percent) string { return p.String() },
		"relative": func(d finboard.Date) string { return v.fmt.RelativeDate(d, v.today) },
		"number":   v.fmt.PlainNumber,
	}
}

// renderTemplate is a generic utility to render one of the embedded
// markdown templates with the formatter helpers installed.
func renderTemplate(v view, templateName, mainFile string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(v.funcs()).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", mainFile, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// Summary renders the dashboard summary to markdown.
func Summary(f *Formatter, s *finboard.Summary) string {
	return renderTemplate(view{fmt: f, today: s.Date}, "summary", "summary.md", s)
}

// transactionsView is the data shape of the transactions template.
type transactionsView struct {
	Records []finboard.Record
	Total   int
}

// Transactions renders a record listing to a markdown table.
func Transactions(f *Formatter, today finboard.Date, records []finboard.Record, total int) string {
	return renderTemplate(view{fmt: f, today: today}, "transactions", "transactions.md",
		transactionsView{Records: records, Total: total})
}

// budgetRow pairs a category with its derived usage for the template.
type budgetRow struct {
	finboard.BudgetCategory
	Usage finboard.BudgetUsage
}

type budgetView struct {
	Rows  []budgetRow
	Total finboard.BudgetUsage
}

// Budgets renders budget categories and their usage to markdown.
func Budgets(f *Formatter, today finboard.Date, budgets []finboard.BudgetCategory) string {
	v := budgetView{Total: finboard.TotalBudgetUsage(budgets)}
	for _, b := range budgets {
		v.Rows = append(v.Rows, budgetRow{BudgetCategory: b, Usage: b.Usage()})
	}
	return renderTemplate(view{fmt: f, today: today}, "budget", "budget.md", v)
}

type billRow struct {
	finboard.Bill
	DaysUntil int
	Overdue   bool
}

type billsView struct {
	Rows     []billRow
	Upcoming finboard.Money
}

// Bills renders the bill list with due-date context to markdown.
func Bills(f *Formatter, today finboard.Date, bills []finboard.Bill, currency string) string {
	v := billsView{Upcoming: finboard.UpcomingBillsTotal(bills, today, currency)}
	for _, b := range bills {
		v.Rows = append(v.Rows, billRow{Bill: b, DaysUntil: b.DaysUntilDue(today), Overdue: b.IsOverdue(today)})
	}
	return renderTemplate(view{fmt: f, today: today}, "bills", "bills.md", v)
}

type goalRow struct {
	finboard.SavingsGoal
	Progress finboard.Percent
	Monthly  finboard.Money
	Days     int
}

type goalsView struct {
	Rows    []goalRow
	Overall finboard.GoalsProgress
}

// Goals renders savings goals and their progress to markdown.
func Goals(f *Formatter, today finboard.Date, goals []finboard.SavingsGoal, currency string) string {
	v := goalsView{Overall: finboard.NewGoalsProgress(goals, currency)}
	for _, g := range goals {
		v.Rows = append(v.Rows, goalRow{
			SavingsGoal: g,
			Progress:    g.Progress(),
			Monthly:     g.RequiredMonthlySavings(today),
			Days:        g.DaysRemaining(today),
		})
	}
	return renderTemplate(view{fmt: f, today: today}, "goals", "goals.md", v)
}

type subscriptionRow struct {
	finboard.Subscription
	Monthly finboard.Money
}

type subscriptionsView struct {
	Rows  []subscriptionRow
	Total finboard.Money
}

// Subscriptions renders the subscription list to markdown.
func Subscriptions(f *Formatter, today finboard.Date, subs []finboard.Subscription, currency string) string {
	v := subscriptionsView{Total: finboard.TotalMonthlySubscriptions(subs, currency)}
	for _, s := range subs {
		v.Rows = append(v.Rows, subscriptionRow{Subscription: s, Monthly: s.MonthlyEquivalent()})
	}
	return renderTemplate(view{fmt: f, today: today}, "subscriptions", "subscriptions.md", v)
}

type investmentsView struct {
	Rows        []finboard.Investment
	Total       finboard.Money
	Change      finboard.Percent
	Allocations []finboard.Allocation
}

// Investments renders the holdings and their allocation to markdown.
func Investments(f *Formatter, today finboard.Date, investments []finboard.Investment, currency string) string {
	v := investmentsView{
		Rows:        investments,
		Total:       finboard.TotalInvestmentValue(investments, currency),
		Change:      finboard.WeightedChange24h(investments),
		Allocations: finboard.AllocationByType(investments, currency),
	}
	return renderTemplate(view{fmt: f, today: today}, "investments", "investments.md", v)
}

// MonthlyTrend renders the month-by-month income and expense series.
func MonthlyTrend(f *Formatter, today finboard.Date, totals []finboard.MonthlyTotal) string {
	return renderTemplate(view{fmt: f, today: today}, "trend", "trend.md", totals)
}

// Health renders the financial health score.
func Health(f *Formatter, today finboard.Date, h finboard.HealthScore) string {
	return renderTemplate(view{fmt: f, today: today}, "health", "health.md", h)
}

type notificationsView struct {
	Rows   []finboard.Notification
	Unread int
}

// Notifications renders the notification panel with its unread count.
func Notifications(f *Formatter, today finboard.Date, c *finboard.NotificationCenter) string {
	v := notificationsView{Rows: c.All(), Unread: c.UnreadCount()}
	return renderTemplate(view{fmt: f, today: today}, "notifications", "notifications.md", v)
}
