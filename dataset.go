package finboard

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// Dataset is the fixed seed populating the store at startup. It is
// loaded once and treated as read-only by the core.
type Dataset struct {
	Currency      string
	Records       []Record
	Bills         []Bill
	Goals         []SavingsGoal
	Subscriptions []Subscription
	Investments   []Investment
	Budgets       []BudgetCategory
	Notifications []Notification
	Rates         Rates
}

// DefaultDataset returns the built-in demo dataset.
func DefaultDataset() *Dataset {
	usd := func(v float64) Money { return M(v, "USD") }
	rec := func(id, date, desc string, cat Category, amount float64, kind Kind, status Status, method PaymentMethod) Record {
		return Record{
			ID:          id,
			Date:        MustParse(date),
			Description: desc,
			Category:    cat,
			Amount:      usd(amount),
			Kind:        kind,
			Status:      status,
			Method:      method,
		}
	}

	return &Dataset{
		Currency: "USD",
		Records: []Record{
			rec("1", "2026-01-23", "Salary Deposit", Salary, 5500.00, Income, Completed, Bank),
			rec("2", "2026-01-22", "Grocery Shopping", Food, 156.32, Expense, Completed, Card),
			rec("3", "2026-01-21", "Uber Ride", Transport, 24.50, Expense, Completed, Card),
			rec("4", "2026-01-21", "Freelance Project", Freelance, 1200.00, Income, Pending, PayPal),
			rec("5", "2026-01-20", "Netflix Subscription", Entertainment, 15.99, Expense, Completed, Card),
			rec("6", "2026-01-20", "Electric Bill", Bills, 145.00, Expense, Completed, Bank),
			rec("7", "2026-01-19", "Amazon Purchase", Shopping, 89.99, Expense, Refunded, Card),
			rec("8", "2026-01-18", "Restaurant Dinner", Food, 67.50, Expense, Completed, Card),
			rec("9", "2026-01-17", "Gas Station", Transport, 55.00, Expense, Completed, Card),
			rec("10", "2026-01-16", "Consulting Fee", Freelance, 850.00, Income, Failed, Bank),
			rec("11", "2026-01-15", "Internet Bill", Bills, 79.99, Expense, Completed, Bank),
			rec("12", "2026-01-14", "Coffee Shop", Food, 12.50, Expense, Completed, Card),
			rec("13", "2026-01-13", "Bitcoin Purchase", Investing, 500.00, Expense, Completed, Crypto),
			rec("14", "2026-01-12", "Dividend Payment", Investing, 125.00, Income, Completed, Bank),
		},
		Bills: []Bill{
			{ID: "1", Name: "Rent", Amount: usd(1500), DueDate: MustParse("2026-01-31"), IsAutoPay: true, Category: "Housing"},
			{ID: "2", Name: "Electric Bill", Amount: usd(145), DueDate: MustParse("2026-01-27"), IsAutoPay: false, Category: "Utilities"},
			{ID: "3", Name: "Internet", Amount: usd(79.99), DueDate: MustParse("2026-01-25"), IsAutoPay: true, Category: "Utilities"},
			{ID: "4", Name: "Phone Bill", Amount: usd(85), DueDate: MustParse("2026-01-28"), IsAutoPay: true, Category: "Utilities"},
			{ID: "5", Name: "Car Insurance", Amount: usd(120), DueDate: MustParse("2026-01-22"), IsAutoPay: false, Category: "Insurance"},
			{ID: "6", Name: "Gym Membership", Amount: usd(49.99), DueDate: MustParse("2026-02-01"), IsAutoPay: true, Category: "Health"},
		},
		Goals: []SavingsGoal{
			{ID: "1", Name: "Emergency Fund", TargetAmount: usd(10000), CurrentAmount: usd(7500), Deadline: MustParse("2026-06-01")},
			{ID: "2", Name: "Vacation", TargetAmount: usd(5000), CurrentAmount: usd(3200), Deadline: MustParse("2026-08-15")},
			{ID: "3", Name: "New Car", TargetAmount: usd(25000), CurrentAmount: usd(8500), Deadline: MustParse("2027-01-01")},
			{ID: "4", Name: "Home Down Payment", TargetAmount: usd(50000), CurrentAmount: usd(12000), Deadline: MustParse("2028-01-01")},
		},
		Subscriptions: []Subscription{
			{ID: "1", Name: "Netflix", Amount: usd(15.99), BillingCycle: MonthlyCycle, NextBillingDate: MustParse("2026-02-20"), Category: "Entertainment"},
			{ID: "2", Name: "Spotify", Amount: usd(9.99), BillingCycle: MonthlyCycle, NextBillingDate: MustParse("2026-02-15"), Category: "Entertainment"},
			{ID: "3", Name: "Adobe CC", Amount: usd(54.99), BillingCycle: MonthlyCycle, NextBillingDate: MustParse("2026-02-10"), Category: "Productivity"},
			{ID: "4", Name: "iCloud", Amount: usd(2.99), BillingCycle: MonthlyCycle, NextBillingDate: MustParse("2026-02-05"), Category: "Storage"},
			{ID: "5", Name: "GitHub Pro", Amount: usd(48), BillingCycle: YearlyCycle, NextBillingDate: MustParse("2026-05-01"), Category: "Development"},
			{ID: "6", Name: "ChatGPT Plus", Amount: usd(20), BillingCycle: MonthlyCycle, NextBillingDate: MustParse("2026-02-18"), Category: "AI"},
		},
		Investments: []Investment{
			{ID: "1", Name: "Apple Inc", Symbol: "AAPL", Type: Stock, Value: usd(12500), Change24h: 2.3, Quantity: Q(50)},
			{ID: "2", Name: "Bitcoin", Symbol: "BTC", Type: CryptoCoin, Value: usd(8200), Change24h: -1.5, Quantity: Q(0.2)},
			{ID: "3", Name: "S&P 500 ETF", Symbol: "SPY", Type: ETF, Value: usd(15000), Change24h: 0.8, Quantity: Q(30)},
			{ID: "4", Name: "Ethereum", Symbol: "ETH", Type: CryptoCoin, Value: usd(4500), Change24h: 3.2, Quantity: Q(2)},
			{ID: "5", Name: "Treasury Bonds", Symbol: "TLT", Type: Bond, Value: usd(5030), Change24h: -0.2, Quantity: Q(50)},
		},
		Budgets: []BudgetCategory{
			{Name: "Food", Limit: usd(600), Spent: usd(580)},
			{Name: "Transport", Limit: usd(400), Spent: usd(320)},
			{Name: "Shopping", Limit: usd(300), Spent: usd(450)},
			{Name: "Bills", Limit: usd(800), Spent: usd(680)},
			{Name: "Entertainment", Limit: usd(200), Spent: usd(280)},
			{Name: "Other", Limit: usd(500), Spent: usd(970)},
		},
		Notifications: []Notification{
			{ID: "1", Type: Warning, Title: "Budget Alert", Message: "Food budget is 90% used", Date: MustParse("2026-01-23")},
			{ID: "2", Type: Info, Title: "Bill Due Soon", Message: "Electric bill due in 3 days", Date: MustParse("2026-01-23")},
			{ID: "3", Type: Success, Title: "Goal Progress", Message: "Emergency fund is 75% complete!", Date: MustParse("2026-01-23")},
			{ID: "4", Type: Alert, Title: "Large Transaction", Message: "$850 withdrawal detected", Date: MustParse("2026-01-22"), IsRead: true},
			{ID: "5", Type: Success, Title: "Payment Received", Message: "Salary of $5,500 deposited", Date: MustParse("2026-01-22"), IsRead: true},
			{ID: "6", Type: Info, Title: "Investment Update", Message: "AAPL is up 2.3% today", Date: MustParse("2026-01-21"), IsRead: true},
		},
		Rates: Rates{
			Base: "USD",
			Table: map[string]decimal.Decimal{
				"EUR": decimal.NewFromFloat(0.92),
				"GBP": decimal.NewFromFloat(0.79),
				"JPY": decimal.NewFromFloat(148.50),
				"CAD": decimal.NewFromFloat(1.35),
				"AUD": decimal.NewFromFloat(1.53),
				"BTC": decimal.NewFromFloat(0.000024),
				"ETH": decimal.NewFromFloat(0.00042),
			},
		},
	}
}

// datasetDoc is the wire shape of an external dataset document.
type datasetDoc struct {
	Currency string   `json:"currency"`
	Records  []Record `json:"records"`
	Bills    []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		amountRow
		DueDate   Date   `json:"dueDate"`
		IsAutoPay bool   `json:"isAutoPay"`
		Category  string `json:"category"`
	} `json:"bills"`
	Goals []struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Target   decimal.Decimal `json:"target"`
		Current  decimal.Decimal `json:"current"`
		Currency string          `json:"currency"`
		Deadline Date            `json:"deadline"`
	} `json:"goals"`
	Subscriptions []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		amountRow
		BillingCycle string `json:"billingCycle"`
		NextBilling  Date   `json:"nextBilling"`
		Category     string `json:"category"`
	} `json:"subscriptions"`
	Investments []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
		Type   string `json:"type"`
		amountRow
		Change24h float64  `json:"change24h"`
		Quantity  Quantity `json:"quantity"`
	} `json:"investments"`
	Budgets []struct {
		Name     string          `json:"name"`
		Limit    decimal.Decimal `json:"limit"`
		Spent    decimal.Decimal `json:"spent"`
		Currency string          `json:"currency"`
	} `json:"budgets"`
	Notifications []struct {
		ID      string `json:"id"`
		Type    string `json:"type"`
		Title   string `json:"title"`
		Message string `json:"message"`
		Date    Date   `json:"date"`
		IsRead  bool   `json:"isRead"`
	} `json:"notifications"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// DecodeDataset decodes an external dataset document. Every record and
// budget is validated; decoding fails on the first invalid row.
func DecodeDataset(r io.Reader) (*Dataset, error) {
	var doc datasetDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode dataset: %w", err)
	}
	if doc.Currency == "" {
		doc.Currency = "USD"
	}

	ds := &Dataset{Currency: doc.Currency}
	for _, rec := range doc.Records {
		rec, err := rec.Validate()
		if err != nil {
			return nil, fmt.Errorf("invalid record %q: %w", rec.ID, err)
		}
		ds.Records = append(ds.Records, rec)
	}
	for _, b := range doc.Bills {
		ds.Bills = append(ds.Bills, Bill{
			ID: b.ID, Name: b.Name, Amount: b.Money(),
			DueDate: b.DueDate, IsAutoPay: b.IsAutoPay, Category: b.Category,
		})
	}
	for _, g := range doc.Goals {
		cur := g.Currency
		if cur == "" {
			cur = doc.Currency
		}
		ds.Goals = append(ds.Goals, SavingsGoal{
			ID: g.ID, Name: g.Name,
			TargetAmount:  M(g.Target, cur),
			CurrentAmount: M(g.Current, cur),
			Deadline:      g.Deadline,
		})
	}
	for _, s := range doc.Subscriptions {
		cycle, err := ParseBillingCycle(s.BillingCycle)
		if err != nil {
			return nil, fmt.Errorf("invalid subscription %q: %w", s.ID, err)
		}
		ds.Subscriptions = append(ds.Subscriptions, Subscription{
			ID: s.ID, Name: s.Name, Amount: s.Money(),
			BillingCycle: cycle, NextBillingDate: s.NextBilling, Category: s.Category,
		})
	}
	for _, inv := range doc.Investments {
		typ, err := ParseInvestmentType(inv.Type)
		if err != nil {
			return nil, fmt.Errorf("invalid investment %q: %w", inv.ID, err)
		}
		ds.Investments = append(ds.Investments, Investment{
			ID: inv.ID, Name: inv.Name, Symbol: inv.Symbol, Type: typ,
			Value: inv.Money(), Change24h: Percent(inv.Change24h), Quantity: inv.Quantity,
		})
	}
	for _, b := range doc.Budgets {
		cur := b.Currency
		if cur == "" {
			cur = doc.Currency
		}
		budget := BudgetCategory{Name: b.Name, Limit: M(b.Limit, cur), Spent: M(b.Spent, cur)}
		if err := budget.Validate(); err != nil {
			return nil, fmt.Errorf("invalid budget %q: %w", b.Name, err)
		}
		ds.Budgets = append(ds.Budgets, budget)
	}
	for _, n := range doc.Notifications {
		typ, err := ParseNotificationType(n.Type)
		if err != nil {
			return nil, fmt.Errorf("invalid notification %q: %w", n.ID, err)
		}
		ds.Notifications = append(ds.Notifications, Notification{
			ID: n.ID, Type: typ, Title: n.Title, Message: n.Message,
			Date: n.Date, IsRead: n.IsRead,
		})
	}
	if len(doc.Rates) > 0 {
		ds.Rates = Rates{Base: doc.Currency, Table: doc.Rates}
	}
	return ds, nil
}
