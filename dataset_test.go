package finboard

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultDataset(t *testing.T) {
	ds := DefaultDataset()

	if ds.Currency != "USD" {
		t.Errorf("currency = %q, want USD", ds.Currency)
	}
	if len(ds.Records) != 14 {
		t.Errorf("records = %d, want 14", len(ds.Records))
	}
	if len(ds.Bills) != 6 || len(ds.Goals) != 4 || len(ds.Subscriptions) != 6 ||
		len(ds.Investments) != 5 || len(ds.Budgets) != 6 || len(ds.Notifications) != 6 {
		t.Errorf("collection sizes = %d/%d/%d/%d/%d/%d", len(ds.Bills), len(ds.Goals),
			len(ds.Subscriptions), len(ds.Investments), len(ds.Budgets), len(ds.Notifications))
	}

	// Every seed record must pass validation unchanged.
	for _, r := range ds.Records {
		if _, err := r.Validate(); err != nil {
			t.Errorf("seed record %q is invalid: %v", r.ID, err)
		}
	}
	for _, b := range ds.Budgets {
		if err := b.Validate(); err != nil {
			t.Errorf("seed budget %q is invalid: %v", b.Name, err)
		}
	}
	if ds.Rates.Base != "USD" || len(ds.Rates.Table) != 7 {
		t.Errorf("rates = %q with %d entries", ds.Rates.Base, len(ds.Rates.Table))
	}
}

func TestDefaultDatasetMonthlyFigures(t *testing.T) {
	store := NewStore(DefaultDataset())
	snap := store.Snapshot()
	jan := Monthly.Range(NewDate(2026, time.January, 15))
	records := jan.filter(snap.All())

	// Completed and pending income: salary 5500, freelance 1200, dividend 125.
	income := TotalByKind(records, Income, "USD")
	if !income.Equal(USD(6825)) {
		t.Errorf("january income = %v, want 6825", income)
	}

	// The failed consulting fee must not move income.
	for _, r := range records {
		if r.Status == Failed && !r.Impact().IsZero() {
			t.Errorf("failed record %q has impact %v", r.Description, r.Impact())
		}
	}
}

const datasetDocJSON = `{
  "currency": "USD",
  "records": [
    {"id": "1", "date": "2026-01-23", "description": "Salary", "category": "Salary", "amount": 5500, "currency": "USD", "kind": "income", "status": "completed"}
  ],
  "bills": [
    {"id": "b1", "name": "Rent", "amount": 1500, "currency": "USD", "dueDate": "2026-01-31", "isAutoPay": true, "category": "Housing"}
  ],
  "goals": [
    {"id": "g1", "name": "Vacation", "target": 5000, "current": 3200, "deadline": "2026-08-15"}
  ],
  "subscriptions": [
    {"id": "s1", "name": "Netflix", "amount": 15.99, "currency": "USD", "billingCycle": "monthly", "nextBilling": "2026-02-20", "category": "Entertainment"}
  ],
  "investments": [
    {"id": "i1", "name": "Apple", "symbol": "AAPL", "type": "stock", "amount": 12500, "currency": "USD", "change24h": 2.3, "quantity": 50}
  ],
  "budgets": [
    {"name": "Food", "limit": 600, "spent": 580}
  ],
  "notifications": [
    {"id": "n1", "type": "warning", "title": "Budget Alert", "message": "Food budget is 90% used", "date": "2026-01-23"}
  ],
  "rates": {"EUR": 0.92}
}`

func TestDecodeDataset(t *testing.T) {
	ds, err := DecodeDataset(strings.NewReader(datasetDocJSON))
	if err != nil {
		t.Fatalf("DecodeDataset() error = %v", err)
	}

	if len(ds.Records) != 1 || !ds.Records[0].Amount.Equal(USD(5500)) {
		t.Errorf("records = %+v", ds.Records)
	}
	if len(ds.Bills) != 1 || !ds.Bills[0].Amount.Equal(USD(1500)) {
		t.Errorf("bills = %+v", ds.Bills)
	}
	if len(ds.Goals) != 1 || !ds.Goals[0].TargetAmount.Equal(USD(5000)) {
		t.Errorf("goals = %+v", ds.Goals)
	}
	if len(ds.Subscriptions) != 1 || ds.Subscriptions[0].BillingCycle != MonthlyCycle {
		t.Errorf("subscriptions = %+v", ds.Subscriptions)
	}
	if len(ds.Investments) != 1 || ds.Investments[0].Type != Stock {
		t.Errorf("investments = %+v", ds.Investments)
	}
	if len(ds.Budgets) != 1 || ds.Budgets[0].Usage().Status != NearLimit {
		t.Errorf("budgets = %+v", ds.Budgets)
	}
	if len(ds.Notifications) != 1 || ds.Notifications[0].Type != Warning {
		t.Errorf("notifications = %+v", ds.Notifications)
	}
	if ds.Rates.Base != "USD" {
		t.Errorf("rates base = %q, want the dataset currency", ds.Rates.Base)
	}
}

func TestDecodeDatasetRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", "nope"},
		{"invalid record", `{"records": [{"id": "1", "date": "2026-01-23", "category": "Food", "amount": 10, "currency": "USD", "kind": "expense"}]}`},
		{"unknown cycle", `{"subscriptions": [{"id": "s1", "name": "x", "amount": 1, "currency": "USD", "billingCycle": "weekly"}]}`},
		{"unknown type", `{"investments": [{"id": "i1", "name": "x", "type": "tulips", "amount": 1, "currency": "USD"}]}`},
		{"bad budget", `{"budgets": [{"name": "Food", "limit": 0, "spent": 10}]}`},
		{"unknown notification type", `{"notifications": [{"id": "n1", "type": "shout", "title": "x"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeDataset(strings.NewReader(tt.doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
