package finboard

import "testing"

func TestBudgetUsageThresholds(t *testing.T) {
	tests := []struct {
		name  string
		spent float64
		want  BudgetStatus
	}{
		{"well under", 50, OnTrack},
		{"exactly 80 percent", 80, OnTrack},
		{"just over 80 percent", 80.01, NearLimit},
		{"exactly at limit", 100, NearLimit},
		{"just over limit", 100.01, OverBudget},
		{"far over limit", 150, OverBudget},
		{"nothing spent", 0, OnTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BudgetCategory{Name: "Food", Limit: USD(100), Spent: USD(tt.spent)}
			usage := b.Usage()
			if usage.Status != tt.want {
				t.Errorf("status = %v, want %v", usage.Status, tt.want)
			}
			wantPct := Percent(tt.spent)
			if !usage.PercentUsed.Equal(wantPct) {
				t.Errorf("percent used = %v, want %v", usage.PercentUsed, wantPct)
			}
		})
	}
}

func TestBudgetUsageRemaining(t *testing.T) {
	b := BudgetCategory{Name: "Food", Limit: USD(600), Spent: USD(580)}
	usage := b.Usage()
	if !usage.Remaining.Equal(USD(20)) {
		t.Errorf("remaining = %v, want 20", usage.Remaining)
	}
	if usage.Status != NearLimit {
		t.Errorf("status = %v, want near-limit", usage.Status)
	}

	over := BudgetCategory{Name: "Shopping", Limit: USD(300), Spent: USD(420)}
	if got := over.Usage().Remaining; !got.Equal(USD(-120)) {
		t.Errorf("remaining = %v, want -120", got)
	}
}

func TestBudgetUsageZeroLimit(t *testing.T) {
	b := BudgetCategory{Name: "Misc", Limit: USD(0), Spent: USD(10)}
	usage := b.Usage()
	if usage.Status != OverBudget {
		t.Errorf("spending against a zero limit = %v, want over-budget", usage.Status)
	}

	empty := BudgetCategory{Name: "Misc", Limit: USD(0), Spent: USD(0)}
	if got := empty.Usage().Status; got != OnTrack {
		t.Errorf("zero spent on zero limit = %v, want on-track", got)
	}
}

func TestTotalBudgetUsage(t *testing.T) {
	budgets := []BudgetCategory{
		{Name: "Food", Limit: USD(600), Spent: USD(580)},
		{Name: "Transport", Limit: USD(200), Spent: USD(145)},
	}
	total := TotalBudgetUsage(budgets)
	if !total.Remaining.Equal(USD(75)) {
		t.Errorf("remaining = %v, want 75", total.Remaining)
	}
	// 725 of 800 is 90.6%, near the limit overall.
	if total.Status != NearLimit {
		t.Errorf("status = %v, want near-limit", total.Status)
	}
}

func TestSpentFromRecords(t *testing.T) {
	records := sampleRecords()
	b := BudgetCategory{Name: string(Food), Limit: USD(600)}
	got := b.SpentFromRecords(records)
	if !got.Equal(USD(156.32)) {
		t.Errorf("spent from records = %v, want 156.32", got)
	}
}

func TestBudgetStatusString(t *testing.T) {
	if OnTrack.String() != "on-track" || NearLimit.String() != "near-limit" || OverBudget.String() != "over-budget" {
		t.Errorf("unexpected status strings: %v %v %v", OnTrack, NearLimit, OverBudget)
	}
}
