package finboard

import (
	"slices"
	"testing"
	"time"
)

func sampleRecords() []Record {
	jan := func(d int) Date { return NewDate(2026, time.January, d) }
	r1 := income(jan(23), "Salary Deposit", Salary, 5500)
	r2 := expense(jan(22), "Grocery Shopping", Food, 156.32)
	r3 := expense(jan(20), "Netflix Subscription", Entertainment, 15.99)
	r4 := expense(jan(18), "Gas Station", Transport, 45.20)
	r4.Status = Pending
	r5 := expense(jan(15), "Amazon Refund", Shopping, 89.99)
	r5.Status = Refunded
	return []Record{r1, r2, r3, r4, r5}
}

func TestFilterIdentity(t *testing.T) {
	records := sampleRecords()
	got := Filter{}.Apply(records)
	if !slices.EqualFunc(records, got, func(a, b Record) bool { return a.ID == b.ID }) {
		t.Errorf("zero filter must return the full list unchanged, got %d of %d", len(got), len(records))
	}
}

func TestFilterIdempotent(t *testing.T) {
	records := sampleRecords()
	filters := []Filter{
		{},
		{Query: "netflix"},
		{Category: Food},
		{Status: Pending},
		{Range: Monthly.Range(NewDate(2026, time.January, 1))},
		{Query: "a", Status: Completed},
	}
	for _, f := range filters {
		once := f.Apply(records)
		twice := f.Apply(once)
		if !slices.EqualFunc(once, twice, func(a, b Record) bool { return a.ID == b.ID }) {
			t.Errorf("filter %+v is not idempotent: %d then %d records", f, len(once), len(twice))
		}
	}
}

func TestFilterQuery(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		query string
		want  int
	}{
		{"netflix", 1},
		{"NETFLIX", 1},
		{"NeTfLiX", 1},
		{"food", 1},   // matches the category name
		{"a", 4},      // description or category name, Grocery/Food has none
		{"quinoa", 0}, // no match yields empty, not error
		{"Grocery S", 1},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Filter{Query: tt.query}.Apply(records)
			if len(got) != tt.want {
				t.Errorf("query %q matched %d records, want %d", tt.query, len(got), tt.want)
			}
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	records := sampleRecords()
	got := Filter{Status: Completed}.Apply(records)
	for i := 1; i < len(got); i++ {
		if got[i].Date.After(got[i-1].Date) {
			t.Errorf("filtered records out of order at %d: %v after %v", i, got[i].Date, got[i-1].Date)
		}
	}
}

func TestFilterByRange(t *testing.T) {
	records := sampleRecords()
	r := Range{From: NewDate(2026, time.January, 18), To: NewDate(2026, time.January, 22)}
	got := Filter{Range: r}.Apply(records)
	if len(got) != 3 {
		t.Fatalf("range filter matched %d records, want 3", len(got))
	}
	for _, rec := range got {
		if !r.Contains(rec.Date) {
			t.Errorf("record on %v escaped range %v", rec.Date, r)
		}
	}

	// Open boundaries: only From set.
	open := Filter{Range: Range{From: NewDate(2026, time.January, 20)}}.Apply(records)
	if len(open) != 3 {
		t.Errorf("open range matched %d records, want 3", len(open))
	}
}

func TestFilterCombination(t *testing.T) {
	records := sampleRecords()
	// Conditions combine with AND.
	got := Filter{Query: "a", Status: Completed}.Apply(records)
	for _, rec := range got {
		if rec.Status != Completed {
			t.Errorf("record %q has status %q, want completed", rec.Description, rec.Status)
		}
	}
	if len(got) != 2 {
		t.Errorf("combined filter matched %d records, want 2", len(got))
	}
}

func TestSnapshotRecordsPredicates(t *testing.T) {
	store := NewStore(&Dataset{Currency: "USD", Records: sampleRecords()})
	snap := store.Snapshot()

	count := 0
	for _, r := range snap.Records(ByKind(Expense)) {
		if r.Kind != Expense {
			t.Errorf("predicate leaked record %q", r.Description)
		}
		count++
	}
	if count != 4 {
		t.Errorf("ByKind(Expense) yielded %d records, want 4", count)
	}

	// No predicate yields everything.
	count = 0
	for range snap.Records() {
		count++
	}
	if count != snap.Len() {
		t.Errorf("Records() yielded %d, want %d", count, snap.Len())
	}
}
