package finboard

import (
	"iter"
	"slices"
	"sort"
)

// Store owns the canonical set of records and the derived-entity
// collections. Every mutation replaces the whole snapshot, never a row
// in place, so aggregations stay consistent with the snapshot they
// were computed from.
//
// The store is meant to be driven from a single event loop; snapshots
// handed out are immutable and safe to keep.
type Store struct {
	snap *Snapshot
}

// Snapshot is an immutable view of the store at one version.
type Snapshot struct {
	version       uint64
	currency      string
	records       []Record // most-recent-first
	bills         []Bill
	goals         []SavingsGoal
	subscriptions []Subscription
	investments   []Investment
	budgets       []BudgetCategory
	rates         Rates
}

// NewStore creates a store seeded from a dataset.
func NewStore(ds *Dataset) *Store {
	snap := &Snapshot{
		version:       1,
		currency:      ds.Currency,
		records:       slices.Clone(ds.Records),
		bills:         slices.Clone(ds.Bills),
		goals:         slices.Clone(ds.Goals),
		subscriptions: slices.Clone(ds.Subscriptions),
		investments:   slices.Clone(ds.Investments),
		budgets:       slices.Clone(ds.Budgets),
		rates:         ds.Rates,
	}
	snap.stableSort()
	return &Store{snap: snap}
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() *Snapshot { return s.snap }

// Add validates the record and installs a new snapshot containing it.
// On failure the store is unchanged and the error is a *ValidationError.
func (s *Store) Add(r Record) (*Snapshot, error) {
	r, err := r.Validate()
	if err != nil {
		return nil, err
	}
	next := s.snap.clone()
	next.records = append(next.records, r)
	next.stableSort()
	s.snap = next
	return next, nil
}

// ToggleAutoPay flips a bill's auto-pay flag through snapshot
// replacement. Returns ErrNotFound when no bill has that id.
func (s *Store) ToggleAutoPay(billID string) (*Snapshot, error) {
	i := slices.IndexFunc(s.snap.bills, func(b Bill) bool { return b.ID == billID })
	if i < 0 {
		return nil, ErrNotFound
	}
	next := s.snap.clone()
	next.bills[i].IsAutoPay = !next.bills[i].IsAutoPay
	s.snap = next
	return next, nil
}

// clone returns a deep-enough copy with a bumped version. Rows are
// value types so cloning the slices is enough.
func (s *Snapshot) clone() *Snapshot {
	return &Snapshot{
		version:       s.version + 1,
		currency:      s.currency,
		records:       slices.Clone(s.records),
		bills:         slices.Clone(s.bills),
		goals:         s.goals,
		subscriptions: s.subscriptions,
		investments:   s.investments,
		budgets:       s.budgets,
		rates:         s.rates,
	}
}

// stableSort sorts records most-recent-first. The sort is stable, so
// records on the same day keep their original relative order.
func (s *Snapshot) stableSort() {
	sort.SliceStable(s.records, func(i, j int) bool {
		return s.records[j].Date.Before(s.records[i].Date)
	})
}

// Currency returns the reporting currency of the dataset.
func (s *Snapshot) Currency() string { return s.currency }

// Version identifies the snapshot; it changes on every mutation and is
// what the derived-metrics cache keys invalidation on.
func (s *Snapshot) Version() uint64 { return s.version }

// Records returns an iterator over records in store order
// (most-recent-first). With no filter every record is yielded; with
// filters a record is yielded when any filter accepts it.
func (s *Snapshot) Records(filters ...func(Record) bool) iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range s.records {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(r) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, r) {
				return
			}
		}
	}
}

// All returns all records in store order.
func (s *Snapshot) All() []Record { return slices.Clone(s.records) }

// Len returns the number of records.
func (s *Snapshot) Len() int { return len(s.records) }

// Record returns the record with the given id.
func (s *Snapshot) Record(id string) (Record, bool) {
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// OldestRecordDate returns the date of the earliest record, or the
// zero date when the snapshot is empty.
func (s *Snapshot) OldestRecordDate() Date {
	if len(s.records) == 0 {
		return Date{}
	}
	return s.records[len(s.records)-1].Date
}

// NewestRecordDate returns the date of the latest record, or the zero
// date when the snapshot is empty.
func (s *Snapshot) NewestRecordDate() Date {
	if len(s.records) == 0 {
		return Date{}
	}
	return s.records[0].Date
}

// Bills returns the bill collection.
func (s *Snapshot) Bills() []Bill { return slices.Clone(s.bills) }

// Bill returns the bill with the given id.
func (s *Snapshot) Bill(id string) (Bill, bool) {
	for _, b := range s.bills {
		if b.ID == id {
			return b, true
		}
	}
	return Bill{}, false
}

// Goals returns the savings-goal collection.
func (s *Snapshot) Goals() []SavingsGoal { return slices.Clone(s.goals) }

// Subscriptions returns the subscription collection.
func (s *Snapshot) Subscriptions() []Subscription { return slices.Clone(s.subscriptions) }

// Investments returns the investment collection.
func (s *Snapshot) Investments() []Investment { return slices.Clone(s.investments) }

// Budgets returns the budget-category collection.
func (s *Snapshot) Budgets() []BudgetCategory { return slices.Clone(s.budgets) }

// Budget returns the budget category with the given name.
func (s *Snapshot) Budget(name string) (BudgetCategory, bool) {
	for _, b := range s.budgets {
		if b.Name == name {
			return b, true
		}
	}
	return BudgetCategory{}, false
}

// Rates returns the exchange-rate table.
func (s *Snapshot) Rates() Rates { return s.rates }
