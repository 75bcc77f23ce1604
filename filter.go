package finboard

import "strings"

// Filter holds composable record selection criteria. Zero-valued
// fields place no constraint: the zero Filter is the identity and
// returns the input unchanged.
type Filter struct {
	Query    string // case-insensitive substring of description or category
	Category Category
	Status   Status
	Range    Range // inclusive date range
}

// IsZero reports whether the filter places no constraint at all.
func (f Filter) IsZero() bool {
	return f.Query == "" && f.Category == "" && f.Status == "" && f.Range.IsZero()
}

// Matches reports whether a record satisfies every constraint of the
// filter.
func (f Filter) Matches(r Record) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(r.Description), q) &&
			!strings.Contains(strings.ToLower(string(r.Category)), q) {
			return false
		}
	}
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if !f.Range.IsZero() && !f.Range.Contains(r.Date) {
		return false
	}
	return true
}

// Apply returns the records matching the filter, preserving input
// order. Filtering is pure and idempotent; it never reorders.
func (f Filter) Apply(records []Record) []Record {
	if f.IsZero() {
		return records
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Predicates for use with Snapshot.Records.

// ByKind returns a predicate that keeps records of the given kind.
func ByKind(k Kind) func(Record) bool {
	return func(r Record) bool { return r.Kind == k }
}

// ByCategory returns a predicate that keeps records of the given category.
func ByCategory(c Category) func(Record) bool {
	return func(r Record) bool { return r.Category == c }
}

// ByStatus returns a predicate that keeps records with the given status.
func ByStatus(s Status) func(Record) bool {
	return func(r Record) bool { return r.Status == s }
}

// ByQuery returns a predicate matching the description or category,
// case-insensitively. The empty query matches everything.
func ByQuery(query string) func(Record) bool {
	q := strings.ToLower(query)
	return func(r Record) bool {
		return strings.Contains(strings.ToLower(r.Description), q) ||
			strings.Contains(strings.ToLower(string(r.Category)), q)
	}
}

// ByRange returns a predicate that keeps records dated within the
// inclusive range.
func ByRange(rng Range) func(Record) bool {
	return func(r Record) bool { return rng.Contains(r.Date) }
}
