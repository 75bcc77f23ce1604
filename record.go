package finboard

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind is the cash-flow direction of a record.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown kind %q", s)
	}
}

// Category is the closed set of transaction categories.
type Category string

const (
	Food          Category = "Food"
	Transport     Category = "Transport"
	Shopping      Category = "Shopping"
	Bills         Category = "Bills"
	Entertainment Category = "Entertainment"
	Other         Category = "Other"
	Salary        Category = "Salary"
	Freelance     Category = "Freelance"
	Investing     Category = "Investment"
)

// Categories lists all categories in display order.
var Categories = []Category{Food, Transport, Shopping, Bills, Entertainment, Other, Salary, Freelance, Investing}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Status is the settlement state of a record.
//
// Only completed and pending records net against balance totals;
// failed and refunded records are kept for display but excluded from
// all aggregation.
type Status string

const (
	Completed Status = "completed"
	Pending   Status = "pending"
	Failed    Status = "failed"
	Refunded  Status = "refunded"
)

var Statuses = []Status{Completed, Pending, Failed, Refunded}

func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case Completed:
		return Completed, nil
	case Pending:
		return Pending, nil
	case Failed:
		return Failed, nil
	case Refunded:
		return Refunded, nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}

// Nets reports whether a record in this status counts toward balances.
func (s Status) Nets() bool { return s == Completed || s == Pending }

// PaymentMethod is how a transaction was settled.
type PaymentMethod string

const (
	Card   PaymentMethod = "card"
	Bank   PaymentMethod = "bank"
	Cash   PaymentMethod = "cash"
	Crypto PaymentMethod = "crypto"
	PayPal PaymentMethod = "paypal"
)

var PaymentMethods = []PaymentMethod{Card, Bank, Cash, Crypto, PayPal}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case Card, Bank, Cash, Crypto, PayPal:
		return m, nil
	default:
		return "", fmt.Errorf("unknown payment method %q", s)
	}
}

// Record is a single financial transaction. Amount is a non-negative
// magnitude; the cash-flow direction is carried by Kind.
type Record struct {
	ID          string
	Date        Date
	Description string
	Category    Category
	Amount      Money
	Kind        Kind
	Status      Status
	Method      PaymentMethod
}

// NewRecord creates a record with a fresh id in completed status.
func NewRecord(day Date, description string, category Category, amount Money, kind Kind) Record {
	return Record{
		ID:          uuid.NewString(),
		Date:        day,
		Description: description,
		Category:    category,
		Amount:      amount,
		Kind:        kind,
		Status:      Completed,
	}
}

// Impact returns the signed cash-flow impact of the record:
// +amount for income, -amount for expense, zero when the status does
// not net against balances.
func (r Record) Impact() Money {
	if !r.Status.Nets() {
		return M(0, r.Amount.Currency())
	}
	if r.Kind == Income {
		return r.Amount
	}
	return r.Amount.Neg()
}

// Validate checks the record for correctness and applies quick fixes
// (generated id, default status). It returns the validated record or a
// *ValidationError detailing the failure.
func (r Record) Validate() (Record, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Date.IsZero() {
		return r, invalid("date", "date is missing")
	}
	if strings.TrimSpace(r.Description) == "" {
		return r, invalid("description", "description is missing")
	}
	if r.Category == "" {
		return r, invalid("category", "category is missing")
	}
	if _, err := ParseCategory(string(r.Category)); err != nil {
		return r, invalid("category", "%v", err)
	}
	if r.Kind == "" {
		return r, invalid("kind", "kind is missing")
	}
	if _, err := ParseKind(string(r.Kind)); err != nil {
		return r, invalid("kind", "%v", err)
	}
	if !r.Amount.IsPositive() {
		return r, invalid("amount", "amount must be positive, got %s", r.Amount)
	}
	if r.Status == "" {
		r.Status = Completed
	}
	if _, err := ParseStatus(string(r.Status)); err != nil {
		return r, invalid("status", "%v", err)
	}
	return r, nil
}
