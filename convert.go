package finboard

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Rates is a static exchange-rate table: units of each currency per
// one unit of the base currency (USD in the seed dataset). There is no
// live fetching; the table is seed data.
type Rates struct {
	Base  string
	Table map[string]decimal.Decimal
}

// Rate returns the units of currency per one base unit.
func (r Rates) Rate(currency string) (decimal.Decimal, error) {
	if currency == r.Base {
		return decimal.NewFromInt(1), nil
	}
	rate, ok := r.Table[currency]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("currency %q: %w", currency, ErrNotFound)
	}
	return rate, nil
}

// Convert converts an amount into the target currency, going through
// the base currency when neither side is the base.
func (r Rates) Convert(m Money, to string) (Money, error) {
	if m.Currency() == to {
		return m, nil
	}
	from, err := r.Rate(m.Currency())
	if err != nil {
		return Money{}, err
	}
	target, err := r.Rate(to)
	if err != nil {
		return Money{}, err
	}
	return M(m.Amount().Div(from).Mul(target), to), nil
}

// Currencies lists the currencies the table can convert between,
// including the base.
func (r Rates) Currencies() []string {
	out := make([]string, 0, len(r.Table)+1)
	out = append(out, r.Base)
	for cur := range r.Table {
		if cur != r.Base {
			out = append(out, cur)
		}
	}
	return out
}

// ParseRatesDocument extracts a rate table from a provider-shaped JSON
// document of the form {"base": "USD", "rates": {"EUR": 0.92, ...}}.
// Providers disagree on envelope details, so the fields are located by
// jsonpath rather than a rigid struct.
func ParseRatesDocument(doc []byte) (Rates, error) {
	var jobj any
	if err := json.Unmarshal(doc, &jobj); err != nil {
		return Rates{}, fmt.Errorf("invalid rates document: %w", err)
	}

	jbase, err := jsonpath.Get("$.base", jobj)
	if err != nil {
		return Rates{}, fmt.Errorf("rates document has no base currency: %w", err)
	}
	base, ok := jbase.(string)
	if !ok {
		return Rates{}, fmt.Errorf("rates document base is not a string: %v", jbase)
	}

	jrates, err := jsonpath.Get("$.rates", jobj)
	if err != nil {
		return Rates{}, fmt.Errorf("rates document has no rates: %w", err)
	}
	jmap, ok := jrates.(map[string]any)
	if !ok {
		return Rates{}, fmt.Errorf("rates document rates is not an object: %v", jrates)
	}

	table := make(map[string]decimal.Decimal, len(jmap))
	for cur, jval := range jmap {
		val, ok := jval.(float64)
		if !ok {
			return Rates{}, fmt.Errorf("rate for %q is not a number: %v", cur, jval)
		}
		table[cur] = decimal.NewFromFloat(val)
	}
	return Rates{Base: base, Table: table}, nil
}
