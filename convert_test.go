package finboard

import (
	"errors"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func testRates() Rates {
	return Rates{
		Base: "USD",
		Table: map[string]decimal.Decimal{
			"EUR": decimal.NewFromFloat(0.92),
			"GBP": decimal.NewFromFloat(0.79),
			"JPY": decimal.NewFromFloat(148.50),
		},
	}
}

func TestConvert(t *testing.T) {
	rates := testRates()

	got, err := rates.Convert(USD(100), "EUR")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !got.Equal(EUR(92)) {
		t.Errorf("100 USD = %v, want 92 EUR", got)
	}

	// Through the base: EUR -> USD -> GBP.
	got, err = rates.Convert(EUR(92), "GBP")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !got.Equal(M(79, "GBP")) {
		t.Errorf("92 EUR = %v, want 79 GBP", got)
	}

	// Identity conversion.
	got, err = rates.Convert(EUR(42), "EUR")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !got.Equal(EUR(42)) {
		t.Errorf("identity conversion = %v, want 42 EUR", got)
	}
}

func TestConvertUnknownCurrency(t *testing.T) {
	rates := testRates()

	if _, err := rates.Convert(USD(100), "XXX"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown target error = %v, want ErrNotFound", err)
	}
	if _, err := rates.Convert(M(100, "XXX"), "USD"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown source error = %v, want ErrNotFound", err)
	}
}

func TestCurrencies(t *testing.T) {
	got := testRates().Currencies()
	if got[0] != "USD" {
		t.Errorf("base must come first, got %q", got[0])
	}
	for _, cur := range []string{"EUR", "GBP", "JPY"} {
		if !slices.Contains(got, cur) {
			t.Errorf("missing currency %q", cur)
		}
	}
}

func TestParseRatesDocument(t *testing.T) {
	doc := []byte(`{"base": "USD", "rates": {"EUR": 0.92, "GBP": 0.79}}`)
	rates, err := ParseRatesDocument(doc)
	if err != nil {
		t.Fatalf("ParseRatesDocument() error = %v", err)
	}
	if rates.Base != "USD" {
		t.Errorf("base = %q, want USD", rates.Base)
	}
	r, err := rates.Rate("EUR")
	if err != nil {
		t.Fatalf("Rate() error = %v", err)
	}
	if !r.Equal(decimal.NewFromFloat(0.92)) {
		t.Errorf("EUR rate = %v, want 0.92", r)
	}
}

func TestParseRatesDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", "nope"},
		{"missing base", `{"rates": {"EUR": 0.92}}`},
		{"missing rates", `{"base": "USD"}`},
		{"base not a string", `{"base": 1, "rates": {}}`},
		{"rate not a number", `{"base": "USD", "rates": {"EUR": "a lot"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRatesDocument([]byte(tt.doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
