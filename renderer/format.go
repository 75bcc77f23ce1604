// Package renderer turns aggregator results into display strings and
// markdown reports. Everything here is deterministic given its inputs
// and never mutates them.
package renderer

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/finboard/finboard"
)

// Formatter renders numeric and date values for display in a given
// locale.
type Formatter struct {
	locale locale
}

type locale struct {
	tag      string
	thousand string
	decimal  string
}

var locales = map[string]locale{
	"en": {tag: "en", thousand: ",", decimal: "."},
	"de": {tag: "de", thousand: ".", decimal: ","},
	"fr": {tag: "fr", thousand: " ", decimal: ","},
}

// NewFormatter returns a formatter for the given locale tag ("en",
// "de", "fr"). Unknown tags fall back to "en".
func NewFormatter(tag string) *Formatter {
	loc, ok := locales[tag]
	if !ok {
		loc = locales["en"]
	}
	return &Formatter{locale: loc}
}

// Currency renders a money value with its currency symbol, e.g.
// "$1,234.56". The currency's own formatting rules (symbol, fraction
// digits) come from its ISO definition; the locale only affects
// separators.
func (f *Formatter) Currency(m finboard.Money) string {
	cur := money.GetCurrency(m.Currency())
	if cur == nil {
		cur = money.GetCurrency("USD")
	}
	v := m.AsFloat()
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	digits := f.group(v, cur.Fraction)
	out := strings.Replace(cur.Template, "1", digits, 1)
	return sign + strings.Replace(out, "$", cur.Grapheme, 1)
}

// Percentage renders a value like 67.3 as "67.3%".
func (f *Formatter) Percentage(p finboard.Percent) string {
	return f.group(float64(p), 1) + "%"
}

// PlainNumber renders a number with thousand grouping and no unit.
func (f *Formatter) PlainNumber(v float64) string {
	if v == float64(int64(v)) {
		return f.group(v, 0)
	}
	return f.group(v, 2)
}

// RelativeDate renders a date relative to today: "today", "tomorrow",
// "in 5 days", "3 days ago".
func (f *Formatter) RelativeDate(d, today finboard.Date) string {
	days := d.Sub(today)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days > 0:
		return fmt.Sprintf("in %d days", days)
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}

// group formats v with the locale's separators and a fixed number of
// decimals.
func (f *Formatter) group(v float64, decimals int) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.*f", decimals, v)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(f.locale.thousand)
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteString(f.locale.decimal)
		b.WriteString(fracPart)
	}
	return b.String()
}
