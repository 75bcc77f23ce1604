package finboard

import (
	"fmt"
	"strings"
)

// InvestmentType is the asset class of a holding.
type InvestmentType string

const (
	Stock      InvestmentType = "stock"
	Bond       InvestmentType = "bond"
	CryptoCoin InvestmentType = "crypto"
	ETF        InvestmentType = "etf"
	RealEstate InvestmentType = "real_estate"
)

var InvestmentTypes = []InvestmentType{Stock, Bond, CryptoCoin, ETF, RealEstate}

func ParseInvestmentType(s string) (InvestmentType, error) {
	for _, t := range InvestmentTypes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown investment type %q", s)
}

// Investment is a single holding in the portfolio.
type Investment struct {
	ID        string
	Name      string
	Symbol    string
	Type      InvestmentType
	Value     Money    // current market value, >= 0
	Change24h Percent  // signed 24h change
	Quantity  Quantity // > 0
}

// TotalInvestmentValue sums the market value of all holdings.
func TotalInvestmentValue(investments []Investment, currency string) Money {
	total := M(0, currency)
	for _, inv := range investments {
		total = total.Add(inv.Value)
	}
	return total
}

// WeightedChange24h returns the portfolio 24h change, each holding's
// change weighted by its share of the total value. Empty input gives
// zero.
func WeightedChange24h(investments []Investment) Percent {
	var totalValue, weighted float64
	for _, inv := range investments {
		totalValue += inv.Value.AsFloat()
	}
	if totalValue == 0 {
		return 0
	}
	for _, inv := range investments {
		weighted += float64(inv.Change24h) * inv.Value.AsFloat() / totalValue
	}
	return Percent(weighted)
}

// Allocation is the share of the portfolio held in one asset class.
type Allocation struct {
	Type    InvestmentType
	Value   Money
	Percent Percent
}

// AllocationByType groups holdings per asset class. Classes with no
// holdings are omitted; the result follows the canonical type order.
func AllocationByType(investments []Investment, currency string) []Allocation {
	total := TotalInvestmentValue(investments, currency)
	byType := make(map[InvestmentType]Money)
	for _, inv := range investments {
		v, ok := byType[inv.Type]
		if !ok {
			v = M(0, currency)
		}
		byType[inv.Type] = v.Add(inv.Value)
	}

	out := make([]Allocation, 0, len(byType))
	for _, t := range InvestmentTypes {
		if v, ok := byType[t]; ok {
			out = append(out, Allocation{Type: t, Value: v, Percent: v.PercentOf(total)})
		}
	}
	return out
}
