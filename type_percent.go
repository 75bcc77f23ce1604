package finboard

import "fmt"

// Percent is a percentage value where 50 means 50%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// Clamp limits p to the range [0, hi]. Overfunded goals and overspent
// budgets can exceed 100; display bars clamp them.
func (p Percent) Clamp(hi Percent) Percent {
	if p < 0 {
		return 0
	}
	if p > hi {
		return hi
	}
	return p
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
