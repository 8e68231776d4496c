package compose

import (
	"fmt"
	"math"
	"strings"
)

// groupThousands inserts comma separators into the integer part of a
// formatted number.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}

// formatMoney renders a table money cell: "$ 12,345".
func formatMoney(v float64) string {
	return "$ " + groupThousands(fmt.Sprintf("%.0f", v))
}

// formatAmount renders a headline money figure: "$12,345".
func formatAmount(v float64) string {
	return "$" + groupThousands(fmt.Sprintf("%.0f", v))
}

// formatPercent renders a growth or mix cell: "12.3%".
func formatPercent(v float64) string {
	return groupThousands(fmt.Sprintf("%.1f", v)) + "%"
}

// formatDecimal renders a two-decimal stat: "2.67".
func formatDecimal(v float64) string {
	return groupThousands(fmt.Sprintf("%.2f", v))
}

// sign buckets a value for coloring, rounding to two decimals first so that
// near-zero growth reads as flat.
func sign(v float64) int {
	r := math.Round(v*100) / 100
	switch {
	case r > 0:
		return 1
	case r < 0:
		return -1
	default:
		return 0
	}
}
