// Package rounding implements the user-visible rounding rules: percentages are
// whole numbers rounded half up, averages keep one decimal rounded half up,
// and a zero denominator never produces NaN or infinity.
package rounding

import (
	"math"

	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

// Percent returns round(num/den*100), or 0 when den is 0.
func Percent(num, den int) int {
	if den == 0 {
		return 0
	}
	if num >= 0 && den > 0 {
		return (200*num + den) / (2 * den)
	}
	return int(math.Floor(float64(num)*100/float64(den) + 0.5))
}

// PercentDecimal is Percent for money values.
func PercentDecimal(num, den decimal.Decimal) int {
	if den.IsZero() {
		return 0
	}
	return int(num.Mul(decimal.NewFromInt(100)).Div(den).Add(half).Floor().IntPart())
}

// Average1 returns the mean of sum over n rounded to one decimal, nil when n is 0.
func Average1(sum, n int) *float64 {
	if n == 0 {
		return nil
	}
	var tenths int
	if sum >= 0 && n > 0 {
		tenths = (20*sum + n) / (2 * n)
	} else {
		tenths = int(math.Floor(float64(sum)*10/float64(n) + 0.5))
	}
	avg := float64(tenths) / 10
	return &avg
}
