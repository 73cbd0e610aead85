package util

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// 金额上限：一千万元
var maxAmount = decimal.NewFromInt(10_000_000)

var centFactor = decimal.NewFromInt(100)

// AmountToCent 把金额（元）换算成分。
// 要求 > 0、不超过上限、小数位不超过两位。
func AmountToCent(d decimal.Decimal) (int64, error) {
	if !d.IsPositive() {
		return 0, fmt.Errorf("amount must be positive, got %s", d)
	}
	if d.GreaterThanOrEqual(maxAmount) {
		return 0, fmt.Errorf("amount too large, got %s", d)
	}
	if d.Exponent() < -2 {
		return 0, fmt.Errorf("amount has more than two decimal places: %s", d)
	}
	return d.Mul(centFactor).IntPart(), nil
}

// NonNegativeToCent 同 AmountToCent，但允许 0（比如目标的已存金额）。
func NonNegativeToCent(d decimal.Decimal) (int64, error) {
	if d.IsZero() {
		return 0, nil
	}
	return AmountToCent(d)
}

// FormatCent 把分转成元的字符串，保留两位小数。
func FormatCent(cent int64) string {
	return decimal.NewFromInt(cent).Div(centFactor).StringFixed(2)
}
