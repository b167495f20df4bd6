// Package money is the exact-decimal arithmetic layer. Every monetary field
// in the invoice model is set through Normalize so that blank, absent, and
// malformed inputs collapse to zero identically everywhere.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// Hundred is used for percentage math (rate / 100)
var Hundred = decimal.NewFromInt(100)

// Normalize coerces v into an exact decimal. Accepted inputs: nil, blank or
// numeric strings, ints, floats, decimal.Decimal and *decimal.Decimal.
// Anything absent, blank, or unparseable becomes zero. Callers wanting
// validation must validate before setting.
func Normalize(v any) decimal.Decimal {
	switch value := v.(type) {
	case nil:
		return Zero
	case decimal.Decimal:
		return value
	case *decimal.Decimal:
		if value == nil {
			return Zero
		}
		return *value
	case string:
		s := strings.TrimSpace(value)
		if s == "" {
			return Zero
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return Zero
		}
		return d
	case int:
		return decimal.NewFromInt(int64(value))
	case int32:
		return decimal.NewFromInt(int64(value))
	case int64:
		return decimal.NewFromInt(value)
	case float32:
		return decimal.NewFromFloat32(value)
	case float64:
		return decimal.NewFromFloat(value)
	default:
		return Zero
	}
}

// NormalizeOr behaves like Normalize except that a nil input yields def
// instead of zero. Blank and malformed inputs still collapse to zero.
func NormalizeOr(v any, def decimal.Decimal) decimal.Decimal {
	if v == nil {
		return def
	}
	return Normalize(v)
}

// Percent computes amount * rate / 100 without intermediate rounding.
func Percent(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(Hundred)
}

// Sum adds up a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}
