package render

import (
	"fmt"

	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// formatCurrency converts an exact decimal into a locale-correct
// symbol+amount string for the given ISO 4217 code. The amount is rounded
// half-up to the currency's minor unit at formatting time only; accumulation
// upstream stays unrounded. An unknown code is a fatal error per the error
// policy.
func formatCurrency(amount decimal.Decimal, code string) (string, error) {
	locale, ok := accounting.LocaleInfo[code]
	if !ok {
		return "", fmt.Errorf("unknown currency code %q", code)
	}

	format := "%s%v"
	if !locale.Pre {
		format = "%v%s"
	}

	ac := accounting.Accounting{
		Symbol:    locale.ComSymbol,
		Precision: locale.FractionLength,
		Thousand:  locale.ThouSep,
		Decimal:   locale.DecSep,
		Format:    format,
	}
	return ac.FormatMoneyDecimal(amount.Round(int32(locale.FractionLength))), nil
}
