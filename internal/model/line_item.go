package model

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-maker/internal/money"
)

// LineItemOpts is the field bundle used to build a LineItem. Quantity, Price
// and PredefinedAmount accept any representation money.Normalize accepts;
// malformed values coerce to zero rather than failing, so callers wanting
// validation must do it themselves.
type LineItemOpts struct {
	Description string

	// Quantity defaults to 1 when nil, Price to 0.
	Quantity any
	Price    any

	// PredefinedAmount, when set, replaces quantity x price for this item.
	PredefinedAmount any

	// Presentation-only overrides for the rendered table. They never affect
	// arithmetic.
	DisplayQuantity string
	DisplayPrice    string
}

// LineItem is one purchasable entry on an invoice: quantity x unit price, or
// a fixed predefined amount.
type LineItem struct {
	Description      string
	Quantity         decimal.Decimal
	Price            decimal.Decimal
	PredefinedAmount *decimal.Decimal
	DisplayQuantity  string
	DisplayPrice     string
}

// NewLineItem builds a LineItem from an opts bundle.
func NewLineItem(opts LineItemOpts) LineItem {
	item := LineItem{
		Description:     opts.Description,
		DisplayQuantity: opts.DisplayQuantity,
		DisplayPrice:    opts.DisplayPrice,
	}

	if opts.PredefinedAmount != nil {
		amount := money.Normalize(opts.PredefinedAmount)
		item.PredefinedAmount = &amount
		return item
	}

	item.Quantity = money.NormalizeOr(opts.Quantity, decimal.NewFromInt(1))
	item.Price = money.Normalize(opts.Price)
	return item
}

// Amount is the line total: the predefined amount if one is set, otherwise
// quantity x price.
func (li LineItem) Amount() decimal.Decimal {
	if li.PredefinedAmount != nil {
		return *li.PredefinedAmount
	}
	return li.Quantity.Mul(li.Price)
}
