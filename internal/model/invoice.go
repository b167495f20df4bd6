// Package model holds the invoice financial model: line items, rate
// settings, derived totals, and status predicates. All monetary math routes
// through exact decimals; nothing here touches binary floating point.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-maker/internal/money"
)

// DefaultBillTo is a caller-facing warning device, not production behavior.
// It shows up on rendered invoices whose callers never set a bill-to party.
const DefaultBillTo = "Goofy McGoofison\nYour Invoice Doesn't\nHave Its Own BillTo Field"

// InvoiceOpts is the field bundle used to build an Invoice. Every field is
// optional. Rate fields accept any representation money.Normalize accepts
// and default to zero, so an invoice with no tax/shipping/retention
// configuration is fully valid and totals to the bare subtotal.
type InvoiceOpts struct {
	Number string
	BillTo string
	ShipTo string

	// Notes may contain limited inline markup (<b>, <i>, <u>).
	Notes string

	LineItems []LineItem

	TaxRate        any
	TaxDescription string

	// ShippingRate is a flat amount, not a percentage.
	ShippingRate        any
	ShippingDescription string

	RetentionRate        any
	RetentionDescription string

	Date       *time.Time
	DueAt      *time.Time
	PaidAt     *time.Time
	RefundedAt *time.Time

	// Currency is an ISO 4217 code; when empty the renderer resolves it from
	// its defaults.
	Currency string

	Details Details

	QRCode string

	// Rendering overrides; empty values fall back to the renderer defaults.
	PageSize string
	Logo     string
}

// Invoice aggregates line items and rate settings into totals and status
// predicates. Construct with NewInvoice; line items and rates may be mutated
// afterward via AddLineItem, the Set*Rate methods, or the LineItems slice.
type Invoice struct {
	Number string
	BillTo string
	ShipTo string
	Notes  string

	LineItems []LineItem

	TaxRate        decimal.Decimal
	TaxDescription string

	ShippingRate        decimal.Decimal
	ShippingDescription string

	RetentionRate        decimal.Decimal
	RetentionDescription string

	Date       *time.Time
	DueAt      *time.Time
	PaidAt     *time.Time
	RefundedAt *time.Time

	Currency string
	Details  Details
	QRCode   string
	PageSize string
	Logo     string
}

// NewInvoice builds an Invoice from an opts bundle.
func NewInvoice(opts InvoiceOpts) *Invoice {
	inv := &Invoice{
		Number:               opts.Number,
		BillTo:               opts.BillTo,
		ShipTo:               opts.ShipTo,
		Notes:                opts.Notes,
		LineItems:            opts.LineItems,
		TaxDescription:       opts.TaxDescription,
		ShippingDescription:  opts.ShippingDescription,
		RetentionDescription: opts.RetentionDescription,
		Date:                 opts.Date,
		DueAt:                opts.DueAt,
		PaidAt:               opts.PaidAt,
		RefundedAt:           opts.RefundedAt,
		Currency:             opts.Currency,
		Details:              opts.Details,
		QRCode:               opts.QRCode,
		PageSize:             opts.PageSize,
		Logo:                 opts.Logo,
	}
	inv.SetTaxRate(opts.TaxRate)
	inv.SetShippingRate(opts.ShippingRate)
	inv.SetRetentionRate(opts.RetentionRate)
	return inv
}

// SetTaxRate sets the tax percentage, coercing blank/absent input to zero.
func (inv *Invoice) SetTaxRate(v any) {
	inv.TaxRate = money.Normalize(v)
}

// SetShippingRate sets the flat shipping amount, coercing blank/absent input
// to zero.
func (inv *Invoice) SetShippingRate(v any) {
	inv.ShippingRate = money.Normalize(v)
}

// SetRetentionRate sets the retention percentage (e.g. a withholding tax),
// coercing blank/absent input to zero.
func (inv *Invoice) SetRetentionRate(v any) {
	inv.RetentionRate = money.Normalize(v)
}

// AddLineItem appends a new line item built from the same permissive field
// coercion as NewLineItem.
func (inv *Invoice) AddLineItem(opts LineItemOpts) {
	inv.LineItems = append(inv.LineItems, NewLineItem(opts))
}

// Subtotal is the exact sum of every line item's amount.
func (inv *Invoice) Subtotal() decimal.Decimal {
	amounts := make([]decimal.Decimal, len(inv.LineItems))
	for i, item := range inv.LineItems {
		amounts[i] = item.Amount()
	}
	return money.Sum(amounts)
}

// Tax is subtotal * taxRate / 100. It applies uniformly regardless of sign:
// a negative subtotal yields negative tax.
func (inv *Invoice) Tax() decimal.Decimal {
	return money.Percent(inv.Subtotal(), inv.TaxRate)
}

// Shipping passes the flat shipping rate through unchanged.
func (inv *Invoice) Shipping() decimal.Decimal {
	return inv.ShippingRate
}

// Retention is subtotal * retentionRate / 100, withheld from the total.
func (inv *Invoice) Retention() decimal.Decimal {
	return money.Percent(inv.Subtotal(), inv.RetentionRate)
}

// Total is subtotal + tax + shipping - retention.
func (inv *Invoice) Total() decimal.Decimal {
	return inv.Subtotal().Add(inv.Tax()).Add(inv.Shipping()).Sub(inv.Retention())
}

// Paid reports whether a paid date is set.
func (inv *Invoice) Paid() bool {
	return inv.PaidAt != nil
}

// Refunded reports whether a refunded date is set.
func (inv *Invoice) Refunded() bool {
	return inv.RefundedAt != nil
}

// Overdue reports whether the due date is strictly in the past and the
// invoice is unpaid.
func (inv *Invoice) Overdue() bool {
	return inv.OverdueAt(time.Now())
}

// OverdueAt is Overdue against an injected clock. A due value whose clock
// reads exactly midnight is treated as a calendar date and compared by date;
// any other due value is compared as an instant.
func (inv *Invoice) OverdueAt(now time.Time) bool {
	if inv.DueAt == nil || inv.PaidAt != nil {
		return false
	}
	due := *inv.DueAt
	if isDateOnly(due) {
		local := now.In(due.Location())
		today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, due.Location())
		return due.Before(today)
	}
	return due.Before(now)
}

// EachDetail iterates the invoice details as (key, value) pairs in stable
// order. Use DetailsFromMap to supply an unordered mapping.
func (inv *Invoice) EachDetail(fn func(key, value string)) {
	for _, d := range inv.Details {
		fn(d.Key, d.Value)
	}
}

func isDateOnly(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}
