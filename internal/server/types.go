package server

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/rezonia/invoice-maker/internal/model"
)

// LineItemRequest is one line item in an invoice document. Quantity, price
// and predefined_amount accept JSON numbers or strings; strings preserve
// exact decimal values, and blank or malformed values coerce to zero like
// everywhere else in the model.
type LineItemRequest struct {
	Description      string `json:"description"`
	Quantity         any    `json:"quantity,omitempty"`
	Price            any    `json:"price,omitempty"`
	PredefinedAmount any    `json:"predefined_amount,omitempty"`
	DisplayQuantity  string `json:"display_quantity,omitempty"`
	DisplayPrice     string `json:"display_price,omitempty"`
}

// DetailsRequest accepts invoice details as either an ordered list of
// [key, value] pairs or an object mapping. The pair form keeps its order;
// the object form is iterated in sorted key order.
type DetailsRequest []model.Detail

func (d *DetailsRequest) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}

	if trimmed[0] == '{' {
		var m map[string]string
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return err
		}
		*d = DetailsRequest(model.DetailsFromMap(m))
		return nil
	}

	var pairs [][]string
	if err := json.Unmarshal(trimmed, &pairs); err != nil {
		return err
	}
	details := make(DetailsRequest, 0, len(pairs))
	for _, pair := range pairs {
		var detail model.Detail
		if len(pair) > 0 {
			detail.Key = pair[0]
		}
		if len(pair) > 1 {
			detail.Value = pair[1]
		}
		details = append(details, detail)
	}
	*d = details
	return nil
}

// InvoiceRequest is the JSON invoice document accepted by the render,
// totals, and validate endpoints. Every field is optional.
type InvoiceRequest struct {
	Number               string            `json:"invoice_number,omitempty"`
	BillTo               string            `json:"bill_to,omitempty"`
	ShipTo               string            `json:"ship_to,omitempty"`
	Notes                string            `json:"notes,omitempty"`
	LineItems            []LineItemRequest `json:"line_items"`
	TaxRate              any               `json:"tax_rate,omitempty"`
	TaxDescription       string            `json:"tax_description,omitempty"`
	ShippingRate         any               `json:"shipping_rate,omitempty"`
	ShippingDescription  string            `json:"shipping_description,omitempty"`
	RetentionRate        any               `json:"retention_rate,omitempty"`
	RetentionDescription string            `json:"retention_description,omitempty"`
	Date                 *time.Time        `json:"invoice_date,omitempty"`
	DueAt                *time.Time        `json:"due_at,omitempty"`
	PaidAt               *time.Time        `json:"paid_at,omitempty"`
	RefundedAt           *time.Time        `json:"refunded_at,omitempty"`
	Currency             string            `json:"currency,omitempty"`
	Details              DetailsRequest    `json:"invoice_details,omitempty"`
	QRCode               string            `json:"qr_code,omitempty"`
	PageSize             string            `json:"page_size,omitempty"`
	Logo                 string            `json:"invoice_logo,omitempty"`
}

// ToInvoice converts the request document into the financial model.
func (r *InvoiceRequest) ToInvoice() *model.Invoice {
	items := make([]model.LineItem, 0, len(r.LineItems))
	for _, item := range r.LineItems {
		items = append(items, model.NewLineItem(model.LineItemOpts{
			Description:      item.Description,
			Quantity:         item.Quantity,
			Price:            item.Price,
			PredefinedAmount: item.PredefinedAmount,
			DisplayQuantity:  item.DisplayQuantity,
			DisplayPrice:     item.DisplayPrice,
		}))
	}

	return model.NewInvoice(model.InvoiceOpts{
		Number:               r.Number,
		BillTo:               r.BillTo,
		ShipTo:               r.ShipTo,
		Notes:                r.Notes,
		LineItems:            items,
		TaxRate:              r.TaxRate,
		TaxDescription:       r.TaxDescription,
		ShippingRate:         r.ShippingRate,
		ShippingDescription:  r.ShippingDescription,
		RetentionRate:        r.RetentionRate,
		RetentionDescription: r.RetentionDescription,
		Date:                 r.Date,
		DueAt:                r.DueAt,
		PaidAt:               r.PaidAt,
		RefundedAt:           r.RefundedAt,
		Currency:             r.Currency,
		Details:              model.Details(r.Details),
		QRCode:               r.QRCode,
		PageSize:             r.PageSize,
		Logo:                 r.Logo,
	})
}

// TotalsResponse is the response for the totals endpoint. Amounts are plain
// decimal strings to keep exact values intact across the wire.
type TotalsResponse struct {
	Subtotal  string `json:"subtotal"`
	Tax       string `json:"tax"`
	Shipping  string `json:"shipping"`
	Retention string `json:"retention"`
	Total     string `json:"total"`
	Paid      bool   `json:"paid"`
	Refunded  bool   `json:"refunded"`
	Overdue   bool   `json:"overdue"`
}

// ValidationResponse is the response for the validate endpoint
type ValidationResponse struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
