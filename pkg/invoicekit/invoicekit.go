// Package invoicekit provides the public API for building invoices and
// rendering them as PDF documents.
//
// Example usage:
//
//	inv := invoicekit.NewInvoice(invoicekit.InvoiceOpts{
//	    Number:  "12",
//	    BillTo:  "Alan Johnson",
//	    TaxRate: 10.0,
//	})
//	inv.AddLineItem(invoicekit.LineItemOpts{Description: "Pants", Price: 20, Quantity: 5})
//
//	renderer := invoicekit.NewRenderer(invoicekit.DefaultConfig())
//	if err := renderer.RenderToFile(inv, "invoice.pdf"); err != nil {
//	    log.Fatal(err)
//	}
package invoicekit

import (
	"github.com/rezonia/invoice-maker/internal/model"
	"github.com/rezonia/invoice-maker/internal/render"
)

// Re-export core types for public API
type (
	Invoice      = model.Invoice
	InvoiceOpts  = model.InvoiceOpts
	LineItem     = model.LineItem
	LineItemOpts = model.LineItemOpts
	Detail       = model.Detail
	Details      = model.Details

	Renderer = render.Renderer
	Config   = render.Config
	Logo     = render.Logo
)

// Re-export error types
type (
	RenderError     = model.RenderError
	ValidationError = model.ValidationError
)

// Re-export constructors
var (
	NewInvoice     = model.NewInvoice
	NewLineItem    = model.NewLineItem
	DetailsFromMap = model.DetailsFromMap
	NewRenderer    = render.NewRenderer
	DefaultConfig  = render.DefaultConfig
)
