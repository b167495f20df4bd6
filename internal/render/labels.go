package render

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Every user-facing label goes through a translation lookup keyed by a
// stable id with an embedded default, so the layout code never hard-codes
// language-specific text beyond the defaults below.

var labelBundle = newLabelBundle()

func newLabelBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)

	// Spanish ships alongside the English defaults.
	bundle.MustAddMessages(language.Spanish,
		&i18n.Message{ID: "invoice.bill_to", Other: "Facturar a"},
		&i18n.Message{ID: "invoice.ship_to", Other: "Enviar a"},
		&i18n.Message{ID: "invoice.invoice_no", Other: "Factura #:"},
		&i18n.Message{ID: "invoice.receipt_no", Other: "Recibo #:"},
		&i18n.Message{ID: "invoice.due_date", Other: "Fecha de vencimiento:"},
		&i18n.Message{ID: "invoice.paid_date", Other: "Fecha de pago:"},
		&i18n.Message{ID: "invoice.subtotal", Other: "Subtotal:"},
		&i18n.Message{ID: "invoice.tax", Other: "Impuestos:"},
		&i18n.Message{ID: "invoice.shipping", Other: "Gastos de Envío:"},
		&i18n.Message{ID: "invoice.total", Other: "Total:"},
		&i18n.Message{ID: "invoice.notes", Other: "Notas"},
		&i18n.Message{ID: "line_item.description", Other: "Descripción"},
		&i18n.Message{ID: "line_item.unit_price", Other: "Precio Unitario"},
		&i18n.Message{ID: "line_item.quantity", Other: "Cantidad"},
		&i18n.Message{ID: "line_item.amount", Other: "Importe"},
		&i18n.Message{ID: "status.paid", Other: "PAGADA"},
		&i18n.Message{ID: "status.refunded", Other: "REEMBOLSADA"},
		&i18n.Message{ID: "status.overdue", Other: "VENCIDA"},
	)

	return bundle
}

// labels resolves label ids for one locale.
type labels struct {
	localizer *i18n.Localizer
}

func newLabels(locale string) labels {
	if locale == "" {
		locale = "en"
	}
	return labels{localizer: i18n.NewLocalizer(labelBundle, locale)}
}

// t looks a label up by id, falling back to the embedded default.
func (l labels) t(id, def string) string {
	return l.localizer.MustLocalize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: def},
	})
}
