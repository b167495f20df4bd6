package model

// Validate runs sanity checks over the invoice. The model itself is
// permissive by design, so these are advisory: errors flag fields a rendered
// document would be useless without, warnings flag values that are legal but
// usually mistakes.
func (inv *Invoice) Validate() (errors []string, warnings []string) {
	if inv.Number == "" {
		warnings = append(warnings, "missing invoice number")
	}
	if inv.BillTo == "" {
		warnings = append(warnings, "missing bill-to party, the placeholder default will render")
	}
	if len(inv.LineItems) == 0 {
		errors = append(errors, "invoice has no line items")
	}

	for i, item := range inv.LineItems {
		if item.Description == "" {
			warnings = append(warnings, NewValidationError("LineItems", i, "line item has no description").Error())
		}
	}

	if inv.Total().IsZero() && len(inv.LineItems) > 0 {
		warnings = append(warnings, "total amount is zero")
	}

	return errors, warnings
}
