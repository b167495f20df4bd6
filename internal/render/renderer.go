// Package render turns an invoice into a paginated PDF document: an ordered
// sequence of layout blocks with a flowing vertical cursor. The heavy lifting
// (drawing, fonts, page serialization) is gofpdf's job; this package owns
// block order, positioning, and formatting.
package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/rezonia/invoice-maker/internal/model"
)

const (
	pageMargin = 36.0

	baseFontSize  = 10.0
	titleFontSize = 12.0
	stampFontSize = 25.0

	lineHeight = 12.0
	cellPad    = 5.0

	// Party address blocks are a fixed 200pt wide, QR symbols a fixed 100pt.
	partyBlockWidth = 200.0
	qrDisplayWidth  = 100.0
)

// Renderer renders invoices against one defaults provider. It holds no
// per-render state, so a single Renderer is safe for concurrent use as long
// as its Config is not mutated mid-render.
type Renderer struct {
	cfg *Config
	lbl labels
}

// NewRenderer creates a renderer over the given defaults. A nil cfg uses
// DefaultConfig.
func NewRenderer(cfg *Config) *Renderer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Renderer{cfg: cfg, lbl: newLabels(cfg.Locale)}
}

// Render renders the invoice into an in-memory PDF.
func (r *Renderer) Render(inv *model.Invoice) ([]byte, error) {
	pdf, err := r.document(inv)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, model.NewRenderError("output", "could not serialize document", err)
	}
	return buf.Bytes(), nil
}

// RenderToFile renders the invoice and writes the PDF to path. The document
// is built fully in memory first, so a failed render never leaves a partial
// file behind.
func (r *Renderer) RenderToFile(inv *model.Invoice, path string) error {
	data, err := r.Render(inv)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return model.NewRenderError("output", "could not write document file", err)
	}
	return nil
}

// document walks the layout blocks in their fixed order. Each block leaves
// the vertical cursor directly below itself so the next block never overlaps.
func (r *Renderer) document(inv *model.Invoice) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("P", "pt", stringOr(inv.PageSize, r.cfg.PageSize), "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", baseFontSize)

	r.stamp(inv, pdf)
	if err := r.companyBanner(inv, pdf); err != nil {
		return nil, err
	}
	r.billToShipTo(inv, pdf)
	r.invoiceDetails(inv, pdf)
	if err := r.lineItemsTable(inv, pdf); err != nil {
		return nil, err
	}
	if err := r.totalsLines(inv, pdf); err != nil {
		return nil, err
	}
	if err := r.notes(inv, pdf); err != nil {
		return nil, err
	}
	// The standalone QR block only exists when no notes were rendered;
	// otherwise it already went out inside the notes section. Asymmetric on
	// purpose: it reproduces the reference layout exactly.
	if inv.Notes == "" {
		if err := r.qrCode(inv, pdf); err != nil {
			return nil, err
		}
	}
	r.pageNumbers(pdf)

	if pdf.Err() {
		return nil, model.NewRenderError("document", "drawing failed", pdf.Error())
	}
	return pdf, nil
}

// stamp draws a large diagonal status label over the header region. Refunded
// wins over paid, paid over overdue.
func (r *Renderer) stamp(inv *model.Invoice, pdf *gofpdf.Fpdf) {
	var stamp string
	switch {
	case inv.Refunded():
		stamp = r.lbl.t("status.refunded", "REFUNDED")
	case inv.Paid():
		stamp = r.lbl.t("status.paid", "PAID")
	case inv.Overdue():
		stamp = r.lbl.t("status.overdue", "OVERDUE")
	}
	if stamp == "" {
		return
	}

	pageW, _ := pdf.GetPageSize()
	centerX := pageW / 2
	centerY := pageMargin + 50

	pdf.SetFont("Helvetica", "B", stampFontSize)
	pdf.SetTextColor(204, 0, 0)
	pdf.TransformBegin()
	pdf.TransformRotate(15, centerX, centerY)
	pdf.Text(centerX-pdf.GetStringWidth(stamp)/2, centerY, stamp)
	pdf.TransformEnd()
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", baseFontSize)
}

// companyBanner draws the logo top-left and the company block top-right,
// then moves the cursor below the taller of the two.
func (r *Renderer) companyBanner(inv *model.Invoice, pdf *gofpdf.Fpdf) error {
	contentW := r.contentWidth(pdf)

	logoHeight := 0.0
	logo := r.logoFor(inv)
	if logo.Path != "" {
		h, err := r.drawLogo(pdf, logo, pageMargin, pageMargin)
		if err != nil {
			return model.NewRenderError("banner", "could not draw logo", err)
		}
		logoHeight = h
	}

	pdf.SetXY(pageMargin, pageMargin)
	pdf.SetFont("Helvetica", "B", titleFontSize)
	pdf.CellFormat(contentW, lineHeight+2, strings.TrimSpace(r.cfg.CompanyName), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", baseFontSize)
	for _, line := range strings.Split(r.cfg.CompanyDetails, "\n") {
		pdf.CellFormat(contentW, lineHeight, strings.TrimSpace(line), "", 1, "R", false, 0, "")
	}

	bottom := pdf.GetY()
	if below := pageMargin + logoHeight; below > bottom {
		bottom = below
	}
	pdf.SetY(bottom + 20)
	return nil
}

// drawLogo places the logo at (x, y) and reports its drawn height. The file
// extension selects vector vs raster handling.
func (r *Renderer) drawLogo(pdf *gofpdf.Fpdf, logo Logo, x, y float64) (float64, error) {
	if filepath.Ext(logo.Path) == ".svg" {
		sig, err := gofpdf.SVGBasicFileParse(logo.Path)
		if err != nil {
			return 0, err
		}
		scale := 1.0
		if logo.Width > 0 && sig.Wd > 0 {
			scale = logo.Width / sig.Wd
		}
		pdf.SetXY(x, y)
		pdf.SVGBasicWrite(&sig, scale)
		return sig.Ht * scale, nil
	}

	opts := gofpdf.ImageOptions{ReadDpi: true}
	info := pdf.RegisterImageOptions(logo.Path, opts)
	if pdf.Err() {
		err := pdf.Error()
		pdf.ClearError()
		return 0, err
	}
	pdf.ImageOptions(logo.Path, x, y, logo.Width, logo.Height, false, opts, 0, "")

	if logo.Height > 0 {
		return logo.Height, nil
	}
	naturalW, naturalH := info.Extent()
	if logo.Width > 0 && naturalW > 0 {
		return naturalH * logo.Width / naturalW, nil
	}
	return naturalH, nil
}

// billToShipTo draws the bill-to block on the left and, when present, the
// ship-to block on the right, then moves the cursor below the lower one.
func (r *Renderer) billToShipTo(inv *model.Invoice, pdf *gofpdf.Fpdf) {
	pageW, _ := pdf.GetPageSize()
	top := pdf.GetY()

	billTo := inv.BillTo
	if billTo == "" {
		billTo = model.DefaultBillTo
	}
	pdf.SetXY(pageMargin, top)
	pdf.SetFont("Helvetica", "B", baseFontSize)
	pdf.CellFormat(partyBlockWidth, lineHeight+2, r.lbl.t("invoice.bill_to", "Bill To"), "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", baseFontSize)
	pdf.MultiCell(partyBlockWidth, lineHeight, billTo, "", "L", false)
	bottom := pdf.GetY()

	if inv.ShipTo != "" {
		pdf.SetXY(pageW-pageMargin-partyBlockWidth, top)
		pdf.SetFont("Helvetica", "B", baseFontSize)
		pdf.CellFormat(partyBlockWidth, lineHeight+2, r.lbl.t("invoice.ship_to", "Ship To"), "", 2, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", baseFontSize)
		pdf.SetX(pageW - pageMargin - partyBlockWidth)
		pdf.MultiCell(partyBlockWidth, lineHeight, inv.ShipTo, "", "L", false)
		if pdf.GetY() > bottom {
			bottom = pdf.GetY()
		}
	}

	pdf.SetY(bottom + 20)
}

// invoiceDetails draws the optional detail rows in their fixed order:
// invoice/receipt number, due date, paid date, then caller-supplied pairs.
func (r *Renderer) invoiceDetails(inv *model.Invoice, pdf *gofpdf.Fpdf) {
	var rows []model.Detail

	if inv.Number != "" {
		label := r.lbl.t("invoice.invoice_no", "Invoice #:")
		if inv.Paid() {
			label = r.lbl.t("invoice.receipt_no", "Receipt #:")
		}
		rows = append(rows, model.Detail{Key: label, Value: inv.Number})
	}
	if inv.DueAt != nil {
		rows = append(rows, model.Detail{
			Key:   r.lbl.t("invoice.due_date", "Due Date:"),
			Value: inv.DueAt.Format(r.cfg.DateFormat),
		})
	}
	if inv.PaidAt != nil {
		rows = append(rows, model.Detail{
			Key:   r.lbl.t("invoice.paid_date", "Paid Date:"),
			Value: inv.PaidAt.Format(r.cfg.DateFormat),
		})
	}
	inv.EachDetail(func(key, value string) {
		rows = append(rows, model.Detail{Key: key, Value: value})
	})

	if len(rows) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", baseFontSize)
	labelW, valueW := 0.0, 0.0
	for _, row := range rows {
		if w := pdf.GetStringWidth(row.Key); w > labelW {
			labelW = w
		}
		if w := pdf.GetStringWidth(row.Value); w > valueW {
			valueW = w
		}
	}
	labelW += 10
	valueW += 10

	for _, row := range rows {
		pdf.SetX(pageMargin)
		pdf.CellFormat(labelW, lineHeight+2, row.Key, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, lineHeight+2, row.Value, "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", baseFontSize)
}

// lineItemsTable draws the header row and one row per line item. Column
// widths are a two-pass layout: the three numeric columns take their natural
// width first, the description column gets whatever page width is left.
func (r *Renderer) lineItemsTable(inv *model.Invoice, pdf *gofpdf.Fpdf) error {
	currency := r.currencyFor(inv)
	contentW := r.contentWidth(pdf)
	_, pageH := pdf.GetPageSize()

	type itemRow struct {
		desc, price, qty, amount string
	}

	header := itemRow{
		desc:   r.lbl.t("line_item.description", "Description"),
		price:  r.lbl.t("line_item.unit_price", "Unit Price"),
		qty:    r.lbl.t("line_item.quantity", "Quantity"),
		amount: r.lbl.t("line_item.amount", "Amount"),
	}

	rows := make([]itemRow, 0, len(inv.LineItems))
	for _, item := range inv.LineItems {
		amount, err := formatCurrency(item.Amount(), currency)
		if err != nil {
			return model.NewRenderError("line_items", "could not format amount", err)
		}

		row := itemRow{desc: item.Description, amount: amount}
		if item.PredefinedAmount == nil {
			row.price = item.DisplayPrice
			if row.price == "" {
				if row.price, err = formatCurrency(item.Price, currency); err != nil {
					return model.NewRenderError("line_items", "could not format unit price", err)
				}
			}
			row.qty = item.DisplayQuantity
			if row.qty == "" {
				row.qty = item.Quantity.String()
			}
		}
		rows = append(rows, row)
	}

	// First pass: natural widths of the fixed columns.
	pdf.SetFont("Helvetica", "B", baseFontSize)
	priceW := pdf.GetStringWidth(header.price)
	qtyW := pdf.GetStringWidth(header.qty)
	amountW := pdf.GetStringWidth(header.amount)
	pdf.SetFont("Helvetica", "", baseFontSize)
	for _, row := range rows {
		if w := pdf.GetStringWidth(row.price); w > priceW {
			priceW = w
		}
		if w := pdf.GetStringWidth(row.qty); w > qtyW {
			qtyW = w
		}
		if w := pdf.GetStringWidth(row.amount); w > amountW {
			amountW = w
		}
	}
	priceW += 4 * cellPad
	qtyW += 4 * cellPad
	amountW += 4 * cellPad

	// Second pass: the description column absorbs the remaining width.
	descW := contentW - priceW - qtyW - amountW

	drawRow := func(row itemRow, bold, fill bool) {
		style, align := "", "R"
		if bold {
			style, align = "B", "C"
		}
		pdf.SetFont("Helvetica", style, baseFontSize)

		lines := pdf.SplitText(row.desc, descW-2*cellPad)
		if len(lines) == 0 {
			lines = []string{""}
		}
		rowH := float64(len(lines))*lineHeight + 2*cellPad

		if pdf.GetY()+rowH > pageH-pageMargin {
			pdf.AddPage()
		}
		x, y := pageMargin, pdf.GetY()

		if fill {
			pdf.SetFillColor(246, 249, 252)
			pdf.Rect(x, y, contentW, rowH, "F")
		}
		pdf.SetDrawColor(188, 198, 208)
		pdf.SetLineWidth(0.5)
		pdf.Line(x, y+rowH, x+contentW, y+rowH)

		pdf.SetXY(x+cellPad, y+cellPad)
		pdf.MultiCell(descW-2*cellPad, lineHeight, row.desc, "", "L", false)

		pdf.SetXY(x+descW, y+cellPad)
		pdf.CellFormat(priceW-cellPad, lineHeight, row.price, "", 0, align, false, 0, "")
		pdf.CellFormat(qtyW-cellPad, lineHeight, row.qty, "", 0, align, false, 0, "")
		pdf.CellFormat(amountW-cellPad, lineHeight, row.amount, "", 0, align, false, 0, "")

		pdf.SetXY(x, y+rowH)
	}

	pdf.SetY(pdf.GetY() + 20)
	drawRow(header, true, true)
	for i, row := range rows {
		drawRow(row, false, i%2 == 1)
	}
	pdf.SetFont("Helvetica", "", baseFontSize)
	return nil
}

// totalsLines draws the right-aligned totals block: subtotal, tax, shipping
// (only when positive), total.
func (r *Renderer) totalsLines(inv *model.Invoice, pdf *gofpdf.Fpdf) error {
	currency := r.currencyFor(inv)
	pageW, _ := pdf.GetPageSize()

	type totalRow struct {
		label, value string
		size         float64
	}

	subtotal, err := formatCurrency(inv.Subtotal(), currency)
	if err != nil {
		return model.NewRenderError("totals", "could not format subtotal", err)
	}
	tax, err := formatCurrency(inv.Tax(), currency)
	if err != nil {
		return model.NewRenderError("totals", "could not format tax", err)
	}
	total, err := formatCurrency(inv.Total(), currency)
	if err != nil {
		return model.NewRenderError("totals", "could not format total", err)
	}

	rows := []totalRow{
		{label: r.lbl.t("invoice.subtotal", "Subtotal:"), value: subtotal, size: baseFontSize},
		{label: stringOr(inv.TaxDescription, r.lbl.t("invoice.tax", "Tax:")), value: tax, size: baseFontSize},
	}

	if inv.ShippingRate.IsPositive() {
		shipping, err := formatCurrency(inv.Shipping(), currency)
		if err != nil {
			return model.NewRenderError("totals", "could not format shipping", err)
		}
		rows = append(rows, totalRow{
			label: stringOr(inv.ShippingDescription, r.lbl.t("invoice.shipping", "Shipping:")),
			value: shipping,
			size:  baseFontSize,
		})
	}

	// TODO: retention is already subtracted into the total, but the block
	// has no retention line; needs a decision on where that line belongs.
	rows = append(rows, totalRow{label: r.lbl.t("invoice.total", "Total:"), value: total, size: titleFontSize})

	labelW, valueW := 0.0, 0.0
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", row.size)
		if w := pdf.GetStringWidth(row.label); w > labelW {
			labelW = w
		}
		pdf.SetFont("Helvetica", "", row.size)
		if w := pdf.GetStringWidth(row.value); w > valueW {
			valueW = w
		}
	}
	labelW += 10
	valueW += 10

	x := pageW - pageMargin - labelW - valueW
	for _, row := range rows {
		rowH := row.size + 4
		pdf.SetX(x)
		pdf.SetFont("Helvetica", "B", row.size)
		pdf.CellFormat(labelW, rowH, row.label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", row.size)
		pdf.CellFormat(valueW, rowH, row.value, "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", baseFontSize)
	return nil
}

// notes draws the titled notes section with a horizontal rule and the note
// text, which may carry limited inline markup (<b>, <i>, <u>). The QR block
// renders inside this section when notes exist.
func (r *Renderer) notes(inv *model.Invoice, pdf *gofpdf.Fpdf) error {
	if inv.Notes == "" {
		return nil
	}
	contentW := r.contentWidth(pdf)

	pdf.SetY(pdf.GetY() + 30)
	pdf.SetFont("Helvetica", "B", baseFontSize)
	pdf.CellFormat(contentW, lineHeight+2, r.lbl.t("invoice.notes", "Notes"), "", 1, "L", false, 0, "")

	pdf.SetDrawColor(204, 204, 204)
	pdf.SetLineWidth(0.5)
	y := pdf.GetY() + 3
	pdf.Line(pageMargin, y, pageMargin+contentW, y)

	pdf.SetY(y + 7)
	pdf.SetFont("Helvetica", "", baseFontSize)
	html := pdf.HTMLBasicNew()
	html.Write(lineHeight, inv.Notes)
	pdf.Ln(lineHeight)

	return r.qrCode(inv, pdf)
}

// qrCode hands a non-blank payload to the symbol encoder and embeds the
// square raster at a fixed display width.
func (r *Renderer) qrCode(inv *model.Invoice, pdf *gofpdf.Fpdf) error {
	payload := strings.TrimSpace(inv.QRCode)
	if payload == "" {
		return nil
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, 200)
	if err != nil {
		return model.NewRenderError("qr_code", "could not encode payload", err)
	}

	pdf.SetY(pdf.GetY() + 10)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("invoice-qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("invoice-qr", pageMargin, pdf.GetY(), qrDisplayWidth, 0, true, opts, 0, "")

	if pdf.Err() {
		return model.NewRenderError("qr_code", "could not embed symbol", pdf.Error())
	}
	return nil
}

// pageNumbers stamps "page / total" in the footer of every page, but only
// when the document spans more than one page.
func (r *Renderer) pageNumbers(pdf *gofpdf.Fpdf) {
	total := pdf.PageCount()
	if total <= 1 {
		return
	}

	pageW, pageH := pdf.GetPageSize()
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Helvetica", "", baseFontSize)
	pdf.SetTextColor(0, 0, 0)
	for i := 1; i <= total; i++ {
		pdf.SetPage(i)
		pdf.Text(pageW-pageMargin-25, pageH-10, fmt.Sprintf("%d / %d", i, total))
	}
	pdf.SetPage(total)
}

func (r *Renderer) contentWidth(pdf *gofpdf.Fpdf) float64 {
	pageW, _ := pdf.GetPageSize()
	return pageW - 2*pageMargin
}

// currencyFor resolves the invoice currency, falling back to the defaults
// provider.
func (r *Renderer) currencyFor(inv *model.Invoice) string {
	return stringOr(inv.Currency, r.cfg.Currency)
}

// logoFor resolves the logo, preferring an invoice-level path over the
// configured one.
func (r *Renderer) logoFor(inv *model.Invoice) Logo {
	if inv.Logo != "" {
		return Logo{Path: inv.Logo}
	}
	return r.cfg.Logo
}

func stringOr(v, def string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	return def
}
