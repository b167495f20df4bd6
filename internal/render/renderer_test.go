package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-maker/internal/model"
	"github.com/rezonia/invoice-maker/internal/render"
)

func newTestInvoice() *model.Invoice {
	due := time.Date(2026, time.January, 22, 0, 0, 0, 0, time.UTC)
	inv := model.NewInvoice(model.InvoiceOpts{
		Number:  "12",
		TaxRate: 10.0,
		BillTo:  "Alan Johnson\n101 This Way\nSomewhere, SC 22222",
		ShipTo:  "Frank Johnson\n101 That Way\nOther, SC 22229",
		Notes:   "These are some <b>crazy awesome</b> notes!",
		DueAt:   &due,
		Details: model.Details{
			{Key: "Ordered By:", Value: "Alan Johnson"},
			{Key: "Paid By:", Value: "Dude McDude"},
		},
	})
	inv.AddLineItem(model.LineItemOpts{Price: 20, Quantity: 5, Description: "Pants"})
	inv.AddLineItem(model.LineItemOpts{Price: 10, Quantity: 3, Description: "Shirts"})
	inv.AddLineItem(model.LineItemOpts{Price: 5, Quantity: 200, Description: "Hats"})
	return inv
}

func requireValidPDF(t *testing.T, data []byte) {
	t.Helper()
	require.NotEmpty(t, data)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output does not start with a PDF header")
	require.NoError(t, api.Validate(bytes.NewReader(data), nil))
}

func pageCount(t *testing.T, data []byte) int {
	t.Helper()
	n, err := api.PageCount(bytes.NewReader(data), nil)
	require.NoError(t, err)
	return n
}

func TestRender(t *testing.T) {
	r := render.NewRenderer(nil)

	data, err := r.Render(newTestInvoice())
	require.NoError(t, err)
	requireValidPDF(t, data)
	assert.Equal(t, 1, pageCount(t, data))
}

func TestRenderToFile(t *testing.T) {
	r := render.NewRenderer(nil)
	path := filepath.Join(t.TempDir(), "testing.pdf")

	require.NoError(t, r.RenderToFile(newTestInvoice(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	requireValidPDF(t, data)
}

func TestRender_MultiplePages(t *testing.T) {
	inv := newTestInvoice()
	for i := 0; i < 30; i++ {
		inv.AddLineItem(model.LineItemOpts{Price: 20, Quantity: 5, Description: "Pants"})
		inv.AddLineItem(model.LineItemOpts{Price: 10, Quantity: 3, Description: "Shirts"})
		inv.AddLineItem(model.LineItemOpts{Price: 5, Quantity: 200, Description: "Hats"})
	}

	data, err := render.NewRenderer(nil).Render(inv)
	require.NoError(t, err)
	requireValidPDF(t, data)
	assert.Greater(t, pageCount(t, data), 1)
}

func TestRender_EmptyInvoice(t *testing.T) {
	// Everything is optional; an empty invoice still renders (with the
	// placeholder bill-to).
	data, err := render.NewRenderer(nil).Render(model.NewInvoice(model.InvoiceOpts{}))
	require.NoError(t, err)
	requireValidPDF(t, data)
}

func TestRender_StatusStamps(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	tests := []struct {
		name string
		opts model.InvoiceOpts
	}{
		{"paid", model.InvoiceOpts{PaidAt: &now}},
		{"refunded", model.InvoiceOpts{RefundedAt: &now}},
		{"overdue", model.InvoiceOpts{DueAt: &yesterday}},
		{"refunded wins over paid", model.InvoiceOpts{PaidAt: &now, RefundedAt: &now}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := model.NewInvoice(tt.opts)
			inv.AddLineItem(model.LineItemOpts{Price: 20, Quantity: 5, Description: "Pants"})

			data, err := render.NewRenderer(nil).Render(inv)
			require.NoError(t, err)
			requireValidPDF(t, data)
		})
	}
}

func TestRender_PredefinedAmountRow(t *testing.T) {
	inv := newTestInvoice()
	inv.AddLineItem(model.LineItemOpts{Price: 10, Quantity: 3, Description: "Extra Users"})
	inv.AddLineItem(model.LineItemOpts{PredefinedAmount: 79, Description: "Flat Fee"})

	data, err := render.NewRenderer(nil).Render(inv)
	require.NoError(t, err)
	requireValidPDF(t, data)
}

// The QR block placement is deliberately asymmetric: with notes present the
// symbol renders inside the notes section, without notes it renders
// standalone after the totals block. Known quirk, preserved from the
// reference layout.
func TestRender_QRCodeInsideNotes(t *testing.T) {
	inv := newTestInvoice()
	inv.QRCode = "https://example.com/invoice/12"

	data, err := render.NewRenderer(nil).Render(inv)
	require.NoError(t, err)
	requireValidPDF(t, data)
}

func TestRender_QRCodeStandaloneWithoutNotes(t *testing.T) {
	inv := newTestInvoice()
	inv.Notes = ""
	inv.QRCode = "https://example.com/invoice/12"

	data, err := render.NewRenderer(nil).Render(inv)
	require.NoError(t, err)
	requireValidPDF(t, data)
}

func TestRender_BlankQRCodeSkipped(t *testing.T) {
	inv := newTestInvoice()
	inv.Notes = ""
	inv.QRCode = "   "

	data, err := render.NewRenderer(nil).Render(inv)
	require.NoError(t, err)
	requireValidPDF(t, data)
}

func TestRender_WithRasterLogo(t *testing.T) {
	logoPath := filepath.Join(t.TempDir(), "logo.png")
	writeTestPNG(t, logoPath)

	cfg := render.DefaultConfig()
	cfg.Logo = render.Logo{Path: logoPath, Width: 100, Height: 50}
	cfg.CompanyDetails = "10 This Way\nManhattan, NY 10001\n800-111-2222\nawesome@awesomecorp.com"

	data, err := render.NewRenderer(cfg).Render(newTestInvoice())
	require.NoError(t, err)
	requireValidPDF(t, data)
}

func TestRender_MissingLogoFails(t *testing.T) {
	cfg := render.DefaultConfig()
	cfg.Logo = render.Logo{Path: filepath.Join(t.TempDir(), "nope.png")}

	_, err := render.NewRenderer(cfg).Render(newTestInvoice())
	require.Error(t, err)

	var renderErr *model.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "banner", renderErr.Step)
}

func TestRender_UnknownCurrencyFails(t *testing.T) {
	inv := newTestInvoice()
	inv.Currency = "NOPE"

	_, err := render.NewRenderer(nil).Render(inv)
	require.Error(t, err)

	var renderErr *model.RenderError
	require.ErrorAs(t, err, &renderErr)
}

func TestRender_InvoiceCurrencyOverridesDefault(t *testing.T) {
	inv := newTestInvoice()
	inv.Currency = "EUR"

	data, err := render.NewRenderer(nil).Render(inv)
	require.NoError(t, err)
	requireValidPDF(t, data)
}

func TestRender_SpanishLocale(t *testing.T) {
	cfg := render.DefaultConfig()
	cfg.Locale = "es"

	inv := model.NewInvoice(model.InvoiceOpts{Number: "12"})
	inv.AddLineItem(model.LineItemOpts{Price: 20, Quantity: 5, Description: "Pantalones"})
	inv.AddLineItem(model.LineItemOpts{Price: 5, Quantity: 200, Description: "Sombreros"})

	data, err := render.NewRenderer(cfg).Render(inv)
	require.NoError(t, err)
	requireValidPDF(t, data)
}

func TestRender_PageSizeOverride(t *testing.T) {
	inv := newTestInvoice()
	inv.PageSize = "A4"

	data, err := render.NewRenderer(nil).Render(inv)
	require.NoError(t, err)
	requireValidPDF(t, data)
}

func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		for y := 0; y < 20; y++ {
			img.Set(x, y, color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}
