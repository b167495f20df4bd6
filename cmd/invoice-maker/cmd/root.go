package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-maker/internal/logger"
	"github.com/rezonia/invoice-maker/internal/render"
)

var (
	version = "1.0.0"

	// Global flags
	verbose        bool
	currency       string
	companyName    string
	companyDetails string
	logoPath       string
	dateFormat     string
	pageSize       string
	locale         string
)

var rootCmd = &cobra.Command{
	Use:   "invoice-maker",
	Short: "Compute invoice totals and render PDF invoices",
	Long: `Invoice Maker turns invoice documents into paginated PDF invoices.

Amounts are computed with exact decimals (subtotal, tax, shipping,
retention), and the rendered document carries the status stamp, company
banner, party blocks, line item table, totals, notes, and QR code.

Examples:
  # Render an invoice document to a PDF file
  invoice-maker generate invoice.json -o invoice.pdf

  # Override the company defaults
  invoice-maker generate invoice.json --company-name "Awesome Corp" --currency EUR

  # Start the HTTP API
  invoice-maker serve --address :8080`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&currency, "currency", "", "Default currency code (env: INVOICE_CURRENCY)")
	rootCmd.PersistentFlags().StringVar(&companyName, "company-name", "", "Company name for the banner (env: INVOICE_COMPANY_NAME)")
	rootCmd.PersistentFlags().StringVar(&companyDetails, "company-details", "", "Company detail lines, newline separated (env: INVOICE_COMPANY_DETAILS)")
	rootCmd.PersistentFlags().StringVar(&logoPath, "logo", "", "Company logo file, raster or .svg (env: INVOICE_LOGO)")
	rootCmd.PersistentFlags().StringVar(&dateFormat, "date-format", "", "Date layout in Go reference-time form")
	rootCmd.PersistentFlags().StringVar(&pageSize, "page-size", "", "Default page size (Letter, A4, Legal)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "Label locale (en, es)")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if currency == "" {
		currency = os.Getenv("INVOICE_CURRENCY")
	}
	if companyName == "" {
		companyName = os.Getenv("INVOICE_COMPANY_NAME")
	}
	if companyDetails == "" {
		companyDetails = os.Getenv("INVOICE_COMPANY_DETAILS")
	}
	if logoPath == "" {
		logoPath = os.Getenv("INVOICE_LOGO")
	}

	level := "info"
	if verbose {
		level = "debug"
	}
	cfg := logger.DefaultConfig()
	cfg.Level = level
	_ = logger.Setup(cfg)
}

// renderDefaults builds the renderer defaults from the stock config plus
// whatever global flags were set.
func renderDefaults() *render.Config {
	cfg := render.DefaultConfig()
	if currency != "" {
		cfg.Currency = currency
	}
	if companyName != "" {
		cfg.CompanyName = companyName
	}
	if companyDetails != "" {
		cfg.CompanyDetails = companyDetails
	}
	if logoPath != "" {
		cfg.Logo = render.Logo{Path: logoPath}
	}
	if dateFormat != "" {
		cfg.DateFormat = dateFormat
	}
	if pageSize != "" {
		cfg.PageSize = pageSize
	}
	if locale != "" {
		cfg.Locale = locale
	}
	return cfg
}
