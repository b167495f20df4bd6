package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-maker/internal/logger"
	"github.com/rezonia/invoice-maker/internal/render"
	"github.com/rezonia/invoice-maker/internal/server"
)

var outputPath string

var generateCmd = &cobra.Command{
	Use:   "generate <invoice.json>",
	Short: "Render an invoice document to a PDF file",
	Long: `Read a JSON invoice document and render it to a PDF file.

The document carries the invoice fields (number, parties, line items, rates,
dates, notes, QR payload); anything omitted falls back to the configured
defaults. Monetary values may be JSON numbers or strings; strings keep exact
decimal values.

Examples:
  # Render next to the input
  invoice-maker generate invoice.json

  # Render to an explicit path with a EUR default
  invoice-maker generate invoice.json -o out/invoice.pdf --currency EUR`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output PDF path (default: input path with .pdf)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("generate")
	inputPath := args[0]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("could not read invoice document: %w", err)
	}

	var doc server.InvoiceRequest
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("could not parse invoice document: %w", err)
	}

	inv := doc.ToInvoice()
	if errs, warns := inv.Validate(); len(errs) > 0 || len(warns) > 0 {
		for _, msg := range errs {
			log.Warn().Str("file", inputPath).Msg(msg)
		}
		for _, msg := range warns {
			log.Debug().Str("file", inputPath).Msg(msg)
		}
	}

	out := outputPath
	if out == "" {
		out = strings.TrimSuffix(inputPath, ".json") + ".pdf"
	}

	renderer := render.NewRenderer(renderDefaults())
	if err := renderer.RenderToFile(inv, out); err != nil {
		return err
	}

	log.Info().
		Str("output", out).
		Str("total", inv.Total().String()).
		Int("line_items", len(inv.LineItems)).
		Msg("invoice rendered")
	return nil
}
