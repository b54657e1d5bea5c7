package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/zscan/internal/pdfscan"
)

// pdfCmd scans PDF documents for barcodes.
var pdfCmd = &cobra.Command{
	Use:   "pdf [file.pdf]",
	Short: "Decode barcodes from PDF documents",
	Long: `Extract the embedded page images of a PDF and decode barcodes in them.

Examples:
  zscan pdf invoice.pdf
  zscan pdf scans.pdf --pages 1-5 --format json
  zscan pdf forms.pdf --pages 1,3,7`,
	Args: cobra.ExactArgs(1),
	RunE: runPdf,
}

func runPdf(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	pages, _ := cmd.Flags().GetString("pages")
	outputFormat := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		outputFormat, _ = cmd.Flags().GetString("format")
	}

	results, err := pdfscan.ScanFile(args[0], pages, decodeOptionsFromFlags(cmd, cfg.Decode.HintOptions()))
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(results) == 0 {
		cmd.Println("No barcodes found")
		return nil
	}
	for _, page := range results {
		cmd.Printf("Page %d:\n", page.Page)
		for _, res := range page.Barcodes {
			cmd.Printf("  %s %q\n", res.Format, res.Text)
		}
	}
	return nil
}

func init() {
	pdfCmd.Flags().String("pages", "", "page range to scan (e.g. \"1-5\" or \"1,3,7\", default all)")
	pdfCmd.Flags().String("format", "text", "output format (text, json)")

	// Shared decode hint flags
	pdfCmd.Flags().Bool("try-harder", false, "spend more time searching for barcodes")
	pdfCmd.Flags().Bool("pure", false, "assume clean synthetic barcode images")
	pdfCmd.Flags().Bool("inverted", false, "also try inverted images")
	pdfCmd.Flags().String("formats", "", "comma-separated list of symbologies to try")
	pdfCmd.Flags().String("charset", "", "character set hint for text payloads")

	rootCmd.AddCommand(pdfCmd)
}
