package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/zscan"
)

// decodeCmd decodes barcodes from one or more image files.
var decodeCmd = &cobra.Command{
	Use:   "decode [image...]",
	Short: "Decode barcodes from image files",
	Long: `Decode barcodes from one or more image files.

Supported formats: JPEG, PNG, BMP, TIFF, WebP.

Examples:
  zscan decode photo.jpg
  zscan decode --try-harder --formats QR_CODE,EAN_13 *.png
  zscan decode receipt.png --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

// fileOutput pairs a decode result with its source file for reporting.
type fileOutput struct {
	File   string        `json:"file"`
	Result *zscan.Result `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

func runDecode(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	opts := decodeOptionsFromFlags(cmd, cfg.Decode.HintOptions())

	outputFormat := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		outputFormat, _ = cmd.Flags().GetString("format")
	}

	outputs := make([]fileOutput, 0, len(args))
	failures := 0
	for _, path := range args {
		res, err := zscan.DecodeFile(path, opts)
		out := fileOutput{File: path, Result: res}
		if err != nil {
			out.Error = err.Error()
			failures++
		}
		outputs = append(outputs, out)
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(outputs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
	} else {
		for _, out := range outputs {
			if out.Error != "" {
				cmd.Printf("%s: error: %s\n", out.File, out.Error)
				continue
			}
			cmd.Printf("%s: %s %q\n", out.File, out.Result.Format, out.Result.Text)
		}
	}

	if failures == len(args) {
		return fmt.Errorf("no barcodes decoded in %d file(s)", len(args))
	}
	return nil
}

// decodeOptionsFromFlags overlays decode flags on the configured defaults.
func decodeOptionsFromFlags(cmd *cobra.Command, opts map[string]interface{}) map[string]interface{} {
	if opts == nil {
		opts = make(map[string]interface{})
	}
	if cmd.Flags().Changed("try-harder") {
		v, _ := cmd.Flags().GetBool("try-harder")
		opts["TRY_HARDER"] = v
	}
	if cmd.Flags().Changed("pure") {
		v, _ := cmd.Flags().GetBool("pure")
		opts["PURE_BARCODE"] = v
	}
	if cmd.Flags().Changed("inverted") {
		v, _ := cmd.Flags().GetBool("inverted")
		opts["ALSO_INVERTED"] = v
	}
	if cmd.Flags().Changed("formats") {
		csv, _ := cmd.Flags().GetString("formats")
		var formats []string
		for _, f := range strings.Split(csv, ",") {
			if f = strings.TrimSpace(f); f != "" {
				formats = append(formats, f)
			}
		}
		opts["POSSIBLE_FORMATS"] = formats
	}
	if cmd.Flags().Changed("charset") {
		v, _ := cmd.Flags().GetString("charset")
		opts["CHARACTER_SET"] = v
	}
	return opts
}

func init() {
	decodeCmd.Flags().Bool("try-harder", false, "spend more time searching for barcodes")
	decodeCmd.Flags().Bool("pure", false, "assume a clean synthetic barcode image")
	decodeCmd.Flags().Bool("inverted", false, "also try the inverted image")
	decodeCmd.Flags().String("formats", "", "comma-separated list of symbologies to try (e.g. QR_CODE,EAN_13)")
	decodeCmd.Flags().String("charset", "", "character set hint for text payloads (e.g. UTF-8, ISO-8859-1)")
	decodeCmd.Flags().String("format", "text", "output format (text, json)")

	rootCmd.AddCommand(decodeCmd)
}
