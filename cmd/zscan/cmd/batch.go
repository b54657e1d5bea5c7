package cmd

import (
	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/zscan/internal/batch"
)

// batchCmd decodes barcodes across many files or directories.
var batchCmd = &cobra.Command{
	Use:   "batch [input...]",
	Short: "Decode barcodes from many files or directories",
	Long: `Decode barcodes from multiple files, directories or glob patterns
using a worker pool.

Examples:
  zscan batch ./scans
  zscan batch --recursive --workers 8 ./inbox --format csv
  zscan batch "shipments/*.png" --exclude "*_thumb.png"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	workers := cfg.Batch.Workers
	if cmd.Flags().Changed("workers") {
		workers, _ = cmd.Flags().GetInt("workers")
	}
	recursive := cfg.Batch.Recursive
	if cmd.Flags().Changed("recursive") {
		recursive, _ = cmd.Flags().GetBool("recursive")
	}
	continueOnError := cfg.Batch.ContinueOnError
	if cmd.Flags().Changed("continue-on-error") {
		continueOnError, _ = cmd.Flags().GetBool("continue-on-error")
	}
	outputFormat := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		outputFormat, _ = cmd.Flags().GetString("format")
	}
	include, _ := cmd.Flags().GetStringSlice("include")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")

	report, err := batch.Run(batch.Options{
		Inputs:          args,
		Recursive:       recursive,
		IncludePatterns: include,
		ExcludePatterns: exclude,
		Workers:         workers,
		ContinueOnError: continueOnError,
		MaxImageSize:    cfg.Decode.MaxImageSize,
		DecodeOptions:   decodeOptionsFromFlags(cmd, cfg.Decode.HintOptions()),
		OutputFormat:    outputFormat,
	})
	if err != nil {
		return err
	}
	cmd.Print(report)
	return nil
}

func init() {
	batchCmd.Flags().Int("workers", 4, "number of parallel workers")
	batchCmd.Flags().BoolP("recursive", "r", false, "recurse into subdirectories")
	batchCmd.Flags().Bool("continue-on-error", true, "keep going when a file fails to decode")
	batchCmd.Flags().StringSlice("include", nil, "glob patterns of files to include")
	batchCmd.Flags().StringSlice("exclude", nil, "glob patterns of files to exclude")
	batchCmd.Flags().String("format", "text", "output format (text, json, csv)")

	// Shared decode hint flags
	batchCmd.Flags().Bool("try-harder", false, "spend more time searching for barcodes")
	batchCmd.Flags().Bool("pure", false, "assume clean synthetic barcode images")
	batchCmd.Flags().Bool("inverted", false, "also try inverted images")
	batchCmd.Flags().String("formats", "", "comma-separated list of symbologies to try")
	batchCmd.Flags().String("charset", "", "character set hint for text payloads")

	rootCmd.AddCommand(batchCmd)
}
