// Package batch decodes barcodes across many image files: discovery over
// directories and globs, a bounded worker pool, and text/json/csv output.
package batch

import (
	"errors"
	"log/slog"
	"time"
)

// Options controls a batch run.
type Options struct {
	Inputs          []string
	Recursive       bool
	IncludePatterns []string
	ExcludePatterns []string
	Workers         int
	ContinueOnError bool
	MaxImageSize    int // longest allowed image side, 0 disables downscaling
	DecodeOptions   map[string]interface{}
	OutputFormat    string // text, json or csv
}

// Run discovers input files, decodes them and returns the formatted report.
func Run(opts Options) (string, error) {
	if len(opts.Inputs) == 0 {
		return "", errors.New("no input files provided")
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	files, err := discoverImageFiles(opts.Inputs, opts.Recursive, opts.IncludePatterns, opts.ExcludePatterns)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", errors.New("no image files found")
	}

	start := time.Now()
	results := processFiles(files, opts)
	slog.Info("batch decode finished",
		"files", len(files),
		"workers", opts.Workers,
		"duration", time.Since(start))

	if !opts.ContinueOnError {
		for _, r := range results {
			if r.Err != nil {
				return "", r.Err
			}
		}
	}
	return formatResults(results, opts.OutputFormat)
}
