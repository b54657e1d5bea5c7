// Command generate-test-data renders a set of synthetic barcode images for
// manual testing and batch-mode demos.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/MeKo-Tech/zscan"
)

type fixture struct {
	File      string `json:"file"`
	Symbology string `json:"symbology"`
	Text      string `json:"text"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

var defaultFixtures = []fixture{
	{File: "qr_url.png", Symbology: "QR_CODE", Text: "https://example.com/item/42", Width: 256, Height: 256},
	{File: "qr_wifi.png", Symbology: "QR_CODE", Text: "WIFI:T:WPA;S:testnet;P:secret;;", Width: 256, Height: 256},
	{File: "datamatrix_serial.png", Symbology: "DATA_MATRIX", Text: "SN-2024-00173", Width: 256, Height: 256},
	{File: "code128_shipment.png", Symbology: "CODE_128", Text: "SHIP-0042-XY", Width: 400, Height: 120},
	{File: "code39_asset.png", Symbology: "CODE_39", Text: "ASSET-77", Width: 400, Height: 120},
	{File: "ean13_retail.png", Symbology: "EAN_13", Text: "4006381333931", Width: 400, Height: 120},
	{File: "ean8_retail.png", Symbology: "EAN_8", Text: "96385074", Width: 300, Height: 120},
	{File: "upca_retail.png", Symbology: "UPC_A", Text: "036000291452", Width: 400, Height: 120},
	{File: "itf_carton.png", Symbology: "ITF", Text: "00012345678905", Width: 400, Height: 120},
	{File: "codabar_library.png", Symbology: "CODABAR", Text: "A40156B", Width: 400, Height: 120},
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		outDir      = flag.String("out", "testdata/barcodes", "Output directory for generated images")
		symbologies = flag.String("symbologies", "", "Comma-separated symbologies to generate (default all)")
		verbose     = flag.Bool("v", false, "Verbose output")
		help        = flag.Bool("h", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Generate synthetic barcode test images.\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEXAMPLES:\n")
		fmt.Fprintf(os.Stderr, "  %s                               # Generate all fixtures\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -symbologies QR_CODE,EAN_13   # Generate a subset\n", os.Args[0])
	}

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	slog.Info("Starting test data generation...", "out", *outDir)

	fixtures := defaultFixtures
	if *symbologies != "" {
		fixtures = filterFixtures(fixtures, *symbologies)
		if len(fixtures) == 0 {
			slog.Error("No fixtures match requested symbologies", "symbologies", *symbologies)
			os.Exit(1)
		}
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		slog.Error("Failed to create output directory", "error", err)
		os.Exit(1)
	}

	generated := make([]fixture, 0, len(fixtures))
	for _, fx := range fixtures {
		if err := writeFixture(*outDir, fx); err != nil {
			slog.Error("Failed to generate fixture", "file", fx.File, "error", err)
			os.Exit(1)
		}
		if *verbose {
			slog.Info("Generated", "file", fx.File, "symbology", fx.Symbology)
		}
		generated = append(generated, fx)
	}

	if err := writeManifest(*outDir, generated); err != nil {
		slog.Error("Failed to write manifest", "error", err)
		os.Exit(1)
	}

	slog.Info("Test data generation complete", "fixtures", len(generated))
}

func filterFixtures(fixtures []fixture, csv string) []fixture {
	wanted := make(map[string]bool)
	for _, s := range strings.Split(csv, ",") {
		wanted[strings.ToUpper(strings.TrimSpace(s))] = true
	}

	var out []fixture
	for _, fx := range fixtures {
		if wanted[fx.Symbology] {
			out = append(out, fx)
		}
	}
	return out
}

func writeFixture(dir string, fx fixture) error {
	matrix, err := zscan.Encode(fx.Text, fx.Symbology, fx.Width, fx.Height, nil)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, fx.File)
	f, err := os.Create(path) //nolint:gosec // G304: output path comes from the user
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return png.Encode(f, matrix.Image())
}

func writeManifest(dir string, fixtures []fixture) error {
	data, err := json.MarshalIndent(fixtures, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "manifest.json"), data, 0o600)
}
