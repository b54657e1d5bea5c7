// Package support holds the godog test context and step definitions for the
// CLI integration suite. Commands run in-process against the cobra tree, so
// the suite needs no pre-built binary.
package support

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MeKo-Tech/zscan"
	"github.com/MeKo-Tech/zscan/cmd/zscan/cmd"
)

// TestContext holds the state for integration tests.
type TestContext struct {
	// Command execution state
	LastOutput string
	LastError  error

	// Test environment
	TempDir string

	// Named fixture files created during the scenario
	Files map[string]string
}

// NewTestContext creates a new test context with a scratch directory.
func NewTestContext() (*TestContext, error) {
	tempDir, err := os.MkdirTemp("", "zscan-test-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	return &TestContext{
		TempDir: tempDir,
		Files:   make(map[string]string),
	}, nil
}

// Cleanup removes scenario artifacts.
func (testCtx *TestContext) Cleanup() error {
	return os.RemoveAll(testCtx.TempDir)
}

// RunCLI executes the zscan root command in-process with the given
// arguments, capturing combined output.
func (testCtx *TestContext) RunCLI(args ...string) {
	root := cmd.GetRootCommand()
	resetFlags(root)

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	testCtx.LastError = root.Execute()
	testCtx.LastOutput = buf.String()
}

// resetFlags restores every flag in the command tree to its default. Cobra
// keeps flag state across Execute calls, which would leak values between
// scenarios.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// CreateBarcodeImage writes a PNG fixture containing the given barcode and
// records it under name.
func (testCtx *TestContext) CreateBarcodeImage(name, text, format string, size int) error {
	m, err := zscan.Encode(text, format, size, size, nil)
	if err != nil {
		return fmt.Errorf("failed to encode fixture: %w", err)
	}
	return testCtx.writePNG(name, m.Image())
}

// CreateBlankImage writes a PNG fixture with no barcode in it.
func (testCtx *TestContext) CreateBlankImage(name string, size int) error {
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x * y) % 256)})
		}
	}
	return testCtx.writePNG(name, img)
}

func (testCtx *TestContext) writePNG(name string, img image.Image) error {
	path := filepath.Join(testCtx.TempDir, name)
	f, err := os.Create(path) //nolint:gosec // G304: fixtures live in our own temp dir
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, img); err != nil {
		return err
	}
	testCtx.Files[name] = path
	return nil
}

// FilePath resolves a fixture name to its on-disk path. Unknown names map
// into the temp dir so steps can reference not-yet-created files.
func (testCtx *TestContext) FilePath(name string) string {
	if path, ok := testCtx.Files[name]; ok {
		return path
	}
	return filepath.Join(testCtx.TempDir, name)
}
