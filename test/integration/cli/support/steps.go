package support

import (
	"fmt"
	"os"
	"strings"

	"github.com/cucumber/godog"
)

// RegisterSteps wires the step definitions into the scenario context.
func (testCtx *TestContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Step(`^an image "([^"]*)" containing a QR code with text "([^"]*)"$`, testCtx.anImageContainingQRCode)
	sc.Step(`^an image "([^"]*)" containing a (\S+) barcode with text "([^"]*)"$`, testCtx.anImageContainingBarcode)
	sc.Step(`^an image "([^"]*)" containing no barcode$`, testCtx.anImageContainingNoBarcode)
	sc.Step(`^I run zscan with "([^"]*)"$`, testCtx.iRunZscanWith)
	sc.Step(`^I run zscan decode on "([^"]*)"$`, testCtx.iRunZscanDecodeOn)
	sc.Step(`^I run zscan decode on "([^"]*)" with flags "([^"]*)"$`, testCtx.iRunZscanDecodeOnWithFlags)
	sc.Step(`^the command should succeed$`, testCtx.theCommandShouldSucceed)
	sc.Step(`^the command should fail$`, testCtx.theCommandShouldFail)
	sc.Step(`^the output should contain "([^"]*)"$`, testCtx.theOutputShouldContain)
	sc.Step(`^the output should not contain "([^"]*)"$`, testCtx.theOutputShouldNotContain)
	sc.Step(`^the file "([^"]*)" should exist$`, testCtx.theFileShouldExist)
}

func (testCtx *TestContext) anImageContainingQRCode(name, text string) error {
	return testCtx.CreateBarcodeImage(name, text, "QR_CODE", 200)
}

func (testCtx *TestContext) anImageContainingBarcode(name, format, text string) error {
	return testCtx.CreateBarcodeImage(name, text, format, 300)
}

func (testCtx *TestContext) anImageContainingNoBarcode(name string) error {
	return testCtx.CreateBlankImage(name, 150)
}

func (testCtx *TestContext) iRunZscanWith(argLine string) error {
	args := strings.Fields(argLine)
	// Image file names in arguments resolve into the scenario temp dir, so
	// input fixtures are found and output files land there too.
	for i, arg := range args {
		if strings.HasSuffix(arg, ".png") || strings.HasSuffix(arg, ".jpg") {
			path := testCtx.FilePath(arg)
			testCtx.Files[arg] = path
			args[i] = path
		}
	}
	testCtx.RunCLI(args...)
	return nil
}

func (testCtx *TestContext) iRunZscanDecodeOn(name string) error {
	testCtx.RunCLI("decode", testCtx.FilePath(name))
	return nil
}

func (testCtx *TestContext) iRunZscanDecodeOnWithFlags(name, flagLine string) error {
	args := append([]string{"decode", testCtx.FilePath(name)}, strings.Fields(flagLine)...)
	testCtx.RunCLI(args...)
	return nil
}

func (testCtx *TestContext) theCommandShouldSucceed() error {
	if testCtx.LastError != nil {
		return fmt.Errorf("expected success, got error: %v\noutput:\n%s", testCtx.LastError, testCtx.LastOutput)
	}
	return nil
}

func (testCtx *TestContext) theCommandShouldFail() error {
	if testCtx.LastError == nil {
		return fmt.Errorf("expected failure, command succeeded\noutput:\n%s", testCtx.LastOutput)
	}
	return nil
}

func (testCtx *TestContext) theOutputShouldContain(expected string) error {
	if !strings.Contains(testCtx.LastOutput, expected) {
		return fmt.Errorf("output does not contain %q:\n%s", expected, testCtx.LastOutput)
	}
	return nil
}

func (testCtx *TestContext) theOutputShouldNotContain(unexpected string) error {
	if strings.Contains(testCtx.LastOutput, unexpected) {
		return fmt.Errorf("output unexpectedly contains %q:\n%s", unexpected, testCtx.LastOutput)
	}
	return nil
}

func (testCtx *TestContext) theFileShouldExist(name string) error {
	path := testCtx.FilePath(name)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("expected file %s to exist: %w", path, err)
	}
	return nil
}
