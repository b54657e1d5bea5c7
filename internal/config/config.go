package config

import (
	"fmt"
	"strings"
)

const (
	// MarginUnset marks an encode margin that should fall through to the
	// engine's own quiet-zone default.
	MarginUnset = -1

	// QRVersionAuto lets the engine pick the smallest fitting QR version.
	QRVersionAuto = 0
)

var validOutputFormats = []string{"text", "json", "csv"}

// DefaultConfig returns the built-in defaults used before any file, env or
// flag overrides.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Decode: DecodeConfig{
			MaxImageSize: 4096,
		},
		Encode: EncodeConfig{
			Margin:    MarginUnset,
			QRVersion: QRVersionAuto,
			Width:     256,
			Height:    256,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			CORSOrigin:      "*",
			MaxUploadMB:     32,
			TimeoutSec:      30,
			ShutdownTimeout: 10,
		},
		Batch: BatchConfig{
			Workers:         4,
			ContinueOnError: true,
		},
	}
}

// Validate checks cross-field constraints that viper cannot express.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	valid := false
	for _, f := range validOutputFormats {
		if c.Output.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid output format: %s (must be one of: %s)",
			c.Output.Format, strings.Join(validOutputFormats, ", "))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("invalid max upload size: %d MB", c.Server.MaxUploadMB)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("invalid batch worker count: %d", c.Batch.Workers)
	}
	if c.Encode.Width <= 0 || c.Encode.Height <= 0 {
		return fmt.Errorf("invalid encode canvas: %dx%d", c.Encode.Width, c.Encode.Height)
	}
	return nil
}

// HintOptions builds the decode option map implied by the configured
// defaults. Unset values are omitted so they stay "unset" rather than
// becoming explicit falses.
func (c DecodeConfig) HintOptions() map[string]interface{} {
	opts := make(map[string]interface{})
	if c.TryHarder {
		opts["TRY_HARDER"] = true
	}
	if c.PureBarcode {
		opts["PURE_BARCODE"] = true
	}
	if c.AlsoInverted {
		opts["ALSO_INVERTED"] = true
	}
	if len(c.Formats) > 0 {
		opts["POSSIBLE_FORMATS"] = c.Formats
	}
	if c.CharacterSet != "" {
		opts["CHARACTER_SET"] = c.CharacterSet
	}
	return opts
}

// HintOptions builds the encode option map implied by the configured
// defaults.
func (c EncodeConfig) HintOptions() map[string]interface{} {
	opts := make(map[string]interface{})
	if c.ErrorCorrection != "" {
		opts["ERROR_CORRECTION"] = c.ErrorCorrection
	}
	if c.CharacterSet != "" {
		opts["CHARACTER_SET"] = c.CharacterSet
	}
	if c.Margin != MarginUnset {
		opts["MARGIN"] = c.Margin
	}
	if c.QRVersion != QRVersionAuto {
		opts["QR_VERSION"] = c.QRVersion
	}
	return opts
}
