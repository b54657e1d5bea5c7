package config

// Config is the complete configuration for the zscan application. It covers
// all commands (decode, encode, batch, serve) and loads from configuration
// files, environment variables and command-line flags.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Default decode hints applied when the caller supplies none.
	Decode DecodeConfig `mapstructure:"decode" yaml:"decode" json:"decode"`

	// Default encode hints.
	Encode EncodeConfig `mapstructure:"encode" yaml:"encode" json:"encode"`

	// Output configuration
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Server configuration (for serve command)
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`

	// Batch processing configuration
	Batch BatchConfig `mapstructure:"batch" yaml:"batch" json:"batch"`
}

// DecodeConfig contains default decode hint settings. Booleans here follow
// config semantics: false simply omits the hint.
type DecodeConfig struct {
	TryHarder    bool     `mapstructure:"try_harder" yaml:"try_harder" json:"try_harder"`
	PureBarcode  bool     `mapstructure:"pure_barcode" yaml:"pure_barcode" json:"pure_barcode"`
	AlsoInverted bool     `mapstructure:"also_inverted" yaml:"also_inverted" json:"also_inverted"`
	Formats      []string `mapstructure:"formats" yaml:"formats" json:"formats"`
	CharacterSet string   `mapstructure:"character_set" yaml:"character_set" json:"character_set"`
	MaxImageSize int      `mapstructure:"max_image_size" yaml:"max_image_size" json:"max_image_size"`
}

// EncodeConfig contains default encode hint settings. Zero margin is a
// meaningful value, so it is tracked with -1 as "unset".
type EncodeConfig struct {
	ErrorCorrection string `mapstructure:"error_correction" yaml:"error_correction" json:"error_correction"`
	CharacterSet    string `mapstructure:"character_set" yaml:"character_set" json:"character_set"`
	Margin          int    `mapstructure:"margin" yaml:"margin" json:"margin"`
	QRVersion       int    `mapstructure:"qr_version" yaml:"qr_version" json:"qr_version"`
	Width           int    `mapstructure:"width" yaml:"width" json:"width"`
	Height          int    `mapstructure:"height" yaml:"height" json:"height"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
	File   string `mapstructure:"file" yaml:"file" json:"file"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string `mapstructure:"host" yaml:"host" json:"host"`
	Port            int    `mapstructure:"port" yaml:"port" json:"port"`
	CORSOrigin      string `mapstructure:"cors_origin" yaml:"cors_origin" json:"cors_origin"`
	MaxUploadMB     int    `mapstructure:"max_upload_mb" yaml:"max_upload_mb" json:"max_upload_mb"`
	TimeoutSec      int    `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

// BatchConfig contains batch processing settings.
type BatchConfig struct {
	Workers         int  `mapstructure:"workers" yaml:"workers" json:"workers"`
	Recursive       bool `mapstructure:"recursive" yaml:"recursive" json:"recursive"`
	ContinueOnError bool `mapstructure:"continue_on_error" yaml:"continue_on_error" json:"continue_on_error"`
}
