// Package config provides centralized configuration management for dateshift.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
//
// Command-line flags override these values; the environment only supplies
// the defaults a flag falls back to.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Shift   ShiftConfig
	Dataset DatasetConfig
	Logging LoggingConfig
}

// ShiftConfig holds date-shift defaults.
type ShiftConfig struct {
	// MinShift is the lower inclusive bound in days (default: -365)
	MinShift string `env:"DATESHIFT_MIN_SHIFT" default:"-365"`

	// MaxShift is the upper inclusive bound in days (default: 365)
	MaxShift string `env:"DATESHIFT_MAX_SHIFT" default:"365"`

	// Seed fixes the random source for reproducible output (default: unset, random)
	Seed *int64 `env:"DATESHIFT_SEED"`

	// DateLayout is a Go time layout for shifted values (default: empty, inferred per value)
	DateLayout string `env:"DATESHIFT_DATE_LAYOUT"`
}

// DatasetConfig holds input/output file settings.
type DatasetConfig struct {
	// Delimiter is the field separator for delimited files (default: ",")
	Delimiter string `env:"DATASET_DELIMITER" default:","`

	// MaxFileSize is the maximum input size in bytes, 0 for no limit (default: 100MB)
	MaxFileSize int64 `env:"DATASET_MAX_FILE_SIZE" default:"104857600"`

	// Sheet is the xlsx worksheet to read (default: first sheet)
	Sheet string `env:"DATASET_SHEET"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
