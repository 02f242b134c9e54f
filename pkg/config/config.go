// Package config provides configuration management for the IsisCB
// conversion tool.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Convert: base_uri
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Convert.WithValidation (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use ISISCB_ prefix with underscores for nesting:
//
//	ISISCB_DATABASE_HOST=localhost
//	ISISCB_DATABASE_PORT=5432
//	ISISCB_CONVERT_BASE_URI=https://data.isiscb.org
//	ISISCB_LOG_LEVEL=info
//	ISISCB_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete configuration of the conversion tool.
type Config struct {
	// Database contains PostgreSQL connection settings for the
	// document store.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Convert contains settings specific to the convert and batch commands.
	Convert ConvertConfig `mapstructure:"convert" yaml:"convert"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize defines the number of documents inserted per batch
	// by the store command. Larger batches are faster but use more memory.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// ConvertConfig contains settings specific to the convert and batch commands.
type ConvertConfig struct {
	// BaseURI is the scheme and host used to mint record identifiers.
	// Record URIs are formed as {BaseURI}/{authority|citation}/{rawID}.
	// Changing it breaks referential consistency with earlier batches,
	// so it normally stays at its default.
	BaseURI string `mapstructure:"base_uri" yaml:"base_uri"`

	// WithValidation controls JSON-Schema validation of produced
	// documents. Uses pointer to distinguish between unset (nil) and false.
	// Runtime-only field - not in ToOptions().
	WithValidation *bool `mapstructure:"with_validation" yaml:"with_validation"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "isiscb",
			SSLMode:   "disable",
			BatchSize: 5_000,
		},
		Convert: ConvertConfig{
			BaseURI: "https://data.isiscb.org",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}

// Validation reports whether produced documents should be checked
// against the JSON schemas. Defaults to true when the flag was not set.
func (c *Config) Validation() bool {
	if c.Convert.WithValidation == nil {
		return true
	}
	return *c.Convert.WithValidation
}
