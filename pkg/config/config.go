// Package config provides configuration management for NeDRexDB ingestion.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation inside Option functions may write user-facing warnings
// via gn.Warn().
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults. Environment variables use the NEDREX_ prefix with underscores
// for nesting (database.host → NEDREX_DATABASE_HOST).
package config

// Config represents the complete configuration for the ingestion CLI.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// ClinVar contains locations of the ClinVar source files.
	ClinVar ClinVarConfig `mapstructure:"clinvar" yaml:"clinvar"`

	Log LogConfig `mapstructure:"log" yaml:"log"`
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

	// BatchSize is the number of records handed to the store per upsert
	// batch. A performance tunable only: it never changes which records
	// reach the store.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// ClinVarConfig contains paths to the two ClinVar data products.
type ClinVarConfig struct {
	// VariantFile is the gzip-compressed tab-separated variant file
	// (variant_summary VCF subset).
	VariantFile string `mapstructure:"variant_file" yaml:"variant_file"`

	// AssertionFile is the gzip-compressed full-release XML document of
	// clinical assertions.
	AssertionFile string `mapstructure:"assertion_file" yaml:"assertion_file"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `mapstructure:"level" yaml:"level"`

	// Format is "text" or "json".
	Format string `mapstructure:"format" yaml:"format"`
}

// New creates a Config with default values, modified by the given options.
// The default config is always valid; invalid option values are rejected
// with a warning and the default is kept.
func New(opts ...Option) *Config {
	cfg := Defaults()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Defaults returns the built-in default configuration.
func Defaults() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "nedrex",
			SSLMode:   "disable",
			BatchSize: 1000,
		},
		ClinVar: ClinVarConfig{
			VariantFile:   "clinvar.vcf.gz",
			AssertionFile: "ClinVarFullRelease.xml.gz",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
