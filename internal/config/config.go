package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Output settings
	ResultsDir  string
	ResultsFile string
	NoColor     bool

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Filter   string
	Report   bool
	Save     bool
	Progress bool
	Verbose  bool
	Format   string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ResultsDir:  DefaultResultsDir,
		ResultsFile: DefaultResultsFile,
		Flags:       Flags{Format: DefaultFormat},
	}
}

// Load creates a config from defaults, the optional dotenv file at envPath
// and the process environment, in that order of precedence (lowest first).
// Variables already present in the environment are not overwritten by the
// dotenv file.
//
// The returned config is always usable. Settings that cannot be read keep
// their defaults and are reported through the joined error.
func Load(envPath string) (*Config, error) {
	cfg := New()
	var errs []error

	if envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				errs = append(errs, fmt.Errorf("load %s: %w", envPath, err))
			}
		}
	}

	if dir := os.Getenv(EnvResultsDir); dir != "" {
		cfg.ResultsDir = dir
	}
	if file := os.Getenv(EnvResultsFile); file != "" {
		cfg.ResultsFile = file
	}
	if v := os.Getenv(EnvNoColor); v != "" {
		noColor, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("parse %s: %w", EnvNoColor, err))
		} else {
			cfg.NoColor = noColor
		}
	}

	return cfg, errors.Join(errs...)
}

// Apply copies parsed flags into the config
func (c *Config) Apply(flags Flags) {
	if flags.Format == "" {
		flags.Format = DefaultFormat
	}
	c.Flags = flags
}

// GetOutputPath returns the absolute path of the run summary file so run and
// last always agree regardless of cwd changes.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ResultsDir, c.ResultsFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// IsValidFormat reports whether format is one of ValidFormats
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
