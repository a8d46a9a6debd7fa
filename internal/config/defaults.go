package config

const (
	// DefaultEnvFile is the optional dotenv file read by Load
	DefaultEnvFile = ".env"
	// DefaultResultsFile is the default run summary file name
	DefaultResultsFile = "quirks-results.json"
	// DefaultResultsDir is the default run summary directory
	DefaultResultsDir = ".quirks"
	// DefaultFormat is the default output format of the last command
	DefaultFormat = "text"
)

// Environment variables read by Load
const (
	EnvResultsDir  = "QUIRKS_RESULTS_DIR"
	EnvResultsFile = "QUIRKS_RESULTS_FILE"
	EnvNoColor     = "QUIRKS_NO_COLOR"
)

// ValidFormats are the accepted values of the --format flag
var ValidFormats = []string{"text", "json", "yaml"}
