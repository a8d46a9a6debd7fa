package cli

import "quirks/internal/config"

// Flags holds command-line flags
type Flags struct {
	Filter   string
	Report   bool
	Save     bool
	Progress bool
	Verbose  bool
	Format   string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Filter:   f.Filter,
		Report:   f.Report,
		Save:     f.Save,
		Progress: f.Progress,
		Verbose:  f.Verbose,
		Format:   f.Format,
	}
}
