package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"quirks/internal/cli"
	"quirks/internal/config"
	"quirks/internal/storage"
	"quirks/internal/ui"
)

// LastCommand handles the last command
type LastCommand struct {
	config  *config.Config
	storage storage.Storage
}

// NewLastCommand creates a new LastCommand
func NewLastCommand(cfg *config.Config, st storage.Storage) *LastCommand {
	return &LastCommand{
		config:  cfg,
		storage: st,
	}
}

// Execute runs the command
func (lc *LastCommand) Execute(cmd *cobra.Command, args []string) error {
	summary, err := lc.storage.Load()
	if err != nil {
		return cli.WrapExitError(cli.ExitCommandError, "no saved run (use --save)", err)
	}

	out := cmd.OutOrStdout()
	switch lc.config.Flags.Format {
	case "json":
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal summary: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(summary)
		if err != nil {
			return fmt.Errorf("marshal summary: %w", err)
		}
		fmt.Fprint(out, string(data))
	default:
		ui.NewFormatter(out).PrintSummary(summary)
	}
	return nil
}
