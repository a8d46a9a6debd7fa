package commands

import (
	"github.com/spf13/cobra"

	"quirks/internal/config"
	"quirks/internal/discovery"
	"quirks/internal/storage"
	"quirks/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config  *config.Config
	suite   Suite
	filter  *discovery.Filter
	storage storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	suite Suite,
	filter *discovery.Filter,
	st storage.Storage,
) *ListCommand {
	return &ListCommand{
		config:  cfg,
		suite:   suite,
		filter:  filter,
		storage: st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	formatter := ui.NewFormatter(cmd.OutOrStdout())

	seq := lc.filter.FilterByName(buildSequence(lc.suite), lc.config.Flags.Filter)
	if seq.Len() == 0 {
		formatter.PrintNoTests(lc.config.Flags.Filter)
		return nil
	}

	formatter.PrintTestList(seq, lastFailedIndex(lc.storage))
	return nil
}
