package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"quirks/internal/cli"
	"quirks/internal/config"
	"quirks/internal/discovery"
	"quirks/internal/domain"
	"quirks/internal/registry"
	"quirks/internal/storage"
)

// Suite registers the checks to run into reg and returns it
type Suite func(reg *registry.Registry) *registry.Registry

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
	Last *LastCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, suite Suite) *Commands {
	filter := discovery.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)

	return &Commands{
		Run:  NewRunCommand(cfg, suite, filter, jsonStorage),
		List: NewListCommand(cfg, suite, filter, jsonStorage),
		Last: NewLastCommand(cfg, jsonStorage),
	}
}

// NewRootCommand creates the root command with every subcommand registered.
// Running the root command without a subcommand runs the suite.
func NewRootCommand(cfg *config.Config, suite Suite, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quirks",
		Short: "Run the Go language oddity checks",
		Long: `Runs an ordered list of self-contained checks, each demonstrating a rarely
used corner of the Go language. The first failing check stops the run.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var flags cli.Flags
	NewCommands(cfg, suite).Register(rootCmd, &flags, cfg)
	return rootCmd
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Apply(flags.ToConfigFlags())
		if cfg.NoColor {
			color.NoColor = true
		}
		return nil
	}

	// Root runs the suite
	rootCmd.RunE = c.Run.Execute
	rootCmd.PreRunE = applyFlags
	addRunFlags(rootCmd, flags)

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the checks in registration order",
		Long:    "Run every registered check in order and stop at the first failure",
		Args:    cobra.NoArgs,
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	addRunFlags(runCmd, flags)
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List registered checks",
		Long:    "List the registered checks in order without running them",
		Args:    cobra.NoArgs,
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter checks by name pattern (supports wildcards, e.g. 'testDefer*' or '*Slice*')")
	rootCmd.AddCommand(listCmd)

	// Last command
	lastCmd := &cobra.Command{
		Use:   "last",
		Short: "Show the last saved run",
		Long:  "Display the summary saved by the last run started with --save",
		Args:  cobra.NoArgs,
		RunE:  c.Last.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyFlags(cmd, args); err != nil {
				return err
			}
			if !config.IsValidFormat(cfg.Flags.Format) {
				return cli.NewExitError(cli.ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", cfg.Flags.Format, config.ValidFormats))
			}
			return nil
		},
	}
	lastCmd.Flags().StringVar(&flags.Format, "format", config.DefaultFormat, "Output format (text|json|yaml)")
	rootCmd.AddCommand(lastCmd)
}

func addRunFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter checks by name pattern (supports wildcards, e.g. 'testDefer*' or '*Slice*')")
	cmd.Flags().BoolVar(&flags.Report, "report", false, "Recover the first failure and print a report instead of crashing")
	cmd.Flags().BoolVar(&flags.Save, "save", false, "Save the run summary for the last command")
	cmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr when it is a terminal")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log every check to stderr")
}

// lastFailedIndex returns the registration index of the check that failed
// in the last saved run, or -1
func lastFailedIndex(st storage.Storage) int {
	summary, err := st.Load()
	if err != nil || summary.Failure == nil {
		return -1
	}
	return summary.Failure.Index
}

func buildSequence(suite Suite) domain.TestSequence {
	return suite(registry.New()).Build()
}
