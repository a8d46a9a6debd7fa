package commands

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"quirks/internal/cli"
	"quirks/internal/config"
	"quirks/internal/discovery"
	"quirks/internal/domain"
	"quirks/internal/execution"
	"quirks/internal/storage"
	"quirks/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config  *config.Config
	suite   Suite
	filter  *discovery.Filter
	storage storage.Storage
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	suite Suite,
	filter *discovery.Filter,
	st storage.Storage,
) *RunCommand {
	return &RunCommand{
		config:  cfg,
		suite:   suite,
		filter:  filter,
		storage: st,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	flags := rc.config.Flags
	formatter := ui.NewFormatter(cmd.OutOrStdout())

	seq := rc.filter.FilterByName(buildSequence(rc.suite), flags.Filter)
	if seq.Len() == 0 && flags.Filter != "" {
		formatter.PrintNoTests(flags.Filter)
		return nil
	}

	runner := execution.NewRunner(seq, rc.logger(cmd.ErrOrStderr()))
	if flags.Progress && isTerminal(cmd.ErrOrStderr()) {
		runner.SetProgress(ui.NewProgressBar(seq.Len(), cmd.ErrOrStderr()))
	}

	started := time.Now()
	if !flags.Report {
		// A failing check panics straight through here.
		passed := runner.Run()
		if err := rc.save(seq, passed, nil, started); err != nil {
			return err
		}
		formatter.PrintSuccess(passed)
		return nil
	}

	passed, err := runner.RunGuarded()
	var failure *execution.FailureError
	if err != nil && !errors.As(err, &failure) {
		return err
	}

	var failed *domain.TestFailure
	if failure != nil {
		failed = &failure.Failure
	}
	if err := rc.save(seq, passed, failed, started); err != nil {
		return err
	}

	if failure != nil {
		formatter.PrintFailure(failure.Failure, failure.Passed, failure.Total)
		return cli.WrapExitError(cli.ExitFailure, "run stopped", err)
	}
	formatter.PrintSuccess(passed)
	return nil
}

func (rc *RunCommand) save(seq domain.TestSequence, passed int, failure *domain.TestFailure, started time.Time) error {
	if !rc.config.Flags.Save {
		return nil
	}
	duration := time.Since(started)
	summary := &domain.RunSummary{
		RunID:           uuid.NewString(),
		Total:           seq.Len(),
		Passed:          passed,
		Failure:         failure,
		Filter:          rc.config.Flags.Filter,
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}
	if err := rc.storage.Save(summary); err != nil {
		return cli.WrapExitError(cli.ExitCommandError, "failed to save run summary", err)
	}
	return nil
}

func (rc *RunCommand) logger(w io.Writer) *slog.Logger {
	if !rc.config.Flags.Verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
