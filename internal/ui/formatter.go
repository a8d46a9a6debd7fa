package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"quirks/internal/domain"
)

var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	cyan   = color.New(color.FgCyan)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
)

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintSuccess prints the aggregate completion line, uncoloured
func (f *Formatter) PrintSuccess(count int) {
	fmt.Fprintf(f.out, "%d tests passed successfully!\n", count)
}

// PrintNoTests is printed when a filter leaves nothing to run
func (f *Formatter) PrintNoTests(pattern string) {
	yellow.Fprintf(f.out, "No checks match %q\n", pattern)
}

// PrintTestList prints the registered checks in order. failedIndex marks
// the check that failed in the last saved run with [F]; pass -1 for none.
func (f *Formatter) PrintTestList(seq domain.TestSequence, failedIndex int) {
	green.Fprintf(f.out, "Found %d check(s):\n", seq.Len())

	for i := 0; i < seq.Len(); i++ {
		tc := seq.At(i)
		connector := "├──"
		if i == seq.Len()-1 {
			connector = "└──"
		}

		failMarker := ""
		if tc.Index == failedIndex {
			failMarker = " " + red.Sprint("[F]")
		}
		cyan.Fprintf(f.out, "%s #%d %s", connector, tc.Index, tc.Name)
		fmt.Fprintf(f.out, "%s\n", failMarker)
	}
}

// PrintFailure prints the first failure of a guarded run
func (f *Formatter) PrintFailure(failure domain.TestFailure, passed, total int) {
	fmt.Fprintln(f.out)
	red.Fprintf(f.out, "✗ check #%d %s failed (%d of %d passed before it)\n",
		failure.Index, failure.TestName, passed, total)
	if failure.File != "" {
		yellow.Fprintf(f.out, "  at %s:%d\n", failure.File, failure.Line)
	}
	kind := "panic"
	if failure.Assertion {
		kind = "assertion"
	}
	white.Fprintf(f.out, "  %s: %s\n", kind, failure.Message)

	if len(failure.StackTrace) > 0 {
		fmt.Fprintln(f.out, "  stack:")
		for _, frame := range failure.StackTrace {
			fmt.Fprintf(f.out, "    %s\n", frame)
		}
	}
}

// PrintSummary prints a saved run summary as a table
func (f *Formatter) PrintSummary(summary *domain.RunSummary) {
	const (
		border = "───────────────────────"
		values = "────────────────────────────────────────"
	)

	fmt.Fprintln(f.out)
	cyan.Fprintln(f.out, "╔════════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                      Check Run Statistics                      ║")
	cyan.Fprintln(f.out, "╚════════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)

	failed := "-"
	if summary.Failure != nil {
		failed = fmt.Sprintf("#%d %s", summary.Failure.Index, summary.Failure.TestName)
	}
	filter := summary.Filter
	if filter == "" {
		filter = "-"
	}

	rows := []struct {
		label string
		value string
		c     *color.Color
	}{
		{"Run ID", summary.RunID, white},
		{"Total Checks", strconv.Itoa(summary.Total), white},
		{"Passed Checks", strconv.Itoa(summary.Passed), green},
		{"Failed Check", failed, red},
		{"Filter", filter, white},
		{"Duration", fmt.Sprintf("%.2fs", summary.DurationSeconds), white},
		{"Timestamp", summary.Timestamp, white},
	}

	fmt.Fprintf(f.out, "┌%s┬%s┐\n", border, values)
	for i, row := range rows {
		fmt.Fprintf(f.out, "│ %-21s │ ", row.label)
		row.c.Fprintf(f.out, "%-38s", row.value)
		fmt.Fprint(f.out, " │\n")
		if i < len(rows)-1 {
			fmt.Fprintf(f.out, "├%s┼%s┤\n", border, values)
		}
	}
	fmt.Fprintf(f.out, "└%s┴%s┘\n", border, values)

	fmt.Fprintln(f.out)
	if summary.Succeeded() {
		green.Fprintln(f.out, "✓ All checks passed!")
		return
	}
	if summary.Failure != nil {
		red.Fprintf(f.out, "✗ %s\n", summary.Failure.Message)
		if summary.Failure.File != "" {
			yellow.Fprintf(f.out, "  at %s:%d\n", summary.Failure.File, summary.Failure.Line)
		}
	}
}
