package execution

import (
	"io"
	"log/slog"
	"runtime/debug"
	"time"

	"quirks/internal/domain"
	"quirks/internal/parser"
)

// Runner executes a finalized sequence once, in order, on the calling
// goroutine, and stops at the first failure.
type Runner struct {
	sequence domain.TestSequence
	logger   *slog.Logger
	progress Progress
	parser   parser.Parser

	state    State
	passed   int
	failedAt int
}

// NewRunner creates a Runner for seq. A nil logger discards all records.
func NewRunner(seq domain.TestSequence, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		sequence: seq,
		logger:   logger,
		parser:   parser.NewPanicParser(),
		failedAt: -1,
	}
}

// SetProgress sets the progress sink for the runner
func (r *Runner) SetProgress(progress Progress) {
	r.progress = progress
}

// SetParser replaces the parser used by RunGuarded
func (r *Runner) SetParser(p parser.Parser) {
	r.parser = p
}

// State returns the current lifecycle state
func (r *Runner) State() State {
	return r.state
}

// FailedAt returns the sequence position of the failed case, or -1
func (r *Runner) FailedAt() int {
	return r.failedAt
}

// Passed returns the number of cases that completed so far
func (r *Runner) Passed() int {
	return r.passed
}

// Run invokes every case in order and returns the number that completed,
// which is always the sequence length. A panicking case is not recovered:
// the panic leaves Run and, unless the caller recovers it, terminates the
// process without running the remaining cases.
func (r *Runner) Run() int {
	r.start()
	for i := 0; i < r.sequence.Len(); i++ {
		r.invoke(i, r.sequence.At(i))
	}
	r.finish()
	return r.passed
}

// RunGuarded is Run with the first panic recovered and returned as a
// *FailureError. Execution still stops at that case.
func (r *Runner) RunGuarded() (int, error) {
	r.start()
	for i := 0; i < r.sequence.Len(); i++ {
		if failure := r.invokeGuarded(i, r.sequence.At(i)); failure != nil {
			if r.progress != nil {
				r.progress.Finish()
			}
			return r.passed, &FailureError{
				Failure: *failure,
				Passed:  r.passed,
				Total:   r.sequence.Len(),
			}
		}
	}
	r.finish()
	return r.passed, nil
}

func (r *Runner) start() {
	if r.state != StateNotStarted {
		panic("execution: runner already started")
	}
	r.state = StateRunning
	r.logger.Debug("run started", "cases", r.sequence.Len())
}

func (r *Runner) finish() {
	r.state = StateAllPassed
	if r.progress != nil {
		r.progress.Finish()
	}
	r.logger.Debug("run finished", "passed", r.passed)
}

func (r *Runner) invoke(pos int, tc domain.TestCase) {
	started := time.Now()
	completed := false
	defer func() {
		if completed {
			return
		}
		// Still unwinding: record where the run stopped.
		r.state = StateFailed
		r.failedAt = pos
		if r.progress != nil {
			r.progress.Update(r.passed, 1)
		}
		r.logger.Error("check failed", "index", tc.Index, "name", tc.Name)
	}()

	r.logger.Debug("check started", "index", tc.Index, "name", tc.Name)
	tc.Func()
	completed = true

	r.passed++
	if r.progress != nil {
		r.progress.Update(r.passed, 0)
	}
	r.logger.Debug("check passed", "index", tc.Index, "name", tc.Name, "duration", time.Since(started))
}

func (r *Runner) invokeGuarded(pos int, tc domain.TestCase) (failure *domain.TestFailure) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}
		parsed := r.parser.ParseFailure(tc, recovered, debug.Stack())
		failure = &parsed
	}()
	r.invoke(pos, tc)
	return nil
}
