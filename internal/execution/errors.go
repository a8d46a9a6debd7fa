package execution

import (
	"errors"
	"fmt"

	"quirks/internal/domain"
)

// ErrCheckFailed is wrapped by every FailureError
var ErrCheckFailed = errors.New("check failed")

// FailureError reports the first failed case of a guarded run
type FailureError struct {
	Failure domain.TestFailure
	Passed  int // Cases that completed before the failure
	Total   int // Length of the sequence
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("check #%d %s failed after %d of %d passed: %s",
		e.Failure.Index, e.Failure.TestName, e.Passed, e.Total, e.Failure.Message)
}

func (e *FailureError) Unwrap() error {
	return ErrCheckFailed
}
