package domain

import "fmt"

// AssertionFailure is the single fatal signal raised from inside a check.
// It is raised with panic and is never recovered by the default runner.
type AssertionFailure struct {
	Message string
	File    string
	Line    int
}

func (a *AssertionFailure) Error() string {
	if a.File == "" {
		return "assertion failed: " + a.Message
	}
	return fmt.Sprintf("assertion failed at %s:%d: %s", a.File, a.Line, a.Message)
}

// TestFailure describes the first failed case of a guarded run
type TestFailure struct {
	Index      int      `json:"index" yaml:"index"`
	TestName   string   `json:"test_name" yaml:"test_name"`
	Message    string   `json:"message" yaml:"message"`
	File       string   `json:"file,omitempty" yaml:"file,omitempty"`
	Line       int      `json:"line,omitempty" yaml:"line,omitempty"`
	Assertion  bool     `json:"assertion" yaml:"assertion"` // False when the case crashed with a non-assertion panic
	StackTrace []string `json:"stack_trace,omitempty" yaml:"stack_trace,omitempty"`
}
