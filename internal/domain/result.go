package domain

// RunSummary is the persisted record of a guarded run
type RunSummary struct {
	RunID           string       `json:"run_id" yaml:"run_id"`
	Total           int          `json:"total" yaml:"total"`
	Passed          int          `json:"passed" yaml:"passed"`
	Failure         *TestFailure `json:"failure,omitempty" yaml:"failure,omitempty"`
	Filter          string       `json:"filter,omitempty" yaml:"filter,omitempty"`
	Duration        string       `json:"duration" yaml:"duration"`
	DurationSeconds float64      `json:"duration_seconds" yaml:"duration_seconds"`
	Timestamp       string       `json:"timestamp" yaml:"timestamp"`
}

// Succeeded reports whether every case in the run passed
func (r *RunSummary) Succeeded() bool {
	return r.Failure == nil && r.Passed == r.Total
}
