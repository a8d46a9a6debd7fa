package domain

// TestFunc is a zero-argument check. It signals failure by panicking.
type TestFunc func()

// TestCase represents a single registered check
type TestCase struct {
	Index int      // Registration position, the identity of the case
	Name  string   // Diagnostic name, not required to be unique
	Func  TestFunc // The check itself
}

// TestSequence is the finalized, ordered list of registered checks.
// The zero value is an empty sequence.
type TestSequence struct {
	cases []TestCase
}

// NewTestSequence creates a sequence owning a copy of cases
func NewTestSequence(cases []TestCase) TestSequence {
	if len(cases) == 0 {
		return TestSequence{}
	}
	owned := make([]TestCase, len(cases))
	copy(owned, cases)
	return TestSequence{cases: owned}
}

// Len returns the number of cases
func (s TestSequence) Len() int {
	return len(s.cases)
}

// At returns the case at position i
func (s TestSequence) At(i int) TestCase {
	return s.cases[i]
}

// Cases returns a copy of the cases in registration order
func (s TestSequence) Cases() []TestCase {
	out := make([]TestCase, len(s.cases))
	copy(out, s.cases)
	return out
}

// Names returns the case names in registration order
func (s TestSequence) Names() []string {
	names := make([]string, len(s.cases))
	for i, tc := range s.cases {
		names[i] = tc.Name
	}
	return names
}

// Filter returns the order-preserving subsequence of cases for which keep
// returns true. Cases keep their original Index.
func (s TestSequence) Filter(keep func(TestCase) bool) TestSequence {
	var kept []TestCase
	for _, tc := range s.cases {
		if keep(tc) {
			kept = append(kept, tc)
		}
	}
	return TestSequence{cases: kept}
}
