// Package registry accumulates checks in declaration order and hands them to
// the runner as an immutable sequence.
package registry

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"quirks/internal/domain"
)

// Registry is an append-only builder of test cases
type Registry struct {
	cases []domain.TestCase
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{}
}

// Register appends fn and returns the same registry so calls can be chained.
// The case name is taken from the function symbol.
func (r *Registry) Register(fn domain.TestFunc) *Registry {
	return r.Add(FuncName(fn), fn)
}

// Add appends fn under an explicit name and returns the same registry
func (r *Registry) Add(name string, fn domain.TestFunc) *Registry {
	idx := len(r.cases)
	if name == "" {
		name = fmt.Sprintf("test#%d", idx)
	}
	r.cases = append(r.cases, domain.TestCase{Index: idx, Name: name, Func: fn})
	return r
}

// Len returns the number of registered cases
func (r *Registry) Len() int {
	return len(r.cases)
}

// Build returns a snapshot of the registered cases. Later registrations do
// not affect sequences that were already built.
func (r *Registry) Build() domain.TestSequence {
	return domain.NewTestSequence(r.cases)
}

// FuncName returns the unqualified symbol name of fn, e.g. "testMutable" for
// quirks/internal/oddities.testMutable. Closures keep their enclosing name
// ("outer.func1"). A nil fn yields "".
func FuncName(fn domain.TestFunc) string {
	if fn == nil {
		return ""
	}
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
