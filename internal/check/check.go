// Package check provides the assertions used inside registered checks.
//
// Every helper raises a *domain.AssertionFailure with panic when its
// condition does not hold. Nothing in this package recovers.
package check

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"

	"github.com/google/go-cmp/cmp"

	"quirks/internal/domain"
)

// True fails unless cond holds
func True(cond bool, msgAndArgs ...any) {
	if !cond {
		raise(1, message("expected condition to hold", msgAndArgs))
	}
}

// False fails if cond holds
func False(cond bool, msgAndArgs ...any) {
	if cond {
		raise(1, message("expected condition not to hold", msgAndArgs))
	}
}

// exportAll lets cmp look inside unexported struct fields.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal fails unless want and got are deeply equal. The failure message
// carries a -want +got diff.
func Equal(want, got any, msgAndArgs ...any) {
	if diff := cmp.Diff(want, got, exportAll); diff != "" {
		raise(1, message(fmt.Sprintf("mismatch (-want +got):\n%s", diff), msgAndArgs))
	}
}

// Panics runs fn and fails unless it panics. It returns the recovered value.
// An assertion failure raised inside fn is not a match and keeps unwinding.
func Panics(fn func(), msgAndArgs ...any) (recovered any) {
	panicked := true
	func() {
		defer func() {
			recovered = recover()
			if failure, ok := recovered.(*domain.AssertionFailure); ok {
				panic(failure)
			}
		}()
		fn()
		panicked = false
	}()
	if !panicked {
		raise(1, message("expected function to panic", msgAndArgs))
	}
	return recovered
}

// Fail fails unconditionally
func Fail(format string, args ...any) {
	raise(1, fmt.Sprintf(format, args...))
}

func raise(skip int, msg string) {
	failure := &domain.AssertionFailure{Message: msg}
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		failure.File = filepath.Base(file)
		failure.Line = line
	}
	panic(failure)
}

func message(fallback string, msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return fallback
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs...)
}
