package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quirks/internal/domain"
)

func failureOf(t *testing.T, fn func()) *domain.AssertionFailure {
	t.Helper()
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()
	require.NotNil(t, recovered, "expected an assertion failure")
	failure, ok := recovered.(*domain.AssertionFailure)
	require.True(t, ok, "expected *domain.AssertionFailure, got %T", recovered)
	return failure
}

func TestTrue(t *testing.T) {
	assert.NotPanics(t, func() { True(true) })

	failure := failureOf(t, func() { True(false, "value was %d", 7) })
	assert.Equal(t, "value was 7", failure.Message)
	assert.Equal(t, "check_test.go", failure.File)
	assert.Greater(t, failure.Line, 0)
}

func TestFalse(t *testing.T) {
	assert.NotPanics(t, func() { False(false) })

	failure := failureOf(t, func() { False(true) })
	assert.Equal(t, "expected condition not to hold", failure.Message)
}

func TestEqual(t *testing.T) {
	assert.NotPanics(t, func() { Equal([]int{1, 2}, []int{1, 2}) })
	assert.NotPanics(t, func() { Equal(map[string]int{"a": 1}, map[string]int{"a": 1}) })

	failure := failureOf(t, func() { Equal(3, 4) })
	assert.Contains(t, failure.Message, "mismatch (-want +got)")
	assert.Contains(t, failure.Message, "-")
}

type point struct {
	x, y int
	tag  *string
}

func TestEqual_UnexportedFields(t *testing.T) {
	tag := "origin"
	assert.NotPanics(t, func() { Equal(point{x: 1, y: 2}, point{x: 1, y: 2}) })
	assert.NotPanics(t, func() { Equal(point{tag: &tag}, point{tag: &tag}) })

	failure := failureOf(t, func() { Equal(point{x: 1}, point{x: 2}) })
	assert.Contains(t, failure.Message, "mismatch (-want +got)")
	assert.Contains(t, failure.Message, "x:")
}

func TestPanics(t *testing.T) {
	got := Panics(func() { panic("boom") })
	assert.Equal(t, "boom", got)

	failure := failureOf(t, func() { Panics(func() {}) })
	assert.Equal(t, "expected function to panic", failure.Message)
}

func TestPanics_AssertionFailureEscapes(t *testing.T) {
	reached := false
	failure := failureOf(t, func() {
		Panics(func() {
			Equal(1, 2)
			panic("never reached")
		})
		reached = true
	})
	assert.Contains(t, failure.Message, "mismatch (-want +got)")
	assert.False(t, reached, "Panics must not return after a nested assertion failure")
}

func TestPanics_NilPanicValue(t *testing.T) {
	// Since Go 1.21 panic(nil) surfaces as *runtime.PanicNilError.
	got := Panics(func() { panic(nil) })
	assert.NotNil(t, got)
}

func TestFail(t *testing.T) {
	failure := failureOf(t, func() { Fail("unreachable branch %s", "x") })
	assert.Equal(t, "unreachable branch x", failure.Message)
	assert.Contains(t, failure.Error(), "assertion failed at check_test.go:")
}

func TestMessage_NonStringFirstArg(t *testing.T) {
	failure := failureOf(t, func() { True(false, 42) })
	assert.Equal(t, "42", failure.Message)
}
