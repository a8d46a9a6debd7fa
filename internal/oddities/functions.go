package oddities

import (
	"fmt"
	"strings"

	"quirks/internal/check"
)

func doubledAnswer() (n int) {
	defer func() { n *= 2 }()
	return 21
}

// A deferred closure runs after the return value is assigned and may
// rewrite a named result.
func testDeferModifiesNamedResult() {
	check.Equal(42, doubledAnswer())
}

func testDeferArgumentsEvaluatedEarly() {
	var got int
	func() {
		x := 1
		defer func(v int) { got = v }(x)
		x = 2
	}()
	check.Equal(1, got)
}

func testDeferRunsLastInFirstOut() {
	var order []int
	func() {
		for i := 0; i < 3; i++ {
			defer func() { order = append(order, i) }()
		}
	}()
	check.Equal([]int{2, 1, 0}, order)
}

func recoverDirectly() any {
	return recover()
}

func safeDivide(a, b int) (q int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return a / b, nil
}

// recover only stops a panic when called directly by a deferred function.
func testRecoverOnlyInDeferredCall() {
	check.True(recoverDirectly() == nil, "recover outside of a panic returns nil")

	q, err := safeDivide(1, 0)
	check.Equal(0, q)
	check.True(err != nil, "division by zero should have been recovered")
	check.True(strings.Contains(err.Error(), "integer divide by zero"), "unexpected error %q", err)
}

type tally struct {
	n int
}

func (t tally) value() int { return t.n }

func (t *tally) incr() { t.n++ }

// A method value with a value receiver copies the receiver when the value
// is taken; with a pointer receiver it captures the address.
func testMethodValueBindsReceiver() {
	t := tally{n: 1}
	get := t.value
	inc := t.incr

	inc()
	inc()
	check.Equal(1, get())
	check.Equal(3, t.value())
}

func testMethodExpressions() {
	value := tally.value
	incr := (*tally).incr

	var t tally
	incr(&t)
	incr(&t)
	check.Equal(2, value(t))
}

func countArgs(args ...int) (int, bool) {
	return len(args), args == nil
}

func testVariadicNilVersusEmpty() {
	n, isNil := countArgs()
	check.Equal(0, n)
	check.True(isNil, "no arguments yields a nil slice")

	n, isNil = countArgs([]int{}...)
	check.Equal(0, n)
	check.False(isNil, "an explicit empty slice is passed through as is")
}
