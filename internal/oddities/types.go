package oddities

import (
	"errors"
	"fmt"
	"strconv"

	"quirks/internal/check"
)

type oddError struct{}

func (*oddError) Error() string { return "odd" }

func mayFail(fail bool) error {
	var e *oddError
	if fail {
		e = &oddError{}
	}
	return e
}

// An interface holding a nil pointer has a type and is therefore not nil.
func testTypedNilInterfaceIsNotNil() {
	check.True(mayFail(false) != nil, "typed nil pointer wrapped in an interface is not nil")

	var p *oddError
	var err error = p
	check.True(p == nil)
	check.True(err != nil)
}

type base struct {
	name string
}

func (b base) describe() string { return "base:" + b.name }

func (b base) hello() string { return "hello from " + b.name }

type derived struct {
	base
	name string
}

func (d derived) describe() string { return "derived:" + d.name }

func testEmbeddingPromotesAndShadows() {
	d := derived{base: base{name: "inner"}, name: "outer"}

	check.Equal("derived:outer", d.describe())
	check.Equal("base:inner", d.base.describe())
	check.Equal("hello from inner", d.hello(), "promoted method sees the embedded field")
	check.Equal("outer", d.name)
	check.Equal("inner", d.base.name)
}

type cell [2]int

func testArraysAreComparableValues() {
	visits := map[cell]int{}
	visits[cell{1, 2}]++
	visits[[2]int{1, 2}]++
	check.Equal(2, visits[cell{1, 2}])

	a := [3]int{1, 2, 3}
	b := a
	b[0] = 99
	check.Equal(1, a[0], "assigning an array copies it")
	check.False(a == b)
}

type celsius float64

type number interface {
	~int | ~float64
}

func sum[T number](vals ...T) T {
	var total T
	for _, v := range vals {
		total += v
	}
	return total
}

// ~float64 admits every type whose underlying type is float64.
func testGenericTildeConstraint() {
	check.Equal(celsius(3.5), sum(celsius(1.5), celsius(2)))
	check.Equal(6, sum(1, 2, 3))
}

func describeValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case int, int64:
		// x is still any here: more than one type in the case
		return fmt.Sprintf("integer %v", x)
	case string:
		return "string of " + strconv.Itoa(len(x))
	case error:
		return "error " + x.Error()
	default:
		return fmt.Sprintf("%T", x)
	}
}

func testTypeSwitchBindings() {
	check.Equal("nil", describeValue(nil))
	check.Equal("integer 7", describeValue(int64(7)))
	check.Equal("string of 3", describeValue("abc"))
	check.Equal("error e", describeValue(errors.New("e")))
	check.Equal("float64", describeValue(1.5))
}
