package oddities

import (
	"math"
	"strconv"

	"quirks/internal/check"
)

func testIntegerOverflowWraps() {
	var i int8 = 127
	i++
	check.Equal(int8(-128), i)

	var u uint8
	u--
	check.Equal(uint8(255), u)
}

// Untyped constants are exact and only take a type where they are used.
func testUntypedConstantArithmetic() {
	const huge = 1 << 100
	check.Equal(4, huge>>98)

	const seven = 7
	check.Equal(3, seven/2)
	check.Equal(3.5, seven/2.0)
}

type permission uint8

const (
	permRead permission = 1 << iota
	permWrite
	_
	permExecute
)

func testIotaExpressions() {
	check.Equal(permission(1), permRead)
	check.Equal(permission(2), permWrite)
	check.Equal(permission(8), permExecute, "the blank identifier still consumes an iota")
	check.Equal(permission(3), permRead|permWrite)

	// iota counts lines of the const block, not identifiers
	const (
		a, b = iota, iota * 10
		c, d
	)
	check.Equal([]int{0, 0, 1, 10}, []int{a, b, c, d})
}

// rgb565 packs three colour channels into 16 bits, 5/6/5.
type rgb565 uint16

func (c rgb565) red() uint8   { return uint8(c >> 11 & 0x1f) }
func (c rgb565) green() uint8 { return uint8(c >> 5 & 0x3f) }
func (c rgb565) blue() uint8  { return uint8(c & 0x1f) }

// Shift and & share a precedence level in Go, so c >> 11 & 0x1f needs no
// parentheses.
func testBitFieldsViaShiftAndMask() {
	c := rgb565(0b11111_000010_00001)
	check.Equal(uint8(31), c.red())
	check.Equal(uint8(2), c.green())
	check.Equal(uint8(1), c.blue())
}

func testIntegerToStringConversion() {
	check.Equal("A", string(rune(65)))
	check.Equal("65", strconv.Itoa(65))
}

// NaN is unequal to itself, so every NaN key is a fresh map entry.
func testNaNMapKeys() {
	nan := math.NaN()
	check.True(nan != nan)

	m := map[float64]int{}
	m[nan] = 1
	m[nan] = 2
	check.Equal(2, len(m))
}
