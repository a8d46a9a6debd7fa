package oddities

import "quirks/internal/check"

// Two appends to the same slice with spare capacity write to the same
// backing array.
func testSliceAliasingAfterAppend() {
	base := make([]int, 3, 10)
	a := append(base, 1)
	b := append(base, 2)
	check.Equal(2, a[3], "a and b share the backing array")
	check.Equal(2, b[3])

	full := []int{1, 2, 3}
	c := append(full, 4)
	c[0] = 100
	check.Equal(1, full[0], "append beyond capacity copies")
}

func testFullSliceExpression() {
	arr := [5]int{0, 1, 2, 3, 4}

	capped := arr[1:3:3]
	check.Equal(2, len(capped))
	check.Equal(2, cap(capped))
	capped = append(capped, 99)
	check.Equal(3, arr[3], "capped slice reallocates instead of overwriting")
	check.Equal([]int{1, 2, 99}, capped)

	open := arr[1:3]
	check.Equal(4, cap(open))
	open = append(open, 99)
	check.Equal(99, arr[3])
	check.Equal([]int{1, 2, 99}, open)
}

// Reading a missing key yields the zero value and does not insert it.
func testMapReadOfMissingKey() {
	counts := map[string]int{}
	counts["x"]++
	check.Equal(1, counts["x"])
	check.Equal(0, counts["missing"])
	check.Equal(1, len(counts))

	var nilMap map[string]int
	check.Equal(0, nilMap["anything"])
	check.Equal(0, len(nilMap))
	check.Panics(func() { nilMap["boom"] = 1 }, "writing to a nil map panics")
}

func testCompositeLiteralIndexKeys() {
	arr := [...]string{2: "c", 0: "a"}
	check.Equal(3, len(arr))
	check.Equal("", arr[1])

	s := []int{5: 1}
	check.Equal(6, len(s))
	check.Equal(1, s[5])
}

func testCopyUsesShorterLength() {
	dst := make([]int, 2)
	n := copy(dst, []int{1, 2, 3})
	check.Equal(2, n)
	check.Equal([]int{1, 2}, dst)

	// copy from a string copies bytes, not runes
	b := make([]byte, 5)
	n = copy(b, "héllo")
	check.Equal(5, n)
	check.Equal("héll", string(b))
}

func testPointerToArrayIndexing() {
	arr := [3]int{1, 2, 3}
	p := &arr
	p[1] = 20

	check.Equal(20, arr[1])
	check.Equal(3, len(p))

	total := 0
	for _, v := range p {
		total += v
	}
	check.Equal(24, total)
}

func testRangeOverStringYieldsRunes() {
	const s = "aé😀b"

	var indexes []int
	var runes []rune
	for i, r := range s {
		indexes = append(indexes, i)
		runes = append(runes, r)
	}

	check.Equal([]int{0, 1, 3, 7}, indexes)
	check.Equal([]rune{'a', 'é', '😀', 'b'}, runes)
	check.Equal(8, len(s))
}

// Receiving from a nil channel blocks forever, so select never picks it.
func testSelectIgnoresNilChannel() {
	var never chan int
	ready := make(chan int, 1)
	ready <- 7

	select {
	case v := <-never:
		check.Fail("received %d from a nil channel", v)
	case v := <-ready:
		check.Equal(7, v)
	}
}
