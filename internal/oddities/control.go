package oddities

import "quirks/internal/check"

// A variable declared in an if statement is scoped to the whole if/else
// chain and the branch is taken on the accompanying condition.
func testBranchOnDeclaration() {
	data := map[string]string{"key": "value"}

	if value, ok := data["key"]; ok {
		check.Equal("value", value)
		return
	}

	check.Fail("declaration in if statement did not branch")
}

func testShadowingInIfScope() {
	x := 1
	if x := 2; x > 1 {
		check.Equal(2, x)
	}
	check.Equal(1, x, "outer x untouched by the shadowing declaration")
}

// goto is alive and well, as long as it does not jump over declarations
// or into a block.
func testGotoJumpsBackward() {
	i := 0
again:
	if i < 3 {
		i++
		goto again
	}
	check.Equal(3, i)
}

// A bare break inside select only leaves the select.
func testLabeledBreakFromSelect() {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)

	sum, wakeups := 0, 0
drain:
	for {
		wakeups++
		select {
		case v, ok := <-ch:
			if !ok {
				break drain
			}
			if v == 2 {
				// Skips the addition below, then loops again.
				break
			}
			sum += v
		}
	}
	check.Equal(4, sum)
	check.Equal(4, wakeups)
}

func testSwitchFallthrough() {
	var visited []string
	switch n := 1; n {
	case 1:
		visited = append(visited, "one")
		fallthrough
	case 2:
		visited = append(visited, "two")
	case 3:
		visited = append(visited, "three")
	}
	check.Equal([]string{"one", "two"}, visited)
}

// Since Go 1.22 each iteration has its own copy of the loop variable.
func testLoopVariablePerIteration() {
	var funcs []func() int
	for i := 0; i < 3; i++ {
		funcs = append(funcs, func() int { return i })
	}

	var got []int
	for _, f := range funcs {
		got = append(got, f())
	}
	check.Equal([]int{0, 1, 2}, got)
}

func testRangeOverInteger() {
	sum := 0
	for i := range 5 {
		sum += i
	}
	check.Equal(10, sum)
}
