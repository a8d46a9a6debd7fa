package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"quirks/internal/domain"
)

var (
	// "\t/path/to/file.go:42 +0x1d" or "\t/path/to/file.go:42"
	locationPattern = regexp.MustCompile(`^\s+(.+\.go):(\d+)(?:\s+\+0x[0-9a-f]+)?$`)
	// "panic({0x4a1f20?, 0xc000012345?})"
	panicFramePattern = regexp.MustCompile(`^panic\(`)
)

// Frame is one function call of a goroutine trace
type Frame struct {
	Function string
	File     string
	Line     int
}

func (f Frame) String() string {
	return fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line)
}

// PanicParser parses recovered panics and runtime/debug stack traces
type PanicParser struct{}

// NewPanicParser creates a new PanicParser
func NewPanicParser() *PanicParser {
	return &PanicParser{}
}

// ParseFailure builds the failure record for the case that panicked.
// Assertion failures keep their own location; any other panic is located
// from the first frame below the innermost panic call.
func (p *PanicParser) ParseFailure(tc domain.TestCase, recovered any, stack []byte) domain.TestFailure {
	failure := domain.TestFailure{
		Index:    tc.Index,
		TestName: tc.Name,
	}

	frames := p.FramesAfterPanic(stack)
	for _, f := range frames {
		failure.StackTrace = append(failure.StackTrace, f.String())
	}

	var assertion *domain.AssertionFailure
	if err, ok := recovered.(error); ok && errors.As(err, &assertion) {
		failure.Assertion = true
		failure.Message = assertion.Message
		failure.File = assertion.File
		failure.Line = assertion.Line
		return failure
	}

	failure.Message = fmt.Sprint(recovered)
	for _, f := range frames {
		// runtime.mapassign, runtime.panicIndex, ... raise on behalf of the caller
		if strings.HasPrefix(f.Function, "runtime.") {
			continue
		}
		failure.File = filepath.Base(f.File)
		failure.Line = f.Line
		break
	}
	return failure
}

// FramesAfterPanic returns the frames that sit below the innermost
// panic(...) frame, i.e. the code that raised the panic and its callers.
// Without a panic frame every frame is returned.
func (p *PanicParser) FramesAfterPanic(stack []byte) []Frame {
	frames := p.ParseFrames(stack)
	start := 0
	for i, f := range frames {
		if panicFramePattern.MatchString(f.Function) {
			start = i + 1
		}
	}
	return frames[start:]
}

// ParseFrames parses a goroutine trace as produced by runtime/debug.Stack
func (p *PanicParser) ParseFrames(stack []byte) []Frame {
	lines := strings.Split(strings.ReplaceAll(string(stack), "\r\n", "\n"), "\n")

	var frames []Frame
	for i := 0; i+1 < len(lines); i++ {
		fn := lines[i]
		if fn == "" || strings.HasPrefix(fn, "goroutine ") || strings.HasPrefix(fn, "\t") {
			continue
		}
		m := locationPattern.FindStringSubmatch(lines[i+1])
		if len(m) < 3 {
			continue
		}
		line, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		frames = append(frames, Frame{Function: fn, File: m[1], Line: line})
		i++
	}
	return frames
}
