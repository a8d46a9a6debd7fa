package parser

import "quirks/internal/domain"

// Parser turns a recovered panic into a failure record
type Parser interface {
	ParseFailure(tc domain.TestCase, recovered any, stack []byte) domain.TestFailure
}
