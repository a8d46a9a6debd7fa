// Package oddities holds small self-contained checks, each demonstrating a
// rarely used or surprising corner of the Go language. A check passes by
// returning and fails by raising an assertion failure.
package oddities

import "quirks/internal/registry"

// Register adds every check to reg, in the order they run
func Register(reg *registry.Registry) *registry.Registry {
	return reg.
		Register(testBranchOnDeclaration).
		Register(testShadowingInIfScope).
		Register(testGotoJumpsBackward).
		Register(testLabeledBreakFromSelect).
		Register(testSwitchFallthrough).
		Register(testLoopVariablePerIteration).
		Register(testRangeOverInteger).
		Register(testDeferModifiesNamedResult).
		Register(testDeferArgumentsEvaluatedEarly).
		Register(testDeferRunsLastInFirstOut).
		Register(testRecoverOnlyInDeferredCall).
		Register(testMethodValueBindsReceiver).
		Register(testMethodExpressions).
		Register(testVariadicNilVersusEmpty).
		Register(testTypedNilInterfaceIsNotNil).
		Register(testEmbeddingPromotesAndShadows).
		Register(testArraysAreComparableValues).
		Register(testGenericTildeConstraint).
		Register(testTypeSwitchBindings).
		Register(testSliceAliasingAfterAppend).
		Register(testFullSliceExpression).
		Register(testMapReadOfMissingKey).
		Register(testCompositeLiteralIndexKeys).
		Register(testCopyUsesShorterLength).
		Register(testPointerToArrayIndexing).
		Register(testRangeOverStringYieldsRunes).
		Register(testSelectIgnoresNilChannel).
		Register(testIntegerOverflowWraps).
		Register(testUntypedConstantArithmetic).
		Register(testIotaExpressions).
		Register(testBitFieldsViaShiftAndMask).
		Register(testIntegerToStringConversion).
		Register(testNaNMapKeys)
}
