package discovery

import (
	"testing"

	"quirks/internal/domain"
	"quirks/internal/registry"
)

func sequenceOf(names ...string) domain.TestSequence {
	reg := registry.New()
	for _, name := range names {
		reg.Add(name, func() {})
	}
	return reg.Build()
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		tests    []string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			tests:    []string{"testDeferOrder", "testSliceAliasing", "testIota"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches prefix",
			tests:    []string{"testDeferOrder", "testDeferArgs", "testIota"},
			pattern:  "testDefer*",
			expected: 2,
		},
		{
			name:     "wildcard pattern matches substring",
			tests:    []string{"testSliceAliasing", "testFullSliceExpression", "testIota"},
			pattern:  "*Slice*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			tests:    []string{"testSliceAliasing", "testIota", "testMapZeroRead"},
			pattern:  "Iota",
			expected: 1,
		},
		{
			name:     "question mark wildcard",
			tests:    []string{"testA1", "testB1", "testAB1"},
			pattern:  "test?1",
			expected: 2,
		},
		{
			name:     "no matches",
			tests:    []string{"testSliceAliasing", "testIota"},
			pattern:  "*NonExistent*",
			expected: 0,
		},
		{
			name:     "only wildcards matches everything via filepath.Match",
			tests:    []string{"testSliceAliasing", "testIota"},
			pattern:  "*",
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(sequenceOf(tt.tests...), tt.pattern)
			if result.Len() != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, result.Len())
			}
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty test list", func(t *testing.T) {
		result := filter.FilterByName(sequenceOf(), "test*")
		if result.Len() != 0 {
			t.Errorf("expected empty result, got %d items", result.Len())
		}
	})

	t.Run("pattern with multiple wildcards", func(t *testing.T) {
		result := filter.FilterByName(sequenceOf("testMethodValue", "testMethodExpression", "testIota"), "*Method*Value*")
		if result.Len() != 1 {
			t.Errorf("expected 1 match, got %d", result.Len())
		}
	})

	t.Run("keeps registration order and index", func(t *testing.T) {
		result := filter.FilterByName(sequenceOf("testB", "testA", "other", "testC"), "test*")
		names := result.Names()
		expected := []string{"testB", "testA", "testC"}
		if len(names) != len(expected) {
			t.Fatalf("expected %v, got %v", expected, names)
		}
		for i := range expected {
			if names[i] != expected[i] {
				t.Errorf("position %d: expected %s, got %s", i, expected[i], names[i])
			}
		}
		if result.At(2).Index != 3 {
			t.Errorf("expected original index 3, got %d", result.At(2).Index)
		}
	})
}
