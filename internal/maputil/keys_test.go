package maputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string][]string
		expected []string
	}{
		{
			name:     "unsorted keys",
			input:    map[string][]string{"users": nil, "auth": nil, "pets": nil},
			expected: []string{"auth", "pets", "users"},
		},
		{
			name:     "single key",
			input:    map[string][]string{"default": nil},
			expected: []string{"default"},
		},
		{
			name:     "empty map",
			input:    map[string][]string{},
			expected: []string{},
		},
		{
			name:     "nil map",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortedKeys(tt.input)
			assert.Equal(t, tt.expected, got, "SortedKeys(%v)", tt.input)
		})
	}
}

func TestSortedKeys_PointerValues(t *testing.T) {
	type pathItem struct{ summary string }
	input := map[string]*pathItem{"/user/{id}": {summary: "b"}, "/login": {summary: "a"}}
	got := SortedKeys(input)
	assert.Equal(t, []string{"/login", "/user/{id}"}, got)
}

// TestSortedKeys_Deterministic runs the same map through SortedKeys many
// times; Go randomizes range order, so any ordering leak would flake here.
func TestSortedKeys_Deterministic(t *testing.T) {
	input := map[string]bool{"e": true, "d": true, "c": true, "b": true, "a": true}
	expected := []string{"a", "b", "c", "d", "e"}
	for i := 0; i < 100; i++ {
		assert.Equal(t, expected, SortedKeys(input))
	}
}
