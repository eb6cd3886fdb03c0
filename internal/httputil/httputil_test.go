package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected bool
	}{
		// Valid: "default" keyword
		{"default keyword", "default", true},

		// Valid: extension fields (x-)
		{"extension x-custom", "x-custom", true},
		{"extension x-200", "x-200", true},

		// Valid: wildcard patterns (1XX-5XX)
		{"wildcard 1XX", "1XX", true},
		{"wildcard 2XX", "2XX", true},
		{"wildcard 5XX", "5XX", true},

		// Invalid: wildcards outside 1-5 range
		{"invalid wildcard 0XX", "0XX", false},
		{"invalid wildcard 6XX", "6XX", false},

		// Invalid: partial wildcards
		{"partial wildcard 2X", "2X", false},
		{"partial wildcard 20X", "20X", false},
		{"partial wildcard XX2", "XX2", false},

		// Valid: numeric codes in range (100-599)
		{"valid 100", "100", true},
		{"valid 200", "200", true},
		{"valid 418", "418", true},
		{"valid 599", "599", true},

		// Invalid: numeric codes outside range
		{"invalid 099", "099", false},
		{"invalid 600", "600", false},
		{"invalid 999", "999", false},

		// Invalid: wrong length
		{"too short 99", "99", false},
		{"too long 1000", "1000", false},

		// Invalid: junk
		{"empty string", "", false},
		{"whitespace", "   ", false},
		{"alphabetic abc", "abc", false},
		{"alphanumeric 2a0", "2a0", false},
		{"special char 2-0", "2-0", false},
		{"not extension x200", "x200", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateStatusCode(tt.code)
			assert.Equal(t, tt.expected, result, "ValidateStatusCode(%q) = %v, want %v", tt.code, result, tt.expected)
		})
	}
}

// TestHTTPMethodConstants verifies that method constants have expected lowercase values.
// This ensures consistency with OpenAPI path item keys.
func TestHTTPMethodConstants(t *testing.T) {
	assert.Equal(t, "get", MethodGet, "MethodGet should be lowercase")
	assert.Equal(t, "put", MethodPut, "MethodPut should be lowercase")
	assert.Equal(t, "post", MethodPost, "MethodPost should be lowercase")
	assert.Equal(t, "delete", MethodDelete, "MethodDelete should be lowercase")
	assert.Equal(t, "options", MethodOptions, "MethodOptions should be lowercase")
	assert.Equal(t, "head", MethodHead, "MethodHead should be lowercase")
	assert.Equal(t, "patch", MethodPatch, "MethodPatch should be lowercase")
	assert.Equal(t, "trace", MethodTrace, "MethodTrace should be lowercase")
}

// TestScanMethods verifies the fixed scan set: exactly seven methods, no
// trace, no duplicates, and a stable order.
func TestScanMethods(t *testing.T) {
	assert.Len(t, ScanMethods, 7, "scan set should contain exactly seven methods")
	assert.NotContains(t, ScanMethods, MethodTrace, "trace must never be scanned")

	seen := make(map[string]bool, len(ScanMethods))
	for _, m := range ScanMethods {
		assert.False(t, seen[m], "duplicate method %q in scan set", m)
		seen[m] = true
	}

	expected := []string{"get", "post", "put", "delete", "patch", "head", "options"}
	assert.Equal(t, expected, ScanMethods, "scan order should be stable")
}
