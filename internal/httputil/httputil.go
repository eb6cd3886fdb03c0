// Package httputil provides HTTP method and status-code helpers shared by the
// parser and scanner packages.
package httputil

import (
	"strconv"
	"strings"
)

// HTTP method constants, lowercased as they appear as path item keys in
// OpenAPI documents.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace" // OAS 3.0+ only; modeled but never scanned
)

// ScanMethods is the fixed, ordered set of HTTP methods the scanner visits.
// Methods outside this set (trace, extension keys) are never scanned.
var ScanMethods = []string{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodDelete,
	MethodPatch,
	MethodHead,
	MethodOptions,
}

// Status code validation constants.
const (
	statusCodeLength = 3   // standard length of HTTP status codes (e.g., "200", "404")
	minStatusCode    = 100 // minimum valid HTTP status code
	maxStatusCode    = 599 // maximum valid HTTP status code
	wildcardChar     = 'X' // wildcard character in status code patterns (e.g., "2XX")
	minWildcardDigit = '1'
	maxWildcardDigit = '5'
)

// ValidateStatusCode checks if a status code string is valid as a responses
// key according to the OpenAPI spec. Valid values are:
//   - "default" for the default response
//   - Extension fields starting with "x-"
//   - Wildcard patterns: 1XX, 2XX, 3XX, 4XX, 5XX
//   - Numeric codes: 100-599
func ValidateStatusCode(code string) bool {
	if code == "default" {
		return true
	}

	if strings.HasPrefix(code, "x-") {
		return true
	}

	if len(code) != statusCodeLength {
		return false
	}

	// Wildcard patterns (e.g., "2XX", "4XX").
	if code[1] == wildcardChar && code[2] == wildcardChar {
		return code[0] >= minWildcardDigit && code[0] <= maxWildcardDigit
	}

	statusCode, err := strconv.Atoi(code)
	return err == nil && statusCode >= minStatusCode && statusCode <= maxStatusCode
}
