// Package commands provides CLI command handlers for oasconst.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasconst"
	"github.com/erraggy/oasconst/parser"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// ParseFieldsFlag parses a -response-fields / -request-fields value, which
// must be a JSON string array literal such as '["email","id"]'. An empty
// value means the flag was not set and yields no fields.
func ParseFieldsFlag(name, value string) ([]string, error) {
	if value == "" {
		return nil, nil
	}
	var fields []string
	if err := json.Unmarshal([]byte(value), &fields); err != nil {
		return nil, fmt.Errorf(`invalid -%s value %s: must be a JSON string array, e.g. '["email","id"]': %w`, name, value, err)
	}
	for i, field := range fields {
		if field == "" {
			return nil, fmt.Errorf("invalid -%s value: element %d is empty", name, i)
		}
	}
	return fields, nil
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
// This prevents symlink attacks where a symlink could redirect output to an unintended location.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		// File doesn't exist yet, safe to write.
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// FormatSpecPath returns a display-friendly path for the specification.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// OutputSpecHeader outputs the common specification header to stderr.
// This includes oasconst version, specification path, and OAS version.
func OutputSpecHeader(specPath string, version parser.OASVersion) {
	Writef(os.Stderr, "oasconst version: %s\n", oasconst.Version())
	Writef(os.Stderr, "Specification: %s\n", FormatSpecPath(specPath))
	Writef(os.Stderr, "OAS Version: %s\n\n", version)
}

// parseSpec parses an OAS document from a file path or stdin ("-"). When
// resolveRefs is true, local $ref pointers are resolved during parsing.
func parseSpec(specPath string, resolveRefs bool, logger parser.Logger) (*parser.ParseResult, error) {
	p := parser.New()
	p.ResolveRefs = resolveRefs
	p.Logger = logger

	if specPath == StdinFilePath {
		return p.ParseReader(os.Stdin, "stdin")
	}
	return p.Parse(specPath)
}
