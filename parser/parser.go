package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"
)

// SourceFormat identifies the serialization format of a parsed document.
type SourceFormat string

const (
	// FormatUnknown means the format could not be determined.
	FormatUnknown SourceFormat = "unknown"
	// FormatYAML is YAML input.
	FormatYAML SourceFormat = "yaml"
	// FormatJSON is JSON input.
	FormatJSON SourceFormat = "json"
)

// Parser parses OpenAPI documents (OAS 2.0 and 3.x, YAML or JSON) into the
// typed Document model. The zero value is ready to use; New returns one with
// defaults applied.
type Parser struct {
	// ResolveRefs eagerly resolves local $ref nodes in the raw document
	// before decoding. Unresolvable references (external, circular, or
	// dangling) are left intact and recorded as warnings, never errors.
	// When false, consumers may still resolve references on demand via
	// Document.ResolveLocalRef.
	ResolveRefs bool

	// MaxRefDepth caps chained $ref indirection during eager resolution.
	// Zero means DefaultMaxRefDepth.
	MaxRefDepth int

	// Logger receives parse diagnostics. Nil disables logging.
	Logger Logger
}

// New creates a Parser with default settings.
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger or a no-op logger.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// ParseResult holds a parsed document together with source metadata and any
// warnings produced while parsing.
type ParseResult struct {
	// Document is the typed document model.
	Document *Document
	// Data is the raw document map after key normalization and, when
	// ResolveRefs is set, reference resolution.
	Data map[string]any
	// Version is the detected OpenAPI version family.
	Version OASVersion
	// SourcePath is the file path or source name the document came from.
	SourcePath string
	// SourceFormat is the detected serialization format.
	SourceFormat SourceFormat
	// SourceSize is the input length in bytes.
	SourceSize int
	// LoadTime is the wall-clock duration of the parse.
	LoadTime time.Duration
	// Warnings lists non-fatal issues: dropped response keys, unresolved
	// references, and similar. A non-empty list never implies failure.
	Warnings []string
}

// Parse reads and parses the OpenAPI document at filePath.
func (p *Parser) Parse(filePath string) (*ParseResult, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	return p.parseBytes(data, filePath)
}

// ParseReader reads the document from r and parses it. The sourceName is
// used in result metadata and diagnostics; it may be empty.
func (p *Parser) ParseReader(r io.Reader, sourceName string) (*ParseResult, error) {
	if r == nil {
		return nil, errors.New("parser: reader must not be nil")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read input: %w", err)
	}
	if sourceName == "" {
		sourceName = "reader"
	}
	return p.parseBytes(data, sourceName)
}

// ParseBytes parses an in-memory document. The sourceName is used in result
// metadata and diagnostics; it may be empty.
func (p *Parser) ParseBytes(data []byte, sourceName string) (*ParseResult, error) {
	if sourceName == "" {
		sourceName = "bytes"
	}
	return p.parseBytes(data, sourceName)
}

func (p *Parser) parseBytes(data []byte, sourcePath string) (*ParseResult, error) {
	start := time.Now()
	result := &ParseResult{
		SourcePath: sourcePath,
		SourceSize: len(data),
	}

	result.SourceFormat = detectFormatFromPath(sourcePath)
	if result.SourceFormat == FormatUnknown {
		result.SourceFormat = detectFormatFromContent(data)
	}

	var raw any
	if result.SourceFormat == FormatJSON {
		// JSON is valid YAML, but encoding/json is faster and already
		// produces string-keyed maps.
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parser: failed to parse JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parser: failed to parse YAML: %w", err)
		}
	}

	root, ok := normalizeMapKeys(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parser: document root must be a mapping, got %T", raw)
	}

	version, err := detectVersion(root)
	if err != nil {
		return nil, err
	}
	result.Version = version

	if p.ResolveRefs {
		resolver := newRefResolver(root, p.MaxRefDepth)
		resolver.resolveAll()
		result.Warnings = append(result.Warnings, resolver.warnings...)
	}

	dec := &decoder{}
	result.Document = dec.document(root)
	result.Data = root
	result.Warnings = append(result.Warnings, dec.warnings...)
	result.LoadTime = time.Since(start)

	log := p.log()
	for _, w := range result.Warnings {
		log.Warn("parse warning", "source", result.SourcePath, "warning", w)
	}
	log.Debug("document parsed",
		"source", result.SourcePath,
		"format", string(result.SourceFormat),
		"version", result.Version.String(),
		"paths", len(result.Document.Paths),
		"warnings", len(result.Warnings),
		"duration", result.LoadTime,
	)
	return result, nil
}

// detectVersion classifies the document by its top-level version field.
func detectVersion(root map[string]any) (OASVersion, error) {
	if v, ok := root["swagger"].(string); ok {
		if classifyVersion(v) == OASVersion2 {
			return OASVersion2, nil
		}
		return OASVersionUnknown, fmt.Errorf("parser: unsupported swagger version %q", v)
	}
	if v, ok := root["openapi"].(string); ok {
		if classifyVersion(v) == OASVersion3 {
			return OASVersion3, nil
		}
		return OASVersionUnknown, fmt.Errorf("parser: unsupported openapi version %q", v)
	}
	return OASVersionUnknown, errors.New("parser: unable to detect document version: neither openapi nor swagger field present")
}

// detectFormatFromPath infers the format from the file extension.
func detectFormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// detectFormatFromContent inspects the first non-whitespace byte; JSON
// documents open with a brace or bracket, anything else is treated as YAML.
func detectFormatFromContent(data []byte) SourceFormat {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{', '[':
			return FormatJSON
		default:
			return FormatYAML
		}
	}
	return FormatYAML
}
