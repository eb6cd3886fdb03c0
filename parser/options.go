package parser

import (
	"errors"
	"io"
)

// Option configures a ParseWithOptions call.
type Option func(*parseConfig) error

// parseConfig accumulates option values before parsing. Exactly one input
// source (file path, reader, or bytes) must be configured.
type parseConfig struct {
	filePath    string
	reader      io.Reader
	data        []byte
	haveData    bool
	sourceName  string
	resolveRefs bool
	maxRefDepth int
	logger      Logger
}

// WithFilePath parses the document at the given file path.
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		if path == "" {
			return errors.New("parser: file path must not be empty")
		}
		cfg.filePath = path
		return nil
	}
}

// WithReader parses the document read from r.
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return errors.New("parser: reader must not be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes parses an in-memory document.
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return errors.New("parser: data must not be nil")
		}
		cfg.data = data
		cfg.haveData = true
		return nil
	}
}

// WithSourceName sets the source name reported in result metadata and
// diagnostics for reader and byte inputs.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = name
		return nil
	}
}

// WithResolveRefs enables eager local reference resolution before decoding.
func WithResolveRefs(resolve bool) Option {
	return func(cfg *parseConfig) error {
		cfg.resolveRefs = resolve
		return nil
	}
}

// WithMaxRefDepth caps chained reference indirection during eager
// resolution. Zero means DefaultMaxRefDepth.
func WithMaxRefDepth(depth int) Option {
	return func(cfg *parseConfig) error {
		if depth < 0 {
			return errors.New("parser: max ref depth must not be negative")
		}
		cfg.maxRefDepth = depth
		return nil
	}
}

// WithLogger sets the logger that receives parse diagnostics.
func WithLogger(logger Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = logger
		return nil
	}
}

// ParseWithOptions parses a document configured entirely through options.
// It is equivalent to constructing a Parser and calling the matching Parse
// method, and exists for call sites that mix sources:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("api.yaml"),
//	    parser.WithResolveRefs(true),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	p := &Parser{
		ResolveRefs: cfg.resolveRefs,
		MaxRefDepth: cfg.maxRefDepth,
		Logger:      cfg.logger,
	}
	switch {
	case cfg.filePath != "":
		return p.Parse(cfg.filePath)
	case cfg.reader != nil:
		return p.ParseReader(cfg.reader, cfg.sourceName)
	default:
		return p.ParseBytes(cfg.data, cfg.sourceName)
	}
}

// applyOptions runs the options and validates that exactly one input source
// was configured.
func applyOptions(opts []Option) (*parseConfig, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	sources := 0
	if cfg.filePath != "" {
		sources++
	}
	if cfg.reader != nil {
		sources++
	}
	if cfg.haveData {
		sources++
	}
	switch sources {
	case 0:
		return nil, errors.New("parser: no input source configured: use WithFilePath, WithReader, or WithBytes")
	case 1:
		return cfg, nil
	default:
		return nil, errors.New("parser: multiple input sources configured: use exactly one of WithFilePath, WithReader, or WithBytes")
	}
}
