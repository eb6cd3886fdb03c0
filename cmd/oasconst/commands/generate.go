package commands

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/erraggy/oasconst"
	"github.com/erraggy/oasconst/generator"
	"github.com/erraggy/oasconst/parser"
	"github.com/erraggy/oasconst/scanner"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Output         string
	PackageName    string
	ConstPrefix    string
	ResponseFields string
	RequestFields  string
	DefaultGroup   string
	GroupTables    bool
	ResolveRefs    bool
	Verbose        bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Output, "o", "apipaths_gen.go", "output file for the generated source")
	fs.StringVar(&flags.Output, "out", "apipaths_gen.go", "output file for the generated source")
	fs.StringVar(&flags.PackageName, "p", "apipaths", "Go package name for the generated file")
	fs.StringVar(&flags.PackageName, "package", "apipaths", "Go package name for the generated file")
	fs.StringVar(&flags.ConstPrefix, "prefix", "Path", "prefix for generated constant names")
	fs.StringVar(&flags.ResponseFields, "response-fields", "", `fields to scan response schemas for, as a JSON string array (e.g. '["email","id"]')`)
	fs.StringVar(&flags.RequestFields, "request-fields", "", `fields to scan request schemas for, as a JSON string array (e.g. '["email","id"]')`)
	fs.StringVar(&flags.DefaultGroup, "default-group", scanner.DefaultGroupName, "group name for paths of untagged operations")
	fs.BoolVar(&flags.GroupTables, "group-tables", false, "also emit per-group lookup tables for scanned fields")
	fs.BoolVar(&flags.ResolveRefs, "resolve-refs", false, "eagerly resolve local $ref pointers before scanning")
	fs.BoolVar(&flags.Verbose, "v", false, "log scan and generation details to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasconst generate [flags] <file|->\n\n")
		Writef(fs.Output(), "Generate Go path constants and field lookup tables from an OpenAPI specification.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasconst generate openapi.yaml\n")
		Writef(fs.Output(), "  oasconst generate -o internal/apipaths/apipaths_gen.go openapi.yaml\n")
		Writef(fs.Output(), "  oasconst generate -p routes -prefix Route openapi.yaml\n")
		Writef(fs.Output(), "  oasconst generate -response-fields '[\"email\",\"ssn\"]' -group-tables openapi.yaml\n")
		Writef(fs.Output(), "  oasconst generate -request-fields '[\"password\"]' -resolve-refs swagger.json\n")
		Writef(fs.Output(), "\nPipelining:\n")
		Writef(fs.Output(), "  Use '-' as the file path to read the OpenAPI specification from stdin.\n")
		Writef(fs.Output(), "  Example: cat openapi.yaml | oasconst generate -o apipaths_gen.go -\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - Output is deterministic: the same document always yields the same file\n")
		Writef(fs.Output(), "  - Paths of untagged operations land in the %q const block\n", scanner.DefaultGroupName)
		Writef(fs.Output(), "  - Field flags add ResponseFieldPaths / RequestFieldPaths lookup tables\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)

	responseFields, err := ParseFieldsFlag("response-fields", flags.ResponseFields)
	if err != nil {
		return err
	}
	requestFields, err := ParseFieldsFlag("request-fields", flags.RequestFields)
	if err != nil {
		return err
	}

	var logger parser.Logger
	if flags.Verbose {
		logger = debugLogger()
	}

	// Parse the document with timing across the whole pipeline.
	startTime := time.Now()
	result, err := parseSpec(specPath, flags.ResolveRefs, logger)
	if err != nil {
		return fmt.Errorf("parsing specification: %w", err)
	}
	doc := result.Document

	sc := scanner.New()
	sc.DefaultGroup = flags.DefaultGroup
	sc.Logger = logger

	input := &generator.Input{GroupPaths: sc.GroupPaths(doc)}
	if len(responseFields) > 0 {
		input.ResponseFields = sc.ScanResponseFields(doc, responseFields)
	}
	if len(requestFields) > 0 {
		input.RequestFields = sc.ScanRequestFields(doc, requestFields)
	}

	gen := generator.New()
	gen.PackageName = flags.PackageName
	gen.ConstPrefix = flags.ConstPrefix
	gen.Source = FormatSpecPath(specPath)
	gen.IncludeGroupTables = flags.GroupTables
	gen.Logger = logger

	genResult, err := gen.Generate(input)
	if err != nil {
		return fmt.Errorf("generating constants: %w", err)
	}
	totalTime := time.Since(startTime)

	outputPath := filepath.Clean(flags.Output)
	if err := RejectSymlinkOutput(outputPath); err != nil {
		return err
	}
	if err := genResult.File.WriteFile(outputPath); err != nil {
		return fmt.Errorf("writing generated file: %w", err)
	}

	// Print results
	fmt.Printf("OpenAPI Path Constants\n")
	fmt.Printf("======================\n\n")
	fmt.Printf("oasconst version: %s\n", oasconst.Version())
	fmt.Printf("Specification: %s\n", FormatSpecPath(specPath))
	fmt.Printf("OAS Version: %s\n", result.Version)
	fmt.Printf("Package: %s\n", gen.PackageName)
	fmt.Printf("Constants: %d\n", genResult.ConstCount)
	fmt.Printf("Groups: %d\n", genResult.GroupCount)
	if len(responseFields) > 0 {
		fmt.Printf("Response Fields: %v\n", responseFields)
	}
	if len(requestFields) > 0 {
		fmt.Printf("Request Fields: %v\n", requestFields)
	}
	fmt.Printf("Total Time: %v\n\n", totalTime)

	if len(result.Warnings) > 0 {
		fmt.Printf("Parse Warnings (%d):\n", len(result.Warnings))
		for _, warning := range result.Warnings {
			fmt.Printf("  - %s\n", warning)
		}
		fmt.Println()
	}

	fmt.Printf("✓ Wrote %s (%d bytes)\n", outputPath, len(genResult.File.Content))
	return nil
}

// debugLogger returns a Logger that writes debug-level diagnostics to stderr.
func debugLogger() parser.Logger {
	return parser.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}
