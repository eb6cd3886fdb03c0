package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/oasconst/internal/maputil"
	"github.com/erraggy/oasconst/parser"
	"github.com/erraggy/oasconst/scanner"
)

// Scan location constants
const (
	LocationResponse = "response"
	LocationRequest  = "request"
	LocationBoth     = "both"
)

// ScanFlags contains flags for the scan command
type ScanFlags struct {
	ResponseFields string
	RequestFields  string
	Location       string
	Format         string
	DefaultGroup   string
	ResolveRefs    bool
	Verbose        bool
}

// SetupScanFlags creates and configures a FlagSet for the scan command.
// Returns the FlagSet and a ScanFlags struct with bound flag variables.
func SetupScanFlags() (*flag.FlagSet, *ScanFlags) {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	flags := &ScanFlags{}

	fs.StringVar(&flags.ResponseFields, "response-fields", "", `fields to scan response schemas for, as a JSON string array (e.g. '["email","id"]')`)
	fs.StringVar(&flags.RequestFields, "request-fields", "", `fields to scan request schemas for, as a JSON string array (e.g. '["email","id"]')`)
	fs.StringVar(&flags.Location, "location", LocationBoth, "which side to scan: response, request, or both")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.DefaultGroup, "default-group", scanner.DefaultGroupName, "group name for paths of untagged operations")
	fs.BoolVar(&flags.ResolveRefs, "resolve-refs", false, "eagerly resolve local $ref pointers before scanning")
	fs.BoolVar(&flags.Verbose, "v", false, "log every finding to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasconst scan [flags] <file|->\n\n")
		Writef(fs.Output(), "Report which paths carry the given fields in their request or response schemas.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasconst scan -response-fields '[\"email\"]' openapi.yaml\n")
		Writef(fs.Output(), "  oasconst scan -request-fields '[\"password\"]' -location request openapi.yaml\n")
		Writef(fs.Output(), "  oasconst scan -response-fields '[\"ssn\"]' -format json openapi.yaml\n")
		Writef(fs.Output(), "  cat swagger.json | oasconst scan -response-fields '[\"id\"]' -\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - Fields match anywhere in a schema tree, including nested objects and arrays\n")
		Writef(fs.Output(), "  - The -location flag selects which sides run; each side needs its field flag\n")
	}

	return fs, flags
}

// HandleScan executes the scan command
func HandleScan(args []string) error {
	fs, flags := SetupScanFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("scan command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if flags.Location != LocationResponse && flags.Location != LocationRequest && flags.Location != LocationBoth {
		return fmt.Errorf("invalid -location '%s'. Valid locations: %s, %s, %s",
			flags.Location, LocationResponse, LocationRequest, LocationBoth)
	}

	responseFields, err := ParseFieldsFlag("response-fields", flags.ResponseFields)
	if err != nil {
		return err
	}
	requestFields, err := ParseFieldsFlag("request-fields", flags.RequestFields)
	if err != nil {
		return err
	}

	scanResponse := flags.Location != LocationRequest && len(responseFields) > 0
	scanRequest := flags.Location != LocationResponse && len(requestFields) > 0
	if !scanResponse && !scanRequest {
		fs.Usage()
		return fmt.Errorf("scan requires -response-fields and/or -request-fields covered by -location")
	}

	var logger parser.Logger
	if flags.Verbose {
		logger = debugLogger()
	}

	result, err := parseSpec(specPath, flags.ResolveRefs, logger)
	if err != nil {
		return fmt.Errorf("parsing specification: %w", err)
	}
	doc := result.Document

	sc := scanner.New()
	sc.DefaultGroup = flags.DefaultGroup
	sc.Logger = logger

	report := &scanReport{
		Source:  FormatSpecPath(specPath),
		Version: result.Version.String(),
	}
	if scanResponse {
		report.Response = sc.ScanResponseFields(doc, responseFields)
	}
	if scanRequest {
		report.Request = sc.ScanRequestFields(doc, requestFields)
	}

	if flags.Format == FormatText {
		OutputSpecHeader(specPath, result.Version)
		if report.Response != nil {
			renderFieldScan("Response", report.Response)
		}
		if report.Request != nil {
			renderFieldScan("Request", report.Request)
		}
		return nil
	}
	return OutputStructured(report, flags.Format)
}

// scanReport is the structured output of the scan command.
type scanReport struct {
	Source   string             `json:"source"             yaml:"source"`
	Version  string             `json:"version"            yaml:"version"`
	Response *scanner.FieldScan `json:"response,omitempty" yaml:"response,omitempty"`
	Request  *scanner.FieldScan `json:"request,omitempty"  yaml:"request,omitempty"`
}

// renderFieldScan prints one scan's aggregates as indented text.
// Fields appear in the order they were requested; paths and groups are
// already sorted by the scanner.
func renderFieldScan(side string, scan *scanner.FieldScan) {
	Writef(os.Stdout, "%s field paths:\n", side)
	for _, field := range scan.Fields {
		paths := scan.FieldPaths[field]
		if len(paths) == 0 {
			Writef(os.Stdout, "  %s: (none)\n", field)
			continue
		}
		Writef(os.Stdout, "  %s:\n", field)
		for _, path := range paths {
			Writef(os.Stdout, "    %s\n", path)
		}
	}
	Writef(os.Stdout, "\n%s field paths by group:\n", side)
	for _, field := range scan.Fields {
		groups := scan.GroupFieldPaths[field]
		if len(groups) == 0 {
			Writef(os.Stdout, "  %s: (none)\n", field)
			continue
		}
		Writef(os.Stdout, "  %s:\n", field)
		for _, group := range maputil.SortedKeys(groups) {
			Writef(os.Stdout, "    %s:\n", group)
			for _, path := range groups[group] {
				Writef(os.Stdout, "      %s\n", path)
			}
		}
	}
	Writef(os.Stdout, "\n")
}
