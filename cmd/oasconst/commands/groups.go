package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/oasconst/internal/maputil"
	"github.com/erraggy/oasconst/scanner"
)

// GroupsFlags contains flags for the groups command
type GroupsFlags struct {
	DefaultGroup string
	Format       string
}

// SetupGroupsFlags creates and configures a FlagSet for the groups command.
// Returns the FlagSet and a GroupsFlags struct with bound flag variables.
func SetupGroupsFlags() (*flag.FlagSet, *GroupsFlags) {
	fs := flag.NewFlagSet("groups", flag.ContinueOnError)
	flags := &GroupsFlags{}

	fs.StringVar(&flags.DefaultGroup, "default-group", scanner.DefaultGroupName, "group name for paths of untagged operations")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasconst groups [flags] <file|->\n\n")
		Writef(fs.Output(), "Group the paths of an OpenAPI specification by operation tag.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasconst groups openapi.yaml\n")
		Writef(fs.Output(), "  oasconst groups -format json openapi.yaml\n")
		Writef(fs.Output(), "  oasconst groups -default-group misc swagger.json\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - A path with operations under several tags appears in every tag's group\n")
	}

	return fs, flags
}

// HandleGroups executes the groups command
func HandleGroups(args []string) error {
	fs, flags := SetupGroupsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("groups command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	result, err := parseSpec(specPath, false, nil)
	if err != nil {
		return fmt.Errorf("parsing specification: %w", err)
	}

	groups := scanner.GroupPathsByTag(result.Document, flags.DefaultGroup)

	if flags.Format == FormatText {
		OutputSpecHeader(specPath, result.Version)
		for _, group := range maputil.SortedKeys(groups) {
			Writef(os.Stdout, "%s (%d):\n", group, len(groups[group]))
			for _, path := range groups[group] {
				Writef(os.Stdout, "  %s\n", path)
			}
		}
		return nil
	}

	report := &groupsReport{
		Source:  FormatSpecPath(specPath),
		Version: result.Version.String(),
		Groups:  groups,
	}
	return OutputStructured(report, flags.Format)
}

// groupsReport is the structured output of the groups command.
type groupsReport struct {
	Source  string              `json:"source"  yaml:"source"`
	Version string              `json:"version" yaml:"version"`
	Groups  map[string][]string `json:"groups"  yaml:"groups"`
}
