// Command oasconst reads an OpenAPI specification and emits Go path-string
// constants grouped by tag, plus lookup tables of paths whose request or
// response schemas carry named fields.
package main

import (
	"fmt"
	"os"

	"github.com/erraggy/oasconst"
	"github.com/erraggy/oasconst/cmd/oasconst/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasconst v%s (commit %s, built %s)\n", oasconst.Version(), oasconst.Commit(), oasconst.BuildTime())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		if err := commands.HandleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "scan":
		if err := commands.HandleScan(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "groups":
		if err := commands.HandleGroups(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands lists every command name for typo suggestions.
var knownCommands = []string{"generate", "scan", "groups", "mcp", "version", "help"}

// suggestCommand returns the known command closest to input, or empty when
// nothing is within edit distance 2.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`oasconst - OpenAPI path constants generator

Usage:
  oasconst <command> [options]

Commands:
  generate    Generate Go path constants and field lookup tables
  scan        Report which paths carry the given schema fields
  groups      Group the paths of a specification by operation tag
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oasconst generate openapi.yaml
  oasconst generate -response-fields '["email","ssn"]' -group-tables openapi.yaml
  oasconst scan -response-fields '["email"]' -format json openapi.yaml
  oasconst groups swagger.json
  cat openapi.yaml | oasconst generate -o apipaths_gen.go -

Run 'oasconst <command> --help' for more information on a command.`)
}
