package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasconst/internal/mcpserver"
	"github.com/erraggy/oasconst/parser"
)

// MCPFlags contains flags for the mcp command
type MCPFlags struct {
	LogLevel string
}

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
// Returns the FlagSet and an MCPFlags struct with bound flag variables.
func SetupMCPFlags() (*flag.FlagSet, *MCPFlags) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	flags := &MCPFlags{}

	fs.StringVar(&flags.LogLevel, "log-level", "info", "log level for stderr diagnostics: debug, info, warn, or error")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasconst mcp [flags]\n\n")
		Writef(fs.Output(), "Run the MCP (Model Context Protocol) server over stdio.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nTools exposed: scan_fields, group_paths, generate_constants.\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasconst mcp\n")
		Writef(fs.Output(), "  oasconst mcp -log-level debug\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - stdout carries the MCP transport; all diagnostics go to stderr\n")
	}

	return fs, flags
}

// HandleMCP executes the mcp command. It blocks until the client disconnects
// or the process receives an interrupt or termination signal.
func HandleMCP(args []string) error {
	fs, flags := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	level, err := parseLogLevel(flags.LogLevel)
	if err != nil {
		return err
	}
	logger := parser.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx, logger)
}

// parseLogLevel maps a -log-level value to a slog level.
func parseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid -log-level '%s'. Valid levels: debug, info, warn, error", level)
	}
}
