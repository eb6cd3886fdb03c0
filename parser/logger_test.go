package parser

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures log messages for assertions.
type recordingLogger struct {
	entries []string
}

func (l *recordingLogger) record(level, msg string, attrs ...any) {
	b := strings.Builder{}
	b.WriteString(level)
	b.WriteString(" ")
	b.WriteString(msg)
	for _, a := range attrs {
		b.WriteString(" ")
		switch v := a.(type) {
		case string:
			b.WriteString(v)
		default:
			b.WriteString("?")
		}
	}
	l.entries = append(l.entries, b.String())
}

func (l *recordingLogger) Debug(msg string, attrs ...any) { l.record("DEBUG", msg, attrs...) }
func (l *recordingLogger) Info(msg string, attrs ...any)  { l.record("INFO", msg, attrs...) }
func (l *recordingLogger) Warn(msg string, attrs ...any)  { l.record("WARN", msg, attrs...) }
func (l *recordingLogger) Error(msg string, attrs ...any) { l.record("ERROR", msg, attrs...) }
func (l *recordingLogger) With(_ ...any) Logger           { return l }

func (l *recordingLogger) has(substr string) bool {
	for _, e := range l.entries {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

var _ Logger = (*recordingLogger)(nil)

// TestNopLogger tests that the no-op logger is safe to use everywhere
func TestNopLogger(t *testing.T) {
	var logger Logger = NopLogger{}
	logger.Debug("debug", "k", "v")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	with := logger.With("component", "test")
	require.NotNil(t, with)
	with.Debug("still fine")
}

// TestSlogAdapter tests the log/slog adapter including With attributes
func TestSlogAdapter(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler))

	logger.Debug("debug message", "path", "/pets")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	assert.Contains(t, out, "debug message")
	assert.Contains(t, out, "path=/pets")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")

	buf.Reset()
	scoped := logger.With("component", "scanner")
	scoped.Info("scoped")
	assert.Contains(t, buf.String(), "component=scanner")
}

// TestNewSlogAdapterNil tests the nil fallback to slog.Default
func TestNewSlogAdapterNil(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	require.NotNil(t, adapter)
	// Must not panic when used.
	adapter.Debug("noop under default level")
}

// TestParserLogFallback tests that an unconfigured parser logs to a nop logger
func TestParserLogFallback(t *testing.T) {
	p := New()
	require.NotNil(t, p.log())
	assert.IsType(t, NopLogger{}, p.log())

	rec := &recordingLogger{}
	p.Logger = rec
	assert.Same(t, rec, p.log().(*recordingLogger))
}
