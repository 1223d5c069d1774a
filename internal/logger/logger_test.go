package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dbsmedya/dbmeta/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string // String representation of zapcore.Level
	}{
		{"debug", "debug"},
		{"info", "info"},
		{"", "info"}, // empty defaults to info
		{"warn", "warn"},
		{"error", "error"},
		{"unknown", "info"}, // unknown defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level := parseLevel(tt.input)
			if level.String() != tt.expected {
				t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, level.String(), tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test-log.json")

	tests := []struct {
		name string
		cfg  *config.LoggingConfig
	}{
		{"json format info level", &config.LoggingConfig{Level: "info", Format: "json", Output: "stderr"}},
		{"text format debug level", &config.LoggingConfig{Level: "debug", Format: "text", Output: "stdout"}},
		{"file output", &config.LoggingConfig{Level: "warn", Format: "json", Output: logFile}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if logger == nil {
				t.Fatal("New() returned nil logger without error")
			}
			_ = logger.Sync()
		})
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	logger.Errorw("discarded", "k", "v")
	if err := logger.Sync(); err != nil {
		t.Errorf("Sync() on nop logger: %v", err)
	}
}

func TestContextFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := FromZap(zap.New(core))

	scoped := logger.WithDescriptor("table").WithOperation("getColumns").WithFields(map[string]interface{}{
		"path": "table/columns",
	})
	if scoped == logger {
		t.Fatal("context methods should return a new logger instance")
	}
	scoped.Infow("bound")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["descriptor"] != "table" {
		t.Errorf("descriptor = %v", ctx["descriptor"])
	}
	if ctx["operation"] != "getColumns" {
		t.Errorf("operation = %v", ctx["operation"])
	}
	if ctx["path"] != "table/columns" {
		t.Errorf("path = %v", ctx["path"])
	}
}

func TestBuildEncoder(t *testing.T) {
	for _, format := range []string{"json", "text", "unknown"} {
		for _, colored := range []bool{true, false} {
			if buildEncoder(format, colored) == nil {
				t.Errorf("buildEncoder(%q, %v) returned nil", format, colored)
			}
		}
	}
}

func TestOpenSink(t *testing.T) {
	for _, output := range []string{"stdout", "stderr", ""} {
		sink, toFile, err := openSink(output)
		if err != nil || sink == nil || toFile {
			t.Errorf("openSink(%q) = %v, %v, %v", output, sink, toFile, err)
		}
	}

	tmpFile := filepath.Join(t.TempDir(), "test-logger-output.log")
	sink, toFile, err := openSink(tmpFile)
	if err != nil || sink == nil || !toFile {
		t.Errorf("openSink(file) = %v, %v, %v", sink, toFile, err)
	}

	if _, _, err := openSink(filepath.Join(t.TempDir(), "missing", "dir", "x.log")); err == nil {
		t.Error("openSink() should fail for a file in a missing directory")
	}
}

func TestNewBadOutput(t *testing.T) {
	cfg := &config.LoggingConfig{Output: filepath.Join(t.TempDir(), "missing", "x.log")}
	if _, err := New(cfg); err == nil {
		t.Error("New() should fail when the log file cannot be opened")
	}
}

func TestTextFileOutputIsPlain(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "plain.log")
	logger, err := New(&config.LoggingConfig{Level: "info", Format: "text", Output: logFile})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.WithPath("table/columns").Warn("plain message")
	_ = logger.Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if strings.Contains(string(content), "\x1b[") {
		t.Error("file output should not carry color codes")
	}
	if !strings.Contains(string(content), "WARN") || !strings.Contains(string(content), "table/columns") {
		t.Errorf("unexpected log line: %s", content)
	}
}

func TestLoggingOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logger-test.json")

	cfg := &config.LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: logFile,
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Info("test info message")
	logger.Debug("hidden debug message")
	logger.WithDescriptor("column").Warn("message with descriptor context")

	_ = logger.Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	contentStr := string(content)
	if !strings.Contains(contentStr, "test info message") {
		t.Error("Log file should contain 'test info message'")
	}
	if strings.Contains(contentStr, "hidden debug message") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(contentStr, `"descriptor":"column"`) {
		t.Error("Log file should contain descriptor context")
	}
}
