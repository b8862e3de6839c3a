package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/forgelabs/forgectl/internal/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			name:   "default config",
			config: DefaultConfig(),
		},
		{
			name:   "verbose config",
			config: VerboseConfig(),
		},
		{
			name: "custom config json",
			config: Config{
				Level:     LevelDebug,
				Format:    FormatJSON,
				Output:    OutputStdout(),
				AddSource: true,
			},
		},
		{
			name: "custom config text",
			config: Config{
				Level:     LevelWarn,
				Format:    FormatText,
				Output:    OutputStderr(),
				AddSource: false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.config)
			if logger == nil {
				t.Fatal("expected logger, got nil")
			}
			if logger.slog == nil {
				t.Fatal("expected slog logger, got nil")
			}
			if logger.config.Level != tt.config.Level {
				t.Errorf("expected level %v, got %v", tt.config.Level, logger.config.Level)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: NewOutput(buf),
	})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below WARN should be filtered, got: %s", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("WARN and ERROR messages should be emitted, got: %s", out)
	}
}

func TestJSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: NewOutput(buf),
	})

	logger.Info("session persisted", "path", "/tmp/session.json")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log entry, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "session persisted" {
		t.Errorf("expected msg 'session persisted', got %v", entry["msg"])
	}
	if entry["path"] != "/tmp/session.json" {
		t.Errorf("expected path attribute, got %v", entry["path"])
	}
}

func TestWithError(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: NewOutput(buf),
	})

	forgeErr := errors.NewLoginRejectedError("invalid credentials")
	logger.WithError(forgeErr).Error("login failed")

	out := buf.String()
	if !strings.Contains(out, "AUTH-001") {
		t.Errorf("expected error_code AUTH-001 in output, got: %s", out)
	}
	if !strings.Contains(out, "invalid credentials") {
		t.Errorf("expected provider reason in output, got: %s", out)
	}
}

func TestWithErrorPlain(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatText,
		Output: NewOutput(buf),
	})

	logger.WithError(context.DeadlineExceeded).Warn("token exchange failed")

	if !strings.Contains(buf.String(), "deadline exceeded") {
		t.Errorf("expected plain error text in output, got: %s", buf.String())
	}
}

func TestWith(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: NewOutput(buf),
	})

	logger.With("run_id", "abc123").Info("setup started")

	if !strings.Contains(buf.String(), "abc123") {
		t.Errorf("expected run_id attribute in output, got: %s", buf.String())
	}
}

func TestWithGroup(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: NewOutput(buf),
	})

	logger.WithGroup("identity").Info("flow initiated", "action", "https://idp/flows/1")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log entry, got %q: %v", buf.String(), err)
	}
	group, ok := entry["identity"].(map[string]any)
	if !ok {
		t.Fatalf("expected attributes grouped under 'identity', got: %v", entry)
	}
	if group["action"] != "https://idp/flows/1" {
		t.Errorf("expected action attribute in group, got %v", group)
	}
}

func TestEnabled(t *testing.T) {
	logger := New(Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: NewOutput(&bytes.Buffer{}),
	})

	ctx := context.Background()
	if logger.Enabled(ctx, LevelDebug) {
		t.Error("DEBUG should not be enabled at WARN level")
	}
	if !logger.Enabled(ctx, LevelError) {
		t.Error("ERROR should be enabled at WARN level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"ERROR", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"text", FormatText},
		{"console", FormatText},
		{"bogus", FormatText},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultLogger(t *testing.T) {
	SetDefaultLogger(nil)

	logger := DefaultLogger()
	if logger == nil {
		t.Fatal("DefaultLogger should lazily initialize")
	}

	custom := Verbose()
	SetDefaultLogger(custom)
	if DefaultLogger() != custom {
		t.Error("DefaultLogger should return the configured logger")
	}
}
