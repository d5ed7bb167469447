package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// fakeBinder wraps a pflag.FlagSet to satisfy the flagBinder interface.
type fakeBinder struct {
	fs *pflag.FlagSet
}

func (f *fakeBinder) Flags() *pflag.FlagSet { return f.fs }

// newFlagBinder creates a FlagSet with all config flags registered at their defaults.
func newFlagBinder(defaults Config) *fakeBinder {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, defaults)

	return &fakeBinder{fs: fs}
}

// --- DefaultConfig ---

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Tokenizer.Model != "" {
		t.Errorf("Tokenizer.Model = %q; want empty", cfg.Tokenizer.Model)
	}

	if cfg.Tokenizer.Encoding != "" {
		t.Errorf("Tokenizer.Encoding = %q; want empty", cfg.Tokenizer.Encoding)
	}

	if cfg.Tokenizer.Offline {
		t.Error("Tokenizer.Offline = true; want false")
	}

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "info")
	}
}

// --- Load ---

func TestLoad_Defaults(t *testing.T) {
	defaults := DefaultConfig()

	cfg, err := Load(LoadOptions{Cmd: newFlagBinder(defaults), Defaults: defaults})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg != defaults {
		t.Errorf("Load with no overrides = %+v; want defaults %+v", cfg, defaults)
	}
}

func TestLoad_FlagOverride(t *testing.T) {
	defaults := DefaultConfig()
	binder := newFlagBinder(defaults)

	err := binder.fs.Set("tokenizer-model", "gpt-4o")
	if err != nil {
		t.Fatalf("set flag: %v", err)
	}

	cfg, err := Load(LoadOptions{Cmd: binder, Defaults: defaults})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Tokenizer.Model != "gpt-4o" {
		t.Errorf("Tokenizer.Model = %q; want %q", cfg.Tokenizer.Model, "gpt-4o")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TOKENCOUNT_TOKENIZER_ENCODING", "cl100k_base")

	defaults := DefaultConfig()

	cfg, err := Load(LoadOptions{Cmd: newFlagBinder(defaults), Defaults: defaults})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Tokenizer.Encoding != "cl100k_base" {
		t.Errorf("Tokenizer.Encoding = %q; want %q", cfg.Tokenizer.Encoding, "cl100k_base")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokencount.yaml")

	yaml := "tokenizer:\n  model: gpt-4\n  offline: true\nlog_level: debug\n"

	err := os.WriteFile(path, []byte(yaml), 0o600)
	if err != nil {
		t.Fatalf("write config file: %v", err)
	}

	defaults := DefaultConfig()

	cfg, err := Load(LoadOptions{Cmd: newFlagBinder(defaults), ConfigFile: path, Defaults: defaults})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Tokenizer.Model != "gpt-4" {
		t.Errorf("Tokenizer.Model = %q; want %q", cfg.Tokenizer.Model, "gpt-4")
	}

	if !cfg.Tokenizer.Offline {
		t.Error("Tokenizer.Offline = false; want true")
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "debug")
	}
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	defaults := DefaultConfig()

	_, err := Load(LoadOptions{
		Cmd:        newFlagBinder(defaults),
		ConfigFile: filepath.Join(t.TempDir(), "absent.yaml"),
		Defaults:   defaults,
	})
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

// --- ParseLogLevel ---

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"empty defaults to info", "", slog.LevelInfo, false},
		{"info", "info", slog.LevelInfo, false},
		{"debug", "debug", slog.LevelDebug, false},
		{"warn", "warn", slog.LevelWarn, false},
		{"warning alias", "warning", slog.LevelWarn, false},
		{"error", "error", slog.LevelError, false},
		{"mixed case", "DeBuG", slog.LevelDebug, false},
		{"unknown", "verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseLogLevel(%q) = %v, nil; want error", tt.input, got)
				}

				return
			}

			if err != nil {
				t.Fatalf("ParseLogLevel(%q): %v", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}
