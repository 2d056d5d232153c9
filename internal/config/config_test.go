package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Input.DefaultDir != "" || cfg.Output.DefaultDir != "" {
		t.Errorf("default dirs not empty: %+v", cfg)
	}
	if cfg.Input.Encoding != "" {
		t.Errorf("default encoding not empty: %q", cfg.Input.Encoding)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "empty config is valid",
			mutate: func(*Config) {},
		},
		{
			name: "known encodings accepted",
			mutate: func(c *Config) {
				c.Input.Encoding = "Shift_JIS"
			},
		},
		{
			name: "unknown encoding rejected",
			mutate: func(c *Config) {
				c.Input.Encoding = "utf-16"
			},
			wantErr: ErrInvalidEncoding,
		},
		{
			name: "overlong lang rejected",
			mutate: func(c *Config) {
				c.Document.Lang = strings.Repeat("x", MaxLangLength+1)
			},
			wantErr: ErrFieldTooLong,
		},
		{
			name: "overlong default title rejected",
			mutate: func(c *Config) {
				c.Document.DefaultTitle = strings.Repeat("x", MaxTitleLength+1)
			},
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("LoadConfig(\"\") = %v, want %v", err, ErrEmptyConfigName)
		}
	})

	t.Run("missing file path", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() = %v, want %v", err, ErrConfigNotFound)
		}
	})

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "conv.yaml")
		content := `input:
  defaultDir: ./src
  encoding: shift_jis
output:
  defaultDir: ./out
document:
  lang: en
  defaultTitle: No Title
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.DefaultDir != "./src" {
			t.Errorf("Input.DefaultDir = %q", cfg.Input.DefaultDir)
		}
		if cfg.Input.Encoding != "shift_jis" {
			t.Errorf("Input.Encoding = %q", cfg.Input.Encoding)
		}
		if cfg.Output.DefaultDir != "./out" {
			t.Errorf("Output.DefaultDir = %q", cfg.Output.DefaultDir)
		}
		if cfg.Document.Lang != "en" || cfg.Document.DefaultTitle != "No Title" {
			t.Errorf("Document = %+v", cfg.Document)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "conv.yaml")
		if err := os.WriteFile(path, []byte("bogus: true\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig() = %v, want %v", err, ErrConfigParse)
		}
	})

	t.Run("invalid encoding rejected at load", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "conv.yaml")
		if err := os.WriteFile(path, []byte("input:\n  encoding: utf-16\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("LoadConfig() = %v, want %v", err, ErrInvalidEncoding)
		}
	})
}
