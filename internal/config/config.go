// Package config loads and validates converter configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkume/go-aspx2html/internal/fileutil"
	"github.com/mkume/go-aspx2html/internal/yamlutil"
)

// Sentinel errors for config loading and validation.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidEncoding = errors.New("invalid input encoding")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxLangLength  = 35  // BCP 47 tags stay well under this
	MaxTitleLength = 200 // Fallback page title
)

// Config holds all configuration for document conversion.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
}

// InputConfig describes where sources come from and how they are encoded.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Input directory when no positional arg is given
	Encoding   string `yaml:"encoding"`   // "utf-8" (default), "shift_jis", "euc-jp"
}

// OutputConfig describes where generated files go.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Output directory when no positional arg is given
}

// DocumentConfig defines generated document options.
type DocumentConfig struct {
	Lang         string `yaml:"lang"`         // <html> lang attribute (default: "ja")
	DefaultTitle string `yaml:"defaultTitle"` // Title when source has none (default: "Untitled Page")
}

// knownEncodings lists the encoding names accepted in input.encoding.
// Must stay in sync with the names DecodeText accepts.
var knownEncodings = map[string]bool{
	"":          true,
	"utf-8":     true,
	"utf8":      true,
	"shift_jis": true,
	"shift-jis": true,
	"sjis":      true,
	"euc-jp":    true,
	"eucjp":     true,
}

// Validate checks field lengths and the encoding name.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("document.lang", c.Document.Lang, MaxLangLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.defaultTitle", c.Document.DefaultTitle, MaxTitleLength); err != nil {
		return err
	}

	if !knownEncodings[strings.ToLower(strings.TrimSpace(c.Input.Encoding))] {
		return fmt.Errorf("%w: %q (accepted: utf-8, shift_jis, euc-jp)", ErrInvalidEncoding, c.Input.Encoding)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{
		Input:    InputConfig{DefaultDir: "", Encoding: ""},
		Output:   OutputConfig{DefaultDir: ""},
		Document: DocumentConfig{Lang: "", DefaultTitle: ""},
	}
}

// LoadConfig reads and validates a config file. An argument containing a
// path separator is read directly; a bare name is looked up in the current
// directory and then in the user config directory, trying the .yaml and
// .yml extensions. A missing file is always an error, never a silent
// fallback to defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		found, err := findByName(nameOrPath)
		if err != nil {
			return nil, err
		}
		path = found
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.DecodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// findByName resolves a bare config name to a file on disk.
func findByName(name string) (string, error) {
	candidates := []string{name + ".yaml", name + ".yml"}
	if userDir, err := os.UserConfigDir(); err == nil {
		appDir := filepath.Join(userDir, "go-aspx2html")
		candidates = append(candidates,
			filepath.Join(appDir, name+".yaml"),
			filepath.Join(appDir, name+".yml"),
		)
	}

	for _, path := range candidates {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(candidates, ", "))
}
