package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avilla/pdfsplit/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidField    = errors.New("invalid config field")
)

// Field limits.
const (
	MaxPageSizeLength = 10  // "a4", "legal"
	MaxMarginMM       = 200 // larger than any supported sheet edge
	MinFontSize       = 4
	MaxFontSize       = 72
	MaxLineWidthMM    = 5
)

// Config holds all tool configuration.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Page   PageConfig   `yaml:"page"`
	Style  StyleConfig  `yaml:"style"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Directory scanned when no files are given (empty = cwd)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// PageConfig defines printable sheet settings.
type PageConfig struct {
	Size   string  `yaml:"size"`   // "a4", "legal" (default: "a4")
	Margin float64 `yaml:"margin"` // millimeters (default: 10)
}

// StyleConfig defines guide and label rendering options.
type StyleConfig struct {
	FontSize    float64 `yaml:"fontSize"`    // points (default: 9)
	LineWidthMM float64 `yaml:"lineWidthMM"` // guide line width in mm (default: 0.25)
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if len(c.Page.Size) > MaxPageSizeLength {
		return fmt.Errorf("%w: page.size (%d chars, max %d)", ErrInvalidField, len(c.Page.Size), MaxPageSizeLength)
	}
	if c.Page.Margin < 0 {
		return fmt.Errorf("%w: page.margin must not be negative, got %g", ErrInvalidField, c.Page.Margin)
	}
	if c.Page.Margin > MaxMarginMM {
		return fmt.Errorf("%w: page.margin must not exceed %dmm, got %g", ErrInvalidField, MaxMarginMM, c.Page.Margin)
	}
	if c.Style.FontSize != 0 && (c.Style.FontSize < MinFontSize || c.Style.FontSize > MaxFontSize) {
		return fmt.Errorf("%w: style.fontSize must be between %d and %d, got %g", ErrInvalidField, MinFontSize, MaxFontSize, c.Style.FontSize)
	}
	if c.Style.LineWidthMM < 0 || c.Style.LineWidthMM > MaxLineWidthMM {
		return fmt.Errorf("%w: style.lineWidthMM must be between 0 and %d, got %g", ErrInvalidField, MaxLineWidthMM, c.Style.LineWidthMM)
	}
	return nil
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{DefaultDir: ""},
		Output: OutputConfig{DefaultDir: ""},
		Page:   PageConfig{Size: "a4", Margin: 10},
		Style:  StyleConfig{FontSize: 9, LineWidthMM: 0.25},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/pdfsplit/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "pdfsplit", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
