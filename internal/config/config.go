package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ramjana/go-banglish/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits for multi-tenant safety.
const (
	MaxTitleLength       = 200  // Document title
	MaxPathLength        = 2048 // File and directory paths
	MaxStyleNameLength   = 50   // Embedded style name
	MaxLanguageLength    = 20   // Tesseract language code ("ben", "ben+eng")
	MaxPageSizeLength    = 10   // "letter", "a4", "legal"
	MaxOrientationLength = 10   // "portrait", "landscape"

	// OCR DPI bounds must match the rasterizer's supported range.
	MinDPI = 72
	MaxDPI = 1200
)

// Config holds all configuration for the transliteration pipeline.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	Style    StyleConfig    `yaml:"style"`
	OCR      OCRConfig      `yaml:"ocr"`
	Page     PageConfig     `yaml:"page"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultFile string `yaml:"defaultFile"` // Default input PDF when no argument given
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (default: "output")
}

// DocumentConfig defines rendered document options.
type DocumentConfig struct {
	Title string `yaml:"title"` // Title heading in the generated PDF
}

// StyleConfig defines CSS styling options.
type StyleConfig struct {
	Name string `yaml:"name"` // Name of style in internal/assets/styles/ (empty = built-in default)
}

// OCRConfig defines OCR fallback options.
type OCRConfig struct {
	Languages []string `yaml:"languages"` // Tesseract language codes (default: ben, eng)
	DPI       int      `yaml:"dpi"`       // Rasterization resolution (default: 300)
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (default: "a4")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // uniform margin in inches (0 = per-edge defaults)
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., API adapters, library users).
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultFile", c.Input.DefaultFile, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.name", c.Style.Name, MaxStyleNameLength); err != nil {
		return err
	}

	for i, lang := range c.OCR.Languages {
		if lang == "" {
			return fmt.Errorf("ocr.languages[%d]: language code cannot be empty", i)
		}
		if err := validateFieldLength(fmt.Sprintf("ocr.languages[%d]", i), lang, MaxLanguageLength); err != nil {
			return err
		}
	}
	if c.OCR.DPI != 0 && (c.OCR.DPI < MinDPI || c.OCR.DPI > MaxDPI) {
		return fmt.Errorf("ocr.dpi: must be between %d and %d, got %d", MinDPI, MaxDPI, c.OCR.DPI)
	}

	if err := validateFieldLength("page.size", c.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.orientation", c.Page.Orientation, MaxOrientationLength); err != nil {
		return err
	}
	if c.Page.Margin < 0 {
		return fmt.Errorf("page.margin: cannot be negative, got %.2f", c.Page.Margin)
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

// DefaultConfig returns a neutral configuration. Empty fields fall back
// to the pipeline defaults at the point of use, so environment variables
// and config files can fill them first.
func DefaultConfig() *Config {
	return &Config{
		Input:    InputConfig{DefaultFile: ""},
		Output:   OutputConfig{DefaultDir: ""},
		Document: DocumentConfig{Title: ""},
		Style:    StyleConfig{Name: ""},
		OCR:      OCRConfig{Languages: nil, DPI: 0},
		Page:     PageConfig{},
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

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/banglish/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "banglish", name+ext)
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
