package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ramjana/go-banglish/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	Style     string   // BANGLISH_STYLE: CSS style name or path
	Input     string   // BANGLISH_INPUT: default input file
	OutputDir string   // BANGLISH_OUTPUT_DIR: default output directory
	Title     string   // BANGLISH_TITLE: document title
	OCRLangs  []string // BANGLISH_OCR_LANG: comma-separated tesseract languages
	OCRDPI    int      // BANGLISH_OCR_DPI: rasterization DPI
	PageSize  string   // BANGLISH_PAGE_SIZE: a4, letter, legal
}

// knownEnvVars lists valid BANGLISH_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"BANGLISH_CONFIG":     true,
	"BANGLISH_STYLE":      true,
	"BANGLISH_INPUT":      true,
	"BANGLISH_OUTPUT_DIR": true,
	"BANGLISH_TITLE":      true,
	"BANGLISH_OCR_LANG":   true,
	"BANGLISH_OCR_DPI":    true,
	"BANGLISH_PAGE_SIZE":  true,
	"BANGLISH_CONTAINER":  true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized BANGLISH_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		Style:     os.Getenv("BANGLISH_STYLE"),
		Input:     os.Getenv("BANGLISH_INPUT"),
		OutputDir: os.Getenv("BANGLISH_OUTPUT_DIR"),
		Title:     os.Getenv("BANGLISH_TITLE"),
		PageSize:  os.Getenv("BANGLISH_PAGE_SIZE"),
	}

	if langs := os.Getenv("BANGLISH_OCR_LANG"); langs != "" {
		for _, lang := range strings.Split(langs, ",") {
			if lang = strings.TrimSpace(lang); lang != "" {
				cfg.OCRLangs = append(cfg.OCRLangs, lang)
			}
		}
	}

	if dpi := os.Getenv("BANGLISH_OCR_DPI"); dpi != "" {
		if d, err := strconv.Atoi(dpi); err == nil && d > 0 {
			cfg.OCRDPI = d
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized BANGLISH_* variables.
// Helps catch typos like BANGLISH_LANGS instead of BANGLISH_OCR_LANG.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "BANGLISH_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.Style.Name == "" {
		cfg.Style.Name = env.Style
	}
	if env.Input != "" && cfg.Input.DefaultFile == "" {
		cfg.Input.DefaultFile = env.Input
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Title != "" && cfg.Document.Title == "" {
		cfg.Document.Title = env.Title
	}
	if len(env.OCRLangs) > 0 && len(cfg.OCR.Languages) == 0 {
		cfg.OCR.Languages = env.OCRLangs
	}
	if env.OCRDPI != 0 && cfg.OCR.DPI == 0 {
		cfg.OCR.DPI = env.OCRDPI
	}
	if env.PageSize != "" && cfg.Page.Size == "" {
		cfg.Page.Size = env.PageSize
	}
}
