package main

import (
	"errors"

	banglish "github.com/ramjana/go-banglish"
	"github.com/ramjana/go-banglish/internal/assets"
	"github.com/ramjana/go-banglish/internal/config"
)

// Exit codes for the banglish CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Successful translation
	ExitGeneral = 1 // Missing input or any translation failure
	ExitUsage   = 2 // Invalid flags, config, or validation
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, banglish.ErrOCRModeConflict) ||
		errors.Is(err, banglish.ErrInvalidPageSize) ||
		errors.Is(err, banglish.ErrInvalidOrientation) ||
		errors.Is(err, banglish.ErrInvalidMargin) ||
		errors.Is(err, banglish.ErrInvalidOCRLanguage) ||
		errors.Is(err, banglish.ErrInvalidOCRDPI) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) {
		return ExitUsage
	}

	// Everything else, including a missing input file, is a general
	// translation failure (exit 1).
	return ExitGeneral
}
