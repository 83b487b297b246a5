package banglish

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInput      = errors.New("input must set exactly one of Path or Text")
	ErrOCRModeConflict = errors.New("ForceOCR and NoOCR are mutually exclusive")
	ErrInputNotFound   = errors.New("input file not found")
	ErrExtraction      = errors.New("text extraction failed")
	ErrNoText          = errors.New("document contains no extractable text")
	ErrRasterize       = errors.New("PDF rasterization failed")
	ErrOCR             = errors.New("OCR failed")
	ErrHTMLConversion  = errors.New("HTML conversion failed")
	ErrPDFGeneration   = errors.New("PDF generation failed")
	ErrBrowserConnect  = errors.New("failed to connect to browser")
	ErrPageCreate      = errors.New("failed to create browser page")
	ErrPageLoad        = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// OCR configuration validation errors.
	ErrInvalidOCRLanguage = errors.New("invalid OCR language")
	ErrInvalidOCRDPI      = errors.New("invalid OCR DPI")
)
