package banglish

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches for a uniform margin override.
const (
	MinMargin = 0.25
	MaxMargin = 3.0
)

// Built-in page layout in inches: wide top and side margins, a slim
// bottom margin. Used when PageSettings.Margin is zero.
const (
	defaultMarginTop    = 1.0
	defaultMarginBottom = 0.25
	defaultMarginSide   = 1.0
)

// DefaultTitle is the document title used when Input.Title is empty.
const DefaultTitle = "Bengali to English Transliteration"

// OCR DPI bounds for page rasterization.
const (
	DefaultOCRDPI = 300
	MinOCRDPI     = 72
	MaxOCRDPI     = 1200
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides; 0 keeps the built-in layout
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin != 0 && (p.Margin < MinMargin || p.Margin > MaxMargin) {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Input contains translation parameters. Exactly one of Path or Text
// must be set.
type Input struct {
	Path     string        // PDF, plain-text, or markdown file to translate
	Text     string        // raw Bengali text; bypasses extraction entirely
	Title    string        // document title ("" = DefaultTitle)
	CSS      string        // custom CSS injected into the output (optional)
	Page     *PageSettings // page settings (optional, nil = defaults)
	Markdown bool          // compose the output as rendered markdown
	ForceOCR bool          // skip the text layer and go straight to OCR
	NoOCR    bool          // fail instead of falling back to OCR
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout      time.Duration
	ocrLanguages []string
	ocrDPI       int
	progress     io.Writer
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// defaultOCRLanguages is the combined recognition mode used for
// Bengali documents with embedded Latin fragments.
var defaultOCRLanguages = []string{"ben", "eng"}

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("banglish: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithOCRLanguages sets the tesseract language codes used for OCR,
// replacing the default ben+eng pair. Values are validated when the
// OCR strategy runs.
func WithOCRLanguages(langs ...string) Option {
	return func(s *Service) {
		s.cfg.ocrLanguages = langs
	}
}

// WithOCRDPI sets the rasterization resolution for OCR. The value is
// validated when the OCR strategy runs.
func WithOCRDPI(dpi int) Option {
	return func(s *Service) {
		s.cfg.ocrDPI = dpi
	}
}

// WithProgressWriter directs human-readable progress lines to w.
// Progress is discarded by default.
func WithProgressWriter(w io.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.cfg.progress = w
		}
	}
}

// WithTransliterator replaces the default transliterator, e.g. one
// carrying extra word exceptions or diacritic folding.
func WithTransliterator(t *Transliterator) Option {
	if t == nil {
		panic("banglish: WithTransliterator requires a non-nil transliterator")
	}
	return func(s *Service) {
		s.translit = t
	}
}
