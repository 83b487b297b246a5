package banglish

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Service orchestrates the PDF translation pipeline: extract Bengali
// text, transliterate it, lay the result out as HTML, and print the
// HTML to a new PDF. Stages run strictly in sequence.
type Service struct {
	cfg          serviceConfig
	translit     *Transliterator
	direct       textExtractor
	ocr          textExtractor
	composer     htmlComposer
	mdComposer   htmlComposer
	cssInjector  cssInjector
	pdfConverter pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithOCRDPI).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout:      defaultTimeout,
			ocrLanguages: defaultOCRLanguages,
			ocrDPI:       DefaultOCRDPI,
			progress:     io.Discard,
		},
		composer:    paragraphComposer{},
		mdComposer:  newMarkdownComposer(),
		cssInjector: &cssInjection{},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.translit == nil {
		s.translit = NewTransliterator()
	}
	if s.direct == nil {
		s.direct = pdfTextExtractor{}
	}
	if s.ocr == nil {
		s.ocr = &ocrExtractor{
			rasterizer: &popplerRasterizer{},
			recognizer: &tesseractRecognizer{languages: s.cfg.ocrLanguages, dpi: s.cfg.ocrDPI},
			dpi:        s.cfg.ocrDPI,
			progress:   s.cfg.progress,
		}
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout)
	}

	return s
}

// Translate runs the full pipeline and returns the PDF as bytes.
// The context is used for cancellation and timeout.
func (s *Service) Translate(ctx context.Context, input Input) ([]byte, error) {
	htmlContent, err := s.TranslateToHTML(ctx, input)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := s.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: input.Page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	return pdfBytes, nil
}

// TranslateToHTML runs the pipeline up to but not including the PDF
// print step and returns the styled HTML document. Useful for
// debugging layout without a browser.
func (s *Service) TranslateToHTML(ctx context.Context, input Input) (string, error) {
	if err := s.validateInput(input); err != nil {
		return "", err
	}

	text := input.Text
	if input.Path != "" {
		var err error
		text, err = s.ExtractText(ctx, input)
		if err != nil {
			return "", err
		}
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	text = normalizeLineEndings(text)
	translated := s.translit.TransliterateText(text)

	title := input.Title
	if title == "" {
		title = DefaultTitle
	}

	composer := s.composer
	if input.Markdown {
		translated = prepareMarkdown(ctx, translated)
		composer = s.mdComposer
	}
	htmlContent, err := composer.Compose(ctx, translated, title)
	if err != nil {
		return "", fmt.Errorf("composing HTML: %w", err)
	}

	htmlContent = s.cssInjector.InjectCSS(ctx, htmlContent, baseStyleCSS+input.CSS)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	return htmlContent, nil
}

// RenderHTML prints an already-composed HTML document to PDF. Callers
// that need both the HTML and the PDF (debug output) use this to avoid
// running extraction twice.
func (s *Service) RenderHTML(ctx context.Context, htmlContent string, page *PageSettings) ([]byte, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	pdfBytes, err := s.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	return pdfBytes, nil
}

// ExtractText pulls raw text out of the input file. PDFs go through
// the two-strategy extraction pipeline; plain-text and markdown files
// are read as-is.
func (s *Service) ExtractText(ctx context.Context, input Input) (string, error) {
	path := input.Path
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".markdown":
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided input path
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrExtraction, err)
		}
		return string(data), nil
	}

	// Extractor errors already carry their sentinel (ErrExtraction,
	// ErrRasterize, ErrOCR); no extra wrapping here.
	return s.pdfExtractor(input).ExtractText(ctx, path)
}

// pdfExtractor picks the extraction strategy for a PDF input.
func (s *Service) pdfExtractor(input Input) textExtractor {
	switch {
	case input.ForceOCR:
		return s.ocr
	case input.NoOCR:
		return &directOnlyExtractor{direct: s.direct}
	default:
		return &smartExtractor{direct: s.direct, ocr: s.ocr, progress: s.cfg.progress}
	}
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if (input.Path == "") == (input.Text == "") {
		return ErrEmptyInput
	}
	if input.ForceOCR && input.NoOCR {
		return ErrOCRModeConflict
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	return validateOCRSettings(s.cfg.ocrLanguages, s.cfg.ocrDPI)
}

// directOnlyExtractor enforces the no-OCR mode: the text layer must be
// sufficient on its own or extraction fails.
type directOnlyExtractor struct {
	direct textExtractor
}

func (e *directOnlyExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	text, err := e.direct.ExtractText(ctx, path)
	if err != nil {
		return "", err
	}
	if !isTextSufficient(text) {
		return "", fmt.Errorf("%w: %s (OCR disabled)", ErrNoText, path)
	}
	return text, nil
}
