package banglish

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// imageRecognizer turns one page image into text.
type imageRecognizer interface {
	Recognize(image []byte) (string, error)
}

// tesseractRecognizer drives the tesseract engine through gosseract.
// Each call uses a fresh client; the client is not safe to reuse
// across recognitions with different images.
type tesseractRecognizer struct {
	languages []string
	dpi       int
}

func (t *tesseractRecognizer) Recognize(image []byte) (string, error) {
	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()

	if err := client.SetLanguage(t.languages...); err != nil {
		return "", fmt.Errorf("set languages: %w", err)
	}
	// A single uniform block of text matches the one-column book pages
	// this pipeline is fed.
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return "", fmt.Errorf("set page segmentation mode: %w", err)
	}
	if err := client.SetVariable(gosseract.SettableVariable("user_defined_dpi"), strconv.Itoa(t.dpi)); err != nil {
		return "", fmt.Errorf("set dpi: %w", err)
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// ocrExtractor recovers text from scanned PDFs: rasterize every page,
// recognize each image, join the page texts with blank lines.
type ocrExtractor struct {
	rasterizer pageRasterizer
	recognizer imageRecognizer
	dpi        int
	progress   io.Writer
}

func (e *ocrExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	fmt.Fprintln(e.progress, "🔍 Converting PDF pages to images...")
	pages, err := e.rasterizer.RasterizePages(ctx, path, e.dpi)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(e.progress, "📄 Processing %d pages with OCR...\n", len(pages))

	var b strings.Builder
	for i, image := range pages {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		fmt.Fprintf(e.progress, "  Processing page %d/%d...\n", i+1, len(pages))

		text, err := e.recognizer.Recognize(image)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrOCR, i+1, err)
		}
		b.WriteString(text)
		b.WriteString("\n\n")
	}

	fmt.Fprintln(e.progress, "✅ OCR text extraction completed!")
	return b.String(), nil
}

// validateOCRSettings checks user-supplied OCR knobs before a run.
func validateOCRSettings(languages []string, dpi int) error {
	if len(languages) == 0 {
		return fmt.Errorf("%w: none specified", ErrInvalidOCRLanguage)
	}
	for _, lang := range languages {
		if lang == "" || strings.ContainsAny(lang, "+ \t\n") {
			return fmt.Errorf("%w: %q", ErrInvalidOCRLanguage, lang)
		}
	}
	if dpi < MinOCRDPI || dpi > MaxOCRDPI {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidOCRDPI, dpi, MinOCRDPI, MaxOCRDPI)
	}
	return nil
}
