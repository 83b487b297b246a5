package banglish

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// textExtractor pulls raw text out of a PDF file.
type textExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// minTextLayerRunes is the threshold below which a stripped text layer
// is treated as empty in practice, marking the document image-based.
const minTextLayerRunes = 50

// isTextSufficient reports whether directly extracted text looks like
// a real text layer: more than minTextLayerRunes runes after trimming
// and at least one letter or number anywhere in it. The decision is
// kept free of I/O so the fallback policy stays testable on its own.
func isTextSufficient(text string) bool {
	clean := strings.TrimSpace(text)
	if utf8.RuneCountInString(clean) <= minTextLayerRunes {
		return false
	}
	for _, r := range clean {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// smartExtractor tries the embedded text layer first and substitutes
// the OCR strategy when the result does not pass isTextSufficient or
// when direct extraction fails outright. OCR failures are final.
type smartExtractor struct {
	direct   textExtractor
	ocr      textExtractor
	progress io.Writer
}

func (e *smartExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	text, err := e.direct.ExtractText(ctx, path)
	if err != nil {
		fmt.Fprintf(e.progress, "❌ Regular text extraction failed: %v\n", err)
		fmt.Fprintln(e.progress, "📸 Trying OCR extraction...")
		return e.ocr.ExtractText(ctx, path)
	}

	if isTextSufficient(text) {
		fmt.Fprintln(e.progress, "📝 Regular text extraction successful!")
		return text, nil
	}

	fmt.Fprintln(e.progress, "📸 PDF appears to be image-based, switching to OCR...")
	return e.ocr.ExtractText(ctx, path)
}
