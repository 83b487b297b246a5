package banglish

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfTextExtractor reads the embedded text layer of a PDF with a pure
// Go parser. Scanned documents yield little or no text here and are
// caught by the fallback policy.
type pdfTextExtractor struct{}

// ExtractText returns the concatenated text of all pages, each page
// followed by a newline.
func (pdfTextExtractor) ExtractText(ctx context.Context, path string) (text string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// The parser panics on some malformed files; turn that into a
	// regular extraction error so the OCR fallback can take over.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: parsing %s: %v", ErrExtraction, path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	defer func() { _ = f.Close() }()

	fonts := make(map[string]*pdf.Font)
	var b strings.Builder

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}

		pageText, pageErr := p.GetPlainText(fonts)
		if pageErr != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrExtraction, i, pageErr)
		}
		b.WriteString(pageText)
		b.WriteByte('\n')
	}

	return b.String(), nil
}
