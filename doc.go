// Package banglish transliterates Bengali text to a phonetic Latin
// rendering and applies it to PDF documents.
//
// # Quick Start
//
// For plain text, use a Transliterator directly:
//
//	tr := banglish.NewTransliterator()
//	fmt.Println(tr.TransliterateText("পথের পাঁচালী"))
//	// pother pachali
//
// To translate a whole PDF, create a Service, translate, and close
// when done:
//
//	svc := banglish.New()
//	defer svc.Close()
//
//	pdf, err := svc.Translate(ctx, banglish.Input{
//	    Path: "bengali-female-script.pdf",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.pdf", pdf, 0644)
//
// # Transliteration
//
// The engine is rule-based: a character map from Bengali code points
// (vowels, vowel signs, consonants, digits, danda punctuation) to
// Latin fragments, with conjunct clusters (consonant, virama,
// consonant) fused into both consonant mappings, and a whole-word
// exception table that overrides the character algorithm for common
// lexical items. Characters outside the map pass through unchanged,
// so Latin text embedded in a Bengali document survives intact.
//
// # Pipeline
//
// Service.Translate runs these stages in sequence:
//
//  1. Text extraction: the PDF text layer first; when that yields too
//     little content, each page is rasterized (poppler pdftoppm) and
//     run through Bengali+English OCR (tesseract).
//  2. Transliteration of the extracted text.
//  3. HTML composition: non-blank lines become paragraphs under a
//     centered title block; blank lines become vertical spacing.
//  4. PDF printing via headless Chrome (go-rod).
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := banglish.New(
//	    banglish.WithTimeout(2 * time.Minute),
//	    banglish.WithOCRDPI(400),
//	    banglish.WithProgressWriter(os.Stdout),
//	)
//
// Per-translation options are passed via Input:
//
//	pdf, err := svc.Translate(ctx, banglish.Input{
//	    Path:  "scan.pdf",
//	    Title: "Pother Pachali",
//	    CSS:   "body { font-size: 14pt; }",
//	    Page:  &banglish.PageSettings{Size: "letter"},
//	})
//
// # External Requirements
//
// PDF printing requires Chrome/Chromium; go-rod downloads a managed
// Chromium on first run (~/.cache/rod/browser/). Set ROD_BROWSER_BIN
// to use a pre-installed binary. OCR requires tesseract with the ben
// and eng traineddata files plus poppler-utils for pdftoppm; PDFs
// with a usable text layer need neither.
package banglish
