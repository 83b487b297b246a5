package banglish

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// Test options for dependency injection (not exported).

func withDirectExtractor(e textExtractor) Option {
	return func(s *Service) {
		s.direct = e
	}
}

func withOCRExtractor(e textExtractor) Option {
	return func(s *Service) {
		s.ocr = e
	}
}

func withPDFConverter(c pdfConverter) Option {
	return func(s *Service) {
		s.pdfConverter = c
	}
}

type mockPDFConverter struct {
	called    bool
	inputHTML string
	inputOpts *pdfOptions
	output    []byte
	err       error
	closed    bool
}

func (m *mockPDFConverter) ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	m.called = true
	m.inputHTML = htmlContent
	m.inputOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.output != nil {
		return m.output, nil
	}
	return []byte("%PDF-1.4 mock"), nil
}

func (m *mockPDFConverter) Close() error {
	m.closed = true
	return nil
}

// recordingExtractor returns canned text and records the path it saw.
type recordingExtractor struct {
	text   string
	err    error
	path   string
	called int
}

func (r *recordingExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	r.called++
	r.path = path
	return r.text, r.err
}

func newTestService(opts ...Option) (*Service, *mockPDFConverter) {
	mock := &mockPDFConverter{}
	opts = append(opts, withPDFConverter(mock))
	return New(opts...), mock
}

func TestService_ValidateInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{
			name:    "neither path nor text",
			input:   Input{},
			wantErr: ErrEmptyInput,
		},
		{
			name:    "both path and text",
			input:   Input{Path: "a.pdf", Text: "কবি"},
			wantErr: ErrEmptyInput,
		},
		{
			name:    "force and no OCR together",
			input:   Input{Text: "কবি", ForceOCR: true, NoOCR: true},
			wantErr: ErrOCRModeConflict,
		},
		{
			name:    "invalid page size",
			input:   Input{Text: "কবি", Page: &PageSettings{Size: "tabloid", Orientation: "portrait"}},
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "invalid orientation",
			input:   Input{Text: "কবি", Page: &PageSettings{Size: "a4", Orientation: "diagonal"}},
			wantErr: ErrInvalidOrientation,
		},
		{
			name:    "margin out of range",
			input:   Input{Text: "কবি", Page: &PageSettings{Size: "a4", Orientation: "portrait", Margin: 5}},
			wantErr: ErrInvalidMargin,
		},
		{
			name:  "text only is valid",
			input: Input{Text: "কবি"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, _ := newTestService()
			_, err := svc.TranslateToHTML(context.Background(), tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("TranslateToHTML() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("TranslateToHTML() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestService_InvalidOCRSettingsRejected(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(WithOCRDPI(10))
	_, err := svc.TranslateToHTML(context.Background(), Input{Text: "কবি"})
	if !errors.Is(err, ErrInvalidOCRDPI) {
		t.Errorf("TranslateToHTML() error = %v, want ErrInvalidOCRDPI", err)
	}

	svc2, _ := newTestService(WithOCRLanguages("ben eng"))
	_, err = svc2.TranslateToHTML(context.Background(), Input{Text: "কবি"})
	if !errors.Is(err, ErrInvalidOCRLanguage) {
		t.Errorf("TranslateToHTML() error = %v, want ErrInvalidOCRLanguage", err)
	}
}

func TestService_TranslateToHTML_TextInput(t *testing.T) {
	t.Parallel()

	direct := &recordingExtractor{}
	svc, _ := newTestService(withDirectExtractor(direct))

	got, err := svc.TranslateToHTML(context.Background(), Input{Text: "পথের পাঁচালী"})
	if err != nil {
		t.Fatalf("TranslateToHTML() error = %v", err)
	}

	if direct.called != 0 {
		t.Errorf("extractor called %d times for Text input, want 0", direct.called)
	}
	if !strings.Contains(got, "<p>pother pachali</p>") {
		t.Errorf("TranslateToHTML() missing transliterated paragraph:\n%s", got)
	}
	if !strings.Contains(got, DefaultTitle) {
		t.Errorf("TranslateToHTML() missing default title %q", DefaultTitle)
	}
	if !strings.Contains(got, "<style>") {
		t.Errorf("TranslateToHTML() missing injected style block:\n%s", got)
	}
}

func TestService_TranslateToHTML_CustomTitleAndCSS(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	got, err := svc.TranslateToHTML(context.Background(), Input{
		Text:  "কবি",
		Title: "Amar Boi",
		CSS:   "p { color: navy; }",
	})
	if err != nil {
		t.Fatalf("TranslateToHTML() error = %v", err)
	}
	if !strings.Contains(got, `<h1 class="doc-title">Amar Boi</h1>`) {
		t.Errorf("TranslateToHTML() missing custom title:\n%s", got)
	}
	if !strings.Contains(got, "p { color: navy; }") {
		t.Errorf("TranslateToHTML() missing user CSS:\n%s", got)
	}
}

func TestService_TranslateToHTML_NormalizesLineEndings(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	got, err := svc.TranslateToHTML(context.Background(), Input{Text: "কবি\r\n\r\nলেখক"})
	if err != nil {
		t.Fatalf("TranslateToHTML() error = %v", err)
	}
	for _, want := range []string{"<p>kobi</p>", `<div class="spacer"></div>`, "<p>lekhok</p>"} {
		if !strings.Contains(got, want) {
			t.Errorf("TranslateToHTML() missing %q:\n%s", want, got)
		}
	}
}

func TestService_TranslateToHTML_MarkdownInput(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	got, err := svc.TranslateToHTML(context.Background(), Input{
		Text:     "# কবিতা\n\nplain line",
		Markdown: true,
	})
	if err != nil {
		t.Fatalf("TranslateToHTML() error = %v", err)
	}
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "kobita") {
		t.Errorf("TranslateToHTML() markdown heading not rendered:\n%s", got)
	}
}

func TestService_Translate_PipesHTMLToPDFConverter(t *testing.T) {
	t.Parallel()

	svc, mock := newTestService()

	page := &PageSettings{Size: "letter", Orientation: "portrait"}
	got, err := svc.Translate(context.Background(), Input{Text: "বাংলা", Page: page})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if string(got) != "%PDF-1.4 mock" {
		t.Errorf("Translate() = %q, want mock PDF bytes", got)
	}
	if !mock.called {
		t.Fatal("PDF converter never called")
	}
	if !strings.Contains(mock.inputHTML, "<p>bangla</p>") {
		t.Errorf("converter received HTML without transliterated body:\n%s", mock.inputHTML)
	}
	if mock.inputOpts == nil || mock.inputOpts.Page != page {
		t.Errorf("converter received opts %+v, want page settings passed through", mock.inputOpts)
	}
}

func TestService_Translate_ConverterErrorWrapped(t *testing.T) {
	t.Parallel()

	mock := &mockPDFConverter{err: ErrPDFGeneration}
	svc := New(withPDFConverter(mock))

	_, err := svc.Translate(context.Background(), Input{Text: "কবি"})
	if !errors.Is(err, ErrPDFGeneration) {
		t.Errorf("Translate() error = %v, want ErrPDFGeneration", err)
	}
}

func TestService_ExtractText_MissingFile(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	_, err := svc.ExtractText(context.Background(), Input{Path: filepath.Join(t.TempDir(), "missing.pdf")})
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("ExtractText() error = %v, want ErrInputNotFound", err)
	}
}

func TestService_ExtractText_PlainTextFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "story.txt")
	if err := os.WriteFile(path, []byte("পথের পাঁচালী"), 0o644); err != nil {
		t.Fatal(err)
	}

	svc, _ := newTestService()
	got, err := svc.ExtractText(context.Background(), Input{Path: path})
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	if got != "পথের পাঁচালী" {
		t.Errorf("ExtractText() = %q, want file contents", got)
	}
}

func TestService_ExtractText_SmartFallback(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scan.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 stub"), 0o644); err != nil {
		t.Fatal(err)
	}

	ocrText := strings.Repeat("ocr text ", 10)
	direct := &recordingExtractor{text: "only 10ch"} // under threshold
	ocr := &recordingExtractor{text: ocrText}
	svc, _ := newTestService(withDirectExtractor(direct), withOCRExtractor(ocr))

	got, err := svc.ExtractText(context.Background(), Input{Path: path})
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	if got != ocrText {
		t.Errorf("ExtractText() = %q, want OCR text", got)
	}
	if direct.called != 1 || ocr.called != 1 {
		t.Errorf("direct called %d, ocr called %d; want 1 and 1", direct.called, ocr.called)
	}
}

func TestService_ExtractText_ForceOCRSkipsTextLayer(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scan.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 stub"), 0o644); err != nil {
		t.Fatal(err)
	}

	direct := &recordingExtractor{text: strings.Repeat("text layer ", 10)}
	ocr := &recordingExtractor{text: "ocr result"}
	svc, _ := newTestService(withDirectExtractor(direct), withOCRExtractor(ocr))

	got, err := svc.ExtractText(context.Background(), Input{Path: path, ForceOCR: true})
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	if got != "ocr result" {
		t.Errorf("ExtractText() = %q, want OCR text", got)
	}
	if direct.called != 0 {
		t.Errorf("direct extractor called %d times with ForceOCR, want 0", direct.called)
	}
}

func TestService_ExtractText_NoOCRFailsOnThinTextLayer(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scan.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 stub"), 0o644); err != nil {
		t.Fatal(err)
	}

	direct := &recordingExtractor{text: "thin"}
	ocr := &recordingExtractor{text: "should not run"}
	svc, _ := newTestService(withDirectExtractor(direct), withOCRExtractor(ocr))

	_, err := svc.ExtractText(context.Background(), Input{Path: path, NoOCR: true})
	if !errors.Is(err, ErrNoText) {
		t.Errorf("ExtractText() error = %v, want ErrNoText", err)
	}
	if ocr.called != 0 {
		t.Errorf("OCR called %d times with NoOCR, want 0", ocr.called)
	}
}

func TestService_Translate_MissingInputProducesNoPDFCall(t *testing.T) {
	t.Parallel()

	svc, mock := newTestService()

	_, err := svc.Translate(context.Background(), Input{Path: filepath.Join(t.TempDir(), "gone.pdf")})
	if !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("Translate() error = %v, want ErrInputNotFound", err)
	}
	if mock.called {
		t.Error("PDF converter called despite missing input")
	}
}

func TestService_CancelledContext(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.TranslateToHTML(ctx, Input{Text: "কবি"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("TranslateToHTML() error = %v, want context.Canceled", err)
	}
}

func TestService_Close(t *testing.T) {
	t.Parallel()

	svc, mock := newTestService()
	if err := svc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !mock.closed {
		t.Error("Close() did not close the PDF converter")
	}
}

func TestService_WithTransliterator(t *testing.T) {
	t.Parallel()

	tr := NewTransliterator(WithExceptions(map[string]string{"কবি": "the-poet"}))
	svc, _ := newTestService(WithTransliterator(tr))

	got, err := svc.TranslateToHTML(context.Background(), Input{Text: "কবি"})
	if err != nil {
		t.Fatalf("TranslateToHTML() error = %v", err)
	}
	if !strings.Contains(got, "<p>the-poet</p>") {
		t.Errorf("TranslateToHTML() ignored injected transliterator:\n%s", got)
	}
}

func TestWithTimeout_PanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) did not panic")
		}
	}()
	WithTimeout(0)
}

func TestWithTimeout_SetsTimeout(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(WithTimeout(90 * time.Second))
	if svc.cfg.timeout != 90*time.Second {
		t.Errorf("timeout = %v, want 90s", svc.cfg.timeout)
	}
}
