package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// ocrModeFlags holds OCR strategy flags.
type ocrModeFlags struct {
	force     bool
	disabled  bool
	languages []string
	dpi       int
}

// outputFlags holds output mode flags for debugging.
type outputFlags struct {
	html     bool // Output HTML alongside PDF
	htmlOnly bool // Output HTML only, skip PDF
}

// translateFlags holds all flags for the default translate flow.
type translateFlags struct {
	common         commonFlags
	test           bool
	title          string
	style          string
	noStyle        bool
	foldDiacritics bool
	timeout        string
	ocr            ocrModeFlags
	outputMode     outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addOCRFlags adds OCR strategy flags to a FlagSet.
func addOCRFlags(fs *flag.FlagSet, f *ocrModeFlags) {
	fs.BoolVar(&f.force, "ocr", false, "skip the text layer and force OCR")
	fs.BoolVar(&f.disabled, "no-ocr", false, "fail instead of falling back to OCR")
	fs.StringSliceVar(&f.languages, "lang", nil, "tesseract OCR languages (default ben,eng)")
	fs.IntVar(&f.dpi, "dpi", 0, "OCR rasterization DPI (72-1200, default 300)")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.html, "html", false, "output HTML alongside PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML only, skip PDF")
}

// parseTranslateFlags parses the translate flags and returns positional args.
func parseTranslateFlags(args []string) (*translateFlags, []string, error) {
	fs := flag.NewFlagSet("banglish", flag.ContinueOnError)
	f := &translateFlags{}

	fs.BoolVar(&f.test, "test", false, "run built-in transliteration samples and exit")
	fs.StringVar(&f.title, "title", "", "document title for the generated PDF")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable extra CSS styling")
	fs.BoolVar(&f.foldDiacritics, "fold-diacritics", false, "strip combining marks from the output")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")

	addCommonFlags(fs, &f.common)
	addOCRFlags(fs, &f.ocr)
	addOutputFlags(fs, &f.outputMode)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
