package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	banglish "github.com/ramjana/go-banglish"
	"github.com/ramjana/go-banglish/internal/config"
	"github.com/ramjana/go-banglish/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrReadCSS     = errors.New("failed to read CSS file")
	ErrWriteHTML   = errors.New("failed to write HTML file")
	ErrWritePDF    = errors.New("failed to write PDF file")
	ErrTooManyArgs = errors.New("too many arguments")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// defaultConfigName is looked up in cwd and the user config dir when
// no --config flag is given. Not finding it is not an error.
const defaultConfigName = "banglish"

// defaultInputFile is the sample script translated when no input
// argument is given and the config names no default.
const defaultInputFile = "bengali-female-script.pdf"

// runTranslate orchestrates the translation flow.
func runTranslate(positional []string, flags *translateFlags, env *Environment) error {
	if len(positional) > 2 {
		return fmt.Errorf("%w: expected [input_pdf] [output_pdf], got %d arguments", ErrTooManyArgs, len(positional))
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cfg, err := loadConfiguration(flags, env)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)

	inputPath := cfg.Input.DefaultFile
	if inputPath == "" {
		inputPath = defaultInputFile
	}
	if len(positional) > 0 {
		inputPath = positional[0]
	}

	// The reference tool treats a missing input as a user mistake with
	// a dedicated message, distinct from pipeline failures.
	if _, err := os.Stat(inputPath); err != nil {
		fmt.Fprintf(env.Stdout, "❌ Error: Input file not found: %s\n", inputPath)
		fmt.Fprintln(env.Stdout, "Please provide a valid path to a Bengali PDF file.")
		return fmt.Errorf("%w: %s", banglish.ErrInputNotFound, inputPath)
	}

	outputPath, err := resolveOutputPath(positional, inputPath, cfg)
	if err != nil {
		return err
	}

	css, err := resolveStyle(flags, cfg, env)
	if err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout)
	if err != nil {
		return err
	}

	progress := io.Writer(env.Stdout)
	if flags.common.quiet {
		progress = io.Discard
	}

	svc := env.NewService(serviceOptions(flags, cfg, timeout, progress)...)
	defer svc.Close()

	fmt.Fprintln(progress, "🔄 Starting Bengali to English transliteration...")
	fmt.Fprintf(progress, "📥 Input: %s\n", inputPath)
	fmt.Fprintf(progress, "📤 Output: %s\n", outputPath)
	fmt.Fprintln(progress)

	ext := strings.ToLower(filepath.Ext(inputPath))
	input := banglish.Input{
		Path:     inputPath,
		Title:    cfg.Document.Title,
		CSS:      css,
		Page:     pageSettings(cfg),
		Markdown: ext == ".md" || ext == ".markdown",
		ForceOCR: flags.ocr.force,
		NoOCR:    flags.ocr.disabled,
	}

	htmlContent, err := svc.TranslateToHTML(ctx, input)
	if err != nil {
		return err
	}

	if flags.outputMode.html || flags.outputMode.htmlOnly {
		htmlPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".html"
		if err := os.WriteFile(htmlPath, []byte(htmlContent), filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteHTML, err)
		}
		fmt.Fprintf(progress, "📄 HTML saved at: %s\n", htmlPath)
		if flags.outputMode.htmlOnly {
			return nil
		}
	}

	pdfBytes, err := svc.RenderHTML(ctx, htmlContent, input.Page)
	if err != nil {
		return err
	}

	// Bytes are written only after a successful render, so a failure
	// never leaves a truncated PDF behind.
	if err := os.WriteFile(outputPath, pdfBytes, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}

	fmt.Fprintln(progress)
	fmt.Fprintln(progress, "✅ Translation completed successfully!")
	fmt.Fprintf(progress, "📄 Transliterated PDF saved at: %s\n", outputPath)

	return nil
}

// loadConfiguration resolves the effective config: explicit --config,
// else the default config name if present, else built-in defaults.
// Environment variables fill gaps the file leaves empty.
func loadConfiguration(flags *translateFlags, env *Environment) (*config.Config, error) {
	cfg := env.Config

	if flags.common.config != "" {
		loaded, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else if name := os.Getenv("BANGLISH_CONFIG"); name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else if loaded, err := config.LoadConfig(defaultConfigName); err == nil {
		cfg = loaded
	} else if !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if flags.common.verbose {
		warnUnknownEnvVars(env.Stderr)
	}
	applyEnvConfig(loadEnvConfig(), cfg)

	return cfg, nil
}

// mergeFlags applies CLI flag values over config (CLI wins).
func mergeFlags(flags *translateFlags, cfg *config.Config) {
	if flags.title != "" {
		cfg.Document.Title = flags.title
	}
	if flags.style != "" {
		cfg.Style.Name = flags.style
	}
	if len(flags.ocr.languages) > 0 {
		cfg.OCR.Languages = flags.ocr.languages
	}
	if flags.ocr.dpi != 0 {
		cfg.OCR.DPI = flags.ocr.dpi
	}
}

// serviceOptions translates CLI state into service options.
func serviceOptions(flags *translateFlags, cfg *config.Config, timeout time.Duration, progress io.Writer) []banglish.Option {
	opts := []banglish.Option{
		banglish.WithProgressWriter(progress),
	}
	if timeout > 0 {
		opts = append(opts, banglish.WithTimeout(timeout))
	}
	if len(cfg.OCR.Languages) > 0 {
		opts = append(opts, banglish.WithOCRLanguages(cfg.OCR.Languages...))
	}
	if cfg.OCR.DPI != 0 {
		opts = append(opts, banglish.WithOCRDPI(cfg.OCR.DPI))
	}
	if flags.foldDiacritics {
		opts = append(opts, banglish.WithTransliterator(
			banglish.NewTransliterator(banglish.WithDiacriticFolding())))
	}
	return opts
}

// resolveOutputPath picks the output location: explicit second argument,
// or <stem>_transliterated.pdf inside the configured output directory,
// which is created if absent.
func resolveOutputPath(positional []string, inputPath string, cfg *config.Config) (string, error) {
	if len(positional) > 1 {
		return positional[1], nil
	}

	outputDir := cfg.Output.DefaultDir
	if outputDir == "" {
		outputDir = "output"
	}
	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return "", fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
	}

	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(outputDir, stem+"_transliterated.pdf"), nil
}

// resolveStyle loads the CSS to inject on top of the base style.
// A name is looked up in embedded assets; anything with a path
// separator or .css extension is read from disk.
func resolveStyle(flags *translateFlags, cfg *config.Config, env *Environment) (string, error) {
	if flags.noStyle {
		return "", nil
	}

	name := cfg.Style.Name
	if name == "" {
		return "", nil
	}

	if strings.ContainsAny(name, "/\\") || strings.HasSuffix(name, ".css") {
		data, err := os.ReadFile(name) // #nosec G304 -- user-provided style path
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		return string(data), nil
	}

	css, err := env.Styles.LoadStyle(name)
	if err != nil {
		return "", fmt.Errorf("loading style: %w%s", err, hints.ForStyleNotFound(env.Styles.ListStyles()))
	}
	return css, nil
}

// resolveTimeout parses the --timeout flag. Empty means the service default.
func resolveTimeout(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid timeout %q (use e.g. 30s, 2m)", raw)
	}
	return d, nil
}

// pageSettings builds page settings from config, nil when defaults apply.
func pageSettings(cfg *config.Config) *banglish.PageSettings {
	if cfg.Page.Size == "" && cfg.Page.Orientation == "" && cfg.Page.Margin == 0 {
		return nil
	}
	page := banglish.DefaultPageSettings()
	if cfg.Page.Size != "" {
		page.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		page.Orientation = cfg.Page.Orientation
	}
	page.Margin = cfg.Page.Margin
	return page
}

// reportError prints a failure marker with an actionable hint when one
// applies. The missing-input case already printed its own message.
func reportError(err error, flags *translateFlags, env *Environment) {
	if errors.Is(err, banglish.ErrInputNotFound) {
		return
	}
	fmt.Fprintf(env.Stdout, "❌ Error during translation: %v%s\n", err, hintFor(err, flags))
}

// hintFor matches known failure modes to installation or usage hints.
func hintFor(err error, flags *translateFlags) string {
	switch {
	case errors.Is(err, banglish.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, banglish.ErrRasterize):
		return hints.ForRasterizer()
	case errors.Is(err, banglish.ErrOCR):
		languages := flags.ocr.languages
		if len(languages) == 0 {
			languages = []string{"ben", "eng"}
		}
		return hints.ForOCR(languages)
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	}
	return ""
}
