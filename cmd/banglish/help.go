package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: banglish [input_pdf] [output_pdf] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Transliterate a Bengali PDF to phonetic English and render a new PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input_pdf     Bengali PDF, .txt, or .md file (default from config)")
	fmt.Fprintln(w, "  output_pdf    Output path (default: <stem>_transliterated.pdf in output dir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  doctor     Diagnose the environment (Chrome, tesseract, poppler)")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --test                Run built-in transliteration samples and exit")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --title <s>           Document title for the generated PDF")
	fmt.Fprintln(w, "      --style <name|path>   CSS style name or file path")
	fmt.Fprintln(w, "      --no-style            Disable extra CSS styling")
	fmt.Fprintln(w, "      --ocr                 Skip the text layer and force OCR")
	fmt.Fprintln(w, "      --no-ocr              Fail instead of falling back to OCR")
	fmt.Fprintln(w, "      --lang <codes>        Tesseract OCR languages (default ben,eng)")
	fmt.Fprintln(w, "      --dpi <n>             OCR rasterization DPI (72-1200, default 300)")
	fmt.Fprintln(w, "      --fold-diacritics     Strip combining marks from the output")
	fmt.Fprintln(w, "      --html                Output HTML alongside PDF")
	fmt.Fprintln(w, "      --html-only           Output HTML only, skip PDF")
	fmt.Fprintln(w, "  -t, --timeout <dur>       PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'banglish help <command>' for details on a specific command.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: banglish doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Diagnose the environment: Chrome/Chromium, tesseract and its")
		fmt.Fprintln(env.Stdout, "traineddata languages, poppler's pdftoppm, and the temp directory.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: banglish version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: banglish help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
