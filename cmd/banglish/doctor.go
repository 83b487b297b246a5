package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"
	"github.com/otiai10/gosseract/v2"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string        `json:"status"` // "ready", "warnings", "errors"
	Chrome    chromeInfo    `json:"chrome"`
	Tesseract tesseractInfo `json:"tesseract"`
	Poppler   popplerInfo   `json:"poppler"`
	Env       envInfo       `json:"environment"`
	System    systemInfo    `json:"system"`
	Warnings  []string      `json:"warnings,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
}

// chromeInfo holds Chrome/Chromium detection results.
type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

// tesseractInfo holds OCR engine detection results.
type tesseractInfo struct {
	Found     bool     `json:"found"`
	Version   string   `json:"version,omitempty"`
	Languages []string `json:"languages,omitempty"`
}

// popplerInfo holds pdftoppm detection results.
type popplerInfo struct {
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// requiredOCRLanguages are the traineddata files the default pipeline needs.
var requiredOCRLanguages = []string{"ben", "eng"}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor()

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor() *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
	}

	checkChrome(result)
	checkTesseract(result)
	checkPoppler(result)
	checkEnvironment(result)
	checkSystem(result)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkChrome detects Chrome/Chromium installation.
func checkChrome(result *doctorResult) {
	chromePath := result.Env.BrowserBin

	if chromePath == "" {
		// Use rod's launcher to locate Chrome
		var found bool
		chromePath, found = launcher.LookPath()
		if !found {
			result.Errors = append(result.Errors,
				"Chrome/Chromium not found. Install Chrome or set ROD_BROWSER_BIN")
			return
		}
	}

	// Verify it exists
	if _, err := os.Stat(chromePath); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Chrome not found at %s", chromePath))
		return
	}

	result.Chrome.Found = true
	result.Chrome.Path = chromePath

	// Get version by running chrome --version
	cmd := exec.Command(chromePath, "--version")
	out, err := cmd.Output()
	if err == nil {
		result.Chrome.Version = strings.TrimSpace(string(out))
	} else {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not get Chrome version: %v", err))
	}

	// Sandbox status: disabled if ROD_NO_SANDBOX=1
	result.Chrome.Sandbox = result.Env.NoSandbox != "1"
}

// checkTesseract detects the OCR engine and its traineddata languages.
func checkTesseract(result *doctorResult) {
	tessPath, err := exec.LookPath("tesseract")
	if err != nil {
		result.Errors = append(result.Errors,
			"tesseract not found. Install tesseract-ocr for scanned PDF support")
		return
	}

	result.Tesseract.Found = true

	cmd := exec.Command(tessPath, "--version")
	out, verErr := cmd.Output()
	if verErr == nil {
		// First line is "tesseract X.Y.Z"
		lines := strings.SplitN(string(out), "\n", 2)
		result.Tesseract.Version = strings.TrimSpace(lines[0])
	}

	languages, langErr := gosseract.GetAvailableLanguages()
	if langErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not list tesseract languages: %v", langErr))
		return
	}
	result.Tesseract.Languages = languages

	available := make(map[string]bool, len(languages))
	for _, lang := range languages {
		available[lang] = true
	}
	for _, required := range requiredOCRLanguages {
		if !available[required] {
			result.Errors = append(result.Errors,
				fmt.Sprintf("tesseract traineddata for %q not installed (apt install tesseract-ocr-%s)", required, required))
		}
	}
}

// checkPoppler detects poppler's pdftoppm rasterizer.
func checkPoppler(result *doctorResult) {
	path, err := exec.LookPath("pdftoppm")
	if err != nil {
		result.Errors = append(result.Errors,
			"pdftoppm not found. Install poppler-utils for scanned PDF support")
		return
	}
	result.Poppler.Found = true
	result.Poppler.Path = path
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult) {
	// Detect container (multi-signal approach)
	result.Env.Container, result.Env.ContainerHint = isContainer()

	// Detect CI environments
	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}

	// Warn if container/CI without sandbox disabled
	if (result.Env.Container || result.Env.CI) && result.Env.NoSandbox != "1" {
		result.Warnings = append(result.Warnings,
			"Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	// Explicit override (highest priority)
	if os.Getenv("BANGLISH_CONTAINER") == "1" {
		return true, "BANGLISH_CONTAINER=1"
	}
	// Docker
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	// Podman / systemd-nspawn / general container indicator
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	// Kubernetes
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies system requirements.
func checkSystem(result *doctorResult) {
	// Check temp directory is writable
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "banglish-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "banglish doctor")
	fmt.Fprintln(w)

	// Chrome section
	fmt.Fprintln(w, "Chrome/Chromium")
	if r.Chrome.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Chrome.Path)
		if r.Chrome.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			fmt.Fprintln(w, "  [OK] Sandbox: enabled")
		} else {
			fmt.Fprintln(w, "  [OK] Sandbox: disabled (ROD_NO_SANDBOX=1)")
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] Not found")
	}
	fmt.Fprintln(w)

	// Tesseract section
	fmt.Fprintln(w, "Tesseract OCR")
	if r.Tesseract.Found {
		if r.Tesseract.Version != "" {
			fmt.Fprintf(w, "  [OK] %s\n", r.Tesseract.Version)
		} else {
			fmt.Fprintln(w, "  [OK] Found")
		}
		if len(r.Tesseract.Languages) > 0 {
			fmt.Fprintf(w, "  [OK] Languages: %s\n", strings.Join(r.Tesseract.Languages, ", "))
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] Not found")
	}
	fmt.Fprintln(w)

	// Poppler section
	fmt.Fprintln(w, "Poppler (pdftoppm)")
	if r.Poppler.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Poppler.Path)
	} else {
		fmt.Fprintln(w, "  [ERROR] Not found")
	}
	fmt.Fprintln(w)

	// Environment section
	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  OS: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  Container: yes (%s)\n", r.Env.ContainerHint)
	} else {
		fmt.Fprintln(w, "  Container: no")
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  CI: yes")
	} else {
		fmt.Fprintln(w, "  CI: no")
	}
	fmt.Fprintln(w)

	// System section
	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory not writable")
	}
	fmt.Fprintln(w)

	// Warnings and errors
	for _, warning := range r.Warnings {
		fmt.Fprintf(w, "[WARN] %s\n", warning)
	}
	for _, e := range r.Errors {
		fmt.Fprintf(w, "[ERROR] %s\n", e)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: ready")
	case "warnings":
		fmt.Fprintln(w, "Status: ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: errors found")
	}
}
