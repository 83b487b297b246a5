package banglish

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ramjana/go-banglish/internal/process"
)

// pageRasterizer renders each page of a PDF to an image for OCR.
type pageRasterizer interface {
	RasterizePages(ctx context.Context, pdfPath string, dpi int) ([][]byte, error)
}

// defaultRasterizerBinary is the poppler-utils page renderer.
const defaultRasterizerBinary = "pdftoppm"

// popplerRasterizer shells out to pdftoppm, writing one PNG per page
// into a temporary directory and reading them back in page order.
type popplerRasterizer struct {
	binary string // "" means defaultRasterizerBinary
}

func (p *popplerRasterizer) RasterizePages(ctx context.Context, pdfPath string, dpi int) ([][]byte, error) {
	bin := p.binary
	if bin == "" {
		bin = defaultRasterizerBinary
	}
	if _, err := exec.LookPath(bin); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterize, err)
	}

	tmpDir, err := os.MkdirTemp("", "banglish-pages-")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterize, err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	prefix := filepath.Join(tmpDir, "page")
	cmd := exec.CommandContext(ctx, bin, "-png", "-r", strconv.Itoa(dpi), pdfPath, prefix)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	setProcessGroup(cmd)
	cmd.Cancel = func() error {
		// Kill the whole group so no renderer process outlives a
		// cancelled run.
		if cmd.Process != nil {
			process.KillProcessGroup(cmd.Process.Pid)
		}
		return nil
	}

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%w: %s %s: %v: %s", ErrRasterize, bin, pdfPath, err, strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("%w: %s %s: %v", ErrRasterize, bin, pdfPath, err)
	}

	files, err := collectPageFiles(tmpDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s produced no page images for %s", ErrRasterize, bin, pdfPath)
	}

	pages := make([][]byte, 0, len(files))
	for _, name := range files {
		img, err := os.ReadFile(filepath.Join(tmpDir, name)) // #nosec G304 -- files created by this run
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrRasterize, name, err)
		}
		pages = append(pages, img)
	}
	return pages, nil
}

// collectPageFiles lists the PNG files pdftoppm wrote, sorted by page
// number. pdftoppm zero-pads page numbers per document, so a plain
// lexical sort would still work for a single run; sorting numerically
// keeps the order right regardless of padding.
func collectPageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterize, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".png" {
			continue
		}
		files = append(files, e.Name())
	}

	sort.Slice(files, func(i, j int) bool {
		ni, iok := pageNumberOf(files[i])
		nj, jok := pageNumberOf(files[j])
		if iok && jok && ni != nj {
			return ni < nj
		}
		return files[i] < files[j]
	})
	return files, nil
}

// pageNumberOf extracts the page number from a pdftoppm output name
// such as "page-07.png".
func pageNumberOf(name string) (int, bool) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	idx := strings.LastIndexByte(base, '-')
	if idx < 0 || idx == len(base)-1 {
		return 0, false
	}
	n, err := strconv.Atoi(base[idx+1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
