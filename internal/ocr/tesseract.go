package ocr

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Tesseract implements the TextReader interface by shelling out to a local
// tesseract binary.
type Tesseract struct {
	binary string
}

// NewTesseract creates a new Tesseract reader. When binary is empty the
// executable is located via PATH, falling back to common install locations.
func NewTesseract(binary string) (*Tesseract, error) {
	if binary != "" {
		if _, err := os.Stat(binary); err != nil {
			return nil, fmt.Errorf("tesseract binary %q: %w", binary, err)
		}
		return &Tesseract{binary: binary}, nil
	}

	if path, err := exec.LookPath("tesseract"); err == nil {
		return &Tesseract{binary: path}, nil
	}

	for _, path := range []string{
		"/usr/bin/tesseract",
		"/usr/local/bin/tesseract",
		"/opt/homebrew/bin/tesseract",
	} {
		if _, err := os.Stat(path); err == nil {
			return &Tesseract{binary: path}, nil
		}
	}

	return nil, fmt.Errorf("tesseract executable not found; install it or pass an explicit path")
}

// pageSegMode returns the tesseract page segmentation mode for a source type.
// Screenshots and passbook pages are uniform blocks of text; camera photos
// need full automatic page analysis to cope with rotation and angles.
func pageSegMode(source SourceType) string {
	switch source {
	case SourceScreenshot, SourcePassbook:
		return "6"
	case SourceCamera:
		return "3"
	}
	return ""
}

// ExtractText runs OCR on the document at path.
//
// A tesseract run that fails on a readable file is logged and reported as
// empty text rather than an error: an unrecognizable image is a data problem
// for the extraction engine, not a pipeline failure.
func (t *Tesseract) ExtractText(path string, source SourceType) (string, error) {
	input := path

	// Tesseract cannot read PDFs or HEIC directly; render those to a
	// temporary PNG first.
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".heic", ".heif":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading document: %w", err)
		}
		pngData, err := normalizePNG(data, mimeFromPath(path))
		if err != nil {
			return "", fmt.Errorf("converting document for OCR: %w", err)
		}
		tmp, err := os.CreateTemp("", "paylens-ocr-*.png")
		if err != nil {
			return "", fmt.Errorf("creating temp image: %w", err)
		}
		defer os.Remove(tmp.Name())
		if _, err := tmp.Write(pngData); err != nil {
			tmp.Close()
			return "", fmt.Errorf("writing temp image: %w", err)
		}
		tmp.Close()
		input = tmp.Name()
	default:
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("reading document: %w", err)
		}
	}

	args := []string{input, "stdout"}
	if psm := pageSegMode(source); psm != "" {
		args = append(args, "--psm", psm)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(t.binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		slog.Warn("tesseract run failed",
			"file", path,
			"error", err,
			"stderr", strings.TrimSpace(stderr.String()),
		)
		return "", nil
	}

	return stdout.String(), nil
}

// Close closes the reader (no-op for the tesseract binary)
func (t *Tesseract) Close() error {
	return nil
}
