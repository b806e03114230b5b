package ocr

import "fmt"

// SourceType describes what kind of document an image is expected to contain.
// It selects both the OCR tuning and the extraction field set downstream.
type SourceType string

const (
	SourceScreenshot SourceType = "screenshot"
	SourcePassbook   SourceType = "passbook"
	SourceCamera     SourceType = "camera"
	SourceAuto       SourceType = "auto"
)

// Valid reports whether s is one of the known source types.
func (s SourceType) Valid() bool {
	switch s {
	case SourceScreenshot, SourcePassbook, SourceCamera, SourceAuto:
		return true
	}
	return false
}

// ParseSourceType converts a user-supplied string into a SourceType.
func ParseSourceType(s string) (SourceType, error) {
	st := SourceType(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown source type %q (valid: screenshot, passbook, camera, auto)", s)
	}
	return st, nil
}

// TextReader defines the interface for OCR text extraction backends.
//
// An empty string with a nil error means the backend could not recognize any
// text in the document. Callers must treat that as "nothing to match", not as
// a failure.
type TextReader interface {
	// ExtractText reads the document at path and returns its raw text
	ExtractText(path string, source SourceType) (string, error)
	// Close closes the reader and releases resources
	Close() error
}
