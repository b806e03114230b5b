package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/gen2brain/heic"
)

// transcribePrompt is the shared prompt used by the LLM-backed readers. The
// extraction engine works on raw text, so the model is asked to transcribe,
// not to interpret.
const transcribePrompt = `You are reading an image of an Indian payment app screenshot or a bank passbook page.

Transcribe ALL visible text exactly as it appears, line by line, top to bottom. Keep labels and their values on the same line when they appear on the same line in the image. Preserve numbers, currency symbols, UPI IDs, account numbers and codes character for character.

Return only the transcribed text. Do not summarize, translate, or add any commentary.`

// mimeFromPath guesses the MIME type of a document from its file extension.
func mimeFromPath(path string) string {
	mt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mt == "" {
		return "image/jpeg"
	}
	return mt
}

// normalizePNG converts document bytes of any supported format (PNG, JPEG,
// GIF, HEIC/HEIF, single-page PDF) into PNG bytes ready for an OCR backend.
func normalizePNG(data []byte, mimeType string) ([]byte, error) {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))

	if strings.HasPrefix(mimeType, "application/pdf") {
		return pdfPageToPNG(data)
	}

	var (
		img image.Image
		err error
	)
	if isHEIC(data, mimeType) {
		img, err = heic.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding HEIC image: %w", err)
		}
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding image (supported: JPEG, PNG, GIF, HEIC, PDF): %w", err)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfPageToPNG renders the first page of a PDF as a PNG image. Screenshots
// and passbook scans shared as PDFs are effectively single-page documents.
func pdfPageToPNG(pdfData []byte) ([]byte, error) {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	img, err := doc.Image(0)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF page: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// isHEIC detects the HEIC/HEIF container either from the MIME type or from
// the ftyp box brand, since Go's image package cannot decode it.
func isHEIC(data []byte, mimeType string) bool {
	if strings.Contains(mimeType, "heic") || strings.Contains(mimeType, "heif") {
		return true
	}
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return false
	}
	switch string(data[8:12]) {
	case "heic", "heif", "mif1", "msf1":
		return true
	}
	return false
}
