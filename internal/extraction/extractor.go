package extraction

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/upidesk/paylens/internal/ocr"
)

// ProgressFunc receives a notification for every processed document. It is
// invoked synchronously from the pipeline loop and must not block.
type ProgressFunc func(current, total int, message string)

// ExtractError records one failed document in a batch summary.
type ExtractError struct {
	File    string
	Message string
}

// Summary accumulates the outcome counts of one batch run.
type Summary struct {
	Success    int
	Failed     int
	Duplicates int
	Errors     []ExtractError
}

// Extractor turns OCR text into structured payment records.
type Extractor struct {
	reader ocr.TextReader
}

// NewExtractor creates a new Extractor using reader as its OCR collaborator
func NewExtractor(reader ocr.TextReader) *Extractor {
	return &Extractor{reader: reader}
}

// Parse extracts structured fields from raw OCR text. The returned record
// always carries the full declared field-key set for the source type; fields
// that were not found stay empty.
func (e *Extractor) Parse(text, filename string, source ocr.SourceType) Record {
	if source == ocr.SourcePassbook {
		return parsePassbook(text, filename)
	}
	return parseScreenshot(text, filename)
}

func parseScreenshot(text, filename string) Record {
	rec := newRecord(text, filename, ocr.SourceScreenshot)

	applyInline(rec, text, screenshotRules)
	rec["Payment Status"] = normalizeStatus(findMatch(screenshotStatusRules, text))

	classifyTxnIDs(rec, text)
	scanScreenshotLines(rec, text)

	return rec
}

func parsePassbook(text, filename string) Record {
	rec := newRecord(text, filename, ocr.SourcePassbook)

	applyInline(rec, text, passbookRules)
	scanPassbookLines(rec, text)
	normalizePassbook(rec)

	return rec
}

// ExtractAll runs the batch pipeline over a list of document paths: OCR,
// parse, duplicate detection and per-document error isolation.
//
// A document failure never aborts the batch; it is counted, reported in the
// summary and represented by a minimal record carrying the file name and the
// error message. Empty OCR text is not a failure — it simply yields a record
// with all fields empty. The returned error covers contract problems only.
func (e *Extractor) ExtractAll(paths []string, progress ProgressFunc, source ocr.SourceType) ([]Record, Summary, error) {
	if !source.Valid() {
		return nil, Summary{}, fmt.Errorf("invalid source type %q", source)
	}

	var (
		records []Record
		summary Summary
	)
	seen := make(map[string]bool)
	total := len(paths)

	for i, path := range paths {
		filename := filepath.Base(path)
		notify(progress, i+1, total, fmt.Sprintf("Processing %s...", filename))

		rec, err := e.extractOne(path, filename, source)
		if err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, ExtractError{File: filename, Message: err.Error()})
			records = append(records, Record{KeyFileName: filename, KeyError: err.Error()})
			slog.Error("document extraction failed", "file", filename, "error", err)
			notify(progress, i+1, total, fmt.Sprintf("Error: %s: %v", filename, err))
			continue
		}

		sig := rec.signature()
		if seen[sig] {
			summary.Duplicates++
			notify(progress, i+1, total, fmt.Sprintf("Skipped duplicate: %s", filename))
			continue
		}
		seen[sig] = true

		records = append(records, rec)
		summary.Success++
	}

	return records, summary, nil
}

// extractOne isolates a single document: reader errors and panics from
// malformed text both surface as a per-document error.
func (e *Extractor) extractOne(path, filename string, source ocr.SourceType) (rec Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extracting %s: %v", filename, r)
		}
	}()

	text, err := e.reader.ExtractText(path, source)
	if err != nil {
		return nil, fmt.Errorf("reading text: %w", err)
	}

	return e.Parse(text, filename, source), nil
}

func notify(progress ProgressFunc, current, total int, message string) {
	if progress != nil {
		progress(current, total, message)
	}
}
