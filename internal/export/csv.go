package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/upidesk/paylens/internal/extraction"
	"github.com/upidesk/paylens/internal/ocr"
)

// CSVWriter writes extracted records to CSV with a stable column set per
// source type, so every row lines up regardless of which fields were found.
type CSVWriter struct{}

// WriteToFile writes records to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, source ocr.SourceType, records []extraction.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, source, records)
}

// Write writes records in CSV format to the given writer. The raw OCR text
// field is excluded — it is preserved on the record for review, not for
// tabular output. An Error column is appended when any record failed.
func (w *CSVWriter) Write(out io.Writer, source ocr.SourceType, records []extraction.Record) error {
	cols := columns(source, records)

	writer := csv.NewWriter(out)
	defer writer.Flush()

	if err := writer.Write(cols); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	row := make([]string, len(cols))
	for _, rec := range records {
		for i, col := range cols {
			row[i] = rec[col]
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %q: %w", rec[extraction.KeyFileName], err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

func columns(source ocr.SourceType, records []extraction.Record) []string {
	var cols []string
	for _, key := range extraction.FieldKeys(source) {
		if key == extraction.KeyRawText {
			continue
		}
		cols = append(cols, key)
	}

	for _, rec := range records {
		if rec[extraction.KeyError] != "" {
			cols = append(cols, extraction.KeyError)
			break
		}
	}

	return cols
}
