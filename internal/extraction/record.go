package extraction

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/upidesk/paylens/internal/ocr"
)

// Field names shared across document modes.
const (
	KeyFileName = "File Name"
	KeyRawText  = "All Extracted Text"
	KeyError    = "Error"
)

// Record maps human-readable field names to extracted string values. Every
// declared field key of the document mode is always present; an empty string
// means "not found".
type Record map[string]string

// screenshotKeys is the declared field-key set for payment screenshots, in
// export column order.
var screenshotKeys = []string{
	KeyFileName,
	"UPI Transaction ID",
	"Google Transaction ID",
	"Reference ID",
	"From (Sender)",
	"To (Receiver)",
	"UPI ID / VPA",
	"Bank Name",
	"Amount",
	"Payment Status",
	"Date",
	"Time",
	"Transaction Note",
	KeyRawText,
}

// passbookKeys is the declared field-key set for passbook and bank-statement
// pages, in export column order.
var passbookKeys = []string{
	KeyFileName,
	"Bank Name",
	"Account Holder",
	"Account Number",
	"Account Type",
	"IFSC Code",
	"MICR Code",
	"Branch Name",
	"CIF Number",
	"Date of Opening",
	"Nomination",
	"Joint Holder",
	"Address",
	"Mobile Number",
	"Date",
	"Transaction Type",
	"Narration",
	"Reference Number",
	"Cheque Number",
	"Credit (₹)",
	"Debit (₹)",
	"Balance (₹)",
	"Opening Balance (₹)",
	"Closing Balance (₹)",
	KeyRawText,
}

func keysFor(source ocr.SourceType) []string {
	if source == ocr.SourcePassbook {
		return passbookKeys
	}
	return screenshotKeys
}

// FieldKeys returns the declared field-key set for a source type, in stable
// column order. Exporters use this to build a uniform column set.
func FieldKeys(source ocr.SourceType) []string {
	return append([]string(nil), keysFor(source)...)
}

// newRecord creates a record with every field key of the mode pre-populated
// as empty, plus the file name and the preserved raw text.
func newRecord(text, filename string, source ocr.SourceType) Record {
	r := make(Record, len(keysFor(source)))
	for _, k := range keysFor(source) {
		r[k] = ""
	}
	r[KeyFileName] = filename
	r[KeyRawText] = strings.TrimSpace(text)
	return r
}

// setIfEmpty writes value into key only when the field has not been filled by
// an earlier pass. Every heuristic goes through this guard so that precedence
// stays: inline regex > multi-line label/value > disambiguation.
func (r Record) setIfEmpty(key, value string) {
	if r[key] == "" && value != "" {
		r[key] = value
	}
}

// signature produces the duplicate-detection digest: a sha256 over the sorted
// non-empty field/value pairs, excluding the file name and the raw text. Two
// crops of the same document hash identically even when the OCR line
// wrapping differs.
func (r Record) signature() string {
	keys := make([]string, 0, len(r))
	for k, v := range r {
		if k == KeyFileName || k == KeyRawText || v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{0})
		h.Write([]byte(r[k]))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
