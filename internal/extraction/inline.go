package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

var nonAmountChars = regexp.MustCompile(`[^\d.]`)

// cleanAmount strips everything but digits and the decimal point from a raw
// amount capture and keeps the stripped value only if it parses as a number.
// A capture that fails the parse is returned unchanged: OCR noise makes a
// slightly malformed amount more useful to a reviewer than an empty field.
func cleanAmount(raw string) string {
	if raw == "" {
		return ""
	}
	clean := nonAmountChars.ReplaceAllString(raw, "")
	if _, err := strconv.ParseFloat(clean, 64); err != nil {
		return raw
	}
	return clean
}

// applyInline runs the first extraction pass: one matcher invocation per
// field of the active mode, storing the (possibly empty) result directly.
func applyInline(rec Record, text string, rules []fieldRules) {
	for _, fr := range rules {
		val := findMatch(fr.rules, text)
		if fr.amount {
			val = cleanAmount(val)
		}
		rec[fr.key] = val
	}
}

// normalizeStatus folds the many phrasings of a payment status into the three
// canonical values.
func normalizeStatus(raw string) string {
	status := strings.ToUpper(raw)
	switch {
	case strings.Contains(status, "SUCCESS") || strings.Contains(status, "COMPLETED"):
		return "SUCCESS"
	case strings.Contains(status, "FAIL"):
		return "FAILED"
	case strings.Contains(status, "PENDING") || strings.Contains(status, "PROCESSING"):
		return "PENDING"
	}
	return ""
}
