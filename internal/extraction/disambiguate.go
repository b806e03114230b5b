package extraction

import (
	"regexp"
	"strings"
)

var (
	toLabelPrefix   = regexp.MustCompile(`(?i)^(?:paid\s+)?to\s*[:\-]?\s*`)
	fromLabelPrefix = regexp.MustCompile(`(?i)^from\s*[:\-]?\s*`)
	spacesAndDashes = regexp.MustCompile(`[\s\-]`)
)

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// classifyTxnIDs collects every capture of the transaction-id rule family and
// routes each distinct candidate to a field by shape:
//
//   - contains "CIC", or longer than 20 chars and not purely digits
//     → Google Transaction ID
//   - purely digits, 12+ chars → Reference ID
//   - longer than 8 chars → UPI Transaction ID
//
// Shorter tokens are discarded as too ambiguous. Candidates are visited in
// rule order then text order, deduplicated, and each destination field keeps
// its first classified token, so the result is deterministic.
func classifyTxnIDs(rec Record, text string) {
	seen := make(map[string]bool)
	for _, re := range screenshotTxnIDRules {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			tok := m[0]
			if len(m) > 1 {
				tok = m[1]
			}
			tok = strings.TrimSpace(tok)
			if tok == "" || seen[tok] {
				continue
			}
			seen[tok] = true

			switch {
			case strings.Contains(tok, "CIC") || (len(tok) > 20 && !allDigits(tok)):
				rec.setIfEmpty("Google Transaction ID", tok)
			case allDigits(tok) && len(tok) >= 12:
				rec.setIfEmpty("Reference ID", tok)
			case len(tok) > 8:
				rec.setIfEmpty("UPI Transaction ID", tok)
			}
		}
	}
}

// scanScreenshotLines applies positional heuristics over the non-blank lines
// of a screenshot: bank name, receiver and sender. Each field takes the first
// qualifying line only.
func scanScreenshotLines(rec Record, text string) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	for i, line := range lines {
		lower := strings.ToLower(line)

		// Bank name lines contain "Bank" but short of "Bank Reference No" etc.
		if strings.Contains(line, "Bank") && rec["Bank Name"] == "" {
			if len(line) < 40 &&
				!strings.Contains(lower, "ref") &&
				!strings.Contains(lower, "id") &&
				!strings.Contains(lower, "no") {
				rec["Bank Name"] = line
			}
		}

		if (strings.HasPrefix(lower, "to") || strings.HasPrefix(lower, "paid to")) && rec["To (Receiver)"] == "" {
			clean := strings.TrimSpace(toLabelPrefix.ReplaceAllString(line, ""))
			if clean != "" {
				rec["To (Receiver)"] = clean
			} else if i+1 < len(lines) {
				rec["To (Receiver)"] = lines[i+1]
			}
		}

		if strings.HasPrefix(lower, "from") && rec["From (Sender)"] == "" {
			clean := strings.TrimSpace(fromLabelPrefix.ReplaceAllString(line, ""))
			if clean != "" {
				rec["From (Sender)"] = clean
			} else if i+1 < len(lines) {
				rec["From (Sender)"] = lines[i+1]
			}
		}
	}
}

// accountTypeNames normalizes abbreviated account types to their full names.
var accountTypeNames = map[string]string{
	"SB":                "Savings",
	"SAVINGS":           "Savings",
	"CA":                "Current",
	"CURRENT":           "Current",
	"FD":                "Fixed Deposit",
	"FIXED DEPOSIT":     "Fixed Deposit",
	"RD":                "Recurring Deposit",
	"RECURRING DEPOSIT": "Recurring Deposit",
}

// normalizePassbook cleans and cross-validates passbook fields after both
// extraction passes have run.
func normalizePassbook(rec Record) {
	if acc := rec["Account Number"]; acc != "" {
		rec["Account Number"] = spacesAndDashes.ReplaceAllString(acc, "")
	}

	if full, ok := accountTypeNames[strings.ToUpper(rec["Account Type"])]; ok {
		rec["Account Type"] = full
	}

	// A 9-digit MICR pattern can spuriously match an IFSC-shaped line.
	if rec["IFSC Code"] != "" && rec["IFSC Code"] == rec["MICR Code"] {
		rec["MICR Code"] = ""
	}

	// A balance that is exactly the MICR code is a misread, not a balance.
	if bal := rec["Balance (₹)"]; bal != "" {
		stripped := strings.NewReplacer(".", "", ",", "").Replace(bal)
		if len(stripped) == 9 && bal == strings.ReplaceAll(rec["MICR Code"], " ", "") {
			rec["Balance (₹)"] = ""
		}
	}

	if mob := rec["Mobile Number"]; mob != "" {
		rec["Mobile Number"] = spacesAndDashes.ReplaceAllString(mob, "")
	}
}
