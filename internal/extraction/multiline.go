package extraction

import "strings"

// scanPassbookLines is the second extraction pass for passbook text: it walks
// the trimmed lines looking for a label alone on one line with its value on
// the next non-blank line. OCR frequently inserts spurious blank lines
// between the two, so any number of blanks is skipped.
//
// Only fields still empty after the inline pass are filled, and the first
// matching triple in catalog order wins per field.
func scanPassbookLines(rec Record, text string) {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	nextNonBlank := func(start int) string {
		for j := start + 1; j < len(lines); j++ {
			if lines[j] != "" {
				return lines[j]
			}
		}
		return ""
	}

	for i, line := range lines {
		if line == "" {
			continue
		}

		next := nextNonBlank(i)

		for _, mr := range passbookMultilineRules {
			if rec[mr.key] != "" {
				continue
			}
			if !mr.label.MatchString(line) || next == "" {
				continue
			}
			if m := mr.value.FindStringSubmatch(next); m != nil {
				rec[mr.key] = strings.TrimSpace(m[1])
			}
		}

		// A bare line of 9-18 digits is a candidate account number.
		if rec["Account Number"] == "" {
			if m := bareAccountNumberLine.FindStringSubmatch(line); m != nil {
				rec["Account Number"] = m[1]
			}
		}

		// A bare IFSC-shaped line, unless it collides with a detected MICR.
		if rec["IFSC Code"] == "" {
			if m := bareIFSCLine.FindStringSubmatch(line); m != nil && m[1] != rec["MICR Code"] {
				rec["IFSC Code"] = m[1]
			}
		}
	}
}
