package extraction

import (
	"regexp"
	"strings"
)

// findMatch tries an ordered rule list against text and returns the first
// successful match, trimmed. A rule with a capture group yields the group;
// a rule without one yields the whole match. Returns "" when no rule matches.
func findMatch(rules []*regexp.Regexp, text string) string {
	for _, re := range rules {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) > 1 {
			return strings.TrimSpace(m[1])
		}
		return strings.TrimSpace(m[0])
	}
	return ""
}
