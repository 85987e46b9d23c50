package validate

import "strings"

var monthAbbreviations = map[string]struct{}{
	"jan": {}, "feb": {}, "mar": {}, "apr": {}, "may": {}, "jun": {},
	"jul": {}, "aug": {}, "sep": {}, "oct": {}, "nov": {}, "dec": {},
}

// IsValidDate accepts "present", a four-digit year, or a three-letter month
// abbreviation followed by a four-digit year. Matching is case-insensitive
// and ignores surrounding whitespace. Full month names and "Sept" are
// rejected.
func IsValidDate(value string) bool {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return false
	}
	if normalized == "present" {
		return true
	}
	if isYear(normalized) {
		return true
	}

	parts := strings.Fields(normalized)
	if len(parts) != 2 {
		return false
	}
	if _, ok := monthAbbreviations[parts[0]]; !ok {
		return false
	}
	return isYear(parts[1])
}

// IsValidEmail checks for exactly one "@" between a non-empty local part and
// a dotted domain, with no spaces.
func IsValidEmail(value string) bool {
	if value == "" || strings.Contains(value, " ") {
		return false
	}

	local, domainPart, ok := strings.Cut(value, "@")
	if !ok || strings.Contains(domainPart, "@") {
		return false
	}
	if local == "" || domainPart == "" {
		return false
	}
	return strings.Contains(domainPart, ".")
}

// IsValidURL accepts an optional http(s) scheme followed by a host that
// contains a dot.
func IsValidURL(value string) bool {
	if value == "" || strings.Contains(value, " ") {
		return false
	}

	url := value
	if rest, ok := strings.CutPrefix(url, "https://"); ok {
		url = rest
	} else if rest, ok := strings.CutPrefix(url, "http://"); ok {
		url = rest
	}
	if url == "" {
		return false
	}

	host, _, _ := strings.Cut(url, "/")
	return strings.Contains(host, ".")
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
