package domain

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// partyPrefixRe strips ballot party prefixes like "DEM " or "REP ".
	partyPrefixRe = regexp.MustCompile(`(?i)^(DEM|REP|LIB|GRN|UST|NLP|WCP|NPA)\s+`)

	// runningMateRe truncates slash notation: "Donald J. Trump/J. D. Vance".
	runningMateRe = regexp.MustCompile(`\s*/.*$`)

	// withAbbrevRe and withWordRe truncate running mates written as
	// "w/ Tim Walz" or "with Tim Walz".
	withAbbrevRe = regexp.MustCompile(`(?i)\s+w/.*$`)
	withWordRe   = regexp.MustCompile(`(?i)\s+with.*$`)
)

// BuildCandidateName joins split first/middle/last name fields with single
// spaces, skipping blanks. Used for sources that have no candidate column.
func BuildCandidateName(first, middle, last string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{first, middle, last} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// NormalizeCandidate maps a raw candidate string to its display name: party
// prefix and running-mate notation stripped, all-caps converted to title
// case. The ticket-toppers who appear under many spellings across files are
// pinned to one form so their precinct rows sum into a single county total.
// Idempotent; "" for blank input.
func NormalizeCandidate(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	name = partyPrefixRe.ReplaceAllString(name, "")
	name = runningMateRe.ReplaceAllString(name, "")
	name = withAbbrevRe.ReplaceAllString(name, "")
	name = withWordRe.ReplaceAllString(name, "")
	name = strings.TrimRight(strings.TrimSpace(name), "/")

	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "kamala") && strings.Contains(lower, "harris"):
		return "Kamala D. Harris"
	case strings.Contains(lower, "donald") && strings.Contains(lower, "trump"):
		return "Donald J. Trump"
	case (strings.Contains(lower, "joseph") || strings.Contains(lower, "joe")) && strings.Contains(lower, "biden"):
		return "Joseph R. Biden"
	}

	if len(name) > 2 && isAllUpper(name) {
		name = titleCase(name)
	}
	return strings.TrimSpace(name)
}

// isAllUpper reports whether s contains at least one letter and no lowercase
// letters. Initials-only strings like "J.D." count as upper.
func isAllUpper(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}
