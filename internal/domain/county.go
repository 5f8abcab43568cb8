package domain

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// stAbbrevRe restores the period after a bare "St" token,
	// e.g. "St Clair" -> "St. Clair". "St." is left alone.
	stAbbrevRe = regexp.MustCompile(`\bSt\s+`)

	// possessiveRe strips a trailing possessive: "Kent's" -> "Kent".
	possessiveRe = regexp.MustCompile(`(?i)'S$`)

	// countySuffixRe strips a trailing "County" word: "Washtenaw County" -> "Washtenaw".
	countySuffixRe = regexp.MustCompile(`(?i)\s+County$`)
)

// NormalizeCounty maps a raw county string to its canonical Michigan county
// name. Blank input yields ""; the aggregator drops such rows.
// Normalizing an already-normalized name returns it unchanged.
func NormalizeCounty(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = titleCase(name)

	// Abbreviation used by some precinct exports.
	if strings.Contains(name, "Gd.") && strings.Contains(name, "Traverse") {
		return "Grand Traverse"
	}

	name = stAbbrevRe.ReplaceAllString(name, "St. ")
	name = possessiveRe.ReplaceAllString(name, "")
	name = countySuffixRe.ReplaceAllString(name, "")
	return name
}

// titleCase converts a string to English title case. A fresh caser per call:
// cases.Caser carries internal state and is not safe to share.
func titleCase(s string) string {
	return cases.Title(language.AmericanEnglish).String(s)
}
