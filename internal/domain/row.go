package domain

import (
	"strconv"
	"strings"
)

// RawRow is one line of an input results file after column mapping. All
// fields are free text; the aggregator normalizes and coerces. Rows only
// live for the duration of one file's processing.
type RawRow struct {
	County    string
	Office    string
	Party     string
	Candidate string
	Votes     string
}

// ParseVotes coerces a raw vote field to a count. Thousands separators and
// stray spaces are stripped; decimal values are truncated; anything
// non-numeric counts as zero.
func ParseVotes(s string) int {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}
