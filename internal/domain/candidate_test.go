package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCandidate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"party prefix with running mate", "DEM KAMALA D. HARRIS/TIM WALZ", "Kamala D. Harris"},
		{"all caps", "ELISSA SLOTKIN", "Elissa Slotkin"},
		{"w slash running mate", "Joe Biden w/ Kamala Harris", "Joseph R. Biden"},
		{"with running mate", "Donald Trump with J.D. Vance", "Donald J. Trump"},
		{"slash running mate", "Donald J. Trump/J. D. Vance", "Donald J. Trump"},
		{"rep prefix", "REP JOHN JAMES", "John James"},
		{"lib prefix lower", "lib Mary Buzuma", "Mary Buzuma"},
		{"harris variant", "kamala harris", "Kamala D. Harris"},
		{"biden joseph variant", "JOSEPH R. BIDEN", "Joseph R. Biden"},
		{"already normalized", "Gretchen Whitmer", "Gretchen Whitmer"},
		{"trailing slash", "Gary Peters/", "Gary Peters"},
		{"short all caps untouched", "JD", "JD"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCandidate(tt.input))
		})
	}
}

func TestNormalizeCandidate_Idempotent(t *testing.T) {
	inputs := []string{
		"DEM KAMALA D. HARRIS/TIM WALZ",
		"ELISSA SLOTKIN",
		"Joe Biden w/ Kamala Harris",
		"Gretchen Whitmer",
		"REP JOHN JAMES",
	}
	for _, raw := range inputs {
		once := NormalizeCandidate(raw)
		assert.Equal(t, once, NormalizeCandidate(once), "normalizing %q twice changed the result", raw)
	}
}

func TestBuildCandidateName(t *testing.T) {
	tests := []struct {
		name                string
		first, middle, last string
		expected            string
	}{
		{"all parts", "Debbie", "A.", "Stabenow", "Debbie A. Stabenow"},
		{"no middle", "Carl", "", "Levin", "Carl Levin"},
		{"blank padded parts", " Gary ", "  ", " Peters ", "Gary Peters"},
		{"last only", "", "", "Uncommitted", "Uncommitted"},
		{"all blank", "", "  ", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildCandidateName(tt.first, tt.middle, tt.last))
		})
	}
}
