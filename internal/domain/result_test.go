package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVotes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"plain", "1234", 1234},
		{"thousands separator", "220,000", 220000},
		{"embedded spaces", "1 234 567", 1234567},
		{"padded", "  42  ", 42},
		{"float export", "90000.0", 90000},
		{"zero", "0", 0},
		{"empty", "", 0},
		{"non-numeric", "n/a", 0},
		{"negative", "-5", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseVotes(tt.input))
		})
	}
}

func TestNewCountyResult(t *testing.T) {
	t.Run("democratic blowout", func(t *testing.T) {
		res := NewCountyResult("Wayne", "President", "2020", "Joseph R. Biden", "Donald J. Trump", map[string]int{
			PartyDem: 220000,
			PartyRep: 90000,
			PartyLib: 5000,
		})

		assert.Equal(t, 220000, res.DemVotes)
		assert.Equal(t, 90000, res.RepVotes)
		assert.Equal(t, 5000, res.OtherVotes)
		assert.Equal(t, 315000, res.TotalVotes)
		assert.Equal(t, 310000, res.TwoPartyTotal)
		assert.Equal(t, 130000, res.Margin)
		assert.Equal(t, 41.94, res.MarginPct)
		assert.Equal(t, WinnerDem, res.Winner)
		assert.Equal(t, "Annihilation Democratic", res.Competitiveness.Category)
	})

	t.Run("republican win", func(t *testing.T) {
		res := NewCountyResult("Missaukee", "Governor", "2022", "Gretchen Whitmer", "Tudor Dixon", map[string]int{
			PartyDem: 2000,
			PartyRep: 6000,
		})

		assert.Equal(t, WinnerRep, res.Winner)
		assert.Equal(t, 4000, res.Margin)
		assert.Equal(t, 50.0, res.MarginPct)
		assert.Equal(t, "Annihilation Republican", res.Competitiveness.Category)
	})

	t.Run("tie", func(t *testing.T) {
		res := NewCountyResult("Lake", "Governor", "2022", "A", "B", map[string]int{
			PartyDem: 500,
			PartyRep: 500,
		})

		assert.Equal(t, WinnerTie, res.Winner)
		assert.Equal(t, 0, res.Margin)
		assert.Equal(t, 0.0, res.MarginPct)
		assert.Equal(t, "Tossup", res.Competitiveness.Category)
	})

	t.Run("no two-party votes", func(t *testing.T) {
		res := NewCountyResult("Ontonagon", "President", "2000", "", "", map[string]int{
			PartyGrn: 120,
		})

		assert.Equal(t, 0, res.TwoPartyTotal)
		assert.Equal(t, 0.0, res.MarginPct)
		assert.Equal(t, 120, res.OtherVotes)
		assert.Equal(t, WinnerTie, res.Winner)
		assert.Equal(t, "Tossup", res.Competitiveness.Category)
	})

	t.Run("invariants hold", func(t *testing.T) {
		res := NewCountyResult("Kent", "US Senate", "2024", "Elissa Slotkin", "Mike Rogers", map[string]int{
			PartyDem:   150123,
			PartyRep:   148321,
			PartyLib:   4210,
			PartyGrn:   1902,
			PartyOther: 77,
		})

		sum := 0
		for _, v := range res.AllParties {
			sum += v
		}
		assert.Equal(t, sum, res.TotalVotes)
		assert.Equal(t, res.DemVotes+res.RepVotes, res.TwoPartyTotal)
		assert.Equal(t, res.DemVotes-res.RepVotes, res.Margin)
		assert.GreaterOrEqual(t, res.MarginPct, 0.0)
	})
}

func TestDocument_EnsureContest(t *testing.T) {
	doc := NewDocument()

	first := doc.EnsureContest("2020", ContestPresident, "President")
	second := doc.EnsureContest("2020", ContestPresident, "President")
	assert.Same(t, first, second, "EnsureContest must return the existing record")

	require.Contains(t, doc.ResultsByYear, "2020")
	require.Contains(t, doc.ResultsByYear["2020"], ContestPresident)
	assert.Contains(t, doc.ResultsByYear["2020"][ContestPresident], "president_2020")
	assert.Equal(t, "President", first.ContestName)
}

func TestDocument_WalkAndSummarize(t *testing.T) {
	doc := NewDocument()
	pres := doc.EnsureContest("2020", ContestPresident, "President")
	pres.Results["Wayne"] = NewCountyResult("Wayne", "President", "2020", "", "", map[string]int{PartyDem: 10})
	pres.Results["Kent"] = NewCountyResult("Kent", "President", "2020", "", "", map[string]int{PartyRep: 10})
	senate := doc.EnsureContest("2018", ContestUSSenate, "US Senate")
	senate.Results["Wayne"] = NewCountyResult("Wayne", "US Senate", "2018", "", "", map[string]int{PartyDem: 5})

	var visited []string
	doc.Walk(func(year string, typ ContestType, res *CountyResult) {
		visited = append(visited, year+"/"+string(typ)+"/"+res.County)
	})
	assert.Equal(t, []string{
		"2018/us_senate/Wayne",
		"2020/president/Kent",
		"2020/president/Wayne",
	}, visited)

	summaries := doc.Summarize()
	require.Len(t, summaries, 2)
	assert.Equal(t, ContestSummary{Year: "2018", Key: "us_senate_2018", Counties: 1}, summaries[0])
	assert.Equal(t, ContestSummary{Year: "2020", Key: "president_2020", Counties: 2}, summaries[1])
}
