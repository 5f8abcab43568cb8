package pipeline

import (
	"github.com/mittenvotes/election-data-etl/internal/domain"
)

// Stats summarizes one file's aggregation pass.
type Stats struct {
	Rows        int // rows read from the file
	TrackedRows int // rows matching a tracked statewide contest
	Contests    int // distinct office titles aggregated
	Results     int // county results written to the document
}

// groupKey identifies one candidate's tally within a county and contest.
// Grouping on it collapses duplicate precinct rows into a county count.
type groupKey struct {
	county    string
	office    string
	party     string
	candidate string
}

// Aggregate filters rows to tracked contests, normalizes county, candidate,
// and party, sums votes by (county, office, party, candidate), and merges the
// per-county results for year into doc. Rows without a county are dropped.
// First-encounter order is preserved so the displayed dem/rep nominee is
// deterministic for a given input ordering.
func Aggregate(doc *domain.Document, year string, rows []domain.RawRow) Stats {
	stats := Stats{Rows: len(rows)}

	totals := make(map[groupKey]int)
	var order []groupKey
	var offices []string
	seenOffice := make(map[string]bool)

	for _, row := range rows {
		if _, _, ok := domain.ClassifyContest(row.Office); !ok {
			continue
		}
		stats.TrackedRows++

		candidate := domain.NormalizeCandidate(row.Candidate)
		key := groupKey{
			county:    domain.NormalizeCounty(row.County),
			office:    row.Office,
			party:     domain.ResolveParty(row.Party, candidate, year),
			candidate: candidate,
		}
		if _, ok := totals[key]; !ok {
			order = append(order, key)
		}
		totals[key] += domain.ParseVotes(row.Votes)

		if !seenOffice[row.Office] {
			seenOffice[row.Office] = true
			offices = append(offices, row.Office)
		}
	}

	for _, office := range offices {
		typ, name, ok := domain.ClassifyContest(office)
		if !ok {
			continue
		}
		contest := doc.EnsureContest(year, typ, name)
		stats.Contests++

		for _, res := range buildCountyResults(office, name, year, order, totals) {
			contest.Results[res.County] = res
			stats.Results++
		}
	}
	return stats
}

// buildCountyResults assembles one office's county records in first-encounter
// order. The displayed dem/rep nominee is the first matching candidate in
// input order; rows are not otherwise ordered.
func buildCountyResults(office, contestName, year string, order []groupKey, totals map[groupKey]int) []*domain.CountyResult {
	var counties []string
	seen := make(map[string]bool)
	for _, k := range order {
		if k.office != office || k.county == "" || seen[k.county] {
			continue
		}
		seen[k.county] = true
		counties = append(counties, k.county)
	}

	results := make([]*domain.CountyResult, 0, len(counties))
	for _, county := range counties {
		allParties := make(map[string]int)
		demCandidate, repCandidate := "", ""
		for _, k := range order {
			if k.office != office || k.county != county {
				continue
			}
			allParties[k.party] += totals[k]
			if k.party == domain.PartyDem && demCandidate == "" {
				demCandidate = k.candidate
			}
			if k.party == domain.PartyRep && repCandidate == "" {
				repCandidate = k.candidate
			}
		}
		results = append(results, domain.NewCountyResult(county, contestName, year, demCandidate, repCandidate, allParties))
	}
	return results
}
