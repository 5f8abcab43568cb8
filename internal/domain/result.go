package domain

import (
	"fmt"
	"math"
	"sort"
)

// Winner values for a county result. The winner is decided between the two
// major parties only; a third-party plurality does not change it.
const (
	WinnerDem = "DEM"
	WinnerRep = "REP"
	WinnerTie = "TIE"
)

// CountyResult is the per-county unit of output. Field names and types are
// the wire contract with the visualization page; margin_pct is always a
// non-negative number rounded to two decimals.
type CountyResult struct {
	County          string          `json:"county"`
	Contest         string          `json:"contest"`
	Year            string          `json:"year"`
	DemCandidate    string          `json:"dem_candidate"`
	RepCandidate    string          `json:"rep_candidate"`
	DemVotes        int             `json:"dem_votes"`
	RepVotes        int             `json:"rep_votes"`
	OtherVotes      int             `json:"other_votes"`
	TotalVotes      int             `json:"total_votes"`
	TwoPartyTotal   int             `json:"two_party_total"`
	Margin          int             `json:"margin"`
	MarginPct       float64         `json:"margin_pct"`
	Winner          string          `json:"winner"`
	Competitiveness Competitiveness `json:"competitiveness"`
	AllParties      map[string]int  `json:"all_parties"`
}

// NewCountyResult derives the county record from summed party totals.
// Invariants: total_votes is the sum over all_parties, two_party_total is
// dem+rep, margin is |dem-rep|, and margin_pct is margin over the two-party
// total. Categorization runs on the unrounded percentage; the stored value
// is rounded to two decimals.
func NewCountyResult(county, contest, year, demCandidate, repCandidate string, allParties map[string]int) *CountyResult {
	total := 0
	for _, v := range allParties {
		total += v
	}
	dem := allParties[PartyDem]
	rep := allParties[PartyRep]
	twoParty := dem + rep

	winner := WinnerTie
	margin := 0
	switch {
	case dem > rep:
		winner, margin = WinnerDem, dem-rep
	case rep > dem:
		winner, margin = WinnerRep, rep-dem
	}

	marginPct := 0.0
	if twoParty > 0 {
		marginPct = float64(margin) / float64(twoParty) * 100
	}

	return &CountyResult{
		County:          county,
		Contest:         contest,
		Year:            year,
		DemCandidate:    demCandidate,
		RepCandidate:    repCandidate,
		DemVotes:        dem,
		RepVotes:        rep,
		OtherVotes:      total - dem - rep,
		TotalVotes:      total,
		TwoPartyTotal:   twoParty,
		Margin:          margin,
		MarginPct:       round2(marginPct),
		Winner:          winner,
		Competitiveness: CategorizeMargin(marginPct, winner),
		AllParties:      allParties,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Contest groups one tracked contest's county results for a single year.
type Contest struct {
	ContestName string                   `json:"contest_name"`
	Results     map[string]*CountyResult `json:"results"`
}

// Document is the aggregated output consumed by the visualization page.
// Shape: results_by_year[year][contest_type]["{type}_{year}"]. The contest
// key repeats the type and year by design; the front end relies on it.
type Document struct {
	ResultsByYear map[string]map[ContestType]map[string]*Contest `json:"results_by_year"`
}

// NewDocument returns an empty document ready for aggregation.
func NewDocument() *Document {
	return &Document{ResultsByYear: make(map[string]map[ContestType]map[string]*Contest)}
}

// EnsureContest returns the contest record for (year, typ), creating the
// intermediate maps and the "{type}_{year}" key on first use.
func (d *Document) EnsureContest(year string, typ ContestType, name string) *Contest {
	byType, ok := d.ResultsByYear[year]
	if !ok {
		byType = make(map[ContestType]map[string]*Contest)
		d.ResultsByYear[year] = byType
	}
	byKey, ok := byType[typ]
	if !ok {
		byKey = make(map[string]*Contest)
		byType[typ] = byKey
	}
	key := fmt.Sprintf("%s_%s", typ, year)
	contest, ok := byKey[key]
	if !ok {
		contest = &Contest{ContestName: name, Results: make(map[string]*CountyResult)}
		byKey[key] = contest
	}
	return contest
}

// Walk visits every county result in deterministic order
// (year, contest type, contest key, county — each sorted).
func (d *Document) Walk(fn func(year string, typ ContestType, res *CountyResult)) {
	for _, year := range sortedKeys(d.ResultsByYear) {
		byType := d.ResultsByYear[year]
		for _, typ := range sortedKeys(byType) {
			byKey := byType[typ]
			for _, key := range sortedKeys(byKey) {
				contest := byKey[key]
				for _, county := range sortedKeys(contest.Results) {
					fn(year, typ, contest.Results[county])
				}
			}
		}
	}
}

// ContestSummary reports the county coverage of one aggregated contest.
type ContestSummary struct {
	Year     string
	Key      string
	Counties int
}

// Summarize lists every contest in the document in sorted order.
func (d *Document) Summarize() []ContestSummary {
	var summaries []ContestSummary
	for _, year := range sortedKeys(d.ResultsByYear) {
		byType := d.ResultsByYear[year]
		for _, typ := range sortedKeys(byType) {
			byKey := byType[typ]
			for _, key := range sortedKeys(byKey) {
				summaries = append(summaries, ContestSummary{
					Year:     year,
					Key:      key,
					Counties: len(byKey[key].Results),
				})
			}
		}
	}
	return summaries
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
