// Package report derives summary statistics from the aggregated document and
// renders them as a markdown report: coverage counts, presidential swings in
// the bellwether counties, US Senate outcomes, and one example county per
// competitiveness category.
package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"text/template"

	"github.com/mittenvotes/election-data-etl/internal/domain"
)

// watchCounties are the realignment bellwethers the swing analysis tracks.
var watchCounties = []string{"Macomb", "Oakland", "Wayne", "Kent", "Washtenaw"}

// ContestRecord is one contest flattened out of the nested document.
type ContestRecord struct {
	Year        string
	ContestType domain.ContestType
	Key         string
	ContestName string
	Results     map[string]*domain.CountyResult
}

// Flatten lists the document's contests in deterministic year/type/key order.
func Flatten(doc *domain.Document) []ContestRecord {
	var records []ContestRecord
	for _, year := range sortedKeys(doc.ResultsByYear) {
		byType := doc.ResultsByYear[year]
		for _, typ := range sortedKeys(byType) {
			byKey := byType[typ]
			for _, key := range sortedKeys(byKey) {
				contest := byKey[key]
				records = append(records, ContestRecord{
					Year:        year,
					ContestType: typ,
					Key:         key,
					ContestName: contest.ContestName,
					Results:     contest.Results,
				})
			}
		}
	}
	return records
}

// Stats summarizes document coverage.
type Stats struct {
	Contests      int
	FirstYear     string
	LastYear      string
	Years         []string
	Counties      int
	CountyRecords int
}

// Statistics computes coverage counts over the flattened contests.
func Statistics(records []ContestRecord) Stats {
	years := make(map[string]bool)
	counties := make(map[string]bool)
	stats := Stats{Contests: len(records)}

	for _, rec := range records {
		years[rec.Year] = true
		for county := range rec.Results {
			counties[county] = true
			stats.CountyRecords++
		}
	}

	stats.Years = sortedKeys(years)
	if len(stats.Years) > 0 {
		stats.FirstYear = stats.Years[0]
		stats.LastYear = stats.Years[len(stats.Years)-1]
	}
	stats.Counties = len(counties)
	return stats
}

// Swing is one county's presidential movement between its first and most
// recent tracked election. Margins are the Democratic share of the two-party
// vote minus 50, so positive values lean Democratic.
type Swing struct {
	County      string
	FirstYear   string
	FirstMargin float64
	LastYear    string
	LastMargin  float64
	Swing       float64
}

// Direction says which party the county moved toward.
func (s Swing) Direction() string {
	if s.Swing > 0 {
		return "Democrats"
	}
	return "Republicans"
}

// PresidentialSwings computes first-to-latest margin movement for the watch
// counties, sorted by swing magnitude. Counties with fewer than two tracked
// presidential elections are omitted.
func PresidentialSwings(records []ContestRecord) []Swing {
	var swings []Swing
	for _, county := range watchCounties {
		var first, last *Swing
		for _, rec := range records {
			if rec.ContestType != domain.ContestPresident {
				continue
			}
			res, ok := rec.Results[county]
			if !ok {
				continue
			}
			margin, ok := demMargin(res)
			if !ok {
				continue
			}
			point := &Swing{County: county, FirstYear: rec.Year, FirstMargin: margin}
			if first == nil {
				first = point
			}
			last = point
		}
		if first == nil || last == nil || first.FirstYear == last.FirstYear {
			continue
		}
		swings = append(swings, Swing{
			County:      county,
			FirstYear:   first.FirstYear,
			FirstMargin: first.FirstMargin,
			LastYear:    last.FirstYear,
			LastMargin:  last.FirstMargin,
			Swing:       last.FirstMargin - first.FirstMargin,
		})
	}
	sort.SliceStable(swings, func(i, j int) bool {
		return math.Abs(swings[i].Swing) > math.Abs(swings[j].Swing)
	})
	return swings
}

// SenateRace is one US Senate contest's statewide outcome.
type SenateRace struct {
	Year         string
	DemCandidate string
	RepCandidate string
	DemMargin    float64
	Winner       string
}

// SenateRaces summarizes every US Senate contest. A "Statewide" county record
// is preferred when present; otherwise county results are summed.
func SenateRaces(records []ContestRecord) []SenateRace {
	var races []SenateRace
	for _, rec := range records {
		if rec.ContestType != domain.ContestUSSenate || len(rec.Results) == 0 {
			continue
		}

		var demVotes, repVotes int
		var demCandidate, repCandidate string
		if statewide, ok := rec.Results["Statewide"]; ok {
			demVotes, repVotes = statewide.DemVotes, statewide.RepVotes
			demCandidate, repCandidate = statewide.DemCandidate, statewide.RepCandidate
		} else {
			for _, county := range sortedKeys(rec.Results) {
				res := rec.Results[county]
				demVotes += res.DemVotes
				repVotes += res.RepVotes
				if demCandidate == "" {
					demCandidate = res.DemCandidate
				}
				if repCandidate == "" {
					repCandidate = res.RepCandidate
				}
			}
		}

		total := demVotes + repVotes
		if total == 0 {
			continue
		}
		margin := float64(demVotes)/float64(total)*100 - 50
		winner := "Republican"
		if margin > 0 {
			winner = "Democrat"
		}
		races = append(races, SenateRace{
			Year:         rec.Year,
			DemCandidate: demCandidate,
			RepCandidate: repCandidate,
			DemMargin:    margin,
			Winner:       winner,
		})
	}
	return races
}

// CategoryExample attaches one county result to a competitiveness category.
type CategoryExample struct {
	Category domain.Competitiveness
	County   string
	Contest  string
	Year     string
	Margin   float64
	Winner   string
}

// CategoryExamples picks one example per competitiveness category seen in the
// data, preferring 2024 presidential results, then any 2024 result, then the
// first seen. Examples are returned in category-code order.
func CategoryExamples(records []ContestRecord) []CategoryExample {
	examples := make(map[string]CategoryExample)
	for _, rec := range records {
		for _, county := range sortedKeys(rec.Results) {
			res := rec.Results[county]
			candidate := CategoryExample{
				Category: res.Competitiveness,
				County:   county,
				Contest:  rec.ContestName,
				Year:     rec.Year,
				Margin:   res.MarginPct,
				Winner:   res.Winner,
			}
			current, seen := examples[candidate.Category.Category]
			if !seen || prefer(candidate, current) {
				examples[candidate.Category.Category] = candidate
			}
		}
	}

	out := make([]CategoryExample, 0, len(examples))
	for _, ex := range examples {
		out = append(out, ex)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Category.Code < out[j].Category.Code
	})
	return out
}

// prefer reports whether a should replace b as a category's example.
func prefer(a, b CategoryExample) bool {
	aPres2024 := a.Year == "2024" && a.Contest == "President"
	bPres2024 := b.Year == "2024" && b.Contest == "President"
	if aPres2024 != bPres2024 {
		return aPres2024
	}
	if (a.Year == "2024") != (b.Year == "2024") {
		return a.Year == "2024"
	}
	return false
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"abs":    math.Abs,
	"signed": func(v float64) string { return fmt.Sprintf("%+.1f", v) },
}).Parse(`# Michigan Statewide Election Results

County-level results for {{.Stats.Contests}} statewide contests, {{.Stats.FirstYear}}-{{.Stats.LastYear}}, covering {{.Stats.Counties}} counties ({{.Stats.CountyRecords}} county records).

## Presidential Swings
{{range .Swings}}
- **{{.County}} County**: {{signed .FirstMargin}}% ({{.FirstYear}}) to {{signed .LastMargin}}% ({{.LastYear}}), a {{printf "%.2f" (abs .Swing)}}-point swing toward {{.Direction}}
{{- end}}

## US Senate Races
{{range .Senate}}
- **{{.Year}}**: {{.DemCandidate}} (D) vs {{.RepCandidate}} (R), {{.Winner}} by {{printf "%.2f" (abs .DemMargin)}}%
{{- end}}

## Competitiveness Categories
{{range .Examples}}
- **{{.Category.Category}}** ({{.Category.Code}}): {{.County}} County, {{.Contest}} {{.Year}} ({{.Winner}} by {{printf "%.2f" (abs .Margin)}}%)
{{- end}}

---
Generated {{.Date}}. Data through the {{.Stats.LastYear}} general election.
`))

// Render writes the markdown report for doc to w.
func Render(w io.Writer, doc *domain.Document) error {
	records := Flatten(doc)
	data := struct {
		Stats    Stats
		Swings   []Swing
		Senate   []SenateRace
		Examples []CategoryExample
		Date     string
	}{
		Stats:    Statistics(records),
		Swings:   PresidentialSwings(records),
		Senate:   SenateRaces(records),
		Examples: CategoryExamples(records),
		Date:     domain.Now().Format("January 2, 2006"),
	}
	if err := reportTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// demMargin returns the Democratic two-party margin for one county result,
// or false when no two-party votes were cast.
func demMargin(res *domain.CountyResult) (float64, bool) {
	if res.TwoPartyTotal == 0 {
		return 0, false
	}
	return float64(res.DemVotes)/float64(res.TwoPartyTotal)*100 - 50, true
}
