// Package statetxt converts Michigan Secretary of State tab-separated
// results exports into the openelections county CSV layout the pipeline
// ingests. The state publishes one TXT per general election
// (e.g. 2024STATE_GENERAL_MI_CENR_BY_COUNTY.txt).
package statetxt

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mittenvotes/election-data-etl/internal/domain"
)

// partyAbbrevs maps the state's party descriptions to the ballot
// abbreviations used in the openelections files. Unknown descriptions pass
// through unchanged. The double-space "No  Affiliation" spelling appears
// verbatim in the 2020 export.
var partyAbbrevs = map[string]string{
	"Democratic":          "DEM",
	"Republican":          "REP",
	"Libertarian":         "LIB",
	"Green":               "GRN",
	"US Taxpayers":        "UST",
	"Natural Law":         "NLP",
	"Working Class Party": "WCP",
	"No  Affiliation":     "NPA",
	"No Affiliation":      "NPA",
}

var outputHeader = []string{"county", "office", "district", "party", "candidate", "votes"}

// Convert reads the tab-separated state export at txtPath and writes the
// openelections-format CSV to csvPath, returning the number of result rows
// written. Rows without a county or office are dropped, as are zero-vote
// write-in placeholders.
func Convert(ctx context.Context, txtPath, csvPath string) (int, error) {
	in, err := os.Open(txtPath)
	if err != nil {
		return 0, fmt.Errorf("open state export: %w", err)
	}
	defer in.Close()

	out, err := os.Create(csvPath)
	if err != nil {
		return 0, fmt.Errorf("create csv output: %w", err)
	}
	defer out.Close()

	reader := csv.NewReader(in)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read state export header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	writer := csv.NewWriter(out)
	if err := writer.Write(outputHeader); err != nil {
		return 0, fmt.Errorf("write csv header: %w", err)
	}

	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("read state export record: %w", err)
		}

		row, ok := convertRecord(record, index)
		if !ok {
			continue
		}
		if err := writer.Write(row); err != nil {
			return count, fmt.Errorf("write csv record: %w", err)
		}
		count++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return count, fmt.Errorf("flush csv output: %w", err)
	}
	return count, nil
}

// convertRecord maps one state export record to an output row, or reports
// false when the record should be dropped.
func convertRecord(record []string, index map[string]int) ([]string, bool) {
	get := func(names ...string) string {
		for _, name := range names {
			if i, ok := index[name]; ok && i < len(record) {
				return strings.TrimSpace(record[i])
			}
		}
		return ""
	}

	county := get("CountyName")
	office := get("OfficeDescription")
	if county == "" || office == "" {
		return nil, false
	}

	// The state's statewide district code is the literal "00000".
	district := get("DistrictCode(Text)", "DistrictCode")
	if district == "00000" {
		district = ""
	}

	party := get("PartyDescription")
	if abbrev, ok := partyAbbrevs[party]; ok {
		party = abbrev
	}

	candidate := domain.BuildCandidateName(
		get("CandidateFirstName"),
		get("CandidateMiddleName"),
		get("CandidateLastName"),
	)

	votes := get("CandidateVotes")
	if votes == "" {
		votes = "0"
	}

	// Zero-vote write-in placeholders pad the export for every precinct.
	if get("WriteIn(W)/Uncommitted(Z)") == "W" && votes == "0" {
		return nil, false
	}

	return []string{county, office, district, party, candidate, votes}, true
}
