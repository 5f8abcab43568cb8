// Package csvfile extracts raw result rows from openelections CSV files.
//
// The archive's column layout drifted over the years: older files carry
// first/middle/last name columns, newer ones a single candidate column, and
// header casing varies. The reader resolves columns by lowercased header name
// and tolerates ragged records, so one extractor serves every vintage.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mittenvotes/election-data-etl/internal/domain"
)

// columns holds the resolved header index for each field we read. -1 means
// the file does not carry that column.
type columns struct {
	county    int
	office    int
	party     int
	candidate int
	first     int
	middle    int
	last      int
	votes     int
}

// Reader extracts domain rows from one CSV results file.
type Reader struct{}

// NewReader creates a CSV extractor.
func NewReader() *Reader {
	return &Reader{}
}

// Extract reads path and returns its raw rows. Rows shorter than the header
// are padded with blanks rather than rejected; files missing a required
// column fail as a whole.
func (r *Reader) Extract(ctx context.Context, path string) ([]domain.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open results file: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var rows []domain.RawRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record of %s: %w", path, err)
		}
		rows = append(rows, domain.RawRow{
			County:    field(record, cols.county),
			Office:    field(record, cols.office),
			Party:     field(record, cols.party),
			Candidate: candidateOf(record, cols),
			Votes:     field(record, cols.votes),
		})
	}
	return rows, nil
}

// resolveColumns maps lowercased header names to indexes and checks that the
// file carries the columns the aggregation needs.
func resolveColumns(header []string) (columns, error) {
	cols := columns{
		county: -1, office: -1, party: -1,
		candidate: -1, first: -1, middle: -1, last: -1, votes: -1,
	}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "county":
			cols.county = i
		case "office":
			cols.office = i
		case "party":
			cols.party = i
		case "candidate":
			cols.candidate = i
		case "first", "first_name", "candidate_first_name":
			cols.first = i
		case "middle", "middle_name", "candidate_middle_name":
			cols.middle = i
		case "last", "last_name", "candidate_last_name":
			cols.last = i
		case "votes":
			cols.votes = i
		}
	}

	switch {
	case cols.county < 0:
		return cols, fmt.Errorf("missing county column")
	case cols.office < 0:
		return cols, fmt.Errorf("missing office column")
	case cols.votes < 0:
		return cols, fmt.Errorf("missing votes column")
	case cols.candidate < 0 && cols.last < 0:
		return cols, fmt.Errorf("missing candidate name columns")
	}
	return cols, nil
}

// candidateOf returns the candidate name, assembling it from the split name
// columns when the file predates the single candidate column.
func candidateOf(record []string, cols columns) string {
	if cols.candidate >= 0 {
		return field(record, cols.candidate)
	}
	return domain.BuildCandidateName(
		field(record, cols.first),
		field(record, cols.middle),
		field(record, cols.last),
	)
}

// field reads record[i], treating a missing index or short record as blank.
func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}
