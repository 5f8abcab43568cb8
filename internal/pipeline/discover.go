package pipeline

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// yearRe matches the leading date of names like "20201103__mi__general__county.csv".
var yearRe = regexp.MustCompile(`^(\d{4})`)

// InputFile is one discovered results file with the year parsed from its name.
type InputFile struct {
	Path string
	Year string
}

// YearFromFilename extracts the four-digit year prefix from a results
// filename, or "" when the name does not start with one.
func YearFromFilename(name string) string {
	m := yearRe.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return ""
	}
	return m[1]
}

// DiscoverFiles lists input files matching pattern under dir in sorted order.
// When a year has both a county-level and a precinct-level file, the precinct
// file is dropped: county files are pre-aggregated, and the precinct detail
// is only needed when no county file exists.
func DiscoverFiles(dir, pattern string) ([]InputFile, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("discover input files: %w", err)
	}
	sort.Strings(matches)

	countyYears := make(map[string]bool)
	for _, path := range matches {
		if strings.Contains(filepath.Base(path), "__county.csv") {
			if year := YearFromFilename(path); year != "" {
				countyYears[year] = true
			}
		}
	}

	files := make([]InputFile, 0, len(matches))
	for _, path := range matches {
		year := YearFromFilename(path)
		if strings.Contains(filepath.Base(path), "__precinct.csv") && countyYears[year] {
			continue
		}
		files = append(files, InputFile{Path: path, Year: year})
	}
	return files, nil
}
