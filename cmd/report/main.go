// Command report renders a markdown summary of the aggregated document:
// coverage statistics, presidential swings in the bellwether counties,
// US Senate outcomes, and competitiveness category examples.
//
// Usage:
//
//	go run ./cmd/report -json data/mi_elections_aggregated.json -out README.md
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/mittenvotes/election-data-etl/internal/domain"
	"github.com/mittenvotes/election-data-etl/internal/report"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	jsonPath := flag.String("json", "data/mi_elections_aggregated.json", "aggregated document to summarize")
	outPath := flag.String("out", "README.md", "markdown output path")
	flag.Parse()

	data, err := os.ReadFile(*jsonPath)
	if err != nil {
		return err
	}
	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, &doc); err != nil {
		return err
	}
	if err := os.WriteFile(*outPath, buf.Bytes(), 0o644); err != nil {
		return err
	}
	log.Printf("wrote %s (%d bytes)", *outPath, buf.Len())
	return nil
}
