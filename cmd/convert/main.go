// Command convert turns a Michigan Secretary of State tab-separated results
// export into the openelections county CSV layout the aggregator ingests.
//
// Usage:
//
//	go run ./cmd/convert \
//	  -in data/2024STATE_GENERAL_MI_CENR_BY_COUNTY.txt \
//	  -out data/20241105__mi__general__county.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/mittenvotes/election-data-etl/internal/adapter/statetxt"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	in := flag.String("in", "", "state export TXT file")
	out := flag.String("out", "", "output CSV path")
	flag.Parse()

	if *in == "" || *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -in, -out")
	}

	n, err := statetxt.Convert(context.Background(), *in, *out)
	if err != nil {
		return err
	}
	log.Printf("converted %s to %s (%d records)", *in, *out, n)
	return nil
}
