package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/mittenvotes/election-data-etl/internal/domain"
	"github.com/mittenvotes/election-data-etl/internal/observability"
)

// Extractor reads one input file into raw rows.
type Extractor interface {
	Extract(ctx context.Context, path string) ([]domain.RawRow, error)
}

// Loader persists the aggregated document.
type Loader interface {
	Load(ctx context.Context, doc *domain.Document) error
}

// Publisher forwards county results to an optional downstream sink.
type Publisher interface {
	Publish(ctx context.Context, doc *domain.Document) error
}

// Pipeline runs the batch extract-aggregate-load pass over discovered files.
type Pipeline struct {
	extractor Extractor
	loader    Loader
	publisher Publisher // nil disables publishing
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Pipeline with the given stages and observability.
func New(e Extractor, l Loader, p Publisher, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		extractor: e,
		loader:    l,
		publisher: p,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run processes files sequentially in the given order, loads the aggregated
// document, and publishes county results when a publisher is configured.
// File-level failures are logged and skipped; the run always loads whatever
// was successfully accumulated.
func (p *Pipeline) Run(ctx context.Context, files []InputFile) (*domain.Document, error) {
	p.logger.Info("pipeline started", "files", len(files))
	doc := domain.NewDocument()

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p.processFile(ctx, doc, f)
	}

	if err := p.loader.Load(ctx, doc); err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	if p.publisher != nil {
		if err := p.publisher.Publish(ctx, doc); err != nil {
			// Publishing is a secondary sink; the document is already written.
			p.logger.Error("publish county results failed", "error", err)
		}
	}

	return doc, nil
}

// processFile runs one extract-aggregate cycle. Failures skip the file and
// never abort the run.
func (p *Pipeline) processFile(ctx context.Context, doc *domain.Document, f InputFile) {
	if f.Year == "" {
		p.logger.Warn("skipping file, no year in filename", "file", f.Path)
		p.metrics.FilesSkipped.Inc()
		return
	}

	start := time.Now()

	rows, err := p.extractor.Extract(ctx, f.Path)
	if err != nil {
		p.logger.Warn("skipping file", "file", f.Path, "error", err)
		p.metrics.FilesSkipped.Inc()
		return
	}

	stats := Aggregate(doc, f.Year, rows)

	p.metrics.FilesProcessed.Inc()
	p.metrics.RowsRead.Add(float64(stats.Rows))
	p.metrics.RowsTracked.Add(float64(stats.TrackedRows))
	p.metrics.ResultsEmitted.Add(float64(stats.Results))
	p.metrics.FileProcessingDuration.Observe(time.Since(start).Seconds())

	if stats.TrackedRows == 0 {
		p.logger.Warn("no statewide races in file", "file", filepath.Base(f.Path), "rows", stats.Rows)
		return
	}

	p.logger.Info("file aggregated",
		"file", filepath.Base(f.Path),
		"year", f.Year,
		"rows", stats.Rows,
		"tracked_rows", stats.TrackedRows,
		"contests", stats.Contests,
		"county_results", stats.Results,
	)
}
