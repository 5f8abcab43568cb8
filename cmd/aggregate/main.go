// Command aggregate runs the batch aggregation: it discovers Michigan
// general-election CSVs, normalizes and aggregates them, and writes the
// nested JSON document the visualization reads. Setting KAFKA_BROKERS also
// publishes every county result to a Kafka topic.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mittenvotes/election-data-etl/internal/adapter/csvfile"
	"github.com/mittenvotes/election-data-etl/internal/adapter/jsonfile"
	kafkaadapter "github.com/mittenvotes/election-data-etl/internal/adapter/kafka"
	"github.com/mittenvotes/election-data-etl/internal/config"
	"github.com/mittenvotes/election-data-etl/internal/observability"
	"github.com/mittenvotes/election-data-etl/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, metrics); err != nil {
		logger.Error("aggregation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) error {
	files, err := pipeline.DiscoverFiles(cfg.DataDir, cfg.FilePattern)
	if err != nil {
		return err
	}
	logger.Info("input files discovered", "dir", cfg.DataDir, "pattern", cfg.FilePattern, "files", len(files))

	var publisher pipeline.Publisher
	if cfg.KafkaEnabled {
		writer := kafkaadapter.NewWriter(cfg, logger)
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
		publisher = writer
		logger.Info("kafka publishing enabled", "topic", cfg.KafkaSinkTopic)
	}

	p := pipeline.New(
		csvfile.NewReader(),
		jsonfile.NewWriter(cfg.OutputFile, logger),
		publisher,
		logger,
		metrics,
	)

	doc, err := p.Run(ctx, files)
	if err != nil {
		return err
	}

	for _, s := range doc.Summarize() {
		logger.Info("contest aggregated", "year", s.Year, "contest", s.Key, "counties", s.Counties)
	}

	if cfg.PushgatewayURL != "" {
		if err := metrics.Push(cfg.PushgatewayURL, "election_data_etl"); err != nil {
			// Metrics delivery never fails the batch.
			logger.Error("pushgateway delivery failed", "error", err)
		}
	}

	logger.Info("aggregation complete", "output", cfg.OutputFile)
	return nil
}
