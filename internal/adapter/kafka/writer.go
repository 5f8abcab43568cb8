// Package kafka publishes aggregated county results to a Kafka topic so
// downstream consumers can react to fresh aggregation runs without polling
// the JSON artifact.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/mittenvotes/election-data-etl/internal/config"
	"github.com/mittenvotes/election-data-etl/internal/domain"
)

// Writer produces county results to a Kafka topic.
// It implements pipeline.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish serializes every county result in doc and writes them to the sink
// topic in a single WriteMessages call. Keys are stable per county and
// contest, so a compacted topic retains only the latest aggregation.
func (w *Writer) Publish(ctx context.Context, doc *domain.Document) error {
	var msgs []kafkago.Message
	var serr error
	doc.Walk(func(year string, typ domain.ContestType, res *domain.CountyResult) {
		if serr != nil {
			return
		}
		msg, err := serializeResult(year, typ, res)
		if err != nil {
			serr = err
			return
		}
		msgs = append(msgs, msg)
	})
	if serr != nil {
		return serr
	}
	if len(msgs) == 0 {
		return nil
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish county results: %w", err)
	}
	w.logger.Info("county results published", "topic", w.writer.Topic, "messages", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeResult marshals one county result into a Kafka message.
func serializeResult(year string, typ domain.ContestType, res *domain.CountyResult) (kafkago.Message, error) {
	data, err := json.Marshal(res)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize county result: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(fmt.Sprintf("%s|%s|%s", year, typ, res.County)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "contest_type", Value: []byte(typ)},
			{Key: "year", Value: []byte(year)},
			{Key: "aggregated_at", Value: []byte(domain.Now().Format(time.RFC3339))},
		},
	}, nil
}
