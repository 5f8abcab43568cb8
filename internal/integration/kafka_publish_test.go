//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	kafkaadapter "github.com/mittenvotes/election-data-etl/internal/adapter/kafka"
	"github.com/mittenvotes/election-data-etl/internal/config"
	"github.com/mittenvotes/election-data-etl/internal/domain"
	"github.com/mittenvotes/election-data-etl/internal/pipeline"
)

const sinkTopic = "county-election-results"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka runs a single-broker Kafka container and returns its address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0",
		tckafka.WithClusterID("test-cluster"),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err, "start kafka container")

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

// createTopic provisions topic on the broker via the controller connection.
func createTopic(t *testing.T, broker, topic string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err, "dial broker")
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)
	controllerConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err, "dial controller")
	defer controllerConn.Close()

	require.NoError(t, controllerConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// TestPublishCountyResults aggregates a small two-contest document and
// verifies every county result round-trips through a real broker with the
// expected key, headers, and payload.
func TestPublishCountyResults(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(now))
	t.Cleanup(func() { domain.SetClock(nil) })

	broker := startKafka(ctx, t)
	createTopic(t, broker, sinkTopic)

	doc := domain.NewDocument()
	pipeline.Aggregate(doc, "2020", []domain.RawRow{
		{Office: "President", County: "Wayne County", Party: "DEM", Candidate: "Joe Biden", Votes: "220,000"},
		{Office: "President", County: "Wayne County", Party: "REP", Candidate: "Donald Trump", Votes: "90,000"},
		{Office: "President", County: "Kent", Party: "DEM", Candidate: "Joe Biden", Votes: "100"},
		{Office: "President", County: "Kent", Party: "REP", Candidate: "Donald Trump", Votes: "120"},
	})
	pipeline.Aggregate(doc, "2022", []domain.RawRow{
		{Office: "Governor", County: "Wayne", Party: "DEM", Candidate: "Gretchen Whitmer", Votes: "500"},
		{Office: "Governor", County: "Wayne", Party: "REP", Candidate: "Tudor Dixon", Votes: "300"},
	})

	cfg := &config.Config{
		KafkaBrokers:   []string{broker},
		KafkaSinkTopic: sinkTopic,
		KafkaEnabled:   true,
	}
	writer := kafkaadapter.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	require.NoError(t, writer.Publish(ctx, doc))

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       sinkTopic,
		GroupID:     fmt.Sprintf("test-consumer-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	byKey := make(map[string]kafkago.Message)
	for len(byKey) < 3 {
		readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
		msg, err := consumer.ReadMessage(readCtx)
		readCancel()
		require.NoError(t, err, "read from sink topic")
		byKey[string(msg.Key)] = msg
	}

	require.Contains(t, byKey, "2020|president|Wayne")
	require.Contains(t, byKey, "2020|president|Kent")
	require.Contains(t, byKey, "2022|governor|Wayne")

	msg := byKey["2020|president|Wayne"]
	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "president", headers["contest_type"])
	assert.Equal(t, "2020", headers["year"])
	assert.Equal(t, now.Format(time.RFC3339), headers["aggregated_at"])

	var res domain.CountyResult
	require.NoError(t, json.Unmarshal(msg.Value, &res))
	assert.Equal(t, "Wayne", res.County)
	assert.Equal(t, 220000, res.DemVotes)
	assert.Equal(t, 90000, res.RepVotes)
	assert.Equal(t, domain.WinnerDem, res.Winner)
	assert.Equal(t, "Annihilation Democratic", res.Competitiveness.Category)

	// Verify no stray fourth message.
	readCtx, readCancel := context.WithTimeout(ctx, 5*time.Second)
	_, err := consumer.ReadMessage(readCtx)
	readCancel()
	assert.Error(t, err, "expected exactly three county results on the topic")
}
