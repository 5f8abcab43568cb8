package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "data/mi_elections_aggregated.json", cfg.OutputFile)
	assert.Equal(t, "*__mi__general__*.csv", cfg.FilePattern)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.KafkaEnabled)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "county-election-results", cfg.KafkaSinkTopic)
	assert.Empty(t, cfg.PushgatewayURL)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("DATA_DIR", "/srv/elections")
	t.Setenv("OUTPUT_FILE", "/srv/out/results.json")
	t.Setenv("FILE_PATTERN", "*__general__*.csv")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("KAFKA_SINK_TOPIC", "county-results")
	t.Setenv("PUSHGATEWAY_URL", "http://pushgateway:9091")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/elections", cfg.DataDir)
	assert.Equal(t, "/srv/out/results.json", cfg.OutputFile)
	assert.Equal(t, "*__general__*.csv", cfg.FilePattern)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "county-results", cfg.KafkaSinkTopic)
	assert.Equal(t, "http://pushgateway:9091", cfg.PushgatewayURL)
}

func TestParseBrokers(t *testing.T) {
	assert.Nil(t, ParseBrokers(""))
	assert.Equal(t, []string{"a:1"}, ParseBrokers("a:1"))
	assert.Equal(t, []string{"a:1", "b:2"}, ParseBrokers(" a:1 ,, b:2 "))
}
