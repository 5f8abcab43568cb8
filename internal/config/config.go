package config

import (
	"errors"
	"os"
	"strings"
)

// Config holds all job settings, populated from environment variables.
type Config struct {
	// DataDir and FilePattern select the input CSVs; OutputFile is the
	// aggregated JSON document read by the visualization page.
	DataDir     string
	OutputFile  string
	FilePattern string

	LogLevel  string
	LogFormat string

	// Kafka publishing is optional; setting KAFKA_BROKERS enables it.
	KafkaBrokers   []string
	KafkaSinkTopic string
	KafkaEnabled   bool

	// PushgatewayURL, when set, delivers run metrics to a Prometheus
	// Pushgateway at the end of the batch.
	PushgatewayURL string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	brokers := ParseBrokers(os.Getenv("KAFKA_BROKERS"))

	cfg := &Config{
		DataDir:     EnvOrDefault("DATA_DIR", "data"),
		OutputFile:  EnvOrDefault("OUTPUT_FILE", "data/mi_elections_aggregated.json"),
		FilePattern: EnvOrDefault("FILE_PATTERN", "*__mi__general__*.csv"),
		LogLevel:    EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:   EnvOrDefault("LOG_FORMAT", "json"),

		KafkaBrokers:   brokers,
		KafkaSinkTopic: EnvOrDefault("KAFKA_SINK_TOPIC", "county-election-results"),
		KafkaEnabled:   len(brokers) > 0,

		PushgatewayURL: os.Getenv("PUSHGATEWAY_URL"),
	}

	if cfg.FilePattern == "" {
		return nil, errors.New("FILE_PATTERN is required")
	}
	if cfg.OutputFile == "" {
		return nil, errors.New("OUTPUT_FILE is required")
	}
	if cfg.KafkaEnabled && cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_BROKERS is set but KAFKA_SINK_TOPIC is empty")
	}

	return cfg, nil
}

// EnvOrDefault returns the environment value for key, or fallback when unset or blank.
func EnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ParseBrokers splits a comma-separated broker list, dropping empty entries.
func ParseBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
