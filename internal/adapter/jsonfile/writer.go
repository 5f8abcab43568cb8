// Package jsonfile persists the aggregated document as a single indented
// JSON file, the artifact downstream dashboards read directly.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/mittenvotes/election-data-etl/internal/domain"
)

// Writer serializes the aggregated document to one output path.
type Writer struct {
	path   string
	logger *slog.Logger
}

// NewWriter creates a document writer targeting path.
func NewWriter(path string, logger *slog.Logger) *Writer {
	return &Writer{path: path, logger: logger}
}

// Load writes doc to the configured path, creating parent directories as
// needed. The encoder keeps HTML characters literal so candidate names and
// county names round-trip byte-for-byte.
func (w *Writer) Load(_ context.Context, doc *domain.Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(w.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	w.logger.Info("document written",
		"file", w.path,
		"size", humanize.Bytes(uint64(buf.Len())),
	)
	return nil
}
