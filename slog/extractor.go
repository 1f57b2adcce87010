package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/tabscrape"
)

// Ensure LoggingExtractor implements tabscrape.TableExtractor.
var _ tabscrape.TableExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a TableExtractor with one log line per call.
type LoggingExtractor struct {
	next   tabscrape.TableExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next tabscrape.TableExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the input size and resulting shape and delegates to the
// wrapped extractor.
func (e *LoggingExtractor) Extract(html string) (tbl *tabscrape.Table, err error) {
	defer func(begin time.Time) {
		rows, cols := tbl.Shape()
		e.logger.Info("extract",
			"bytes", len(html),
			"rows", rows,
			"cols", cols,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
