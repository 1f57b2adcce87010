// Package slog provides log/slog decorators for tabscrape services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tabscrape"
)

// Ensure LoggingSessionManager implements tabscrape.SessionManager.
var _ tabscrape.SessionManager = (*LoggingSessionManager)(nil)

// LoggingSessionManager wraps a SessionManager with one log line per call.
type LoggingSessionManager struct {
	next   tabscrape.SessionManager
	logger *slog.Logger
}

// NewLoggingSessionManager creates a new LoggingSessionManager.
func NewLoggingSessionManager(next tabscrape.SessionManager, logger *slog.Logger) *LoggingSessionManager {
	return &LoggingSessionManager{next: next, logger: logger}
}

// Launch logs the URL and resulting session and delegates to the wrapped manager.
func (m *LoggingSessionManager) Launch(ctx context.Context, url string, headless bool, opts *tabscrape.BrowserOptions) (s tabscrape.Session, err error) {
	defer func(begin time.Time) {
		var id string
		if s != nil {
			id = s.ID()
		}
		m.logger.Info("launch",
			"url", url,
			"headless", headless,
			"session", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.Launch(ctx, url, headless, opts)
}

// WaitFor logs how long the wait took and delegates to the wrapped manager.
func (m *LoggingSessionManager) WaitFor(ctx context.Context, cond tabscrape.Condition, timeout time.Duration) (err error) {
	defer func(begin time.Time) {
		m.logger.Info("wait",
			"timeout", timeout,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.WaitFor(ctx, cond, timeout)
}

// Teardown logs the outcome and delegates to the wrapped manager.
func (m *LoggingSessionManager) Teardown() (err error) {
	defer func(begin time.Time) {
		m.logger.Info("teardown",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.Teardown()
}
