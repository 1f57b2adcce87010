package mock

import (
	"context"
	"time"

	"github.com/fwojciec/tabscrape"
)

var _ tabscrape.Session = (*Session)(nil)

// Session is a mock implementation of tabscrape.Session.
type Session struct {
	IDFn    func() string
	URLFn   func() string
	CountFn func(ctx context.Context, selector string) (int, error)
	HTMLFn  func(ctx context.Context) (string, error)
}

func (s *Session) ID() string {
	if s.IDFn == nil {
		return "mock-session"
	}
	return s.IDFn()
}

func (s *Session) URL() string {
	if s.URLFn == nil {
		return ""
	}
	return s.URLFn()
}

func (s *Session) Count(ctx context.Context, selector string) (int, error) {
	return s.CountFn(ctx, selector)
}

func (s *Session) HTML(ctx context.Context) (string, error) {
	return s.HTMLFn(ctx)
}

var _ tabscrape.SessionManager = (*SessionManager)(nil)

// SessionManager is a mock implementation of tabscrape.SessionManager.
type SessionManager struct {
	LaunchFn   func(ctx context.Context, url string, headless bool, opts *tabscrape.BrowserOptions) (tabscrape.Session, error)
	WaitForFn  func(ctx context.Context, cond tabscrape.Condition, timeout time.Duration) error
	TeardownFn func() error
}

func (m *SessionManager) Launch(ctx context.Context, url string, headless bool, opts *tabscrape.BrowserOptions) (tabscrape.Session, error) {
	return m.LaunchFn(ctx, url, headless, opts)
}

func (m *SessionManager) WaitFor(ctx context.Context, cond tabscrape.Condition, timeout time.Duration) error {
	return m.WaitForFn(ctx, cond, timeout)
}

func (m *SessionManager) Teardown() error {
	return m.TeardownFn()
}
