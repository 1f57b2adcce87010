package rod

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/tabscrape"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/google/uuid"
	"github.com/ysmood/gson"
	"golang.org/x/time/rate"
)

// DefaultPollInterval is how often WaitFor re-evaluates its condition.
const DefaultPollInterval = 250 * time.Millisecond

// Ensure SessionManager implements tabscrape.SessionManager at compile time.
var _ tabscrape.SessionManager = (*SessionManager)(nil)

// SessionManager launches Chrome through rod and owns at most one live
// session at a time. Launching a new session tears down the previous one.
//
// SessionManager serializes its own state, but concurrent scrapes through a
// single manager evict each other's sessions.
type SessionManager struct {
	mu           sync.Mutex
	session      *Session
	pollInterval time.Duration
	logger       *slog.Logger
}

// ManagerOption configures a SessionManager.
type ManagerOption func(*SessionManager)

// WithPollInterval sets how often WaitFor polls the live DOM.
// Defaults to 250ms if not specified.
func WithPollInterval(d time.Duration) ManagerOption {
	return func(m *SessionManager) {
		m.pollInterval = d
	}
}

// WithLogger sets the logger that receives wait timeouts and teardown
// failures. Defaults to discarding log output.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *SessionManager) {
		m.logger = logger
	}
}

// NewSessionManager creates a SessionManager with no live session.
func NewSessionManager(opts ...ManagerOption) *SessionManager {
	m := &SessionManager{
		pollInterval: DefaultPollInterval,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Launch tears down any live session, starts a new browser and navigates it
// to url. Teardown errors are logged and otherwise ignored: a missing session
// and a failed cleanup are handled the same way.
//
// Returns an EINTERNAL error wrapping the cause if the browser cannot be
// started or the page cannot be opened.
func (m *SessionManager) Launch(ctx context.Context, url string, headless bool, opts *tabscrape.BrowserOptions) (tabscrape.Session, error) {
	if opts == nil {
		opts = tabscrape.DefaultBrowserOptions()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.teardown(); err != nil {
		m.logger.Debug("pre-launch teardown", "err", err)
	}

	s, err := launch(ctx, url, headless, opts)
	if err != nil {
		return nil, err
	}
	m.session = s
	return s, nil
}

// WaitFor polls cond against the live session until it is satisfied or
// timeout elapses. cond is always checked once more at the deadline. Errors
// from cond are treated as "not yet" and reported as the cause on timeout.
func (m *SessionManager) WaitFor(ctx context.Context, cond tabscrape.Condition, timeout time.Duration) error {
	m.mu.Lock()
	s := m.session
	m.mu.Unlock()

	if s == nil {
		return tabscrape.Errorf(tabscrape.EINVALID, "no live browser session")
	}

	deadline := time.Now().Add(timeout)
	limiter := rate.NewLimiter(rate.Every(m.pollInterval), 1)
	limiter.Allow() // the first check runs immediately

	var cause error
	for {
		ok, err := m.check(ctx, s, cond, deadline)
		if err == nil && ok {
			return nil
		}
		cause = err

		// The caller gave up, this is not a timeout.
		if err := ctx.Err(); err != nil {
			return err
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		if err := sleep(ctx, min(limiter.Reserve().Delay(), remaining)); err != nil {
			return err
		}
	}

	if cause == nil {
		cause = context.DeadlineExceeded
	}

	m.logger.Debug("wait timed out",
		"session", s.id,
		"timeout_secs", timeout.Seconds(),
		"cause", cause,
	)
	return tabscrape.Wrapf(cause, tabscrape.ETIMEOUT, "condition not met within %g seconds", timeout.Seconds())
}

// check evaluates cond once. A check may overrun the deadline by at most one
// poll interval.
func (m *SessionManager) check(ctx context.Context, s *Session, cond tabscrape.Condition, deadline time.Time) (bool, error) {
	checkCtx, cancel := context.WithDeadline(ctx, deadline.Add(m.pollInterval))
	defer cancel()
	return cond(checkCtx, s)
}

// sleep blocks for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Teardown closes the live session's browser and kills its process.
// Returns ENOTFOUND if there is no live session.
func (m *SessionManager) Teardown() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.teardown()
}

// Session returns the live session, or nil if there is none.
func (m *SessionManager) Session() tabscrape.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return nil
	}
	return m.session
}

// LauncherPID returns the process ID of the live session's browser launcher,
// or 0 if there is no live session.
// This method exists for testing purposes to verify proper cleanup.
func (m *SessionManager) LauncherPID() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return 0
	}
	return m.session.launcher.PID()
}

// teardown closes the live session.
// Must be called with mu held.
func (m *SessionManager) teardown() error {
	if m.session == nil {
		return tabscrape.Errorf(tabscrape.ENOTFOUND, "browser already closed")
	}

	s := m.session
	m.session = nil
	if err := s.close(); err != nil {
		return tabscrape.Wrapf(err, tabscrape.EINTERNAL, "closing browser")
	}
	return nil
}

// Ensure Session implements tabscrape.Session at compile time.
var _ tabscrape.Session = (*Session)(nil)

// Session is a browser process with a single page.
type Session struct {
	id       string
	url      string
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// URL returns the address the session was launched at.
func (s *Session) URL() string {
	return s.url
}

// Count returns the number of elements in the live DOM matching selector.
func (s *Session) Count(ctx context.Context, selector string) (int, error) {
	res, err := s.page.Context(ctx).Eval(`(selector) => document.querySelectorAll(selector).length`, selector)
	if err != nil {
		return 0, err
	}
	return count(res.Value)
}

// HTML serializes the live DOM.
func (s *Session) HTML(ctx context.Context) (string, error) {
	return s.page.Context(ctx).HTML()
}

// close shuts down the browser and its launcher.
func (s *Session) close() error {
	err := s.browser.Close()
	s.launcher.Kill()
	return err
}

// launch starts a browser, opens a page and navigates it to url.
// Everything started along the way is cleaned up on failure.
func launch(ctx context.Context, url string, headless bool, opts *tabscrape.BrowserOptions) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l := newLauncher(headless, opts)
	u, err := l.Context(ctx).Launch()
	if err != nil {
		return nil, tabscrape.Wrapf(err, tabscrape.EINTERNAL, "launching browser")
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, tabscrape.Wrapf(err, tabscrape.EINTERNAL, "connecting to browser")
	}

	s := &Session{
		id:       uuid.NewString(),
		url:      url,
		launcher: l,
		browser:  browser,
	}

	if err := s.open(ctx, opts.Stealth); err != nil {
		return nil, errors.Join(err, s.close())
	}
	return s, nil
}

// open creates the session page and navigates it to the session URL.
func (s *Session) open(ctx context.Context, stealthy bool) error {
	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return tabscrape.Wrapf(err, tabscrape.EINTERNAL, "opening page")
	}
	s.page = page

	// Evasions only apply to documents loaded after they are installed.
	if stealthy {
		if _, err := page.EvalOnNewDocument(stealth.JS); err != nil {
			return tabscrape.Wrapf(err, tabscrape.EINTERNAL, "injecting stealth script")
		}
	}

	if err := page.Context(ctx).Navigate(s.url); err != nil {
		return tabscrape.Wrapf(err, tabscrape.EINTERNAL, "navigating to %s", s.url)
	}
	return nil
}

// newLauncher builds a launcher from the browser options. Arguments are
// Chrome switches in "name" or "name=value" form; a leading "--" is allowed.
func newLauncher(headless bool, opts *tabscrape.BrowserOptions) *launcher.Launcher {
	l := launcher.New().
		Leakless(true).
		Headless(headless)

	if opts.Bin != "" {
		l = l.Bin(opts.Bin)
	}
	if opts.UserDataDir != "" {
		l = l.UserDataDir(opts.UserDataDir)
	}
	for _, arg := range opts.Args {
		name, value, hasValue := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		if name == "" {
			continue
		}
		if hasValue {
			l = l.Set(flags.Flag(name), value)
		} else {
			l = l.Set(flags.Flag(name))
		}
	}
	return l
}

// count decodes the result of a querySelectorAll length evaluation.
func count(v gson.JSON) (int, error) {
	switch v.Val().(type) {
	case nil, bool, string, []interface{}, map[string]interface{}:
		return 0, tabscrape.Errorf(tabscrape.EINTERNAL, "element count is not a number: %v", v.Val())
	}
	n := v.Int()
	if n < 0 {
		return 0, tabscrape.Errorf(tabscrape.EINTERNAL, "negative element count: %d", n)
	}
	return n, nil
}
