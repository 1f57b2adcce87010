package tabscrape

import (
	"context"
	"time"
)

// Session is a live browser page. It stays open until the SessionManager
// that launched it tears it down.
type Session interface {
	// ID identifies the session in diagnostics.
	ID() string

	// URL is the address the session was launched at.
	URL() string

	// Count returns how many elements in the live DOM match the CSS selector.
	Count(ctx context.Context, selector string) (int, error)

	// HTML serializes the live DOM.
	HTML(ctx context.Context) (string, error)
}

// SessionManager owns at most one live browser Session.
type SessionManager interface {
	// Launch tears down any existing session, ignoring teardown errors,
	// starts a browser and navigates it to url. A nil opts selects
	// DefaultBrowserOptions.
	Launch(ctx context.Context, url string, headless bool, opts *BrowserOptions) (Session, error)

	// WaitFor polls cond against the live session until it is satisfied or
	// timeout elapses. Returns ETIMEOUT on timeout and EINVALID when no
	// session is live.
	WaitFor(ctx context.Context, cond Condition, timeout time.Duration) error

	// Teardown closes the live session and its browser process.
	// Returns ENOTFOUND when no session is live.
	Teardown() error
}

// Condition reports whether the live session satisfies a wait predicate.
// An error counts as "not yet"; it is reported as the cause if the wait
// times out.
type Condition func(ctx context.Context, s Session) (bool, error)

// ElementPresent is satisfied once at least one element matches selector.
func ElementPresent(selector string) Condition {
	return func(ctx context.Context, s Session) (bool, error) {
		n, err := s.Count(ctx, selector)
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
}

// TablePresent is satisfied once the live DOM contains a <table>.
var TablePresent = ElementPresent("table")
