// Package scrape combines a browser session manager and a table extractor
// into a single "scrape the first table on this page" operation.
package scrape

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/fwojciec/tabscrape"
	"github.com/fwojciec/tabscrape/goquery"
	"github.com/fwojciec/tabscrape/rod"
)

// Scraper scrapes the first table of a browser-rendered page.
//
// A successful scrape leaves the browser session open so the caller can
// inspect the live page. CloseBrowser releases it. Scraper is not safe for
// concurrent use: each scrape evicts the previous session.
type Scraper struct {
	Sessions  tabscrape.SessionManager
	Extractor tabscrape.TableExtractor

	// Logger receives diagnostics: wait timeouts, missing tables, the
	// extracted shape and teardown outcomes.
	Logger *slog.Logger
}

// ScrapeTable launches a browser at req.URL, waits for a <table> to appear
// and returns the first one.
//
// When no table appears within req.Timeout, or the rendered page contains no
// table, ScrapeTable logs the reason and returns an empty table with a nil
// error. Invalid requests, launch failures and parse failures are returned.
func (s *Scraper) ScrapeTable(ctx context.Context, req *tabscrape.ScrapeRequest) (*tabscrape.Table, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// No prior session and a failed cleanup look the same; neither stops the launch.
	if err := s.Sessions.Teardown(); err != nil {
		s.logger().Debug("teardown before launch", "err", err)
	}

	session, err := s.Sessions.Launch(ctx, req.URL, req.Headless, req.Options())
	if err != nil {
		return nil, err
	}

	if err := s.Sessions.WaitFor(ctx, tabscrape.TablePresent, req.Timeout); err != nil {
		if tabscrape.ErrorCode(err) != tabscrape.ETIMEOUT {
			return nil, err
		}
		s.logger().Warn("table not found within timeout",
			"url", req.URL,
			"timeout_secs", req.Timeout.Seconds(),
			"cause", err,
		)
		return &tabscrape.Table{}, nil
	}

	html, err := session.HTML(ctx)
	if err != nil {
		return nil, err
	}

	tbl, err := s.Extractor.Extract(html)
	if tabscrape.ErrorCode(err) == tabscrape.ENOTFOUND {
		s.logger().Warn(tabscrape.ErrorMessage(err), "url", req.URL)
		return &tabscrape.Table{}, nil
	} else if err != nil {
		return nil, err
	}

	rows, cols := tbl.Shape()
	s.logger().Info("extracted table", "url", req.URL, "rows", rows, "cols", cols)
	return tbl, nil
}

// CloseBrowser tears down the live browser session. It never fails: a
// teardown error, including closing an already closed browser, is logged.
func (s *Scraper) CloseBrowser() {
	if err := s.Sessions.Teardown(); err != nil {
		s.logger().Warn("browser already closed or teardown failed", "err", err)
		return
	}
	s.logger().Info("browser closed successfully")
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

// Option configures a ScrapeTableFromURL call.
type Option func(*tabscrape.ScrapeRequest)

// WithHeadless sets whether the browser runs without a window.
// Defaults to true.
func WithHeadless(headless bool) Option {
	return func(r *tabscrape.ScrapeRequest) {
		r.Headless = headless
	}
}

// WithTimeout sets how long to wait for a table to appear.
// Defaults to tabscrape.DefaultTimeout (30s).
func WithTimeout(d time.Duration) Option {
	return func(r *tabscrape.ScrapeRequest) {
		r.Timeout = d
	}
}

// WithBrowserOptions sets the launcher configuration.
// Defaults to tabscrape.DefaultBrowserOptions().
func WithBrowserOptions(opts *tabscrape.BrowserOptions) Option {
	return func(r *tabscrape.ScrapeRequest) {
		r.BrowserOptions = opts
	}
}

var (
	defaultOnce    sync.Once
	defaultScraper *Scraper
)

// Default returns the process-wide Scraper used by ScrapeTableFromURL and
// CloseBrowser. It drives Chrome through rod, extracts with goquery and
// writes diagnostics as text to stdout.
func Default() *Scraper {
	defaultOnce.Do(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		defaultScraper = &Scraper{
			Sessions:  rod.NewSessionManager(rod.WithLogger(logger)),
			Extractor: goquery.NewTableExtractor(),
			Logger:    logger,
		}
	})
	return defaultScraper
}

// ScrapeTableFromURL scrapes the first table at url with the process-wide
// Scraper. See Scraper.ScrapeTable.
func ScrapeTableFromURL(ctx context.Context, url string, opts ...Option) (*tabscrape.Table, error) {
	req := tabscrape.NewScrapeRequest(url)
	for _, opt := range opts {
		opt(req)
	}
	return Default().ScrapeTable(ctx, req)
}

// CloseBrowser closes the process-wide browser session, if any.
func CloseBrowser() {
	Default().CloseBrowser()
}
