package tabscrape

import (
	"net/url"
	"time"
)

// DefaultTimeout is how long a scrape waits for the first table to appear.
const DefaultTimeout = 30 * time.Second

// ScrapeRequest describes a single scrape of the first table on a page.
type ScrapeRequest struct {
	// URL is the absolute http(s) address of the page.
	URL string

	// Headless runs the browser without a window.
	Headless bool

	// Timeout bounds the wait for a <table> to appear in the live DOM.
	Timeout time.Duration

	// BrowserOptions configures the browser launcher.
	// Nil selects DefaultBrowserOptions.
	BrowserOptions *BrowserOptions
}

// NewScrapeRequest returns a headless request for rawURL with the default timeout.
func NewScrapeRequest(rawURL string) *ScrapeRequest {
	return &ScrapeRequest{
		URL:      rawURL,
		Headless: true,
		Timeout:  DefaultTimeout,
	}
}

// Validate returns an error if the request contains invalid fields.
func (r *ScrapeRequest) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "scrape URL required")
	}
	u, err := url.Parse(r.URL)
	if err != nil {
		return Errorf(EINVALID, "invalid scrape URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "scrape URL must be http or https: %q", r.URL)
	}
	if u.Host == "" {
		return Errorf(EINVALID, "scrape URL has no host: %q", r.URL)
	}
	if r.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be positive")
	}
	return nil
}

// Options returns the request's browser options, or the defaults when unset.
func (r *ScrapeRequest) Options() *BrowserOptions {
	if r.BrowserOptions != nil {
		return r.BrowserOptions
	}
	return DefaultBrowserOptions()
}

// BrowserOptions configures how the browser process is launched.
type BrowserOptions struct {
	// Args are Chrome command-line switches without the leading "--",
	// either "name" or "name=value".
	Args []string

	// Bin overrides the browser binary. Empty lets the launcher find or
	// download one.
	Bin string

	// UserDataDir sets the browser profile directory. Empty uses a
	// temporary profile.
	UserDataDir string

	// Stealth injects evasions for common headless-detection scripts
	// before the page is loaded.
	Stealth bool
}

// DefaultBrowserOptions returns the switches that let Chrome run inside
// restricted container environments.
func DefaultBrowserOptions() *BrowserOptions {
	return &BrowserOptions{
		Args: []string{
			"no-sandbox",
			"disable-dev-shm-usage",
			"disable-gpu",
		},
	}
}
