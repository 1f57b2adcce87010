package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/tabscrape"
	"github.com/fwojciec/tabscrape/format"
	"github.com/fwojciec/tabscrape/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Scraper *scrape.Scraper
	Writer  *format.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL         string        `arg:"" help:"Page URL (http or https)"`
	Timeout     time.Duration `short:"t" default:"30s" env:"TABSCRAPE_TIMEOUT" help:"How long to wait for a <table> to appear"`
	Headful     bool          `help:"Show the browser window"`
	Format      string        `short:"f" default:"csv" enum:"csv,json,markdown" help:"Output format (csv, json, markdown)"`
	BrowserArgs []string      `name:"browser-arg" help:"Chrome switch such as no-sandbox or window-size=1280,800 (repeatable, replaces the defaults)"`
	BrowserBin  string        `name:"browser-bin" env:"TABSCRAPE_BROWSER_BIN" help:"Path to the Chrome or Chromium binary"`
	Stealth     bool          `help:"Hide common headless browser fingerprints"`
	Verbose     bool          `short:"v" help:"Log every browser and extractor call"`
	KeepOpen    bool          `name:"keep-open" help:"Leave the browser open until interrupted"`
}

// Request builds the scrape request described by the flags.
func (c *CLI) Request() (*tabscrape.ScrapeRequest, error) {
	req := tabscrape.NewScrapeRequest(c.URL)
	req.Headless = !c.Headful
	req.Timeout = c.Timeout

	if len(c.BrowserArgs) > 0 || c.BrowserBin != "" || c.Stealth {
		opts := tabscrape.DefaultBrowserOptions()
		if len(c.BrowserArgs) > 0 {
			opts.Args = c.BrowserArgs
		}
		opts.Bin = c.BrowserBin
		opts.Stealth = c.Stealth
		req.BrowserOptions = opts
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// Writer returns the table writer for the selected format.
func (c *CLI) Writer(conv tabscrape.Converter) (*format.Writer, error) {
	f, err := format.Parse(c.Format)
	if err != nil {
		return nil, err
	}
	return &format.Writer{Format: f, Converter: conv}, nil
}

// ScrapeCmd scrapes one table and writes it to stdout.
type ScrapeCmd struct {
	Request  *tabscrape.ScrapeRequest
	KeepOpen bool
}

// Run executes the scrape.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	defer deps.Scraper.CloseBrowser()

	tbl, err := deps.Scraper.ScrapeTable(deps.Ctx, c.Request)
	if err != nil {
		if tabscrape.ErrorCode(err) == tabscrape.EINTERNAL {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed, or pass --browser-bin")
		}
		return err
	}

	if tbl.Empty() {
		fmt.Fprintf(deps.Stderr, "No table found at %s\n", c.Request.URL)
	} else if err := deps.Writer.Write(deps.Stdout, tbl); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	if c.KeepOpen {
		fmt.Fprintln(deps.Stderr, "Browser left open. Press Ctrl+C to exit.")
		<-deps.Ctx.Done()
	}
	return nil
}
