package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/tabscrape"
	"github.com/fwojciec/tabscrape/goquery"
	"github.com/fwojciec/tabscrape/htmltomarkdown"
	"github.com/fwojciec/tabscrape/rod"
	"github.com/fwojciec/tabscrape/scrape"
	locslog "github.com/fwojciec/tabscrape/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. When nil, Run uses a rod session
	// manager and a goquery table extractor.
	Sessions  tabscrape.SessionManager
	Extractor tabscrape.TableExtractor
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tabscrape"),
		kong.Description("Print the first HTML table of a browser-rendered page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no URL provided. Run 'tabscrape --help' for usage")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	req, err := cli.Request()
	if err != nil {
		return err
	}
	writer, err := cli.Writer(htmltomarkdown.NewTableConverter())
	if err != nil {
		return err
	}

	// Diagnostics go to stderr so stdout carries only the table.
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	sessions := m.Sessions
	if sessions == nil {
		sessions = rod.NewSessionManager(rod.WithLogger(logger))
	}
	extractor := m.Extractor
	if extractor == nil {
		extractor = goquery.NewTableExtractor()
	}
	if cli.Verbose {
		sessions = locslog.NewLoggingSessionManager(sessions, logger)
		extractor = locslog.NewLoggingExtractor(extractor, logger)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Scraper: &scrape.Scraper{
			Sessions:  sessions,
			Extractor: extractor,
			Logger:    logger,
		},
		Writer: writer,
	}

	cmd := &ScrapeCmd{
		Request:  req,
		KeepOpen: cli.KeepOpen,
	}
	return cmd.Run(deps)
}
