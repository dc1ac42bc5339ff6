package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/rplatt/edenweb"
	"github.com/rplatt/edenweb/fs"
	"github.com/rplatt/edenweb/goquery"
	edenslog "github.com/rplatt/edenweb/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPath overrides flag and environment config discovery.
	// Used by end-to-end tests.
	ConfigPath string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("edenweb"),
		kong.Description("Static site generator for The Forgotten Books of Eden archive."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'edenweb --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfgPath := m.ConfigPath
	if cfgPath == "" {
		cfgPath = cli.Config
	}
	if cfgPath == "" {
		cfgPath = os.Getenv("EDENWEB_CONFIG")
	}
	cfg, err := edenweb.LoadConfig(cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: set EDENWEB_CONFIG or pass --config to use a different config file")
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel(cli.Verbose)}))

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
		Config:    cfg,
		Scanner:   fs.NewDirScanner(logger),
		Extractor: edenslog.NewLoggingExtractor(goquery.NewExtractor(cfg.ExtractOptions()), logger),
	}

	return kongCtx.Run(deps)
}

func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// firstNonEmpty returns the first non-empty string, for flag-over-config
// resolution.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
