package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/rplatt/edenweb"
	"github.com/rplatt/edenweb/build"
)

// Dependencies holds the services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Config    edenweb.Config
	Scanner   edenweb.SourceScanner
	Extractor edenweb.Extractor
}

// builder assembles the pipeline from the wired dependencies. Renderer,
// store, and sitemap writer are command-specific and set by the caller.
func (d *Dependencies) builder() *build.Builder {
	return &build.Builder{
		Scanner:   d.Scanner,
		Extractor: d.Extractor,
		Logger:    d.Logger,
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to YAML config file" type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Build   BuildCmd   `cmd:"" help:"Generate the website from the source archive"`
	List    ListCmd    `cmd:"" help:"Show books and chapter counts without writing output"`
	Analyze AnalyzeCmd `cmd:"" help:"Write a per-file analysis dump of the source archive"`
	Export  ExportCmd  `cmd:"" help:"Export books as markdown files"`
	Serve   ServeCmd   `cmd:"" help:"Serve the generated website locally"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Source  string `short:"s" help:"Source archive directory (overrides config)"`
	Out     string `short:"o" help:"Output directory (overrides config)"`
	BaseURL string `help:"Absolute site root for sitemap.xml (overrides config)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Source string `short:"s" help:"Source archive directory (overrides config)"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Source string `short:"s" help:"Source archive directory (overrides config)"`
	Out    string `short:"o" default:"book_analysis.json" help:"Path of the JSON snapshot"`
	DB     string `help:"Also store records in a SQLite database at this path"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Source string `short:"s" help:"Source archive directory (overrides config)"`
	Dir    string `short:"d" default:"export" help:"Directory for exported markdown files"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides config)"`
	Dir  string `short:"d" help:"Site directory to serve (overrides config output dir)"`
}
