package main

import (
	"fmt"
	"path/filepath"

	"github.com/rplatt/edenweb"
	"github.com/rplatt/edenweb/etree"
	"github.com/rplatt/edenweb/fs"
	"github.com/rplatt/edenweb/template"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	source := firstNonEmpty(c.Source, deps.Config.SourceDir)
	out := firstNonEmpty(c.Out, deps.Config.OutputDir)

	store := fs.NewSiteStore(filepath.Dir(out), filepath.Base(out))
	renderer, err := template.NewRenderer(store, deps.Config.DropdownLimit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", edenweb.ErrorMessage(err))
		return err
	}

	builder := deps.builder()
	builder.Renderer = renderer
	builder.Store = store
	if baseURL := firstNonEmpty(c.BaseURL, deps.Config.BaseURL); baseURL != "" {
		builder.Sitemap = etree.NewSitemapWriter(store, baseURL)
	}

	result, err := builder.Build(deps.Ctx, source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", edenweb.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Generated %d books (%d chapters, %d files skipped) in %s\n",
		result.Books, result.Chapters, result.Skipped, out)
	return nil
}
