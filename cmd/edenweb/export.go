package main

import (
	"fmt"

	"github.com/rplatt/edenweb"
	"github.com/rplatt/edenweb/fs"
	"github.com/rplatt/edenweb/htmltomarkdown"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	source := firstNonEmpty(c.Source, deps.Config.SourceDir)

	builder := deps.builder()
	books, _, err := builder.Assemble(deps.Ctx, source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", edenweb.ErrorMessage(err))
		return err
	}

	conv := htmltomarkdown.NewConverter()
	writer := fs.NewWriter(c.Dir)

	var written int
	for _, book := range books {
		for _, chapter := range book.Chapters {
			markdown, err := conv.Convert(chapter.Content)
			if err != nil {
				deps.Logger.Warn("skipping chapter", "file", chapter.Filename, "error", err)
				continue
			}
			if err := writer.WriteChapter(deps.Ctx, book, chapter, markdown); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", edenweb.ErrorMessage(err))
				return err
			}
			written++
		}
	}

	fmt.Fprintf(deps.Stdout, "Exported %d chapters to %s\n", written, c.Dir)
	return nil
}
