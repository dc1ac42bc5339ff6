package main

import (
	"fmt"

	"github.com/rplatt/edenweb"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	source := firstNonEmpty(c.Source, deps.Config.SourceDir)

	builder := deps.builder()
	books, result, err := builder.Assemble(deps.Ctx, source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", edenweb.ErrorMessage(err))
		return err
	}

	for _, book := range books {
		fmt.Fprintf(deps.Stdout, "%s: %d chapters\n", book.Title, len(book.Chapters))
	}
	fmt.Fprintf(deps.Stdout, "%d books, %d chapters (%d files skipped)\n",
		result.Books, result.Chapters, result.Skipped)
	return nil
}
