package mock

import (
	"context"

	"github.com/rplatt/edenweb"
)

var _ edenweb.Converter = (*Converter)(nil)

// Converter is a mock implementation of edenweb.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ edenweb.ChapterWriter = (*ChapterWriter)(nil)

// ChapterWriter is a mock implementation of edenweb.ChapterWriter.
type ChapterWriter struct {
	WriteChapterFn func(ctx context.Context, book *edenweb.Book, chapter edenweb.Chapter, markdown string) error
}

func (w *ChapterWriter) WriteChapter(ctx context.Context, book *edenweb.Book, chapter edenweb.Chapter, markdown string) error {
	return w.WriteChapterFn(ctx, book, chapter, markdown)
}
