package edenweb

import "context"

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be a clean fragment (e.g., from an Extractor).
	Convert(html string) (string, error)
}

// ChapterWriter writes exported chapters to storage.
type ChapterWriter interface {
	WriteChapter(ctx context.Context, book *Book, chapter Chapter, markdown string) error
}
