package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rplatt/edenweb"
)

// Ensure Writer implements edenweb.ChapterWriter at compile time.
var _ edenweb.ChapterWriter = (*Writer)(nil)

// Writer writes exported chapters as markdown files, one file per chapter
// under a per-book directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a Writer that writes below the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// ChapterPath returns the file path for a chapter relative to the base
// directory. Example: first_book_adam_eve/fbe005.md
func ChapterPath(book edenweb.BookID, filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename)) + ".md"
	return filepath.Join(string(book), name)
}

// FormatChapter formats an exported chapter with YAML frontmatter.
func FormatChapter(book *edenweb.Book, chapter edenweb.Chapter, markdown string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(chapter.Filename)
	b.WriteString("\ntitle: ")
	b.WriteString(chapter.Title)
	b.WriteString("\nbook: ")
	b.WriteString(book.Title)
	b.WriteString("\n---\n\n")
	b.WriteString(markdown)
	return b.String()
}

// WriteChapter writes one chapter to disk as a markdown file.
func (w *Writer) WriteChapter(ctx context.Context, book *edenweb.Book, chapter edenweb.Chapter, markdown string) error {
	if err := book.Validate(); err != nil {
		return err
	}
	if !chapter.Valid() {
		return edenweb.Errorf(edenweb.EINVALID, "chapter %q has no usable content", chapter.Filename)
	}

	fullPath := filepath.Join(w.baseDir, ChapterPath(book.ID, chapter.Filename))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content := FormatChapter(book, chapter, markdown)
	return os.WriteFile(fullPath, []byte(content), 0644)
}
