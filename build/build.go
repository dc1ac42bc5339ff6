// Package build orchestrates the site generation pipeline: scanning the
// source directory, segmenting pages into books, extracting chapter
// content, and rendering the website.
package build

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rplatt/edenweb"
)

// Builder coordinates one generation pass over the archive.
type Builder struct {
	Scanner   edenweb.SourceScanner
	Extractor edenweb.Extractor
	Renderer  edenweb.Renderer
	Sitemap   edenweb.SitemapWriter // optional
	Store     edenweb.SiteStore
	Rules     []edenweb.Rule // nil uses edenweb.DefaultRules
	Logger    *slog.Logger
}

// Result summarizes a generation pass.
type Result struct {
	Books    int
	Chapters int
	Skipped  int
}

// logger returns the configured logger or slog's default.
func (b *Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

// Assemble runs the segmentation and extraction pass and returns the
// non-empty books in reading order. The pass is a single forward scan:
// every file is classified by the sticky cursor at the moment it is
// visited, so each bucket is one contiguous run of files. Files that fail
// extraction are logged and skipped; chapters without a title or fragment
// are dropped silently; buckets whose chapters were all dropped are omitted
// with a warning.
func (b *Builder) Assemble(ctx context.Context, sourceDir string) ([]*edenweb.Book, *Result, error) {
	files, err := b.Scanner.Scan(ctx, sourceDir)
	if err != nil {
		return nil, nil, err
	}

	classifier := edenweb.NewClassifier(b.Rules)
	chapters := make(map[edenweb.BookID][]edenweb.Chapter)
	assigned := make(map[edenweb.BookID]int)
	result := &Result{}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		res, err := b.Extractor.Extract(file.HTML)
		if err != nil {
			b.logger().Warn("skipping file", "file", file.Name, "error", err)
			result.Skipped++
			continue
		}

		id := classifier.Classify(res.Title)
		assigned[id]++

		chapter := edenweb.Chapter{
			Filename: file.Name,
			Title:    res.Title,
			Content:  res.ContentHTML,
		}
		if !chapter.Valid() {
			result.Skipped++
			continue
		}
		chapters[id] = append(chapters[id], chapter)
		result.Chapters++
	}

	var books []*edenweb.Book
	for _, id := range edenweb.CanonicalBooks() {
		if len(chapters[id]) == 0 {
			if assigned[id] > 0 {
				b.logger().Warn("omitting empty book", "book", id, "files", assigned[id])
			}
			continue
		}
		books = append(books, &edenweb.Book{
			ID:          id,
			Title:       edenweb.BookTitle(id),
			Description: edenweb.BookDescription(id),
			Chapters:    chapters[id],
		})
	}
	result.Books = len(books)

	return books, result, nil
}

// Build assembles the books and renders the website, committing the output
// atomically. On render failure the staged output is discarded.
func (b *Builder) Build(ctx context.Context, sourceDir string) (*Result, error) {
	books, result, err := b.Assemble(ctx, sourceDir)
	if err != nil {
		return nil, err
	}

	if err := b.Renderer.Render(ctx, books); err != nil {
		_ = b.Store.Abort()
		return nil, err
	}

	if b.Sitemap != nil {
		if err := b.Sitemap.WriteSitemap(ctx, books); err != nil {
			_ = b.Store.Abort()
			return nil, err
		}
	}

	if err := b.Store.Commit(); err != nil {
		_ = b.Store.Abort()
		return nil, err
	}

	return result, nil
}

// Analyze runs the extractor over every page file and returns the
// inspection snapshot: one record per file plus summary counts. Titles fall
// back to the filename so every record is identifiable.
func (b *Builder) Analyze(ctx context.Context, sourceDir string) (*edenweb.AnalysisSnapshot, error) {
	files, err := b.Scanner.Scan(ctx, sourceDir)
	if err != nil {
		return nil, err
	}

	snapshot := &edenweb.AnalysisSnapshot{
		Collection: "The Forgotten Books of Eden",
	}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := b.Extractor.Extract(file.HTML)
		if err != nil {
			b.logger().Warn("skipping file", "file", file.Name, "error", err)
			continue
		}

		title := res.Title
		if strings.TrimSpace(title) == "" {
			title = file.Name
		}
		snapshot.Pages = append(snapshot.Pages, &edenweb.PageAnalysis{
			Filename: file.Name,
			Title:    title,
			Text:     res.Text,
			HTML:     res.ContentHTML,
		})
	}
	snapshot.TotalFiles = len(snapshot.Pages)

	return snapshot, nil
}
