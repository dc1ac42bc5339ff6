package edenweb

import (
	"context"
	"time"
)

// SiteStore persists rendered site files with atomic semantics.
// Save writes to a staging location; Commit makes the whole site visible at
// once; Abort discards pending output.
type SiteStore interface {
	Save(ctx context.Context, path string, data []byte) error
	Commit() error
	Abort() error
}

// Renderer writes the website for a set of books through a SiteStore:
// the index page, one reading page per book, and the shared assets.
type Renderer interface {
	Render(ctx context.Context, books []*Book) error
}

// SitemapWriter writes a sitemap for the generated site.
type SitemapWriter interface {
	WriteSitemap(ctx context.Context, books []*Book) error
}

// PageAnalysis is the inspection record for one source file: what the
// extractor recovered from it, independent of book segmentation.
type PageAnalysis struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	HTML        string    `json:"html"`
	ContentHash string    `json:"contentHash"`
	AnalyzedAt  time.Time `json:"analyzedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (p *PageAnalysis) Validate() error {
	if p.Filename == "" {
		return Errorf(EINVALID, "page analysis filename required")
	}
	return nil
}

// AnalysisSnapshot is the full analysis dump: one record per source file
// plus summary counts. It is written for inspection only; the generator
// never reads it back.
type AnalysisSnapshot struct {
	Collection string          `json:"collection"`
	TotalFiles int             `json:"totalFiles"`
	Pages      []*PageAnalysis `json:"pages"`
}

// AnalysisService persists page analysis records.
type AnalysisService interface {
	// CreatePageAnalysis stores a new record, assigning its id, content
	// hash, and timestamp.
	CreatePageAnalysis(ctx context.Context, p *PageAnalysis) error

	// FindPageAnalyses retrieves all records in filename order.
	FindPageAnalyses(ctx context.Context) ([]*PageAnalysis, error)
}
