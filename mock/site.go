package mock

import (
	"context"

	"github.com/rplatt/edenweb"
)

var _ edenweb.SiteStore = (*SiteStore)(nil)

// SiteStore is a mock implementation of edenweb.SiteStore.
type SiteStore struct {
	SaveFn   func(ctx context.Context, path string, data []byte) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *SiteStore) Save(ctx context.Context, path string, data []byte) error {
	return s.SaveFn(ctx, path, data)
}

func (s *SiteStore) Commit() error {
	return s.CommitFn()
}

func (s *SiteStore) Abort() error {
	return s.AbortFn()
}

var _ edenweb.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of edenweb.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, books []*edenweb.Book) error
}

func (r *Renderer) Render(ctx context.Context, books []*edenweb.Book) error {
	return r.RenderFn(ctx, books)
}

var _ edenweb.SitemapWriter = (*SitemapWriter)(nil)

// SitemapWriter is a mock implementation of edenweb.SitemapWriter.
type SitemapWriter struct {
	WriteSitemapFn func(ctx context.Context, books []*edenweb.Book) error
}

func (w *SitemapWriter) WriteSitemap(ctx context.Context, books []*edenweb.Book) error {
	return w.WriteSitemapFn(ctx, books)
}
