// Package etree writes the generated site's sitemap.xml.
package etree

import (
	"context"
	"strings"

	"github.com/beevik/etree"
	"github.com/rplatt/edenweb"
)

// Ensure SitemapWriter implements edenweb.SitemapWriter at compile time.
var _ edenweb.SitemapWriter = (*SitemapWriter)(nil)

// SitemapWriter writes a sitemap covering the index page and every book
// reading page, rooted at the configured base URL.
type SitemapWriter struct {
	store   edenweb.SiteStore
	baseURL string
}

// NewSitemapWriter creates a SitemapWriter. baseURL is the absolute site
// root, e.g. "https://eden.example.org".
func NewSitemapWriter(store edenweb.SiteStore, baseURL string) *SitemapWriter {
	return &SitemapWriter{store: store, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// WriteSitemap writes sitemap.xml through the site store.
func (w *SitemapWriter) WriteSitemap(ctx context.Context, books []*edenweb.Book) error {
	if w.baseURL == "" {
		return edenweb.Errorf(edenweb.EINVALID, "sitemap base URL required")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", "http://www.sitemaps.org/schemas/sitemap/0.9")

	addURL := func(path string) {
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(w.baseURL + path)
	}

	addURL("/index.html")
	for _, book := range books {
		addURL("/books/" + string(book.ID) + ".html")
	}

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return err
	}
	return w.store.Save(ctx, "sitemap.xml", data)
}
