// Package goquery implements content extraction for the archive's page
// layout using CSS selection.
package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/rplatt/edenweb"
)

// Ensure Extractor implements edenweb.Extractor at compile time.
var _ edenweb.Extractor = (*Extractor)(nil)

// Extractor recovers titles and clean content fragments from the archive's
// pages. The archive wraps navigation in centered containers and separates
// page chrome with horizontal rules, so cleanup is keyed to that layout
// rather than to generic boilerplate detection.
type Extractor struct {
	opts edenweb.ExtractOptions
}

// NewExtractor creates an Extractor with the given options. Empty string
// options fall back to the archive defaults.
func NewExtractor(opts edenweb.ExtractOptions) *Extractor {
	if opts.SiteSuffix == "" {
		opts.SiteSuffix = edenweb.DefaultSiteSuffix
	}
	if opts.UmbrellaPrefix == "" {
		opts.UmbrellaPrefix = edenweb.DefaultUmbrellaPrefix
	}
	return &Extractor{opts: opts}
}

// Extract processes one page's raw markup and returns the recovered title,
// content fragment, and plain text. Pages without usable content yield
// empty fields; errors are reserved for unparsable input.
func (e *Extractor) Extract(rawHTML string) (*edenweb.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, edenweb.Errorf(edenweb.EINVALID, "failed to parse HTML: %v", err)
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return &edenweb.ExtractResult{}, nil
	}

	// Metadata title first. The head is untouched by body cleanup, so this
	// can happen in either order; doing it first matches the scan order of
	// the source pages.
	title := ""
	if content, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		title = strings.ReplaceAll(content, e.opts.SiteSuffix, "")
	}

	e.clean(body)

	if title == "" {
		title = e.firstHeadingTitle(body)
	}

	parts, texts := e.collect(body)

	content := ""
	if len(parts) > 0 {
		content = strings.Join(parts, "\n") + "\n"
	}

	return &edenweb.ExtractResult{
		Title:       title,
		ContentHTML: content,
		Text:        normalizeText(strings.Join(texts, "\n\n")),
	}, nil
}

// clean removes non-content elements from the body: scripts, styles, and
// inline navigation unconditionally; decorative centered containers unless
// they directly hold a major heading or a substantial paragraph; and every
// horizontal rule, which the archive uses purely as a page-break artifact.
func (e *Extractor) clean(body *goquery.Selection) {
	body.Find("script, style, nav").Remove()

	body.Find("center").Each(func(_ int, c *goquery.Selection) {
		if c.ChildrenFiltered("h1, h2, h3").Length() > 0 {
			return
		}
		keep := false
		c.ChildrenFiltered("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
			if utf8.RuneCountInString(strings.TrimSpace(p.Text())) > e.opts.CenterKeepLen {
				keep = true
				return false
			}
			return true
		})
		if !keep {
			c.Remove()
		}
	})

	body.Find("hr").Remove()
}

// firstHeadingTitle returns the first heading whose trimmed text is
// non-empty and does not begin with the anthology's umbrella title.
func (e *Extractor) firstHeadingTitle(body *goquery.Selection) string {
	title := ""
	body.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		text := strings.TrimSpace(h.Text())
		if text == "" {
			return true
		}
		if strings.HasPrefix(strings.ToLower(text), e.opts.UmbrellaPrefix) {
			return true
		}
		title = text
		return false
	})
	return title
}

// collect serializes the surviving block elements in document order,
// stripping outbound link targets first. The destination anchors point into
// the discarded original site; the visible link text stays.
func (e *Extractor) collect(body *goquery.Selection) (parts, texts []string) {
	body.Find("h1, h2, h3, h4, h5, h6, p, blockquote, div").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if utf8.RuneCountInString(text) <= e.opts.MinTextLen {
			return
		}

		s.Find("a").RemoveAttr("href")

		markup, err := goquery.OuterHtml(s)
		if err != nil {
			return
		}
		parts = append(parts, markup)
		texts = append(texts, text)
	})
	return parts, texts
}

var (
	spaceRuns = regexp.MustCompile(`[ \t]+`)
	blankRuns = regexp.MustCompile(`\n\s*\n`)
)

// normalizeText collapses horizontal whitespace runs and excess blank lines.
func normalizeText(s string) string {
	s = spaceRuns.ReplaceAllString(s, " ")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
