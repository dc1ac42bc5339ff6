package edenweb

// Default extraction constants. The archive's scripts used these values
// without stating a rationale, so they are surfaced as options rather than
// hardwired.
const (
	// DefaultMinTextLen is the minimum trimmed text length, in runes, for a
	// block element to be collected into the fragment. It excludes stray
	// single-word leftovers after navigation removal.
	DefaultMinTextLen = 10

	// DefaultCenterKeepLen is the minimum trimmed paragraph length, in
	// runes, for a centered container to count as content rather than
	// decoration.
	DefaultCenterKeepLen = 50

	// DefaultSiteSuffix is the trailing site-name suffix stripped from
	// metadata titles.
	DefaultSiteSuffix = " | Sacred Texts Archive"

	// DefaultUmbrellaPrefix is the anthology's own umbrella title. Headings
	// beginning with it never become chapter titles.
	DefaultUmbrellaPrefix = "the forgotten books"
)

// ExtractOptions control title and content recovery.
type ExtractOptions struct {
	MinTextLen     int
	CenterKeepLen  int
	SiteSuffix     string
	UmbrellaPrefix string
}

// DefaultExtractOptions returns the options used by the archive's scripts.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		MinTextLen:     DefaultMinTextLen,
		CenterKeepLen:  DefaultCenterKeepLen,
		SiteSuffix:     DefaultSiteSuffix,
		UmbrellaPrefix: DefaultUmbrellaPrefix,
	}
}

// ExtractResult holds the extracted content from one archive page.
type ExtractResult struct {
	// Title is the recovered chapter title: the page-metadata title with
	// the site suffix stripped, or the first qualifying heading. Empty when
	// neither source yields text.
	Title string

	// ContentHTML is the cleaned content fragment: the serialized markup of
	// the surviving block elements, newline separated. Empty signals an
	// unusable page.
	ContentHTML string

	// Text is the plain text of the cleaned body, used by the analysis
	// dump. The generator itself does not consume it.
	Text string
}

// Extractor recovers a title and a clean content fragment from one page's
// raw markup, discarding navigation chrome while preserving structural
// elements.
type Extractor interface {
	// Extract processes raw HTML and returns the recovered content.
	// A page without usable content yields empty fields, not an error;
	// errors are reserved for unparsable input.
	Extract(html string) (*ExtractResult, error)
}
