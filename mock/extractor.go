package mock

import "github.com/rplatt/edenweb"

var _ edenweb.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of edenweb.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*edenweb.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*edenweb.ExtractResult, error) {
	return e.ExtractFn(html)
}
