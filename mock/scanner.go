package mock

import (
	"context"

	"github.com/rplatt/edenweb"
)

var _ edenweb.SourceScanner = (*SourceScanner)(nil)

// SourceScanner is a mock implementation of edenweb.SourceScanner.
type SourceScanner struct {
	ScanFn func(ctx context.Context, dir string) ([]edenweb.SourceFile, error)
}

func (s *SourceScanner) Scan(ctx context.Context, dir string) ([]edenweb.SourceFile, error) {
	return s.ScanFn(ctx, dir)
}
