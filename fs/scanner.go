// Package fs provides filesystem access for the generator: reading the
// archive's source pages and writing the generated site atomically.
package fs

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/rplatt/edenweb"
)

// Ensure DirScanner implements edenweb.SourceScanner at compile time.
var _ edenweb.SourceScanner = (*DirScanner)(nil)

// DirScanner lists the archive's page files from a local directory.
type DirScanner struct {
	logger *slog.Logger
}

// NewDirScanner creates a DirScanner. A nil logger uses slog's default.
func NewDirScanner(logger *slog.Logger) *DirScanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirScanner{logger: logger}
}

// Scan returns the classifiable page files of dir in lexicographic order.
// Unreadable files are logged and omitted; they contribute to no book.
func (s *DirScanner) Scan(ctx context.Context, dir string) ([]edenweb.SourceFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, edenweb.Errorf(edenweb.ENOTFOUND, "source directory %q not found", dir)
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if edenweb.IsPageFile(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	files := make([]edenweb.SourceFile, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			s.logger.Warn("skipping unreadable source file", "file", name, "error", err)
			continue
		}
		files = append(files, edenweb.SourceFile{Name: name, HTML: string(data)})
	}
	return files, nil
}
