package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rplatt/edenweb"
)

// Ensure SiteStore implements edenweb.SiteStore at compile time.
var _ edenweb.SiteStore = (*SiteStore)(nil)

// SiteStore implements edenweb.SiteStore with atomic update semantics.
// Files are saved to a staging directory, then moved into place on Commit,
// so an aborted run never leaves a half-written site behind.
type SiteStore struct {
	baseDir string
	name    string
}

// NewSiteStore creates a SiteStore. baseDir is the parent directory, name
// the output directory name. Files are staged in baseDir/name.tmp and moved
// to baseDir/name on Commit.
func NewSiteStore(baseDir, name string) *SiteStore {
	return &SiteStore{baseDir: baseDir, name: name}
}

func (s *SiteStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *SiteStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes one site file to the staging directory. path is relative to
// the site root (e.g. "books/secrets_enoch.html").
func (s *SiteStore) Save(ctx context.Context, path string, data []byte) error {
	if filepath.IsAbs(path) || !filepath.IsLocal(path) {
		return edenweb.Errorf(edenweb.EINVALID, "site path %q must be relative to the site root", path)
	}

	fullPath := filepath.Join(s.tempDir(), path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}

// Commit replaces the output directory with the staged site.
func (s *SiteStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the staged site.
func (s *SiteStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
