package edenweb

import (
	"context"
	"regexp"
	"strings"
)

// SourceFile is one archive page: its filename and raw markup. Files are
// immutable once read and are processed in lexicographic filename order.
type SourceFile struct {
	Name string
	HTML string
}

// pageFilePattern matches the archive's page naming convention: the fbe
// prefix, a zero-padded three-digit id, and the .htm extension.
var pageFilePattern = regexp.MustCompile(`^fbe\d{3}\.htm$`)

// excludedFiles are the archive's front matter and index pages. They carry
// no chapter content and are never classified.
var excludedFiles = map[string]struct{}{
	"fbe000.htm":  {},
	"fbe001.htm":  {},
	"fbe002.htm":  {},
	"fbe003.htm":  {},
	"fbe004.htm":  {},
	"index.htm":   {},
	"pageidx.htm": {},
}

// IsPageFile reports whether a filename names a classifiable archive page.
// Front matter, index pages, and errata are excluded.
func IsPageFile(name string) bool {
	if _, ok := excludedFiles[name]; ok {
		return false
	}
	if strings.Contains(strings.ToLower(name), "errata") {
		return false
	}
	return pageFilePattern.MatchString(name)
}

// SourceScanner lists the classifiable page files of a source directory in
// lexicographic order. Files that cannot be read are logged and omitted.
type SourceScanner interface {
	Scan(ctx context.Context, dir string) ([]SourceFile, error)
}
