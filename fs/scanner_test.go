package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rplatt/edenweb"
	"github.com/rplatt/edenweb/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

func TestDirScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("returns page files in lexicographic order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"fbe010.htm": "<html>ten</html>",
			"fbe005.htm": "<html>five</html>",
			"fbe007.htm": "<html>seven</html>",
		})

		files, err := fs.NewDirScanner(nil).Scan(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, files, 3)
		assert.Equal(t, "fbe005.htm", files[0].Name)
		assert.Equal(t, "fbe007.htm", files[1].Name)
		assert.Equal(t, "fbe010.htm", files[2].Name)
		assert.Equal(t, "<html>five</html>", files[0].HTML)
	})

	t.Run("excludes front matter, index pages, and strays", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"fbe000.htm":  "<html>title page</html>",
			"fbe004.htm":  "<html>contents</html>",
			"fbe005.htm":  "<html>chapter</html>",
			"index.htm":   "<html>index</html>",
			"pageidx.htm": "<html>page index</html>",
			"errata.htm":  "<html>errata</html>",
			"notes.txt":   "not a page",
		})

		files, err := fs.NewDirScanner(nil).Scan(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "fbe005.htm", files[0].Name)
	})

	t.Run("ignores subdirectories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "fbe005.htm"), 0755))
		writeFiles(t, dir, map[string]string{"fbe006.htm": "<html>six</html>"})

		files, err := fs.NewDirScanner(nil).Scan(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "fbe006.htm", files[0].Name)
	})

	t.Run("missing directory reports not found", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewDirScanner(nil).Scan(context.Background(), filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.Equal(t, edenweb.ENOTFOUND, edenweb.ErrorCode(err))
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"fbe005.htm": "<html>five</html>"})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewDirScanner(nil).Scan(ctx, dir)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
