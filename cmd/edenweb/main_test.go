package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rplatt/edenweb"
	"github.com/rplatt/edenweb/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<html><head>
<meta property="og:title" content="The First Book of Adam and Eve: Chapter I | Sacred Texts Archive">
</head><body>
<center><a href="index.htm">Sacred Texts</a></center>
<hr>
<p>On the third day God planted the garden in the east of the earth.</p>
<p>And he commanded Adam and Eve to dwell there in joy and gladness.</p>
</body></html>`

// setup writes a one-page source archive and a config pointing at it,
// returning the config path and the workspace directory.
func setup(t *testing.T) (cfgPath, dir string) {
	t.Helper()
	dir = t.TempDir()

	source := filepath.Join(dir, "sacred-texts")
	require.NoError(t, os.Mkdir(source, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(source, "fbe005.htm"), []byte(samplePage), 0644))

	cfgPath = filepath.Join(dir, "config.yml")
	cfg := fmt.Sprintf("source_dir: %s\noutput_dir: %s\n", source, filepath.Join(dir, "website"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))
	return cfgPath, dir
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments reports missing command", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := NewMain().Run(context.Background(), nil, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help exits cleanly", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := NewMain().Run(context.Background(), []string{"--help"}, &stdout, &stderr)
		assert.NoError(t, err)
	})

	t.Run("unknown command fails", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := NewMain().Run(context.Background(), []string{"frobnicate"}, &stdout, &stderr)
		assert.Error(t, err)
	})

	t.Run("missing config file fails with a hint", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		m := NewMain()
		m.ConfigPath = filepath.Join(t.TempDir(), "nope.yml")
		err := m.Run(context.Background(), []string{"list"}, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "Hint:")
	})
}

func TestBuildCommand(t *testing.T) {
	t.Parallel()

	t.Run("generates the website", func(t *testing.T) {
		t.Parallel()

		cfgPath, dir := setup(t)
		var stdout, stderr bytes.Buffer
		m := NewMain()
		m.ConfigPath = cfgPath

		err := m.Run(context.Background(), []string{"build"}, &stdout, &stderr)
		require.NoError(t, err, stderr.String())

		site := filepath.Join(dir, "website")
		for _, path := range []string{
			"index.html",
			filepath.Join("books", "first_book_adam_eve.html"),
			filepath.Join("css", "style.css"),
			filepath.Join("js", "script.js"),
		} {
			_, err := os.Stat(filepath.Join(site, path))
			assert.NoError(t, err, path)
		}

		page, err := os.ReadFile(filepath.Join(site, "books", "first_book_adam_eve.html"))
		require.NoError(t, err)
		assert.Contains(t, string(page), "God planted the garden")

		assert.Contains(t, stdout.String(), "Generated 1 books (1 chapters")
	})

	t.Run("writes a sitemap when a base URL is given", func(t *testing.T) {
		t.Parallel()

		cfgPath, dir := setup(t)
		var stdout, stderr bytes.Buffer
		m := NewMain()
		m.ConfigPath = cfgPath

		err := m.Run(context.Background(), []string{"build", "--base-url", "https://eden.example.org"}, &stdout, &stderr)
		require.NoError(t, err, stderr.String())

		data, err := os.ReadFile(filepath.Join(dir, "website", "sitemap.xml"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "https://eden.example.org/books/first_book_adam_eve.html")
	})
}

func TestListCommand(t *testing.T) {
	t.Parallel()

	cfgPath, _ := setup(t)
	var stdout, stderr bytes.Buffer
	m := NewMain()
	m.ConfigPath = cfgPath

	err := m.Run(context.Background(), []string{"list"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())
	assert.Contains(t, stdout.String(), "The First Book of Adam and Eve: 1 chapters")
	assert.Contains(t, stdout.String(), "1 books, 1 chapters")
}

func TestAnalyzeCommand(t *testing.T) {
	t.Parallel()

	cfgPath, dir := setup(t)
	out := filepath.Join(dir, "analysis.json")
	var stdout, stderr bytes.Buffer
	m := NewMain()
	m.ConfigPath = cfgPath

	err := m.Run(context.Background(), []string{"analyze", "--out", out}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var snapshot edenweb.AnalysisSnapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))
	assert.Equal(t, "The Forgotten Books of Eden", snapshot.Collection)
	assert.Equal(t, 1, snapshot.TotalFiles)
	require.Len(t, snapshot.Pages, 1)
	assert.Equal(t, "fbe005.htm", snapshot.Pages[0].Filename)
	assert.Equal(t, "The First Book of Adam and Eve: Chapter I", snapshot.Pages[0].Title)
}

func TestAnalyzeCommandWithDB(t *testing.T) {
	t.Parallel()

	cfgPath, dir := setup(t)
	out := filepath.Join(dir, "analysis.json")
	dbPath := filepath.Join(dir, "analysis.db")
	var stdout, stderr bytes.Buffer
	m := NewMain()
	m.ConfigPath = cfgPath

	err := m.Run(context.Background(), []string{"analyze", "--out", out, "--db", dbPath}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())
	assert.Contains(t, stdout.String(), "Recorded 1 analyses")

	db := sqlite.NewDB(dbPath)
	require.NoError(t, db.Open())
	defer db.Close()

	records, err := sqlite.NewAnalysisService(db).FindPageAnalyses(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "fbe005.htm", records[0].Filename)
	assert.NotEmpty(t, records[0].ContentHash)
}

func TestExportCommand(t *testing.T) {
	t.Parallel()

	cfgPath, dir := setup(t)
	exportDir := filepath.Join(dir, "export")
	var stdout, stderr bytes.Buffer
	m := NewMain()
	m.ConfigPath = cfgPath

	err := m.Run(context.Background(), []string{"export", "--dir", exportDir}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	data, err := os.ReadFile(filepath.Join(exportDir, "first_book_adam_eve", "fbe005.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "source: fbe005.htm")
	assert.Contains(t, string(data), "title: The First Book of Adam and Eve: Chapter I")
	assert.Contains(t, string(data), "God planted the garden")
	assert.Contains(t, stdout.String(), "Exported 1 chapters")
}
