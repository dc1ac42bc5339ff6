// Package template renders the website from assembled books using embedded
// HTML templates and shared static assets.
package template

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"strings"
	"unicode/utf8"

	"github.com/rplatt/edenweb"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed assets/*
var assetFS embed.FS

// Ensure Renderer implements edenweb.Renderer at compile time.
var _ edenweb.Renderer = (*Renderer)(nil)

// Renderer writes the index page, one reading page per book, and the
// shared stylesheet and client script through a SiteStore.
type Renderer struct {
	store         edenweb.SiteStore
	dropdownLimit int
	tmpl          *template.Template
}

// NewRenderer creates a Renderer. dropdownLimit caps the chapter-select
// control on reading pages; zero shows every chapter.
func NewRenderer(store edenweb.SiteStore, dropdownLimit int) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, edenweb.Errorf(edenweb.EINTERNAL, "failed to parse site templates: %v", err)
	}
	return &Renderer{store: store, dropdownLimit: dropdownLimit, tmpl: tmpl}, nil
}

type bookCard struct {
	Title        string
	Description  string
	Href         string
	ChapterCount int
}

type navLink struct {
	Href  string
	Title string
}

type chapterOption struct {
	Anchor string
	Title  string
}

type chapterView struct {
	Anchor  string
	Content template.HTML
}

type indexData struct {
	Books []bookCard
}

type bookData struct {
	Title    string
	Nav      []navLink
	Options  []chapterOption
	Chapters []chapterView
}

// Render writes the complete site for the given books.
func (r *Renderer) Render(ctx context.Context, books []*edenweb.Book) error {
	if err := r.renderIndex(ctx, books); err != nil {
		return err
	}
	for _, book := range books {
		if err := r.renderBook(ctx, book, books); err != nil {
			return err
		}
	}
	return r.copyAssets(ctx)
}

func (r *Renderer) renderIndex(ctx context.Context, books []*edenweb.Book) error {
	data := indexData{}
	for _, book := range books {
		data.Books = append(data.Books, bookCard{
			Title:        book.Title,
			Description:  book.Description,
			Href:         "books/" + string(book.ID) + ".html",
			ChapterCount: len(book.Chapters),
		})
	}
	return r.execute(ctx, "index.html.tmpl", "index.html", data)
}

func (r *Renderer) renderBook(ctx context.Context, book *edenweb.Book, all []*edenweb.Book) error {
	data := bookData{Title: book.Title}

	for _, other := range all {
		if other.ID == book.ID {
			continue
		}
		data.Nav = append(data.Nav, navLink{
			Href:  string(other.ID) + ".html",
			Title: other.Title,
		})
	}

	options := book.Chapters
	if r.dropdownLimit > 0 && len(options) > r.dropdownLimit {
		options = options[:r.dropdownLimit]
	}
	for _, chapter := range options {
		data.Options = append(data.Options, chapterOption{
			Anchor: chapter.Filename,
			Title:  shortTitle(book.Title, chapter.Title),
		})
	}

	for _, chapter := range book.Chapters {
		data.Chapters = append(data.Chapters, chapterView{
			Anchor:  chapter.Filename,
			Content: template.HTML(chapter.Content),
		})
	}

	return r.execute(ctx, "book.html.tmpl", "books/"+string(book.ID)+".html", data)
}

func (r *Renderer) execute(ctx context.Context, name, path string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return edenweb.Errorf(edenweb.EINTERNAL, "failed to render %s: %v", path, err)
	}
	return r.store.Save(ctx, path, buf.Bytes())
}

func (r *Renderer) copyAssets(ctx context.Context) error {
	assets := map[string]string{
		"assets/style.css": "css/style.css",
		"assets/script.js": "js/script.js",
	}
	for src, dst := range assets {
		data, err := assetFS.ReadFile(src)
		if err != nil {
			return edenweb.Errorf(edenweb.EINTERNAL, "missing embedded asset %s: %v", src, err)
		}
		if err := r.store.Save(ctx, dst, data); err != nil {
			return err
		}
	}
	return nil
}

// shortTitle trims collection and book prefixes from a chapter title for
// the dropdown, truncating long leftovers.
func shortTitle(bookTitle, chapterTitle string) string {
	s := strings.ReplaceAll(chapterTitle, "The Forgotten Books of Eden: ", "")
	s = strings.ReplaceAll(s, bookTitle+": ", "")
	if utf8.RuneCountInString(s) > 50 {
		runes := []rune(s)
		s = string(runes[:47]) + "..."
	}
	return s
}
