package edenweb

import "strings"

// BookID identifies one logical book within the anthology.
type BookID string

// Books of the anthology, in the archive's reading order. BookFrontMatter
// is the classification bucket for the title pages that precede the first
// book; it is never rendered.
const (
	BookFrontMatter          BookID = "front_matter"
	BookFirstAdamEve         BookID = "first_book_adam_eve"
	BookSecondAdamEve        BookID = "second_book_adam_eve"
	BookSecretsEnoch         BookID = "secrets_enoch"
	BookPsalmsSolomon        BookID = "psalms_solomon"
	BookOdesSolomon          BookID = "odes_solomon"
	BookLetterAristeas       BookID = "letter_aristeas"
	BookFourthMaccabees      BookID = "fourth_maccabees"
	BookStoryAhikar          BookID = "story_ahikar"
	BookTestamentsPatriarchs BookID = "testaments_patriarchs"
)

// CanonicalBooks returns the renderable books in reading order.
func CanonicalBooks() []BookID {
	return []BookID{
		BookFirstAdamEve,
		BookSecondAdamEve,
		BookSecretsEnoch,
		BookPsalmsSolomon,
		BookOdesSolomon,
		BookLetterAristeas,
		BookFourthMaccabees,
		BookStoryAhikar,
		BookTestamentsPatriarchs,
	}
}

var bookTitles = map[BookID]string{
	BookFirstAdamEve:         "The First Book of Adam and Eve",
	BookSecondAdamEve:        "The Second Book of Adam and Eve",
	BookSecretsEnoch:         "The Book of the Secrets of Enoch",
	BookPsalmsSolomon:        "The Psalms of Solomon",
	BookOdesSolomon:          "The Odes of Solomon",
	BookLetterAristeas:       "The Letter of Aristeas",
	BookFourthMaccabees:      "The Fourth Book of Maccabees",
	BookStoryAhikar:          "The Story of Ahikar",
	BookTestamentsPatriarchs: "The Testaments of the Twelve Patriarchs",
}

var bookDescriptions = map[BookID]string{
	BookFirstAdamEve:         "The story of Adam and Eve after their expulsion from Eden, including their trials, temptations, and the birth of Cain and Abel.",
	BookSecondAdamEve:        "Continuation of the Adam and Eve narrative, covering the patriarchs who lived before the Flood.",
	BookSecretsEnoch:         "The mystical journey of Enoch through the heavens and his revelations about divine mysteries.",
	BookPsalmsSolomon:        "A collection of eighteen psalms attributed to King Solomon, reflecting on righteousness and divine judgment.",
	BookOdesSolomon:          "Forty-two mystical odes expressing deep spiritual truths and early Christian thought.",
	BookLetterAristeas:       "The account of how the Hebrew scriptures were translated into Greek (the Septuagint).",
	BookFourthMaccabees:      "A philosophical discourse on the supremacy of devout reason over the passions.",
	BookStoryAhikar:          "The tale of Ahikar, a wise counselor, and his ungrateful nephew Nadan.",
	BookTestamentsPatriarchs: "The final words and teachings of the twelve sons of Jacob to their descendants.",
}

// BookTitle returns the display title for a book. Unknown ids fall back to
// a title-cased version of the slug.
func BookTitle(id BookID) string {
	if t, ok := bookTitles[id]; ok {
		return t
	}
	words := strings.Split(string(id), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// BookDescription returns the index-card description for a book.
func BookDescription(id BookID) string {
	if d, ok := bookDescriptions[id]; ok {
		return d
	}
	return "An important ancient text preserved in this collection."
}

// Chapter is one source file's contribution to a book: the recovered title
// and the cleaned content fragment (serialized markup, not plain text).
type Chapter struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// Valid reports whether the chapter carries usable content. Chapters with
// an empty title or a whitespace-only fragment are dropped from their book.
func (c *Chapter) Valid() bool {
	return c.Title != "" && strings.TrimSpace(c.Content) != ""
}

// Book is a logical grouping of chapters within the anthology.
type Book struct {
	ID          BookID    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Chapters    []Chapter `json:"chapters"`
}

// Validate returns an error if the book contains invalid fields.
func (b *Book) Validate() error {
	if b.ID == "" {
		return Errorf(EINVALID, "book id required")
	}
	if b.Title == "" {
		return Errorf(EINVALID, "book title required")
	}
	if len(b.Chapters) == 0 {
		return Errorf(EINVALID, "book %q has no chapters", b.ID)
	}
	return nil
}
