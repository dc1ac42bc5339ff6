package edenweb

import "strings"

// Rule maps title keywords to a book. Rules are evaluated top to bottom and
// the first keyword hit wins, so broad keywords (e.g. "maccabees") belong
// after the specific phrasing of the same rule and after any rule they
// would shadow.
type Rule struct {
	Book     BookID
	Keywords []string
}

// DefaultRules returns the keyword table for the anthology, in evaluation
// order. The order mirrors the archive's reading order; "testament" is last
// because it is the loosest match.
func DefaultRules() []Rule {
	return []Rule{
		{Book: BookFirstAdamEve, Keywords: []string{"first book of adam"}},
		{Book: BookSecondAdamEve, Keywords: []string{"second book of adam"}},
		{Book: BookSecretsEnoch, Keywords: []string{"secrets of enoch", "book of the secrets of enoch"}},
		{Book: BookPsalmsSolomon, Keywords: []string{"psalms of solomon"}},
		{Book: BookOdesSolomon, Keywords: []string{"odes of solomon"}},
		{Book: BookLetterAristeas, Keywords: []string{"letter of aristeas"}},
		{Book: BookFourthMaccabees, Keywords: []string{"fourth book of maccabees", "maccabees"}},
		{Book: BookStoryAhikar, Keywords: []string{"story of ahikar", "ahikar"}},
		{Book: BookTestamentsPatriarchs, Keywords: []string{"testament"}},
	}
}

// Classifier assigns files to books with a sticky cursor: a title that
// matches a rule switches the cursor to that book, and every file is filed
// under whatever book the cursor names when it is visited. The cursor only
// moves forward through a sorted scan; earlier files are never revisited.
type Classifier struct {
	rules   []Rule
	current BookID
}

// NewClassifier creates a Classifier positioned on the front matter bucket.
// A nil rules slice uses DefaultRules.
func NewClassifier(rules []Rule) *Classifier {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules, current: BookFrontMatter}
}

// Classify files one title and returns the bucket it lands in. A matching
// title moves the cursor first, so the triggering file itself belongs to
// the new bucket. Empty titles never match.
func (c *Classifier) Classify(title string) BookID {
	lower := strings.ToLower(strings.TrimSpace(title))
	if lower != "" {
		for _, rule := range c.rules {
			for _, kw := range rule.Keywords {
				if strings.Contains(lower, kw) {
					c.current = rule.Book
					return c.current
				}
			}
		}
	}
	return c.current
}

// Current returns the bucket the cursor names now.
func (c *Classifier) Current() BookID {
	return c.current
}
