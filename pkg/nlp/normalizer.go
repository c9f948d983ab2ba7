package nlp

import (
	"html"
	"regexp"
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"

	"github.com/newsdeck/newsdeck/pkg/domain"
)

// Normalizer cleans raw article text. Normalize is a total function: it
// never fails and returns an empty string on anything it cannot handle.
// The output is lowercase ASCII letters and single spaces only, which
// makes normalization idempotent.
type Normalizer struct {
	lang  *Language
	strip *bluemonday.Policy
}

var (
	urlRe        = regexp.MustCompile(`https?\S+|www\.\S+`)
	emailRe      = regexp.MustCompile(`\S+@\S+\.\S+`)
	nonASCIIRe   = regexp.MustCompile(`[^\x00-\x7F]+`)
	digitsRe     = regexp.MustCompile(`\d+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// NewNormalizer creates a text normalizer bound to the language context.
func NewNormalizer(lang *Language) *Normalizer {
	return &Normalizer{lang: lang, strip: bluemonday.StrictPolicy()}
}

// Normalize cleans text in a fixed stage order: decode HTML entities,
// strip tags, drop URLs and emails, drop non-ASCII, NFKD-normalize,
// lowercase, strip punctuation and digit runs, collapse whitespace.
func (n *Normalizer) Normalize(text string) (res string) {
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[WARN] text normalization failed: %v", r)
			res = ""
		}
	}()

	if text == "" {
		return ""
	}

	text = html.UnescapeString(text)
	// the sanitizer strips tags but re-escapes special characters,
	// decode once more to get plain text back
	text = html.UnescapeString(n.strip.Sanitize(text))

	text = urlRe.ReplaceAllString(text, "")
	text = emailRe.ReplaceAllString(text, "")
	text = nonASCIIRe.ReplaceAllString(text, " ")

	// NFKD decomposition, then drop anything still outside ASCII
	text = norm.NFKD.String(text)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	text = strings.ToLower(b.String())

	text = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, text)
	text = digitsRe.ReplaceAllString(text, "")

	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// RemoveStopwords drops stopwords from text, word by word. Returns the
// input unchanged when nothing can be done with it.
func (n *Normalizer) RemoveStopwords(text string) string {
	if text == "" {
		return ""
	}

	var kept []string
	tokens := words.FromString(text)
	for tokens.Next() {
		word := strings.TrimSpace(tokens.Value())
		if word == "" {
			continue
		}
		if n.lang.IsStopword(word) {
			continue
		}
		kept = append(kept, word)
	}
	if kept == nil {
		return ""
	}
	return strings.Join(kept, " ")
}

// Lemmatize reduces every word to its base form, dropping stopwords and
// punctuation tokens along the way. On annotation failure the input is
// returned unchanged.
func (n *Normalizer) Lemmatize(text string) string {
	if text == "" {
		return ""
	}

	ann, err := n.lang.Annotate(text)
	if err != nil {
		lgr.Printf("[WARN] lemmatization failed, keeping original text: %v", err)
		return text
	}

	var lemmas []string
	for _, tok := range ann.Tokens {
		if isPunctTag(tok.Tag) || n.lang.IsStopword(tok.Text) {
			continue
		}
		lemmas = append(lemmas, n.lang.Lemma(tok.Text))
	}
	return strings.Join(lemmas, " ")
}

// NormalizeArticle produces the cleaned view of an article's text fields.
func (n *Normalizer) NormalizeArticle(article domain.Article) domain.NormalizedText {
	content := n.Normalize(article.Content)
	return domain.NormalizedText{
		Title:              n.Normalize(article.Title),
		Content:            content,
		Description:        n.Normalize(article.Description),
		ContentNoStopwords: n.RemoveStopwords(content),
		ContentLemmatized:  n.Lemmatize(content),
	}
}

// isPunctTag reports whether a Penn Treebank tag marks punctuation or a symbol.
func isPunctTag(tag string) bool {
	if tag == "" {
		return true
	}
	switch tag {
	case ".", ",", ":", "(", ")", "``", "''", "-LRB-", "-RRB-", "SYM", "$", "#", "HYPH":
		return true
	}
	return false
}
