package nlp

import (
	"regexp"
	"strings"

	"github.com/newsdeck/newsdeck/pkg/domain"
)

// testAnnotator is a tiny deterministic annotator for tests: whitespace
// tokenization with punctuation split off, capitalized words tagged NNP,
// everything else looked up in the tags table with NN as the default.
type testAnnotator struct {
	tags     map[string]string
	entities []Span
	err      error
}

func (a *testAnnotator) Annotate(text string) (*Annotation, error) {
	if a.err != nil {
		return nil, a.err
	}
	ann := &Annotation{Entities: a.entities}
	for _, raw := range strings.Fields(text) {
		word := raw
		var punct []string
		for len(word) > 0 && strings.ContainsRune(".,!?;:()", rune(word[len(word)-1])) {
			punct = append([]string{string(word[len(word)-1])}, punct...)
			word = word[:len(word)-1]
		}
		if word != "" {
			ann.Tokens = append(ann.Tokens, Token{Text: word, Tag: a.tagOf(word)})
		}
		for _, p := range punct {
			tag := p
			switch p {
			case "!", "?":
				tag = "."
			case ";":
				tag = ":"
			case "(":
				tag = "("
			case ")":
				tag = ")"
			}
			ann.Tokens = append(ann.Tokens, Token{Text: p, Tag: tag})
		}
	}
	ann.Sentences = splitTestSentences(text)
	return ann, nil
}

func (a *testAnnotator) tagOf(word string) string {
	if t, ok := a.tags[strings.ToLower(word)]; ok {
		return t
	}
	if r := word[0]; r >= 'A' && r <= 'Z' {
		return "NNP"
	}
	return "NN"
}

var testSentenceRe = regexp.MustCompile(`[^.!?]+[.!?]?`)

func splitTestSentences(text string) []string {
	var out []string
	for _, s := range testSentenceRe.FindAllString(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// staticLemmas is a deterministic lemmatizer backed by a fixed table,
// defaulting to the lowercase form.
type staticLemmas map[string]string

func (m staticLemmas) Lemma(word string) string {
	lower := strings.ToLower(word)
	if lemma, ok := m[lower]; ok {
		return lemma
	}
	return lower
}

var testLemmaTable = staticLemmas{
	"announced": "announce", "announces": "announce",
	"acquired": "acquire", "acquires": "acquire",
	"launched": "launch", "launches": "launch",
	"partnered": "partner", "partners": "partner",
	"raised": "raise", "raises": "raise",
	"reported": "report", "reports": "report",
	"merged": "merge", "merges": "merge",
	"expanded": "expand", "expanding": "expand",
	"hired": "hire", "appointed": "appoint", "named": "name",
	"revealed": "reveal", "showed": "show", "invested": "invest",
}

// testLanguage builds a language context on the test fakes.
func testLanguage(tags map[string]string) *Language {
	return &Language{
		annotator:  &testAnnotator{tags: tags},
		lemmatizer: testLemmaTable,
		stopwords:  buildStopwords(),
	}
}

// articleFixture builds an article with the given text fields.
func articleFixture(title, content, description string) domain.Article {
	return domain.Article{
		Title:       title,
		Content:     content,
		Description: description,
		URL:         "https://example.com/article",
		Source:      "example",
	}
}

// failingLanguage returns a context whose annotator always errors.
func failingLanguage(err error) *Language {
	return &Language{
		annotator:  &testAnnotator{err: err},
		lemmatizer: testLemmaTable,
		stopwords:  buildStopwords(),
	}
}
