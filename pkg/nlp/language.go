// Package nlp implements the insight extraction pipeline: text
// normalization, named entity extraction, category classification,
// key phrase ranking and extractive summarization. All stages are
// deterministic and fail soft, returning empty defaults instead of errors.
package nlp

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"
)

// model names accepted by NewLanguage
const (
	ModelSmall = "small" // tokenization and tagging only, rule-based entities
	ModelLarge = "large" // adds the statistical NER model
)

// Token is a single word-level token with its Penn Treebank part-of-speech tag.
type Token struct {
	Text string
	Tag  string
}

// Span is a labeled entity span produced by the statistical model.
type Span struct {
	Text  string
	Label string
}

// Annotation holds the linguistic annotations for one text.
type Annotation struct {
	Tokens    []Token
	Sentences []string
	Entities  []Span
}

// Annotator produces linguistic annotations for raw text. Implementations
// must be deterministic and safe for concurrent use.
type Annotator interface {
	Annotate(text string) (*Annotation, error)
}

// Lemmatizer maps an inflected word form to its base form.
type Lemmatizer interface {
	Lemma(word string) string
}

// Language bundles the NLP model, the lemmatizer and the static pattern
// tables. It is constructed once at startup and read-only afterwards, so
// concurrent use from multiple workers is safe. Construction fails loudly
// when the model cannot be loaded, per-call errors downstream are swallowed
// by the individual stages.
type Language struct {
	annotator  Annotator
	lemmatizer Lemmatizer
	stopwords  map[string]struct{}
}

// NewLanguage loads the NLP model and dictionaries. The model argument
// selects between ModelSmall (rule-based entity labeling only) and
// ModelLarge (statistical NER enabled); empty defaults to large.
func NewLanguage(model string) (*Language, error) {
	switch model {
	case "", ModelSmall, ModelLarge:
	default:
		return nil, fmt.Errorf("unknown nlp model %q", model)
	}

	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load lemmatizer dictionary: %w", err)
	}

	return &Language{
		annotator:  &proseAnnotator{ner: model != ModelSmall},
		lemmatizer: &golemLemmatizer{lem: lem},
		stopwords:  buildStopwords(),
	}, nil
}

// Annotate runs the model over text.
func (l *Language) Annotate(text string) (*Annotation, error) {
	return l.annotator.Annotate(text)
}

// Lemma returns the lowercase base form of a word.
func (l *Language) Lemma(word string) string {
	return l.lemmatizer.Lemma(word)
}

// IsStopword reports whether the word is in the stopword table,
// case-insensitive.
func (l *Language) IsStopword(word string) bool {
	_, ok := l.stopwords[strings.ToLower(word)]
	return ok
}

// proseAnnotator adapts the prose document model to the Annotator interface.
type proseAnnotator struct {
	ner bool
}

// Annotate tokenizes, tags and segments the text, and runs NER when enabled.
func (p *proseAnnotator) Annotate(text string) (*Annotation, error) {
	opts := []prose.DocOpt{}
	if !p.ner {
		opts = append(opts, prose.WithExtraction(false))
	}
	doc, err := prose.NewDocument(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("annotate text: %w", err)
	}

	ann := &Annotation{}
	for _, tok := range doc.Tokens() {
		ann.Tokens = append(ann.Tokens, Token{Text: tok.Text, Tag: tok.Tag})
	}
	for _, sent := range doc.Sentences() {
		ann.Sentences = append(ann.Sentences, sent.Text)
	}
	if p.ner {
		for _, ent := range doc.Entities() {
			ann.Entities = append(ann.Entities, Span{Text: ent.Text, Label: ent.Label})
		}
	}
	return ann, nil
}

// golemLemmatizer adapts the golem dictionary lemmatizer.
type golemLemmatizer struct {
	lem *golem.Lemmatizer
}

func (g *golemLemmatizer) Lemma(word string) string {
	return g.lem.LemmaLower(word)
}
