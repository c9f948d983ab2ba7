package nlp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizer_Normalize(t *testing.T) {
	n := NewNormalizer(testLanguage(nil))

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "Hello World", "hello world"},
		{"html tags", "<p>Hello <b>World</b></p>", "hello world"},
		{"html entities", "Ben &amp; Jerry&#39;s", "ben jerrys"},
		{"url stripped", "read more at https://example.com/a?b=c now", "read more at now"},
		{"www url stripped", "visit www.example.com today", "visit today"},
		{"email stripped", "contact press@example.com for info", "contact for info"},
		{"punctuation", "Hello, world! (really)", "hello world really"},
		{"digits", "raised 120 million in 2024", "raised million in"},
		{"unicode accents", "café résumé", "caf r sum"},
		{"whitespace collapsed", "a \t b\n\n c", "a b c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.input))
		})
	}
}

func TestNormalizer_NormalizeIdempotent(t *testing.T) {
	n := NewNormalizer(testLanguage(nil))

	inputs := []string{
		"",
		"Hello, World!",
		"<div>Acme Corp announced a merger &amp; more</div>",
		"mixed 123 content with https://x.io links and café chars",
		"already lowercase ascii text",
	}
	for _, input := range inputs {
		once := n.Normalize(input)
		assert.Equal(t, once, n.Normalize(once), "normalize must be idempotent for %q", input)
	}
}

func TestNormalizer_RemoveStopwords(t *testing.T) {
	n := NewNormalizer(testLanguage(nil))

	assert.Equal(t, "", n.RemoveStopwords(""))
	assert.Equal(t, "company merger deal", n.RemoveStopwords("the company said a merger is also one deal"))
	// custom additions: numerals as words and hedge verbs are dropped
	assert.Equal(t, "quarter results", n.RemoveStopwords("first quarter results would say one two three"))
}

func TestNormalizer_Lemmatize(t *testing.T) {
	n := NewNormalizer(testLanguage(nil))

	assert.Equal(t, "", n.Lemmatize(""))
	// stopwords and punctuation dropped, remaining words reduced to lemmas
	assert.Equal(t, "acme announce merger", n.Lemmatize("Acme announced the merger."))
}

func TestNormalizer_LemmatizeFailSoft(t *testing.T) {
	n := NewNormalizer(failingLanguage(errors.New("model crashed")))

	// on annotation failure the input comes back unchanged
	assert.Equal(t, "Acme announced the merger.", n.Lemmatize("Acme announced the merger."))
}

func TestNormalizer_NormalizeArticle(t *testing.T) {
	n := NewNormalizer(testLanguage(nil))

	got := n.NormalizeArticle(articleFixture("<b>Big News!</b>", "Acme announced the merger today.", "Short &amp; sweet"))
	assert.Equal(t, "big news", got.Title)
	assert.Equal(t, "acme announced the merger today", got.Content)
	assert.Equal(t, "short sweet", got.Description)
	assert.Equal(t, "acme announced merger today", got.ContentNoStopwords)
	assert.Equal(t, "acme announce merger today", got.ContentLemmatized)
}
