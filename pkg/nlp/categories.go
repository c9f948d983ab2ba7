package nlp

import (
	"sort"
	"strings"

	"github.com/clipperhouse/uax29/v2/words"

	"github.com/newsdeck/newsdeck/pkg/domain"
)

// categoryTriggers maps each taxonomy category to its curated trigger phrases.
var categoryTriggers = map[domain.Category][]string{
	domain.CategoryMerger:      {"merger", "acquisition", "acquire", "takeover", "buyout"},
	domain.CategoryPartnership: {"partnership", "collaboration", "alliance", "joint venture", "team up"},
	domain.CategoryFunding:     {"funding", "investment", "raise", "series a", "series b", "series c", "funding round"},
	domain.CategoryProduct:     {"launch", "release", "new product", "announce", "introduce"},
	domain.CategoryLeadership:  {"appoint", "hire", "join", "name", "promote", "resign", "step down"},
	domain.CategoryFinancial:   {"revenue", "profit", "loss", "earnings", "financial results", "quarterly results"},
	domain.CategoryRegulation:  {"regulation", "compliance", "lawsuit", "settlement", "fine", "investigation"},
}

// Classifier assigns zero or more taxonomy categories to a text by
// matching trigger phrases on token boundaries. Matching is lemma-aware:
// both the text and the trigger phrases are reduced to base forms, so
// "acquired" matches the "acquire" trigger but "acquirer" does not.
type Classifier struct {
	lang     *Language
	triggers []trigger
}

// trigger is a single pre-lemmatized phrase pattern.
type trigger struct {
	category domain.Category
	lemmas   []string
}

// NewClassifier creates a category classifier bound to the language
// context, pre-lemmatizing the trigger table once.
func NewClassifier(lang *Language) *Classifier {
	c := &Classifier{lang: lang}
	for _, cat := range domain.Taxonomy {
		for _, phrase := range categoryTriggers[cat] {
			var lemmas []string
			for _, w := range strings.Fields(phrase) {
				lemmas = append(lemmas, lang.Lemma(w))
			}
			c.triggers = append(c.triggers, trigger{category: cat, lemmas: lemmas})
		}
	}
	return c
}

// Classify returns the matched categories ordered by the earliest trigger
// occurrence in the text, ties broken by the fixed taxonomy order. The
// deterministic ordering makes the first element a stable primary
// category. Empty input yields an empty slice.
func (c *Classifier) Classify(text string) []domain.Category {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lemmas := c.lemmaTokens(text)
	if len(lemmas) == 0 {
		return nil
	}

	// earliest match position per category
	first := map[domain.Category]int{}
	for _, tr := range c.triggers {
		pos := matchSubsequence(lemmas, tr.lemmas)
		if pos < 0 {
			continue
		}
		if cur, ok := first[tr.category]; !ok || pos < cur {
			first[tr.category] = pos
		}
	}
	if len(first) == 0 {
		return nil
	}

	priority := map[domain.Category]int{}
	for i, cat := range domain.Taxonomy {
		priority[cat] = i
	}

	cats := make([]domain.Category, 0, len(first))
	for cat := range first {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		if first[cats[i]] != first[cats[j]] {
			return first[cats[i]] < first[cats[j]]
		}
		return priority[cats[i]] < priority[cats[j]]
	})
	return cats
}

// Primary returns the primary category for a classified set, or
// CategoryOther for an empty one.
func Primary(cats []domain.Category) domain.Category {
	if len(cats) == 0 {
		return domain.CategoryOther
	}
	return cats[0]
}

// lemmaTokens segments the text into words and lemmatizes each one.
func (c *Classifier) lemmaTokens(text string) []string {
	var lemmas []string
	tokens := words.FromString(text)
	for tokens.Next() {
		word := strings.TrimSpace(tokens.Value())
		if word == "" || !hasLetterOrDigit(word) {
			continue
		}
		lemmas = append(lemmas, c.lang.Lemma(word))
	}
	return lemmas
}

// matchSubsequence finds the first position where pattern occurs as a
// contiguous token run, -1 when absent.
func matchSubsequence(tokens, pattern []string) int {
	if len(pattern) == 0 || len(pattern) > len(tokens) {
		return -1
	}
	for i := 0; i+len(pattern) <= len(tokens); i++ {
		matched := true
		for j, p := range pattern {
			if tokens[i+j] != p {
				matched = false
				break
			}
		}
		if matched {
			return i
		}
	}
	return -1
}

func hasLetterOrDigit(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
