package nlp

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/go-pkgz/lgr"
)

// actionVocab counts lemmas that mark concrete developments, used for
// sentence scoring.
var actionVocab = wordSet(`
announce launch develop introduce partner collaborate increase grow
expand invest fund raise acquire merge release report according show
reveal indicate
`)

// thresholds for the short-summary fallback
const (
	minSummaryWords  = 50
	minSourceWords   = 100
	fallbackSentence = 5
)

// Summarizer produces extractive summaries: sentences are scored by
// entity density, action-keyword presence and position, the best ones are
// selected and then reordered back into document order so the summary
// reads naturally.
type Summarizer struct {
	lang     *Language
	entities *EntityExtractor
}

// NewSummarizer creates a summarizer bound to the language context.
func NewSummarizer(lang *Language) *Summarizer {
	return &Summarizer{lang: lang, entities: NewEntityExtractor(lang)}
}

// Summarize selects up to maxSentences sentences. A summary that comes
// out under ~50 words for a source over ~100 words is discarded in favor
// of the first five sentences verbatim. Model failures fall back to the
// first two sentences, or the first 500 characters when sentence
// splitting itself is impossible.
func (s *Summarizer) Summarize(text string, maxSentences int) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if maxSentences <= 0 {
		maxSentences = 3
	}

	ann, err := s.lang.Annotate(text)
	if err != nil || len(ann.Sentences) == 0 {
		if err != nil {
			lgr.Printf("[WARN] summarization failed, using fallback: %v", err)
		}
		return fallbackSummary(text)
	}

	sents := ann.Sentences
	if len(sents) <= maxSentences {
		return strings.Join(sents, " ")
	}

	scores := make([]float64, len(sents))
	mentions := s.entities.Mentions(ann)
	for i, sent := range sents {
		entityCount := 0
		for _, m := range mentions {
			if strings.Contains(sent, m.Text) {
				entityCount++
			}
		}

		keywordHits := 0
		wordCount := 0
		for _, w := range fieldsOf(sent) {
			wordCount++
			if inSet(actionVocab, s.lang.Lemma(w)) {
				keywordHits++
			}
		}

		rel := float64(i) / float64(len(sents))
		position := 1.5 - math.Abs(rel-0.5)

		scores[i] = (float64(entityCount)*0.5 + float64(keywordHits) + position) * float64(wordCount)
	}

	// pick the top sentences, then restore document order
	idx := make([]int, len(sents))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })
	picked := idx[:maxSentences]
	sort.Ints(picked)

	selected := make([]string, len(picked))
	for i, p := range picked {
		selected[i] = sents[p]
	}
	summary := strings.Join(selected, " ")

	// too little survived the selection, take the opening instead
	if countWords(summary) < minSummaryWords && countWords(text) > minSourceWords {
		n := fallbackSentence
		if n > len(sents) {
			n = len(sents)
		}
		summary = strings.Join(sents[:n], " ")
	}
	return summary
}

var sentenceSplitRe = regexp.MustCompile(`(?s)(.*?[.!?])(?:\s+|$)`)

// fallbackSummary returns the first two sentences of raw text using a
// naive splitter, or a 500-character prefix when no sentence boundary
// can be found.
func fallbackSummary(text string) string {
	matches := sentenceSplitRe.FindAllStringSubmatch(text, 2)
	if len(matches) > 0 {
		var parts []string
		for _, m := range matches {
			parts = append(parts, strings.TrimSpace(m[1]))
		}
		return strings.Join(parts, " ")
	}
	if len(text) > 500 {
		// back off to a rune boundary so the cut never yields invalid UTF-8
		cut := 500
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		return text[:cut] + "..."
	}
	return text
}

// fieldsOf segments a sentence into word tokens.
func fieldsOf(sent string) []string {
	var out []string
	tokens := words.FromString(sent)
	for tokens.Next() {
		w := strings.TrimSpace(tokens.Value())
		if w == "" || !hasLetterOrDigit(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func countWords(text string) int {
	return len(strings.Fields(text))
}
