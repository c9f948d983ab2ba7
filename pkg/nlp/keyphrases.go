package nlp

import (
	"sort"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/newsdeck/newsdeck/pkg/domain"
)

// importanceVocab boosts phrases that tend to mark newsworthy statements.
var importanceVocab = wordSet(`
announce launch develop new report study find show reveal
`)

// phraseEntityLabels limits which entity mentions become key phrase
// candidates.
var phraseEntityLabels = map[domain.EntityLabel]struct{}{
	domain.LabelORG:     {},
	domain.LabelPerson:  {},
	domain.LabelGPE:     {},
	domain.LabelProduct: {},
	domain.LabelEvent:   {},
}

// KeyPhraseRanker scores candidate phrases (noun chunks plus entity
// mentions) by a composite term-frequency, specificity and position
// heuristic. Scores are max-normalized within the document, so the top
// phrase always scores 1.0 unless every candidate scored zero.
type KeyPhraseRanker struct {
	lang     *Language
	entities *EntityExtractor
}

// NewKeyPhraseRanker creates a phrase ranker bound to the language context.
func NewKeyPhraseRanker(lang *Language) *KeyPhraseRanker {
	return &KeyPhraseRanker{lang: lang, entities: NewEntityExtractor(lang)}
}

// Rank returns at most topN phrases, sorted by score descending. Ties
// keep first-occurrence order. Empty text, no candidates or a model
// failure yield an empty list.
func (r *KeyPhraseRanker) Rank(text string, topN int) []domain.KeyPhrase {
	if strings.TrimSpace(text) == "" || topN <= 0 {
		return nil
	}

	ann, err := r.lang.Annotate(text)
	if err != nil {
		lgr.Printf("[WARN] key phrase extraction failed: %v", err)
		return nil
	}

	// candidate occurrences: noun chunks first, then entity mentions
	var occurrences []string
	for _, chunk := range nounChunks(ann.Tokens) {
		occurrences = append(occurrences, strings.ToLower(chunk))
	}
	for _, ent := range r.entities.Mentions(ann) {
		if _, ok := phraseEntityLabels[ent.Label]; !ok {
			continue
		}
		occurrences = append(occurrences, strings.ToLower(ent.Text))
	}
	if len(occurrences) == 0 {
		return nil
	}

	counts := map[string]int{}
	var order []string
	for _, p := range occurrences {
		if counts[p] == 0 {
			order = append(order, p)
		}
		counts[p]++
	}

	lower := strings.ToLower(text)
	total := float64(len(occurrences))

	type scored struct {
		phrase string
		raw    float64
	}
	ranked := make([]scored, 0, len(order))
	for _, p := range order {
		tf := float64(counts[p]) / total
		wordCount := len(strings.Fields(p))
		specificity := 1 + 0.2*float64(wordCount)

		offset := strings.Index(lower, p)
		if offset < 0 {
			offset = len(text)
		}
		position := 1.5 - float64(offset)/float64(len(text))

		raw := tf * specificity * position
		if r.hasImportantWord(p) {
			raw *= 1.5
		}
		ranked = append(ranked, scored{phrase: p, raw: raw})
	}

	// stable sort keeps first-occurrence order on exact ties
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].raw > ranked[j].raw })
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	maxScore := ranked[0].raw
	result := make([]domain.KeyPhrase, len(ranked))
	for i, s := range ranked {
		score := 0.0
		if maxScore > 0 {
			score = s.raw / maxScore
		}
		result[i] = domain.KeyPhrase{Phrase: s.phrase, Score: score}
	}
	return result
}

// hasImportantWord reports whether any lemmatized word of the phrase is in
// the importance vocabulary.
func (r *KeyPhraseRanker) hasImportantWord(phrase string) bool {
	for _, w := range strings.Fields(phrase) {
		if inSet(importanceVocab, r.lang.Lemma(w)) {
			return true
		}
	}
	return false
}

// chunk tags are the token tags allowed inside a noun chunk
func isChunkTag(tag string) bool {
	switch tag {
	case "DT", "PDT", "PRP$", "POS", "JJ", "JJR", "JJS", "NN", "NNS", "NNP", "NNPS", "CD":
		return true
	}
	return false
}

func isNounTag(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}

// strippable leading tokens: determiners, prepositions and auxiliaries
var leadingSkip = wordSet(`
the a an this that these those its his her their our your my
of in on at by for with to from
is are was were be been being has have had do does did will would
`)

// nounChunks extracts contiguous noun-headed spans from the tagged token
// stream, stripping leading determiners, prepositions and auxiliaries.
func nounChunks(tokens []Token) []string {
	var chunks []string
	i := 0
	for i < len(tokens) {
		if !isChunkTag(tokens[i].Tag) {
			i++
			continue
		}
		j := i
		for j < len(tokens) && isChunkTag(tokens[j].Tag) {
			j++
		}

		// trim the run down to its noun head
		end := j
		for end > i && !isNounTag(tokens[end-1].Tag) {
			end--
		}
		start := i
		for start < end && (tokens[start].Tag == "DT" || tokens[start].Tag == "PDT" ||
			tokens[start].Tag == "PRP$" || inSet(leadingSkip, tokens[start].Text)) {
			start++
		}
		if start < end {
			parts := make([]string, 0, end-start)
			for k := start; k < end; k++ {
				parts = append(parts, tokens[k].Text)
			}
			chunks = append(chunks, strings.Join(parts, " "))
		}
		i = j
	}
	return chunks
}
