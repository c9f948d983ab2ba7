package nlp

import (
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/newsdeck/newsdeck/pkg/domain"
)

// EntityExtractor produces typed named entities from original-case text.
// Case matters for proper-noun recognition, so this stage must run before
// any lowercasing. Mentions from the statistical model are merged with
// rule-based labeling of proper-noun spans; within each label bucket
// duplicates are removed, first-seen order preserved.
type EntityExtractor struct {
	lang *Language
}

// NewEntityExtractor creates an entity extractor bound to the language context.
func NewEntityExtractor(lang *Language) *EntityExtractor {
	return &EntityExtractor{lang: lang}
}

// Extract returns entities grouped by label. Empty or invalid input and
// model failures yield an empty map, never an error.
func (e *EntityExtractor) Extract(text string) map[domain.EntityLabel][]string {
	result := map[domain.EntityLabel][]string{}
	if strings.TrimSpace(text) == "" {
		return result
	}

	ann, err := e.lang.Annotate(text)
	if err != nil {
		lgr.Printf("[WARN] entity extraction failed: %v", err)
		return result
	}

	// de-duplicate by exact text within each label, first occurrence wins
	seen := map[domain.Entity]struct{}{}
	for _, ent := range e.Mentions(ann) {
		if _, dup := seen[ent]; dup {
			continue
		}
		seen[ent] = struct{}{}
		result[ent.Label] = append(result[ent.Label], ent.Text)
	}
	return result
}

// Mentions returns every entity mention in annotation order, statistical
// spans first, then rule-labeled proper-noun spans. Duplicates are kept;
// callers that need per-label de-duplication use Extract.
func (e *EntityExtractor) Mentions(ann *Annotation) []domain.Entity {
	var mentions []domain.Entity
	modelTexts := map[string]struct{}{}

	for _, sp := range ann.Entities {
		label, ok := allowedLabel(sp.Label)
		if !ok {
			continue
		}
		mentions = append(mentions, domain.Entity{Text: sp.Text, Label: label})
		modelTexts[sp.Text] = struct{}{}
	}

	for _, sp := range properNounSpans(ann.Tokens) {
		// capitalized honorifics get swept into the span itself,
		// split them off and take the rest as a person name
		titled := false
		for len(sp.words) > 1 && inSet(personTitles, sp.words[0]) {
			sp.words = sp.words[1:]
			sp.start++
			titled = true
		}
		if titled {
			sp.text = strings.Join(sp.words, " ")
			if _, dup := modelTexts[sp.text]; !dup {
				mentions = append(mentions, domain.Entity{Text: sp.text, Label: domain.LabelPerson})
			}
			continue
		}

		if _, dup := modelTexts[sp.text]; dup {
			continue
		}
		label, ok := e.resolveLabel(sp, ann.Tokens)
		if !ok {
			continue
		}
		mentions = append(mentions, domain.Entity{Text: sp.text, Label: label})
	}
	return mentions
}

// nounSpan is a run of proper-noun tokens with its position in the token stream.
type nounSpan struct {
	text  string
	words []string
	start int // index of the first token in the stream
	end   int // index one past the last token
}

// properNounSpans finds maximal runs of NNP/NNPS tokens, allowing an
// ampersand inside a run (Procter & Gamble).
func properNounSpans(tokens []Token) []nounSpan {
	var spans []nounSpan
	i := 0
	for i < len(tokens) {
		if !isProperTag(tokens[i].Tag) {
			i++
			continue
		}
		j := i
		var parts []string
		for j < len(tokens) {
			switch {
			case isProperTag(tokens[j].Tag):
				parts = append(parts, tokens[j].Text)
			case tokens[j].Text == "&" && j+1 < len(tokens) && isProperTag(tokens[j+1].Tag):
				parts = append(parts, "&")
			default:
				goto done
			}
			j++
		}
	done:
		spans = append(spans, nounSpan{
			text:  strings.Join(parts, " "),
			words: parts,
			start: i,
			end:   j,
		})
		i = j
	}
	return spans
}

// resolveLabel assigns an entity label to a proper-noun span using the
// gazetteers and suffix rules. Rules are ordered by reliability; an
// unresolved multi-word span defaults to ORG, a business-news prior.
func (e *EntityExtractor) resolveLabel(sp nounSpan, tokens []Token) (domain.EntityLabel, bool) {
	last := sp.words[len(sp.words)-1]

	if hasPrecedingTitle(tokens, sp.start) {
		return domain.LabelPerson, true
	}
	if inSet(orgSuffixes, last) {
		return domain.LabelORG, true
	}
	if len(sp.words) == 1 && inSet(norpTerms, sp.words[0]) {
		return domain.LabelNORP, true
	}
	if inSet(gpeTerms, strings.ToLower(sp.text)) {
		return domain.LabelGPE, true
	}
	if inSet(facSuffixes, last) {
		return domain.LabelFAC, true
	}
	for _, w := range sp.words {
		if inSet(eventTerms, w) {
			return domain.LabelEvent, true
		}
	}
	if e.hasPrecedingLaunchVerb(tokens, sp.start) {
		return domain.LabelProduct, true
	}
	if len(sp.words) == 2 && inSet(firstNames, sp.words[0]) {
		return domain.LabelPerson, true
	}

	if len(sp.words) > 1 {
		return domain.LabelORG, true
	}
	// lone capitalized word mid-sentence is most likely an organization
	// or product we cannot tell apart; sentence-initial ones are noise
	if !sentenceInitial(tokens, sp.start) {
		return domain.LabelORG, true
	}
	return "", false
}

// hasPrecedingTitle checks for an honorific or role word right before the span.
func hasPrecedingTitle(tokens []Token, start int) bool {
	for k := start - 1; k >= 0 && k >= start-2; k-- {
		if isPunctTag(tokens[k].Tag) {
			return false
		}
		if inSet(personTitles, tokens[k].Text) {
			return true
		}
	}
	return false
}

// hasPrecedingLaunchVerb checks for a launch-type verb within two tokens
// before the span, lemma-matched.
func (e *EntityExtractor) hasPrecedingLaunchVerb(tokens []Token, start int) bool {
	for k := start - 1; k >= 0 && k >= start-2; k-- {
		if isPunctTag(tokens[k].Tag) {
			return false
		}
		if inSet(launchVerbs, e.lang.Lemma(tokens[k].Text)) {
			return true
		}
	}
	return false
}

// sentenceInitial reports whether the token at idx starts the text or
// directly follows sentence-final punctuation.
func sentenceInitial(tokens []Token, idx int) bool {
	if idx == 0 {
		return true
	}
	return tokens[idx-1].Tag == "."
}

func isProperTag(tag string) bool {
	return tag == "NNP" || tag == "NNPS"
}

// allowedLabel maps a model label onto the retained label set.
func allowedLabel(label string) (domain.EntityLabel, bool) {
	for _, l := range domain.AllowedLabels {
		if string(l) == label {
			return l, true
		}
	}
	return "", false
}
