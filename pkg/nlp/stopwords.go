package nlp

import "strings"

// standard English stopwords, word per entry
const baseStopwords = `
a about above after again against all am an and any are as at
be because been before being below between both but by
did do does doing down during
each
few for from further
had has have having he her here hers herself him himself his how
i if in into is it its itself
just
me more most my myself
no nor not now
of off on once only or other our ours ourselves out over own
same she so some such
than that the their theirs them themselves then there these they this
those through to too
under until up
very
was we were what when where which while who whom why will with
you your yours yourself yourselves
`

// domain additions: hedge verbs, numerals as words, generic adjectives
// and other words that carry no signal in news text
const extraStopwords = `
said say says also would could may might must shall should via
according like one two three four five six seven eight nine ten
first second third last new us u
`

func buildStopwords(extra ...string) map[string]struct{} {
	set := make(map[string]struct{}, 200)
	for _, src := range []string{baseStopwords, extraStopwords} {
		for _, w := range strings.Fields(src) {
			set[w] = struct{}{}
		}
	}
	for _, w := range extra {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
