package nlp

import "strings"

// small curated gazetteers backing the rule-based entity labeler. The
// statistical model covers persons and locations well, the rules pick up
// organizations, facilities, events and products it has no labels for.

var orgSuffixes = wordSet(`
inc inc. corp corp. corporation co co. ltd ltd. llc llp plc gmbh ag sa
group holdings holding partners ventures capital bank technologies
technology labs systems software industries airlines motors media
networks pharmaceuticals foundation institute university association
agency commission committee authority exchange fund insurance
`)

var norpTerms = wordSet(`
american americans british chinese russian japanese german french indian
korean canadian australian italian spanish brazilian mexican dutch swiss
swedish israeli iranian saudi european africans asians westerners
democrats republicans democrat republican conservatives liberals
christians muslims jews buddhists hindus catholics protestants
`)

var gpeTerms = phraseSet(`
united states|us|usa|u.s.|uk|united kingdom|china|russia|japan|germany
france|india|south korea|canada|australia|italy|spain|brazil|mexico
netherlands|switzerland|sweden|israel|iran|saudi arabia|turkey|poland
ukraine|taiwan|singapore|ireland|norway|denmark|finland|belgium|austria
egypt|nigeria|south africa|argentina|chile|indonesia|vietnam|thailand
new york|new york city|london|paris|berlin|tokyo|beijing|shanghai
moscow|san francisco|los angeles|chicago|boston|seattle|austin|dallas
houston|miami|atlanta|washington|toronto|sydney|mumbai|dubai|hong kong
amsterdam|madrid|rome|zurich|geneva|brussels|stockholm|seoul|singapore
california|texas|florida|nevada|arizona|virginia|ohio|michigan|georgia
`)

var facSuffixes = wordSet(`
airport bridge stadium tower station hall arena dam tunnel plaza
headquarters campus terminal port harbor
`)

var eventTerms = wordSet(`
conference summit expo olympics festival awards cup forum games
convention championship symposium hackathon keynote
`)

var launchVerbs = wordSet(`
launch unveil release introduce announce debut present ship
`)

var personTitles = wordSet(`
ceo cto cfo coo cio president chairman chairwoman chair chief director
founder cofounder co-founder executive vp mr mr. mrs mrs. ms ms. dr dr.
prof prof. senator governor minister secretary judge
`)

var firstNames = wordSet(`
james john robert michael william david richard joseph thomas charles
mary patricia jennifer linda elizabeth barbara susan jessica sarah karen
daniel matthew anthony mark donald steven paul andrew joshua kenneth
kevin brian george timothy ronald jason edward jeffrey ryan jacob gary
nancy lisa betty margaret sandra ashley kimberly emily donna michelle
carol amanda melissa deborah stephanie rebecca sharon laura cynthia
kathleen amy angela anna jane ruth brenda pamela nicole katherine
samantha christine emma catherine virginia rachel janet maria heather
diane julie joyce victoria olivia sophia grace hannah alice eric peter
adam noah henry samuel raymond patrick alexander frank jack dennis
jerry tyler aaron jose nathan elon satya sundar tim jeff warren jamie
`)

// wordSet builds a lookup set from a whitespace separated word list.
func wordSet(src string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(src) {
		set[w] = struct{}{}
	}
	return set
}

// phraseSet builds a lookup set from a pipe/newline separated phrase list.
func phraseSet(src string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, line := range strings.Split(src, "\n") {
		for _, p := range strings.Split(line, "|") {
			p = strings.TrimSpace(p)
			if p != "" {
				set[p] = struct{}{}
			}
		}
	}
	return set
}

func inSet(set map[string]struct{}, word string) bool {
	_, ok := set[strings.ToLower(word)]
	return ok
}
