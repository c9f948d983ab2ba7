package domain

// EntityLabel is the type of a named entity. Only the labels listed here
// are retained by the extractor; everything else is discarded.
type EntityLabel string

// entity labels, matching the usual NER tag set for news text
const (
	LabelORG     EntityLabel = "ORG"
	LabelPerson  EntityLabel = "PERSON"
	LabelGPE     EntityLabel = "GPE"
	LabelNORP    EntityLabel = "NORP"
	LabelFAC     EntityLabel = "FAC"
	LabelProduct EntityLabel = "PRODUCT"
	LabelEvent   EntityLabel = "EVENT"
)

// AllowedLabels lists every entity label the pipeline keeps, in a fixed order.
var AllowedLabels = []EntityLabel{
	LabelORG, LabelPerson, LabelGPE, LabelNORP, LabelFAC, LabelProduct, LabelEvent,
}

// Entity is a single typed named entity mention.
type Entity struct {
	Text  string      `json:"text"`
	Label EntityLabel `json:"label"`
}

// Category is one of a fixed closed taxonomy of business-event types.
type Category string

// the category taxonomy; CategoryOther is not a member of the closed set,
// it marks an article that matched nothing
const (
	CategoryMerger      Category = "merger"
	CategoryPartnership Category = "partnership"
	CategoryFunding     Category = "funding"
	CategoryProduct     Category = "product"
	CategoryLeadership  Category = "leadership"
	CategoryFinancial   Category = "financial"
	CategoryRegulation  Category = "regulation"

	CategoryOther Category = "other"
)

// Taxonomy lists the closed category set in its fixed priority order. The
// order is used as the tie-break when two categories first match at the
// same position in the text.
var Taxonomy = []Category{
	CategoryMerger, CategoryPartnership, CategoryFunding, CategoryProduct,
	CategoryLeadership, CategoryFinancial, CategoryRegulation,
}

// KeyPhrase is a scored salient phrase. Score is normalized to [0,1]
// against the best phrase of the same document.
type KeyPhrase struct {
	Phrase string  `json:"phrase"`
	Score  float64 `json:"score"`
}

// Insight is the structured analysis record derived from one article.
// Created once per processing pass and never mutated afterward.
type Insight struct {
	Entities        map[EntityLabel][]string `json:"entities"`
	Categories      []Category               `json:"categories"`
	KeyPhrases      []KeyPhrase              `json:"key_phrases"`
	PrimaryCategory Category                 `json:"primary_category"`
	RelevanceScore  float64                  `json:"relevance_score"`
	Summary         string                   `json:"summary"`
}

// HasEntities reports whether at least one entity with the given label
// was extracted. Safe on a zero-value Insight.
func (i Insight) HasEntities(label EntityLabel) bool {
	return len(i.Entities[label]) > 0
}

// AnalyzedArticle pairs an article with its insight, the unit consumed by
// the presentation layer.
type AnalyzedArticle struct {
	Article Article `json:"article"`
	Insight Insight `json:"insight"`
}
