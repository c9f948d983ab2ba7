package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/newsdeck/newsdeck/pkg/domain"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier(testLanguage(nil))

	tests := []struct {
		name string
		text string
		want []domain.Category
	}{
		{"empty", "", nil},
		{"no match", "the weather was nice all week", nil},
		{"single trigger", "talks about a merger continued", []domain.Category{domain.CategoryMerger}},
		{"lemma match", "the company acquired a rival", []domain.Category{domain.CategoryMerger}},
		{"multi word trigger", "they formed a joint venture overseas", []domain.Category{domain.CategoryPartnership}},
		{"series round", "the startup closed a series a round", []domain.Category{domain.CategoryFunding}},
		{"ordered by occurrence", "merger talks and partnership plans", []domain.Category{domain.CategoryMerger, domain.CategoryPartnership}},
		{"occurrence order reversed", "partnership plans before merger talks", []domain.Category{domain.CategoryPartnership, domain.CategoryMerger}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.text))
		})
	}
}

func TestClassifier_TokenBoundaries(t *testing.T) {
	c := NewClassifier(testLanguage(nil))

	// "acquirer" is not an inflection of "acquire" and must not match
	assert.Empty(t, c.Classify("the acquirer stayed silent"))
	// but real inflections do
	assert.Equal(t, []domain.Category{domain.CategoryMerger}, c.Classify("they acquired everything"))
}

func TestClassifier_ClosedSet(t *testing.T) {
	c := NewClassifier(testLanguage(nil))

	valid := map[domain.Category]struct{}{}
	for _, cat := range domain.Taxonomy {
		valid[cat] = struct{}{}
	}

	texts := []string{
		"merger acquisition funding launch appoint revenue regulation lawsuit",
		"profit loss earnings and a funding round with investment raise",
		"nothing relevant here",
	}
	for _, text := range texts {
		for _, got := range c.Classify(text) {
			_, ok := valid[got]
			assert.True(t, ok, "category %q outside the taxonomy", got)
		}
	}
}

func TestClassifier_Deterministic(t *testing.T) {
	c := NewClassifier(testLanguage(nil))
	text := "the merger follows a funding round and a product launch"

	first := c.Classify(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.Classify(text))
	}
}

func TestPrimary(t *testing.T) {
	assert.Equal(t, domain.CategoryOther, Primary(nil))
	assert.Equal(t, domain.CategoryOther, Primary([]domain.Category{}))
	assert.Equal(t, domain.CategoryMerger, Primary([]domain.Category{domain.CategoryMerger, domain.CategoryFunding}))
}
