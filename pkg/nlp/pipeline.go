package nlp

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/newsdeck/newsdeck/pkg/domain"
)

// ErrNoArticles is returned when a batch has nothing to process. Callers
// that need at least one insight (deck rendering) must treat this as a
// hard failure rather than a silent empty result.
var ErrNoArticles = errors.New("no articles to process")

// defaults applied when PipelineConfig fields are zero
const (
	defaultTopPhrases   = 5
	defaultMaxSentences = 3
	defaultWorkers      = 4
)

// PipelineConfig holds tunables for the insight pipeline.
type PipelineConfig struct {
	TopPhrases   int // key phrases kept per article
	MaxSentences int // summary length in sentences
	Workers      int // parallel workers for batch processing
}

// Pipeline runs all analysis stages over an article and aggregates the
// results into a single Insight. The stages are independent and the
// pipeline holds no mutable state, so one Pipeline serves any number of
// concurrent callers.
type Pipeline struct {
	normalizer *Normalizer
	entities   *EntityExtractor
	classifier *Classifier
	ranker     *KeyPhraseRanker
	summarizer *Summarizer

	topPhrases   int
	maxSentences int
	workers      int
}

// NewPipeline creates the full insight pipeline on top of a language context.
func NewPipeline(lang *Language, cfg PipelineConfig) *Pipeline {
	if cfg.TopPhrases <= 0 {
		cfg.TopPhrases = defaultTopPhrases
	}
	if cfg.MaxSentences <= 0 {
		cfg.MaxSentences = defaultMaxSentences
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	return &Pipeline{
		normalizer:   NewNormalizer(lang),
		entities:     NewEntityExtractor(lang),
		classifier:   NewClassifier(lang),
		ranker:       NewKeyPhraseRanker(lang),
		summarizer:   NewSummarizer(lang),
		topPhrases:   cfg.TopPhrases,
		maxSentences: cfg.MaxSentences,
		workers:      cfg.Workers,
	}
}

// Process derives an Insight from one article. It never fails: upstream
// stage errors collapse to empty defaults before aggregation runs.
// Entity extraction sees the original-case text, classification works on
// the normalized form.
func (p *Pipeline) Process(article domain.Article) domain.Insight {
	text := article.Text()

	entities := p.entities.Extract(text)
	categories := p.classifier.Classify(p.normalizer.Normalize(text))
	phrases := p.ranker.Rank(text, p.topPhrases)
	summary := p.summarizer.Summarize(text, p.maxSentences)

	return aggregate(entities, categories, phrases, summary)
}

// ProcessAll processes a batch with a bounded worker pool. The result
// slice preserves the input order regardless of completion order. An
// empty batch returns ErrNoArticles.
func (p *Pipeline) ProcessAll(ctx context.Context, articles []domain.Article) ([]domain.AnalyzedArticle, error) {
	if len(articles) == 0 {
		return nil, ErrNoArticles
	}

	result := make([]domain.AnalyzedArticle, len(articles))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, article := range articles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result[i] = domain.AnalyzedArticle{Article: article, Insight: p.Process(article)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// aggregate combines stage outputs into the final Insight with its capped
// composite relevance score.
func aggregate(entities map[domain.EntityLabel][]string, categories []domain.Category,
	phrases []domain.KeyPhrase, summary string) domain.Insight {

	insight := domain.Insight{
		Entities:        entities,
		Categories:      categories,
		KeyPhrases:      phrases,
		PrimaryCategory: Primary(categories),
		Summary:         summary,
	}
	insight.RelevanceScore = relevance(insight)
	return insight
}

// relevance computes the additive [0,1] score: category presence, average
// of the top three phrase scores, and boosts per entity type.
func relevance(insight domain.Insight) float64 {
	score := 0.0

	if len(insight.Categories) > 0 {
		score += 0.3
	}

	if len(insight.KeyPhrases) > 0 {
		top := insight.KeyPhrases
		if len(top) > 3 {
			top = top[:3]
		}
		sum := 0.0
		for _, kp := range top {
			sum += kp.Score
		}
		score += 0.2 * (sum / float64(len(top)))
	}

	if insight.HasEntities(domain.LabelORG) {
		score += 0.2
	}
	if insight.HasEntities(domain.LabelPerson) {
		score += 0.1
	}
	if insight.HasEntities(domain.LabelGPE) {
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
