package scheduler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdeck/newsdeck/pkg/deck"
	"github.com/newsdeck/newsdeck/pkg/domain"
	"github.com/newsdeck/newsdeck/pkg/nlp"
	"github.com/newsdeck/newsdeck/pkg/scheduler/mocks"
)

func fetchedArticle(n int) domain.Article {
	return domain.Article{
		ID:    fmt.Sprintf("id-%d", n),
		Title: fmt.Sprintf("Article %d", n),
		URL:   fmt.Sprintf("https://example.com/%d", n),
	}
}

func analyzedArticle(n int) domain.AnalyzedArticle {
	return domain.AnalyzedArticle{
		Article: fetchedArticle(n),
		Insight: domain.Insight{
			PrimaryCategory: domain.CategoryMerger,
			RelevanceScore:  0.7,
			Summary:         fmt.Sprintf("Summary %d.", n),
		},
	}
}

// happyMocks returns mocks wired for a successful refresh of count articles
func happyMocks(count int) (*mocks.FetcherMock, *mocks.AnalyzerMock, *mocks.StoreMock, *mocks.DeckGeneratorMock) {
	fetcher := &mocks.FetcherMock{
		FetchFunc: func(_ context.Context, _ string, _ int) ([]domain.Article, error) {
			articles := make([]domain.Article, count)
			for i := range articles {
				articles[i] = fetchedArticle(i + 1)
			}
			return articles, nil
		},
		ForgetFunc: func(_ string) {},
	}
	analyzer := &mocks.AnalyzerMock{
		ProcessAllFunc: func(_ context.Context, articles []domain.Article) ([]domain.AnalyzedArticle, error) {
			analyzed := make([]domain.AnalyzedArticle, len(articles))
			for i := range articles {
				analyzed[i] = analyzedArticle(i + 1)
			}
			return analyzed, nil
		},
	}
	store := &mocks.StoreMock{
		CreateArticleFunc: func(_ context.Context, _ *domain.Article) error { return nil },
		UpdateInsightFunc: func(_ context.Context, _ string, _ domain.Insight) error { return nil },
		GetAnalyzedFunc: func(_ context.Context, _ float64, _ int) ([]domain.AnalyzedArticle, error) {
			return []domain.AnalyzedArticle{analyzedArticle(1)}, nil
		},
	}
	deckGen := &mocks.DeckGeneratorMock{
		GenerateFunc: func(_ []domain.AnalyzedArticle) (string, string, error) {
			return "decks/deck.json", "decks/deck.md", nil
		},
	}
	return fetcher, analyzer, store, deckGen
}

func TestNewScheduler_Defaults(t *testing.T) {
	fetcher, analyzer, store, deckGen := happyMocks(0)
	s := NewScheduler(fetcher, analyzer, store, deckGen, nil, Config{})

	assert.Equal(t, time.Hour, s.interval)
	assert.Equal(t, 25, s.pageSize)
	assert.Equal(t, 4, s.maxWorkers)
}

func TestScheduler_RefreshQuery(t *testing.T) {
	fetcher, analyzer, store, deckGen := happyMocks(3)
	s := NewScheduler(fetcher, analyzer, store, deckGen, nil, Config{PageSize: 10})

	stored, err := s.RefreshQuery(context.Background(), "acme merger")
	require.NoError(t, err)
	assert.Equal(t, 3, stored)

	require.Len(t, fetcher.FetchCalls(), 1)
	assert.Equal(t, "acme merger", fetcher.FetchCalls()[0].Query)
	assert.Equal(t, 10, fetcher.FetchCalls()[0].Limit)

	// a triggered refresh drops the cached fetch result first
	require.Len(t, fetcher.ForgetCalls(), 1)
	assert.Equal(t, "acme merger", fetcher.ForgetCalls()[0].Query)

	require.Len(t, analyzer.ProcessAllCalls(), 1)
	assert.Len(t, store.CreateArticleCalls(), 3)
	assert.Len(t, store.UpdateInsightCalls(), 3)

	// insight lands under the id resolved by the store
	assert.Equal(t, "id-1", store.UpdateInsightCalls()[0].ArticleID)
}

func TestScheduler_RefreshQuery_NoArticles(t *testing.T) {
	fetcher, analyzer, store, deckGen := happyMocks(0)
	s := NewScheduler(fetcher, analyzer, store, deckGen, nil, Config{})

	stored, err := s.RefreshQuery(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Equal(t, 0, stored)

	// pipeline never invoked for an empty batch
	assert.Empty(t, analyzer.ProcessAllCalls())
	assert.Empty(t, store.CreateArticleCalls())
}

func TestScheduler_RefreshQuery_Errors(t *testing.T) {
	t.Run("fetch failure", func(t *testing.T) {
		fetcher, analyzer, store, deckGen := happyMocks(2)
		fetcher.FetchFunc = func(_ context.Context, _ string, _ int) ([]domain.Article, error) {
			return nil, fmt.Errorf("api down")
		}
		s := NewScheduler(fetcher, analyzer, store, deckGen, nil, Config{})

		_, err := s.RefreshQuery(context.Background(), "q")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api down")
	})

	t.Run("analyzer empty batch sentinel", func(t *testing.T) {
		fetcher, analyzer, store, deckGen := happyMocks(2)
		analyzer.ProcessAllFunc = func(_ context.Context, _ []domain.Article) ([]domain.AnalyzedArticle, error) {
			return nil, nlp.ErrNoArticles
		}
		s := NewScheduler(fetcher, analyzer, store, deckGen, nil, Config{})

		stored, err := s.RefreshQuery(context.Background(), "q")
		require.NoError(t, err)
		assert.Equal(t, 0, stored)
	})

	t.Run("store failure does not abort the batch", func(t *testing.T) {
		fetcher, analyzer, store, deckGen := happyMocks(2)
		store.CreateArticleFunc = func(_ context.Context, article *domain.Article) error {
			if article.ID == "id-1" {
				return fmt.Errorf("disk full")
			}
			return nil
		}
		s := NewScheduler(fetcher, analyzer, store, deckGen, nil, Config{})

		stored, err := s.RefreshQuery(context.Background(), "q")
		require.NoError(t, err)
		assert.Equal(t, 2, stored)
		// insight only written for the article that persisted
		assert.Len(t, store.UpdateInsightCalls(), 1)
		assert.Equal(t, "id-2", store.UpdateInsightCalls()[0].ArticleID)
	})
}

func TestScheduler_Enhancer(t *testing.T) {
	t.Run("enhanced summary stored", func(t *testing.T) {
		fetcher, analyzer, store, deckGen := happyMocks(1)
		enhancer := &mocks.EnhancerMock{
			EnhanceFunc: func(_ context.Context, _ domain.Article, _ domain.Insight) (string, error) {
				return "Polished summary.", nil
			},
		}
		s := NewScheduler(fetcher, analyzer, store, deckGen, enhancer, Config{})

		_, err := s.RefreshQuery(context.Background(), "q")
		require.NoError(t, err)

		require.Len(t, enhancer.EnhanceCalls(), 1)
		require.Len(t, store.UpdateInsightCalls(), 1)
		assert.Equal(t, "Polished summary.", store.UpdateInsightCalls()[0].Insight.Summary)
	})

	t.Run("enhancement failure keeps extractive summary", func(t *testing.T) {
		fetcher, analyzer, store, deckGen := happyMocks(1)
		enhancer := &mocks.EnhancerMock{
			EnhanceFunc: func(_ context.Context, _ domain.Article, _ domain.Insight) (string, error) {
				return "", fmt.Errorf("llm down")
			},
		}
		s := NewScheduler(fetcher, analyzer, store, deckGen, enhancer, Config{})

		_, err := s.RefreshQuery(context.Background(), "q")
		require.NoError(t, err)

		require.Len(t, store.UpdateInsightCalls(), 1)
		assert.Equal(t, "Summary 1.", store.UpdateInsightCalls()[0].Insight.Summary)
	})
}

func TestScheduler_RefreshNow(t *testing.T) {
	fetcher, analyzer, store, deckGen := happyMocks(2)
	s := NewScheduler(fetcher, analyzer, store, deckGen, nil, Config{
		Queries: []string{"alpha", "beta"},
	})

	require.NoError(t, s.RefreshNow(context.Background()))

	assert.Len(t, fetcher.FetchCalls(), 2)
	// caches dropped for every query so same-day articles can surface
	require.Len(t, fetcher.ForgetCalls(), 2)
	assert.Equal(t, "alpha", fetcher.ForgetCalls()[0].Query)
	assert.Equal(t, "beta", fetcher.ForgetCalls()[1].Query)
	// deck rebuilt once after all queries
	assert.Len(t, deckGen.GenerateCalls(), 1)
	assert.Len(t, store.GetAnalyzedCalls(), 1)
}

func TestScheduler_RefreshNow_NoQueries(t *testing.T) {
	fetcher, analyzer, store, deckGen := happyMocks(1)
	s := NewScheduler(fetcher, analyzer, store, deckGen, nil, Config{})

	require.NoError(t, s.RefreshNow(context.Background()))
	assert.Empty(t, fetcher.FetchCalls())
	assert.Empty(t, deckGen.GenerateCalls())
}

func TestScheduler_BuildDeckNow(t *testing.T) {
	fetcher, analyzer, store, deckGen := happyMocks(1)
	s := NewScheduler(fetcher, analyzer, store, deckGen, nil, Config{})

	jsonPath, mdPath, err := s.BuildDeckNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "decks/deck.json", jsonPath)
	assert.Equal(t, "decks/deck.md", mdPath)

	t.Run("empty deck error propagates", func(t *testing.T) {
		deckGen.GenerateFunc = func(_ []domain.AnalyzedArticle) (string, string, error) {
			return "", "", deck.ErrNoArticles
		}
		_, _, err := s.BuildDeckNow(context.Background())
		assert.ErrorIs(t, err, deck.ErrNoArticles)
	})
}

func TestScheduler_StartStop(t *testing.T) {
	fetched := make(chan struct{}, 10)
	fetcher, analyzer, store, deckGen := happyMocks(1)
	fetcher.FetchFunc = func(_ context.Context, _ string, _ int) ([]domain.Article, error) {
		select {
		case fetched <- struct{}{}:
		default:
		}
		return []domain.Article{fetchedArticle(1)}, nil
	}

	s := NewScheduler(fetcher, analyzer, store, deckGen, nil, Config{
		UpdateInterval: 10 * time.Millisecond,
		Queries:        []string{"alpha"},
	})

	s.Start(context.Background())

	// initial run plus at least one tick
	for i := 0; i < 2; i++ {
		select {
		case <-fetched:
		case <-time.After(2 * time.Second):
			t.Fatal("refresh did not run")
		}
	}

	s.Stop()

	// the periodic loop keeps the daily cache, only triggered refreshes
	// drop it
	assert.Empty(t, fetcher.ForgetCalls())

	// no refreshes after stop
	drained := len(fetched)
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, len(fetched), drained+1, "refresh kept running after stop")
}
