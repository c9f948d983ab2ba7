package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/newsdeck/newsdeck/pkg/deck"
	"github.com/newsdeck/newsdeck/pkg/domain"
	"github.com/newsdeck/newsdeck/pkg/nlp"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/analyzer.go -pkg mocks -skip-ensure -fmt goimports . Analyzer
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/deck_generator.go -pkg mocks -skip-ensure -fmt goimports . DeckGenerator
//go:generate moq -out mocks/enhancer.go -pkg mocks -skip-ensure -fmt goimports . Enhancer

// Scheduler periodically refreshes configured queries: fetch articles,
// run the analysis pipeline, persist results and rebuild the insight deck
type Scheduler struct {
	fetcher    Fetcher
	analyzer   Analyzer
	store      Store
	deck       DeckGenerator
	enhancer   Enhancer
	interval   time.Duration
	queries    []string
	pageSize   int
	maxWorkers int
	wg         sync.WaitGroup
	cancel     context.CancelFunc
	dbMutex    sync.Mutex // serialize database writes
}

// Fetcher interface for pulling articles from news sources. Forget drops
// any cached result for the query so the next Fetch goes to the sources.
type Fetcher interface {
	Fetch(ctx context.Context, query string, limit int) ([]domain.Article, error)
	Forget(query string)
}

// Analyzer interface for the analysis pipeline
type Analyzer interface {
	ProcessAll(ctx context.Context, articles []domain.Article) ([]domain.AnalyzedArticle, error)
}

// Store interface for persistence operations the scheduler needs
type Store interface {
	CreateArticle(ctx context.Context, article *domain.Article) error
	UpdateInsight(ctx context.Context, articleID string, insight domain.Insight) error
	GetAnalyzed(ctx context.Context, minScore float64, limit int) ([]domain.AnalyzedArticle, error)
}

// DeckGenerator interface for rebuilding the insight deck
type DeckGenerator interface {
	Generate(analyzed []domain.AnalyzedArticle) (jsonPath, mdPath string, err error)
}

// Enhancer interface for optional LLM summary rewriting
type Enhancer interface {
	Enhance(ctx context.Context, article domain.Article, insight domain.Insight) (string, error)
}

// deckLimit caps how many analyzed articles feed the deck rebuild
const deckLimit = 100

// Config holds scheduler configuration
type Config struct {
	UpdateInterval time.Duration
	Queries        []string
	PageSize       int
	MaxWorkers     int
}

// NewScheduler creates a new scheduler instance. The enhancer may be nil,
// summaries then stay extractive.
func NewScheduler(fetcher Fetcher, analyzer Analyzer, store Store, deckGen DeckGenerator, enhancer Enhancer, cfg Config) *Scheduler {
	if cfg.UpdateInterval == 0 {
		cfg.UpdateInterval = time.Hour
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = 25
	}
	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = 4
	}

	return &Scheduler{
		fetcher:    fetcher,
		analyzer:   analyzer,
		store:      store,
		deck:       deckGen,
		enhancer:   enhancer,
		interval:   cfg.UpdateInterval,
		queries:    cfg.Queries,
		pageSize:   cfg.PageSize,
		maxWorkers: cfg.MaxWorkers,
	}
}

// Start begins the periodic refresh worker
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.refreshWorker(ctx)

	lgr.Printf("[INFO] scheduler started, interval %v, %d queries", s.interval, len(s.queries))
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// refreshWorker runs a full refresh on start and then on every tick
func (s *Scheduler) refreshWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// run immediately on start
	s.refreshAll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refreshAll(ctx)
		}
	}
}

// refreshAll processes every configured query and rebuilds the deck
func (s *Scheduler) refreshAll(ctx context.Context) {
	if len(s.queries) == 0 {
		lgr.Printf("[DEBUG] no queries configured, skipping refresh")
		return
	}

	lgr.Printf("[INFO] refreshing %d queries", len(s.queries))

	// worker pool over queries, writes serialized by dbMutex
	sem := make(chan struct{}, s.maxWorkers)
	var wg sync.WaitGroup

	for _, q := range s.queries {
		wg.Add(1)
		go func(query string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			if _, err := s.refreshQuery(ctx, query); err != nil {
				lgr.Printf("[ERROR] refresh %q failed: %v", query, err)
			}
		}(q)
	}

	wg.Wait()
	s.rebuildDeck(ctx)
	lgr.Printf("[INFO] refresh completed")
}

// RefreshQuery forces a fresh pass for one query: any cached fetch result
// is dropped first, then articles are fetched, analyzed and persisted.
// Returns how many articles were stored. Used by the API and the one-shot
// mode, the periodic loop goes through refreshQuery and keeps the cache.
func (s *Scheduler) RefreshQuery(ctx context.Context, query string) (int, error) {
	s.fetcher.Forget(query)
	return s.refreshQuery(ctx, query)
}

// refreshQuery fetches, analyzes and persists articles for one query.
func (s *Scheduler) refreshQuery(ctx context.Context, query string) (int, error) {
	lgr.Printf("[DEBUG] refreshing query: %s", query)

	articles, err := s.fetcher.Fetch(ctx, query, s.pageSize)
	if err != nil {
		return 0, fmt.Errorf("fetch %q: %w", query, err)
	}
	if len(articles) == 0 {
		lgr.Printf("[INFO] no articles for query %q", query)
		return 0, nil
	}

	analyzed, err := s.analyzer.ProcessAll(ctx, articles)
	if err != nil {
		if errors.Is(err, nlp.ErrNoArticles) {
			return 0, nil
		}
		return 0, fmt.Errorf("analyze %q: %w", query, err)
	}

	stored := 0
	for i := range analyzed {
		s.persistArticle(ctx, &analyzed[i])
		stored++
	}

	lgr.Printf("[INFO] stored %d articles for query %q", stored, query)
	return stored, nil
}

// persistArticle enhances the summary when an enhancer is configured and
// writes the article with its insight
func (s *Scheduler) persistArticle(ctx context.Context, a *domain.AnalyzedArticle) {
	if s.enhancer != nil && a.Insight.Summary != "" {
		if enhanced, err := s.enhancer.Enhance(ctx, a.Article, a.Insight); err == nil {
			a.Insight.Summary = enhanced
		} else {
			lgr.Printf("[WARN] summary enhancement failed for %q, keeping extractive: %v", a.Article.Title, err)
		}
	}

	s.dbMutex.Lock()
	defer s.dbMutex.Unlock()

	if err := s.store.CreateArticle(ctx, &a.Article); err != nil {
		lgr.Printf("[ERROR] failed to store article %q: %v", a.Article.Title, err)
		return
	}
	// CreateArticle resolves the id of an already known URL, the insight
	// update has to use the resolved id
	if err := s.store.UpdateInsight(ctx, a.Article.ID, a.Insight); err != nil {
		lgr.Printf("[ERROR] failed to store insight for %q: %v", a.Article.Title, err)
	}
}

// rebuildDeck regenerates the deck from the stored analysis results
func (s *Scheduler) rebuildDeck(ctx context.Context) {
	analyzed, err := s.store.GetAnalyzed(ctx, 0, deckLimit)
	if err != nil {
		lgr.Printf("[ERROR] failed to load analyzed articles for deck: %v", err)
		return
	}

	jsonPath, mdPath, err := s.deck.Generate(analyzed)
	if err != nil {
		if errors.Is(err, deck.ErrNoArticles) {
			lgr.Printf("[DEBUG] nothing analyzed yet, deck skipped")
			return
		}
		lgr.Printf("[ERROR] deck generation failed: %v", err)
		return
	}

	lgr.Printf("[INFO] deck written: %s, %s", jsonPath, mdPath)
}

// RefreshNow triggers an immediate refresh of all queries, used by the
// API. Cached fetch results are dropped first so new articles can surface
// inside the same day.
func (s *Scheduler) RefreshNow(ctx context.Context) error {
	lgr.Printf("[INFO] triggered immediate refresh")
	for _, q := range s.queries {
		s.fetcher.Forget(q)
	}
	s.refreshAll(ctx)
	return nil
}

// BuildDeckNow regenerates the deck on demand and returns the output paths
func (s *Scheduler) BuildDeckNow(ctx context.Context) (jsonPath, mdPath string, err error) {
	analyzed, err := s.store.GetAnalyzed(ctx, 0, deckLimit)
	if err != nil {
		return "", "", fmt.Errorf("load analyzed articles: %w", err)
	}
	return s.deck.Generate(analyzed)
}
