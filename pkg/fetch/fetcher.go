package fetch

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/newsdeck/newsdeck/pkg/domain"
)

// size of the cross-query seen-URL window
const seenURLCapacity = 4096

// ContentExtractor fills in full article text for articles that arrived
// without content.
type ContentExtractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Fetcher fans a query out to every configured source, de-duplicates the
// combined result by URL, fills missing content and caches the final list
// per query per day. Transient source failures are retried with backoff,
// a source that keeps failing is skipped rather than failing the batch.
type Fetcher struct {
	sources   []Source
	extractor ContentExtractor
	cache     *Cache
	seen      *lru.Cache[string, struct{}]
	retrier   *repeater.Repeater
}

// NewFetcher creates a fetcher over the given sources. The extractor and
// cache are optional, pass nil to disable content fill-in or caching.
func NewFetcher(sources []Source, extractor ContentExtractor, cache *Cache) (*Fetcher, error) {
	seen, err := lru.New[string, struct{}](seenURLCapacity)
	if err != nil {
		return nil, err
	}
	return &Fetcher{
		sources:   sources,
		extractor: extractor,
		cache:     cache,
		seen:      seen,
		retrier:   repeater.NewBackoff(3, 100*time.Millisecond, repeater.WithMaxDelay(2*time.Second)),
	}, nil
}

// Fetch returns up to maxArticles unique articles for the query, served
// from the daily cache when possible.
func (f *Fetcher) Fetch(ctx context.Context, query string, maxArticles int) ([]domain.Article, error) {
	if f.cache != nil {
		if cached, ok := f.cache.Get(query); ok {
			lgr.Printf("[DEBUG] cache hit for query %q, %d articles", query, len(cached))
			return cached, nil
		}
	}

	perSource := maxArticles
	if len(f.sources) > 1 {
		perSource = maxArticles/len(f.sources) + 1
	}

	var combined []domain.Article
	for _, src := range f.sources {
		var fetched []domain.Article
		err := f.retrier.Do(ctx, func() error {
			var ferr error
			fetched, ferr = src.Fetch(ctx, query, perSource)
			return ferr
		})
		if err != nil {
			lgr.Printf("[WARN] source %s failed for query %q: %v", src.Name(), query, err)
			continue
		}
		lgr.Printf("[DEBUG] source %s returned %d articles for %q", src.Name(), len(fetched), query)
		combined = append(combined, fetched...)
	}

	articles := f.dedupe(combined, maxArticles)
	f.fillContent(ctx, articles)

	if f.cache != nil && len(articles) > 0 {
		if err := f.cache.Put(query, articles); err != nil {
			lgr.Printf("[WARN] failed to cache articles for %q: %v", query, err)
		}
	}
	return articles, nil
}

// dedupe drops articles already seen by URL, within this batch and across
// recent batches, and truncates to the limit.
func (f *Fetcher) dedupe(articles []domain.Article, limit int) []domain.Article {
	var unique []domain.Article
	inBatch := map[string]struct{}{}
	for _, a := range articles {
		if a.URL == "" {
			continue
		}
		if _, dup := inBatch[a.URL]; dup {
			continue
		}
		if f.seen.Contains(a.URL) {
			continue
		}
		inBatch[a.URL] = struct{}{}
		unique = append(unique, a)
		if len(unique) >= limit {
			break
		}
	}
	for _, a := range unique {
		f.seen.Add(a.URL, struct{}{})
	}
	return unique
}

// fillContent extracts full text for articles that came back without it.
// Extraction failures leave the article as is, the description still
// feeds the pipeline.
func (f *Fetcher) fillContent(ctx context.Context, articles []domain.Article) {
	if f.extractor == nil {
		return
	}
	for i := range articles {
		if articles[i].Content != "" {
			continue
		}
		text, err := f.extractor.Extract(ctx, articles[i].URL)
		if err != nil {
			lgr.Printf("[WARN] content extraction failed for %s: %v", articles[i].URL, err)
			continue
		}
		articles[i].Content = text
	}
}

// Forget drops the daily cache entry for the query and clears the
// cross-batch seen-URL memory, so the next Fetch goes back to the
// sources. This is the forced-refresh path.
func (f *Fetcher) Forget(query string) {
	f.seen.Purge()
	if f.cache == nil {
		return
	}
	if err := f.cache.Remove(query); err != nil {
		lgr.Printf("[WARN] failed to drop cache entry for %q: %v", query, err)
	}
}
