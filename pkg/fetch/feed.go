package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/newsdeck/newsdeck/pkg/domain"
)

// FeedSource reads articles from a fixed set of RSS/Atom feeds, keeping
// items whose title or description mention the query.
type FeedSource struct {
	urls      []string
	client    *http.Client
	userAgent string
}

// NewFeedSource creates a feed-backed source for the given feed URLs.
func NewFeedSource(urls []string, timeout time.Duration, userAgent string) *FeedSource {
	return &FeedSource{
		urls: urls,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Name implements Source.
func (s *FeedSource) Name() string { return "feeds" }

// Fetch parses every configured feed and filters items by the query.
// A single broken feed does not fail the batch.
func (s *FeedSource) Fetch(ctx context.Context, query string, limit int) ([]domain.Article, error) {
	var articles []domain.Article
	var lastErr error

	for _, feedURL := range s.urls {
		if len(articles) >= limit {
			break
		}
		feed, err := s.parse(ctx, feedURL)
		if err != nil {
			lastErr = err
			continue
		}

		for _, item := range feed.Items {
			if len(articles) >= limit {
				break
			}
			if !matchesQuery(item, query) {
				continue
			}
			// feed descriptions and bodies are frequently HTML, strip
			// them down to visible text before the article enters the
			// pipeline
			article := domain.Article{
				ID:          newArticleID(),
				Title:       item.Title,
				Description: HTMLText(item.Description),
				Content:     HTMLText(item.Content),
				URL:         item.Link,
				Source:      feed.Title,
			}
			if item.PublishedParsed != nil {
				article.PublishedAt = *item.PublishedParsed
			} else if item.UpdatedParsed != nil {
				article.PublishedAt = *item.UpdatedParsed
			}
			if article.URL == "" {
				continue
			}
			articles = append(articles, article)
		}
	}

	if len(articles) == 0 && lastErr != nil {
		return nil, fmt.Errorf("all feeds failed: %w", lastErr)
	}
	return articles, nil
}

// parse fetches and parses a single feed.
func (s *FeedSource) parse(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	body, err := s.fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}
	return feed, nil
}

// fetch retrieves content from a URL.
func (s *FeedSource) fetch(ctx context.Context, feedURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	addBrowserHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// matchesQuery checks every query word against the item title and
// description, case-insensitive. An empty query matches everything.
func matchesQuery(item *gofeed.Item, query string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	haystack := strings.ToLower(item.Title + " " + item.Description)
	for _, word := range strings.Fields(query) {
		if !strings.Contains(haystack, word) {
			return false
		}
	}
	return true
}
