package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/newsdeck/newsdeck/pkg/domain"
)

// GNewsSource fetches articles from the GNews search endpoint.
type GNewsSource struct {
	apiKey  string
	baseURL string
	client  *http.Client
	now     func() time.Time
}

// NewGNewsSource creates a GNews client.
func NewGNewsSource(apiKey string, timeout time.Duration) *GNewsSource {
	return &GNewsSource{
		apiKey:  apiKey,
		baseURL: "https://gnews.io/api/v4",
		client:  &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

// Name implements Source.
func (s *GNewsSource) Name() string { return "gnews" }

type gnewsResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// Fetch queries GNews for recent English articles sorted by publish time.
func (s *GNewsSource) Fetch(ctx context.Context, query string, limit int) ([]domain.Article, error) {
	now := s.now()
	params := url.Values{}
	params.Set("q", query)
	params.Set("token", s.apiKey)
	params.Set("lang", "en")
	params.Set("max", strconv.Itoa(limit))
	params.Set("from", now.Add(-searchWindow).Format("2006-01-02T15:04:05Z"))
	params.Set("to", now.Format("2006-01-02T15:04:05Z"))
	params.Set("sortby", "publishedAt")

	reqURL := s.baseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create gnews request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gnews request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gnews returned status %d", resp.StatusCode)
	}

	var decoded gnewsResponse
	if err := decodeJSON(resp.Body, &decoded); err != nil {
		return nil, fmt.Errorf("decode gnews response: %w", err)
	}

	articles := make([]domain.Article, 0, len(decoded.Articles))
	for _, a := range decoded.Articles {
		if a.URL == "" {
			lgr.Printf("[DEBUG] skipping gnews article without url: %q", a.Title)
			continue
		}
		source := a.Source.Name
		if source == "" {
			source = "Unknown"
		}
		articles = append(articles, domain.Article{
			ID:          newArticleID(),
			Title:       a.Title,
			Content:     a.Content,
			Description: a.Description,
			URL:         a.URL,
			Source:      source,
			PublishedAt: parseTimestamp(a.PublishedAt),
		})
	}
	return articles, nil
}
