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

// NewsAPISource fetches articles from the NewsAPI "everything" endpoint.
type NewsAPISource struct {
	apiKey  string
	baseURL string
	client  *http.Client
	now     func() time.Time
}

// NewNewsAPISource creates a NewsAPI client.
func NewNewsAPISource(apiKey string, timeout time.Duration) *NewsAPISource {
	return &NewsAPISource{
		apiKey:  apiKey,
		baseURL: "https://newsapi.org/v2",
		client:  &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

// Name implements Source.
func (s *NewsAPISource) Name() string { return "newsapi" }

// newsAPIResponse mirrors the wire format. Upstream records are not
// contractually complete, every field defaults to empty on absence.
type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Content     string `json:"content"`
	} `json:"articles"`
}

// Fetch queries NewsAPI for recent English articles sorted by publish time.
func (s *NewsAPISource) Fetch(ctx context.Context, query string, limit int) ([]domain.Article, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("apiKey", s.apiKey)
	params.Set("language", "en")
	params.Set("pageSize", strconv.Itoa(limit))
	params.Set("sortBy", "publishedAt")
	params.Set("from", s.now().Add(-searchWindow).Format("2006-01-02"))

	reqURL := s.baseURL + "/everything?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create newsapi request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi returned status %d", resp.StatusCode)
	}

	var decoded newsAPIResponse
	if err := decodeJSON(resp.Body, &decoded); err != nil {
		return nil, fmt.Errorf("decode newsapi response: %w", err)
	}

	articles := make([]domain.Article, 0, len(decoded.Articles))
	for _, a := range decoded.Articles {
		if a.URL == "" {
			lgr.Printf("[DEBUG] skipping newsapi article without url: %q", a.Title)
			continue
		}
		articles = append(articles, domain.Article{
			ID:          newArticleID(),
			Title:       a.Title,
			Content:     a.Content,
			Description: a.Description,
			URL:         a.URL,
			Source:      a.Source.Name,
			PublishedAt: parseTimestamp(a.PublishedAt),
		})
	}
	return articles, nil
}
