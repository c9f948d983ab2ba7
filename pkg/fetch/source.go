// Package fetch implements the article acquisition layer: search-API
// clients, feed readers, full-text extraction and the multi-source
// fetcher with its per-query daily cache.
package fetch

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/newsdeck/newsdeck/pkg/domain"
)

// Source returns articles for a query. Implementations are expected to
// fail soft on per-article problems and hard only on transport errors.
type Source interface {
	Name() string
	Fetch(ctx context.Context, query string, limit int) ([]domain.Article, error)
}

// lookback window for search-API sources
const searchWindow = 7 * 24 * time.Hour

// newArticleID generates a sortable unique article ID.
func newArticleID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// decodeJSON reads and decodes a JSON response body.
func decodeJSON(body io.Reader, v any) error {
	return json.NewDecoder(body).Decode(v)
}

// parseTimestamp parses an upstream timestamp, zero on anything malformed.
// Upstream records are heterogeneous and a bad date must not drop the article.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05Z", "2006-01-02 15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// addBrowserHeaders adds browser-like headers, some upstreams reject
// obviously scripted clients
func addBrowserHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json,application/rss+xml,application/xml;q=0.9,text/html;q=0.7,*/*;q=0.5")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Connection", "keep-alive")
}
