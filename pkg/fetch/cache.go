package fetch

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/newsdeck/newsdeck/pkg/domain"
)

// Cache stores fetch results as one UTF-8 JSON file per query per day, so
// repeated dashboard requests within a day avoid refetching. The file
// shape is {query, date, articles}.
type Cache struct {
	dir string
	now func() time.Time
}

// NewCache creates a file cache rooted at dir, creating it when missing.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create cache dir %s: %w", dir, err)
	}
	return &Cache{dir: dir, now: time.Now}, nil
}

// Get returns today's cached articles for the query, ok=false on a miss.
// A corrupt cache file counts as a miss, not an error.
func (c *Cache) Get(query string) (articles []domain.Article, ok bool) {
	data, err := os.ReadFile(c.path(query))
	if err != nil {
		return nil, false
	}

	var cached domain.CachedQuery
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false
	}
	return cached.Articles, true
}

// Put writes today's articles for the query.
func (c *Cache) Put(query string, articles []domain.Article) error {
	cached := domain.CachedQuery{
		Query:    query,
		Date:     c.now(),
		Articles: articles,
	}
	data, err := json.MarshalIndent(cached, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	if err := os.WriteFile(c.path(query), data, 0o600); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return nil
}

// Remove deletes today's cache entry for the query. A missing entry is
// not an error.
func (c *Cache) Remove(query string) error {
	if err := os.Remove(c.path(query)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove cache file: %w", err)
	}
	return nil
}

var unsafePathRe = regexp.MustCompile(`[^a-z0-9_]+`)

// path builds the per-query per-day file name, e.g.
// artificial_intelligence_20250115.json
func (c *Cache) path(query string) string {
	name := strings.ToLower(strings.TrimSpace(query))
	name = unsafePathRe.ReplaceAllString(strings.ReplaceAll(name, " ", "_"), "")
	if name == "" {
		name = "query"
	}
	return filepath.Join(c.dir, fmt.Sprintf("%s_%s.json", name, c.now().Format("20060102")))
}
