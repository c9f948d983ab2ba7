package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s

database:
  dsn: "file:test.db"
  max_open_conns: 20

fetch:
  newsapi_key: "test-key"
  page_size: 10
  cache_dir: "/tmp/cache"
  feeds:
    - https://example.com/feed.xml

nlp:
  model: large
  top_phrases: 8
  workers: 2

llm:
  enabled: true
  endpoint: "http://localhost:11434/v1"
  model: "llama3"

deck:
  title: "Weekly Briefing"
  max_slides: 5
  min_score: 0.4

schedule:
  update_interval: 15
  queries:
    - "artificial intelligence"
    - "mergers"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:test.db", cfg.Database.DSN)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, "test-key", cfg.Fetch.NewsAPIKey)
	assert.Equal(t, 10, cfg.Fetch.PageSize)
	assert.Equal(t, []string{"https://example.com/feed.xml"}, cfg.Fetch.Feeds)
	assert.Equal(t, "large", cfg.NLP.Model)
	assert.Equal(t, 8, cfg.NLP.TopPhrases)
	assert.Equal(t, 2, cfg.NLP.Workers)
	assert.True(t, cfg.LLM.Enabled)
	assert.Equal(t, "llama3", cfg.LLM.Model)
	assert.Equal(t, "Weekly Briefing", cfg.Deck.Title)
	assert.Equal(t, 5, cfg.Deck.MaxSlides)
	assert.InDelta(t, 0.4, cfg.Deck.MinScore, 0.0001)
	assert.Equal(t, 15, cfg.Schedule.UpdateInterval)
	assert.Equal(t, []string{"artificial intelligence", "mergers"}, cfg.Schedule.Queries)
	assert.True(t, cfg.HasSources())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
fetch:
  gnews_key: "token"
`))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:newsdeck.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 25, cfg.Fetch.PageSize)
	assert.Equal(t, "data/cache", cfg.Fetch.CacheDir)
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, "small", cfg.NLP.Model)
	assert.Equal(t, 5, cfg.NLP.TopPhrases)
	assert.Equal(t, 3, cfg.NLP.MaxSentences)
	assert.Equal(t, 4, cfg.NLP.Workers)
	assert.False(t, cfg.LLM.Enabled)
	assert.Equal(t, "News Insights", cfg.Deck.Title)
	assert.Equal(t, "decks", cfg.Deck.OutputDir)
	assert.Equal(t, 3, cfg.Deck.MaxSlides)
	assert.Equal(t, 60, cfg.Schedule.UpdateInterval)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_NEWSAPI_KEY", "secret-from-env")

	cfg, err := Load(writeConfig(t, `
fetch:
  newsapi_key: "${TEST_NEWSAPI_KEY}"
`))
	require.NoError(t, err)
	assert.Equal(t, "secret-from-env", cfg.Fetch.NewsAPIKey)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "bad nlp model",
			content: "nlp:\n  model: huge\n",
			errMsg:  "nlp.model",
		},
		{
			name:    "llm enabled without endpoint",
			content: "llm:\n  enabled: true\n  model: llama3\n",
			errMsg:  "llm.endpoint",
		},
		{
			name:    "llm enabled without model",
			content: "llm:\n  enabled: true\n  endpoint: http://localhost:11434/v1\n",
			errMsg:  "llm.model",
		},
		{
			name:    "deck min_score out of range",
			content: "deck:\n  min_score: 1.5\n",
			errMsg:  "deck.min_score",
		},
		{
			name:    "invalid yaml",
			content: "server: [broken\n",
			errMsg:  "parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestConfig_HasSources(t *testing.T) {
	cfg, err := Load(writeConfig(t, ``))
	require.NoError(t, err)
	assert.False(t, cfg.HasSources())

	cfg.Fetch.Feeds = []string{"https://example.com/rss"}
	assert.True(t, cfg.HasSources())
}
