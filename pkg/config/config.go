package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsdeck.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Fetch FetchConfig `yaml:"fetch" json:"fetch" jsonschema:"description=News source configuration"`

	NLP NLPConfig `yaml:"nlp" json:"nlp" jsonschema:"description=Analysis pipeline configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=Optional LLM summary enhancement"`

	Deck DeckConfig `yaml:"deck" json:"deck" jsonschema:"description=Insight deck output configuration"`

	Schedule struct {
		UpdateInterval int      `yaml:"update_interval" json:"update_interval" jsonschema:"default=60,description=Refresh interval in minutes"`
		Queries        []string `yaml:"queries" json:"queries" jsonschema:"description=Search queries refreshed on every cycle"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`
}

// FetchConfig holds news source settings
type FetchConfig struct {
	NewsAPIKey     string        `yaml:"newsapi_key" json:"newsapi_key" jsonschema:"description=NewsAPI key (can use environment variable)"`
	GNewsKey       string        `yaml:"gnews_key" json:"gnews_key" jsonschema:"description=GNews API token (can use environment variable)"`
	Feeds          []string      `yaml:"feeds" json:"feeds" jsonschema:"description=RSS/Atom feed URLs used as an additional source"`
	PageSize       int           `yaml:"page_size" json:"page_size" jsonschema:"default=25,description=Maximum articles requested per source"`
	CacheDir       string        `yaml:"cache_dir" json:"cache_dir" jsonschema:"default=data/cache,description=Directory for daily fetch cache files"`
	ExtractContent bool          `yaml:"extract_content" json:"extract_content" jsonschema:"default=false,description=Fetch and extract full article text"`
	Timeout        time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP timeout per source request"`
}

// NLPConfig holds analysis pipeline settings
type NLPConfig struct {
	Model        string `yaml:"model" json:"model" jsonschema:"default=small,enum=small,enum=large,description=Language model size; large enables statistical NER"`
	TopPhrases   int    `yaml:"top_phrases" json:"top_phrases" jsonschema:"default=5,description=Number of key phrases kept per article"`
	MaxSentences int    `yaml:"max_sentences" json:"max_sentences" jsonschema:"default=3,description=Maximum sentences in extractive summaries"`
	Workers      int    `yaml:"workers" json:"workers" jsonschema:"default=4,description=Concurrent analysis workers"`
}

// LLMConfig holds settings for optional LLM summary enhancement
type LLMConfig struct {
	Enabled      bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable LLM summary enhancement"`
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=300,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt override (optional)"`
}

// DeckConfig holds insight deck output settings
type DeckConfig struct {
	Title        string  `yaml:"title" json:"title" jsonschema:"default=News Insights,description=Deck title"`
	OutputDir    string  `yaml:"output_dir" json:"output_dir" jsonschema:"default=decks,description=Directory where deck files are written"`
	TemplatePath string  `yaml:"template_path" json:"template_path" jsonschema:"description=Markdown template override (optional)"`
	LogoPath     string  `yaml:"logo_path" json:"logo_path" jsonschema:"description=Logo image referenced from the deck (optional)"`
	MaxSlides    int     `yaml:"max_slides" json:"max_slides" jsonschema:"default=3,description=Maximum slides per category section"`
	MinScore     float64 `yaml:"min_score" json:"min_score" jsonschema:"default=0,minimum=0,maximum=1,description=Minimum relevance score for deck inclusion"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:newsdeck.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for fetch
	if cfg.Fetch.PageSize == 0 {
		cfg.Fetch.PageSize = 25
	}
	if cfg.Fetch.CacheDir == "" {
		cfg.Fetch.CacheDir = "data/cache"
	}
	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 30 * time.Second
	}

	// set defaults for nlp
	if cfg.NLP.Model == "" {
		cfg.NLP.Model = "small"
	}
	if cfg.NLP.TopPhrases == 0 {
		cfg.NLP.TopPhrases = 5
	}
	if cfg.NLP.MaxSentences == 0 {
		cfg.NLP.MaxSentences = 3
	}
	if cfg.NLP.Workers == 0 {
		cfg.NLP.Workers = 4
	}

	// set defaults for LLM
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.3
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 300
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}

	// set defaults for deck
	if cfg.Deck.Title == "" {
		cfg.Deck.Title = "News Insights"
	}
	if cfg.Deck.OutputDir == "" {
		cfg.Deck.OutputDir = "decks"
	}
	if cfg.Deck.MaxSlides == 0 {
		cfg.Deck.MaxSlides = 3
	}

	// set defaults for schedule
	if cfg.Schedule.UpdateInterval == 0 {
		cfg.Schedule.UpdateInterval = 60
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate nlp config
	if cfg.NLP.Model != "small" && cfg.NLP.Model != "large" {
		return fmt.Errorf("nlp.model must be small or large, got %q", cfg.NLP.Model)
	}
	if cfg.NLP.TopPhrases < 1 {
		return fmt.Errorf("nlp.top_phrases must be at least 1")
	}
	if cfg.NLP.MaxSentences < 1 {
		return fmt.Errorf("nlp.max_sentences must be at least 1")
	}
	if cfg.NLP.Workers < 1 {
		return fmt.Errorf("nlp.workers must be at least 1")
	}

	// validate LLM config, only when the feature is on
	if cfg.LLM.Enabled {
		if cfg.LLM.Endpoint == "" {
			return fmt.Errorf("llm.endpoint is required when llm is enabled")
		}
		if cfg.LLM.Model == "" {
			return fmt.Errorf("llm.model is required when llm is enabled")
		}
		if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
			return fmt.Errorf("llm.temperature must be between 0 and 2")
		}
	}

	// validate deck config
	if cfg.Deck.MinScore < 0 || cfg.Deck.MinScore > 1 {
		return fmt.Errorf("deck.min_score must be between 0 and 1")
	}
	if cfg.Deck.MaxSlides < 1 {
		return fmt.Errorf("deck.max_slides must be at least 1")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// HasSources reports whether at least one news source is configured
func (c *Config) HasSources() bool {
	return c.Fetch.NewsAPIKey != "" || c.Fetch.GNewsKey != "" || len(c.Fetch.Feeds) > 0
}
