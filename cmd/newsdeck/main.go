package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/newsdeck/newsdeck/pkg/config"
	"github.com/newsdeck/newsdeck/pkg/deck"
	"github.com/newsdeck/newsdeck/pkg/fetch"
	"github.com/newsdeck/newsdeck/pkg/llm"
	"github.com/newsdeck/newsdeck/pkg/nlp"
	"github.com/newsdeck/newsdeck/pkg/repository"
	"github.com/newsdeck/newsdeck/pkg/scheduler"
	"github.com/newsdeck/newsdeck/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Query  string `short:"q" long:"query" description:"run one query, write the deck and exit"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

const userAgent = "Newsdeck/1.0"

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	setupLog(opts.Debug, opts.NoColor, cfg.Fetch.NewsAPIKey, cfg.Fetch.GNewsKey, cfg.LLM.APIKey)

	log.Printf("[INFO] starting newsdeck version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err = run(ctx, cfg, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] newsdeck failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components and starts either one-shot or server mode
func run(ctx context.Context, cfg *config.Config, opts Opts) error {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	fetcher, err := makeFetcher(cfg)
	if err != nil {
		return fmt.Errorf("init fetcher: %w", err)
	}

	lang, err := nlp.NewLanguage(cfg.NLP.Model)
	if err != nil {
		return fmt.Errorf("init language: %w", err)
	}
	pipeline := nlp.NewPipeline(lang, nlp.PipelineConfig{
		TopPhrases:   cfg.NLP.TopPhrases,
		MaxSentences: cfg.NLP.MaxSentences,
		Workers:      cfg.NLP.Workers,
	})

	deckGen := deck.NewGenerator(cfg.Deck)

	var enhancer scheduler.Enhancer
	if cfg.LLM.Enabled {
		enhancer = llm.NewEnhancer(cfg.LLM)
		log.Printf("[INFO] llm summary enhancement enabled, model %s", cfg.LLM.Model)
	}

	sched := scheduler.NewScheduler(fetcher, pipeline, repos.Article, deckGen, enhancer, scheduler.Config{
		UpdateInterval: time.Duration(cfg.Schedule.UpdateInterval) * time.Minute,
		Queries:        cfg.Schedule.Queries,
		PageSize:       cfg.Fetch.PageSize,
		MaxWorkers:     cfg.NLP.Workers,
	})

	// one-shot mode: refresh a single query, write the deck and exit
	if opts.Query != "" {
		return runOnce(ctx, sched, opts.Query)
	}

	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, repos.Article, sched, revision, opts.Debug)
	return srv.Run(ctx)
}

// runOnce handles the --query mode
func runOnce(ctx context.Context, sched *scheduler.Scheduler, query string) error {
	count, err := sched.RefreshQuery(ctx, query)
	if err != nil {
		return fmt.Errorf("refresh query: %w", err)
	}
	log.Printf("[INFO] processed %d articles for %q", count, query)

	jsonPath, mdPath, err := sched.BuildDeckNow(ctx)
	if err != nil {
		return fmt.Errorf("build deck: %w", err)
	}
	log.Printf("[INFO] deck written: %s, %s", jsonPath, mdPath)
	return nil
}

// makeFetcher assembles the fetcher from the configured sources
func makeFetcher(cfg *config.Config) (*fetch.Fetcher, error) {
	var sources []fetch.Source
	if cfg.Fetch.NewsAPIKey != "" {
		sources = append(sources, fetch.NewNewsAPISource(cfg.Fetch.NewsAPIKey, cfg.Fetch.Timeout))
	}
	if cfg.Fetch.GNewsKey != "" {
		sources = append(sources, fetch.NewGNewsSource(cfg.Fetch.GNewsKey, cfg.Fetch.Timeout))
	}
	if len(cfg.Fetch.Feeds) > 0 {
		sources = append(sources, fetch.NewFeedSource(cfg.Fetch.Feeds, cfg.Fetch.Timeout, userAgent))
	}
	if len(sources) == 0 {
		log.Printf("[WARN] no news sources configured, refreshes will return nothing")
	}

	var extractor fetch.ContentExtractor
	if cfg.Fetch.ExtractContent {
		extractor = fetch.NewExtractor(cfg.Fetch.Timeout, userAgent)
	}

	cache, err := fetch.NewCache(cfg.Fetch.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("init fetch cache: %w", err)
	}

	return fetch.NewFetcher(sources, extractor, cache)
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
