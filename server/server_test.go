package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdeck/newsdeck/pkg/deck"
	"github.com/newsdeck/newsdeck/pkg/domain"
	"github.com/newsdeck/newsdeck/pkg/repository"
	"github.com/newsdeck/newsdeck/server/mocks"
)

func testMocks() (*mocks.ConfigProviderMock, *mocks.DatabaseMock, *mocks.SchedulerMock) {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return "127.0.0.1:0", 30 * time.Second
		},
	}
	db := &mocks.DatabaseMock{
		GetArticlesFunc: func(_ context.Context, _, _ int) ([]domain.Article, error) {
			return []domain.Article{{ID: "a1", Title: "First"}}, nil
		},
		GetArticlesByCategoryFunc: func(_ context.Context, category domain.Category, _ int) ([]domain.AnalyzedArticle, error) {
			return []domain.AnalyzedArticle{{
				Article: domain.Article{ID: "a1", Title: "First"},
				Insight: domain.Insight{PrimaryCategory: category, RelevanceScore: 0.8},
			}}, nil
		},
		GetArticleFunc: func(_ context.Context, id string) (*domain.Article, error) {
			return &domain.Article{ID: id, Title: "First"}, nil
		},
		GetInsightFunc: func(_ context.Context, _ string) (*domain.Insight, error) {
			return &domain.Insight{PrimaryCategory: domain.CategoryMerger, RelevanceScore: 0.8}, nil
		},
		GetStatsFunc: func(_ context.Context) (repository.Stats, error) {
			return repository.Stats{Total: 5, Analyzed: 3}, nil
		},
	}
	sched := &mocks.SchedulerMock{
		RefreshNowFunc:   func(_ context.Context) error { return nil },
		RefreshQueryFunc: func(_ context.Context, _ string) (int, error) { return 1, nil },
		BuildDeckNowFunc: func(_ context.Context) (string, string, error) {
			return "decks/deck.json", "decks/deck.md", nil
		},
	}
	return cfg, db, sched
}

func startTestServer(t *testing.T, db *mocks.DatabaseMock, sched *mocks.SchedulerMock) *httptest.Server {
	t.Helper()
	cfg, _, _ := testMocks()
	srv := New(cfg, db, sched, "test", false)
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, target interface{}) int {
	t.Helper()
	resp, err := http.Get(url) //nolint:gosec // test url
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck // test cleanup
	if target != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
	}
	return resp.StatusCode
}

func TestServer_Ping(t *testing.T) {
	_, db, sched := testMocks()
	ts := startTestServer(t, db, sched)

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck // test cleanup

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", strings.TrimSpace(string(body)))
}

func TestServer_Status(t *testing.T) {
	_, db, sched := testMocks()
	ts := startTestServer(t, db, sched)

	var status map[string]interface{}
	code := getJSON(t, ts.URL+"/api/v1/status", &status)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test", status["version"])
	assert.InDelta(t, 5, status["articles"], 0.1)
	assert.InDelta(t, 3, status["analyzed"], 0.1)
}

func TestServer_Status_DBError(t *testing.T) {
	_, db, sched := testMocks()
	db.GetStatsFunc = func(_ context.Context) (repository.Stats, error) {
		return repository.Stats{}, fmt.Errorf("db closed")
	}
	ts := startTestServer(t, db, sched)

	var errResp map[string]string
	code := getJSON(t, ts.URL+"/api/v1/status", &errResp)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Contains(t, errResp["error"], "db closed")
}

func TestServer_Articles(t *testing.T) {
	_, db, sched := testMocks()
	ts := startTestServer(t, db, sched)

	var page struct {
		Articles []domain.Article `json:"articles"`
		Count    int              `json:"count"`
	}
	code := getJSON(t, ts.URL+"/api/v1/articles", &page)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, page.Count)
	require.Len(t, page.Articles, 1)
	assert.Equal(t, "a1", page.Articles[0].ID)

	// defaults applied
	require.Len(t, db.GetArticlesCalls(), 1)
	assert.Equal(t, defaultPageLimit, db.GetArticlesCalls()[0].Limit)
	assert.Equal(t, 0, db.GetArticlesCalls()[0].Offset)
}

func TestServer_Articles_PageParams(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{name: "explicit", query: "?limit=10&offset=20", wantLimit: 10, wantOffset: 20},
		{name: "limit capped", query: "?limit=5000", wantLimit: maxPageLimit, wantOffset: 0},
		{name: "garbage ignored", query: "?limit=abc&offset=-5", wantLimit: defaultPageLimit, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, db, sched := testMocks()
			ts := startTestServer(t, db, sched)

			code := getJSON(t, ts.URL+"/api/v1/articles"+tt.query, nil)
			assert.Equal(t, http.StatusOK, code)
			require.Len(t, db.GetArticlesCalls(), 1)
			assert.Equal(t, tt.wantLimit, db.GetArticlesCalls()[0].Limit)
			assert.Equal(t, tt.wantOffset, db.GetArticlesCalls()[0].Offset)
		})
	}
}

func TestServer_Articles_ByCategory(t *testing.T) {
	_, db, sched := testMocks()
	ts := startTestServer(t, db, sched)

	var page struct {
		Articles []domain.AnalyzedArticle `json:"articles"`
		Count    int                      `json:"count"`
	}
	code := getJSON(t, ts.URL+"/api/v1/articles?category=merger&limit=10", &page)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, page.Count)
	require.Len(t, db.GetArticlesByCategoryCalls(), 1)
	assert.Equal(t, domain.CategoryMerger, db.GetArticlesByCategoryCalls()[0].Category)
	assert.Equal(t, 10, db.GetArticlesByCategoryCalls()[0].Limit)
	assert.Empty(t, db.GetArticlesCalls(), "category filter should not hit the unfiltered query")

	t.Run("other accepted", func(t *testing.T) {
		code := getJSON(t, ts.URL+"/api/v1/articles?category=other", nil)
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		var errResp map[string]string
		code := getJSON(t, ts.URL+"/api/v1/articles?category=gossip", &errResp)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, errResp["error"], "unknown category")
	})
}

func TestServer_Article(t *testing.T) {
	_, db, sched := testMocks()
	ts := startTestServer(t, db, sched)

	var article domain.Article
	code := getJSON(t, ts.URL+"/api/v1/articles/a1", &article)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "a1", article.ID)

	t.Run("not found", func(t *testing.T) {
		db.GetArticleFunc = func(_ context.Context, id string) (*domain.Article, error) {
			return nil, fmt.Errorf("get article: %w", sql.ErrNoRows)
		}
		var errResp map[string]string
		code := getJSON(t, ts.URL+"/api/v1/articles/nope", &errResp)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Contains(t, errResp["error"], "not found")
	})
}

func TestServer_Insight(t *testing.T) {
	_, db, sched := testMocks()
	ts := startTestServer(t, db, sched)

	var insight domain.Insight
	code := getJSON(t, ts.URL+"/api/v1/articles/a1/insight", &insight)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, domain.CategoryMerger, insight.PrimaryCategory)
	require.Len(t, db.GetInsightCalls(), 1)
	assert.Equal(t, "a1", db.GetInsightCalls()[0].ArticleID)

	t.Run("not analyzed", func(t *testing.T) {
		db.GetInsightFunc = func(_ context.Context, _ string) (*domain.Insight, error) {
			return nil, repository.ErrNotAnalyzed
		}
		var errResp map[string]string
		code := getJSON(t, ts.URL+"/api/v1/articles/a1/insight", &errResp)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Contains(t, errResp["error"], "not analyzed")
	})

	t.Run("unknown article", func(t *testing.T) {
		db.GetInsightFunc = func(_ context.Context, _ string) (*domain.Insight, error) {
			return nil, fmt.Errorf("get insight: %w", sql.ErrNoRows)
		}
		code := getJSON(t, ts.URL+"/api/v1/articles/nope/insight", nil)
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("db failure", func(t *testing.T) {
		db.GetInsightFunc = func(_ context.Context, _ string) (*domain.Insight, error) {
			return nil, fmt.Errorf("db closed")
		}
		code := getJSON(t, ts.URL+"/api/v1/articles/a1/insight", nil)
		assert.Equal(t, http.StatusInternalServerError, code)
	})
}

func TestServer_Refresh(t *testing.T) {
	_, db, sched := testMocks()
	ts := startTestServer(t, db, sched)

	resp, err := http.Post(ts.URL+"/api/v1/refresh", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck // test cleanup
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	// refresh runs asynchronously
	assert.Eventually(t, func() bool {
		return len(sched.RefreshNowCalls()) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestServer_Refresh_SingleQuery(t *testing.T) {
	_, db, sched := testMocks()
	ts := startTestServer(t, db, sched)

	resp, err := http.Post(ts.URL+"/api/v1/refresh?query=fintech", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck // test cleanup
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	assert.Eventually(t, func() bool {
		return len(sched.RefreshQueryCalls()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "fintech", sched.RefreshQueryCalls()[0].Query)
	assert.Empty(t, sched.RefreshNowCalls())
}

func TestServer_Deck(t *testing.T) {
	_, db, sched := testMocks()
	ts := startTestServer(t, db, sched)

	resp, err := http.Post(ts.URL+"/api/v1/deck", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck // test cleanup
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var paths map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&paths))
	assert.Equal(t, "decks/deck.json", paths["json"])
	assert.Equal(t, "decks/deck.md", paths["markdown"])
}

func TestServer_Deck_Empty(t *testing.T) {
	_, db, sched := testMocks()
	sched.BuildDeckNowFunc = func(_ context.Context) (string, string, error) {
		return "", "", fmt.Errorf("build: %w", deck.ErrNoArticles)
	}
	ts := startTestServer(t, db, sched)

	resp, err := http.Post(ts.URL+"/api/v1/deck", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck // test cleanup
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_RunShutdown(t *testing.T) {
	cfg, db, sched := testMocks()
	srv := New(cfg, db, sched, "test", true)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// give the listener a moment to come up, then stop
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
