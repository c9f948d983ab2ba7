package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/newsdeck/newsdeck/pkg/deck"
	"github.com/newsdeck/newsdeck/pkg/domain"
	"github.com/newsdeck/newsdeck/pkg/repository"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// statusHandler returns server status and article counts
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GetStats(r.Context())
	if err != nil {
		RenderError(w, r, fmt.Errorf("get stats: %w", err), http.StatusInternalServerError)
		return
	}

	status := map[string]interface{}{
		"status":   "ok",
		"version":  s.version,
		"time":     time.Now().UTC(),
		"articles": stats.Total,
		"analyzed": stats.Analyzed,
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// articlesHandler returns a page of stored articles, optionally filtered
// by primary category
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)

	if cat := r.URL.Query().Get("category"); cat != "" {
		s.articlesByCategory(w, r, domain.Category(cat), limit)
		return
	}

	articles, err := s.db.GetArticles(r.Context(), limit, offset)
	if err != nil {
		RenderError(w, r, fmt.Errorf("get articles: %w", err), http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"articles": articles,
		"count":    len(articles),
	})
}

// articlesByCategory returns analyzed articles for one category, ranked
// by relevance
func (s *Server) articlesByCategory(w http.ResponseWriter, r *http.Request, category domain.Category, limit int) {
	if !validCategory(category) {
		RenderError(w, r, fmt.Errorf("unknown category %q", category), http.StatusBadRequest)
		return
	}

	articles, err := s.db.GetArticlesByCategory(r.Context(), category, limit)
	if err != nil {
		RenderError(w, r, fmt.Errorf("get articles by category: %w", err), http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"articles": articles,
		"count":    len(articles),
	})
}

func validCategory(c domain.Category) bool {
	if c == domain.CategoryOther {
		return true
	}
	for _, known := range domain.Taxonomy {
		if c == known {
			return true
		}
	}
	return false
}

// articleHandler returns a single article by id
func (s *Server) articleHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	article, err := s.db.GetArticle(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RenderError(w, r, fmt.Errorf("article %s not found", id), http.StatusNotFound)
			return
		}
		RenderError(w, r, fmt.Errorf("get article: %w", err), http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusOK, article)
}

// insightHandler returns the analysis result of one article
func (s *Server) insightHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	insight, err := s.db.GetInsight(r.Context(), id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		RenderError(w, r, fmt.Errorf("article %s not found", id), http.StatusNotFound)
		return
	case errors.Is(err, repository.ErrNotAnalyzed):
		RenderError(w, r, err, http.StatusNotFound)
		return
	case err != nil:
		RenderError(w, r, fmt.Errorf("get insight: %w", err), http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusOK, insight)
}

// refreshHandler triggers an asynchronous refresh, either of a single
// query passed as ?query= or of all configured queries
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	// refresh outlives the request
	ctx := context.WithoutCancel(r.Context())
	go func() {
		var err error
		if query != "" {
			_, err = s.scheduler.RefreshQuery(ctx, query)
		} else {
			err = s.scheduler.RefreshNow(ctx)
		}
		if err != nil {
			lgr.Printf("[ERROR] triggered refresh failed: %v", err)
		}
	}()

	RenderJSON(w, r, http.StatusAccepted, map[string]string{"status": "refresh started"})
}

// deckHandler rebuilds the insight deck and returns the output paths
func (s *Server) deckHandler(w http.ResponseWriter, r *http.Request) {
	jsonPath, mdPath, err := s.scheduler.BuildDeckNow(r.Context())
	if err != nil {
		if errors.Is(err, deck.ErrNoArticles) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, fmt.Errorf("build deck: %w", err), http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusCreated, map[string]string{
		"json":     jsonPath,
		"markdown": mdPath,
	})
}

// pageParams reads limit and offset query parameters with sane bounds
func pageParams(r *http.Request) (limit, offset int) {
	limit = defaultPageLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
