package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/newsdeck/newsdeck/pkg/domain"
)

// ErrNotAnalyzed is returned when an insight is requested for an article
// that has not been processed yet
var ErrNotAnalyzed = errors.New("article not analyzed")

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article row for SQL operations
type articleSQL struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	Description string    `db:"description"`
	URL         string    `db:"url"`
	Source      string    `db:"source"`
	PublishedAt time.Time `db:"published_at"`
	CreatedAt   time.Time `db:"created_at"`

	// insight columns, defaults until the article is processed
	Entities        entitiesSQL   `db:"entities"`
	Categories      categoriesSQL `db:"categories"`
	KeyPhrases      phrasesSQL    `db:"key_phrases"`
	PrimaryCategory string        `db:"primary_category"`
	RelevanceScore  float64       `db:"relevance_score"`
	Summary         string        `db:"summary"`
	AnalyzedAt      *time.Time    `db:"analyzed_at"`
}

// entitiesSQL is a JSON object of label -> entity texts for SQL operations
type entitiesSQL map[domain.EntityLabel][]string

// Value implements driver.Valuer for database storage
func (e entitiesSQL) Value() (driver.Value, error) {
	if e == nil {
		return "{}", nil
	}
	return json.Marshal(e)
}

// Scan implements sql.Scanner for database retrieval
func (e *entitiesSQL) Scan(value interface{}) error {
	if value == nil {
		*e = entitiesSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*e = entitiesSQL{}
		return nil
	}

	return json.Unmarshal(data, e)
}

// categoriesSQL is a JSON array of categories for SQL operations
type categoriesSQL []domain.Category

// Value implements driver.Valuer for database storage
func (c categoriesSQL) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner for database retrieval
func (c *categoriesSQL) Scan(value interface{}) error {
	if value == nil {
		*c = categoriesSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*c = categoriesSQL{}
		return nil
	}

	return json.Unmarshal(data, c)
}

// phrasesSQL is a JSON array of scored key phrases for SQL operations
type phrasesSQL []domain.KeyPhrase

// Value implements driver.Valuer for database storage
func (p phrasesSQL) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner for database retrieval
func (p *phrasesSQL) Scan(value interface{}) error {
	if value == nil {
		*p = phrasesSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*p = phrasesSQL{}
		return nil
	}

	return json.Unmarshal(data, p)
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// CreateArticle inserts an article, updating the stored copy when the URL
// is already known. The article keeps the ID of the stored row.
func (r *ArticleRepository) CreateArticle(ctx context.Context, article *domain.Article) error {
	sqlArticle := &articleSQL{
		ID:          article.ID,
		Title:       article.Title,
		Content:     article.Content,
		Description: article.Description,
		URL:         article.URL,
		Source:      article.Source,
		PublishedAt: article.PublishedAt,
	}

	query := `
		INSERT INTO articles (
			id, title, content, description, url, source, published_at
		) VALUES (
			:id, :title, :content, :description, :url, :source, :published_at
		)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			description = excluded.description,
			source = excluded.source,
			published_at = excluded.published_at
	`
	if _, err := r.db.NamedExecContext(ctx, query, sqlArticle); err != nil {
		return fmt.Errorf("create article: %w", err)
	}

	// on URL conflict the original row keeps its id, pick it up
	var id string
	if err := r.db.GetContext(ctx, &id, "SELECT id FROM articles WHERE url = ?", article.URL); err != nil {
		return fmt.Errorf("get article id: %w", err)
	}
	article.ID = id
	return nil
}

// GetArticle retrieves an article by ID
func (r *ArticleRepository) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	var sqlArticle articleSQL
	err := r.db.GetContext(ctx, &sqlArticle, "SELECT * FROM articles WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	article := toDomainArticle(&sqlArticle)
	return &article, nil
}

// GetArticles retrieves articles ordered by publication time, newest first
func (r *ArticleRepository) GetArticles(ctx context.Context, limit, offset int) ([]domain.Article, error) {
	query := `
		SELECT * FROM articles
		ORDER BY published_at DESC, id
		LIMIT ? OFFSET ?
	`
	var sqlArticles []articleSQL
	if err := r.db.SelectContext(ctx, &sqlArticles, query, limit, offset); err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}

	articles := make([]domain.Article, len(sqlArticles))
	for i := range sqlArticles {
		articles[i] = toDomainArticle(&sqlArticles[i])
	}
	return articles, nil
}

// GetArticlesByCategory retrieves analyzed articles with the given primary
// category, most relevant first
func (r *ArticleRepository) GetArticlesByCategory(ctx context.Context, category domain.Category, limit int) ([]domain.AnalyzedArticle, error) {
	query := `
		SELECT * FROM articles
		WHERE analyzed_at IS NOT NULL AND primary_category = ?
		ORDER BY relevance_score DESC, published_at DESC
		LIMIT ?
	`
	var sqlArticles []articleSQL
	if err := r.db.SelectContext(ctx, &sqlArticles, query, string(category), limit); err != nil {
		return nil, fmt.Errorf("get articles by category: %w", err)
	}
	return toAnalyzed(sqlArticles), nil
}

// GetAnalyzed retrieves analyzed articles with relevance at or above minScore,
// most relevant first
func (r *ArticleRepository) GetAnalyzed(ctx context.Context, minScore float64, limit int) ([]domain.AnalyzedArticle, error) {
	query := `
		SELECT * FROM articles
		WHERE analyzed_at IS NOT NULL AND relevance_score >= ?
		ORDER BY relevance_score DESC, published_at DESC
		LIMIT ?
	`
	var sqlArticles []articleSQL
	if err := r.db.SelectContext(ctx, &sqlArticles, query, minScore, limit); err != nil {
		return nil, fmt.Errorf("get analyzed articles: %w", err)
	}
	return toAnalyzed(sqlArticles), nil
}

// UpdateInsight stores the analysis result for an article. Retries on
// SQLite lock errors since analysis runs concurrently with reads.
func (r *ArticleRepository) UpdateInsight(ctx context.Context, articleID string, insight domain.Insight) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE articles SET
				entities = ?, categories = ?, key_phrases = ?,
				primary_category = ?, relevance_score = ?, summary = ?,
				analyzed_at = ?
			WHERE id = ?
		`
		res, err := r.db.ExecContext(ctx, query,
			entitiesSQL(insight.Entities), categoriesSQL(insight.Categories), phrasesSQL(insight.KeyPhrases),
			string(insight.PrimaryCategory), insight.RelevanceScore, insight.Summary,
			time.Now().UTC(), articleID)
		if err != nil {
			if isLockError(err) {
				return err // transient, retry
			}
			return &criticalError{err: fmt.Errorf("update insight: %w", err)}
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("rows affected: %w", err)}
		}
		if rows == 0 {
			return &criticalError{err: fmt.Errorf("update insight: article %s not found", articleID)}
		}
		return nil
	})
}

// GetInsight retrieves the stored insight for an article. Returns
// ErrNotAnalyzed when the article exists but has not been processed.
func (r *ArticleRepository) GetInsight(ctx context.Context, articleID string) (*domain.Insight, error) {
	var sqlArticle articleSQL
	err := r.db.GetContext(ctx, &sqlArticle, "SELECT * FROM articles WHERE id = ?", articleID)
	if err != nil {
		return nil, fmt.Errorf("get insight: %w", err)
	}
	if sqlArticle.AnalyzedAt == nil {
		return nil, ErrNotAnalyzed
	}
	insight := toDomainInsight(&sqlArticle)
	return &insight, nil
}

// Stats holds article counts for status reporting
type Stats struct {
	Total    int `db:"total"`
	Analyzed int `db:"analyzed"`
}

// GetStats returns total and analyzed article counts
func (r *ArticleRepository) GetStats(ctx context.Context) (Stats, error) {
	var stats Stats
	query := `
		SELECT COUNT(*) AS total,
		       COUNT(analyzed_at) AS analyzed
		FROM articles
	`
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return Stats{}, fmt.Errorf("get stats: %w", err)
	}
	return stats, nil
}

func toDomainArticle(a *articleSQL) domain.Article {
	return domain.Article{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Description: a.Description,
		URL:         a.URL,
		Source:      a.Source,
		PublishedAt: a.PublishedAt,
	}
}

func toDomainInsight(a *articleSQL) domain.Insight {
	return domain.Insight{
		Entities:        map[domain.EntityLabel][]string(a.Entities),
		Categories:      []domain.Category(a.Categories),
		KeyPhrases:      []domain.KeyPhrase(a.KeyPhrases),
		PrimaryCategory: domain.Category(a.PrimaryCategory),
		RelevanceScore:  a.RelevanceScore,
		Summary:         a.Summary,
	}
}

func toAnalyzed(rows []articleSQL) []domain.AnalyzedArticle {
	result := make([]domain.AnalyzedArticle, len(rows))
	for i := range rows {
		result[i] = domain.AnalyzedArticle{
			Article: toDomainArticle(&rows[i]),
			Insight: toDomainInsight(&rows[i]),
		}
	}
	return result
}
