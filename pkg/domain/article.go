package domain

import "time"

// Article represents a single news article as returned by a fetch source.
// Articles are immutable once fetched; the pipeline never mutates them.
type Article struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Text returns the best available body text for analysis, preferring
// full content over the description.
func (a Article) Text() string {
	if a.Content != "" {
		return a.Content
	}
	return a.Description
}

// NormalizedText is a derived, non-owning view of an article's text after
// cleaning. All fields are plain lowercase ASCII strings.
type NormalizedText struct {
	Title              string
	Content            string
	Description        string
	ContentNoStopwords string
	ContentLemmatized  string
}

// CachedQuery is the shape of a per-query per-day cache file.
type CachedQuery struct {
	Query    string    `json:"query"`
	Date     time.Time `json:"date"`
	Articles []Article `json:"articles"`
}
