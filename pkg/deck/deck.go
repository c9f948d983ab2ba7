package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/newsdeck/newsdeck/pkg/config"
	"github.com/newsdeck/newsdeck/pkg/domain"
)

// ErrNoArticles is returned when a deck is requested with nothing to show
var ErrNoArticles = errors.New("no analyzed articles for deck")

// Slide is one article rendered as a deck slide
type Slide struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
	Source  string   `json:"source"`
	URL     string   `json:"url"`
	Score   float64  `json:"score"`
}

// Section groups the slides of one category
type Section struct {
	Category domain.Category `json:"category"`
	Slides   []Slide         `json:"slides"`
}

// Deck is the complete generated presentation outline
type Deck struct {
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`
	Sections    []Section `json:"sections"`
}

// Generator builds decks from analyzed articles and writes them out
type Generator struct {
	cfg config.DeckConfig
	now func() time.Time
}

// NewGenerator creates a deck generator
func NewGenerator(cfg config.DeckConfig) *Generator {
	return &Generator{cfg: cfg, now: time.Now}
}

// Build assembles a deck from analyzed articles. Articles below the score
// threshold are dropped, sections follow the category taxonomy order with
// uncategorized articles last, slides within a section go by relevance.
func (g *Generator) Build(analyzed []domain.AnalyzedArticle) (*Deck, error) {
	byCategory := make(map[domain.Category][]domain.AnalyzedArticle)
	for _, a := range analyzed {
		if a.Insight.RelevanceScore < g.cfg.MinScore {
			continue
		}
		category := a.Insight.PrimaryCategory
		if category == "" {
			category = domain.CategoryOther
		}
		byCategory[category] = append(byCategory[category], a)
	}

	if len(byCategory) == 0 {
		return nil, ErrNoArticles
	}

	order := make([]domain.Category, 0, len(domain.Taxonomy)+1)
	order = append(order, domain.Taxonomy...)
	order = append(order, domain.CategoryOther)

	deck := &Deck{
		Title:       g.cfg.Title,
		GeneratedAt: g.now().UTC(),
	}
	for _, category := range order {
		articles := byCategory[category]
		if len(articles) == 0 {
			continue
		}
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].Insight.RelevanceScore > articles[j].Insight.RelevanceScore
		})
		if len(articles) > g.cfg.MaxSlides {
			articles = articles[:g.cfg.MaxSlides]
		}

		section := Section{Category: category}
		for _, a := range articles {
			section.Slides = append(section.Slides, makeSlide(a))
		}
		deck.Sections = append(deck.Sections, section)
	}

	return deck, nil
}

// Generate builds the deck and writes both output formats. Returns the
// paths of the JSON and markdown files.
func (g *Generator) Generate(analyzed []domain.AnalyzedArticle) (jsonPath, mdPath string, err error) {
	deck, err := g.Build(analyzed)
	if err != nil {
		return "", "", err
	}

	if jsonPath, err = g.WriteJSON(deck); err != nil {
		return "", "", err
	}
	if mdPath, err = g.WriteMarkdown(deck); err != nil {
		return "", "", err
	}
	return jsonPath, mdPath, nil
}

// WriteJSON writes the deck as an indented JSON file
func (g *Generator) WriteJSON(deck *Deck) (string, error) {
	path := g.outputPath(deck, "json")
	data, err := json.MarshalIndent(deck, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal deck: %w", err)
	}
	if err := g.writeFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// WriteMarkdown renders the deck with the markdown template and writes it
func (g *Generator) WriteMarkdown(deck *Deck) (string, error) {
	rendered, err := g.render(deck)
	if err != nil {
		return "", err
	}
	path := g.outputPath(deck, "md")
	if err := g.writeFile(path, []byte(rendered)); err != nil {
		return "", err
	}
	return path, nil
}

func (g *Generator) outputPath(deck *Deck, ext string) string {
	name := fmt.Sprintf("deck_%s.%s", deck.GeneratedAt.Format("20060102_150405"), ext)
	return filepath.Join(g.cfg.OutputDir, name)
}

func (g *Generator) writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// makeSlide turns one analyzed article into a slide
func makeSlide(a domain.AnalyzedArticle) Slide {
	slide := Slide{
		Title:  a.Article.Title,
		Source: a.Article.Source,
		URL:    a.Article.URL,
		Score:  a.Insight.RelevanceScore,
	}

	if a.Insight.Summary != "" {
		slide.Bullets = append(slide.Bullets, a.Insight.Summary)
	}
	if players := keyPlayers(a.Insight); players != "" {
		slide.Bullets = append(slide.Bullets, "Key players: "+players)
	}
	if phrases := topPhrases(a.Insight, 3); phrases != "" {
		slide.Bullets = append(slide.Bullets, "Key phrases: "+phrases)
	}
	return slide
}

// keyPlayers joins organizations and people mentioned in the article
func keyPlayers(insight domain.Insight) string {
	var players []string
	players = append(players, insight.Entities[domain.LabelORG]...)
	players = append(players, insight.Entities[domain.LabelPerson]...)
	if len(players) > 5 {
		players = players[:5]
	}
	return strings.Join(players, ", ")
}

// topPhrases joins the n best-scored key phrases
func topPhrases(insight domain.Insight, n int) string {
	phrases := make([]string, 0, n)
	for _, kp := range insight.KeyPhrases {
		if len(phrases) == n {
			break
		}
		phrases = append(phrases, kp.Phrase)
	}
	return strings.Join(phrases, ", ")
}
