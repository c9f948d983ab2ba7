package deck

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// defaultTemplate renders the deck as a slide-per-heading markdown document
const defaultTemplate = `# {{.Deck.Title}}
{{if .LogoPath}}
![logo]({{.LogoPath}})
{{end}}
Generated {{.Deck.GeneratedAt.Format "2006-01-02 15:04 MST"}}
{{range .Deck.Sections}}
## {{title (printf "%s" .Category)}}
{{range .Slides}}
### {{.Title}}
{{range .Bullets}}
- {{.}}
{{- end}}

*{{.Source}}* | [link]({{.URL}}) | relevance {{printf "%.2f" .Score}}
{{end}}
{{- end}}`

// render executes the markdown template, preferring a template file from
// the configuration over the built-in one
func (g *Generator) render(deck *Deck) (string, error) {
	text := defaultTemplate
	if g.cfg.TemplatePath != "" {
		data, err := os.ReadFile(g.cfg.TemplatePath)
		if err != nil {
			return "", fmt.Errorf("read template: %w", err)
		}
		text = string(data)
	}

	tmpl, err := template.New("deck").Funcs(template.FuncMap{
		"title": cases.Title(language.English).String,
	}).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var sb strings.Builder
	ctx := struct {
		Deck     *Deck
		LogoPath string
	}{Deck: deck, LogoPath: g.cfg.LogoPath}
	if err := tmpl.Execute(&sb, ctx); err != nil {
		return "", fmt.Errorf("render deck: %w", err)
	}
	return sb.String(), nil
}
