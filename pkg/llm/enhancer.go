package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/newsdeck/newsdeck/pkg/config"
	"github.com/newsdeck/newsdeck/pkg/domain"
)

// Enhancer rewrites extractive summaries with an LLM. Optional, the
// pipeline produces usable summaries without it.
type Enhancer struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewEnhancer creates a new summary enhancer
func NewEnhancer(cfg config.LLMConfig) *Enhancer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Enhancer{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

const defaultSystemPrompt = `You rewrite machine-extracted news summaries into clear, neutral prose.
Rules:
- Two to three sentences, maximum 400 characters.
- Keep every named company, person, place and number from the input.
- Write directly about the subject matter. NEVER use phrases like "The article discusses", "The piece covers" or "The author explains".
- Do not add facts that are not in the input.
- Respond with the rewritten summary only, no preamble.`

// Enhance rewrites the extractive summary of one analyzed article. Returns
// the rewritten text, or an error when the model gives no usable answer.
func (e *Enhancer) Enhance(ctx context.Context, article domain.Article, insight domain.Insight) (string, error) {
	if insight.Summary == "" {
		return "", fmt.Errorf("nothing to enhance")
	}

	req := openai.ChatCompletionRequest{
		Model:       e.config.Model,
		Temperature: float32(e.config.Temperature),
		MaxTokens:   e.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: e.systemMsg,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: e.buildPrompt(article, insight),
			},
		},
	}

	resp, err := e.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}

	enhanced := strings.TrimSpace(resp.Choices[0].Message.Content)
	if enhanced == "" {
		return "", fmt.Errorf("empty response from llm")
	}
	return enhanced, nil
}

// buildPrompt assembles the rewrite request for one article
func (e *Enhancer) buildPrompt(article domain.Article, insight domain.Insight) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title: %s\n", article.Title))
	if article.Source != "" {
		sb.WriteString(fmt.Sprintf("Source: %s\n", article.Source))
	}

	if len(insight.Entities) > 0 {
		sb.WriteString("Named entities:\n")
		for _, label := range domain.AllowedLabels {
			if texts := insight.Entities[label]; len(texts) > 0 {
				sb.WriteString(fmt.Sprintf("- %s: %s\n", label, strings.Join(texts, ", ")))
			}
		}
	}

	if len(insight.KeyPhrases) > 0 {
		phrases := make([]string, len(insight.KeyPhrases))
		for i, kp := range insight.KeyPhrases {
			phrases[i] = kp.Phrase
		}
		sb.WriteString(fmt.Sprintf("Key phrases: %s\n", strings.Join(phrases, ", ")))
	}

	sb.WriteString("\nExtracted summary:\n")
	sb.WriteString(insight.Summary)
	sb.WriteString("\n\nRewrite the extracted summary.")
	return sb.String()
}
