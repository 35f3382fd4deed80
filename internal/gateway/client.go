// Package gateway talks to the Gemini API and turns free-form model output
// into structured records.
package gateway

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash-exp"

// jsonInstruction is appended to prompts that must come back as JSON.
const jsonInstruction = "\n\nIMPORTANT: Your response MUST be valid JSON. Do not include any text outside the JSON structure. Ensure all strings are properly quoted with double quotes, avoid trailing commas, and escape special characters correctly."

// Generator produces model text for a prompt. The Gemini client implements
// it; tests substitute a canned generator.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Config holds the settings needed to reach the Gemini API.
type Config struct {
	APIKey string
	Model  string
}

// Client is a thin wrapper over the GenAI SDK.
type Client struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// New creates a Gemini client. The API key is required.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not found in environment variables")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	logger.Info("AI client initialized", zap.String("model", model))

	return &Client{client: client, model: model, logger: logger}, nil
}

// Model returns the model this client sends requests to.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends one prompt and returns the model's text.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		c.logger.Error("content generation failed", zap.String("model", c.model), zap.Error(err))
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("no completion returned")
	}

	c.logger.Debug("content generated",
		zap.String("model", c.model),
		zap.Int("prompt_len", len(prompt)),
		zap.Int("response_len", len(text)))
	return text, nil
}

// Message is one turn of a conversation.
type Message struct {
	Role    string
	Content string
}

// Chat sends the user messages in order and returns the last response. Each
// message is an independent request; the conversation state lives in the
// persona's context memory, not here.
func (c *Client) Chat(ctx context.Context, messages []Message) (string, error) {
	var last string
	for _, m := range messages {
		if m.Role != "user" {
			continue
		}
		text, err := c.GenerateContent(ctx, m.Content)
		if err != nil {
			return "", err
		}
		last = text
	}
	if last == "" {
		return "", fmt.Errorf("no user messages to send")
	}
	return last, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

// GenerateStructured asks the generator for output in the given format and
// parses it. JSON output is decoded into ordered values; a response that
// cannot be parsed as JSON comes back as a fallback record wrapping the raw
// text. Non-JSON formats are returned as-is with the format attached.
func GenerateStructured(ctx context.Context, g Generator, logger *zap.Logger, prompt, format string) (any, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var formatted string
	if strings.EqualFold(format, "json") {
		formatted = prompt + jsonInstruction
	} else {
		formatted = prompt + fmt.Sprintf("\n\nPlease respond in %s format.", format)
	}

	text, err := g.GenerateContent(ctx, formatted)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(format, "json") {
		return NonJSONRecord(text, format), nil
	}

	value, ok := ExtractJSON(text)
	if !ok {
		logger.Warn("failed to parse JSON response", zap.Int("response_len", len(text)))
		return FallbackRecord(text), nil
	}
	return value, nil
}
