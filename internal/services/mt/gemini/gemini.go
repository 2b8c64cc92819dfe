// Package gemini asks a Gemini model for translations.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/translating.space/internal/services/mt"
	"google.golang.org/genai"
)

// Quality is reported for every Gemini suggestion.
const Quality = 90

const defaultModel = "gemini-2.5-flash"

const systemPrompt = "You translate software user interface strings. " +
	"Reply with the translation only. Keep placeholders, markup and surrounding whitespace unchanged."

// Generator is the subset of the genai models API the service uses.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config configures the Gemini client.
type Config struct {
	APIKey string
	Model  string
}

// Service prompts a Gemini model.
type Service struct {
	models Generator
	model  string
}

// New creates a Gemini client from cfg.
func New(ctx context.Context, cfg Config) (*Service, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return NewWithGenerator(client.Models, cfg.Model), nil
}

// NewWithGenerator builds a service over an existing generator.
func NewWithGenerator(models Generator, model string) *Service {
	model = strings.TrimSpace(model)
	if model == "" {
		model = defaultModel
	}
	return &Service{models: models, model: model}
}

// ID returns the registry id.
func (*Service) ID() string { return mt.ServiceGemini }

// Name returns the display name.
func (*Service) Name() string { return "Gemini" }

// Translate returns the model answer as one suggestion.
func (s *Service) Translate(ctx context.Context, req mt.Request) ([]mt.Suggestion, error) {
	if s.models == nil {
		return nil, fmt.Errorf("gemini client is not configured")
	}
	source := req.SourceLanguage
	if source == "" {
		source = "en"
	}
	prompt := fmt.Sprintf("Translate from %s to %s:\n\n%s", source, req.TargetLanguage, req.Text)
	temperature := float32(0)
	resp, err := s.models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       &temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return []mt.Suggestion{}, nil
	}
	return []mt.Suggestion{{
		Text:    text,
		Quality: Quality,
		Service: s.Name(),
		Source:  req.Text,
	}}, nil
}
