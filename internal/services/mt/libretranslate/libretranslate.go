// Package libretranslate queries a LibreTranslate server.
package libretranslate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/louisbranch/translating.space/internal/services/mt"
)

// Quality is reported for every LibreTranslate suggestion.
const Quality = 100

// Config configures the LibreTranslate client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Service calls the LibreTranslate /translate endpoint.
type Service struct {
	baseURL string
	apiKey  string
	http    *resty.Client
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// New returns a LibreTranslate service.
func New(cfg Config) *Service {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Service{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:  strings.TrimSpace(cfg.APIKey),
		http:    resty.New().SetTimeout(timeout),
	}
}

// ID returns the registry id.
func (*Service) ID() string { return mt.ServiceLibreTranslate }

// Name returns the display name.
func (*Service) Name() string { return "LibreTranslate" }

// Supports rejects identical source and target languages.
func (*Service) Supports(source, target string) bool {
	return source != "" && target != "" && mt.BaseLanguage(source) != mt.BaseLanguage(target)
}

// Translate returns the single LibreTranslate answer.
func (s *Service) Translate(ctx context.Context, req mt.Request) ([]mt.Suggestion, error) {
	var resp translateResponse
	var apiErr errorResponse
	r, err := s.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(translateRequest{
			Q:      req.Text,
			Source: mt.BaseLanguage(req.SourceLanguage),
			Target: mt.BaseLanguage(req.TargetLanguage),
			Format: "text",
			APIKey: s.apiKey,
		}).
		SetResult(&resp).
		SetError(&apiErr).
		Post(s.baseURL + "/translate")
	if err != nil {
		return nil, fmt.Errorf("libretranslate request: %w", err)
	}
	if r.IsError() {
		if apiErr.Error != "" {
			return nil, fmt.Errorf("libretranslate: %s: %s", r.Status(), apiErr.Error)
		}
		return nil, fmt.Errorf("libretranslate: %s", r.Status())
	}
	if strings.TrimSpace(resp.TranslatedText) == "" {
		return []mt.Suggestion{}, nil
	}
	return []mt.Suggestion{{
		Text:    resp.TranslatedText,
		Quality: Quality,
		Service: s.Name(),
		Source:  req.Text,
	}}, nil
}
