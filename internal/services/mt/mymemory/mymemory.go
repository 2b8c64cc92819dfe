// Package mymemory queries the MyMemory translation API.
package mymemory

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/louisbranch/translating.space/internal/services/mt"
)

// Config configures the MyMemory client.
type Config struct {
	BaseURL string
	// Email raises the anonymous daily quota.
	Email   string
	Timeout time.Duration
}

// Service calls the MyMemory /get endpoint.
type Service struct {
	baseURL string
	email   string
	http    *resty.Client
}

type match struct {
	Translation string  `json:"translation"`
	Segment     string  `json:"segment"`
	Match       float64 `json:"match"`
}

type response struct {
	ResponseData struct {
		TranslatedText string  `json:"translatedText"`
		Match          float64 `json:"match"`
	} `json:"responseData"`
	ResponseStatus  json.Number `json:"responseStatus"`
	ResponseDetails string      `json:"responseDetails"`
	Matches         []match     `json:"matches"`
}

// New returns a MyMemory service.
func New(cfg Config) *Service {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Service{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		email:   strings.TrimSpace(cfg.Email),
		http:    resty.New().SetTimeout(timeout),
	}
}

// ID returns the registry id.
func (*Service) ID() string { return mt.ServiceMyMemory }

// Name returns the display name.
func (*Service) Name() string { return "MyMemory" }

// Supports rejects identical source and target languages.
func (*Service) Supports(source, target string) bool {
	return source != "" && target != "" && mt.BaseLanguage(source) != mt.BaseLanguage(target)
}

// Translate returns MyMemory matches scored by their match ratio.
func (s *Service) Translate(ctx context.Context, req mt.Request) ([]mt.Suggestion, error) {
	query := map[string]string{
		"q":        req.Text,
		"langpair": mt.NormalizeLanguage(req.SourceLanguage) + "|" + mt.NormalizeLanguage(req.TargetLanguage),
	}
	if s.email != "" {
		query["de"] = s.email
	}
	var resp response
	r, err := s.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetResult(&resp).
		Get(s.baseURL + "/get")
	if err != nil {
		return nil, fmt.Errorf("mymemory request: %w", err)
	}
	if r.IsError() {
		return nil, fmt.Errorf("mymemory: %s; body: %s", r.Status(), r.String())
	}
	if status, err := resp.ResponseStatus.Int64(); err == nil && status != 200 {
		return nil, fmt.Errorf("mymemory status %d: %s", status, resp.ResponseDetails)
	}

	suggestions := make([]mt.Suggestion, 0, len(resp.Matches)+1)
	for _, m := range resp.Matches {
		suggestions = append(suggestions, mt.Suggestion{
			Text:    m.Translation,
			Quality: quality(m.Match),
			Service: s.Name(),
			Source:  m.Segment,
		})
	}
	if len(suggestions) == 0 && resp.ResponseData.TranslatedText != "" {
		suggestions = append(suggestions, mt.Suggestion{
			Text:    resp.ResponseData.TranslatedText,
			Quality: quality(resp.ResponseData.Match),
			Service: s.Name(),
			Source:  req.Text,
		})
	}
	return suggestions, nil
}

func quality(ratio float64) int {
	return int(math.Round(math.Max(0, math.Min(1, ratio)) * 100))
}
