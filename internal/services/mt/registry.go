package mt

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for service failures.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTimeout bounds each service call.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Registry) { r.timeout = timeout }
}

// Registry holds services by id.
type Registry struct {
	mu       sync.RWMutex
	services map[string]Service
	logger   *zap.Logger
	timeout  time.Duration
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		services: make(map[string]Service),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds svc under its id. Ids are registered once.
func (r *Registry) Register(svc Service) error {
	if svc == nil {
		return fmt.Errorf("machine translation service is nil")
	}
	id := strings.TrimSpace(svc.ID())
	if id == "" {
		return fmt.Errorf("machine translation service id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.services[id]; exists {
		return fmt.Errorf("machine translation service %q already registered", id)
	}
	r.services[id] = svc
	return nil
}

// Lookup returns the service registered under id.
func (r *Registry) Lookup(id string) (Service, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	svc, ok := r.services[strings.TrimSpace(id)]
	return svc, ok
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	if r == nil {
		return []string{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.services))
	for id := range r.services {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered services.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.services)
}

// Translate asks one service for suggestions. Unsupported language pairs
// yield an empty list.
func (r *Registry) Translate(ctx context.Context, id string, req Request) ([]Suggestion, error) {
	svc, ok := r.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, id)
	}
	return r.call(ctx, svc, req)
}

// TranslateAll asks every registered service concurrently and merges the
// results with Rank. Failing services are logged and skipped.
func (r *Registry) TranslateAll(ctx context.Context, req Request) ([]Suggestion, error) {
	ids := r.IDs()
	results := make([][]Suggestion, len(ids))

	group, groupCtx := errgroup.WithContext(ctx)
	for idx, id := range ids {
		svc, ok := r.Lookup(id)
		if !ok {
			continue
		}
		group.Go(func() error {
			suggestions, err := r.call(groupCtx, svc, req)
			if err != nil {
				r.logger.Warn("machine translation failed",
					zap.String("service", svc.ID()),
					zap.String("target", req.TargetLanguage),
					zap.Error(err),
				)
				return nil
			}
			results[idx] = suggestions
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var merged []Suggestion
	for _, suggestions := range results {
		merged = append(merged, suggestions...)
	}
	return Rank(merged), nil
}

func (r *Registry) call(ctx context.Context, svc Service, req Request) ([]Suggestion, error) {
	if !Supports(svc, req.SourceLanguage, req.TargetLanguage) {
		return []Suggestion{}, nil
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	suggestions, err := svc.Translate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", svc.ID(), err)
	}
	out := make([]Suggestion, 0, len(suggestions))
	for _, suggestion := range suggestions {
		if strings.TrimSpace(suggestion.Text) == "" {
			continue
		}
		if suggestion.Service == "" {
			suggestion.Service = svc.Name()
		}
		if suggestion.Source == "" {
			suggestion.Source = req.Text
		}
		out = append(out, suggestion)
	}
	return out, nil
}

// Rank drops duplicate texts, keeping the highest quality one, and orders
// suggestions by quality desc, then service, then text.
func Rank(suggestions []Suggestion) []Suggestion {
	best := make(map[string]Suggestion, len(suggestions))
	for _, suggestion := range suggestions {
		current, seen := best[suggestion.Text]
		if !seen || outranks(suggestion, current) {
			best[suggestion.Text] = suggestion
		}
	}
	out := make([]Suggestion, 0, len(best))
	for _, suggestion := range best {
		out = append(out, suggestion)
	}
	sort.Slice(out, func(i, j int) bool {
		return outranks(out[i], out[j])
	})
	return out
}

func outranks(a, b Suggestion) bool {
	if a.Quality != b.Quality {
		return a.Quality > b.Quality
	}
	if a.Service != b.Service {
		return a.Service < b.Service
	}
	return a.Text < b.Text
}
