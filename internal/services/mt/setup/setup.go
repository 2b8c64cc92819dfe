// Package setup builds the machine translation registry from configuration.
package setup

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/louisbranch/translating.space/internal/platform/timeouts"
	"github.com/louisbranch/translating.space/internal/services/mt"
	"github.com/louisbranch/translating.space/internal/services/mt/dummy"
	"github.com/louisbranch/translating.space/internal/services/mt/gemini"
	"github.com/louisbranch/translating.space/internal/services/mt/libretranslate"
	"github.com/louisbranch/translating.space/internal/services/mt/memory"
	"github.com/louisbranch/translating.space/internal/services/mt/mymemory"
	"go.uber.org/zap"
)

// Store is the persistence the registry services need.
type Store interface {
	memory.Store
	mt.CacheStore
}

// Registry returns a registry with every service named in cfg.Services.
// Remote services are wrapped with the result cache.
func Registry(ctx context.Context, cfg mt.Config, store Store, logger *zap.Logger) (*mt.Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if isNil(store) {
		store = nil
	}
	registry := mt.NewRegistry(mt.WithLogger(logger), mt.WithTimeout(timeouts.MachineTranslation))
	if !cfg.Enabled {
		return registry, nil
	}
	for _, raw := range cfg.Services {
		id := strings.ToLower(strings.TrimSpace(raw))
		if id == "" {
			continue
		}
		svc, err := build(ctx, id, cfg, store, logger)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(svc); err != nil {
			return nil, err
		}
		logger.Debug("machine translation service registered", zap.String("service", id))
	}
	return registry, nil
}

func build(ctx context.Context, id string, cfg mt.Config, store Store, logger *zap.Logger) (mt.Service, error) {
	var cache mt.CacheStore
	if store != nil {
		cache = store
	}
	switch id {
	case mt.ServiceDummy:
		return dummy.New(), nil
	case mt.ServiceMemory:
		if store == nil {
			return nil, fmt.Errorf("machine translation service %q needs a store", id)
		}
		return memory.New(store), nil
	case mt.ServiceMyMemory:
		svc := mymemory.New(mymemory.Config{
			BaseURL: cfg.MyMemoryURL,
			Email:   cfg.MyMemoryEmail,
			Timeout: timeouts.MachineTranslation,
		})
		return mt.Cached(svc, cache, cfg.CacheTTL, logger), nil
	case mt.ServiceLibreTranslate:
		svc := libretranslate.New(libretranslate.Config{
			BaseURL: cfg.LibreTranslateURL,
			APIKey:  cfg.LibreTranslateKey,
			Timeout: timeouts.MachineTranslation,
		})
		return mt.Cached(svc, cache, cfg.CacheTTL, logger), nil
	case mt.ServiceGemini:
		svc, err := gemini.New(ctx, gemini.Config{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel})
		if err != nil {
			return nil, fmt.Errorf("configure %s: %w", id, err)
		}
		return mt.Cached(svc, cache, cfg.CacheTTL, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", mt.ErrUnknownService, id)
	}
}

// isNil reports whether store is nil or wraps a nil pointer.
func isNil(store Store) bool {
	if store == nil {
		return true
	}
	v := reflect.ValueOf(store)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
