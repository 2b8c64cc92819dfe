// Package web hosts the browser-facing translation service.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/translating.space/internal/platform/timeouts"
	"github.com/louisbranch/translating.space/internal/services/web/app"
	"github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/modules"
	"github.com/louisbranch/translating.space/internal/services/web/modules/jsviews"
	"github.com/louisbranch/translating.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/translating.space/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
	"github.com/louisbranch/translating.space/internal/services/web/static"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
	"go.uber.org/zap"
)

// TracerName names the spans started for incoming requests.
const TracerName = "translating.space/web"

// HealthPath reports module availability.
const HealthPath = "/up"

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr     string
	SiteTitle    string
	Store        storage.Store
	Translator   jsviews.Translator
	Sessions     *sessioncookie.Codec
	SchemePolicy requestmeta.SchemePolicy
	Logger       *zap.Logger
	Clock        func() time.Time
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler builds the root handler from the module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var sessions SessionResolver
	if cfg.Sessions != nil {
		sessions = cfg.Sessions
	}
	var accounts AccountReader
	if cfg.Store != nil {
		accounts = cfg.Store
	}
	principal := newPrincipalResolver(sessions, accounts)

	deps := modules.Dependencies{
		Store:        cfg.Store,
		Translator:   cfg.Translator,
		SchemePolicy: cfg.SchemePolicy,
		Logger:       logger,
		Clock:        cfg.Clock,
		Resolvers:    principal.dependencies(cfg.SiteTitle),
	}
	if cfg.Sessions != nil {
		deps.Sessions = cfg.Sessions
	}
	publicModules := modules.PublicModules(deps)
	protectedModules := modules.ProtectedModules(deps)

	h, err := app.BuildRootHandler(app.Config{
		PublicModules:       publicModules,
		ProtectedModules:    protectedModules,
		RequestSchemePolicy: cfg.SchemePolicy,
	}, principal.resolveSignedIn)
	if err != nil {
		return nil, err
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.Static, http.StripPrefix(routepath.Static, http.FileServer(http.FS(static.FS))))
	rootMux.HandleFunc(http.MethodGet+" "+HealthPath, healthHandler(append(publicModules, protectedModules...)))
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		httpx.Trace(TracerName),
		principal.middleware(),
		httpx.AccessLog(logger),
	), nil
}

type healthReport struct {
	Status  string          `json:"status"`
	Modules map[string]bool `json:"modules"`
}

// healthHandler answers 200 when every module reports itself healthy and
// 503 otherwise.
func healthHandler(list []module.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		report := healthReport{Status: "ok", Modules: make(map[string]bool, len(list))}
		status := http.StatusOK
		for _, m := range list {
			healthy := true
			if reporter, ok := m.(module.HealthReporter); ok {
				healthy = reporter.Healthy()
			}
			report.Modules[m.ID()] = healthy
			if !healthy {
				report.Status = "degraded"
				status = http.StatusServiceUnavailable
			}
		}
		_ = httpx.WriteJSON(w, status, report)
	}
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if cfg.Store == nil {
		return nil, errors.New("store is required")
	}
	if cfg.Sessions == nil {
		return nil, errors.New("session codec is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()
	s.logger.Info("web listening", zap.String("addr", s.httpAddr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
