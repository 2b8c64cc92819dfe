// Package web parses web command flags and launches the web service.
package web

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/translating.space/internal/platform/cmd"
	"github.com/louisbranch/translating.space/internal/platform/logging"
	"github.com/louisbranch/translating.space/internal/services/mt"
	mtsetup "github.com/louisbranch/translating.space/internal/services/mt/setup"
	"github.com/louisbranch/translating.space/internal/services/web"
	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/translating.space/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/translating.space/internal/services/web/storage/sqlite"
	"go.uber.org/zap"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath              string        `env:"DB_PATH" envDefault:"data/translating.space.db"`
	SiteTitle           string        `env:"WEB_SITE_TITLE" envDefault:"translating.space"`
	SessionSecret       string        `env:"WEB_SESSION_SECRET"`
	SessionTTL          time.Duration `env:"WEB_SESSION_TTL" envDefault:"336h"`
	TrustForwardedProto bool          `env:"WEB_TRUST_FORWARDED_PROTO"`

	Log logging.Config
	MT  mt.Config
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "Path to the SQLite database")
	fs.StringVar(&cfg.SiteTitle, "site-title", cfg.SiteTitle, "Site title shown in pages")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Lifetime of sign-in sessions")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto for secure cookies")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level (debug, info, warn, error)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(entrypoint.ServiceWeb, cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		store, err := sqlite.OpenContext(ctx, cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Warn("close store", zap.Error(err))
			}
		}()

		registry, err := mtsetup.Registry(ctx, cfg.MT, store, logger)
		if err != nil {
			return fmt.Errorf("init machine translation: %w", err)
		}

		policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
		secret, err := sessionSecret(cfg.SessionSecret, logger)
		if err != nil {
			return err
		}
		sessions, err := sessioncookie.NewCodec(secret, cfg.SessionTTL, sessioncookie.WithSchemePolicy(policy))
		if err != nil {
			return fmt.Errorf("init sessions: %w", err)
		}

		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:     cfg.HTTPAddr,
			SiteTitle:    cfg.SiteTitle,
			Store:        store,
			Translator:   registry,
			Sessions:     sessions,
			SchemePolicy: policy,
			Logger:       logger,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		logger.Info("machine translation services", zap.Strings("services", registry.IDs()))
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

// sessionSecret returns the configured secret or a random one that only
// lives as long as the process.
func sessionSecret(configured string, logger *zap.Logger) (string, error) {
	if secret := strings.TrimSpace(configured); secret != "" {
		return secret, nil
	}
	buf := make([]byte, 48)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session secret: %w", err)
	}
	logger.Warn("no session secret configured; sessions end on restart")
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
