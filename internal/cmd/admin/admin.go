// Package admin implements the translating.space management commands.
package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	entrypoint "github.com/louisbranch/translating.space/internal/platform/cmd"
	"github.com/louisbranch/translating.space/internal/platform/logging"
	"github.com/louisbranch/translating.space/internal/services/mt"
	mtsetup "github.com/louisbranch/translating.space/internal/services/mt/setup"
	"github.com/louisbranch/translating.space/internal/services/web/storage/sqlite"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Config holds the admin command configuration.
type Config struct {
	DBPath string `env:"DB_PATH" envDefault:"data/translating.space.db"`

	Log logging.Config
	MT  mt.Config
}

// ParseConfig loads Config from the environment. Flags are parsed by cobra.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the admin command line with telemetry configured.
func Run(ctx context.Context, cfg Config, args []string) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAdmin, func(ctx context.Context) error {
		a := New(cfg)
		defer func() { _ = a.Close() }()
		root := a.Command()
		root.SetArgs(args)
		return root.ExecuteContext(ctx)
	})
}

// Option configures an Admin.
type Option func(*Admin)

// WithPasswordCost sets the bcrypt cost for new passwords.
func WithPasswordCost(cost int) Option {
	return func(a *Admin) { a.passwordCost = cost }
}

// WithRegistry replaces the configured machine translation registry.
func WithRegistry(registry *mt.Registry) Option {
	return func(a *Admin) { a.registry = registry }
}

// WithLogger sets the logger instead of building one from Config.Log.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Admin) { a.logger = logger }
}

// Admin owns the resources shared by the management commands. The store
// and the registry are opened on first use.
type Admin struct {
	cfg          Config
	passwordCost int
	logger       *zap.Logger

	mu       sync.Mutex
	store    *sqlite.Store
	registry *mt.Registry
}

// New returns an Admin for cfg.
func New(cfg Config, opts ...Option) *Admin {
	a := &Admin{cfg: cfg, passwordCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Command builds the root command with every subcommand attached.
func (a *Admin) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Manage a translating.space installation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.logger != nil {
				return nil
			}
			logger, err := logging.New(entrypoint.ServiceAdmin, a.cfg.Log)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			a.logger = logger
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.cfg.DBPath, "db-path", a.cfg.DBPath, "Path to the SQLite database")

	root.AddCommand(
		a.createUserCommand(),
		a.changePasswordCommand(),
		a.loadDataCommand(),
		a.messagesCommand(),
		a.mtServicesCommand(),
		a.mtTranslateCommand(),
	)
	return root
}

// Close releases the store when it was opened.
func (a *Admin) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

func (a *Admin) openStore(ctx context.Context) (*sqlite.Store, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.store != nil {
		return a.store, nil
	}
	if strings.TrimSpace(a.cfg.DBPath) == "" {
		return nil, errors.New("db path is required")
	}
	store, err := sqlite.OpenContext(ctx, a.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	a.store = store
	return store, nil
}

func (a *Admin) translator(ctx context.Context) (*mt.Registry, error) {
	if a.registry != nil {
		return a.registry, nil
	}
	store, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}
	registry, err := mtsetup.Registry(ctx, a.cfg.MT, store, logging.OrNop(a.logger))
	if err != nil {
		return nil, fmt.Errorf("init machine translation: %w", err)
	}
	a.registry = registry
	return registry, nil
}
