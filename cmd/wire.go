package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"

	chainstore "github.com/bnema/neon-boards/internal/adapters/documents/chain"
	filestore "github.com/bnema/neon-boards/internal/adapters/documents/file"
	pgstore "github.com/bnema/neon-boards/internal/adapters/documents/postgres"
	redisstore "github.com/bnema/neon-boards/internal/adapters/documents/redis"
	"github.com/bnema/neon-boards/internal/adapters/identity/graphql"
	"github.com/bnema/neon-boards/internal/adapters/render/panel"
	tomlrepo "github.com/bnema/neon-boards/internal/adapters/repo/toml"
	"github.com/bnema/neon-boards/internal/adapters/telemetry"
	"github.com/bnema/neon-boards/internal/application"
	"github.com/bnema/neon-boards/internal/logging"
	"github.com/bnema/neon-boards/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
)

const serviceName = "neon"

type app struct {
	cfg          *viper.Viper
	log          *slog.Logger
	repo         ports.AccountRepository
	accountQuery ports.AccountQuery
	identity     ports.IdentityQuery
	timeRange    panel.FixedTimeRange
	registry     *prometheus.Registry
	metrics      *telemetry.LoadMetrics

	storeOnce sync.Once
	store     ports.DocumentStore
	storeErr  error
	closers   []func() error
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire account repository: %w", err)
	}

	timeRange, err := panel.ParseTimeRange(cfg.GetString(keyTimeRange))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", keyTimeRange, err)
	}

	registry := prometheus.NewRegistry()
	metrics, err := telemetry.NewLoadMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("wire load metrics: %w", err)
	}

	a := &app{
		cfg:          cfg,
		log:          log,
		repo:         repo,
		accountQuery: repo,
		identity:     repo,
		timeRange:    timeRange,
		registry:     registry,
		metrics:      metrics,
	}

	var client *graphql.Client
	if endpoint := cfg.GetString(keyIdentityURL); endpoint != "" {
		client = &graphql.Client{
			Endpoint:       endpoint,
			APIKey:         cfg.GetString(keyIdentityAPIKey),
			HTTPClient:     http.DefaultClient,
			RequestTimeout: cfg.GetDuration(keyIdentityWait),
		}
		a.identity = client
	}

	switch source := cfg.GetString(keyAccountsSource); source {
	case sourceTOML:
	case sourceGraphQL:
		if client == nil {
			return nil, fmt.Errorf("%s %q requires %s", keyAccountsSource, source, keyIdentityURL)
		}
		a.accountQuery = client
	default:
		return nil, fmt.Errorf("unsupported %s %q", keyAccountsSource, source)
	}

	return a, nil
}

func newLogger(cfg *viper.Viper, w io.Writer) (*slog.Logger, error) {
	return logging.New(serviceName, cfg.GetString(keyLogLevel), cfg.GetString(keyLogFormat), w)
}

// documentStore opens the configured backend on first use so commands that
// never touch boards do not need it reachable.
func (a *app) documentStore(ctx context.Context) (ports.DocumentStore, error) {
	a.storeOnce.Do(func() {
		a.store, a.storeErr = a.openDocumentStore(ctx)
	})

	return a.store, a.storeErr
}

func (a *app) openDocumentStore(ctx context.Context) (ports.DocumentStore, error) {
	local := filestore.NewStore(a.cfg.GetString(keyFileRoot))
	fallback := a.cfg.GetBool(keyStoreFallback)

	var primary ports.DocumentStore
	switch backend := a.cfg.GetString(keyStoreBackend); backend {
	case backendFile:
		return local, nil
	case backendRedis:
		store, err := redisstore.NewStore(a.cfg.GetString(keyRedisURL))
		if err != nil {
			return a.degrade(local, fallback, fmt.Errorf("wire redis document store: %w", err))
		}
		a.closers = append(a.closers, store.Close)
		primary = store
	case backendPostgres:
		db, err := pgstore.Open(ctx, a.cfg.GetString(keyPostgresURL))
		if err != nil {
			return a.degrade(local, fallback, fmt.Errorf("wire postgres document store: %w", err))
		}
		store := pgstore.NewStore(db)
		a.closers = append(a.closers, store.Close)
		if err := pgstore.Migrate(ctx, db, a.log); err != nil {
			return nil, err
		}
		primary = store
	default:
		return nil, fmt.Errorf("unsupported %s %q", keyStoreBackend, backend)
	}

	if !fallback {
		return primary, nil
	}

	return chainstore.NewStore(primary, local, a.log)
}

func (a *app) degrade(local ports.DocumentStore, fallback bool, err error) (ports.DocumentStore, error) {
	if !fallback {
		return nil, err
	}

	a.log.Warn("remote document store unavailable, using local files", "error", err)
	return local, nil
}

func (a *app) close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			a.log.Debug("close resource", "error", err)
		}
	}
	a.closers = nil
}

func (a *app) newController(ctx context.Context, notifier ports.Notifier, log *slog.Logger) (*application.Controller, error) {
	store, err := a.documentStore(ctx)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = a.log
	}

	return application.NewController(
		application.NewIdentityResolver(a.identity, log),
		application.NewAccountRegistry(a.accountQuery, log),
		application.NewBoardStore(store, ports.SystemClock{}),
		notifier,
		application.WithLogger(log),
		application.WithLoadObserver(a.metrics),
	), nil
}
