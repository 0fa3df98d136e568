package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/wanderlanka/planner-cli/config"
	"github.com/wanderlanka/planner-cli/internal/adapters/accesslog"
	"github.com/wanderlanka/planner-cli/internal/adapters/authroles"
	"github.com/wanderlanka/planner-cli/internal/adapters/credfile"
	credredis "github.com/wanderlanka/planner-cli/internal/adapters/redis"
	"github.com/wanderlanka/planner-cli/internal/adapters/sqlite"
	"github.com/wanderlanka/planner-cli/internal/adapters/termnav"
	"github.com/wanderlanka/planner-cli/internal/adapters/travelapi"
	"github.com/wanderlanka/planner-cli/internal/ports"
	"github.com/wanderlanka/planner-cli/internal/service"
)

// App wires the adapters and services for one client session.
type App struct {
	Config config.AppConfig
	Logger *slog.Logger

	Nav          *termnav.Navigator
	Sessions     *service.SessionManager
	Guard        *service.Guard
	Conversation *service.Conversation
	Trips        *service.Trips

	archive *sqlite.TripArchive
	redis   *goredis.Client
}

// New builds the application graph from configuration.
func New(cfg config.AppConfig, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	api, err := travelapi.NewClient(travelapi.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}

	app := &App{Config: cfg, Logger: logger, Nav: termnav.New()}

	store, err := app.buildCredentialStore(cfg)
	if err != nil {
		return nil, err
	}

	sessions, err := service.NewSessionManager(service.SessionManagerOptions{
		API:    api,
		Store:  store,
		Roles:  authroles.StaticRoleMapper{AdminEmails: cfg.AdminEmails},
		Nav:    app.Nav,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create session manager: %w", err)
	}
	app.Sessions = sessions

	guard, err := service.NewGuard(service.GuardOptions{
		Sessions: sessions,
		Events:   accesslog.New(logger),
		Nav:      app.Nav,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create guard: %w", err)
	}
	app.Guard = guard

	conversation, err := service.NewConversation(service.ConversationOptions{
		Planner: api,
		Tokens:  sessions,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	app.Conversation = conversation

	archive, err := sqlite.NewTripArchive(cfg.Archive.Path)
	if err != nil {
		return nil, fmt.Errorf("open trip archive: %w", err)
	}
	app.archive = archive

	trips, err := service.NewTrips(service.TripsOptions{
		API:     api,
		Archive: archive,
		Tokens:  sessions,
		Logger:  logger,
	})
	if err != nil {
		_ = archive.Close()
		return nil, fmt.Errorf("create trips service: %w", err)
	}
	app.Trips = trips

	return app, nil
}

func (a *App) buildCredentialStore(cfg config.AppConfig) (ports.CredentialStore, error) {
	switch cfg.Credentials.Backend {
	case config.StoreBackendRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.redis = client
		store, err := credredis.NewCredentialStore(client, cfg.Credentials.Profile)
		if err != nil {
			return nil, fmt.Errorf("create redis credential store: %w", err)
		}
		return store, nil
	case config.StoreBackendFile:
		store, err := credfile.New(cfg.Credentials.File)
		if err != nil {
			return nil, fmt.Errorf("create file credential store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown credential store backend %q", cfg.Credentials.Backend)
	}
}

// Close releases the app's long-lived resources.
func (a *App) Close() error {
	var errs []error
	if a.archive != nil {
		if err := a.archive.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close trip archive: %w", err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis client: %w", err))
		}
	}
	return errors.Join(errs...)
}
