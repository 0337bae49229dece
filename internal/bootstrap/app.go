package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/AbdelhakNemri/sports-arena-client/config"
	"github.com/AbdelhakNemri/sports-arena-client/internal/adapters/gateway"
	"github.com/AbdelhakNemri/sports-arena-client/internal/adapters/keycloak"
	"github.com/AbdelhakNemri/sports-arena-client/internal/adapters/navigator"
	"github.com/AbdelhakNemri/sports-arena-client/internal/adapters/tokenstore"
	"github.com/AbdelhakNemri/sports-arena-client/internal/ports"
	"github.com/AbdelhakNemri/sports-arena-client/internal/service"
)

// App holds the wired client: adapters at the bottom, services on top.
type App struct {
	Config  config.AppConfig
	Logger  *slog.Logger
	Tokens  ports.TokenStore
	Gateway *gateway.Client
	Session *service.SessionContext
	Auth    *service.AuthWorkflow
	Guards  *service.Guards
	Poller  *service.NotificationPoller

	redisClient *redis.Client
}

// NewApp wires all adapters and services from configuration. Session state
// is restored from the stored token before anything else runs, so a client
// that was signed in comes back signed in.
func NewApp(ctx context.Context, cfg config.AppConfig, logger *slog.Logger) (*App, error) {
	app := &App{Config: cfg, Logger: logger}

	tokens, err := app.buildTokenStore(cfg.Storage)
	if err != nil {
		return nil, err
	}
	app.Tokens = tokens

	gw, err := gateway.New(gateway.ClientOptions{
		BaseURL: cfg.Gateway.BaseURL,
		Tokens:  tokens,
		Timeout: cfg.Gateway.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build gateway client: %w", err)
	}
	app.Gateway = gw

	session, err := service.NewSessionContext(ctx, service.SessionContextOptions{
		Tokens:   tokens,
		ClientID: cfg.Auth.ClientID,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build session context: %w", err)
	}
	app.Session = session

	exchanger, err := app.buildExchanger(ctx, cfg.Auth, gw, logger)
	if err != nil {
		return nil, err
	}

	workflow, err := service.NewAuthWorkflow(service.AuthWorkflowOptions{
		Exchanger: exchanger,
		Tokens:    tokens,
		Session:   session,
		Navigator: navigator.NewLogNavigator(logger),
		ClientID:  cfg.Auth.ClientID,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build auth workflow: %w", err)
	}
	app.Auth = workflow

	guards, err := service.NewGuards(service.GuardsOptions{
		Session: session,
		Tokens:  tokens,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build guards: %w", err)
	}
	app.Guards = guards

	poller, err := service.NewNotificationPoller(service.NotificationPollerOptions{
		API:      gw.Notifications(),
		Session:  session,
		Interval: cfg.Notifications.PollInterval,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build notification poller: %w", err)
	}
	app.Poller = poller

	return app, nil
}

func (a *App) buildTokenStore(cfg config.StorageConfig) (ports.TokenStore, error) {
	switch cfg.Backend {
	case config.StorageMemory:
		return tokenstore.NewMemoryStore(), nil

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.redisClient = client
		return tokenstore.NewRedisStore(client, cfg.Key), nil

	case config.StorageFile, "":
		store, err := tokenstore.NewFileStore(cfg.FilePath, cfg.Key)
		if err != nil {
			return nil, fmt.Errorf("build file token store: %w", err)
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func (a *App) buildExchanger(
	ctx context.Context,
	cfg config.AuthConfig,
	gw *gateway.Client,
	logger *slog.Logger,
) (ports.CredentialExchanger, error) {
	switch cfg.Mode {
	case config.AuthModeKeycloak:
		exchanger, err := keycloak.NewExchanger(ctx, keycloak.Config{
			IssuerURL:    cfg.Keycloak.IssuerURL,
			ClientID:     cfg.Keycloak.ClientID,
			ClientSecret: cfg.Keycloak.ClientSecret,
			Scopes:       cfg.Keycloak.Scopes,
			Logger:       logger,
		})
		if err != nil {
			return nil, fmt.Errorf("build keycloak exchanger: %w", err)
		}
		return exchanger, nil

	case config.AuthModeGateway, "":
		return gw.Auth(), nil

	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Mode)
	}
}

// Close stops background work and releases connections.
func (a *App) Close() error {
	if a.Poller != nil {
		a.Poller.Stop()
	}
	if a.redisClient != nil {
		return a.redisClient.Close()
	}
	return nil
}
