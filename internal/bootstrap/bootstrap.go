// Package bootstrap assembles the application from configuration. Both the
// HTTP server and the Cloud Functions entrypoint start here.
package bootstrap

import (
	"context"
	"fmt"

	"quickchat/config"
	"quickchat/internal/events"
	"quickchat/internal/handler"
	"quickchat/internal/identity"
	"quickchat/internal/repository"
	"quickchat/internal/server"
	"quickchat/internal/services"
	"quickchat/internal/websocket"
	"quickchat/pkg/database"
	"quickchat/pkg/logger"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// App holds the backends selected by configuration.
type App struct {
	Store    repository.Store
	Identity identity.Provider
	// Bus is nil when live updates are disabled.
	Bus events.Bus

	closers []func()
}

// Close releases connections in reverse order of creation.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func Build(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &App{}
	var err error
	switch cfg.Backend {
	case config.BackendFirebase:
		err = app.initFirebase(ctx, cfg)
	case config.BackendPostgres:
		err = app.initPostgres(ctx, cfg)
	}
	if err != nil {
		app.Close()
		return nil, err
	}

	if cfg.RedisEnabled {
		if err := app.initRedis(ctx, cfg, log); err != nil {
			app.Close()
			return nil, err
		}
	}

	log.Infof("backend=%s live_updates=%t", cfg.Backend, app.Bus != nil)
	return app, nil
}

func (a *App) initFirebase(ctx context.Context, cfg *config.Config) error {
	var opts []option.ClientOption
	if cfg.FirebaseCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
	}

	fb, err := firebase.NewApp(ctx, &firebase.Config{
		DatabaseURL: cfg.FirebaseDatabaseURL,
		ProjectID:   cfg.FirebaseProjectID,
	}, opts...)
	if err != nil {
		return fmt.Errorf("error initializing firebase app: %w", err)
	}

	dbClient, err := fb.Database(ctx)
	if err != nil {
		return fmt.Errorf("error getting database client: %w", err)
	}
	authClient, err := fb.Auth(ctx)
	if err != nil {
		return fmt.Errorf("error getting auth client: %w", err)
	}

	a.Store = repository.NewFirebaseStore(dbClient)
	a.Identity = identity.NewFirebaseProvider(authClient,
		identity.NewToolkit(cfg.IdentityToolkitURL, cfg.FirebaseAPIKey, cfg.GoogleRequestURI))
	return nil
}

func (a *App) initPostgres(ctx context.Context, cfg *config.Config) error {
	pool, err := database.Connect(ctx, cfg.DatabaseURL())
	if err != nil {
		return err
	}
	a.closers = append(a.closers, pool.Close)

	if err := database.ApplyMigrations(ctx, pool); err != nil {
		return err
	}

	a.Store = repository.NewPostgresStore(pool)
	a.Identity = identity.NewLocalProvider(repository.NewCredentialRepository(pool), cfg.GoogleClientID)
	return nil
}

func (a *App) initRedis(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	client := events.NewRedisClient(events.RedisConfig{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	bus := events.NewRedisBus(client, log)
	a.closers = append(a.closers, func() { _ = bus.Close() })

	if err := bus.Ping(ctx); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	a.Bus = bus
	return nil
}

// Handlers wires services and handlers on top of the backends.
func (a *App) Handlers(cfg *config.Config, log *logger.Logger) *server.Handlers {
	return &server.Handlers{
		Auth:   handler.NewAuthHandler(services.NewAuthService(a.Identity, a.Store)),
		Room:   handler.NewRoomHandler(services.NewRoomService(a.Store, a.Store, a.Bus, log, cfg.EnforceRoomCreator)),
		Chat:   handler.NewChatHandler(services.NewChatService(a.Store, a.Store, a.Bus, log)),
		Health: handler.NewHealthHandler(a.Store),
		Stream: websocket.NewHandler(a.Bus, log),
	}
}

// NewServer builds the backends and a server with every route registered.
// The returned cleanup closes the backends.
func NewServer(ctx context.Context, cfg *config.Config, log *logger.Logger) (*server.Server, func(), error) {
	app, err := Build(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	srv := server.New(cfg, log)
	srv.SetupRoutes(app.Handlers(cfg, log))
	return srv, app.Close, nil
}
