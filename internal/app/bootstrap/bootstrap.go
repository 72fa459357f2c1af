package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	catalogservice "bookstore/contexts/catalog/catalog-service"
	catalogpostgres "bookstore/contexts/catalog/catalog-service/adapters/postgres"
	authservice "bookstore/contexts/identity-access/auth-service"
	authpostgres "bookstore/contexts/identity-access/auth-service/adapters/postgres"
	"bookstore/contexts/identity-access/auth-service/adapters/password"
	"bookstore/contexts/identity-access/auth-service/adapters/token"
	orderservice "bookstore/contexts/ordering/order-service"
	orderpostgres "bookstore/contexts/ordering/order-service/adapters/postgres"
	"bookstore/internal/platform/config"
	"bookstore/internal/platform/db"
	"bookstore/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	authModule := authservice.NewModule(authservice.Dependencies{
		Users:  authpostgres.NewRepository(pg.DB, logger),
		Hasher: password.BcryptHasher{Cost: cfg.BcryptCost},
		Tokens: token.JWTCodec{Secret: []byte(cfg.JWTSecret), TTL: cfg.JWTExpiresIn},
		Clock:  authpostgres.SystemClock{},
		IDGen:  authpostgres.UUIDGenerator{},
		Logger: logger,
	})

	catalogRepo := catalogpostgres.NewRepository(pg.DB, logger)
	catalogModule := catalogservice.NewModule(catalogservice.Dependencies{
		Repo:   catalogRepo,
		Clock:  catalogpostgres.SystemClock{},
		IDGen:  catalogpostgres.UUIDGenerator{},
		Logger: logger,
	})

	orderModule := orderservice.NewModule(orderservice.Dependencies{
		Orders:    orderpostgres.NewRepository(pg.DB, logger),
		Inventory: CatalogInventory{Catalog: catalogModule.Service},
		Clock:     orderpostgres.SystemClock{},
		IDGen:     orderpostgres.UUIDGenerator{},
		Logger:    logger,
	})

	server := httpserver.New(authModule, catalogModule, orderModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
