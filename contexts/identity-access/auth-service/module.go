package authservice

import (
	"log/slog"
	"time"

	httpadapter "bookstore/contexts/identity-access/auth-service/adapters/http"
	"bookstore/contexts/identity-access/auth-service/adapters/memory"
	"bookstore/contexts/identity-access/auth-service/adapters/password"
	"bookstore/contexts/identity-access/auth-service/adapters/token"
	"bookstore/contexts/identity-access/auth-service/application"
	"bookstore/contexts/identity-access/auth-service/ports"
)

// Module is the auth-service composition root exposed to runtime wiring.
// Service is exported so the HTTP server can run token verification and the
// role policy as middleware in front of the other contexts.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Users  ports.UserRepository
	Hasher ports.PasswordHasher
	Tokens ports.TokenCodec
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Users:  deps.Users,
		Hasher: deps.Hasher,
		Tokens: deps.Tokens,
		Clock:  deps.Clock,
		IDGen:  deps.IDGen,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// adapters and an HS256 codec over the given secret.
func NewInMemoryModule(secret string, tokenTTL time.Duration, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Users:  store,
		Hasher: password.BcryptHasher{},
		Tokens: token.JWTCodec{Secret: []byte(secret), TTL: tokenTTL},
		Clock:  store,
		IDGen:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
