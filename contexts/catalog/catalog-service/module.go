package catalogservice

import (
	"log/slog"

	httpadapter "bookstore/contexts/catalog/catalog-service/adapters/http"
	"bookstore/contexts/catalog/catalog-service/adapters/memory"
	"bookstore/contexts/catalog/catalog-service/application"
	"bookstore/contexts/catalog/catalog-service/ports"
)

// Module is the catalog-service composition root exposed to runtime wiring.
// Service is exported so the ordering side of the runtime can be given a
// stock reservation port backed by this catalog.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repo,
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

// NewInMemoryModule builds a development/testing module with the in-memory
// store acting as repository, clock and id generator.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repo:   store,
		Clock:  store,
		IDGen:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
