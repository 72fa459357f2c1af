package orderservice

import (
	"log/slog"

	httpadapter "bookstore/contexts/ordering/order-service/adapters/http"
	"bookstore/contexts/ordering/order-service/adapters/memory"
	"bookstore/contexts/ordering/order-service/application"
	"bookstore/contexts/ordering/order-service/ports"
)

// Module is the order-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
// Inventory is supplied by the caller; in production it is an adapter over
// the catalog, in standalone tests the in-memory stock table.
type Dependencies struct {
	Orders    ports.OrderRepository
	Inventory ports.Inventory
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Orders:    deps.Orders,
		Inventory: deps.Inventory,
		Clock:     deps.Clock,
		IDGen:     deps.IDGen,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module where the in-memory
// store acts as repository, inventory, clock and id generator. An optional
// inventory overrides the store's own stock table.
func NewInMemoryModule(inventory ports.Inventory, logger *slog.Logger) Module {
	store := memory.NewStore()
	if inventory == nil {
		inventory = store
	}
	module := NewModule(Dependencies{
		Orders:    store,
		Inventory: inventory,
		Clock:     store,
		IDGen:     store,
		Logger:    logger,
	})
	module.Store = store
	return module
}
