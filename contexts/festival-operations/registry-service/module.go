package registryservice

import (
	"log/slog"

	httpadapter "festival/contexts/festival-operations/registry-service/adapters/http"
	"festival/contexts/festival-operations/registry-service/adapters/memory"
	"festival/contexts/festival-operations/registry-service/application"
	"festival/contexts/festival-operations/registry-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository  ports.RegistryRepository
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		IDGen:  deps.IDGenerator,
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

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
