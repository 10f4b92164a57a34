package rankingengine

import (
	"log/slog"

	httpadapter "festival/contexts/festival-operations/ranking-engine/adapters/http"
	"festival/contexts/festival-operations/ranking-engine/adapters/memory"
	"festival/contexts/festival-operations/ranking-engine/application"
	"festival/contexts/festival-operations/ranking-engine/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Scores      ports.ScoreSource
	Specialists ports.SpecialistSource
	Teams       ports.TeamSource
	Rankings    ports.RankingRepository
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Scores:      deps.Scores,
		Specialists: deps.Specialists,
		Teams:       deps.Teams,
		Rankings:    deps.Rankings,
		Clock:       deps.Clock,
		IDGen:       deps.IDGen,
		Logger:      deps.Logger,
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
		Scores:      store,
		Specialists: store,
		Teams:       store,
		Rankings:    store,
		Clock:       store,
		IDGen:       store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
