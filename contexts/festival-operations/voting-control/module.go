package votingcontrol

import (
	"log/slog"

	httpadapter "festival/contexts/festival-operations/voting-control/adapters/http"
	"festival/contexts/festival-operations/voting-control/adapters/memory"
	"festival/contexts/festival-operations/voting-control/application/commands"
	"festival/contexts/festival-operations/voting-control/application/queries"
	"festival/contexts/festival-operations/voting-control/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Scores ports.ScoreRepository
	Roster ports.RosterDirectory
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	sessions := commands.SessionUseCase{
		Scores: deps.Scores,
		Roster: deps.Roster,
		Clock:  deps.Clock,
		IDGen:  deps.IDGen,
		Logger: deps.Logger,
	}
	scores := commands.ScoreUseCase{
		Scores: deps.Scores,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	ballots := queries.BallotUseCase{
		Scores: deps.Scores,
		Roster: deps.Roster,
	}
	overview := queries.OverviewUseCase{
		Scores: deps.Scores,
		Roster: deps.Roster,
	}
	return Module{
		Handler: httpadapter.Handler{
			Sessions: sessions,
			Scores:   scores,
			Ballots:  ballots,
			Overview: overview,
			Logger:   deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Scores: store,
		Roster: store,
		Clock:  store,
		IDGen:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
