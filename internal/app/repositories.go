package app

import (
	"context"

	"github.com/riskibarqy/fantasy-fitness/internal/config"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/analytics"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competition"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/pick"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/prop"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
	cacherepo "github.com/riskibarqy/fantasy-fitness/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy-fitness/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-fitness/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fantasy-fitness/internal/platform/cache"
	"github.com/riskibarqy/fantasy-fitness/internal/platform/logging"
	"github.com/riskibarqy/fantasy-fitness/internal/usecase"
)

type repositories struct {
	competition competition.Repository
	competitor  competitor.Repository
	tournament  tournament.Repository
	pick        pick.Repository
	prop        prop.Repository
	analytics   analytics.Repository
	invalidator usecase.StandingsInvalidator
	close       func() error
}

// newRepositories picks postgres when DB_URL is set and the seeded in-memory
// dataset otherwise. Competition and competitor reads go through the
// read-through cache when CACHE_ENABLED=true.
func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	var repos repositories
	repos.close = func() error { return nil }

	if cfg.DBURL == "" {
		data := memory.NewDataset(memory.SeedDemo())
		repos.competition = memory.NewCompetitionRepository(data)
		repos.competitor = memory.NewCompetitorRepository(data)
		repos.tournament = memory.NewTournamentRepository(data)
		repos.pick = memory.NewPickRepository(data)
		repos.prop = memory.NewPropRepository(data)
		repos.analytics = memory.NewAnalyticsRepository(data)
		logger.Warn("DB_URL empty, serving seeded in-memory dataset")
	} else {
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		repos.competition = postgres.NewCompetitionRepository(db)
		repos.competitor = postgres.NewCompetitorRepository(db)
		repos.tournament = postgres.NewTournamentRepository(db)
		repos.pick = postgres.NewPickRepository(db)
		repos.prop = postgres.NewPropRepository(db)
		repos.analytics = postgres.NewAnalyticsRepository(db)
		repos.close = db.Close
		logger.Info("postgres connected", "db_name", dbNameFromURL(cfg.DBURL))
	}

	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		cachedCompetitor := cacherepo.NewCompetitorRepository(repos.competitor, store)
		repos.competition = cacherepo.NewCompetitionRepository(repos.competition, store)
		repos.competitor = cachedCompetitor
		repos.invalidator = cachedCompetitor
	}

	return repos, nil
}
