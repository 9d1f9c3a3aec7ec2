package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competition"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/leaderboard"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
	"github.com/sourcegraph/conc/pool"
)

// tournamentScope is the read model shared by leaderboard and matchup scoring.
type tournamentScope struct {
	tournament  tournament.Tournament
	competition competition.Competition
	ordinals    map[int64]int
	men         map[int64]competitor.Standing
	women       map[int64]competitor.Standing
}

func (sc tournamentScope) input(rules scoring.Rules) leaderboard.Input {
	return leaderboard.Input{
		Rules:        rules,
		Mode:         sc.tournament.Mode,
		LockedEvents: sc.competition.LockedEvents,
		Ordinals:     sc.ordinals,
		Men:          sc.men,
		Women:        sc.women,
	}
}

type scopeLoader struct {
	tournamentRepo  tournament.Repository
	competitionRepo competition.Repository
	competitorRepo  competitor.Repository
}

// load resolves the tournament and then fans out the competition reads.
// A missing competition or empty standings degrade to zero values.
func (l scopeLoader) load(ctx context.Context, tournamentID int64) (tournamentScope, error) {
	if tournamentID <= 0 {
		return tournamentScope{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	t, exists, err := l.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournamentScope{}, fmt.Errorf("%w: get tournament=%d: %w", ErrDependencyUnavailable, tournamentID, err)
	}
	if !exists {
		return tournamentScope{}, fmt.Errorf("%w: tournament=%d not found", ErrNotFound, tournamentID)
	}
	if !t.Mode.Valid() {
		return tournamentScope{}, fmt.Errorf("%w: tournament=%d has unsupported mode", ErrInvalidInput, tournamentID)
	}

	scope := tournamentScope{
		tournament: t,
		ordinals:   map[int64]int{},
		men:        map[int64]competitor.Standing{},
		women:      map[int64]competitor.Standing{},
	}

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		item, ok, err := l.competitionRepo.GetByID(ctx, t.CompetitionID)
		if err != nil {
			return fmt.Errorf("get competition=%d: %w", t.CompetitionID, err)
		}
		if ok {
			scope.competition = item
		} else {
			scope.competition = competition.Competition{ID: t.CompetitionID}
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		workouts, err := l.competitionRepo.ListWorkouts(ctx, t.CompetitionID)
		if err != nil {
			return fmt.Errorf("list workouts competition=%d: %w", t.CompetitionID, err)
		}
		scope.ordinals = competition.OrdinalIndex(workouts)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := l.competitorRepo.GetStandings(ctx, t.CompetitionID, competitor.GenderMen)
		if err != nil {
			return fmt.Errorf("get men standings competition=%d: %w", t.CompetitionID, err)
		}
		if rows != nil {
			scope.men = rows
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := l.competitorRepo.GetStandings(ctx, t.CompetitionID, competitor.GenderWomen)
		if err != nil {
			return fmt.Errorf("get women standings competition=%d: %w", t.CompetitionID, err)
		}
		if rows != nil {
			scope.women = rows
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return tournamentScope{}, fmt.Errorf("%w: %w", ErrDependencyUnavailable, err)
	}

	return scope, nil
}
