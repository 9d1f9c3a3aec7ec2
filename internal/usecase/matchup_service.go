package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competition"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/leaderboard"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/pick"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/prop"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
	"golang.org/x/sync/errgroup"
)

type MatchupService struct {
	scope          scopeLoader
	tournamentRepo tournament.Repository
	pickRepo       pick.Repository
	propRepo       prop.Repository
	rules          scoring.Rules
}

func NewMatchupService(
	tournamentRepo tournament.Repository,
	competitionRepo competition.Repository,
	competitorRepo competitor.Repository,
	pickRepo pick.Repository,
	propRepo prop.Repository,
	rules scoring.Rules,
) *MatchupService {
	return &MatchupService{
		scope: scopeLoader{
			tournamentRepo:  tournamentRepo,
			competitionRepo: competitionRepo,
			competitorRepo:  competitorRepo,
		},
		tournamentRepo: tournamentRepo,
		pickRepo:       pickRepo,
		propRepo:       propRepo,
		rules:          rules.Normalize(),
	}
}

// GetMatchup compares an entry against another entry, or against the field
// baseline when opponentID is 0.
func (s *MatchupService) GetMatchup(ctx context.Context, tournamentID, entryID, opponentID int64) (leaderboard.Matchup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.GetMatchup", tournamentAttr(tournamentID), entryAttr(entryID))
	defer span.End()

	if entryID <= 0 {
		return leaderboard.Matchup{}, fmt.Errorf("%w: entry id is required", ErrInvalidInput)
	}
	if opponentID < 0 {
		return leaderboard.Matchup{}, fmt.Errorf("%w: opponent id must be >= 0", ErrInvalidInput)
	}

	scope, err := s.scope.load(ctx, tournamentID)
	if err != nil {
		return leaderboard.Matchup{}, err
	}
	in := scope.input(s.rules)

	var props []prop.Prop
	if scope.tournament.Mode == tournament.ModePositionDraft && s.propRepo != nil {
		props, err = s.propRepo.ListByCompetition(ctx, scope.tournament.CompetitionID)
		if err != nil {
			return leaderboard.Matchup{}, fmt.Errorf("%w: list props competition=%d: %w", ErrDependencyUnavailable, scope.tournament.CompetitionID, err)
		}
	}

	out := leaderboard.Matchup{
		TournamentID: tournamentID,
		Mode:         scope.tournament.Mode,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		side, err := s.loadSide(gctx, in, props, tournamentID, entryID)
		if err != nil {
			return err
		}
		out.Entry = side
		return nil
	})
	g.Go(func() error {
		if opponentID == 0 {
			out.Opponent = leaderboard.FieldSide(in)
			return nil
		}
		side, err := s.loadSide(gctx, in, props, tournamentID, opponentID)
		if err != nil {
			return err
		}
		out.Opponent = side
		return nil
	})
	if err := g.Wait(); err != nil {
		return leaderboard.Matchup{}, err
	}

	return out, nil
}

func (s *MatchupService) loadSide(
	ctx context.Context,
	in leaderboard.Input,
	props []prop.Prop,
	tournamentID, entryID int64,
) (leaderboard.MatchupSide, error) {
	entry, exists, err := s.tournamentRepo.GetEntry(ctx, entryID)
	if err != nil {
		return leaderboard.MatchupSide{}, fmt.Errorf("%w: get entry=%d: %w", ErrDependencyUnavailable, entryID, err)
	}
	if !exists || entry.TournamentID != tournamentID {
		return leaderboard.MatchupSide{}, fmt.Errorf("%w: entry=%d not found in tournament=%d", ErrNotFound, entryID, tournamentID)
	}

	picks, err := s.pickRepo.ListByEntry(ctx, entryID)
	if err != nil {
		return leaderboard.MatchupSide{}, fmt.Errorf("%w: list picks entry=%d: %w", ErrDependencyUnavailable, entryID, err)
	}
	side := leaderboard.ScoreSide(in, entrySnapshot(entry, picks))

	if in.Mode != tournament.ModePositionDraft || s.propRepo == nil {
		return side, nil
	}
	propPicks, err := s.propRepo.ListPicksByEntry(ctx, entryID)
	if err != nil {
		return leaderboard.MatchupSide{}, fmt.Errorf("%w: list prop picks entry=%d: %w", ErrDependencyUnavailable, entryID, err)
	}
	return side.WithProps(in.Mode, props, propPicks), nil
}
