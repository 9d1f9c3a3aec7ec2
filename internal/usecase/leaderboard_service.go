package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competition"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/leaderboard"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/pick"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
)

type LeaderboardService struct {
	scope          scopeLoader
	tournamentRepo tournament.Repository
	pickRepo       pick.Repository
	rules          scoring.Rules
}

func NewLeaderboardService(
	tournamentRepo tournament.Repository,
	competitionRepo competition.Repository,
	competitorRepo competitor.Repository,
	pickRepo pick.Repository,
	rules scoring.Rules,
) *LeaderboardService {
	return &LeaderboardService{
		scope: scopeLoader{
			tournamentRepo:  tournamentRepo,
			competitionRepo: competitionRepo,
			competitorRepo:  competitorRepo,
		},
		tournamentRepo: tournamentRepo,
		pickRepo:       pickRepo,
		rules:          rules.Normalize(),
	}
}

func (s *LeaderboardService) GetLeaderboard(ctx context.Context, tournamentID int64) (leaderboard.Board, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetLeaderboard", tournamentAttr(tournamentID))
	defer span.End()

	scope, err := s.scope.load(ctx, tournamentID)
	if err != nil {
		return leaderboard.Board{}, err
	}

	entries, err := s.tournamentRepo.ListEntries(ctx, tournamentID)
	if err != nil {
		return leaderboard.Board{}, fmt.Errorf("%w: list entries tournament=%d: %w", ErrDependencyUnavailable, tournamentID, err)
	}
	picksByEntry, err := s.pickRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return leaderboard.Board{}, fmt.Errorf("%w: list picks tournament=%d: %w", ErrDependencyUnavailable, tournamentID, err)
	}

	snapshots := make([]leaderboard.EntrySnapshot, 0, len(entries))
	for _, e := range entries {
		snapshots = append(snapshots, entrySnapshot(e, picksByEntry[e.ID]))
	}

	return leaderboard.Board{
		TournamentID:    scope.tournament.ID,
		CompetitionID:   scope.tournament.CompetitionID,
		TournamentName:  scope.tournament.Name,
		CompetitionName: scope.tournament.CompetitionName,
		CompetitionLogo: scope.tournament.CompetitionLogo,
		Mode:            scope.tournament.Mode,
		LockedEvents:    scope.competition.LockedEvents,
		Entries:         leaderboard.Build(scope.input(s.rules), snapshots),
	}, nil
}

func entrySnapshot(e tournament.Entry, picks []pick.Pick) leaderboard.EntrySnapshot {
	return leaderboard.EntrySnapshot{
		EntryID:     e.ID,
		UserID:      e.UserID,
		DisplayName: e.DisplayName,
		Avatar:      e.Avatar,
		Picks:       pick.GroupByGender(e.ID, picks),
	}
}
