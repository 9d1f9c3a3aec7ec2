package analytics

import (
	"context"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
)

type Repository interface {
	CountTournamentEntries(ctx context.Context, tournamentID int64, gender competitor.Gender) (int, error)
	ListTournamentPickRanks(ctx context.Context, tournamentID int64, gender competitor.Gender) (map[int64][]int, error)
	CountWorkoutPicks(ctx context.Context, competitionID, workoutID int64) (map[int64]int, error)
	CountWorkoutEntries(ctx context.Context, competitionID, workoutID int64) (int, error)
	ListWorkoutPickCounts(ctx context.Context, competitionID int64, ordinal int) ([]WorkoutPickCount, error)
	UpsertCompetitorADP(ctx context.Context, record ADPRecord) error
	UpsertPickPercentage(ctx context.Context, record PickPercentage) error
	ListADP(ctx context.Context, competitionID int64, gender competitor.Gender) ([]ADPRecord, error)
}
