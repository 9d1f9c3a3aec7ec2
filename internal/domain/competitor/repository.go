package competitor

import "context"

type Repository interface {
	ListByCompetition(ctx context.Context, competitionID int64) ([]Competitor, error)
	ListIDsByCompetitionAndGender(ctx context.Context, competitionID int64, gender Gender) ([]int64, error)
	ListEventResults(ctx context.Context, competitionID int64, ordinal int) ([]EventResult, error)
	GetStandings(ctx context.Context, competitionID int64, gender Gender) (map[int64]Standing, error)
	UpsertScores(ctx context.Context, scores []Score) error
	RefreshStandings(ctx context.Context) error
}
