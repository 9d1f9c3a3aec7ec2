package tournament

import "context"

type Repository interface {
	GetByID(ctx context.Context, tournamentID int64) (Tournament, bool, error)
	ListEntries(ctx context.Context, tournamentID int64) ([]Entry, error)
	GetEntry(ctx context.Context, entryID int64) (Entry, bool, error)
	GetEntryContext(ctx context.Context, entryID int64) (EntryContext, bool, error)
	ListRankPredictionPickCounts(ctx context.Context, competitionID int64) ([]PickCount, error)
}
