package prop

import "context"

type Repository interface {
	ListByCompetition(ctx context.Context, competitionID int64) ([]Prop, error)
	GetByID(ctx context.Context, propID int64) (Prop, bool, error)
	ListPicksByEntry(ctx context.Context, entryID int64) ([]Pick, error)
	// ListPicksByTournament returns prop picks keyed by entry id.
	ListPicksByTournament(ctx context.Context, tournamentID int64) (map[int64][]Pick, error)
	UpsertPick(ctx context.Context, p Pick) error
}
