package pick

import "context"

type Repository interface {
	ListByEntry(ctx context.Context, entryID int64) ([]Pick, error)
	// ListByTournament returns valid picks keyed by entry id.
	ListByTournament(ctx context.Context, tournamentID int64) (map[int64][]Pick, error)
	Insert(ctx context.Context, p Pick) (int64, error)
	Delete(ctx context.Context, entryID int64, slot Slot) error
	// Replace deletes previous (when set) and inserts next (when set) atomically.
	Replace(ctx context.Context, entryID int64, previous *Slot, next *Pick) error
}
