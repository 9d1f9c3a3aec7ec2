package postgres

import "database/sql"

const (
	pickCompetitorConstraint = "entry_picks_competitor_rank_key"
	pickSlotConstraint       = "entry_picks_slot_key"
)

type pickTableModel struct {
	ID           int64         `db:"id"`
	EntryID      int64         `db:"entry_id"`
	CompetitorID int64         `db:"competitor_id"`
	Gender       int           `db:"gender"`
	Rank         int           `db:"rank"`
	WorkoutID    sql.NullInt64 `db:"workout_id"`
	Invalid      bool          `db:"invalid"`
}
