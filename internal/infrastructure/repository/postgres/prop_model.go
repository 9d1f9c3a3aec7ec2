package postgres

import "time"

type propOptionRow struct {
	PropID        int64    `db:"prop_id"`
	CompetitionID int64    `db:"competition_id"`
	Title         string   `db:"title"`
	Description   string   `db:"description"`
	IsActive      bool     `db:"is_active"`
	IsComplete    bool     `db:"is_complete"`
	OptionID      *int64   `db:"option_id"`
	Label         *string  `db:"label"`
	Points        *float64 `db:"points"`
	IsWinner      *bool    `db:"is_winner"`
	PickCount     int      `db:"pick_count"`
}

type propPickRow struct {
	EntryID  int64 `db:"entry_id"`
	PropID   int64 `db:"prop_id"`
	OptionID int64 `db:"option_id"`
}

type propPickInsertModel struct {
	EntryID   int64     `db:"entry_id"`
	PropID    int64     `db:"prop_id"`
	OptionID  int64     `db:"option_id"`
	UpdatedAt time.Time `db:"updated_at"`
}
