package postgres

type tournamentRow struct {
	ID              int64  `db:"id"`
	CompetitionID   int64  `db:"competition_id"`
	Name            string `db:"name"`
	Mode            int    `db:"mode"`
	PickCount       int    `db:"pick_count"`
	CompetitionName string `db:"competition_name"`
	CompetitionLogo string `db:"competition_logo"`
}

type entryRow struct {
	ID           int64  `db:"id"`
	TournamentID int64  `db:"tournament_id"`
	UserID       int64  `db:"user_id"`
	DisplayName  string `db:"display_name"`
	Avatar       string `db:"avatar"`
}

type entryContextRow struct {
	EntryID       int64 `db:"entry_id"`
	TournamentID  int64 `db:"tournament_id"`
	CompetitionID int64 `db:"competition_id"`
	UserID        int64 `db:"user_id"`
	Mode          int   `db:"mode"`
	LockedEvents  int   `db:"locked_events"`
	IsActive      bool  `db:"is_active"`
	IsComplete    bool  `db:"is_complete"`
}

type pickCountRow struct {
	TournamentID int64 `db:"id"`
	PickCount    int   `db:"pick_count"`
}
