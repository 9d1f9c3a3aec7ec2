package postgres

import "time"

type competitorRankRow struct {
	CompetitorID int64 `db:"competitor_id"`
	Rank         int   `db:"rank"`
}

type competitorCountRow struct {
	CompetitorID int64 `db:"competitor_id"`
	Picks        int   `db:"picks"`
}

type workoutPickCountRow struct {
	CompetitorID int64  `db:"competitor_id"`
	Gender       int    `db:"gender"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Picks        int    `db:"picks"`
}

type adpRow struct {
	CompetitionID int64   `db:"competition_id"`
	CompetitorID  int64   `db:"competitor_id"`
	Gender        int     `db:"gender"`
	ADP           float64 `db:"adp"`
}

type adpInsertModel struct {
	CompetitionID int64     `db:"competition_id"`
	CompetitorID  int64     `db:"competitor_id"`
	Gender        int       `db:"gender"`
	ADP           float64   `db:"adp"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type pickPercentageInsertModel struct {
	CompetitionID int64     `db:"competition_id"`
	WorkoutID     int64     `db:"workout_id"`
	CompetitorID  int64     `db:"competitor_id"`
	Picks         int       `db:"picks"`
	Entries       int       `db:"entries"`
	Percentage    float64   `db:"percentage"`
	UpdatedAt     time.Time `db:"updated_at"`
}
