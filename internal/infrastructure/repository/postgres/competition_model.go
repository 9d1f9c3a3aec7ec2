package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type competitionTableModel struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Logo         string    `db:"logo"`
	IsActive     bool      `db:"is_active"`
	IsComplete   bool      `db:"is_complete"`
	LockedEvents int       `db:"locked_events"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type workoutTableModel struct {
	ID            int64        `db:"id"`
	CompetitionID int64        `db:"competition_id"`
	Name          string       `db:"name"`
	Ordinal       int          `db:"ordinal"`
	StartTime     sql.NullTime `db:"start_time"`
	Location      string       `db:"location"`
	Description   string       `db:"description"`
	IsActive      bool         `db:"is_active"`
	IsComplete    bool         `db:"is_complete"`
}

type competitorTableModel struct {
	ID            int64   `db:"id"`
	CompetitionID int64   `db:"competition_id"`
	Gender        int     `db:"gender"`
	FirstName     string  `db:"first_name"`
	LastName      string  `db:"last_name"`
	Withdrawn     bool    `db:"withdrawn"`
	Cut           bool    `db:"cut"`
	Suspended     bool    `db:"suspended"`
	ADP           float64 `db:"adp"`
}

type standingViewModel struct {
	CompetitorID  int64           `db:"competitor_id"`
	CompetitionID int64           `db:"competition_id"`
	Gender        int             `db:"gender"`
	FirstName     string          `db:"first_name"`
	LastName      string          `db:"last_name"`
	Withdrawn     bool            `db:"withdrawn"`
	Cut           bool            `db:"cut"`
	Suspended     bool            `db:"suspended"`
	Points        float64         `db:"points"`
	Placement     int             `db:"placement"`
	Finishes      pq.Float64Array `db:"finishes"`
}

type scoreInsertModel struct {
	CompetitionID int64   `db:"competition_id"`
	CompetitorID  int64   `db:"competitor_id"`
	Ordinal       int     `db:"ordinal"`
	Points        float64 `db:"points"`
}

type eventResultRow struct {
	CompetitorID int64   `db:"competitor_id"`
	Ordinal      int     `db:"ordinal"`
	Points       float64 `db:"points"`
}
