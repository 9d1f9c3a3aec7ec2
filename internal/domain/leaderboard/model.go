package leaderboard

import (
	"github.com/riskibarqy/fantasy-fitness/internal/domain/pick"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/prop"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
)

// EntrySnapshot is an entry together with the picks it currently holds.
type EntrySnapshot struct {
	EntryID     int64
	UserID      int64
	DisplayName string
	Avatar      string
	Picks       pick.EntryPicks
}

// Entry is one ranked leaderboard row.
type Entry struct {
	EntryID     int64
	UserID      int64
	DisplayName string
	Avatar      string
	MenPoints   float64
	WomenPoints float64
	Points      float64
	Tiebreak    int
	Rank        int
}

type Board struct {
	TournamentID    int64
	CompetitionID   int64
	TournamentName  string
	CompetitionName string
	CompetitionLogo string
	Mode            tournament.Mode
	LockedEvents    int
	Entries         []Entry
}

// MatchupSide is one participant of a head-to-head comparison. Prop points
// are reported next to Points and never folded into it.
type MatchupSide struct {
	EntryID     int64
	DisplayName string
	Avatar      string
	IsField     bool
	MenPoints   float64
	WomenPoints float64
	Points      float64
	MenPicks    []scoring.ScoredPick
	WomenPicks  []scoring.ScoredPick
	PropPoints  float64
	PropWins    int
	PropPicks   []prop.ScoredPick
}

type Matchup struct {
	TournamentID int64
	Mode         tournament.Mode
	Entry        MatchupSide
	Opponent     MatchupSide
}
