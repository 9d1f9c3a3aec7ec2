package leaderboard

import (
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/prop"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
)

// ScoreSide scores an entry for a matchup. Points match the entry's Build row:
// open PositionDraft workouts are left out.
func ScoreSide(in Input, e EntrySnapshot) MatchupSide {
	rules := in.Rules.Normalize()
	side := MatchupSide{
		EntryID:     e.EntryID,
		DisplayName: e.DisplayName,
		Avatar:      e.Avatar,
	}

	men := in.scoreGender(rules, competitor.GenderMen, e.Picks.Men)
	women := in.scoreGender(rules, competitor.GenderWomen, e.Picks.Women)

	side.MenPicks = men
	side.WomenPicks = women
	side.MenPoints = scoring.Sum(men)
	side.WomenPoints = scoring.Sum(women)
	side.Points = side.MenPoints + side.WomenPoints
	side.PropPicks = []prop.ScoredPick{}
	return side
}

// FieldSide is the perfect-foresight opponent used when no opponent entry is given.
func FieldSide(in Input) MatchupSide {
	rules := in.Rules.Normalize()
	men := scoring.FieldBaseline(rules, in.Mode, in.Men)
	women := scoring.FieldBaseline(rules, in.Mode, in.Women)
	side := MatchupSide{
		DisplayName: "Field",
		IsField:     true,
		MenPicks:    men,
		WomenPicks:  women,
		MenPoints:   scoring.Sum(men),
		WomenPoints: scoring.Sum(women),
		PropPicks:   []prop.ScoredPick{},
	}
	side.Points = side.MenPoints + side.WomenPoints
	return side
}

// WithProps attaches a prop pass to a PositionDraft side.
func (s MatchupSide) WithProps(mode tournament.Mode, props []prop.Prop, picks []prop.Pick) MatchupSide {
	if mode != tournament.ModePositionDraft || s.IsField {
		return s
	}
	points, wins, scored := prop.Score(props, picks)
	s.PropPoints = points
	s.PropWins = wins
	s.PropPicks = scored
	return s
}
