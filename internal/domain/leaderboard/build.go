package leaderboard

import (
	"sort"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/pick"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
)

// Input carries everything needed to score a tournament's entries.
// Ordinals maps workout id to workout ordinal.
type Input struct {
	Rules        scoring.Rules
	Mode         tournament.Mode
	LockedEvents int
	Ordinals     map[int64]int
	Men          map[int64]competitor.Standing
	Women        map[int64]competitor.Standing
}

func (in Input) standings(g competitor.Gender) map[int64]competitor.Standing {
	if g == competitor.GenderWomen {
		return in.Women
	}
	return in.Men
}

// scoreGender scores one division of an entry with the lock filter applied.
// Shared by Build and ScoreSide.
func (in Input) scoreGender(rules scoring.Rules, g competitor.Gender, picks []pick.Pick) []scoring.ScoredPick {
	resolved := ResolvePicks(in.Mode, picks, in.Ordinals, in.LockedEvents, true)
	return scoring.ScorePicks(rules, in.Mode, resolved, in.standings(g))
}

// ResolvePicks converts stored picks into scoring picks. A workout-bound pick
// takes the workout's ordinal; an unknown workout resolves to ordinal 0.
// When lockFilter is set, PositionDraft picks past lockedEvents are dropped.
func ResolvePicks(mode tournament.Mode, picks []pick.Pick, ordinals map[int64]int, lockedEvents int, lockFilter bool) []scoring.Pick {
	out := make([]scoring.Pick, 0, len(picks))
	for _, p := range picks {
		ordinal := p.Rank
		if p.WorkoutID != 0 {
			ordinal = ordinals[p.WorkoutID]
		}
		if lockFilter && mode == tournament.ModePositionDraft && ordinal > lockedEvents {
			continue
		}
		out = append(out, scoring.Pick{
			CompetitorID: p.CompetitorID,
			Rank:         p.Rank,
			Ordinal:      ordinal,
		})
	}
	return out
}

// Build scores, sorts and ranks every entry. Entries without picks stay on
// the board with zero points.
func Build(in Input, entries []EntrySnapshot) []Entry {
	rules := in.Rules.Normalize()
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		row := Entry{
			EntryID:     e.EntryID,
			UserID:      e.UserID,
			DisplayName: e.DisplayName,
			Avatar:      e.Avatar,
		}
		for _, g := range competitor.Genders {
			scored := in.scoreGender(rules, g, e.Picks.ByGender(g))
			points := scoring.Sum(scored)
			if g == competitor.GenderMen {
				row.MenPoints = points
			} else {
				row.WomenPoints = points
			}
			row.Tiebreak += scoring.CountPerfect(rules, in.Mode, scored)
		}
		row.Points = row.MenPoints + row.WomenPoints
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].Tiebreak != out[j].Tiebreak {
			return out[i].Tiebreak > out[j].Tiebreak
		}
		return out[i].EntryID < out[j].EntryID
	})

	ranks := CompetitionRanks(len(out), func(i, j int) bool {
		return out[i].Points == out[j].Points && out[i].Tiebreak == out[j].Tiebreak
	})
	for i := range out {
		out[i].Rank = ranks[i]
	}
	return out
}

// CompetitionRanks assigns SQL RANK() positions to an already sorted list:
// tied neighbours share a rank and the next distinct row takes its 1-based
// position.
func CompetitionRanks(n int, tied func(prev, cur int) bool) []int {
	ranks := make([]int, n)
	for i := 0; i < n; i++ {
		if i > 0 && tied(i-1, i) {
			ranks[i] = ranks[i-1]
			continue
		}
		ranks[i] = i + 1
	}
	return ranks
}
