package scoring

import (
	"math"
	"sort"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
)

// Pick is a pick resolved for scoring. Ordinal is the bound workout's ordinal
// and is only read in PositionDraft mode.
type Pick struct {
	CompetitorID int64
	Rank         int
	Ordinal      int
}

type ScoredPick struct {
	CompetitorID  int64
	PredictedRank int
	Ordinal       int
	Placement     int
	FirstName     string
	LastName      string
	Points        float64
	EventPoints   float64
	Withdrawn     bool
	Cut           bool
	Suspended     bool
	Final         bool
}

// RankPrediction scores a predicted finish against the actual placement.
func RankPrediction(rules Rules, predicted, placement int) float64 {
	if placement <= 0 || placement > rules.RankTopN {
		return 0
	}
	diff := predicted - placement
	if diff < 0 {
		diff = -diff
	}
	return math.Max(0, rules.RankMaxPoints-float64(diff))
}

// PositionDraft returns the competitor's recorded score at the workout ordinal.
func PositionDraft(standing competitor.Standing, ordinal int) float64 {
	return standing.FinishAt(ordinal)
}

// Score scores one pick. Unknown competitors and unknown modes score 0.
func Score(rules Rules, mode tournament.Mode, p Pick, standings map[int64]competitor.Standing) ScoredPick {
	standing, ok := standings[p.CompetitorID]
	out := ScoredPick{
		CompetitorID:  p.CompetitorID,
		PredictedRank: p.Rank,
		Ordinal:       p.Ordinal,
	}
	if !ok {
		return out
	}

	out.Placement = standing.Placement
	out.FirstName = standing.FirstName
	out.LastName = standing.LastName
	out.EventPoints = standing.Points
	out.Withdrawn = standing.Withdrawn
	out.Cut = standing.Cut
	out.Suspended = standing.Suspended
	out.Final = standing.Withdrawn

	switch mode {
	case tournament.ModeRankPrediction:
		out.Points = RankPrediction(rules, p.Rank, standing.Placement)
	case tournament.ModePositionDraft:
		out.Points = PositionDraft(standing, p.Ordinal)
	}
	return out
}

func ScorePicks(rules Rules, mode tournament.Mode, picks []Pick, standings map[int64]competitor.Standing) []ScoredPick {
	out := make([]ScoredPick, 0, len(picks))
	for _, p := range picks {
		out = append(out, Score(rules, mode, p, standings))
	}
	return out
}

func Sum(picks []ScoredPick) float64 {
	var total float64
	for _, p := range picks {
		total += p.Points
	}
	return total
}

// CountPerfect counts picks that hit the mode's perfect-pick score.
func CountPerfect(rules Rules, mode tournament.Mode, picks []ScoredPick) int {
	n := 0
	for _, p := range picks {
		if rules.IsPerfect(mode, p.Points) {
			n++
		}
	}
	return n
}

// FieldBaseline builds the synthetic perfect-foresight opponent: every
// competitor predicted at its own placement, top-N finishers earning the
// mode's field points.
func FieldBaseline(rules Rules, mode tournament.Mode, standings map[int64]competitor.Standing) []ScoredPick {
	rows := make([]competitor.Standing, 0, len(standings))
	for _, s := range standings {
		rows = append(rows, s)
	}
	sort.Slice(rows, func(i, j int) bool {
		pi, pj := placementKey(rows[i].Placement), placementKey(rows[j].Placement)
		if pi != pj {
			return pi < pj
		}
		return rows[i].CompetitorID < rows[j].CompetitorID
	})

	fieldPoints := rules.fieldPoints(mode)
	out := make([]ScoredPick, 0, len(rows))
	for _, s := range rows {
		item := ScoredPick{
			CompetitorID:  s.CompetitorID,
			PredictedRank: s.Placement,
			Placement:     s.Placement,
			FirstName:     s.FirstName,
			LastName:      s.LastName,
			EventPoints:   s.Points,
		}
		if s.Placement > 0 && s.Placement <= rules.RankTopN {
			item.Points = fieldPoints
		}
		out = append(out, item)
	}
	return out
}

// placementKey sorts unplaced competitors last.
func placementKey(placement int) int {
	if placement <= 0 {
		return math.MaxInt
	}
	return placement
}
