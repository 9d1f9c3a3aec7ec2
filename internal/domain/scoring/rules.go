package scoring

import "github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"

// Rules holds the per-mode scoring constants.
type Rules struct {
	RankMaxPoints             float64
	RankTopN                  int
	RankPerfectPick           float64
	DraftPerfectPick          float64
	FieldPointsRankPrediction float64
	FieldPointsPositionDraft  float64
}

func DefaultRules() Rules {
	return Rules{
		RankMaxPoints:             10,
		RankTopN:                  15,
		RankPerfectPick:           10,
		DraftPerfectPick:          100,
		FieldPointsRankPrediction: 10,
		FieldPointsPositionDraft:  100,
	}
}

// Normalize fills zero fields with defaults.
func (r Rules) Normalize() Rules {
	d := DefaultRules()
	if r.RankMaxPoints <= 0 {
		r.RankMaxPoints = d.RankMaxPoints
	}
	if r.RankTopN <= 0 {
		r.RankTopN = d.RankTopN
	}
	if r.RankPerfectPick <= 0 {
		r.RankPerfectPick = r.RankMaxPoints
	}
	if r.DraftPerfectPick <= 0 {
		r.DraftPerfectPick = d.DraftPerfectPick
	}
	if r.FieldPointsRankPrediction <= 0 {
		r.FieldPointsRankPrediction = r.RankMaxPoints
	}
	if r.FieldPointsPositionDraft <= 0 {
		r.FieldPointsPositionDraft = r.DraftPerfectPick
	}
	return r
}

// PerfectPick is the score that counts toward the leaderboard tiebreak.
func (r Rules) PerfectPick(mode tournament.Mode) float64 {
	switch mode {
	case tournament.ModeRankPrediction:
		return r.RankPerfectPick
	case tournament.ModePositionDraft:
		return r.DraftPerfectPick
	default:
		return 0
	}
}

func (r Rules) IsPerfect(mode tournament.Mode, points float64) bool {
	perfect := r.PerfectPick(mode)
	return perfect > 0 && points == perfect
}

func (r Rules) fieldPoints(mode tournament.Mode) float64 {
	if mode == tournament.ModePositionDraft {
		return r.FieldPointsPositionDraft
	}
	return r.FieldPointsRankPrediction
}
