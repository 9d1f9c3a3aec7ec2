package leaderboard

import (
	"testing"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/pick"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/prop"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
)

func TestScoreSide_MatchesLeaderboardRankPrediction(t *testing.T) {
	t.Parallel()

	in := rankInput()
	e := snapshot(5, []pick.Pick{menPick(1, 1), menPick(3, 2)}, []pick.Pick{womenPick(12, 2)})

	side := ScoreSide(in, e)
	board := Build(in, []EntrySnapshot{e})
	if side.Points != board[0].Points {
		t.Fatalf("matchup side disagrees with leaderboard: got=%v want=%v", side.Points, board[0].Points)
	}
	if side.MenPoints != 19 || side.WomenPoints != 10 {
		t.Fatalf("unexpected per gender points: men=%v women=%v", side.MenPoints, side.WomenPoints)
	}
	if len(side.MenPicks) != 2 || len(side.WomenPicks) != 1 {
		t.Fatalf("unexpected scored picks: %+v", side)
	}
}

func TestScoreSide_PositionDraftMatchesLeaderboardRow(t *testing.T) {
	t.Parallel()

	in := Input{
		Rules:        scoring.DefaultRules(),
		Mode:         tournament.ModePositionDraft,
		LockedEvents: 1,
		Ordinals:     map[int64]int{101: 1, 102: 2},
		Men: map[int64]competitor.Standing{
			1: {CompetitorID: 1, Finishes: []float64{50, 80}},
		},
	}
	e := snapshot(1, []pick.Pick{
		{CompetitorID: 1, Gender: competitor.GenderMen, Rank: 1, WorkoutID: 101},
		{CompetitorID: 1, Gender: competitor.GenderMen, Rank: 2, WorkoutID: 102},
	}, nil)

	side := ScoreSide(in, e)
	board := Build(in, []EntrySnapshot{e})
	if side.Points != board[0].Points {
		t.Fatalf("matchup side disagrees with leaderboard: got=%v want=%v", side.Points, board[0].Points)
	}
	if side.Points != 50 || len(side.MenPicks) != 1 {
		t.Fatalf("open workout 2 must not count: points=%v picks=%+v", side.Points, side.MenPicks)
	}
}

func TestFieldSide(t *testing.T) {
	t.Parallel()

	side := FieldSide(rankInput())
	if !side.IsField || side.EntryID != 0 {
		t.Fatalf("unexpected field identity: %+v", side)
	}
	if side.MenPoints != 30 || side.WomenPoints != 20 || side.Points != 50 {
		t.Fatalf("unexpected field points: men=%v women=%v total=%v", side.MenPoints, side.WomenPoints, side.Points)
	}
	if side.MenPicks[0].CompetitorID != 1 || side.MenPicks[2].CompetitorID != 3 {
		t.Fatalf("field picks must follow placement: %+v", side.MenPicks)
	}

	withProps := side.WithProps(tournament.ModePositionDraft, nil, nil)
	if withProps.PropPoints != 0 || len(withProps.PropPicks) != 0 {
		t.Fatalf("field side must not carry props: %+v", withProps)
	}
}

func TestWithProps_KeepsPropPointsSeparate(t *testing.T) {
	t.Parallel()

	props := []prop.Prop{{
		ID:         1,
		IsComplete: true,
		Options: []prop.Option{
			{ID: 10, PropID: 1, Points: 15, IsWinner: true},
			{ID: 11, PropID: 1, Points: 15},
		},
	}}
	picks := []prop.Pick{{EntryID: 1, PropID: 1, OptionID: 10}}

	side := MatchupSide{EntryID: 1, Points: 40}.WithProps(tournament.ModePositionDraft, props, picks)
	if side.PropPoints != 15 || side.PropWins != 1 || side.Points != 40 {
		t.Fatalf("unexpected prop pass: %+v", side)
	}

	rp := MatchupSide{EntryID: 1, Points: 40}.WithProps(tournament.ModeRankPrediction, props, picks)
	if rp.PropPoints != 0 {
		t.Fatalf("rank prediction sides do not score props: %+v", rp)
	}
}
