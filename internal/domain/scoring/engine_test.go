package scoring

import (
	"testing"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
)

func TestRankPrediction(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()
	tests := []struct {
		name      string
		predicted int
		placement int
		want      float64
	}{
		{name: "exact", predicted: 4, placement: 4, want: 10},
		{name: "under predicted", predicted: 3, placement: 5, want: 8},
		{name: "over predicted is symmetric", predicted: 5, placement: 3, want: 8},
		{name: "outside top fifteen", predicted: 1, placement: 20, want: 0},
		{name: "boundary fifteen", predicted: 10, placement: 15, want: 5},
		{name: "no placement", predicted: 1, placement: 0, want: 0},
		{name: "floor at zero", predicted: 1, placement: 14, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RankPrediction(rules, tt.predicted, tt.placement); got != tt.want {
				t.Fatalf("RankPrediction(%d,%d)=%v want=%v", tt.predicted, tt.placement, got, tt.want)
			}
		})
	}
}

func TestScore_PositionDraftUsesOrdinal(t *testing.T) {
	t.Parallel()

	standings := map[int64]competitor.Standing{
		7: {CompetitorID: 7, Placement: 2, Finishes: []float64{60, 95, 87.5}},
	}

	got := Score(DefaultRules(), tournament.ModePositionDraft, Pick{CompetitorID: 7, Rank: 1, Ordinal: 3}, standings)
	if got.Points != 87.5 {
		t.Fatalf("unexpected points: got=%v want=87.5", got.Points)
	}

	unscored := Score(DefaultRules(), tournament.ModePositionDraft, Pick{CompetitorID: 7, Ordinal: 4}, standings)
	if unscored.Points != 0 {
		t.Fatalf("expected 0 for unscored ordinal, got %v", unscored.Points)
	}

	unknown := Score(DefaultRules(), tournament.ModePositionDraft, Pick{CompetitorID: 8, Ordinal: 1}, standings)
	if unknown.Points != 0 || unknown.CompetitorID != 8 {
		t.Fatalf("unexpected score for unknown competitor: %+v", unknown)
	}
}

func TestScore_WithdrawnKeepsPointsAndIsFinal(t *testing.T) {
	t.Parallel()

	standings := map[int64]competitor.Standing{
		7: {CompetitorID: 7, Placement: 3, Withdrawn: true, Finishes: []float64{100}},
	}

	rp := Score(DefaultRules(), tournament.ModeRankPrediction, Pick{CompetitorID: 7, Rank: 3}, standings)
	if rp.Points != 10 || !rp.Final || !rp.Withdrawn {
		t.Fatalf("unexpected rank prediction score: %+v", rp)
	}

	pd := Score(DefaultRules(), tournament.ModePositionDraft, Pick{CompetitorID: 7, Ordinal: 1}, standings)
	if pd.Points != 100 || !pd.Final {
		t.Fatalf("unexpected position draft score: %+v", pd)
	}
}

func TestCountPerfect(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()
	picks := []ScoredPick{{Points: 10}, {Points: 9}, {Points: 100}}
	if got := CountPerfect(rules, tournament.ModeRankPrediction, picks); got != 1 {
		t.Fatalf("unexpected rank prediction perfect count: got=%d want=1", got)
	}
	if got := CountPerfect(rules, tournament.ModePositionDraft, picks); got != 1 {
		t.Fatalf("unexpected position draft perfect count: got=%d want=1", got)
	}
	if got := Sum(picks); got != 119 {
		t.Fatalf("unexpected sum: got=%v want=119", got)
	}
}

func TestFieldBaseline(t *testing.T) {
	t.Parallel()

	standings := map[int64]competitor.Standing{
		1: {CompetitorID: 1, Placement: 2},
		2: {CompetitorID: 2, Placement: 1},
		3: {CompetitorID: 3, Placement: 16},
		4: {CompetitorID: 4, Placement: 0},
	}

	got := FieldBaseline(DefaultRules(), tournament.ModeRankPrediction, standings)
	wantOrder := []int64{2, 1, 3, 4}
	for i, id := range wantOrder {
		if got[i].CompetitorID != id {
			t.Fatalf("unexpected order at %d: got=%d want=%d", i, got[i].CompetitorID, id)
		}
	}
	if got[0].Points != 10 || got[0].PredictedRank != 1 {
		t.Fatalf("unexpected field pick: %+v", got[0])
	}
	if got[2].Points != 0 || got[3].Points != 0 {
		t.Fatalf("expected no field points outside top fifteen: %+v %+v", got[2], got[3])
	}
	if Sum(got) != 20 {
		t.Fatalf("unexpected field total: got=%v want=20", Sum(got))
	}

	draft := FieldBaseline(DefaultRules(), tournament.ModePositionDraft, standings)
	if Sum(draft) != 200 {
		t.Fatalf("unexpected position draft field total: got=%v want=200", Sum(draft))
	}
}

func TestRulesNormalize(t *testing.T) {
	t.Parallel()

	got := Rules{RankMaxPoints: 20}.Normalize()
	if got.RankPerfectPick != 20 || got.FieldPointsRankPrediction != 20 {
		t.Fatalf("expected perfect pick to follow max points: %+v", got)
	}
	if got.RankTopN != 15 || got.DraftPerfectPick != 100 {
		t.Fatalf("expected defaults for unset fields: %+v", got)
	}
}

func TestRulesNormalize_NonPositivePerfectPickStaysActive(t *testing.T) {
	t.Parallel()

	rules := Rules{RankMaxPoints: 10, RankPerfectPick: 0, DraftPerfectPick: -1}.Normalize()
	if !rules.IsPerfect(tournament.ModeRankPrediction, 10) {
		t.Fatalf("expected rank perfect pick to fall back to max points: %+v", rules)
	}
	if !rules.IsPerfect(tournament.ModePositionDraft, 100) {
		t.Fatalf("expected draft perfect pick to fall back to 100: %+v", rules)
	}
}
