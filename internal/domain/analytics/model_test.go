package analytics

import (
	"math"
	"testing"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
)

func TestPaddingValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pickCount int
		want      int
	}{
		{pickCount: 10, want: 15},
		{pickCount: 5, want: 8},
		{pickCount: 1, want: 2},
		{pickCount: 0, want: 0},
	}
	for _, tt := range tests {
		if got := PaddingValue(tt.pickCount); got != tt.want {
			t.Fatalf("PaddingValue(%d)=%d want=%d", tt.pickCount, got, tt.want)
		}
	}
}

func TestComputeADP_PadsMissingEntries(t *testing.T) {
	t.Parallel()

	tallies := []TournamentTally{
		{
			TournamentID: 1,
			PickCount:    10,
			Entries:      4,
			Ranks: map[int64][]int{
				100: {3, 5},
				200: {1, 1, 2, 1},
			},
		},
	}

	got := ComputeADP([]int64{100, 200, 300}, tallies)
	if got[100] != 9.5 {
		t.Fatalf("unexpected adp for 100: got=%v want=9.5", got[100])
	}
	if got[200] != 1.25 {
		t.Fatalf("unexpected adp for 200: got=%v want=1.25", got[200])
	}
	if got[300] != 15 {
		t.Fatalf("unexpected adp for undrafted 300: got=%v want=15", got[300])
	}
}

func TestComputeADP_AcrossTournaments(t *testing.T) {
	t.Parallel()

	tallies := []TournamentTally{
		{TournamentID: 1, PickCount: 10, Entries: 2, Ranks: map[int64][]int{100: {4}}},
		{TournamentID: 2, PickCount: 4, Entries: 1, Ranks: map[int64][]int{}},
	}

	got := ComputeADP([]int64{100}, tallies)
	want := (4.0 + 15.0 + 6.0) / 3.0
	if math.Abs(got[100]-want) > 1e-9 {
		t.Fatalf("unexpected adp: got=%v want=%v", got[100], want)
	}
}

func TestComputeADP_NoSamples(t *testing.T) {
	t.Parallel()

	got := ComputeADP([]int64{100}, nil)
	if got[100] != 0 {
		t.Fatalf("expected 0 adp without tournaments, got %v", got[100])
	}
}

func TestPercentage(t *testing.T) {
	t.Parallel()

	if got := Percentage(3, 0); got != 0 {
		t.Fatalf("expected 0 with zero entries, got %v", got)
	}
	if got := Percentage(1, 4); got != 25 {
		t.Fatalf("unexpected percentage: got=%v want=25", got)
	}
	if got := Percentage(5, 4); got != 100 {
		t.Fatalf("expected clamp to 100, got %v", got)
	}
}

func TestPredictions(t *testing.T) {
	t.Parallel()

	got := Predictions([]WorkoutPickCount{
		{CompetitorID: 1, Gender: competitor.GenderWomen, Picks: 1},
		{CompetitorID: 2, Gender: competitor.GenderMen, Picks: 1},
		{CompetitorID: 3, Gender: competitor.GenderMen, Picks: 3},
	})

	if len(got) != 3 {
		t.Fatalf("unexpected prediction count: %d", len(got))
	}
	if got[0].CompetitorID != 3 || got[0].Percentile != 75 {
		t.Fatalf("unexpected first prediction: %+v", got[0])
	}
	if got[1].CompetitorID != 2 || got[1].Percentile != 25 {
		t.Fatalf("unexpected second prediction: %+v", got[1])
	}
	if got[2].CompetitorID != 1 || got[2].Percentile != 100 {
		t.Fatalf("unexpected third prediction: %+v", got[2])
	}
}
