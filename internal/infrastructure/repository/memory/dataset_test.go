package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/pick"
)

func TestCompetitorRepository_StandingsUseRankTies(t *testing.T) {
	t.Parallel()

	data := NewDataset(SeedDemo())
	repo := NewCompetitorRepository(data)

	standings, err := repo.GetStandings(context.Background(), DemoCompetitionID, competitor.GenderMen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[int64]int{1001: 1, 1002: 2, 1003: 2, 1004: 4}
	for id, placement := range want {
		if got := standings[id].Placement; got != placement {
			t.Fatalf("unexpected placement competitor=%d: got=%d want=%d", id, got, placement)
		}
	}
	if got := standings[1001].FinishAt(1); got != 100 {
		t.Fatalf("unexpected finish: got=%v want=100", got)
	}
	if len(standings[1001].Finishes) != 3 {
		t.Fatalf("finishes should cover every workout: %+v", standings[1001].Finishes)
	}
}

func TestCompetitorRepository_ScoresVisibleAfterRefresh(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	data := NewDataset(SeedDemo())
	repo := NewCompetitorRepository(data)

	err := repo.UpsertScores(ctx, []competitor.Score{
		{CompetitionID: DemoCompetitionID, CompetitorID: 1003, Ordinal: 2, Points: 100},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before, _ := repo.GetStandings(ctx, DemoCompetitionID, competitor.GenderMen)
	if before[1003].Points != 94 {
		t.Fatalf("standings must not change before refresh: got=%v", before[1003].Points)
	}

	if err := repo.RefreshStandings(ctx); err != nil {
		t.Fatalf("unexpected refresh error: %v", err)
	}
	after, _ := repo.GetStandings(ctx, DemoCompetitionID, competitor.GenderMen)
	if after[1003].Points != 194 || after[1003].Placement != 1 {
		t.Fatalf("unexpected standing after refresh: %+v", after[1003])
	}
}

func TestPickRepository_ReplaceRestoresOnConflict(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPickRepository(NewDataset(SeedDemo()))

	previous := pick.Slot{CompetitorID: 1001, Rank: 1}
	next := pick.Pick{CompetitorID: 1002, Gender: competitor.GenderMen, Rank: 2}
	err := repo.Replace(ctx, 11, &previous, &next)
	if !errors.Is(err, pick.ErrSlotTaken) {
		t.Fatalf("unexpected error: got=%v want=%v", err, pick.ErrSlotTaken)
	}

	picks, _ := repo.ListByEntry(ctx, 11)
	if len(picks) != 3 || picks[0].CompetitorID != 1001 {
		t.Fatalf("expected previous pick restored: %+v", picks)
	}
}

func TestPickRepository_ReplaceSwapsSlot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPickRepository(NewDataset(SeedDemo()))

	previous := pick.Slot{CompetitorID: 1003, Rank: 2}
	next := pick.Pick{CompetitorID: 1002, Gender: competitor.GenderMen, Rank: 2}
	if err := repo.Replace(ctx, 11, &previous, &next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	grouped := pick.GroupByGender(11, mustList(t, repo, 11))
	if len(grouped.Men) != 2 || grouped.Men[1].CompetitorID != 1002 {
		t.Fatalf("unexpected men picks: %+v", grouped.Men)
	}
}

func TestPickRepository_InsertSameCompetitorAcrossWorkouts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPickRepository(NewDataset(SeedDemo()))

	// entry 21 already holds competitor 1001 at workout 101
	next := pick.Pick{CompetitorID: 1001, Gender: competitor.GenderMen, Rank: 2, WorkoutID: 102}
	if err := repo.Replace(ctx, 21, nil, &next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	grouped := pick.GroupByGender(21, mustList(t, repo, 21))
	if len(grouped.Men) != 2 || grouped.Men[0].WorkoutID != 101 || grouped.Men[1].WorkoutID != 102 {
		t.Fatalf("expected competitor 1001 at both workouts: %+v", grouped.Men)
	}

	if _, err := repo.Insert(ctx, next); !errors.Is(err, pick.ErrDuplicate) {
		t.Fatalf("unexpected error for repeated slot: got=%v want=%v", err, pick.ErrDuplicate)
	}
}

func TestAnalyticsRepository_DraftCounts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewAnalyticsRepository(NewDataset(SeedDemo()))

	counts, err := repo.CountWorkoutPicks(ctx, DemoCompetitionID, 101)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts[1001] != 1 || counts[1002] != 1 || counts[2001] != 1 {
		t.Fatalf("unexpected workout counts: %+v", counts)
	}

	entries, _ := repo.CountWorkoutEntries(ctx, DemoCompetitionID, 101)
	if entries != 2 {
		t.Fatalf("unexpected workout entries: got=%d want=2", entries)
	}

	rp, _ := repo.CountTournamentEntries(ctx, DemoRankTournamentID, competitor.GenderMen)
	if rp != 2 {
		t.Fatalf("unexpected tournament entries: got=%d want=2", rp)
	}
}

func mustList(t *testing.T, repo *PickRepository, entryID int64) []pick.Pick {
	t.Helper()
	items, err := repo.ListByEntry(context.Background(), entryID)
	if err != nil {
		t.Fatalf("list picks: %v", err)
	}
	return items
}
