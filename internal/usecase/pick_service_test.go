package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/pick"
	"github.com/riskibarqy/fantasy-fitness/internal/infrastructure/repository/memory"
)

func TestPickService_SavePick_PositionDraftCompetitorAtTwoWorkouts(t *testing.T) {
	t.Parallel()

	data := memory.NewDataset(memory.SeedDemo())
	service := NewPickService(
		memory.NewTournamentRepository(data),
		memory.NewCompetitionRepository(data),
		memory.NewPickRepository(data),
		nil,
	)

	// entry 21 holds competitor 1001 at workout 101; workout 102 is still open
	got, err := service.SavePick(context.Background(), SavePickInput{
		UserID:  "1",
		EntryID: 21,
		Gender:  competitor.GenderMen,
		Next:    pick.Slot{CompetitorID: 1001, Rank: 2, WorkoutID: 102},
	})
	if err != nil {
		t.Fatalf("SavePick error: %v", err)
	}
	if len(got.Men) != 2 {
		t.Fatalf("unexpected men picks: got=%d want=2", len(got.Men))
	}
	for _, p := range got.Men {
		if p.CompetitorID != 1001 {
			t.Fatalf("expected competitor 1001 in every slot: %+v", got.Men)
		}
	}
}
