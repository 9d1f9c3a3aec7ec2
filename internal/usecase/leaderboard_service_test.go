package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competition"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/pick"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
)

const (
	testCompetitionID = int64(42)
	testTournamentID  = int64(7)
)

func draftFixture() (*stubTournamentRepository, *stubCompetitionRepository, *stubCompetitorRepository, *stubPickRepository) {
	tournaments := &stubTournamentRepository{
		tournaments: map[int64]tournament.Tournament{
			testTournamentID: {
				ID:              testTournamentID,
				CompetitionID:   testCompetitionID,
				Name:            "Friends Draft",
				Mode:            tournament.ModePositionDraft,
				CompetitionName: "Open 2025",
			},
		},
		entries: map[int64][]tournament.Entry{
			testTournamentID: {
				{ID: 1, TournamentID: testTournamentID, UserID: 100, DisplayName: "alpha"},
				{ID: 2, TournamentID: testTournamentID, UserID: 200, DisplayName: "bravo"},
				{ID: 3, TournamentID: testTournamentID, UserID: 300, DisplayName: "charlie"},
			},
		},
	}
	competitions := &stubCompetitionRepository{
		competitions: map[int64]competition.Competition{
			testCompetitionID: {ID: testCompetitionID, Name: "Open 2025", IsActive: true, LockedEvents: 2},
		},
		workouts: map[int64][]competition.Workout{
			testCompetitionID: {
				{ID: 501, CompetitionID: testCompetitionID, Name: "25.1", Ordinal: 1},
				{ID: 502, CompetitionID: testCompetitionID, Name: "25.2", Ordinal: 2},
				{ID: 503, CompetitionID: testCompetitionID, Name: "25.3", Ordinal: 3},
			},
		},
	}
	competitors := &stubCompetitorRepository{
		standings: map[competitor.Gender]map[int64]competitor.Standing{
			competitor.GenderMen: {
				10: {CompetitorID: 10, Placement: 1, Finishes: []float64{100, 95, 100}},
				11: {CompetitorID: 11, Placement: 2, Finishes: []float64{87.5, 100, 50}},
			},
			competitor.GenderWomen: {
				20: {CompetitorID: 20, Placement: 1, Finishes: []float64{100, 100}},
			},
		},
	}
	picks := &stubPickRepository{
		byEntry: map[int64][]pick.Pick{
			1: {
				{EntryID: 1, CompetitorID: 10, Gender: competitor.GenderMen, Rank: 1, WorkoutID: 501},
				{EntryID: 1, CompetitorID: 11, Gender: competitor.GenderMen, Rank: 2, WorkoutID: 502},
				{EntryID: 1, CompetitorID: 20, Gender: competitor.GenderWomen, Rank: 1, WorkoutID: 501},
			},
			2: {
				{EntryID: 2, CompetitorID: 11, Gender: competitor.GenderMen, Rank: 1, WorkoutID: 501},
				{EntryID: 2, CompetitorID: 10, Gender: competitor.GenderMen, Rank: 3, WorkoutID: 503},
				{EntryID: 2, CompetitorID: 20, Gender: competitor.GenderWomen, Rank: 2, WorkoutID: 502},
				{EntryID: 2, CompetitorID: 10, Gender: competitor.GenderMen, Rank: 2, WorkoutID: 502, Invalid: true},
			},
		},
	}
	return tournaments, competitions, competitors, picks
}

func TestLeaderboardService_GetLeaderboard_PositionDraft(t *testing.T) {
	t.Parallel()

	tournaments, competitions, competitors, picks := draftFixture()
	service := NewLeaderboardService(tournaments, competitions, competitors, picks, scoring.DefaultRules())

	board, err := service.GetLeaderboard(context.Background(), testTournamentID)
	if err != nil {
		t.Fatalf("GetLeaderboard error: %v", err)
	}

	if board.TournamentName != "Friends Draft" || board.LockedEvents != 2 || board.Mode != tournament.ModePositionDraft {
		t.Fatalf("unexpected board metadata: %+v", board)
	}
	if len(board.Entries) != 3 {
		t.Fatalf("unexpected entry count: got=%d want=3", len(board.Entries))
	}

	// entry 1: 100 + 100 + 100, entry 2: 87.5 + 100 (workout 3 is still open)
	top := board.Entries[0]
	if top.EntryID != 1 || top.Points != 300 || top.Tiebreak != 3 || top.Rank != 1 {
		t.Fatalf("unexpected top row: %+v", top)
	}
	second := board.Entries[1]
	if second.EntryID != 2 || second.Points != 187.5 || second.MenPoints != 87.5 || second.Rank != 2 {
		t.Fatalf("unexpected second row: %+v", second)
	}
	last := board.Entries[2]
	if last.EntryID != 3 || last.Points != 0 || last.Rank != 3 {
		t.Fatalf("expected entry without picks to be ranked last: %+v", last)
	}
}

func TestLeaderboardService_GetLeaderboard_NotFound(t *testing.T) {
	t.Parallel()

	tournaments, competitions, competitors, picks := draftFixture()
	service := NewLeaderboardService(tournaments, competitions, competitors, picks, scoring.DefaultRules())

	_, err := service.GetLeaderboard(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unexpected error: got=%v want=%v", err, ErrNotFound)
	}

	_, err = service.GetLeaderboard(context.Background(), 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unexpected error: got=%v want=%v", err, ErrInvalidInput)
	}
}

func TestLeaderboardService_GetLeaderboard_UpstreamFailure(t *testing.T) {
	t.Parallel()

	tournaments, competitions, competitors, picks := draftFixture()
	competitors.err = errStubUnavailable
	service := NewLeaderboardService(tournaments, competitions, competitors, picks, scoring.DefaultRules())

	_, err := service.GetLeaderboard(context.Background(), testTournamentID)
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("unexpected error: got=%v want=%v", err, ErrDependencyUnavailable)
	}
	if !errors.Is(err, errStubUnavailable) {
		t.Fatalf("expected upstream cause to be preserved: %v", err)
	}
}

func TestLeaderboardService_GetLeaderboard_MissingCompetitionIsNeutral(t *testing.T) {
	t.Parallel()

	tournaments, _, competitors, picks := draftFixture()
	service := NewLeaderboardService(tournaments, &stubCompetitionRepository{}, competitors, picks, scoring.DefaultRules())

	board, err := service.GetLeaderboard(context.Background(), testTournamentID)
	if err != nil {
		t.Fatalf("GetLeaderboard error: %v", err)
	}
	for _, row := range board.Entries {
		if row.Points != 0 {
			t.Fatalf("expected zero points without lock state and workouts: %+v", row)
		}
	}
}
