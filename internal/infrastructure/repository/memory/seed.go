package memory

import (
	"time"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competition"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/pick"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/prop"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
)

const (
	DemoCompetitionID     int64 = 1
	DemoRankTournamentID  int64 = 1
	DemoDraftTournamentID int64 = 2
)

// SeedDemo returns a small competition with one scored workout, a
// RankPrediction and a PositionDraft tournament, and one open prop.
func SeedDemo() Seed {
	start := time.Date(2026, 2, 27, 17, 0, 0, 0, time.UTC)
	w1, w2, w3 := start, start.AddDate(0, 0, 7), start.AddDate(0, 0, 14)

	return Seed{
		Users: []User{
			{ID: 1, DisplayName: "Ana Lopez"},
			{ID: 2, DisplayName: "Ben Carter"},
			{ID: 3, DisplayName: "Chi Nguyen"},
		},
		Competitions: []competition.Competition{
			{ID: DemoCompetitionID, Name: "Open Demo", LockedEvents: 1},
		},
		Workouts: []competition.Workout{
			{ID: 101, CompetitionID: DemoCompetitionID, Name: "26.1", Ordinal: 1, StartTime: &w1, IsComplete: true},
			{ID: 102, CompetitionID: DemoCompetitionID, Name: "26.2", Ordinal: 2, StartTime: &w2},
			{ID: 103, CompetitionID: DemoCompetitionID, Name: "26.3", Ordinal: 3, StartTime: &w3},
		},
		Competitors: []competitor.Competitor{
			{ID: 1001, CompetitionID: DemoCompetitionID, Gender: competitor.GenderMen, FirstName: "Jayson", LastName: "Hopper"},
			{ID: 1002, CompetitionID: DemoCompetitionID, Gender: competitor.GenderMen, FirstName: "Jeff", LastName: "Adler"},
			{ID: 1003, CompetitionID: DemoCompetitionID, Gender: competitor.GenderMen, FirstName: "Roman", LastName: "Khrennikov"},
			{ID: 1004, CompetitionID: DemoCompetitionID, Gender: competitor.GenderMen, FirstName: "Dallin", LastName: "Pepper", Withdrawn: true},
			{ID: 2001, CompetitionID: DemoCompetitionID, Gender: competitor.GenderWomen, FirstName: "Tia", LastName: "Toomey"},
			{ID: 2002, CompetitionID: DemoCompetitionID, Gender: competitor.GenderWomen, FirstName: "Laura", LastName: "Horvath"},
			{ID: 2003, CompetitionID: DemoCompetitionID, Gender: competitor.GenderWomen, FirstName: "Emma", LastName: "Lawson"},
			{ID: 2004, CompetitionID: DemoCompetitionID, Gender: competitor.GenderWomen, FirstName: "Arielle", LastName: "Loewen"},
		},
		Scores: []competitor.Score{
			{CompetitionID: DemoCompetitionID, CompetitorID: 1001, Ordinal: 1, Points: 100},
			{CompetitionID: DemoCompetitionID, CompetitorID: 1002, Ordinal: 1, Points: 94},
			{CompetitionID: DemoCompetitionID, CompetitorID: 1003, Ordinal: 1, Points: 94},
			{CompetitionID: DemoCompetitionID, CompetitorID: 1004, Ordinal: 1, Points: 88},
			{CompetitionID: DemoCompetitionID, CompetitorID: 2001, Ordinal: 1, Points: 100},
			{CompetitionID: DemoCompetitionID, CompetitorID: 2002, Ordinal: 1, Points: 97},
			{CompetitionID: DemoCompetitionID, CompetitorID: 2003, Ordinal: 1, Points: 91},
			{CompetitionID: DemoCompetitionID, CompetitorID: 2004, Ordinal: 1, Points: 85},
		},
		Tournaments: []tournament.Tournament{
			{ID: DemoRankTournamentID, CompetitionID: DemoCompetitionID, Name: "Top 3 Predictor", Mode: tournament.ModeRankPrediction, PickCount: 3},
			{ID: DemoDraftTournamentID, CompetitionID: DemoCompetitionID, Name: "Workout Draft", Mode: tournament.ModePositionDraft, PickCount: 3},
		},
		Entries: []tournament.Entry{
			{ID: 11, TournamentID: DemoRankTournamentID, UserID: 1},
			{ID: 12, TournamentID: DemoRankTournamentID, UserID: 2},
			{ID: 21, TournamentID: DemoDraftTournamentID, UserID: 1},
			{ID: 22, TournamentID: DemoDraftTournamentID, UserID: 3},
		},
		Picks: []pick.Pick{
			{ID: 1, EntryID: 11, CompetitorID: 1001, Gender: competitor.GenderMen, Rank: 1},
			{ID: 2, EntryID: 11, CompetitorID: 1003, Gender: competitor.GenderMen, Rank: 2},
			{ID: 3, EntryID: 11, CompetitorID: 2002, Gender: competitor.GenderWomen, Rank: 1},
			{ID: 4, EntryID: 12, CompetitorID: 1002, Gender: competitor.GenderMen, Rank: 1},
			{ID: 5, EntryID: 12, CompetitorID: 2001, Gender: competitor.GenderWomen, Rank: 1},
			{ID: 6, EntryID: 21, CompetitorID: 1001, Gender: competitor.GenderMen, Rank: 1, WorkoutID: 101},
			{ID: 7, EntryID: 21, CompetitorID: 2001, Gender: competitor.GenderWomen, Rank: 1, WorkoutID: 101},
			{ID: 8, EntryID: 22, CompetitorID: 1002, Gender: competitor.GenderMen, Rank: 1, WorkoutID: 101},
			{ID: 9, EntryID: 22, CompetitorID: 1003, Gender: competitor.GenderMen, Rank: 2, WorkoutID: 102},
		},
		Props: []prop.Prop{
			{
				ID:            1,
				CompetitionID: DemoCompetitionID,
				Title:         "Will anyone break 5:00 on 26.2?",
				Options: []prop.Option{
					{ID: 11, PropID: 1, Label: "Yes", Points: 10},
					{ID: 12, PropID: 1, Label: "No", Points: 5},
				},
			},
		},
		PropPicks: []prop.Pick{
			{EntryID: 21, PropID: 1, OptionID: 11},
		},
	}
}
