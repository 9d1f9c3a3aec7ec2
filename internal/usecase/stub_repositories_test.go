package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/analytics"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competition"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/pick"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/prop"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
)

var errStubUnavailable = errors.New("stub: connection refused")

type stubTournamentRepository struct {
	tournaments map[int64]tournament.Tournament
	entries     map[int64][]tournament.Entry
	contexts    map[int64]tournament.EntryContext
	pickCounts  map[int64][]tournament.PickCount
	err         error
}

var _ tournament.Repository = (*stubTournamentRepository)(nil)

func (s *stubTournamentRepository) GetByID(_ context.Context, tournamentID int64) (tournament.Tournament, bool, error) {
	if s.err != nil {
		return tournament.Tournament{}, false, s.err
	}
	item, ok := s.tournaments[tournamentID]
	return item, ok, nil
}

func (s *stubTournamentRepository) ListEntries(_ context.Context, tournamentID int64) ([]tournament.Entry, error) {
	return s.entries[tournamentID], nil
}

func (s *stubTournamentRepository) GetEntry(_ context.Context, entryID int64) (tournament.Entry, bool, error) {
	for _, items := range s.entries {
		for _, e := range items {
			if e.ID == entryID {
				return e, true, nil
			}
		}
	}
	return tournament.Entry{}, false, nil
}

func (s *stubTournamentRepository) GetEntryContext(_ context.Context, entryID int64) (tournament.EntryContext, bool, error) {
	item, ok := s.contexts[entryID]
	return item, ok, nil
}

func (s *stubTournamentRepository) ListRankPredictionPickCounts(_ context.Context, competitionID int64) ([]tournament.PickCount, error) {
	return s.pickCounts[competitionID], nil
}

type stubCompetitionRepository struct {
	competitions map[int64]competition.Competition
	workouts     map[int64][]competition.Workout
	workoutErr   map[int64]error
	activeIDs    []int64
}

var _ competition.Repository = (*stubCompetitionRepository)(nil)

func (s *stubCompetitionRepository) GetByID(_ context.Context, competitionID int64) (competition.Competition, bool, error) {
	item, ok := s.competitions[competitionID]
	return item, ok, nil
}

func (s *stubCompetitionRepository) ListActiveIDs(context.Context) ([]int64, error) {
	return s.activeIDs, nil
}

func (s *stubCompetitionRepository) UpdateLockState(context.Context, int64, bool, int) error {
	return nil
}

func (s *stubCompetitionRepository) ListWorkouts(_ context.Context, competitionID int64) ([]competition.Workout, error) {
	if err := s.workoutErr[competitionID]; err != nil {
		return nil, err
	}
	return s.workouts[competitionID], nil
}

func (s *stubCompetitionRepository) GetWorkoutByOrdinal(_ context.Context, competitionID int64, ordinal int) (competition.Workout, bool, error) {
	for _, w := range s.workouts[competitionID] {
		if w.Ordinal == ordinal {
			return w, true, nil
		}
	}
	return competition.Workout{}, false, nil
}

func (s *stubCompetitionRepository) SetWorkoutActive(context.Context, int64, int, bool) error {
	return nil
}

type stubCompetitorRepository struct {
	ids       map[competitor.Gender][]int64
	standings map[competitor.Gender]map[int64]competitor.Standing
	err       error
}

var _ competitor.Repository = (*stubCompetitorRepository)(nil)

func (s *stubCompetitorRepository) ListByCompetition(context.Context, int64) ([]competitor.Competitor, error) {
	return nil, nil
}

func (s *stubCompetitorRepository) ListIDsByCompetitionAndGender(_ context.Context, _ int64, gender competitor.Gender) ([]int64, error) {
	return s.ids[gender], nil
}

func (s *stubCompetitorRepository) ListEventResults(context.Context, int64, int) ([]competitor.EventResult, error) {
	return nil, nil
}

func (s *stubCompetitorRepository) GetStandings(_ context.Context, _ int64, gender competitor.Gender) (map[int64]competitor.Standing, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.standings[gender], nil
}

func (s *stubCompetitorRepository) UpsertScores(context.Context, []competitor.Score) error {
	return nil
}

func (s *stubCompetitorRepository) RefreshStandings(context.Context) error {
	return nil
}

type stubPickRepository struct {
	byEntry map[int64][]pick.Pick
}

var _ pick.Repository = (*stubPickRepository)(nil)

func (s *stubPickRepository) ListByEntry(_ context.Context, entryID int64) ([]pick.Pick, error) {
	return s.byEntry[entryID], nil
}

func (s *stubPickRepository) ListByTournament(context.Context, int64) (map[int64][]pick.Pick, error) {
	return s.byEntry, nil
}

func (s *stubPickRepository) Insert(context.Context, pick.Pick) (int64, error) {
	return 0, nil
}

func (s *stubPickRepository) Delete(context.Context, int64, pick.Slot) error {
	return nil
}

func (s *stubPickRepository) Replace(context.Context, int64, *pick.Slot, *pick.Pick) error {
	return nil
}

type stubPropRepository struct {
	props   map[int64][]prop.Prop
	picks   map[int64][]prop.Pick
	upserts []prop.Pick
}

var _ prop.Repository = (*stubPropRepository)(nil)

func (s *stubPropRepository) ListByCompetition(_ context.Context, competitionID int64) ([]prop.Prop, error) {
	return s.props[competitionID], nil
}

func (s *stubPropRepository) GetByID(_ context.Context, propID int64) (prop.Prop, bool, error) {
	for _, items := range s.props {
		for _, p := range items {
			if p.ID == propID {
				return p, true, nil
			}
		}
	}
	return prop.Prop{}, false, nil
}

func (s *stubPropRepository) ListPicksByEntry(_ context.Context, entryID int64) ([]prop.Pick, error) {
	return s.picks[entryID], nil
}

func (s *stubPropRepository) ListPicksByTournament(context.Context, int64) (map[int64][]prop.Pick, error) {
	return s.picks, nil
}

func (s *stubPropRepository) UpsertPick(_ context.Context, p prop.Pick) error {
	s.upserts = append(s.upserts, p)
	return nil
}

type stubAnalyticsRepository struct {
	mu sync.Mutex

	entries        map[int64]map[competitor.Gender]int
	ranks          map[int64]map[competitor.Gender]map[int64][]int
	workoutPicks   map[int64]map[int64]int
	workoutEntries map[int64]int
	pickCounts     []analytics.WorkoutPickCount
	failTournament int64
	failCompetitor int64

	adp         map[[2]int64]analytics.ADPRecord
	percentages map[[2]int64]analytics.PickPercentage
	writes      int
}

var _ analytics.Repository = (*stubAnalyticsRepository)(nil)

func newStubAnalyticsRepository() *stubAnalyticsRepository {
	return &stubAnalyticsRepository{
		entries:        map[int64]map[competitor.Gender]int{},
		ranks:          map[int64]map[competitor.Gender]map[int64][]int{},
		workoutPicks:   map[int64]map[int64]int{},
		workoutEntries: map[int64]int{},
		adp:            map[[2]int64]analytics.ADPRecord{},
		percentages:    map[[2]int64]analytics.PickPercentage{},
	}
}

func (s *stubAnalyticsRepository) CountTournamentEntries(_ context.Context, tournamentID int64, gender competitor.Gender) (int, error) {
	if tournamentID == s.failTournament {
		return 0, errStubUnavailable
	}
	return s.entries[tournamentID][gender], nil
}

func (s *stubAnalyticsRepository) ListTournamentPickRanks(_ context.Context, tournamentID int64, gender competitor.Gender) (map[int64][]int, error) {
	return s.ranks[tournamentID][gender], nil
}

func (s *stubAnalyticsRepository) CountWorkoutPicks(_ context.Context, _ int64, workoutID int64) (map[int64]int, error) {
	return s.workoutPicks[workoutID], nil
}

func (s *stubAnalyticsRepository) CountWorkoutEntries(_ context.Context, _ int64, workoutID int64) (int, error) {
	return s.workoutEntries[workoutID], nil
}

func (s *stubAnalyticsRepository) ListWorkoutPickCounts(context.Context, int64, int) ([]analytics.WorkoutPickCount, error) {
	return s.pickCounts, nil
}

func (s *stubAnalyticsRepository) UpsertCompetitorADP(_ context.Context, record analytics.ADPRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if record.CompetitorID == s.failCompetitor {
		return errStubUnavailable
	}
	s.adp[[2]int64{record.CompetitionID, record.CompetitorID}] = record
	s.writes++
	return nil
}

func (s *stubAnalyticsRepository) UpsertPickPercentage(_ context.Context, record analytics.PickPercentage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if record.CompetitorID == s.failCompetitor {
		return errStubUnavailable
	}
	s.percentages[[2]int64{record.WorkoutID, record.CompetitorID}] = record
	s.writes++
	return nil
}

func (s *stubAnalyticsRepository) ListADP(_ context.Context, competitionID int64, gender competitor.Gender) ([]analytics.ADPRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]analytics.ADPRecord, 0, len(s.adp))
	for _, r := range s.adp {
		if r.CompetitionID == competitionID && r.Gender == gender {
			out = append(out, r)
		}
	}
	return out, nil
}
