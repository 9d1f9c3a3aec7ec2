package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/analytics"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/pick"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
)

type AnalyticsRepository struct {
	data *Dataset
}

func NewAnalyticsRepository(data *Dataset) *AnalyticsRepository {
	return &AnalyticsRepository{data: data}
}

func (r *AnalyticsRepository) CountTournamentEntries(_ context.Context, tournamentID int64, gender competitor.Gender) (int, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	seen := make(map[int64]struct{})
	r.eachTournamentPickLocked(tournamentID, gender, func(p pick.Pick) {
		seen[p.EntryID] = struct{}{}
	})
	return len(seen), nil
}

func (r *AnalyticsRepository) ListTournamentPickRanks(_ context.Context, tournamentID int64, gender competitor.Gender) (map[int64][]int, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	out := make(map[int64][]int)
	r.eachTournamentPickLocked(tournamentID, gender, func(p pick.Pick) {
		out[p.CompetitorID] = append(out[p.CompetitorID], p.Rank)
	})
	for id := range out {
		sort.Ints(out[id])
	}
	return out, nil
}

func (r *AnalyticsRepository) CountWorkoutPicks(_ context.Context, competitionID, workoutID int64) (map[int64]int, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	out := make(map[int64]int)
	r.eachDraftPickLocked(competitionID, func(p pick.Pick) {
		if p.WorkoutID == workoutID {
			out[p.CompetitorID]++
		}
	})
	return out, nil
}

func (r *AnalyticsRepository) CountWorkoutEntries(_ context.Context, competitionID, workoutID int64) (int, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	seen := make(map[int64]struct{})
	r.eachDraftPickLocked(competitionID, func(p pick.Pick) {
		if p.WorkoutID == workoutID {
			seen[p.EntryID] = struct{}{}
		}
	})
	return len(seen), nil
}

func (r *AnalyticsRepository) ListWorkoutPickCounts(_ context.Context, competitionID int64, ordinal int) ([]analytics.WorkoutPickCount, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	counts := make(map[int64]int)
	r.eachDraftPickLocked(competitionID, func(p pick.Pick) {
		if w, ok := r.data.workouts[p.WorkoutID]; ok && w.Ordinal == ordinal {
			counts[p.CompetitorID]++
		}
	})

	out := make([]analytics.WorkoutPickCount, 0, len(counts))
	for id, n := range counts {
		c := r.data.competitors[id]
		out = append(out, analytics.WorkoutPickCount{
			CompetitorID: id,
			Gender:       c.Gender,
			FirstName:    c.FirstName,
			LastName:     c.LastName,
			Picks:        n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Picks != out[j].Picks {
			return out[i].Picks > out[j].Picks
		}
		return out[i].CompetitorID < out[j].CompetitorID
	})
	return out, nil
}

func (r *AnalyticsRepository) UpsertCompetitorADP(_ context.Context, record analytics.ADPRecord) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()

	r.data.adp[[2]int64{record.CompetitionID, record.CompetitorID}] = record
	return nil
}

func (r *AnalyticsRepository) UpsertPickPercentage(_ context.Context, record analytics.PickPercentage) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()

	r.data.percentages[[3]int64{record.CompetitionID, record.WorkoutID, record.CompetitorID}] = record
	return nil
}

func (r *AnalyticsRepository) ListADP(_ context.Context, competitionID int64, gender competitor.Gender) ([]analytics.ADPRecord, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	out := make([]analytics.ADPRecord, 0)
	for _, rec := range r.data.adp {
		if rec.CompetitionID == competitionID && rec.Gender == gender {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		zi, zj := out[i].ADP == 0, out[j].ADP == 0
		if zi != zj {
			return zj
		}
		if out[i].ADP != out[j].ADP {
			return out[i].ADP < out[j].ADP
		}
		return out[i].CompetitorID < out[j].CompetitorID
	})
	return out, nil
}

// PickPercentages returns the stored percentages of one workout keyed by competitor.
func (r *AnalyticsRepository) PickPercentages(competitionID, workoutID int64) map[int64]analytics.PickPercentage {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	out := make(map[int64]analytics.PickPercentage)
	for key, rec := range r.data.percentages {
		if key[0] == competitionID && key[1] == workoutID {
			out[key[2]] = rec
		}
	}
	return out
}

func (r *AnalyticsRepository) eachTournamentPickLocked(tournamentID int64, gender competitor.Gender, fn func(pick.Pick)) {
	for _, p := range r.data.picks {
		if p.Invalid || p.Gender != gender {
			continue
		}
		if e, ok := r.data.entries[p.EntryID]; ok && e.TournamentID == tournamentID {
			fn(p)
		}
	}
}

func (r *AnalyticsRepository) eachDraftPickLocked(competitionID int64, fn func(pick.Pick)) {
	for _, p := range r.data.picks {
		if p.Invalid {
			continue
		}
		e, ok := r.data.entries[p.EntryID]
		if !ok {
			continue
		}
		t, ok := r.data.tournaments[e.TournamentID]
		if !ok || t.CompetitionID != competitionID || t.Mode != tournament.ModePositionDraft {
			continue
		}
		fn(p)
	}
}
