package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competition"
)

type CompetitionRepository struct {
	data *Dataset
}

func NewCompetitionRepository(data *Dataset) *CompetitionRepository {
	return &CompetitionRepository{data: data}
}

func (r *CompetitionRepository) GetByID(_ context.Context, competitionID int64) (competition.Competition, bool, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	c, ok := r.data.competitions[competitionID]
	return c, ok, nil
}

func (r *CompetitionRepository) ListActiveIDs(context.Context) ([]int64, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	out := make([]int64, 0, len(r.data.competitions))
	for id, c := range r.data.competitions {
		if !c.IsComplete {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (r *CompetitionRepository) UpdateLockState(_ context.Context, competitionID int64, isActive bool, lockedEvents int) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()

	c, ok := r.data.competitions[competitionID]
	if !ok {
		return fmt.Errorf("update lock state competition=%d: no rows", competitionID)
	}
	c.IsActive = isActive
	c.LockedEvents = lockedEvents
	r.data.competitions[competitionID] = c
	return nil
}

func (r *CompetitionRepository) ListWorkouts(_ context.Context, competitionID int64) ([]competition.Workout, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	out := make([]competition.Workout, 0)
	for _, w := range r.data.workouts {
		if w.CompetitionID == competitionID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Ordinal != out[j].Ordinal {
			return out[i].Ordinal < out[j].Ordinal
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *CompetitionRepository) GetWorkoutByOrdinal(_ context.Context, competitionID int64, ordinal int) (competition.Workout, bool, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	for _, w := range r.data.workouts {
		if w.CompetitionID == competitionID && w.Ordinal == ordinal {
			return w, true, nil
		}
	}
	return competition.Workout{}, false, nil
}

func (r *CompetitionRepository) SetWorkoutActive(_ context.Context, competitionID int64, ordinal int, active bool) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()

	for id, w := range r.data.workouts {
		if w.CompetitionID == competitionID && w.Ordinal == ordinal {
			w.IsActive = active
			r.data.workouts[id] = w
		}
	}
	return nil
}
