package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
)

type CompetitorRepository struct {
	data *Dataset
}

func NewCompetitorRepository(data *Dataset) *CompetitorRepository {
	return &CompetitorRepository{data: data}
}

func (r *CompetitorRepository) ListByCompetition(_ context.Context, competitionID int64) ([]competitor.Competitor, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	out := make([]competitor.Competitor, 0)
	for _, c := range r.data.competitors {
		if c.CompetitionID != competitionID {
			continue
		}
		if rec, ok := r.data.adp[[2]int64{competitionID, c.ID}]; ok {
			c.ADP = rec.ADP
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Gender != out[j].Gender {
			return out[i].Gender < out[j].Gender
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *CompetitorRepository) ListIDsByCompetitionAndGender(_ context.Context, competitionID int64, gender competitor.Gender) ([]int64, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	out := make([]int64, 0)
	for _, c := range r.data.competitors {
		if c.CompetitionID == competitionID && c.Gender == gender {
			out = append(out, c.ID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (r *CompetitorRepository) ListEventResults(_ context.Context, competitionID int64, ordinal int) ([]competitor.EventResult, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	out := make([]competitor.EventResult, 0)
	for key, points := range r.data.scores {
		if key.competitionID == competitionID && key.ordinal == ordinal {
			out = append(out, competitor.EventResult{CompetitorID: key.competitorID, Ordinal: key.ordinal, Points: points})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].CompetitorID < out[j].CompetitorID
	})
	return out, nil
}

func (r *CompetitorRepository) GetStandings(_ context.Context, competitionID int64, gender competitor.Gender) (map[int64]competitor.Standing, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	out := make(map[int64]competitor.Standing)
	for id, s := range r.data.standings {
		if s.CompetitionID == competitionID && s.Gender == gender {
			out[id] = cloneStanding(s)
		}
	}
	return out, nil
}

func (r *CompetitorRepository) UpsertScores(_ context.Context, scores []competitor.Score) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()

	for _, s := range scores {
		r.data.scores[scoreKey{s.CompetitionID, s.CompetitorID, s.Ordinal}] = s.Points
	}
	return nil
}

// RefreshStandings makes score writes visible to GetStandings.
func (r *CompetitorRepository) RefreshStandings(context.Context) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()

	r.data.refreshStandingsLocked()
	return nil
}
