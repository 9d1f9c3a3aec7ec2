package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/prop"
)

type PropRepository struct {
	data *Dataset
}

func NewPropRepository(data *Dataset) *PropRepository {
	return &PropRepository{data: data}
}

func (r *PropRepository) ListByCompetition(_ context.Context, competitionID int64) ([]prop.Prop, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	out := make([]prop.Prop, 0)
	for _, p := range r.data.props {
		if p.CompetitionID == competitionID {
			out = append(out, r.withCountsLocked(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PropRepository) GetByID(_ context.Context, propID int64) (prop.Prop, bool, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	p, ok := r.data.props[propID]
	if !ok {
		return prop.Prop{}, false, nil
	}
	return r.withCountsLocked(p), true, nil
}

func (r *PropRepository) ListPicksByEntry(_ context.Context, entryID int64) ([]prop.Pick, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	out := make([]prop.Pick, 0)
	for _, p := range r.data.propPicks {
		if p.EntryID == entryID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PropID < out[j].PropID })
	return out, nil
}

func (r *PropRepository) ListPicksByTournament(_ context.Context, tournamentID int64) (map[int64][]prop.Pick, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	out := make(map[int64][]prop.Pick)
	for _, p := range r.data.propPicks {
		e, ok := r.data.entries[p.EntryID]
		if !ok || e.TournamentID != tournamentID {
			continue
		}
		out[p.EntryID] = append(out[p.EntryID], p)
	}
	for id := range out {
		items := out[id]
		sort.Slice(items, func(i, j int) bool { return items[i].PropID < items[j].PropID })
	}
	return out, nil
}

func (r *PropRepository) UpsertPick(_ context.Context, p prop.Pick) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()

	r.data.propPicks[[2]int64{p.EntryID, p.PropID}] = p
	return nil
}

func (r *PropRepository) withCountsLocked(p prop.Prop) prop.Prop {
	p = cloneProp(p)
	counts := make(map[int64]int, len(p.Options))
	for _, pk := range r.data.propPicks {
		if pk.PropID == p.ID {
			counts[pk.OptionID]++
		}
	}
	for i := range p.Options {
		p.Options[i].PickCount = counts[p.Options[i].ID]
	}
	return p
}
