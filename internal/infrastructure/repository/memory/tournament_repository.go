package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
)

type TournamentRepository struct {
	data *Dataset
}

func NewTournamentRepository(data *Dataset) *TournamentRepository {
	return &TournamentRepository{data: data}
}

func (r *TournamentRepository) GetByID(_ context.Context, tournamentID int64) (tournament.Tournament, bool, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	t, ok := r.data.tournaments[tournamentID]
	if !ok {
		return tournament.Tournament{}, false, nil
	}
	if c, ok := r.data.competitions[t.CompetitionID]; ok {
		t.CompetitionName = c.Name
		t.CompetitionLogo = c.Logo
	}
	return t, true, nil
}

func (r *TournamentRepository) ListEntries(_ context.Context, tournamentID int64) ([]tournament.Entry, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	out := make([]tournament.Entry, 0)
	for _, e := range r.data.entries {
		if e.TournamentID == tournamentID {
			out = append(out, r.withProfile(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *TournamentRepository) GetEntry(_ context.Context, entryID int64) (tournament.Entry, bool, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	e, ok := r.data.entries[entryID]
	if !ok {
		return tournament.Entry{}, false, nil
	}
	return r.withProfile(e), true, nil
}

func (r *TournamentRepository) GetEntryContext(_ context.Context, entryID int64) (tournament.EntryContext, bool, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	e, ok := r.data.entries[entryID]
	if !ok {
		return tournament.EntryContext{}, false, nil
	}
	t, ok := r.data.tournaments[e.TournamentID]
	if !ok {
		return tournament.EntryContext{}, false, nil
	}
	c, ok := r.data.competitions[t.CompetitionID]
	if !ok {
		return tournament.EntryContext{}, false, nil
	}

	return tournament.EntryContext{
		EntryID:       e.ID,
		TournamentID:  t.ID,
		CompetitionID: c.ID,
		UserID:        e.UserID,
		Mode:          t.Mode,
		LockedEvents:  c.LockedEvents,
		IsActive:      c.IsActive,
		IsComplete:    c.IsComplete,
	}, true, nil
}

func (r *TournamentRepository) ListRankPredictionPickCounts(_ context.Context, competitionID int64) ([]tournament.PickCount, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	out := make([]tournament.PickCount, 0)
	for _, t := range r.data.tournaments {
		if t.CompetitionID == competitionID && t.Mode == tournament.ModeRankPrediction && t.PickCount > 0 {
			out = append(out, tournament.PickCount{TournamentID: t.ID, PickCount: t.PickCount})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TournamentID < out[j].TournamentID })
	return out, nil
}

func (r *TournamentRepository) withProfile(e tournament.Entry) tournament.Entry {
	if u, ok := r.data.users[e.UserID]; ok {
		e.DisplayName = u.DisplayName
		e.Avatar = u.Avatar
	}
	return e
}
