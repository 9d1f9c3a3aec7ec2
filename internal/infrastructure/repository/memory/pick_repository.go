package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/pick"
)

type PickRepository struct {
	data *Dataset
}

func NewPickRepository(data *Dataset) *PickRepository {
	return &PickRepository{data: data}
}

func (r *PickRepository) ListByEntry(_ context.Context, entryID int64) ([]pick.Pick, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	out := make([]pick.Pick, 0)
	for _, p := range r.data.picks {
		if p.EntryID == entryID {
			out = append(out, p)
		}
	}
	sortPicks(out)
	return out, nil
}

func (r *PickRepository) ListByTournament(_ context.Context, tournamentID int64) (map[int64][]pick.Pick, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	out := make(map[int64][]pick.Pick)
	for _, p := range r.data.picks {
		if p.Invalid {
			continue
		}
		e, ok := r.data.entries[p.EntryID]
		if !ok || e.TournamentID != tournamentID {
			continue
		}
		out[p.EntryID] = append(out[p.EntryID], p)
	}
	for id := range out {
		sortPicks(out[id])
	}
	return out, nil
}

func (r *PickRepository) Insert(_ context.Context, p pick.Pick) (int64, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()

	return r.insertLocked(p)
}

func (r *PickRepository) Delete(_ context.Context, entryID int64, slot pick.Slot) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()

	r.deleteLocked(entryID, slot)
	return nil
}

// Replace applies the delete and insert under one lock; a failed insert
// restores the deleted pick.
func (r *PickRepository) Replace(_ context.Context, entryID int64, previous *pick.Slot, next *pick.Pick) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()

	var removed []pick.Pick
	if previous != nil && !previous.IsEmpty() {
		removed = r.deleteLocked(entryID, *previous)
	}
	if next != nil && next.CompetitorID != 0 {
		next.EntryID = entryID
		if _, err := r.insertLocked(*next); err != nil {
			for _, p := range removed {
				r.data.picks[p.ID] = p
			}
			return err
		}
	}
	return nil
}

// insertLocked mirrors the table's unique keys: (entry, competitor, rank) and
// (entry, gender, rank, workout). Mode-specific rules live in pick.ValidateMutation.
func (r *PickRepository) insertLocked(p pick.Pick) (int64, error) {
	for _, cur := range r.data.picks {
		if cur.EntryID != p.EntryID {
			continue
		}
		if cur.CompetitorID == p.CompetitorID && cur.Rank == p.Rank {
			return 0, fmt.Errorf("insert pick entry=%d competitor=%d: %w", p.EntryID, p.CompetitorID, pick.ErrDuplicate)
		}
		if cur.Gender == p.Gender && cur.Rank == p.Rank && cur.WorkoutID == p.WorkoutID {
			return 0, fmt.Errorf("insert pick entry=%d rank=%d: %w", p.EntryID, p.Rank, pick.ErrSlotTaken)
		}
	}

	r.data.nextPickID++
	p.ID = r.data.nextPickID
	r.data.picks[p.ID] = p
	return p.ID, nil
}

func (r *PickRepository) deleteLocked(entryID int64, slot pick.Slot) []pick.Pick {
	removed := make([]pick.Pick, 0, 1)
	for id, p := range r.data.picks {
		if p.EntryID != entryID || p.CompetitorID != slot.CompetitorID {
			continue
		}
		if slot.Rank > 0 && p.Rank != slot.Rank {
			continue
		}
		removed = append(removed, p)
		delete(r.data.picks, id)
	}
	return removed
}

func sortPicks(items []pick.Pick) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Gender != items[j].Gender {
			return items[i].Gender < items[j].Gender
		}
		if items[i].Rank != items[j].Rank {
			return items[i].Rank < items[j].Rank
		}
		return items[i].ID < items[j].ID
	})
}
