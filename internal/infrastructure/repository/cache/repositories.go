package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competition"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	basecache "github.com/riskibarqy/fantasy-fitness/internal/platform/cache"
)

// CompetitorRepository caches the standings view and competitor id lists.
// Score writes pass through; RefreshStandings and InvalidateStandings drop
// cached standings.
type CompetitorRepository struct {
	next  competitor.Repository
	cache *basecache.Store
}

func NewCompetitorRepository(next competitor.Repository, cache *basecache.Store) *CompetitorRepository {
	return &CompetitorRepository{next: next, cache: cache}
}

func (r *CompetitorRepository) ListByCompetition(ctx context.Context, competitionID int64) ([]competitor.Competitor, error) {
	return r.next.ListByCompetition(ctx, competitionID)
}

func (r *CompetitorRepository) ListIDsByCompetitionAndGender(ctx context.Context, competitionID int64, gender competitor.Gender) ([]int64, error) {
	key := "competitor:ids:" + id(competitionID) + ":" + strconv.Itoa(int(gender))
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListIDsByCompetitionAndGender(ctx, competitionID, gender)
		if err != nil {
			return nil, err
		}
		return append([]int64(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]int64)
	return append([]int64(nil), items...), nil
}

func (r *CompetitorRepository) ListEventResults(ctx context.Context, competitionID int64, ordinal int) ([]competitor.EventResult, error) {
	return r.next.ListEventResults(ctx, competitionID, ordinal)
}

func (r *CompetitorRepository) GetStandings(ctx context.Context, competitionID int64, gender competitor.Gender) (map[int64]competitor.Standing, error) {
	key := standingsPrefix(competitionID) + strconv.Itoa(int(gender))
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.GetStandings(ctx, competitionID, gender)
		if err != nil {
			return nil, err
		}
		return cloneStandings(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.(map[int64]competitor.Standing)
	return cloneStandings(items), nil
}

func (r *CompetitorRepository) UpsertScores(ctx context.Context, scores []competitor.Score) error {
	return r.next.UpsertScores(ctx, scores)
}

func (r *CompetitorRepository) RefreshStandings(ctx context.Context) error {
	if err := r.next.RefreshStandings(ctx); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "standings:")
	return nil
}

func (r *CompetitorRepository) InvalidateStandings(ctx context.Context, competitionID int64) {
	r.cache.DeletePrefix(ctx, standingsPrefix(competitionID))
}

// CompetitionRepository caches competitions and their workout lists. Lock
// state writes drop the cached competition.
type CompetitionRepository struct {
	next  competition.Repository
	cache *basecache.Store
}

func NewCompetitionRepository(next competition.Repository, cache *basecache.Store) *CompetitionRepository {
	return &CompetitionRepository{next: next, cache: cache}
}

func (r *CompetitionRepository) GetByID(ctx context.Context, competitionID int64) (competition.Competition, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "competition:id:"+id(competitionID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, competitionID)
		if err != nil {
			return nil, err
		}
		return cachedCompetition{value: item, exists: exists}, nil
	})
	if err != nil {
		return competition.Competition{}, false, err
	}

	cached, _ := v.(cachedCompetition)
	return cached.value, cached.exists, nil
}

func (r *CompetitionRepository) ListActiveIDs(ctx context.Context) ([]int64, error) {
	return r.next.ListActiveIDs(ctx)
}

func (r *CompetitionRepository) UpdateLockState(ctx context.Context, competitionID int64, isActive bool, lockedEvents int) error {
	defer r.cache.Delete(ctx, "competition:id:"+id(competitionID))
	return r.next.UpdateLockState(ctx, competitionID, isActive, lockedEvents)
}

func (r *CompetitionRepository) ListWorkouts(ctx context.Context, competitionID int64) ([]competition.Workout, error) {
	v, err := r.cache.GetOrLoad(ctx, workoutsKey(competitionID), func(ctx context.Context) (any, error) {
		items, err := r.next.ListWorkouts(ctx, competitionID)
		if err != nil {
			return nil, err
		}
		return append([]competition.Workout(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]competition.Workout)
	return append([]competition.Workout(nil), items...), nil
}

func (r *CompetitionRepository) GetWorkoutByOrdinal(ctx context.Context, competitionID int64, ordinal int) (competition.Workout, bool, error) {
	workouts, err := r.ListWorkouts(ctx, competitionID)
	if err != nil {
		return competition.Workout{}, false, err
	}
	for _, w := range workouts {
		if w.Ordinal == ordinal {
			return w, true, nil
		}
	}
	return competition.Workout{}, false, nil
}

func (r *CompetitionRepository) SetWorkoutActive(ctx context.Context, competitionID int64, ordinal int, active bool) error {
	defer r.cache.Delete(ctx, workoutsKey(competitionID))
	return r.next.SetWorkoutActive(ctx, competitionID, ordinal, active)
}

type cachedCompetition struct {
	value  competition.Competition
	exists bool
}

func standingsPrefix(competitionID int64) string {
	return "standings:" + id(competitionID) + ":"
}

func workoutsKey(competitionID int64) string {
	return "competition:workouts:" + id(competitionID)
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func cloneStandings(in map[int64]competitor.Standing) map[int64]competitor.Standing {
	out := make(map[int64]competitor.Standing, len(in))
	for k, s := range in {
		s.Finishes = append([]float64(nil), s.Finishes...)
		out[k] = s
	}
	return out
}
