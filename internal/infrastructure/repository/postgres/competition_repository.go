package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competition"
	qb "github.com/riskibarqy/fantasy-fitness/internal/platform/querybuilder"
)

type CompetitionRepository struct {
	db *sqlx.DB
}

func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) GetByID(ctx context.Context, competitionID int64) (competition.Competition, bool, error) {
	query, args, err := qb.Select("*").From("competitions").
		Where(qb.Eq("id", competitionID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return competition.Competition{}, false, fmt.Errorf("build get competition query: %w", err)
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Competition{}, false, nil
		}
		return competition.Competition{}, false, fmt.Errorf("get competition id=%d: %w", competitionID, err)
	}

	return competition.Competition{
		ID:           row.ID,
		Name:         row.Name,
		Logo:         row.Logo,
		IsActive:     row.IsActive,
		IsComplete:   row.IsComplete,
		LockedEvents: row.LockedEvents,
	}, true, nil
}

func (r *CompetitionRepository) ListActiveIDs(ctx context.Context) ([]int64, error) {
	query, args, err := qb.Select("id").From("competitions").
		Where(qb.Eq("is_complete", false)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list active competitions query: %w", err)
	}

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list active competitions: %w", err)
	}
	return ids, nil
}

func (r *CompetitionRepository) UpdateLockState(ctx context.Context, competitionID int64, isActive bool, lockedEvents int) error {
	query, args, err := qb.Update("competitions").
		Set("is_active", isActive).
		Set("locked_events", lockedEvents).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", competitionID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update lock state query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update lock state competition=%d: %w", competitionID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update lock state competition=%d: no rows", competitionID)
	}
	return nil
}

func (r *CompetitionRepository) ListWorkouts(ctx context.Context, competitionID int64) ([]competition.Workout, error) {
	query, args, err := qb.Select("*").From("workouts").
		Where(qb.Eq("competition_id", competitionID)).
		OrderBy("ordinal", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list workouts query: %w", err)
	}

	var rows []workoutTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list workouts competition=%d: %w", competitionID, err)
	}

	out := make([]competition.Workout, 0, len(rows))
	for _, row := range rows {
		out = append(out, workoutFromRow(row))
	}
	return out, nil
}

func (r *CompetitionRepository) GetWorkoutByOrdinal(ctx context.Context, competitionID int64, ordinal int) (competition.Workout, bool, error) {
	query, args, err := qb.Select("*").From("workouts").
		Where(qb.Eq("competition_id", competitionID), qb.Eq("ordinal", ordinal)).
		Limit(1).
		ToSQL()
	if err != nil {
		return competition.Workout{}, false, fmt.Errorf("build get workout query: %w", err)
	}

	var row workoutTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Workout{}, false, nil
		}
		return competition.Workout{}, false, fmt.Errorf("get workout competition=%d ordinal=%d: %w", competitionID, ordinal, err)
	}
	return workoutFromRow(row), true, nil
}

func (r *CompetitionRepository) SetWorkoutActive(ctx context.Context, competitionID int64, ordinal int, active bool) error {
	query, args, err := qb.Update("workouts").
		Set("is_active", active).
		Where(qb.Eq("competition_id", competitionID), qb.Eq("ordinal", ordinal)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set workout active query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set workout active competition=%d ordinal=%d: %w", competitionID, ordinal, err)
	}
	return nil
}

func workoutFromRow(row workoutTableModel) competition.Workout {
	return competition.Workout{
		ID:            row.ID,
		CompetitionID: row.CompetitionID,
		Name:          row.Name,
		Ordinal:       row.Ordinal,
		StartTime:     nullTimeToTimePtr(row.StartTime),
		Location:      row.Location,
		Description:   row.Description,
		IsActive:      row.IsActive,
		IsComplete:    row.IsComplete,
	}
}
