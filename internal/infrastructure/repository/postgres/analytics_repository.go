package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/analytics"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
	qb "github.com/riskibarqy/fantasy-fitness/internal/platform/querybuilder"
)

type AnalyticsRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db, now: time.Now}
}

// CountTournamentEntries counts entries holding at least one valid pick in the gender.
func (r *AnalyticsRepository) CountTournamentEntries(ctx context.Context, tournamentID int64, gender competitor.Gender) (int, error) {
	query, args, err := qb.Select("COUNT(DISTINCT p.entry_id)").From("entry_picks p").
		Join("tournament_entries e", "e.id = p.entry_id").
		Where(
			qb.Eq("e.tournament_id", tournamentID),
			qb.Eq("p.gender", int(gender)),
			qb.Eq("p.invalid", false),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count tournament entries query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count tournament entries tournament=%d gender=%s: %w", tournamentID, gender, err)
	}
	return count, nil
}

func (r *AnalyticsRepository) ListTournamentPickRanks(ctx context.Context, tournamentID int64, gender competitor.Gender) (map[int64][]int, error) {
	query, args, err := qb.Select("p.competitor_id", "p.rank").From("entry_picks p").
		Join("tournament_entries e", "e.id = p.entry_id").
		Where(
			qb.Eq("e.tournament_id", tournamentID),
			qb.Eq("p.gender", int(gender)),
			qb.Eq("p.invalid", false),
		).
		OrderBy("p.competitor_id", "p.rank").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list pick ranks query: %w", err)
	}

	var rows []competitorRankRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list pick ranks tournament=%d gender=%s: %w", tournamentID, gender, err)
	}

	out := make(map[int64][]int)
	for _, row := range rows {
		out[row.CompetitorID] = append(out[row.CompetitorID], row.Rank)
	}
	return out, nil
}

func (r *AnalyticsRepository) CountWorkoutPicks(ctx context.Context, competitionID, workoutID int64) (map[int64]int, error) {
	query, args, err := draftPicksBuilder("p.competitor_id", "COUNT(*) AS picks").
		Where(
			qb.Eq("t.competition_id", competitionID),
			qb.Eq("t.mode", int(tournament.ModePositionDraft)),
			qb.Eq("p.workout_id", workoutID),
		).
		GroupBy("p.competitor_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build count workout picks query: %w", err)
	}

	var rows []competitorCountRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("count workout picks competition=%d workout=%d: %w", competitionID, workoutID, err)
	}

	out := make(map[int64]int, len(rows))
	for _, row := range rows {
		out[row.CompetitorID] = row.Picks
	}
	return out, nil
}

func (r *AnalyticsRepository) CountWorkoutEntries(ctx context.Context, competitionID, workoutID int64) (int, error) {
	query, args, err := draftPicksBuilder("COUNT(DISTINCT p.entry_id)").
		Where(
			qb.Eq("t.competition_id", competitionID),
			qb.Eq("t.mode", int(tournament.ModePositionDraft)),
			qb.Eq("p.workout_id", workoutID),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count workout entries query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count workout entries competition=%d workout=%d: %w", competitionID, workoutID, err)
	}
	return count, nil
}

func (r *AnalyticsRepository) ListWorkoutPickCounts(ctx context.Context, competitionID int64, ordinal int) ([]analytics.WorkoutPickCount, error) {
	query, args, err := draftPicksBuilder(
		"c.id AS competitor_id", "c.gender", "c.first_name", "c.last_name", "COUNT(*) AS picks",
	).
		Join("workouts w", "w.id = p.workout_id").
		Join("competitors c", "c.id = p.competitor_id").
		Where(
			qb.Eq("t.competition_id", competitionID),
			qb.Eq("t.mode", int(tournament.ModePositionDraft)),
			qb.Eq("w.ordinal", ordinal),
		).
		GroupBy("c.id", "c.gender", "c.first_name", "c.last_name").
		OrderBy("picks DESC", "c.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list workout pick counts query: %w", err)
	}

	var rows []workoutPickCountRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list workout pick counts competition=%d ordinal=%d: %w", competitionID, ordinal, err)
	}

	out := make([]analytics.WorkoutPickCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, analytics.WorkoutPickCount{
			CompetitorID: row.CompetitorID,
			Gender:       competitor.ParseGender(row.Gender),
			FirstName:    row.FirstName,
			LastName:     row.LastName,
			Picks:        row.Picks,
		})
	}
	return out, nil
}

func (r *AnalyticsRepository) UpsertCompetitorADP(ctx context.Context, record analytics.ADPRecord) error {
	query, args, err := qb.InsertModel("competitor_adp", adpInsertModel{
		CompetitionID: record.CompetitionID,
		CompetitorID:  record.CompetitorID,
		Gender:        int(record.Gender),
		ADP:           record.ADP,
		UpdatedAt:     r.now().UTC(),
	}, "competition_id", "competitor_id")
	if err != nil {
		return fmt.Errorf("build upsert adp query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert adp competition=%d competitor=%d: %w", record.CompetitionID, record.CompetitorID, err)
	}
	return nil
}

func (r *AnalyticsRepository) UpsertPickPercentage(ctx context.Context, record analytics.PickPercentage) error {
	query, args, err := qb.InsertModel("competitor_pick_percentages", pickPercentageInsertModel{
		CompetitionID: record.CompetitionID,
		WorkoutID:     record.WorkoutID,
		CompetitorID:  record.CompetitorID,
		Picks:         record.Picks,
		Entries:       record.Entries,
		Percentage:    record.Percentage,
		UpdatedAt:     r.now().UTC(),
	}, "competition_id", "workout_id", "competitor_id")
	if err != nil {
		return fmt.Errorf("build upsert pick percentage query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert pick percentage workout=%d competitor=%d: %w", record.WorkoutID, record.CompetitorID, err)
	}
	return nil
}

func (r *AnalyticsRepository) ListADP(ctx context.Context, competitionID int64, gender competitor.Gender) ([]analytics.ADPRecord, error) {
	query, args, err := qb.Select("competition_id", "competitor_id", "gender", "adp").From("competitor_adp").
		Where(qb.Eq("competition_id", competitionID), qb.Eq("gender", int(gender))).
		OrderBy("adp = 0", "adp", "competitor_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list adp query: %w", err)
	}

	var rows []adpRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list adp competition=%d gender=%s: %w", competitionID, gender, err)
	}

	out := make([]analytics.ADPRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, analytics.ADPRecord{
			CompetitorID:  row.CompetitorID,
			CompetitionID: row.CompetitionID,
			Gender:        competitor.ParseGender(row.Gender),
			ADP:           row.ADP,
		})
	}
	return out, nil
}

// draftPicksBuilder selects over valid picks joined to their tournament.
func draftPicksBuilder(columns ...string) *qb.SelectBuilder {
	return qb.Select(columns...).
		From("entry_picks p").
		Join("tournament_entries e", "e.id = p.entry_id").
		Join("tournaments t", "t.id = e.tournament_id").
		Where(qb.Eq("p.invalid", false))
}
