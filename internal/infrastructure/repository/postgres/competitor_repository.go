package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	qb "github.com/riskibarqy/fantasy-fitness/internal/platform/querybuilder"
)

type CompetitorRepository struct {
	db *sqlx.DB
}

func NewCompetitorRepository(db *sqlx.DB) *CompetitorRepository {
	return &CompetitorRepository{db: db}
}

func (r *CompetitorRepository) ListByCompetition(ctx context.Context, competitionID int64) ([]competitor.Competitor, error) {
	query, args, err := qb.Select(
		"c.id", "c.competition_id", "c.gender", "c.first_name", "c.last_name",
		"c.withdrawn", "c.cut", "c.suspended", "COALESCE(a.adp, 0) AS adp",
	).
		From("competitors c").
		LeftJoin("competitor_adp a", "a.competition_id = c.competition_id AND a.competitor_id = c.id").
		Where(qb.Eq("c.competition_id", competitionID)).
		OrderBy("c.gender", "c.last_name", "c.first_name", "c.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list competitors query: %w", err)
	}

	var rows []competitorTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list competitors competition=%d: %w", competitionID, err)
	}

	out := make([]competitor.Competitor, 0, len(rows))
	for _, row := range rows {
		out = append(out, competitor.Competitor{
			ID:            row.ID,
			CompetitionID: row.CompetitionID,
			Gender:        competitor.ParseGender(row.Gender),
			FirstName:     row.FirstName,
			LastName:      row.LastName,
			Withdrawn:     row.Withdrawn,
			Cut:           row.Cut,
			Suspended:     row.Suspended,
			ADP:           row.ADP,
		})
	}
	return out, nil
}

func (r *CompetitorRepository) ListIDsByCompetitionAndGender(ctx context.Context, competitionID int64, gender competitor.Gender) ([]int64, error) {
	query, args, err := qb.Select("id").From("competitors").
		Where(qb.Eq("competition_id", competitionID), qb.Eq("gender", int(gender))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list competitor ids query: %w", err)
	}

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list competitor ids competition=%d gender=%s: %w", competitionID, gender, err)
	}
	return ids, nil
}

func (r *CompetitorRepository) ListEventResults(ctx context.Context, competitionID int64, ordinal int) ([]competitor.EventResult, error) {
	query, args, err := qb.Select("competitor_id", "ordinal", "points").From("scores").
		Where(qb.Eq("competition_id", competitionID), qb.Eq("ordinal", ordinal)).
		OrderBy("points DESC", "competitor_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list event results query: %w", err)
	}

	var rows []eventResultRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list event results competition=%d ordinal=%d: %w", competitionID, ordinal, err)
	}

	out := make([]competitor.EventResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, competitor.EventResult{
			CompetitorID: row.CompetitorID,
			Ordinal:      row.Ordinal,
			Points:       row.Points,
		})
	}
	return out, nil
}

func (r *CompetitorRepository) GetStandings(ctx context.Context, competitionID int64, gender competitor.Gender) (map[int64]competitor.Standing, error) {
	query, args, err := qb.Select("*").From("competition_leaderboard").
		Where(qb.Eq("competition_id", competitionID), qb.Eq("gender", int(gender))).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get standings query: %w", err)
	}

	var rows []standingViewModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get standings competition=%d gender=%s: %w", competitionID, gender, err)
	}

	out := make(map[int64]competitor.Standing, len(rows))
	for _, row := range rows {
		out[row.CompetitorID] = competitor.Standing{
			CompetitorID:  row.CompetitorID,
			CompetitionID: row.CompetitionID,
			Gender:        competitor.ParseGender(row.Gender),
			FirstName:     row.FirstName,
			LastName:      row.LastName,
			Placement:     row.Placement,
			Points:        row.Points,
			Finishes:      []float64(row.Finishes),
			Withdrawn:     row.Withdrawn,
			Cut:           row.Cut,
			Suspended:     row.Suspended,
		}
	}
	return out, nil
}

func (r *CompetitorRepository) UpsertScores(ctx context.Context, scores []competitor.Score) error {
	if len(scores) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert scores: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, s := range scores {
		query, args, err := qb.InsertModel("scores", scoreInsertModel{
			CompetitionID: s.CompetitionID,
			CompetitorID:  s.CompetitorID,
			Ordinal:       s.Ordinal,
			Points:        s.Points,
		}, "competition_id", "competitor_id", "ordinal")
		if err != nil {
			return fmt.Errorf("build upsert score query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert score competitor=%d ordinal=%d: %w", s.CompetitorID, s.Ordinal, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert scores tx: %w", err)
	}
	return nil
}

func (r *CompetitorRepository) RefreshStandings(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "REFRESH MATERIALIZED VIEW CONCURRENTLY competition_leaderboard"); err != nil {
		return fmt.Errorf("refresh competition leaderboard: %w", err)
	}
	return nil
}
