package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
	qb "github.com/riskibarqy/fantasy-fitness/internal/platform/querybuilder"
)

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID int64) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select(
		"t.id", "t.competition_id", "t.name", "t.mode", "t.pick_count",
		"c.name AS competition_name", "c.logo AS competition_logo",
	).
		From("tournaments t").
		Join("competitions c", "c.id = t.competition_id").
		Where(qb.Eq("t.id", tournamentID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build get tournament query: %w", err)
	}

	var row tournamentRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("get tournament id=%d: %w", tournamentID, err)
	}

	return tournament.Tournament{
		ID:              row.ID,
		CompetitionID:   row.CompetitionID,
		Name:            row.Name,
		Mode:            tournament.ParseMode(row.Mode),
		PickCount:       row.PickCount,
		CompetitionName: row.CompetitionName,
		CompetitionLogo: row.CompetitionLogo,
	}, true, nil
}

func (r *TournamentRepository) ListEntries(ctx context.Context, tournamentID int64) ([]tournament.Entry, error) {
	query, args, err := entrySelectBuilder().
		Where(qb.Eq("e.tournament_id", tournamentID)).
		OrderBy("e.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list entries query: %w", err)
	}

	var rows []entryRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list entries tournament=%d: %w", tournamentID, err)
	}

	out := make([]tournament.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, entryFromRow(row))
	}
	return out, nil
}

func (r *TournamentRepository) GetEntry(ctx context.Context, entryID int64) (tournament.Entry, bool, error) {
	query, args, err := entrySelectBuilder().
		Where(qb.Eq("e.id", entryID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return tournament.Entry{}, false, fmt.Errorf("build get entry query: %w", err)
	}

	var row entryRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Entry{}, false, nil
		}
		return tournament.Entry{}, false, fmt.Errorf("get entry id=%d: %w", entryID, err)
	}
	return entryFromRow(row), true, nil
}

func (r *TournamentRepository) GetEntryContext(ctx context.Context, entryID int64) (tournament.EntryContext, bool, error) {
	query, args, err := qb.Select(
		"e.id AS entry_id", "e.tournament_id", "t.competition_id", "e.user_id", "t.mode",
		"c.locked_events", "c.is_active", "c.is_complete",
	).
		From("tournament_entries e").
		Join("tournaments t", "t.id = e.tournament_id").
		Join("competitions c", "c.id = t.competition_id").
		Where(qb.Eq("e.id", entryID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return tournament.EntryContext{}, false, fmt.Errorf("build get entry context query: %w", err)
	}

	var row entryContextRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.EntryContext{}, false, nil
		}
		return tournament.EntryContext{}, false, fmt.Errorf("get entry context id=%d: %w", entryID, err)
	}

	return tournament.EntryContext{
		EntryID:       row.EntryID,
		TournamentID:  row.TournamentID,
		CompetitionID: row.CompetitionID,
		UserID:        row.UserID,
		Mode:          tournament.ParseMode(row.Mode),
		LockedEvents:  row.LockedEvents,
		IsActive:      row.IsActive,
		IsComplete:    row.IsComplete,
	}, true, nil
}

func (r *TournamentRepository) ListRankPredictionPickCounts(ctx context.Context, competitionID int64) ([]tournament.PickCount, error) {
	query, args, err := qb.Select("id", "pick_count").From("tournaments").
		Where(
			qb.Eq("competition_id", competitionID),
			qb.Eq("mode", int(tournament.ModeRankPrediction)),
			qb.Gt("pick_count", 0),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list pick counts query: %w", err)
	}

	var rows []pickCountRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list pick counts competition=%d: %w", competitionID, err)
	}

	out := make([]tournament.PickCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, tournament.PickCount{TournamentID: row.TournamentID, PickCount: row.PickCount})
	}
	return out, nil
}

func entrySelectBuilder() *qb.SelectBuilder {
	return qb.Select("e.id", "e.tournament_id", "e.user_id", "u.display_name", "u.avatar").
		From("tournament_entries e").
		Join("app_users u", "u.id = e.user_id")
}

func entryFromRow(row entryRow) tournament.Entry {
	return tournament.Entry{
		ID:           row.ID,
		TournamentID: row.TournamentID,
		UserID:       row.UserID,
		DisplayName:  row.DisplayName,
		Avatar:       row.Avatar,
	}
}
