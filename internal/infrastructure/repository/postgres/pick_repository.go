package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/pick"
	qb "github.com/riskibarqy/fantasy-fitness/internal/platform/querybuilder"
)

var pickColumns = []string{"p.id", "p.entry_id", "p.competitor_id", "p.gender", "p.rank", "p.workout_id", "p.invalid"}

type PickRepository struct {
	db *sqlx.DB
}

func NewPickRepository(db *sqlx.DB) *PickRepository {
	return &PickRepository{db: db}
}

func (r *PickRepository) ListByEntry(ctx context.Context, entryID int64) ([]pick.Pick, error) {
	query, args, err := qb.Select(pickColumns...).From("entry_picks p").
		Where(qb.Eq("p.entry_id", entryID)).
		OrderBy("p.gender", "p.rank", "p.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list picks by entry query: %w", err)
	}

	var rows []pickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list picks entry=%d: %w", entryID, err)
	}

	out := make([]pick.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pickFromRow(row))
	}
	return out, nil
}

func (r *PickRepository) ListByTournament(ctx context.Context, tournamentID int64) (map[int64][]pick.Pick, error) {
	query, args, err := qb.Select(pickColumns...).From("entry_picks p").
		Join("tournament_entries e", "e.id = p.entry_id").
		Where(qb.Eq("e.tournament_id", tournamentID), qb.Eq("p.invalid", false)).
		OrderBy("p.entry_id", "p.gender", "p.rank", "p.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list picks by tournament query: %w", err)
	}

	var rows []pickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list picks tournament=%d: %w", tournamentID, err)
	}

	out := make(map[int64][]pick.Pick)
	for _, row := range rows {
		out[row.EntryID] = append(out[row.EntryID], pickFromRow(row))
	}
	return out, nil
}

func (r *PickRepository) Insert(ctx context.Context, p pick.Pick) (int64, error) {
	return insertPick(ctx, r.db, p)
}

func (r *PickRepository) Delete(ctx context.Context, entryID int64, slot pick.Slot) error {
	return deletePick(ctx, r.db, entryID, slot)
}

func (r *PickRepository) Replace(ctx context.Context, entryID int64, previous *pick.Slot, next *pick.Pick) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace pick: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if previous != nil && !previous.IsEmpty() {
		if err := deletePick(ctx, tx, entryID, *previous); err != nil {
			return err
		}
	}
	if next != nil && next.CompetitorID != 0 {
		next.EntryID = entryID
		if _, err := insertPick(ctx, tx, *next); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace pick tx: %w", err)
	}
	return nil
}

func insertPick(ctx context.Context, db sqlx.QueryerContext, p pick.Pick) (int64, error) {
	query, args, err := qb.InsertInto("entry_picks").
		Columns("entry_id", "competitor_id", "gender", "rank", "workout_id").
		Values(p.EntryID, p.CompetitorID, int(p.Gender), p.Rank, nullInt64(p.WorkoutID)).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert pick query: %w", err)
	}

	var id int64
	if err := sqlx.GetContext(ctx, db, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert pick entry=%d competitor=%d: %w", p.EntryID, p.CompetitorID, mapPickWriteError(err))
	}
	return id, nil
}

func deletePick(ctx context.Context, db sqlx.ExecerContext, entryID int64, slot pick.Slot) error {
	conds := []qb.Condition{qb.Eq("entry_id", entryID), qb.Eq("competitor_id", slot.CompetitorID)}
	if slot.Rank > 0 {
		conds = append(conds, qb.Eq("rank", slot.Rank))
	}
	query, args, err := qb.DeleteFrom("entry_picks").Where(conds...).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete pick query: %w", err)
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete pick entry=%d competitor=%d: %w", entryID, slot.CompetitorID, err)
	}
	return nil
}

// mapPickWriteError translates unique violations into pick sentinels.
func mapPickWriteError(err error) error {
	switch uniqueConstraint(err) {
	case pickCompetitorConstraint:
		return fmt.Errorf("%w: %w", pick.ErrDuplicate, err)
	case pickSlotConstraint:
		return fmt.Errorf("%w: %w", pick.ErrSlotTaken, err)
	default:
		return err
	}
}

func pickFromRow(row pickTableModel) pick.Pick {
	return pick.Pick{
		ID:           row.ID,
		EntryID:      row.EntryID,
		CompetitorID: row.CompetitorID,
		Gender:       competitor.ParseGender(row.Gender),
		Rank:         row.Rank,
		WorkoutID:    row.WorkoutID.Int64,
		Invalid:      row.Invalid,
	}
}
