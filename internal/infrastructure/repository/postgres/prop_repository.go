package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/prop"
	qb "github.com/riskibarqy/fantasy-fitness/internal/platform/querybuilder"
)

type PropRepository struct {
	db *sqlx.DB
}

func NewPropRepository(db *sqlx.DB) *PropRepository {
	return &PropRepository{db: db}
}

func (r *PropRepository) ListByCompetition(ctx context.Context, competitionID int64) ([]prop.Prop, error) {
	query, args, err := propSelectBuilder().
		Where(qb.Eq("p.competition_id", competitionID)).
		OrderBy("p.id", "o.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list props query: %w", err)
	}

	var rows []propOptionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list props competition=%d: %w", competitionID, err)
	}
	return propsFromRows(rows), nil
}

func (r *PropRepository) GetByID(ctx context.Context, propID int64) (prop.Prop, bool, error) {
	query, args, err := propSelectBuilder().
		Where(qb.Eq("p.id", propID)).
		OrderBy("o.id").
		ToSQL()
	if err != nil {
		return prop.Prop{}, false, fmt.Errorf("build get prop query: %w", err)
	}

	var rows []propOptionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return prop.Prop{}, false, fmt.Errorf("get prop id=%d: %w", propID, err)
	}
	props := propsFromRows(rows)
	if len(props) == 0 {
		return prop.Prop{}, false, nil
	}
	return props[0], true, nil
}

func (r *PropRepository) ListPicksByEntry(ctx context.Context, entryID int64) ([]prop.Pick, error) {
	query, args, err := qb.Select("entry_id", "prop_id", "option_id").From("prop_picks").
		Where(qb.Eq("entry_id", entryID)).
		OrderBy("prop_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list prop picks query: %w", err)
	}

	var rows []propPickRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list prop picks entry=%d: %w", entryID, err)
	}

	out := make([]prop.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, prop.Pick{EntryID: row.EntryID, PropID: row.PropID, OptionID: row.OptionID})
	}
	return out, nil
}

func (r *PropRepository) ListPicksByTournament(ctx context.Context, tournamentID int64) (map[int64][]prop.Pick, error) {
	query, args, err := qb.Select("pp.entry_id", "pp.prop_id", "pp.option_id").From("prop_picks pp").
		Join("tournament_entries e", "e.id = pp.entry_id").
		Where(qb.Eq("e.tournament_id", tournamentID)).
		OrderBy("pp.entry_id", "pp.prop_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list tournament prop picks query: %w", err)
	}

	var rows []propPickRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list prop picks tournament=%d: %w", tournamentID, err)
	}

	out := make(map[int64][]prop.Pick)
	for _, row := range rows {
		out[row.EntryID] = append(out[row.EntryID], prop.Pick{EntryID: row.EntryID, PropID: row.PropID, OptionID: row.OptionID})
	}
	return out, nil
}

func (r *PropRepository) UpsertPick(ctx context.Context, p prop.Pick) error {
	query, args, err := qb.InsertModel("prop_picks", propPickInsertModel{
		EntryID:   p.EntryID,
		PropID:    p.PropID,
		OptionID:  p.OptionID,
		UpdatedAt: time.Now().UTC(),
	}, "entry_id", "prop_id")
	if err != nil {
		return fmt.Errorf("build upsert prop pick query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert prop pick entry=%d prop=%d: %w", p.EntryID, p.PropID, err)
	}
	return nil
}

func propSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"p.id AS prop_id", "p.competition_id", "p.title", "p.description", "p.is_active", "p.is_complete",
		"o.id AS option_id", "o.label", "o.points", "o.is_winner",
		"(SELECT COUNT(*) FROM prop_picks pp WHERE pp.option_id = o.id) AS pick_count",
	).
		From("props p").
		LeftJoin("prop_options o", "o.prop_id = p.id")
}

// propsFromRows folds one row per option into props, keeping row order.
func propsFromRows(rows []propOptionRow) []prop.Prop {
	out := make([]prop.Prop, 0)
	index := make(map[int64]int)
	for _, row := range rows {
		i, ok := index[row.PropID]
		if !ok {
			i = len(out)
			index[row.PropID] = i
			out = append(out, prop.Prop{
				ID:            row.PropID,
				CompetitionID: row.CompetitionID,
				Title:         row.Title,
				Description:   row.Description,
				IsActive:      row.IsActive,
				IsComplete:    row.IsComplete,
				Options:       make([]prop.Option, 0, 2),
			})
		}
		if row.OptionID == nil {
			continue
		}

		opt := prop.Option{ID: *row.OptionID, PropID: row.PropID, PickCount: row.PickCount}
		if row.Label != nil {
			opt.Label = *row.Label
		}
		if row.Points != nil {
			opt.Points = *row.Points
		}
		if row.IsWinner != nil {
			opt.IsWinner = *row.IsWinner
		}
		out[i].Options = append(out[i].Options, opt)
	}
	return out
}
