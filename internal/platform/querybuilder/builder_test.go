package querybuilder

import (
	"testing"

	"github.com/lib/pq"
)

func TestSelectBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Select("p.id", "p.competitor_id").
		From("picks p").
		Join("entries e", "e.id = p.entry_id").
		LeftJoin("workouts w", "w.id = p.workout_id").
		Where(Eq("e.tournament_id", int64(7)), Lte("w.ordinal", 3), IsNull("p.deleted_at")).
		OrderBy("p.rank ASC", "p.id ASC").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	want := "SELECT p.id, p.competitor_id FROM picks p JOIN entries e ON e.id = p.entry_id " +
		"LEFT JOIN workouts w ON w.id = p.workout_id " +
		"WHERE e.tournament_id = $1 AND w.ordinal <= $2 AND p.deleted_at IS NULL " +
		"ORDER BY p.rank ASC, p.id ASC LIMIT 10 OFFSET 20"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 2 || args[0] != int64(7) || args[1] != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_AnyAndOr(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").
		From("competitors").
		Where(AnyInt64("id", []int64{1, 2}), Or(Eq("withdrawn", true), Gt("cut_at", 0))).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	want := "SELECT id FROM competitors WHERE id = ANY($1) AND (withdrawn = $2 OR cut_at > $3)"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
	arr, ok := args[0].(*pq.Int64Array)
	if !ok || len(*arr) != 2 {
		t.Fatalf("expected pq int64 array arg, got %T", args[0])
	}
}

func TestSelectBuilder_EmptyListsMatchNothing(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").From("t").Where(AnyInt64("id", nil), In("x", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM t WHERE 1=0 AND 1=0" || len(args) != 0 {
		t.Fatalf("unexpected query=%s args=%+v", query, args)
	}
}

func TestInsertBuilder_Upsert(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("competitor_adp").
		Columns("competition_id", "competitor_id", "adp").
		Values(int64(42), int64(100), 9.5).
		OnConflictUpdate([]string{"competition_id", "competitor_id"}, "adp").
		Suffix("RETURNING competitor_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	want := "INSERT INTO competitor_adp (competition_id, competitor_id, adp) VALUES ($1, $2, $3) " +
		"ON CONFLICT (competition_id, competitor_id) DO UPDATE SET adp = EXCLUDED.adp RETURNING competitor_id"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_DoNothingAndRowMismatch(t *testing.T) {
	t.Parallel()

	query, _, err := InsertInto("prop_picks").
		Columns("entry_id", "prop_id").
		Values(1, 2).
		Values(3, 4).
		OnConflictDoNothing("entry_id", "prop_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}
	want := "INSERT INTO prop_picks (entry_id, prop_id) VALUES ($1, $2), ($3, $4) ON CONFLICT (entry_id, prop_id) DO NOTHING"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}

	if _, _, err := InsertInto("t").Columns("a", "b").Values(1).ToSQL(); err == nil {
		t.Fatalf("expected row length mismatch error")
	}
}

func TestUpdateBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Update("competitions").
		Set("is_active", true).
		SetExpr("locked_events", "GREATEST(?, 0)", 2).
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(42))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	want := "UPDATE competitions SET is_active = $1, locked_events = GREATEST($2, 0), updated_at = NOW() WHERE id = $3"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 3 || args[0] != true || args[1] != 2 || args[2] != int64(42) {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := Update("competitions").Set("is_active", false).ToSQL(); err == nil {
		t.Fatalf("expected error for update without where")
	}
}

func TestDeleteBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := DeleteFrom("picks").
		Where(Eq("entry_id", int64(9)), Eq("competitor_id", int64(100)), Neq("rank", 0)).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	want := "DELETE FROM picks WHERE entry_id = $1 AND competitor_id = $2 AND rank <> $3"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("picks").ToSQL(); err == nil {
		t.Fatalf("expected error for delete without where")
	}
}

type scoreRow struct {
	CompetitionID int64   `db:"competition_id"`
	CompetitorID  int64   `db:"competitor_id"`
	Ordinal       int     `db:"ordinal"`
	Points        float64 `db:"points"`
	UpdatedAt     string  `db:"updated_at,readonly"`
	ignored       int
}

func TestInsertModel_Upsert(t *testing.T) {
	t.Parallel()

	query, args, err := InsertModel("scores", scoreRow{CompetitionID: 42, CompetitorID: 100, Ordinal: 1, Points: 87.5},
		"competition_id", "competitor_id", "ordinal")
	if err != nil {
		t.Fatalf("build insert model: %v", err)
	}

	want := "INSERT INTO scores (competition_id, competitor_id, ordinal, points) VALUES ($1, $2, $3, $4) " +
		"ON CONFLICT (competition_id, competitor_id, ordinal) DO UPDATE SET points = EXCLUDED.points"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 4 || args[3] != 87.5 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
