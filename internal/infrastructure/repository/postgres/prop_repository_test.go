package postgres

import "testing"

func TestPropsFromRows_GroupsOptions(t *testing.T) {
	t.Parallel()

	opt := func(id int64, label string, points float64, winner bool) (*int64, *string, *float64, *bool) {
		return &id, &label, &points, &winner
	}
	o1, l1, p1, w1 := opt(11, "Yes", 10, true)
	o2, l2, p2, w2 := opt(12, "No", 5, false)

	rows := []propOptionRow{
		{PropID: 1, CompetitionID: 42, Title: "Sub 5 minute Fran", OptionID: o1, Label: l1, Points: p1, IsWinner: w1, PickCount: 3},
		{PropID: 1, CompetitionID: 42, Title: "Sub 5 minute Fran", OptionID: o2, Label: l2, Points: p2, IsWinner: w2, PickCount: 1},
		{PropID: 2, CompetitionID: 42, Title: "No options yet"},
	}

	props := propsFromRows(rows)
	if len(props) != 2 {
		t.Fatalf("unexpected prop count: got=%d want=2", len(props))
	}
	if len(props[0].Options) != 2 || props[0].Options[0].Label != "Yes" || !props[0].Options[0].IsWinner {
		t.Fatalf("unexpected options: %+v", props[0].Options)
	}
	if props[0].Options[1].PickCount != 1 || props[0].Options[1].PropID != 1 {
		t.Fatalf("unexpected second option: %+v", props[0].Options[1])
	}
	if len(props[1].Options) != 0 {
		t.Fatalf("expected prop without options to stay empty: %+v", props[1].Options)
	}
}
