package pick

import "github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"

// Pick associates an entry with a competitor in one slot.
// RankPrediction slots use Rank as the predicted finish. PositionDraft slots
// bind a workout; Rank mirrors the workout ordinal at pick time but the
// workout is authoritative when scoring.
type Pick struct {
	ID           int64
	EntryID      int64
	CompetitorID int64
	Gender       competitor.Gender
	Rank         int
	WorkoutID    int64
	Invalid      bool
}

// Slot identifies a pick inside a mutation request.
type Slot struct {
	CompetitorID int64
	Rank         int
	WorkoutID    int64
}

func (s Slot) IsEmpty() bool {
	return s.CompetitorID == 0
}

func (p Pick) Slot() Slot {
	return Slot{CompetitorID: p.CompetitorID, Rank: p.Rank, WorkoutID: p.WorkoutID}
}

type EntryPicks struct {
	EntryID int64
	Men     []Pick
	Women   []Pick
}

// GroupByGender splits picks into divisions, dropping picks flagged invalid.
func GroupByGender(entryID int64, picks []Pick) EntryPicks {
	out := EntryPicks{
		EntryID: entryID,
		Men:     make([]Pick, 0, len(picks)),
		Women:   make([]Pick, 0, len(picks)),
	}
	for _, p := range picks {
		if p.Invalid {
			continue
		}
		switch p.Gender {
		case competitor.GenderMen:
			out.Men = append(out.Men, p)
		case competitor.GenderWomen:
			out.Women = append(out.Women, p)
		}
	}
	return out
}

func (e EntryPicks) ByGender(g competitor.Gender) []Pick {
	switch g {
	case competitor.GenderMen:
		return e.Men
	case competitor.GenderWomen:
		return e.Women
	default:
		return nil
	}
}
