package competition

import "time"

type Competition struct {
	ID           int64
	Name         string
	Logo         string
	IsActive     bool
	IsComplete   bool
	LockedEvents int
}

// LockState governs whether picks for a competition may still change.
type LockState struct {
	CompetitionID int64
	LockedEvents  int
	IsActive      bool
	IsComplete    bool
}

func (c Competition) LockState() LockState {
	return LockState{
		CompetitionID: c.ID,
		LockedEvents:  c.LockedEvents,
		IsActive:      c.IsActive,
		IsComplete:    c.IsComplete,
	}
}

type Workout struct {
	ID            int64
	CompetitionID int64
	Name          string
	Ordinal       int
	StartTime     *time.Time
	Location      string
	Description   string
	IsActive      bool
	IsComplete    bool
}

// OrdinalIndex maps workout ids to their ordinal.
func OrdinalIndex(workouts []Workout) map[int64]int {
	out := make(map[int64]int, len(workouts))
	for _, w := range workouts {
		out[w.ID] = w.Ordinal
	}
	return out
}
