package pick

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
)

var (
	ErrLocked            = errors.New("picks are locked for an active or complete competition")
	ErrDuplicate         = errors.New("pick already exists")
	ErrSlotTaken         = errors.New("slot is already taken")
	ErrMissingIdentifier = errors.New("identifier is required")
	ErrUnknownMode       = errors.New("unknown tournament mode")
	ErrInvalidGender     = errors.New("invalid gender")
	ErrInvalidRank       = errors.New("rank must be greater than zero")
)

// Mutation describes a swap of one pick slot for an entry.
type Mutation struct {
	Mode         tournament.Mode
	Gender       competitor.Gender
	LockedEvents int
	IsActive     bool
	IsComplete   bool
	Previous     Slot
	Next         Slot

	// Resolved workout ordinals for PositionDraft slots; 0 falls back to Rank.
	PreviousOrdinal int
	NextOrdinal     int
}

// ValidateMutation checks lock rules and slot uniqueness against the entry's current picks.
// The previous slot is treated as already removed.
func ValidateMutation(m Mutation, existing []Pick) error {
	if !m.Mode.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, m.Mode)
	}
	if !m.Gender.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidGender, m.Gender)
	}
	if m.Previous.IsEmpty() && m.Next.IsEmpty() {
		return fmt.Errorf("%w: previous or next competitor", ErrMissingIdentifier)
	}

	switch m.Mode {
	case tournament.ModeRankPrediction:
		if m.IsActive || m.IsComplete {
			return ErrLocked
		}
		if m.Next.IsEmpty() {
			return fmt.Errorf("%w: next competitor", ErrMissingIdentifier)
		}
	case tournament.ModePositionDraft:
		if ordinal := slotOrdinal(m.Previous, m.PreviousOrdinal); !m.Previous.IsEmpty() && ordinal <= m.LockedEvents {
			return fmt.Errorf("%w: previous ordinal=%d locked_events=%d", ErrLocked, ordinal, m.LockedEvents)
		}
		if ordinal := slotOrdinal(m.Next, m.NextOrdinal); !m.Next.IsEmpty() && ordinal <= m.LockedEvents {
			return fmt.Errorf("%w: ordinal=%d locked_events=%d", ErrLocked, ordinal, m.LockedEvents)
		}
	}

	if m.Next.IsEmpty() {
		return nil
	}
	if m.Next.Rank <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRank, m.Next.Rank)
	}

	for _, p := range existing {
		if p.Invalid || p.Gender != m.Gender {
			continue
		}
		if !m.Previous.IsEmpty() && sameSlot(p.Slot(), m.Previous) {
			continue
		}
		if p.CompetitorID == m.Next.CompetitorID && p.Rank == m.Next.Rank {
			return fmt.Errorf("%w: competitor=%d rank=%d", ErrDuplicate, p.CompetitorID, p.Rank)
		}
		if m.Mode == tournament.ModeRankPrediction && p.CompetitorID == m.Next.CompetitorID {
			return fmt.Errorf("%w: competitor=%d already picked at rank=%d", ErrDuplicate, p.CompetitorID, p.Rank)
		}
		if p.Rank == m.Next.Rank && p.WorkoutID == m.Next.WorkoutID {
			return fmt.Errorf("%w: rank=%d held by competitor=%d", ErrSlotTaken, p.Rank, p.CompetitorID)
		}
	}

	return nil
}

func slotOrdinal(s Slot, resolved int) int {
	if resolved > 0 {
		return resolved
	}
	return s.Rank
}

func sameSlot(a, b Slot) bool {
	return a.CompetitorID == b.CompetitorID && a.Rank == b.Rank
}
