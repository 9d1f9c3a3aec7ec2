package prop

import (
	"errors"
	"math"
)

var (
	ErrLocked        = errors.New("prop is locked for an active or complete event")
	ErrUnknownOption = errors.New("option does not belong to prop")
)

// Prop is a binary-choice side bet attached to a competition.
type Prop struct {
	ID            int64
	CompetitionID int64
	Title         string
	Description   string
	IsActive      bool
	IsComplete    bool
	Options       []Option
}

type Option struct {
	ID        int64
	PropID    int64
	Label     string
	Points    float64
	IsWinner  bool
	PickCount int
}

type Pick struct {
	EntryID  int64
	PropID   int64
	OptionID int64
}

// ScoredPick reports the outcome of one prop selection.
type ScoredPick struct {
	PropID   int64
	OptionID int64
	Title    string
	Label    string
	Points   float64
	IsWinner bool
	Settled  bool
}

func (p Prop) Locked() bool {
	return p.IsActive || p.IsComplete
}

func (p Prop) Option(optionID int64) (Option, bool) {
	for _, o := range p.Options {
		if o.ID == optionID {
			return o, true
		}
	}
	return Option{}, false
}

// Score sums the face value of every chosen option marked a winner.
// Picks for unknown props or options contribute nothing.
func Score(props []Prop, picks []Pick) (float64, int, []ScoredPick) {
	byID := make(map[int64]Prop, len(props))
	for _, p := range props {
		byID[p.ID] = p
	}

	var (
		points float64
		wins   int
	)
	scored := make([]ScoredPick, 0, len(picks))
	for _, pk := range picks {
		p, ok := byID[pk.PropID]
		if !ok {
			continue
		}
		opt, ok := p.Option(pk.OptionID)
		if !ok {
			continue
		}

		item := ScoredPick{
			PropID:   p.ID,
			OptionID: opt.ID,
			Title:    p.Title,
			Label:    opt.Label,
			IsWinner: opt.IsWinner,
			Settled:  p.IsComplete,
		}
		if opt.IsWinner {
			item.Points = opt.Points
			points += opt.Points
			wins++
		}
		scored = append(scored, item)
	}

	return points, wins, scored
}

// OptionPercentages returns each option's share of picks rounded to whole percent.
func OptionPercentages(p Prop) map[int64]float64 {
	total := 0
	for _, o := range p.Options {
		total += o.PickCount
	}

	out := make(map[int64]float64, len(p.Options))
	for _, o := range p.Options {
		if total == 0 {
			out[o.ID] = 0
			continue
		}
		out[o.ID] = math.Round(float64(o.PickCount) / float64(total) * 100)
	}
	return out
}
