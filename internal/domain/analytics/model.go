package analytics

import (
	"math"
	"sort"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
)

// ADPRecord is the cached average draft position of a competitor in a competition.
type ADPRecord struct {
	CompetitorID  int64
	CompetitionID int64
	Gender        competitor.Gender
	ADP           float64
}

type PickPercentage struct {
	CompetitorID  int64
	CompetitionID int64
	WorkoutID     int64
	Picks         int
	Entries       int
	Percentage    float64
}

// TournamentTally is the pick distribution of one RankPrediction tournament for one gender.
type TournamentTally struct {
	TournamentID int64
	PickCount    int
	Entries      int
	Ranks        map[int64][]int
}

type WorkoutPickCount struct {
	CompetitorID int64
	Gender       competitor.Gender
	FirstName    string
	LastName     string
	Picks        int
}

type WorkoutPrediction struct {
	CompetitorID int64
	Gender       competitor.Gender
	FirstName    string
	LastName     string
	Picks        int
	Percentile   float64
}

// PaddingValue is the rank assumed for an entry that did not draft a competitor:
// just outside the tournament's draft window.
func PaddingValue(pickCount int) int {
	if pickCount <= 0 {
		return 0
	}
	return pickCount + (pickCount+1)/2
}

// ComputeADP averages each competitor's draft ranks across tallies, padding
// entries that did not pick the competitor. Competitors without any sample get 0.
func ComputeADP(competitorIDs []int64, tallies []TournamentTally) map[int64]float64 {
	type accumulator struct {
		sum   float64
		count int
	}

	acc := make(map[int64]*accumulator, len(competitorIDs))
	for _, id := range competitorIDs {
		acc[id] = &accumulator{}
	}
	for _, tally := range tallies {
		for id := range tally.Ranks {
			if _, ok := acc[id]; !ok {
				acc[id] = &accumulator{}
			}
		}
	}

	for _, tally := range tallies {
		pad := float64(PaddingValue(tally.PickCount))
		for id, a := range acc {
			ranks := tally.Ranks[id]
			for _, r := range ranks {
				a.sum += float64(r)
				a.count++
			}
			if missing := tally.Entries - len(ranks); missing > 0 {
				a.sum += pad * float64(missing)
				a.count += missing
			}
		}
	}

	out := make(map[int64]float64, len(acc))
	for id, a := range acc {
		if a.count == 0 {
			out[id] = 0
			continue
		}
		out[id] = a.sum / float64(a.count)
	}
	return out
}

// Percentage returns count/entries*100 clamped to [0,100]; a zero denominator yields 0.
func Percentage(count, entries int) float64 {
	if entries <= 0 || count <= 0 {
		return 0
	}
	value := float64(count) / float64(entries) * 100
	return math.Min(value, 100)
}

// Predictions converts raw workout pick counts into per-gender percentiles,
// ordered by picks desc then competitor id.
func Predictions(counts []WorkoutPickCount) []WorkoutPrediction {
	totals := make(map[competitor.Gender]int, 2)
	for _, c := range counts {
		totals[c.Gender] += c.Picks
	}

	out := make([]WorkoutPrediction, 0, len(counts))
	for _, c := range counts {
		out = append(out, WorkoutPrediction{
			CompetitorID: c.CompetitorID,
			Gender:       c.Gender,
			FirstName:    c.FirstName,
			LastName:     c.LastName,
			Picks:        c.Picks,
			Percentile:   Percentage(c.Picks, totals[c.Gender]),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Gender != out[j].Gender {
			return out[i].Gender < out[j].Gender
		}
		if out[i].Picks != out[j].Picks {
			return out[i].Picks > out[j].Picks
		}
		return out[i].CompetitorID < out[j].CompetitorID
	})
	return out
}
