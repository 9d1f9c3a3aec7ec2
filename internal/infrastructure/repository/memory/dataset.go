package memory

import (
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/analytics"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competition"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/pick"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/prop"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
)

// User is the minimal profile joined onto entries.
type User struct {
	ID          int64
	DisplayName string
	Avatar      string
}

// Seed is the initial content of a Dataset.
type Seed struct {
	Users        []User
	Competitions []competition.Competition
	Workouts     []competition.Workout
	Competitors  []competitor.Competitor
	Scores       []competitor.Score
	Tournaments  []tournament.Tournament
	Entries      []tournament.Entry
	Picks        []pick.Pick
	Props        []prop.Prop
	PropPicks    []prop.Pick
}

// Dataset is the shared state behind every memory repository. All
// repositories built on the same Dataset observe each other's writes.
type Dataset struct {
	mu sync.RWMutex

	users        map[int64]User
	competitions map[int64]competition.Competition
	workouts     map[int64]competition.Workout
	competitors  map[int64]competitor.Competitor
	scores       map[scoreKey]float64
	standings    map[int64]competitor.Standing
	tournaments  map[int64]tournament.Tournament
	entries      map[int64]tournament.Entry
	picks        map[int64]pick.Pick
	props        map[int64]prop.Prop
	propPicks    map[[2]int64]prop.Pick
	adp          map[[2]int64]analytics.ADPRecord
	percentages  map[[3]int64]analytics.PickPercentage

	nextPickID int64
}

type scoreKey struct {
	competitionID int64
	competitorID  int64
	ordinal       int
}

func NewDataset(seed Seed) *Dataset {
	d := &Dataset{
		users:        make(map[int64]User, len(seed.Users)),
		competitions: make(map[int64]competition.Competition, len(seed.Competitions)),
		workouts:     make(map[int64]competition.Workout, len(seed.Workouts)),
		competitors:  make(map[int64]competitor.Competitor, len(seed.Competitors)),
		scores:       make(map[scoreKey]float64, len(seed.Scores)),
		standings:    make(map[int64]competitor.Standing),
		tournaments:  make(map[int64]tournament.Tournament, len(seed.Tournaments)),
		entries:      make(map[int64]tournament.Entry, len(seed.Entries)),
		picks:        make(map[int64]pick.Pick, len(seed.Picks)),
		props:        make(map[int64]prop.Prop, len(seed.Props)),
		propPicks:    make(map[[2]int64]prop.Pick, len(seed.PropPicks)),
		adp:          make(map[[2]int64]analytics.ADPRecord),
		percentages:  make(map[[3]int64]analytics.PickPercentage),
	}

	for _, u := range seed.Users {
		d.users[u.ID] = u
	}
	for _, c := range seed.Competitions {
		d.competitions[c.ID] = c
	}
	for _, w := range seed.Workouts {
		d.workouts[w.ID] = w
	}
	for _, c := range seed.Competitors {
		d.competitors[c.ID] = c
	}
	for _, s := range seed.Scores {
		d.scores[scoreKey{s.CompetitionID, s.CompetitorID, s.Ordinal}] = s.Points
	}
	for _, t := range seed.Tournaments {
		d.tournaments[t.ID] = t
	}
	for _, e := range seed.Entries {
		d.entries[e.ID] = e
	}
	for _, p := range seed.Picks {
		if p.ID > d.nextPickID {
			d.nextPickID = p.ID
		}
		d.picks[p.ID] = p
	}
	for _, p := range seed.Props {
		d.props[p.ID] = cloneProp(p)
	}
	for _, p := range seed.PropPicks {
		d.propPicks[[2]int64{p.EntryID, p.PropID}] = p
	}

	d.refreshStandingsLocked()
	return d
}

// refreshStandingsLocked rebuilds standings from scores. Competitors without
// any score are omitted. Placement uses RANK() semantics per competition and gender.
func (d *Dataset) refreshStandingsLocked() {
	workoutCount := make(map[int64]int)
	for _, w := range d.workouts {
		if w.Ordinal > workoutCount[w.CompetitionID] {
			workoutCount[w.CompetitionID] = w.Ordinal
		}
	}

	out := make(map[int64]competitor.Standing)
	for key, points := range d.scores {
		c, ok := d.competitors[key.competitorID]
		if !ok {
			continue
		}
		s, ok := out[c.ID]
		if !ok {
			size := workoutCount[c.CompetitionID]
			if key.ordinal > size {
				size = key.ordinal
			}
			s = competitor.Standing{
				CompetitorID:  c.ID,
				CompetitionID: c.CompetitionID,
				Gender:        c.Gender,
				FirstName:     c.FirstName,
				LastName:      c.LastName,
				Finishes:      make([]float64, size),
				Withdrawn:     c.Withdrawn,
				Cut:           c.Cut,
				Suspended:     c.Suspended,
			}
		}
		if key.ordinal > len(s.Finishes) {
			grown := make([]float64, key.ordinal)
			copy(grown, s.Finishes)
			s.Finishes = grown
		}
		s.Finishes[key.ordinal-1] = points
		s.Points += points
		out[c.ID] = s
	}

	type group struct {
		competitionID int64
		gender        competitor.Gender
	}
	groups := make(map[group][]int64)
	for id, s := range out {
		g := group{s.CompetitionID, s.Gender}
		groups[g] = append(groups[g], id)
	}
	for _, ids := range groups {
		sort.Slice(ids, func(i, j int) bool {
			a, b := out[ids[i]], out[ids[j]]
			if a.Points != b.Points {
				return a.Points > b.Points
			}
			return a.CompetitorID < b.CompetitorID
		})
		for i, id := range ids {
			s := out[id]
			if i > 0 && out[ids[i-1]].Points == s.Points {
				s.Placement = out[ids[i-1]].Placement
			} else {
				s.Placement = i + 1
			}
			out[id] = s
		}
	}

	d.standings = out
}

func cloneProp(p prop.Prop) prop.Prop {
	p.Options = append([]prop.Option(nil), p.Options...)
	return p
}

func cloneStanding(s competitor.Standing) competitor.Standing {
	s.Finishes = append([]float64(nil), s.Finishes...)
	return s
}
