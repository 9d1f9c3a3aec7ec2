package competitor

// Gender is the competition division a competitor belongs to.
type Gender int

const (
	GenderUnknown Gender = 0
	GenderMen     Gender = 1
	GenderWomen   Gender = 2
)

// Genders lists the divisions scored by every league.
var Genders = []Gender{GenderMen, GenderWomen}

func ParseGender(v int) Gender {
	switch Gender(v) {
	case GenderMen:
		return GenderMen
	case GenderWomen:
		return GenderWomen
	default:
		return GenderUnknown
	}
}

func (g Gender) Valid() bool {
	return g == GenderMen || g == GenderWomen
}

func (g Gender) String() string {
	switch g {
	case GenderMen:
		return "men"
	case GenderWomen:
		return "women"
	default:
		return "unknown"
	}
}

type Competitor struct {
	ID            int64
	CompetitionID int64
	Gender        Gender
	FirstName     string
	LastName      string
	Withdrawn     bool
	Cut           bool
	Suspended     bool
	ADP           float64
}

// Standing is one row of the precomputed competition leaderboard view.
// Finishes holds per-workout points indexed by ordinal-1.
type Standing struct {
	CompetitorID  int64
	CompetitionID int64
	Gender        Gender
	FirstName     string
	LastName      string
	Placement     int
	Points        float64
	Finishes      []float64
	Withdrawn     bool
	Cut           bool
	Suspended     bool
}

// FinishAt returns the points earned at a workout ordinal, or 0 when unscored.
func (s Standing) FinishAt(ordinal int) float64 {
	if ordinal <= 0 || ordinal > len(s.Finishes) {
		return 0
	}
	return s.Finishes[ordinal-1]
}

type EventResult struct {
	CompetitorID int64
	Ordinal      int
	Points       float64
}

type Score struct {
	CompetitionID int64
	CompetitorID  int64
	Ordinal       int
	Points        float64
}
