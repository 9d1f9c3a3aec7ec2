package tournament

// Mode selects the scoring function of a league. It is fixed when the league is created.
type Mode int

const (
	ModeUnknown        Mode = 0
	ModeRankPrediction Mode = 1
	ModePositionDraft  Mode = 2
)

func ParseMode(id int) Mode {
	switch Mode(id) {
	case ModeRankPrediction:
		return ModeRankPrediction
	case ModePositionDraft:
		return ModePositionDraft
	default:
		return ModeUnknown
	}
}

func (m Mode) Valid() bool {
	return m == ModeRankPrediction || m == ModePositionDraft
}

func (m Mode) String() string {
	switch m {
	case ModeRankPrediction:
		return "rank_prediction"
	case ModePositionDraft:
		return "position_draft"
	default:
		return "unknown"
	}
}

type Tournament struct {
	ID              int64
	CompetitionID   int64
	Name            string
	Mode            Mode
	PickCount       int
	CompetitionName string
	CompetitionLogo string
}

// Entry is one user's participation in a tournament.
type Entry struct {
	ID           int64
	TournamentID int64
	UserID       int64
	DisplayName  string
	Avatar       string
}

// EntryContext carries everything needed to validate a pick mutation for an entry.
type EntryContext struct {
	EntryID       int64
	TournamentID  int64
	CompetitionID int64
	UserID        int64
	Mode          Mode
	LockedEvents  int
	IsActive      bool
	IsComplete    bool
}

type PickCount struct {
	TournamentID int64
	PickCount    int
}
