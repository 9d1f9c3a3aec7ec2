package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/leaderboard"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/prop"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
	"github.com/riskibarqy/fantasy-fitness/internal/platform/logging"
)

// PropView is a prop with its pick distribution and the caller's selection.
type PropView struct {
	Prop             prop.Prop
	Percentages      map[int64]float64
	SelectedOptionID int64
}

type SavePropPickInput struct {
	UserID   string
	EntryID  int64
	PropID   int64
	OptionID int64
}

type PropService struct {
	propRepo       prop.Repository
	tournamentRepo tournament.Repository
	logger         *logging.Logger
}

func NewPropService(propRepo prop.Repository, tournamentRepo tournament.Repository, logger *logging.Logger) *PropService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PropService{
		propRepo:       propRepo,
		tournamentRepo: tournamentRepo,
		logger:         logger,
	}
}

func (s *PropService) ListProps(ctx context.Context, competitionID, entryID int64) ([]PropView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PropService.ListProps", competitionAttr(competitionID))
	defer span.End()

	if competitionID <= 0 {
		return nil, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}

	props, err := s.propRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("%w: list props competition=%d: %w", ErrDependencyUnavailable, competitionID, err)
	}

	selected := map[int64]int64{}
	if entryID > 0 {
		picks, err := s.propRepo.ListPicksByEntry(ctx, entryID)
		if err != nil {
			return nil, fmt.Errorf("%w: list prop picks entry=%d: %w", ErrDependencyUnavailable, entryID, err)
		}
		for _, p := range picks {
			selected[p.PropID] = p.OptionID
		}
	}

	out := make([]PropView, 0, len(props))
	for _, p := range props {
		out = append(out, PropView{
			Prop:             p,
			Percentages:      prop.OptionPercentages(p),
			SelectedOptionID: selected[p.ID],
		})
	}
	return out, nil
}

// SavePropPick records an entry's selection for a prop. Picking the option
// already held is a no-op.
func (s *PropService) SavePropPick(ctx context.Context, input SavePropPickInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PropService.SavePropPick", entryAttr(input.EntryID))
	defer span.End()

	if input.EntryID <= 0 || input.PropID <= 0 || input.OptionID <= 0 {
		return fmt.Errorf("%w: entry id, prop id and option id are required", ErrInvalidInput)
	}

	entry, exists, err := s.tournamentRepo.GetEntryContext(ctx, input.EntryID)
	if err != nil {
		return fmt.Errorf("%w: get entry=%d: %w", ErrDependencyUnavailable, input.EntryID, err)
	}
	if !exists {
		return fmt.Errorf("%w: entry=%d not found", ErrNotFound, input.EntryID)
	}
	if err := checkEntryOwner(input.UserID, entry.UserID); err != nil {
		return err
	}

	p, exists, err := s.propRepo.GetByID(ctx, input.PropID)
	if err != nil {
		return fmt.Errorf("%w: get prop=%d: %w", ErrDependencyUnavailable, input.PropID, err)
	}
	if !exists {
		return fmt.Errorf("%w: prop=%d not found", ErrNotFound, input.PropID)
	}
	if p.CompetitionID != entry.CompetitionID {
		return fmt.Errorf("%w: prop=%d does not belong to the entry's competition", ErrInvalidInput, input.PropID)
	}
	if p.Locked() {
		return fmt.Errorf("%w: %w", ErrInvalidInput, prop.ErrLocked)
	}
	if _, ok := p.Option(input.OptionID); !ok {
		return fmt.Errorf("%w: %w", ErrInvalidInput, prop.ErrUnknownOption)
	}

	current, err := s.propRepo.ListPicksByEntry(ctx, input.EntryID)
	if err != nil {
		return fmt.Errorf("%w: list prop picks entry=%d: %w", ErrDependencyUnavailable, input.EntryID, err)
	}
	for _, c := range current {
		if c.PropID == input.PropID && c.OptionID == input.OptionID {
			return nil
		}
	}

	if err := s.propRepo.UpsertPick(ctx, prop.Pick{EntryID: input.EntryID, PropID: input.PropID, OptionID: input.OptionID}); err != nil {
		return fmt.Errorf("%w: upsert prop pick entry=%d prop=%d: %w", ErrDependencyUnavailable, input.EntryID, input.PropID, err)
	}
	s.logger.InfoContext(ctx, "prop pick saved", "entry_id", input.EntryID, "prop_id", input.PropID, "option_id", input.OptionID)
	return nil
}

// PropLeaderboard ranks a tournament's entries by prop points, then prop wins.
// The Tiebreak column carries the win count.
func (s *PropService) PropLeaderboard(ctx context.Context, tournamentID int64) (leaderboard.Board, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PropService.PropLeaderboard", tournamentAttr(tournamentID))
	defer span.End()

	if tournamentID <= 0 {
		return leaderboard.Board{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	t, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return leaderboard.Board{}, fmt.Errorf("%w: get tournament=%d: %w", ErrDependencyUnavailable, tournamentID, err)
	}
	if !exists {
		return leaderboard.Board{}, fmt.Errorf("%w: tournament=%d not found", ErrNotFound, tournamentID)
	}

	props, err := s.propRepo.ListByCompetition(ctx, t.CompetitionID)
	if err != nil {
		return leaderboard.Board{}, fmt.Errorf("%w: list props competition=%d: %w", ErrDependencyUnavailable, t.CompetitionID, err)
	}
	entries, err := s.tournamentRepo.ListEntries(ctx, tournamentID)
	if err != nil {
		return leaderboard.Board{}, fmt.Errorf("%w: list entries tournament=%d: %w", ErrDependencyUnavailable, tournamentID, err)
	}
	picks, err := s.propRepo.ListPicksByTournament(ctx, tournamentID)
	if err != nil {
		return leaderboard.Board{}, fmt.Errorf("%w: list prop picks tournament=%d: %w", ErrDependencyUnavailable, tournamentID, err)
	}

	rows := make([]leaderboard.Entry, 0, len(entries))
	for _, e := range entries {
		points, wins, _ := prop.Score(props, picks[e.ID])
		rows = append(rows, leaderboard.Entry{
			EntryID:     e.ID,
			UserID:      e.UserID,
			DisplayName: e.DisplayName,
			Avatar:      e.Avatar,
			Points:      points,
			Tiebreak:    wins,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].Tiebreak != rows[j].Tiebreak {
			return rows[i].Tiebreak > rows[j].Tiebreak
		}
		return rows[i].EntryID < rows[j].EntryID
	})
	ranks := leaderboard.CompetitionRanks(len(rows), func(prev, cur int) bool {
		return rows[prev].Points == rows[cur].Points && rows[prev].Tiebreak == rows[cur].Tiebreak
	})
	for i := range rows {
		rows[i].Rank = ranks[i]
	}

	return leaderboard.Board{
		TournamentID:    t.ID,
		CompetitionID:   t.CompetitionID,
		TournamentName:  t.Name,
		CompetitionName: t.CompetitionName,
		CompetitionLogo: t.CompetitionLogo,
		Mode:            t.Mode,
		Entries:         rows,
	}, nil
}
