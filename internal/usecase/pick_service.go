package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competition"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/pick"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
	"github.com/riskibarqy/fantasy-fitness/internal/platform/logging"
)

type SavePickInput struct {
	UserID   string
	EntryID  int64
	Gender   competitor.Gender
	Previous pick.Slot
	Next     pick.Slot
}

type PickService struct {
	tournamentRepo  tournament.Repository
	competitionRepo competition.Repository
	pickRepo        pick.Repository
	logger          *logging.Logger
}

func NewPickService(
	tournamentRepo tournament.Repository,
	competitionRepo competition.Repository,
	pickRepo pick.Repository,
	logger *logging.Logger,
) *PickService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PickService{
		tournamentRepo:  tournamentRepo,
		competitionRepo: competitionRepo,
		pickRepo:        pickRepo,
		logger:          logger,
	}
}

func (s *PickService) ListPicks(ctx context.Context, userID string, entryID int64) (pick.EntryPicks, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PickService.ListPicks", entryAttr(entryID))
	defer span.End()

	if _, err := s.authorizeEntry(ctx, userID, entryID); err != nil {
		return pick.EntryPicks{}, err
	}
	return s.listGrouped(ctx, entryID)
}

// SavePick moves an entry's pick from Previous to Next. Either side may be
// empty: an empty Previous inserts, an empty Next removes (PositionDraft only).
// Every rule is checked before the store is touched.
func (s *PickService) SavePick(ctx context.Context, input SavePickInput) (pick.EntryPicks, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PickService.SavePick", entryAttr(input.EntryID))
	defer span.End()

	entry, err := s.authorizeEntry(ctx, input.UserID, input.EntryID)
	if err != nil {
		return pick.EntryPicks{}, err
	}

	existing, err := s.pickRepo.ListByEntry(ctx, input.EntryID)
	if err != nil {
		return pick.EntryPicks{}, fmt.Errorf("%w: list picks entry=%d: %w", ErrDependencyUnavailable, input.EntryID, err)
	}

	mutation := pick.Mutation{
		Mode:         entry.Mode,
		Gender:       input.Gender,
		LockedEvents: entry.LockedEvents,
		IsActive:     entry.IsActive,
		IsComplete:   entry.IsComplete,
		Previous:     input.Previous,
		Next:         input.Next,
	}
	if entry.Mode == tournament.ModePositionDraft && (input.Previous.WorkoutID != 0 || input.Next.WorkoutID != 0) {
		workouts, err := s.competitionRepo.ListWorkouts(ctx, entry.CompetitionID)
		if err != nil {
			return pick.EntryPicks{}, fmt.Errorf("%w: list workouts competition=%d: %w", ErrDependencyUnavailable, entry.CompetitionID, err)
		}
		ordinals := competition.OrdinalIndex(workouts)
		if input.Next.WorkoutID != 0 {
			ordinal, ok := ordinals[input.Next.WorkoutID]
			if !ok {
				return pick.EntryPicks{}, fmt.Errorf("%w: workout=%d does not belong to competition=%d", ErrInvalidInput, input.Next.WorkoutID, entry.CompetitionID)
			}
			mutation.NextOrdinal = ordinal
		}
		mutation.PreviousOrdinal = ordinals[input.Previous.WorkoutID]
	}

	if err := pick.ValidateMutation(mutation, existing); err != nil {
		return pick.EntryPicks{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var previous *pick.Slot
	if !input.Previous.IsEmpty() {
		prev := input.Previous
		previous = &prev
	}
	var next *pick.Pick
	if !input.Next.IsEmpty() {
		next = &pick.Pick{
			EntryID:      input.EntryID,
			CompetitorID: input.Next.CompetitorID,
			Gender:       input.Gender,
			Rank:         input.Next.Rank,
			WorkoutID:    input.Next.WorkoutID,
		}
	}

	if err := s.pickRepo.Replace(ctx, input.EntryID, previous, next); err != nil {
		if errors.Is(err, pick.ErrDuplicate) || errors.Is(err, pick.ErrSlotTaken) {
			return pick.EntryPicks{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return pick.EntryPicks{}, fmt.Errorf("%w: save pick entry=%d: %w", ErrDependencyUnavailable, input.EntryID, err)
	}

	s.logger.InfoContext(ctx, "pick saved",
		"entry_id", input.EntryID,
		"gender", input.Gender.String(),
		"previous_competitor_id", input.Previous.CompetitorID,
		"next_competitor_id", input.Next.CompetitorID,
		"rank", input.Next.Rank,
	)
	return s.listGrouped(ctx, input.EntryID)
}

func (s *PickService) authorizeEntry(ctx context.Context, userID string, entryID int64) (tournament.EntryContext, error) {
	if entryID <= 0 {
		return tournament.EntryContext{}, fmt.Errorf("%w: %w", ErrInvalidInput, pick.ErrMissingIdentifier)
	}

	entry, exists, err := s.tournamentRepo.GetEntryContext(ctx, entryID)
	if err != nil {
		return tournament.EntryContext{}, fmt.Errorf("%w: get entry=%d: %w", ErrDependencyUnavailable, entryID, err)
	}
	if !exists {
		return tournament.EntryContext{}, fmt.Errorf("%w: entry=%d not found", ErrNotFound, entryID)
	}
	if err := checkEntryOwner(userID, entry.UserID); err != nil {
		return tournament.EntryContext{}, err
	}
	return entry, nil
}

func (s *PickService) listGrouped(ctx context.Context, entryID int64) (pick.EntryPicks, error) {
	picks, err := s.pickRepo.ListByEntry(ctx, entryID)
	if err != nil {
		return pick.EntryPicks{}, fmt.Errorf("%w: list picks entry=%d: %w", ErrDependencyUnavailable, entryID, err)
	}
	return pick.GroupByGender(entryID, picks), nil
}

// checkEntryOwner compares the authenticated principal against the entry owner.
func checkEntryOwner(userID string, ownerID int64) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrUnauthorized)
	}
	if userID != strconv.FormatInt(ownerID, 10) {
		return fmt.Errorf("%w: entry does not belong to user", ErrUnauthorized)
	}
	return nil
}
