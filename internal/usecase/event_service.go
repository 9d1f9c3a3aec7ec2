package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competition"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/platform/logging"
)

type ScoreInput struct {
	CompetitorID int64   `json:"competitor_id" validate:"required,gt=0"`
	Points       float64 `json:"points" validate:"gte=0"`
}

type UpdateScoresInput struct {
	CompetitionID int64
	Ordinal       int
	Scores        []ScoreInput
}

type EventServiceConfig struct {
	NotifyTopic string
}

// EventService drives the workout lifecycle: locking, unlocking and scoring.
type EventService struct {
	competitionRepo competition.Repository
	competitorRepo  competitor.Repository
	notifier        Notifier
	scheduler       AnalyticsScheduler
	invalidator     StandingsInvalidator
	cfg             EventServiceConfig
	logger          *logging.Logger
}

func NewEventService(
	competitionRepo competition.Repository,
	competitorRepo competitor.Repository,
	notifier Notifier,
	scheduler AnalyticsScheduler,
	invalidator StandingsInvalidator,
	cfg EventServiceConfig,
	logger *logging.Logger,
) *EventService {
	if logger == nil {
		logger = logging.Default()
	}
	return &EventService{
		competitionRepo: competitionRepo,
		competitorRepo:  competitorRepo,
		notifier:        notifier,
		scheduler:       scheduler,
		invalidator:     invalidator,
		cfg:             cfg,
		logger:          logger,
	}
}

// LockWorkout closes picks up to and including ordinal and marks the workout live.
func (s *EventService) LockWorkout(ctx context.Context, competitionID int64, ordinal int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.LockWorkout", competitionAttr(competitionID), ordinalAttr(ordinal))
	defer span.End()

	workout, err := s.resolveWorkout(ctx, competitionID, ordinal)
	if err != nil {
		return err
	}

	if err := s.competitionRepo.UpdateLockState(ctx, competitionID, true, ordinal); err != nil {
		return fmt.Errorf("%w: update lock state competition=%d: %w", ErrDependencyUnavailable, competitionID, err)
	}
	if err := s.competitionRepo.SetWorkoutActive(ctx, competitionID, ordinal, true); err != nil {
		return fmt.Errorf("%w: activate workout competition=%d ordinal=%d: %w", ErrDependencyUnavailable, competitionID, ordinal, err)
	}

	s.logger.InfoContext(ctx, "workout locked", "competition_id", competitionID, "ordinal", ordinal)
	s.notify(ctx, Notification{
		Title:   "Workout locked",
		Message: fmt.Sprintf("%s (workout %d) is locked for competition %d", workout.Name, ordinal, competitionID),
		Tags:    []string{"lock"},
	})
	return nil
}

// UnlockWorkout reopens the workout at ordinal. The competition stays active
// unless the first workout is reopened.
func (s *EventService) UnlockWorkout(ctx context.Context, competitionID int64, ordinal int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.UnlockWorkout", competitionAttr(competitionID), ordinalAttr(ordinal))
	defer span.End()

	if _, err := s.resolveWorkout(ctx, competitionID, ordinal); err != nil {
		return err
	}

	if err := s.competitionRepo.UpdateLockState(ctx, competitionID, ordinal != 1, ordinal-1); err != nil {
		return fmt.Errorf("%w: update lock state competition=%d: %w", ErrDependencyUnavailable, competitionID, err)
	}
	if err := s.competitionRepo.SetWorkoutActive(ctx, competitionID, ordinal, false); err != nil {
		return fmt.Errorf("%w: deactivate workout competition=%d ordinal=%d: %w", ErrDependencyUnavailable, competitionID, ordinal, err)
	}

	s.logger.InfoContext(ctx, "workout unlocked", "competition_id", competitionID, "ordinal", ordinal)
	return nil
}

// UpdateScores records workout results, refreshes standings and schedules
// an analytics pass for the competition.
func (s *EventService) UpdateScores(ctx context.Context, input UpdateScoresInput) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.UpdateScores", competitionAttr(input.CompetitionID), ordinalAttr(input.Ordinal))
	defer span.End()

	if input.CompetitionID <= 0 {
		return 0, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}
	if input.Ordinal < 1 {
		return 0, fmt.Errorf("%w: ordinal must be >= 1", ErrInvalidInput)
	}
	if len(input.Scores) == 0 {
		return 0, fmt.Errorf("%w: scores are required", ErrInvalidInput)
	}

	byCompetitor := make(map[int64]competitor.Score, len(input.Scores))
	order := make([]int64, 0, len(input.Scores))
	for _, item := range input.Scores {
		if item.CompetitorID <= 0 {
			return 0, fmt.Errorf("%w: competitor id is required", ErrInvalidInput)
		}
		if item.Points < 0 {
			return 0, fmt.Errorf("%w: points must be >= 0 competitor=%d", ErrInvalidInput, item.CompetitorID)
		}
		if _, seen := byCompetitor[item.CompetitorID]; !seen {
			order = append(order, item.CompetitorID)
		}
		// last write wins for repeated competitors
		byCompetitor[item.CompetitorID] = competitor.Score{
			CompetitionID: input.CompetitionID,
			CompetitorID:  item.CompetitorID,
			Ordinal:       input.Ordinal,
			Points:        item.Points,
		}
	}
	scores := make([]competitor.Score, 0, len(order))
	for _, id := range order {
		scores = append(scores, byCompetitor[id])
	}

	if err := s.competitorRepo.UpsertScores(ctx, scores); err != nil {
		return 0, fmt.Errorf("%w: upsert scores competition=%d ordinal=%d: %w", ErrDependencyUnavailable, input.CompetitionID, input.Ordinal, err)
	}
	if err := s.competitorRepo.RefreshStandings(ctx); err != nil {
		return 0, fmt.Errorf("%w: refresh standings: %w", ErrDependencyUnavailable, err)
	}
	if s.invalidator != nil {
		s.invalidator.InvalidateStandings(ctx, input.CompetitionID)
	}

	if s.scheduler != nil {
		if err := s.scheduler.ScheduleAnalytics(ctx, AnalyticsRunInput{CompetitionIDs: []int64{input.CompetitionID}}); err != nil {
			s.logger.WarnContext(ctx, "schedule analytics pass failed", "competition_id", input.CompetitionID, "error", err)
		}
	}

	s.logger.InfoContext(ctx, "workout scores updated",
		"competition_id", input.CompetitionID,
		"ordinal", input.Ordinal,
		"scores", len(scores),
	)
	return len(scores), nil
}

func (s *EventService) resolveWorkout(ctx context.Context, competitionID int64, ordinal int) (competition.Workout, error) {
	if competitionID <= 0 {
		return competition.Workout{}, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}
	if ordinal < 1 {
		return competition.Workout{}, fmt.Errorf("%w: ordinal must be >= 1", ErrInvalidInput)
	}

	workout, exists, err := s.competitionRepo.GetWorkoutByOrdinal(ctx, competitionID, ordinal)
	if err != nil {
		return competition.Workout{}, fmt.Errorf("%w: get workout competition=%d ordinal=%d: %w", ErrDependencyUnavailable, competitionID, ordinal, err)
	}
	if !exists {
		return competition.Workout{}, fmt.Errorf("%w: workout ordinal=%d not found in competition=%d", ErrNotFound, ordinal, competitionID)
	}
	return workout, nil
}

func (s *EventService) notify(ctx context.Context, n Notification) {
	if s.notifier == nil {
		return
	}
	if n.Topic == "" {
		n.Topic = s.cfg.NotifyTopic
	}
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.logger.WarnContext(ctx, "enqueue notification failed", "topic", n.Topic, "error", err)
	}
}
