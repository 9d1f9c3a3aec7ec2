package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/analytics"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competition"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/tournament"
	"github.com/riskibarqy/fantasy-fitness/internal/platform/lock"
	"github.com/riskibarqy/fantasy-fitness/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

// KeyedLocker serializes work per key. The returned release func must be called once.
type KeyedLocker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

type DraftAnalyticsConfig struct {
	MaxWorkers     int
	TallyWorkers   int
	UnitTimeout    time.Duration
	CompetitionIDs []int64
}

type AnalyticsRunInput struct {
	CompetitionIDs []int64 `json:"competition_ids,omitempty"`
	MaxWorkers     int     `json:"max_workers,omitempty"`
}

type AnalyticsRunResult struct {
	CompetitionCount int                   `json:"competition_count"`
	UnitCount        int                   `json:"unit_count"`
	SuccessCount     int                   `json:"success_count"`
	FailedCount      int                   `json:"failed_count"`
	WorkerCount      int                   `json:"worker_count"`
	Units            []AnalyticsUnitResult `json:"units"`
}

type AnalyticsUnitResult struct {
	CompetitionID int64  `json:"competition_id"`
	Kind          string `json:"kind"`
	Gender        string `json:"gender,omitempty"`
	WorkoutID     int64  `json:"workout_id,omitempty"`
	Status        string `json:"status"`
	Records       int    `json:"records"`
	DurationMs    int64  `json:"duration_ms"`
	Message       string `json:"message,omitempty"`
}

const (
	analyticsStatusSuccess = "success"
	analyticsStatusFailed  = "failed"

	analyticsKindADP            = "adp"
	analyticsKindPickPercentage = "pick_percentage"

	defaultAnalyticsWorkers = 4
	maxAnalyticsWorkers     = 32
)

type analyticsUnit struct {
	competitionID int64
	kind          string
	gender        competitor.Gender
	workoutID     int64
	planErr       error
}

type DraftAnalyticsService struct {
	competitionRepo competition.Repository
	tournamentRepo  tournament.Repository
	competitorRepo  competitor.Repository
	analyticsRepo   analytics.Repository
	locker          KeyedLocker
	cfg             DraftAnalyticsConfig
	logger          *logging.Logger
}

func NewDraftAnalyticsService(
	competitionRepo competition.Repository,
	tournamentRepo tournament.Repository,
	competitorRepo competitor.Repository,
	analyticsRepo analytics.Repository,
	locker KeyedLocker,
	cfg DraftAnalyticsConfig,
	logger *logging.Logger,
) *DraftAnalyticsService {
	if logger == nil {
		logger = logging.Default()
	}
	if locker == nil {
		locker = lock.NewLocal()
	}
	return &DraftAnalyticsService{
		competitionRepo: competitionRepo,
		tournamentRepo:  tournamentRepo,
		competitorRepo:  competitorRepo,
		analyticsRepo:   analyticsRepo,
		locker:          locker,
		cfg:             cfg,
		logger:          logger,
	}
}

// RunPass recomputes ADP for every (competition, gender) and Pick% for every
// (competition, workout). Units run on a bounded worker pool; a failed unit
// is recorded and does not stop the others.
func (s *DraftAnalyticsService) RunPass(ctx context.Context, input AnalyticsRunInput) (AnalyticsRunResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftAnalyticsService.RunPass")
	defer span.End()

	competitionIDs, err := s.resolveCompetitions(ctx, input.CompetitionIDs)
	if err != nil {
		return AnalyticsRunResult{}, err
	}

	units := s.planUnits(ctx, competitionIDs)
	maxWorkers := input.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = s.cfg.MaxWorkers
	}
	workerCount := normalizeAnalyticsWorkerCount(maxWorkers, len(units))

	result := AnalyticsRunResult{
		CompetitionCount: len(competitionIDs),
		UnitCount:        len(units),
		WorkerCount:      workerCount,
		Units:            make([]AnalyticsUnitResult, 0, len(units)),
	}
	if len(units) == 0 {
		return result, nil
	}

	results := make(chan AnalyticsUnitResult, len(units))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	workers, err := ants.NewPool(workerCount)
	if err != nil {
		return AnalyticsRunResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workers.Release()

	var wg sync.WaitGroup
	for _, unit := range units {
		unit := unit
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()

			row := s.runUnit(ctx, unit)
			if row.Status == analyticsStatusSuccess {
				successCount.Add(1)
			} else {
				failedCount.Add(1)
			}
			results <- row
		}); err != nil {
			wg.Done()
			return AnalyticsRunResult{}, fmt.Errorf("submit analytics unit to worker pool: %w", err)
		}
	}

	wg.Wait()
	close(results)

	for row := range results {
		result.Units = append(result.Units, row)
	}
	sort.SliceStable(result.Units, func(i, j int) bool {
		a, b := result.Units[i], result.Units[j]
		if a.CompetitionID != b.CompetitionID {
			return a.CompetitionID < b.CompetitionID
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Gender != b.Gender {
			return a.Gender < b.Gender
		}
		return a.WorkoutID < b.WorkoutID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	s.logger.InfoContext(ctx, "draft analytics pass finished",
		"competitions", result.CompetitionCount,
		"units", result.UnitCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
	)
	return result, nil
}

func (s *DraftAnalyticsService) resolveCompetitions(ctx context.Context, requested []int64) ([]int64, error) {
	ids := requested
	if len(ids) == 0 {
		ids = s.cfg.CompetitionIDs
	}
	if len(ids) == 0 {
		active, err := s.competitionRepo.ListActiveIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: list active competitions: %w", ErrDependencyUnavailable, err)
		}
		ids = active
	}

	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("%w: invalid competition id=%d", ErrInvalidInput, id)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (s *DraftAnalyticsService) planUnits(ctx context.Context, competitionIDs []int64) []analyticsUnit {
	units := make([]analyticsUnit, 0, len(competitionIDs)*4)
	for _, competitionID := range competitionIDs {
		for _, g := range competitor.Genders {
			units = append(units, analyticsUnit{competitionID: competitionID, kind: analyticsKindADP, gender: g})
		}

		workouts, err := s.competitionRepo.ListWorkouts(ctx, competitionID)
		if err != nil {
			units = append(units, analyticsUnit{
				competitionID: competitionID,
				kind:          analyticsKindPickPercentage,
				planErr:       fmt.Errorf("list workouts: %w", err),
			})
			continue
		}
		for _, w := range workouts {
			units = append(units, analyticsUnit{competitionID: competitionID, kind: analyticsKindPickPercentage, workoutID: w.ID})
		}
	}
	return units
}

func (s *DraftAnalyticsService) runUnit(ctx context.Context, unit analyticsUnit) AnalyticsUnitResult {
	start := time.Now()
	row := AnalyticsUnitResult{
		CompetitionID: unit.competitionID,
		Kind:          unit.kind,
		WorkoutID:     unit.workoutID,
	}
	if unit.gender.Valid() {
		row.Gender = unit.gender.String()
	}

	if s.cfg.UnitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.UnitTimeout)
		defer cancel()
	}

	var (
		records int
		err     = unit.planErr
	)
	if err == nil {
		switch unit.kind {
		case analyticsKindADP:
			records, err = s.RefreshADP(ctx, unit.competitionID, unit.gender)
		case analyticsKindPickPercentage:
			records, err = s.RefreshPickPercentages(ctx, unit.competitionID, unit.workoutID)
		default:
			err = fmt.Errorf("unknown analytics unit kind=%s", unit.kind)
		}
	}

	row.Records = records
	row.DurationMs = time.Since(start).Milliseconds()
	if err != nil {
		row.Status = analyticsStatusFailed
		row.Message = err.Error()
		s.logger.WarnContext(ctx, "draft analytics unit failed",
			"competition_id", unit.competitionID,
			"kind", unit.kind,
			"gender", row.Gender,
			"workout_id", unit.workoutID,
			"error", err,
		)
		return row
	}
	row.Status = analyticsStatusSuccess
	return row
}

// RefreshADP recomputes and stores ADP for every competitor of one gender in
// a competition. It returns the number of rows written.
func (s *DraftAnalyticsService) RefreshADP(ctx context.Context, competitionID int64, gender competitor.Gender) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftAnalyticsService.RefreshADP", competitionAttr(competitionID), attribute.String("fantasy.gender", gender.String()))
	defer span.End()

	if competitionID <= 0 || !gender.Valid() {
		return 0, fmt.Errorf("%w: competition id and gender are required", ErrInvalidInput)
	}

	competitorIDs, err := s.competitorRepo.ListIDsByCompetitionAndGender(ctx, competitionID, gender)
	if err != nil {
		return 0, fmt.Errorf("list competitors competition=%d gender=%s: %w", competitionID, gender, err)
	}
	pickCounts, err := s.tournamentRepo.ListRankPredictionPickCounts(ctx, competitionID)
	if err != nil {
		return 0, fmt.Errorf("list tournaments competition=%d: %w", competitionID, err)
	}

	tallies, err := s.collectTallies(ctx, pickCounts, gender)
	if err != nil {
		return 0, err
	}

	adp := analytics.ComputeADP(competitorIDs, tallies)
	ids := make([]int64, 0, len(adp))
	for id := range adp {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	written := 0
	var errs []error
	for _, id := range ids {
		record := analytics.ADPRecord{
			CompetitorID:  id,
			CompetitionID: competitionID,
			Gender:        gender,
			ADP:           adp[id],
		}
		if err := s.withLock(ctx, adpLockKey(competitionID, id), func(ctx context.Context) error {
			return s.analyticsRepo.UpsertCompetitorADP(ctx, record)
		}); err != nil {
			errs = append(errs, fmt.Errorf("upsert adp competitor=%d competition=%d: %w", id, competitionID, err))
			continue
		}
		written++
	}
	return written, errors.Join(errs...)
}

func (s *DraftAnalyticsService) collectTallies(ctx context.Context, pickCounts []tournament.PickCount, gender competitor.Gender) ([]analytics.TournamentTally, error) {
	if len(pickCounts) == 0 {
		return nil, nil
	}

	p := pool.NewWithResults[analytics.TournamentTally]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(normalizeAnalyticsWorkerCount(s.cfg.TallyWorkers, len(pickCounts)))
	for _, pc := range pickCounts {
		pc := pc
		p.Go(func(ctx context.Context) (analytics.TournamentTally, error) {
			entries, err := s.analyticsRepo.CountTournamentEntries(ctx, pc.TournamentID, gender)
			if err != nil {
				return analytics.TournamentTally{}, fmt.Errorf("count entries tournament=%d: %w", pc.TournamentID, err)
			}
			ranks, err := s.analyticsRepo.ListTournamentPickRanks(ctx, pc.TournamentID, gender)
			if err != nil {
				return analytics.TournamentTally{}, fmt.Errorf("list pick ranks tournament=%d: %w", pc.TournamentID, err)
			}
			return analytics.TournamentTally{
				TournamentID: pc.TournamentID,
				PickCount:    pc.PickCount,
				Entries:      entries,
				Ranks:        ranks,
			}, nil
		})
	}

	tallies, err := p.Wait()
	if err != nil {
		return nil, err
	}
	sort.Slice(tallies, func(i, j int) bool { return tallies[i].TournamentID < tallies[j].TournamentID })
	return tallies, nil
}

// RefreshPickPercentages recomputes the share of entries that drafted each
// competitor for one workout.
func (s *DraftAnalyticsService) RefreshPickPercentages(ctx context.Context, competitionID, workoutID int64) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftAnalyticsService.RefreshPickPercentages", competitionAttr(competitionID), attribute.Int64("fantasy.workout_id", workoutID))
	defer span.End()

	if competitionID <= 0 || workoutID <= 0 {
		return 0, fmt.Errorf("%w: competition id and workout id are required", ErrInvalidInput)
	}

	counts, err := s.analyticsRepo.CountWorkoutPicks(ctx, competitionID, workoutID)
	if err != nil {
		return 0, fmt.Errorf("count workout picks workout=%d: %w", workoutID, err)
	}
	entries, err := s.analyticsRepo.CountWorkoutEntries(ctx, competitionID, workoutID)
	if err != nil {
		return 0, fmt.Errorf("count workout entries workout=%d: %w", workoutID, err)
	}
	ids, err := s.pickPercentageCompetitors(ctx, competitionID, counts)
	if err != nil {
		return 0, err
	}

	written := 0
	var errs []error
	for _, id := range ids {
		record := analytics.PickPercentage{
			CompetitorID:  id,
			CompetitionID: competitionID,
			WorkoutID:     workoutID,
			Picks:         counts[id],
			Entries:       entries,
			Percentage:    analytics.Percentage(counts[id], entries),
		}
		if err := s.withLock(ctx, pickPercentageLockKey(competitionID, workoutID, id), func(ctx context.Context) error {
			return s.analyticsRepo.UpsertPickPercentage(ctx, record)
		}); err != nil {
			errs = append(errs, fmt.Errorf("upsert pick percentage competitor=%d workout=%d: %w", id, workoutID, err))
			continue
		}
		written++
	}
	return written, errors.Join(errs...)
}

// pickPercentageCompetitors returns every competitor of the competition plus
// any picked id the roster no longer lists. Unpicked competitors get a 0 row
// so earlier percentages are overwritten.
func (s *DraftAnalyticsService) pickPercentageCompetitors(ctx context.Context, competitionID int64, counts map[int64]int) ([]int64, error) {
	seen := make(map[int64]struct{}, len(counts))
	ids := make([]int64, 0, len(counts))
	add := func(id int64) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, g := range competitor.Genders {
		roster, err := s.competitorRepo.ListIDsByCompetitionAndGender(ctx, competitionID, g)
		if err != nil {
			return nil, fmt.Errorf("list competitors competition=%d gender=%s: %w", competitionID, g, err)
		}
		for _, id := range roster {
			add(id)
		}
	}
	for id := range counts {
		add(id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *DraftAnalyticsService) ListADP(ctx context.Context, competitionID int64, gender competitor.Gender) ([]analytics.ADPRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftAnalyticsService.ListADP", competitionAttr(competitionID))
	defer span.End()

	if competitionID <= 0 {
		return nil, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}
	if !gender.Valid() {
		return nil, fmt.Errorf("%w: gender must be 1 (men) or 2 (women)", ErrInvalidInput)
	}

	items, err := s.analyticsRepo.ListADP(ctx, competitionID, gender)
	if err != nil {
		return nil, fmt.Errorf("%w: list adp competition=%d: %w", ErrDependencyUnavailable, competitionID, err)
	}
	return items, nil
}

// WorkoutPrediction reports how the field drafted a workout, per gender.
func (s *DraftAnalyticsService) WorkoutPrediction(ctx context.Context, competitionID int64, ordinal int) ([]analytics.WorkoutPrediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftAnalyticsService.WorkoutPrediction", competitionAttr(competitionID), ordinalAttr(ordinal))
	defer span.End()

	if competitionID <= 0 {
		return nil, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}
	if ordinal < 1 {
		return nil, fmt.Errorf("%w: ordinal must be >= 1", ErrInvalidInput)
	}

	counts, err := s.analyticsRepo.ListWorkoutPickCounts(ctx, competitionID, ordinal)
	if err != nil {
		return nil, fmt.Errorf("%w: list workout pick counts competition=%d ordinal=%d: %w", ErrDependencyUnavailable, competitionID, ordinal, err)
	}
	return analytics.Predictions(counts), nil
}

func (s *DraftAnalyticsService) withLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	release, err := s.locker.Lock(ctx, key)
	if err != nil {
		return fmt.Errorf("acquire lock key=%s: %w", key, err)
	}
	defer release()
	return fn(ctx)
}

func adpLockKey(competitionID, competitorID int64) string {
	return "analytics:adp:" + strconv.FormatInt(competitionID, 10) + ":" + strconv.FormatInt(competitorID, 10)
}

func pickPercentageLockKey(competitionID, workoutID, competitorID int64) string {
	return "analytics:pickpct:" + strconv.FormatInt(competitionID, 10) + ":" +
		strconv.FormatInt(workoutID, 10) + ":" + strconv.FormatInt(competitorID, 10)
}

func normalizeAnalyticsWorkerCount(requested, units int) int {
	count := requested
	if count <= 0 {
		count = defaultAnalyticsWorkers
	}
	if count > maxAnalyticsWorkers {
		count = maxAnalyticsWorkers
	}
	if units > 0 && count > units {
		count = units
	}
	if count <= 0 {
		count = 1
	}
	return count
}
