package competition

import "context"

type Repository interface {
	GetByID(ctx context.Context, competitionID int64) (Competition, bool, error)
	ListActiveIDs(ctx context.Context) ([]int64, error)
	UpdateLockState(ctx context.Context, competitionID int64, isActive bool, lockedEvents int) error
	ListWorkouts(ctx context.Context, competitionID int64) ([]Workout, error)
	GetWorkoutByOrdinal(ctx context.Context, competitionID int64, ordinal int) (Workout, bool, error)
	SetWorkoutActive(ctx context.Context, competitionID int64, ordinal int, active bool) error
}
