package usecase

import "errors"

// Usecase sentinels. Domain sentinels such as pick.ErrLocked travel wrapped
// inside ErrInvalidInput and are matched separately by the transport.
var (
	// ErrInvalidInput covers malformed requests and rejected mutations.
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	// ErrUnauthorized covers missing principals and entry ownership mismatches.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDependencyUnavailable wraps repository and outbound client failures.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
