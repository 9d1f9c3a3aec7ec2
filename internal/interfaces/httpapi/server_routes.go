package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/leaderboard", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/matchup", handler.GetMatchup)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/props/leaderboard", handler.GetPropLeaderboard)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/props", handler.ListProps)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/adp", handler.ListADP)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/workouts/{ordinal}/predictions", handler.GetWorkoutPredictions)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/entries/{entryID}/picks", RequireAuth(verifier, http.HandlerFunc(handler.ListPicks)))
	mux.Handle("PUT /v1/entries/{entryID}/picks", RequireAuth(verifier, http.HandlerFunc(handler.SavePick)))
	mux.Handle("PUT /v1/entries/{entryID}/props/{propID}", RequireAuth(verifier, http.HandlerFunc(handler.SavePropPick)))
}

// Internal routes are called by the job queue and by the results operator.
func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	internal := func(h http.HandlerFunc) http.Handler {
		return RequireInternalJobToken(internalJobToken, h)
	}

	mux.Handle("POST /v1/internal/jobs/analytics", internal(handler.RunAnalyticsJob))
	mux.Handle("POST /v1/internal/jobs/notify", internal(handler.RunNotifyJob))
	mux.Handle("POST /v1/internal/competitions/{competitionID}/workouts/{ordinal}/lock", internal(handler.LockWorkout))
	mux.Handle("POST /v1/internal/competitions/{competitionID}/workouts/{ordinal}/unlock", internal(handler.UnlockWorkout))
	mux.Handle("POST /v1/internal/competitions/{competitionID}/workouts/{ordinal}/scores", internal(handler.UpdateScores))
}
