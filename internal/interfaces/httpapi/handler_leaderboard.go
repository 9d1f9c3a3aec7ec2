package httpapi

import (
	"net/http"
)

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	tournamentID, err := parsePathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	board, err := h.leaderboardService.GetLeaderboard(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboard failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(ctx, board))
}

func (h *Handler) GetMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchup")
	defer span.End()

	tournamentID, err := parsePathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	entryID, err := parseOptionalQueryID(r, "entry_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	opponentID, err := parseOptionalQueryID(r, "opponent_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matchup, err := h.matchupService.GetMatchup(ctx, tournamentID, entryID, opponentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get matchup failed",
			"tournament_id", tournamentID,
			"entry_id", entryID,
			"opponent_id", opponentID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchupToDTO(ctx, matchup))
}

func (h *Handler) GetPropLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPropLeaderboard")
	defer span.End()

	tournamentID, err := parsePathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	board, err := h.propService.PropLeaderboard(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get prop leaderboard failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(ctx, board))
}
