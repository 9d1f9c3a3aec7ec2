package httpapi

import (
	"net/http"
)

func (h *Handler) ListADP(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListADP")
	defer span.End()

	competitionID, err := parsePathID(r, "competitionID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	gender, err := parseGenderQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	records, err := h.analyticsService.ListADP(ctx, competitionID, gender)
	if err != nil {
		h.logger.WarnContext(ctx, "list adp failed", "competition_id", competitionID, "gender", gender.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]adpDTO, 0, len(records))
	for _, rec := range records {
		items = append(items, adpToDTO(rec))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetWorkoutPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWorkoutPredictions")
	defer span.End()

	competitionID, err := parsePathID(r, "competitionID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	ordinal, err := parsePathOrdinal(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	predictions, err := h.analyticsService.WorkoutPrediction(ctx, competitionID, ordinal)
	if err != nil {
		h.logger.WarnContext(ctx, "workout prediction failed", "competition_id", competitionID, "ordinal", ordinal, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]workoutPredictionDTO, 0, len(predictions))
	for _, p := range predictions {
		items = append(items, workoutPredictionToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
