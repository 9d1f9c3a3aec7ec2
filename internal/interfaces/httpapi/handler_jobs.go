package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/fantasy-fitness/internal/usecase"
	"go.opentelemetry.io/otel/trace"
)

// RunAnalyticsJob is the queue callback for a draft analytics pass.
func (h *Handler) RunAnalyticsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAnalyticsJob")
	defer span.End()

	if h.analyticsService == nil {
		writeError(ctx, w, fmt.Errorf("%w: analytics service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req analyticsJobRequest
	if err := decodeJSON(r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.analyticsService.RunPass(ctx, usecase.AnalyticsRunInput{
		CompetitionIDs: req.CompetitionIDs,
		MaxWorkers:     req.MaxWorkers,
	})
	traceID, _ := traceMetaFromContext(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "run analytics job failed", "competition_ids", req.CompetitionIDs, "trace_id", traceID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if result.FailedCount > 0 {
		h.logger.WarnContext(ctx, "analytics job finished with failed units",
			"failed", result.FailedCount,
			"succeeded", result.SuccessCount,
			"trace_id", traceID,
		)
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

// RunNotifyJob is the queue callback that delivers a push notification.
func (h *Handler) RunNotifyJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunNotifyJob")
	defer span.End()

	if h.notificationService == nil {
		writeError(ctx, w, fmt.Errorf("%w: notification service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req notifyJobRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	err := h.notificationService.Deliver(ctx, usecase.Notification{
		Topic:    req.Topic,
		Title:    req.Title,
		Message:  req.Message,
		Tags:     req.Tags,
		Priority: req.Priority,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "run notify job failed", "topic", req.Topic, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "delivered"})
}

func (h *Handler) LockWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LockWorkout")
	defer span.End()

	h.changeWorkoutState(ctx, w, r, "locked", h.eventService.LockWorkout)
}

func (h *Handler) UnlockWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnlockWorkout")
	defer span.End()

	h.changeWorkoutState(ctx, w, r, "unlocked", h.eventService.UnlockWorkout)
}

func (h *Handler) changeWorkoutState(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	state string,
	apply func(ctx context.Context, competitionID int64, ordinal int) error,
) {
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

	if err := apply(ctx, competitionID, ordinal); err != nil {
		h.logger.WarnContext(ctx, "change workout state failed",
			"competition_id", competitionID,
			"ordinal", ordinal,
			"state", state,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, workoutStateDTO{
		CompetitionID: competitionID,
		Ordinal:       ordinal,
		State:         state,
	})
}

func (h *Handler) UpdateScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateScores")
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

	var req updateScoresRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.eventService.UpdateScores(ctx, usecase.UpdateScoresInput{
		CompetitionID: competitionID,
		Ordinal:       ordinal,
		Scores:        req.Scores,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update scores failed", "competition_id", competitionID, "ordinal", ordinal, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoresUpdatedDTO{
		CompetitionID: competitionID,
		Ordinal:       ordinal,
		Updated:       updated,
	})
}

func traceMetaFromContext(ctx context.Context) (string, string) {
	spanContext := trace.SpanFromContext(ctx).SpanContext()
	if !spanContext.IsValid() {
		return "", ""
	}
	return spanContext.TraceID().String(), spanContext.SpanID().String()
}
