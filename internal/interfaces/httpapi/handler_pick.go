package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/competitor"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/pick"
	"github.com/riskibarqy/fantasy-fitness/internal/usecase"
)

func (h *Handler) ListPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPicks")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	annotatePrincipal(span, principal.UserID)
	entryID, err := parsePathID(r, "entryID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	picks, err := h.pickService.ListPicks(ctx, principal.UserID, entryID)
	if err != nil {
		h.logger.WarnContext(ctx, "list picks failed", "entry_id", entryID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entryPicksToDTO(ctx, picks))
}

func (h *Handler) SavePick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SavePick")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	annotatePrincipal(span, principal.UserID)
	entryID, err := parsePathID(r, "entryID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req savePickRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	picks, err := h.pickService.SavePick(ctx, usecase.SavePickInput{
		UserID:   principal.UserID,
		EntryID:  entryID,
		Gender:   competitor.ParseGender(req.Gender),
		Previous: pick.Slot(req.Previous),
		Next:     pick.Slot(req.Next),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save pick failed", "entry_id", entryID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entryPicksToDTO(ctx, picks))
}
