package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-fitness/internal/usecase"
)

func (h *Handler) ListProps(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListProps")
	defer span.End()

	competitionID, err := parsePathID(r, "competitionID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	entryID, err := parseOptionalQueryID(r, "entry_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	views, err := h.propService.ListProps(ctx, competitionID, entryID)
	if err != nil {
		h.logger.WarnContext(ctx, "list props failed", "competition_id", competitionID, "entry_id", entryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]propDTO, 0, len(views))
	for _, v := range views {
		items = append(items, propViewToDTO(ctx, v))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) SavePropPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SavePropPick")
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
	propID, err := parsePathID(r, "propID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req savePropPickRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	err = h.propService.SavePropPick(ctx, usecase.SavePropPickInput{
		UserID:   principal.UserID,
		EntryID:  entryID,
		PropID:   propID,
		OptionID: req.OptionID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save prop pick failed",
			"entry_id", entryID,
			"prop_id", propID,
			"option_id", req.OptionID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int64{
		"entry_id":  entryID,
		"prop_id":   propID,
		"option_id": req.OptionID,
	})
}
