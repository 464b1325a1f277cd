package httpapi

import (
	"context"
	"net/http"
	"strings"
)

func (h *Handler) ListEntryTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEntryTransfers")
	defer span.End()

	req := entryTransfersRequest{
		EntryID: strings.TrimSpace(r.PathValue("entryID")),
		Event:   strings.TrimSpace(r.URL.Query().Get("event")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	entryID, err := parseID("entryId", req.EntryID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	event, err := parseInt("event", req.Event)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	transfers, err := h.entryService.Transfers(ctx, entryID, event)
	if err != nil {
		h.writeFailure(ctx, w, "list entry transfers failed", err, "entry_id", entryID, "event", event)
		return
	}

	writeJSON(ctx, w, http.StatusOK, transfers)
}

func (h *Handler) GetEntryPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEntryPicks")
	defer span.End()

	req := entryPicksRequest{
		EntryID: strings.TrimSpace(r.PathValue("entryID")),
		EventID: strings.TrimSpace(r.PathValue("eventID")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	entryID, err := parseID("entryId", req.EntryID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	event, err := parseInt("eventId", req.EventID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	raw, err := h.entryService.Picks(ctx, entryID, event)
	if err != nil {
		h.writeFailure(ctx, w, "get entry picks failed", err, "entry_id", entryID, "event", event)
		return
	}

	writeRawJSON(ctx, w, http.StatusOK, raw)
}

func (h *Handler) GetTeamData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamData")
	defer span.End()

	teamID, ok := h.teamIDParam(ctx, w, r)
	if !ok {
		return
	}

	entry, err := h.entryService.TeamData(ctx, teamID)
	if err != nil {
		h.writeFailure(ctx, w, "get team data failed", err, "team_id", teamID)
		return
	}

	writeJSON(ctx, w, http.StatusOK, entry)
}

func (h *Handler) GetTeamHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamHistory")
	defer span.End()

	teamID, ok := h.teamIDParam(ctx, w, r)
	if !ok {
		return
	}

	history, err := h.entryService.TeamHistory(ctx, teamID)
	if err != nil {
		h.writeFailure(ctx, w, "get team history failed", err, "team_id", teamID)
		return
	}

	writeJSON(ctx, w, http.StatusOK, history)
}

func (h *Handler) GetTeamPreviousSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamPreviousSeasons")
	defer span.End()

	teamID, ok := h.teamIDParam(ctx, w, r)
	if !ok {
		return
	}

	seasons, err := h.entryService.PreviousSeasons(ctx, teamID)
	if err != nil {
		h.writeFailure(ctx, w, "get team previous seasons failed", err, "team_id", teamID)
		return
	}

	writeJSON(ctx, w, http.StatusOK, seasons)
}

func (h *Handler) teamIDParam(ctx context.Context, w http.ResponseWriter, r *http.Request) (int64, bool) {
	req := teamRequest{TeamID: strings.TrimSpace(r.URL.Query().Get("teamId"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return 0, false
	}
	teamID, err := parseID("teamId", req.TeamID)
	if err != nil {
		writeError(ctx, w, err)
		return 0, false
	}
	return teamID, true
}
