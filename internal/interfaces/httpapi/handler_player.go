package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/riskibarqy/fpl-league-hub/internal/usecase"
)

func (h *Handler) GetBootstrapStatic(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBootstrapStatic")
	defer span.End()

	raw, err := h.playerService.BootstrapStatic(ctx)
	if err != nil {
		h.writeFailure(ctx, w, "get bootstrap-static failed", err)
		return
	}

	writeRawJSON(ctx, w, http.StatusOK, raw)
}

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	req := fixturesRequest{Gameweek: strings.TrimSpace(r.PathValue("gameweek"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	gameweek, err := parseInt("gameweek", req.Gameweek)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	fixtures, err := h.playerService.Fixtures(ctx, gameweek)
	if err != nil {
		h.writeFailure(ctx, w, "list fixtures failed", err, "gameweek", gameweek)
		return
	}

	writeJSON(ctx, w, http.StatusOK, fixtures)
}

func (h *Handler) GetElementSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetElementSummary")
	defer span.End()

	playerID, ok := h.playerIDParam(ctx, w, r)
	if !ok {
		return
	}

	raw, err := h.playerService.ElementSummary(ctx, playerID)
	if err != nil {
		h.writeFailure(ctx, w, "get element summary failed", err, "player_id", playerID)
		return
	}

	writeRawJSON(ctx, w, http.StatusOK, raw)
}

func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerProfile")
	defer span.End()

	playerID, ok := h.playerIDParam(ctx, w, r)
	if !ok {
		return
	}

	profile, err := h.playerService.Profile(ctx, playerID)
	if err != nil {
		h.writeFailure(ctx, w, "get player profile failed", err, "player_id", playerID)
		return
	}

	writeJSON(ctx, w, http.StatusOK, profile)
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	query := r.URL.Query()
	req := playerSearchRequest{
		Query:   strings.TrimSpace(query.Get("q")),
		Exclude: strings.TrimSpace(query.Get("exclude")),
		Limit:   strings.TrimSpace(query.Get("limit")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	excludeID, err := parseInt("exclude", req.Exclude)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := parseInt("limit", req.Limit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerService.Search(ctx, usecase.SearchPlayersInput{
		Query:     req.Query,
		ExcludeID: excludeID,
		Limit:     limit,
	})
	if err != nil {
		h.writeFailure(ctx, w, "search players failed", err, "query", req.Query)
		return
	}

	writeJSON(ctx, w, http.StatusOK, players)
}

func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStatistics")
	defer span.End()

	position := strings.TrimSpace(r.URL.Query().Get("position"))
	stats, err := h.playerService.Statistics(ctx, position)
	if err != nil {
		h.writeFailure(ctx, w, "get statistics failed", err, "position", position)
		return
	}

	writeJSON(ctx, w, http.StatusOK, stats)
}

func (h *Handler) playerIDParam(ctx context.Context, w http.ResponseWriter, r *http.Request) (int, bool) {
	req := playerRequest{PlayerID: strings.TrimSpace(r.PathValue("playerID"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return 0, false
	}
	playerID, err := parseInt("playerId", req.PlayerID)
	if err != nil {
		writeError(ctx, w, err)
		return 0, false
	}
	return playerID, true
}
