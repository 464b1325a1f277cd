package httpapi

import (
	"context"
	"net/http"
	"strings"
)

func (h *Handler) GetLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueStandings")
	defer span.End()

	req := leagueRequest{LeagueID: strings.TrimSpace(r.PathValue("leagueID"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID, err := parseID("leagueId", req.LeagueID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.leagueService.Standings(ctx, leagueID)
	if err != nil {
		h.writeFailure(ctx, w, "get league standings failed", err, "league_id", leagueID)
		return
	}

	writeJSON(ctx, w, http.StatusOK, rows)
}

func (h *Handler) ListLeagueMatchups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueMatchups")
	defer span.End()

	leagueID, event, ok := h.leagueEventParams(ctx, w, r)
	if !ok {
		return
	}

	matches, err := h.leagueService.Matchups(ctx, leagueID, event)
	if err != nil {
		h.writeFailure(ctx, w, "list league matchups failed", err, "league_id", leagueID, "event", event)
		return
	}

	writeJSON(ctx, w, http.StatusOK, matches)
}

func (h *Handler) GetLeagueMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueMatchup")
	defer span.End()

	req := leagueMatchupRequest{
		LeagueID:  strings.TrimSpace(r.PathValue("leagueID")),
		MatchupID: strings.TrimSpace(r.PathValue("matchupID")),
		Event:     strings.TrimSpace(r.URL.Query().Get("event")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID, err := parseID("leagueId", req.LeagueID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	matchupID, err := parseID("matchupId", req.MatchupID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	event, err := parseInt("event", req.Event)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.leagueService.Matchup(ctx, leagueID, matchupID, event)
	if err != nil {
		h.writeFailure(ctx, w, "get league matchup failed", err,
			"league_id", leagueID, "matchup_id", matchupID, "event", event)
		return
	}

	writeJSON(ctx, w, http.StatusOK, detail)
}

func (h *Handler) GetLeagueInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueInsights")
	defer span.End()

	req := leagueRequest{LeagueID: strings.TrimSpace(r.PathValue("leagueID"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID, err := parseID("leagueId", req.LeagueID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	insights, err := h.leagueService.Insights(ctx, leagueID)
	if err != nil {
		h.writeFailure(ctx, w, "get league insights failed", err, "league_id", leagueID)
		return
	}

	writeJSON(ctx, w, http.StatusOK, insights)
}

func (h *Handler) GetLeaguePerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaguePerformance")
	defer span.End()

	leagueID, event, ok := h.leagueEventParams(ctx, w, r)
	if !ok {
		return
	}

	performance, err := h.leagueService.Performance(ctx, leagueID, event)
	if err != nil {
		h.writeFailure(ctx, w, "get league performance failed", err, "league_id", leagueID, "event", event)
		return
	}

	writeJSON(ctx, w, http.StatusOK, performance)
}

func (h *Handler) GetLeagueActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueActivity")
	defer span.End()

	leagueID, event, ok := h.leagueEventParams(ctx, w, r)
	if !ok {
		return
	}

	activity, err := h.leagueService.Activity(ctx, leagueID, event)
	if err != nil {
		h.writeFailure(ctx, w, "get league activity failed", err, "league_id", leagueID, "event", event)
		return
	}

	writeJSON(ctx, w, http.StatusOK, activity)
}

// leagueEventParams reads {leagueID} and ?event=, answering 400 itself when
// either is missing or malformed.
func (h *Handler) leagueEventParams(ctx context.Context, w http.ResponseWriter, r *http.Request) (int64, int, bool) {
	req := leagueEventRequest{
		LeagueID: strings.TrimSpace(r.PathValue("leagueID")),
		Event:    strings.TrimSpace(r.URL.Query().Get("event")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return 0, 0, false
	}
	leagueID, err := parseID("leagueId", req.LeagueID)
	if err != nil {
		writeError(ctx, w, err)
		return 0, 0, false
	}
	event, err := parseInt("event", req.Event)
	if err != nil {
		writeError(ctx, w, err)
		return 0, 0, false
	}
	return leagueID, event, true
}
