package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("/", handler.NotFound)
}

// Proxy routes relay a single upstream document, reshaped at most by
// flattening or filtering.
func registerProxyRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/bootstrap-static", handler.GetBootstrapStatic)
	mux.HandleFunc("GET /api/leagues/{leagueID}/standings", handler.GetLeagueStandings)
	mux.HandleFunc("GET /api/leagues/{leagueID}/matchups", handler.ListLeagueMatchups)
	mux.HandleFunc("GET /api/fixtures/{gameweek}", handler.ListFixtures)
	mux.HandleFunc("GET /api/entry/{entryID}/transfers", handler.ListEntryTransfers)
	mux.HandleFunc("GET /api/entry/{entryID}/event/{eventID}/picks", handler.GetEntryPicks)
	mux.HandleFunc("GET /api/element-summary/{playerID}", handler.GetElementSummary)
}

func registerInsightRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/leagues/{leagueID}/matchups/{matchupID}", handler.GetLeagueMatchup)
	mux.HandleFunc("GET /api/leagues/{leagueID}/insights", handler.GetLeagueInsights)
	mux.HandleFunc("GET /api/leagues/{leagueID}/performance", handler.GetLeaguePerformance)
	mux.HandleFunc("GET /api/leagues/{leagueID}/activity", handler.GetLeagueActivity)
	mux.HandleFunc("GET /api/team-data", handler.GetTeamData)
	mux.HandleFunc("GET /api/team-history", handler.GetTeamHistory)
	mux.HandleFunc("GET /api/team-previous-seasons", handler.GetTeamPreviousSeasons)
	mux.HandleFunc("GET /api/players/search", handler.SearchPlayers)
	mux.HandleFunc("GET /api/players/{playerID}", handler.GetPlayerProfile)
	mux.HandleFunc("GET /api/statistics", handler.GetStatistics)
}
