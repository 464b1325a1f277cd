package testutils

import (
	"embed"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

//go:embed fpldata
var fpldata embed.FS

// Route keys accepted by Fail and Calls.
const (
	RouteBootstrap      = "/bootstrap-static/"
	RouteStandings      = "/leagues-h2h/{leagueID}/standings/"
	RouteMatches        = "/leagues-h2h-matches/league/{leagueID}/"
	RouteFixtures       = "/fixtures/"
	RouteEntry          = "/entry/{entryID}/"
	RouteEntryHistory   = "/entry/{entryID}/history/"
	RouteEntryTransfers = "/entry/{entryID}/transfers/"
	RouteEntryPicks     = "/entry/{entryID}/event/{eventID}/picks/"
	RouteElementSummary = "/element-summary/{playerID}/"
	RouteLiveEvent      = "/event/{eventID}/live/"
)

// FakeFPLServer serves canned FPL API documents. Files under fpldata are
// looked up from the path parameters; missing files answer 404 the way the
// real API does for unknown ids.
type FakeFPLServer struct {
	s *httptest.Server

	mu         sync.Mutex
	failures   map[string]int
	calls      map[string]int
	authHeader string
}

func NewFakeFPLServer() *FakeFPLServer {
	f := &FakeFPLServer{
		failures: make(map[string]int),
		calls:    make(map[string]int),
	}

	r := chi.NewRouter()
	r.Get(RouteBootstrap, f.route(RouteBootstrap, func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, "bootstrap-static.json")
	}))
	r.Get(RouteStandings, f.route(RouteStandings, func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, fmt.Sprintf("h2h_standings_%s.json", chi.URLParam(r, "leagueID")))
	}))
	r.Get(RouteMatches, f.route(RouteMatches, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "1" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		serveFile(w, fmt.Sprintf("h2h_matches_%s_%s.json", chi.URLParam(r, "leagueID"), r.URL.Query().Get("event")))
	}))
	r.Get(RouteFixtures, f.route(RouteFixtures, func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, fmt.Sprintf("fixtures_%s.json", r.URL.Query().Get("event")))
	}))
	r.Get(RouteEntry, f.route(RouteEntry, func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, fmt.Sprintf("entry_%s.json", chi.URLParam(r, "entryID")))
	}))
	r.Get(RouteEntryHistory, f.route(RouteEntryHistory, func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, fmt.Sprintf("history_%s.json", chi.URLParam(r, "entryID")))
	}))
	r.Get(RouteEntryTransfers, f.route(RouteEntryTransfers, func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, fmt.Sprintf("transfers_%s.json", chi.URLParam(r, "entryID")))
	}))
	r.Get(RouteEntryPicks, f.route(RouteEntryPicks, func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, fmt.Sprintf("picks_%s_%s.json", chi.URLParam(r, "entryID"), chi.URLParam(r, "eventID")))
	}))
	r.Get(RouteElementSummary, f.route(RouteElementSummary, func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, fmt.Sprintf("element_summary_%s.json", chi.URLParam(r, "playerID")))
	}))
	r.Get(RouteLiveEvent, f.route(RouteLiveEvent, func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, fmt.Sprintf("live_%s.json", chi.URLParam(r, "eventID")))
	}))

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeFPLServer) Close() {
	f.s.Close()
}

func (f *FakeFPLServer) URL() string {
	return f.s.URL
}

// Fail makes every later request to route answer with status.
func (f *FakeFPLServer) Fail(route string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[route] = status
}

// Calls reports how many requests reached route.
func (f *FakeFPLServer) Calls(route string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[route]
}

// TotalCalls reports the number of requests across all routes.
func (f *FakeFPLServer) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

// AuthHeader returns the Authorization header of the latest request.
func (f *FakeFPLServer) AuthHeader() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.authHeader
}

func (f *FakeFPLServer) route(key string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.calls[key]++
		f.authHeader = r.Header.Get("Authorization")
		status := f.failures[key]
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if status != 0 {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"detail":"The game is being updated."}`))
			return
		}
		next(w, r)
	}
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := fpldata.ReadFile("fpldata/" + name)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not found."}`))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// ReadFixture returns the raw bytes of one embedded document.
func ReadFixture(name string) []byte {
	b, err := fpldata.ReadFile("fpldata/" + name)
	if err != nil {
		panic(fmt.Sprintf("read fixture %s: %v", name, err))
	}
	return b
}
