package fpl

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Bootstrap is the season reference snapshot served by /bootstrap-static/.
type Bootstrap struct {
	Events       []Event       `json:"events"`
	Teams        []Team        `json:"teams"`
	Elements     []Player      `json:"elements"`
	ElementTypes []ElementType `json:"element_types"`

	Raw json.RawMessage `json:"-"`
}

type Event struct {
	ID                int        `json:"id"`
	Name              string     `json:"name"`
	DeadlineTime      string     `json:"deadline_time"`
	AverageEntryScore int        `json:"average_entry_score"`
	HighestScore      int        `json:"highest_score"`
	Finished          bool       `json:"finished"`
	IsPrevious        bool       `json:"is_previous"`
	IsCurrent         bool       `json:"is_current"`
	IsNext            bool       `json:"is_next"`
	MostSelected      int        `json:"most_selected"`
	MostTransferredIn int        `json:"most_transferred_in"`
	MostCaptained     int        `json:"most_captained"`
	MostViceCaptained int        `json:"most_vice_captained"`
	TopElement        int        `json:"top_element"`
	ChipPlays         []ChipPlay `json:"chip_plays"`
}

type ChipPlay struct {
	ChipName  string `json:"chip_name"`
	NumPlayed int    `json:"num_played"`
}

type Team struct {
	ID        int    `json:"id"`
	Code      int    `json:"code"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

type ElementType struct {
	ID                int    `json:"id"`
	SingularName      string `json:"singular_name"`
	SingularNameShort string `json:"singular_name_short"`
	PluralNameShort   string `json:"plural_name_short"`
}

// Player is an upstream "element". Decimal statistics arrive as strings and
// stay that way so they round-trip unchanged.
type Player struct {
	ID                int    `json:"id"`
	Code              int    `json:"code"`
	WebName           string `json:"web_name"`
	FirstName         string `json:"first_name"`
	SecondName        string `json:"second_name"`
	Team              int    `json:"team"`
	ElementType       int    `json:"element_type"`
	Status            string `json:"status"`
	NowCost           int    `json:"now_cost"`
	CostChangeStart   int    `json:"cost_change_start"`
	EventPoints       int    `json:"event_points"`
	TotalPoints       int    `json:"total_points"`
	Form              string `json:"form"`
	PointsPerGame     string `json:"points_per_game"`
	SelectedByPercent string `json:"selected_by_percent"`
	TransfersIn       int    `json:"transfers_in"`
	TransfersOut      int    `json:"transfers_out"`
	TransfersInEvent  int    `json:"transfers_in_event"`
	TransfersOutEvent int    `json:"transfers_out_event"`
	Minutes           int    `json:"minutes"`
	GoalsScored       int    `json:"goals_scored"`
	Assists           int    `json:"assists"`
	CleanSheets       int    `json:"clean_sheets"`
	Bonus             int    `json:"bonus"`
	ExpectedGoals     string `json:"expected_goals"`
	ExpectedAssists   string `json:"expected_assists"`
	ICTIndex          string `json:"ict_index"`
	InfluenceRank     int    `json:"influence_rank"`
	CreativityRank    int    `json:"creativity_rank"`
	ThreatRank        int    `json:"threat_rank"`
	ICTIndexRank      int    `json:"ict_index_rank"`
}

// FormValue parses the upstream form string; unparseable values count as 0.
func (p Player) FormValue() float64 {
	return parseDecimal(p.Form)
}

// Ownership parses selected_by_percent.
func (p Player) Ownership() float64 {
	return parseDecimal(p.SelectedByPercent)
}

// CostMillions converts tenths of a million to millions.
func (p Player) CostMillions() float64 {
	return float64(p.NowCost) / 10
}

// StandingRow is one manager's row in an H2H league table.
type StandingRow struct {
	ID            int64  `json:"id"`
	Entry         int64  `json:"entry"`
	EntryName     string `json:"entry_name"`
	PlayerName    string `json:"player_name"`
	Rank          int    `json:"rank"`
	LastRank      int    `json:"last_rank"`
	Total         int    `json:"total"`
	PointsFor     int    `json:"points_for"`
	MatchesPlayed int    `json:"matches_played"`
	MatchesWon    int    `json:"matches_won"`
	MatchesDrawn  int    `json:"matches_drawn"`
	MatchesLost   int    `json:"matches_lost"`
}

type H2HMatch struct {
	ID               int64  `json:"id"`
	Event            int    `json:"event"`
	Entry1Entry      int64  `json:"entry_1_entry"`
	Entry1Name       string `json:"entry_1_name"`
	Entry1PlayerName string `json:"entry_1_player_name"`
	Entry1Points     int    `json:"entry_1_points"`
	Entry2Entry      int64  `json:"entry_2_entry"`
	Entry2Name       string `json:"entry_2_name"`
	Entry2PlayerName string `json:"entry_2_player_name"`
	Entry2Points     int    `json:"entry_2_points"`
}

// Picks is an entry's squad for one gameweek.
type Picks struct {
	ActiveChip   string       `json:"active_chip"`
	EntryHistory EventHistory `json:"entry_history"`
	Picks        []Pick       `json:"picks"`

	Raw json.RawMessage `json:"-"`
}

type Pick struct {
	Element       int  `json:"element"`
	Position      int  `json:"position"`
	Multiplier    int  `json:"multiplier"`
	IsCaptain     bool `json:"is_captain"`
	IsViceCaptain bool `json:"is_vice_captain"`
	ElementType   int  `json:"element_type"`
}

// EventHistory is one gameweek row of an entry's season.
type EventHistory struct {
	Event              int `json:"event"`
	Points             int `json:"points"`
	TotalPoints        int `json:"total_points"`
	Rank               int `json:"rank"`
	OverallRank        int `json:"overall_rank"`
	Bank               int `json:"bank"`
	Value              int `json:"value"`
	EventTransfers     int `json:"event_transfers"`
	EventTransfersCost int `json:"event_transfers_cost"`
	PointsOnBench      int `json:"points_on_bench"`
}

type Transfer struct {
	Entry          int64  `json:"entry"`
	Event          int    `json:"event"`
	ElementIn      int    `json:"element_in"`
	ElementInCost  int    `json:"element_in_cost"`
	ElementOut     int    `json:"element_out"`
	ElementOutCost int    `json:"element_out_cost"`
	Time           string `json:"time"`
}

type EntryHistory struct {
	Current []EventHistory `json:"current"`
	Past    []PastSeason   `json:"past"`
	Chips   []ChipUse      `json:"chips"`
}

type PastSeason struct {
	SeasonName  string `json:"season_name"`
	TotalPoints int    `json:"total_points"`
	Rank        int    `json:"rank"`
}

type ChipUse struct {
	Name  string `json:"name"`
	Time  string `json:"time"`
	Event int    `json:"event"`
}

// Entry keeps the upstream entry summary as a generic object so unknown
// fields survive augmentation.
type Entry map[string]any

type Fixture struct {
	ID              int64  `json:"id"`
	Event           int    `json:"event"`
	TeamH           int    `json:"team_h"`
	TeamA           int    `json:"team_a"`
	TeamHScore      *int   `json:"team_h_score"`
	TeamAScore      *int   `json:"team_a_score"`
	TeamHDifficulty int    `json:"team_h_difficulty"`
	TeamADifficulty int    `json:"team_a_difficulty"`
	KickoffTime     string `json:"kickoff_time"`
	Started         bool   `json:"started"`
	Finished        bool   `json:"finished"`
}

// ElementSummary is a player's per-fixture history and remaining schedule.
type ElementSummary struct {
	Fixtures []UpcomingFixture `json:"fixtures"`
	History  []PlayerRound     `json:"history"`

	Raw json.RawMessage `json:"-"`
}

type UpcomingFixture struct {
	ID          int64  `json:"id"`
	Event       int    `json:"event"`
	TeamH       int    `json:"team_h"`
	TeamA       int    `json:"team_a"`
	IsHome      bool   `json:"is_home"`
	Difficulty  int    `json:"difficulty"`
	KickoffTime string `json:"kickoff_time"`
	Finished    bool   `json:"finished"`
}

type PlayerRound struct {
	Element      int    `json:"element"`
	Fixture      int64  `json:"fixture"`
	OpponentTeam int    `json:"opponent_team"`
	Round        int    `json:"round"`
	WasHome      bool   `json:"was_home"`
	TotalPoints  int    `json:"total_points"`
	Minutes      int    `json:"minutes"`
	GoalsScored  int    `json:"goals_scored"`
	Assists      int    `json:"assists"`
	Bonus        int    `json:"bonus"`
	KickoffTime  string `json:"kickoff_time"`
}

// LiveEvent carries per-player points for one gameweek.
type LiveEvent struct {
	Elements []LiveElement `json:"elements"`
}

type LiveElement struct {
	ID    int       `json:"id"`
	Stats LiveStats `json:"stats"`
}

type LiveStats struct {
	Minutes     int `json:"minutes"`
	TotalPoints int `json:"total_points"`
}

// PointsByElement indexes live points by player id.
func (l LiveEvent) PointsByElement() map[int]int {
	out := make(map[int]int, len(l.Elements))
	for _, item := range l.Elements {
		out[item.ID] = item.Stats.TotalPoints
	}
	return out
}

func parseDecimal(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
