// Package insight derives dashboard views from already fetched FPL data.
// Every function is pure and returns an empty result for nil or empty input.
package insight

import (
	"cmp"
	"math"
	"slices"

	"github.com/riskibarqy/fpl-league-hub/internal/domain/fpl"
)

const (
	topPerformersLimit = 5
	transferTrendLimit = 5
	topManagersLimit   = 3
	bottomManagerLimit = 3
	topFourLimit       = 4
	bottomThreeLimit   = 3
)

// TopPerformers returns the five highest scorers of the current gameweek.
// Ties keep upstream order.
func TopPerformers(players []fpl.Player) []fpl.Player {
	return topBy(players, topPerformersLimit, func(p fpl.Player) int { return p.EventPoints })
}

type TransferTrends struct {
	MostTransferredIn  []fpl.Player `json:"most_transferred_in"`
	MostTransferredOut []fpl.Player `json:"most_transferred_out"`
}

func TransferTrendsOf(players []fpl.Player) TransferTrends {
	return TransferTrends{
		MostTransferredIn:  topBy(players, transferTrendLimit, func(p fpl.Player) int { return p.TransfersInEvent }),
		MostTransferredOut: topBy(players, transferTrendLimit, func(p fpl.Player) int { return p.TransfersOutEvent }),
	}
}

// ScoreRecord is one side of an H2H match.
type ScoreRecord struct {
	Entry      int64  `json:"entry"`
	EntryName  string `json:"entry_name"`
	PlayerName string `json:"player_name"`
	Points     int    `json:"points"`
}

type Performance struct {
	TopManagers    []ScoreRecord `json:"top_managers"`
	BottomManagers []ScoreRecord `json:"bottom_managers"`
}

// LeaguePerformance ranks every side of every match by points. The bottom
// list is reversed so the lowest score comes first.
func LeaguePerformance(matches []fpl.H2HMatch) Performance {
	records := scoreRecords(matches)
	slices.SortStableFunc(records, func(a, b ScoreRecord) int { return cmp.Compare(b.Points, a.Points) })

	return Performance{
		TopManagers:    head(records, topManagersLimit),
		BottomManagers: reversedTail(records, bottomManagerLimit),
	}
}

// LeagueAverageScore is the rounded mean of all side scores, 0 when there
// are no matches.
func LeagueAverageScore(matches []fpl.H2HMatch) int {
	if len(matches) == 0 {
		return 0
	}
	total := 0
	for _, m := range matches {
		total += m.Entry1Points + m.Entry2Points
	}
	return int(math.Round(float64(total) / float64(2*len(matches))))
}

type Insights struct {
	TopFour     []fpl.StandingRow `json:"top_four"`
	BottomThree []fpl.StandingRow `json:"bottom_three"`
}

// LeagueInsights orders standings by season total.
func LeagueInsights(standings []fpl.StandingRow) Insights {
	sorted := slices.Clone(standings)
	slices.SortStableFunc(sorted, func(a, b fpl.StandingRow) int { return cmp.Compare(b.Total, a.Total) })

	return Insights{
		TopFour:     head(sorted, topFourLimit),
		BottomThree: reversedTail(sorted, bottomThreeLimit),
	}
}

func scoreRecords(matches []fpl.H2HMatch) []ScoreRecord {
	out := make([]ScoreRecord, 0, 2*len(matches))
	for _, m := range matches {
		out = append(out,
			ScoreRecord{Entry: m.Entry1Entry, EntryName: m.Entry1Name, PlayerName: m.Entry1PlayerName, Points: m.Entry1Points},
			ScoreRecord{Entry: m.Entry2Entry, EntryName: m.Entry2Name, PlayerName: m.Entry2PlayerName, Points: m.Entry2Points},
		)
	}
	return out
}

func topBy[T any](items []T, n int, key func(T) int) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int { return cmp.Compare(key(b), key(a)) })
	return head(sorted, n)
}

func head[T any](items []T, n int) []T {
	if len(items) < n {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

func reversedTail[T any](items []T, n int) []T {
	if len(items) < n {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[len(items)-n:])
	slices.Reverse(out)
	return out
}
