package insight

import (
	"github.com/riskibarqy/fpl-league-hub/internal/domain/fpl"
)

// RankChange is previous - current; positive means the entry climbed.
func RankChange(previous, current int) int {
	return previous - current
}

// EventRank holds an entry's overall rank around one gameweek. Fields are
// nil when the corresponding history row is missing.
type EventRank struct {
	Current  *int `json:"current_event_rank"`
	Previous *int `json:"previous_event_rank"`
	Change   *int `json:"rank_change"`
}

func EventRankChange(history []fpl.EventHistory, event int) EventRank {
	var out EventRank
	for _, row := range history {
		switch row.Event {
		case event:
			out.Current = intPtr(row.OverallRank)
		case event - 1:
			out.Previous = intPtr(row.OverallRank)
		}
	}
	if out.Current != nil && out.Previous != nil {
		out.Change = intPtr(RankChange(*out.Previous, *out.Current))
	}
	return out
}

type RankPoint struct {
	Gameweek    int `json:"gameweek"`
	Rank        int `json:"rank"`
	Points      int `json:"points"`
	TotalPoints int `json:"total_points"`
}

type RankHistory struct {
	Ranks         []RankPoint `json:"ranks"`
	HighestRank   *int        `json:"highest_rank"`
	LowestRank    *int        `json:"lowest_rank"`
	HighestRankGW *int        `json:"highest_rank_gw"`
	LowestRankGW  *int        `json:"lowest_rank_gw"`
}

// RankExtremes scans an entry's gameweek history. "Highest" is the best,
// i.e. numerically smallest, overall rank; ties keep the earliest gameweek.
func RankExtremes(history []fpl.EventHistory) RankHistory {
	out := RankHistory{Ranks: make([]RankPoint, 0, len(history))}
	if len(history) == 0 {
		return out
	}

	best, worst := history[0], history[0]
	for _, row := range history {
		out.Ranks = append(out.Ranks, RankPoint{
			Gameweek:    row.Event,
			Rank:        row.OverallRank,
			Points:      row.Points,
			TotalPoints: row.TotalPoints,
		})
		if row.OverallRank < best.OverallRank {
			best = row
		}
		if row.OverallRank > worst.OverallRank {
			worst = row
		}
	}

	out.HighestRank = intPtr(best.OverallRank)
	out.HighestRankGW = intPtr(best.Event)
	out.LowestRank = intPtr(worst.OverallRank)
	out.LowestRankGW = intPtr(worst.Event)
	return out
}

func intPtr(v int) *int {
	return &v
}
