package insight

import (
	"cmp"
	"math"
	"slices"

	"github.com/riskibarqy/fpl-league-hub/internal/domain/fpl"
)

// DefaultSeasonParticipants is used for seasons missing from the table.
const DefaultSeasonParticipants = 10_000_000

// Approximate number of managers per finished season.
var seasonParticipants = map[string]int{
	"2023/24": 11_200_000,
	"2022/23": 10_900_000,
	"2021/22": 9_000_000,
	"2020/21": 8_500_000,
	"2019/20": 7_600_000,
	"2018/19": 6_900_000,
	"2017/18": 5_700_000,
	"2016/17": 4_600_000,
	"2015/16": 4_200_000,
	"2014/15": 3_500_000,
	"2013/14": 3_200_000,
}

type tier struct {
	maxPercentage float64
	name          string
	color         string
	icon          string
}

var tiers = []tier{
	{1, "top1", "#10b981", "🏆"},
	{5, "top5", "#f59e0b", "🥇"},
	{10, "top10", "#8b5cf6", "🥈"},
	{25, "top25", "#3b82f6", "🥉"},
	{math.Inf(1), "other", "#6b7280", "🔵"},
}

type SeasonStanding struct {
	Season      string  `json:"season"`
	TotalPoints int     `json:"total_points"`
	Rank        int     `json:"rank"`
	Percentage  float64 `json:"percentage"`
	Tier        string  `json:"tier"`
	TierColor   string  `json:"tier_color"`
	TierIcon    string  `json:"tier_icon"`
}

// SeasonParticipants returns the manager count for a season label.
func SeasonParticipants(season string) int {
	if n, ok := seasonParticipants[season]; ok {
		return n
	}
	return DefaultSeasonParticipants
}

// SeasonTier places a final rank into a percentile bucket. Bucketing uses the
// exact percentage; only the reported Percentage is rounded to two decimals.
func SeasonTier(season string, totalPoints, rank int) SeasonStanding {
	percentage := float64(rank) / float64(SeasonParticipants(season)) * 100

	out := SeasonStanding{Season: season, TotalPoints: totalPoints, Rank: rank, Percentage: round2(percentage)}
	for _, t := range tiers {
		if percentage <= t.maxPercentage {
			out.Tier, out.TierColor, out.TierIcon = t.name, t.color, t.icon
			break
		}
	}
	return out
}

// PreviousSeasons tiers every past season, newest label first.
func PreviousSeasons(past []fpl.PastSeason) []SeasonStanding {
	out := make([]SeasonStanding, 0, len(past))
	for _, p := range past {
		out = append(out, SeasonTier(p.SeasonName, p.TotalPoints, p.Rank))
	}
	slices.SortStableFunc(out, func(a, b SeasonStanding) int { return cmp.Compare(b.Season, a.Season) })
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
