package insight

import (
	"cmp"
	"slices"
	"strings"

	"github.com/riskibarqy/fpl-league-hub/internal/domain/fpl"
	"github.com/sahilm/fuzzy"
)

const (
	topScorersLimit  = 10
	bestValueLimit   = 5
	formLeadersLimit = 5
	recentFormRounds = 5
	upcomingLimit    = 5

	DefaultSearchLimit = 5
	MaxSearchLimit     = 25
	minSearchQueryLen  = 2
)

// ByPosition keeps players of one element type; position 0 keeps everyone.
func ByPosition(players []fpl.Player, position int) []fpl.Player {
	if position == 0 {
		return slices.Clone(players)
	}
	out := make([]fpl.Player, 0, len(players)/4)
	for _, p := range players {
		if p.ElementType == position {
			out = append(out, p)
		}
	}
	return out
}

func TopScorers(players []fpl.Player) []fpl.Player {
	return topBy(players, topScorersLimit, func(p fpl.Player) int { return p.TotalPoints })
}

// ValuePick is a player with season points per million spent.
type ValuePick struct {
	fpl.Player
	PointsPerMillion float64 `json:"points_per_million"`
}

// BestValue ranks by total_points per million; players without a price are skipped.
func BestValue(players []fpl.Player) []ValuePick {
	picks := make([]ValuePick, 0, len(players))
	for _, p := range players {
		if p.NowCost <= 0 {
			continue
		}
		picks = append(picks, ValuePick{Player: p, PointsPerMillion: round2(float64(p.TotalPoints) / p.CostMillions())})
	}
	slices.SortStableFunc(picks, func(a, b ValuePick) int { return cmp.Compare(b.PointsPerMillion, a.PointsPerMillion) })
	return head(picks, bestValueLimit)
}

func FormLeaders(players []fpl.Player) []fpl.Player {
	sorted := slices.Clone(players)
	slices.SortStableFunc(sorted, func(a, b fpl.Player) int { return cmp.Compare(b.FormValue(), a.FormValue()) })
	return head(sorted, formLeadersLimit)
}

// RecentForm returns the last five played rounds, oldest first.
func RecentForm(history []fpl.PlayerRound) []fpl.PlayerRound {
	if len(history) <= recentFormRounds {
		return slices.Clone(history)
	}
	return slices.Clone(history[len(history)-recentFormRounds:])
}

type FixtureOutlook struct {
	Event       int    `json:"event"`
	Opponent    string `json:"opponent"`
	IsHome      bool   `json:"is_home"`
	Difficulty  int    `json:"difficulty"`
	KickoffTime string `json:"kickoff_time"`
}

// UpcomingFixtures lists the next five fixtures with the opponent's short name.
func UpcomingFixtures(fixtures []fpl.UpcomingFixture, idx *fpl.Index) []FixtureOutlook {
	n := min(len(fixtures), upcomingLimit)
	out := make([]FixtureOutlook, 0, n)
	for _, f := range fixtures[:n] {
		opponentID := f.TeamH
		if f.IsHome {
			opponentID = f.TeamA
		}
		opponent := ""
		if team, ok := idx.Team(opponentID); ok {
			opponent = team.ShortName
		}
		out = append(out, FixtureOutlook{
			Event:       f.Event,
			Opponent:    opponent,
			IsHome:      f.IsHome,
			Difficulty:  f.Difficulty,
			KickoffTime: f.KickoffTime,
		})
	}
	return out
}

type TransferStats struct {
	TransfersIn  int     `json:"transfers_in_event"`
	TransfersOut int     `json:"transfers_out_event"`
	NetTransfers int     `json:"net_transfers"`
	PriceChange  float64 `json:"price_change"`
	Ownership    float64 `json:"ownership"`
}

// TransferStatsOf summarises market movement for one player. Price change
// is in millions since the season start.
func TransferStatsOf(p fpl.Player) TransferStats {
	return TransferStats{
		TransfersIn:  p.TransfersInEvent,
		TransfersOut: p.TransfersOutEvent,
		NetTransfers: p.TransfersInEvent - p.TransfersOutEvent,
		PriceChange:  float64(p.CostChangeStart) / 10,
		Ownership:    p.Ownership(),
	}
}

type searchSource struct {
	players []fpl.Player
	keys    []string
}

func (s searchSource) String(i int) string { return s.keys[i] }
func (s searchSource) Len() int            { return len(s.keys) }

// SearchPlayers fuzzy-matches query against web, first and second names and
// the club short name. Queries shorter than two characters match nothing.
func SearchPlayers(players []fpl.Player, idx *fpl.Index, query string, excludeID, limit int) []fpl.Player {
	query = strings.ToLower(strings.TrimSpace(query))
	if len([]rune(query)) < minSearchQueryLen {
		return []fpl.Player{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	limit = min(limit, MaxSearchLimit)

	src := searchSource{players: make([]fpl.Player, 0, len(players)), keys: make([]string, 0, len(players))}
	for _, p := range players {
		if p.ID == excludeID {
			continue
		}
		club := ""
		if team, ok := idx.Team(p.Team); ok {
			club = team.ShortName
		}
		src.players = append(src.players, p)
		src.keys = append(src.keys, strings.ToLower(strings.Join([]string{p.WebName, p.FirstName, p.SecondName, club}, " ")))
	}

	matches := fuzzy.FindFrom(query, src)
	out := make([]fpl.Player, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, src.players[m.Index])
	}
	return out
}
