package insight

import (
	"testing"

	"github.com/riskibarqy/fpl-league-hub/internal/domain/fpl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixture() ([]fpl.Player, *fpl.Index) {
	b := fpl.Bootstrap{
		Teams: []fpl.Team{{ID: 1, ShortName: "ARS"}, {ID: 12, ShortName: "LIV"}, {ID: 14, ShortName: "MCI"}},
		Elements: []fpl.Player{
			{ID: 10, WebName: "Saka", FirstName: "Bukayo", SecondName: "Saka", Team: 1, ElementType: 3},
			{ID: 20, WebName: "M.Salah", FirstName: "Mohamed", SecondName: "Salah", Team: 12, ElementType: 3},
			{ID: 30, WebName: "Haaland", FirstName: "Erling", SecondName: "Haaland", Team: 14, ElementType: 4},
		},
	}
	return b.Elements, fpl.NewIndex(b)
}

func TestSearchPlayers(t *testing.T) {
	t.Parallel()

	players, idx := searchFixture()

	got := SearchPlayers(players, idx, "Salah", 0, 0)
	require.Len(t, got, 1)
	assert.Equal(t, 20, got[0].ID)

	got = SearchPlayers(players, idx, "sa", 0, 0)
	assert.ElementsMatch(t, []int{10, 20}, ids(got))

	got = SearchPlayers(players, idx, "sa", 20, 0)
	assert.Equal(t, []int{10}, ids(got), "excluded id is skipped")

	assert.Len(t, SearchPlayers(players, idx, "sa", 0, 1), 1)
	assert.Empty(t, SearchPlayers(players, idx, "s", 0, 0), "too short")
	assert.Empty(t, SearchPlayers(nil, nil, "saka", 0, 0))
}

func TestByPositionAndRankings(t *testing.T) {
	t.Parallel()

	players := []fpl.Player{
		{ID: 1, ElementType: 1, TotalPoints: 80, NowCost: 40, Form: "2.0"},
		{ID: 2, ElementType: 3, TotalPoints: 150, NowCost: 125, Form: "8.1"},
		{ID: 3, ElementType: 3, TotalPoints: 90, NowCost: 50, Form: "5.5"},
		{ID: 4, ElementType: 4, TotalPoints: 120, NowCost: 0, Form: ""},
	}

	assert.Equal(t, []int{2, 3}, ids(ByPosition(players, fpl.PositionMidfielder)))
	assert.Len(t, ByPosition(players, 0), 4)

	assert.Equal(t, []int{2, 4, 3, 1}, ids(TopScorers(players)))

	value := BestValue(players)
	require.Len(t, value, 3, "zero cost skipped")
	assert.Equal(t, 1, value[0].ID)
	assert.InDelta(t, 20.0, value[0].PointsPerMillion, 1e-9)
	assert.Equal(t, 3, value[1].ID)

	assert.Equal(t, []int{2, 3, 1, 4}, ids(FormLeaders(players)))
}

func TestRecentFormAndUpcomingFixtures(t *testing.T) {
	t.Parallel()

	history := make([]fpl.PlayerRound, 0, 7)
	for round := 1; round <= 7; round++ {
		history = append(history, fpl.PlayerRound{Round: round})
	}
	form := RecentForm(history)
	require.Len(t, form, 5)
	assert.Equal(t, 3, form[0].Round)
	assert.Equal(t, 7, form[4].Round)
	assert.Len(t, RecentForm(history[:2]), 2)

	_, idx := searchFixture()
	fixtures := []fpl.UpcomingFixture{
		{Event: 8, TeamH: 1, TeamA: 12, IsHome: true, Difficulty: 4},
		{Event: 9, TeamH: 14, TeamA: 1, IsHome: false, Difficulty: 5},
		{Event: 10, TeamH: 1, TeamA: 77, IsHome: true, Difficulty: 2},
		{Event: 11}, {Event: 12}, {Event: 13},
	}
	outlook := UpcomingFixtures(fixtures, idx)
	require.Len(t, outlook, 5)
	assert.Equal(t, "LIV", outlook[0].Opponent)
	assert.Equal(t, "MCI", outlook[1].Opponent)
	assert.Equal(t, "", outlook[2].Opponent, "unknown team")
	assert.Empty(t, UpcomingFixtures(nil, nil))
}

func TestTransferStatsOf(t *testing.T) {
	t.Parallel()

	got := TransferStatsOf(fpl.Player{TransfersInEvent: 1200, TransfersOutEvent: 300, CostChangeStart: -3, SelectedByPercent: "12.4"})
	assert.Equal(t, 900, got.NetTransfers)
	assert.InDelta(t, -0.3, got.PriceChange, 1e-9)
	assert.InDelta(t, 12.4, got.Ownership, 1e-9)
}
