package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fpl-league-hub/internal/domain/fpl"
	usecasemock "github.com/riskibarqy/fpl-league-hub/internal/mocks/usecase"
	"github.com/riskibarqy/fpl-league-hub/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errUpstreamDown = errors.Join(ErrUpstream, errors.New("status=503"))

func TestLeagueService_MatchupsRejectsInvalidInputWithoutUpstreamCall(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewFPLSource(t)
	service := NewLeagueService(source, 4, logging.NewNop())

	_, err := service.Matchups(context.Background(), 0, 8)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "leagueId")

	_, err = service.Matchups(context.Background(), 99, 0)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "event")
}

func TestLeagueService_Matchup_EnrichesBothTeams(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewFPLSource(t)
	service := NewLeagueService(source, 4, logging.NewNop())

	source.On("H2HMatches", mock.Anything, int64(99), 8).
		Return(rawRows(matchRow(500, 1, 10, 2, 20), matchRow(501, 111, 60, 222, 45)), nil).Once()
	source.On("Bootstrap", mock.Anything).Return(sampleBootstrap(), nil).Once()
	source.On("EntryPicks", mock.Anything, int64(111), 8).
		Return(samplePicks(8, 60,
			fpl.Pick{Element: 10, Position: 1, Multiplier: 2, IsCaptain: true, ElementType: 3},
			fpl.Pick{Element: 999, Position: 12, Multiplier: 0},
		), nil).Once()
	source.On("EntryPicks", mock.Anything, int64(222), 8).
		Return(samplePicks(8, 45, fpl.Pick{Element: 30, Position: 1, Multiplier: 1, IsViceCaptain: true}), nil).Once()
	source.On("LiveEvent", mock.Anything, 8).
		Return(fpl.LiveEvent{Elements: []fpl.LiveElement{{ID: 10, Stats: fpl.LiveStats{TotalPoints: 9}}}}, nil).Once()

	got, err := service.Matchup(context.Background(), 99, 501, 8)
	require.NoError(t, err)
	assert.JSONEq(t, matchRow(501, 111, 60, 222, 45), string(got.Matchup))

	team1 := got.Team1["picks"].([]MatchupPick)
	require.Len(t, team1, 2)
	assert.Equal(t, MatchupPick{
		Element: 10, ElementType: 3, IsCaptainRaw: true, ID: 10, Name: "Saka", Position: "MID", Club: "ARS",
		Points: 9, IsCaptain: true, IsStarting: true, Multiplier: 2,
	}, team1[0])
	assert.Equal(t, "Unknown", team1[1].Name)
	assert.Empty(t, team1[1].Position)
	assert.Zero(t, team1[1].Points)
	assert.False(t, team1[1].IsStarting)
	assert.Contains(t, got.Team1, "entry_history")

	team2 := got.Team2["picks"].([]MatchupPick)
	require.Len(t, team2, 1)
	assert.Equal(t, "Haaland", team2[0].Name)
	assert.True(t, team2[0].IsViceCaptain)
	assert.Zero(t, team2[0].Points)
}

func TestLeagueService_Matchup_LivePointsAreBestEffort(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewFPLSource(t)
	service := NewLeagueService(source, 4, logging.NewNop())

	source.On("H2HMatches", mock.Anything, int64(99), 8).Return(rawRows(matchRow(501, 111, 60, 222, 45)), nil).Once()
	source.On("Bootstrap", mock.Anything).Return(sampleBootstrap(), nil).Once()
	source.On("EntryPicks", mock.Anything, int64(111), 8).Return(samplePicks(8, 60, fpl.Pick{Element: 10, Multiplier: 1}), nil).Once()
	source.On("EntryPicks", mock.Anything, int64(222), 8).Return(samplePicks(8, 45), nil).Once()
	source.On("LiveEvent", mock.Anything, 8).Return(fpl.LiveEvent{}, errUpstreamDown).Once()

	got, err := service.Matchup(context.Background(), 99, 501, 8)
	require.NoError(t, err)
	assert.Zero(t, got.Team1["picks"].([]MatchupPick)[0].Points)
	assert.Empty(t, got.Team2["picks"].([]MatchupPick))
}

func TestLeagueService_Matchup_NotFoundSkipsFurtherFetches(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewFPLSource(t)
	service := NewLeagueService(source, 4, logging.NewNop())

	source.On("H2HMatches", mock.Anything, int64(99), 8).Return(rawRows(matchRow(500, 1, 10, 2, 20)), nil).Once()

	_, err := service.Matchup(context.Background(), 99, 501, 8)
	require.ErrorIs(t, err, ErrNotFound)
	source.AssertNotCalled(t, "Bootstrap", mock.Anything)
}

func TestLeagueService_Matchup_PicksFailureIsUpstreamError(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewFPLSource(t)
	service := NewLeagueService(source, 4, logging.NewNop())

	source.On("H2HMatches", mock.Anything, int64(99), 8).Return(rawRows(matchRow(501, 111, 60, 222, 45)), nil).Once()
	source.On("Bootstrap", mock.Anything).Return(sampleBootstrap(), nil).Maybe()
	source.On("EntryPicks", mock.Anything, int64(111), 8).Return(samplePicks(8, 60), nil).Maybe()
	source.On("EntryPicks", mock.Anything, int64(222), 8).Return(fpl.Picks{}, errUpstreamDown).Once()
	source.On("LiveEvent", mock.Anything, 8).Return(fpl.LiveEvent{}, nil).Maybe()

	_, err := service.Matchup(context.Background(), 99, 501, 8)
	require.ErrorIs(t, err, ErrUpstream)
}

func TestLeagueService_StandingsAndInsights(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewFPLSource(t)
	service := NewLeagueService(source, 4, logging.NewNop())

	standings := fpl.H2HStandings{Rows: rawRows(
		standingRow(1, "A", "Alpha", 30),
		standingRow(2, "B", "Bravo", 45),
		standingRow(3, "C", "Charlie", 12),
		standingRow(4, "D", "Delta", 27),
		standingRow(5, "E", "Echo", 33),
	)}
	source.On("H2HStandings", mock.Anything, int64(99)).Return(standings, nil).Twice()

	rows, err := service.Standings(context.Background(), 99)
	require.NoError(t, err)
	assert.Len(t, rows, 5)

	got, err := service.Insights(context.Background(), 99)
	require.NoError(t, err)
	require.Len(t, got.TopFour, 4)
	assert.Equal(t, int64(2), got.TopFour[0].Entry)
	require.Len(t, got.BottomThree, 3)
	assert.Equal(t, int64(3), got.BottomThree[0].Entry)
}

func TestLeagueService_Performance(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewFPLSource(t)
	service := NewLeagueService(source, 4, logging.NewNop())

	source.On("H2HMatches", mock.Anything, int64(99), 8).
		Return(rawRows(matchRow(1, 11, 70, 12, 41), matchRow(2, 21, 55, 22, 38)), nil).Once()

	got, err := service.Performance(context.Background(), 99, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Event)
	assert.Equal(t, 51, got.AverageScore)
	require.Len(t, got.TopManagers, 3)
	assert.Equal(t, int64(11), got.TopManagers[0].Entry)
	require.Len(t, got.BottomManagers, 3)
	assert.Equal(t, int64(22), got.BottomManagers[0].Entry)
}

func TestLeagueService_Activity_SkipsFailingMembers(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewFPLSource(t)
	service := NewLeagueService(source, 2, logging.NewNop())

	source.On("H2HStandings", mock.Anything, int64(99)).Return(fpl.H2HStandings{Rows: rawRows(
		standingRow(111, "Zoe", "Zulu FC", 40),
		standingRow(222, "ana", "Alpha FC", 38),
		standingRow(333, "Bob", "Broken FC", 30),
	)}, nil).Once()
	source.On("Bootstrap", mock.Anything).Return(sampleBootstrap(), nil).Once()

	source.On("EntryTransfers", mock.Anything, int64(111)).Return(rawRows(
		`{"entry":111,"event":8,"element_in":10,"element_in_cost":100,"element_out":30,"element_out_cost":151,"time":"2025-10-17T10:00:00Z"}`,
		`{"entry":111,"event":7,"element_in":30,"element_in_cost":150,"element_out":10,"element_out_cost":99,"time":"2025-10-10T10:00:00Z"}`,
	), nil).Once()
	source.On("EntryPicks", mock.Anything, int64(111), 8).Return(samplePicks(8, 70), nil).Once()

	source.On("EntryTransfers", mock.Anything, int64(222)).Return(rawRows(
		`{"entry":222,"event":8,"element_in":30,"element_in_cost":150,"element_out":404,"element_out_cost":55,"time":"2025-10-17T09:00:00Z"}`,
	), nil).Once()
	source.On("EntryPicks", mock.Anything, int64(222), 8).Return(samplePicks(8, 80), nil).Once()

	source.On("EntryTransfers", mock.Anything, int64(333)).Return(fpl.RawList(nil), errUpstreamDown).Once()

	got, err := service.Activity(context.Background(), 99, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Event)

	require.Len(t, got.Transfers, 2)
	assert.Equal(t, "ana", got.Transfers[0].ManagerName)
	assert.Equal(t, "Haaland", got.Transfers[0].ElementInName)
	assert.Equal(t, "Unknown", got.Transfers[0].ElementOutName)
	assert.Equal(t, "Zoe", got.Transfers[1].ManagerName)
	assert.InDelta(t, 15.1, got.Transfers[1].ElementOutCost, 1e-9)

	require.NotNil(t, got.ManagerOfTheWeek)
	assert.Equal(t, int64(222), got.ManagerOfTheWeek.Entry)
	assert.Equal(t, 80, got.ManagerOfTheWeek.Points)
	assert.Equal(t, "Alpha FC", got.ManagerOfTheWeek.TeamName)
}

func TestLeagueService_Activity_StandingsFailureFails(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewFPLSource(t)
	service := NewLeagueService(source, 2, logging.NewNop())

	source.On("H2HStandings", mock.Anything, int64(99)).Return(fpl.H2HStandings{}, errUpstreamDown).Once()

	_, err := service.Activity(context.Background(), 99, 8)
	require.ErrorIs(t, err, ErrUpstream)
}
