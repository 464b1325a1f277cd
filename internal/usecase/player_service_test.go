package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/riskibarqy/fpl-league-hub/internal/domain/fpl"
	usecasemock "github.com/riskibarqy/fpl-league-hub/internal/mocks/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlayerService_PassthroughReturnsVerbatimBodies(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewFPLSource(t)
	service := NewPlayerService(source)

	bootstrap := sampleBootstrap()
	source.On("Bootstrap", mock.Anything).Return(bootstrap, nil).Once()
	source.On("ElementSummary", mock.Anything, 10).
		Return(fpl.ElementSummary{Raw: json.RawMessage(`{"fixtures":[],"history":[],"history_past":[]}`)}, nil).Once()
	source.On("Fixtures", mock.Anything, 8).Return(rawRows(`{"id":1,"event":8}`), nil).Once()

	raw, err := service.BootstrapStatic(context.Background())
	require.NoError(t, err)
	assert.Equal(t, string(bootstrap.Raw), string(raw))

	summary, err := service.ElementSummary(context.Background(), 10)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fixtures":[],"history":[],"history_past":[]}`, string(summary))

	fixtures, err := service.Fixtures(context.Background(), 8)
	require.NoError(t, err)
	assert.Len(t, fixtures, 1)

	_, err = service.Fixtures(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestPlayerService_Profile(t *testing.T) {
	t.Parallel()

	t.Run("joins summary onto the bootstrap player", func(t *testing.T) {
		source := usecasemock.NewFPLSource(t)
		service := NewPlayerService(source)

		history := make([]fpl.PlayerRound, 0, 7)
		for round := 1; round <= 7; round++ {
			history = append(history, fpl.PlayerRound{Round: round, TotalPoints: round})
		}
		source.On("Bootstrap", mock.Anything).Return(sampleBootstrap(), nil).Once()
		source.On("ElementSummary", mock.Anything, 10).Return(fpl.ElementSummary{
			History:  history,
			Fixtures: []fpl.UpcomingFixture{{Event: 9, TeamH: 1, TeamA: 13, IsHome: true, Difficulty: 5}},
		}, nil).Once()

		got, err := service.Profile(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, "Saka", got.Player.WebName)
		require.NotNil(t, got.Team)
		assert.Equal(t, "ARS", got.Team.ShortName)
		require.NotNil(t, got.Position)
		assert.Equal(t, "MID", got.Position.SingularNameShort)
		require.Len(t, got.Form, 5)
		assert.Equal(t, 3, got.Form[0].Round)
		require.Len(t, got.UpcomingFixtures, 1)
		assert.Equal(t, "MCI", got.UpcomingFixtures[0].Opponent)
		assert.Equal(t, 4000, got.TransferStats.NetTransfers)
		assert.InDelta(t, 0.3, got.TransferStats.PriceChange, 1e-9)
	})

	t.Run("unknown player is not found", func(t *testing.T) {
		source := usecasemock.NewFPLSource(t)
		service := NewPlayerService(source)

		source.On("Bootstrap", mock.Anything).Return(sampleBootstrap(), nil).Once()

		_, err := service.Profile(context.Background(), 4242)
		require.ErrorIs(t, err, ErrNotFound)
		source.AssertNotCalled(t, "ElementSummary", mock.Anything, mock.Anything)
	})
}

func TestPlayerService_Search(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewFPLSource(t)
	service := NewPlayerService(source)

	got, err := service.Search(context.Background(), SearchPlayersInput{Query: "h"})
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = service.Search(context.Background(), SearchPlayersInput{Query: "haaland", Limit: 99})
	require.ErrorIs(t, err, ErrInvalidInput)

	source.On("Bootstrap", mock.Anything).Return(sampleBootstrap(), nil).Twice()

	got, err = service.Search(context.Background(), SearchPlayersInput{Query: "haal"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 30, got[0].ID)

	got, err = service.Search(context.Background(), SearchPlayersInput{Query: "haal", ExcludeID: 30})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPlayerService_Statistics(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewFPLSource(t)
	service := NewPlayerService(source)

	_, err := service.Statistics(context.Background(), "GK")
	require.ErrorIs(t, err, ErrInvalidInput)

	source.On("Bootstrap", mock.Anything).Return(sampleBootstrap(), nil).Twice()

	all, err := service.Statistics(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, all.GameweekSummary)
	assert.Equal(t, 8, all.GameweekSummary.Gameweek)
	require.NotNil(t, all.GameweekSummary.MostCaptained)
	assert.Equal(t, "Haaland", all.GameweekSummary.MostCaptained.Name)
	require.Len(t, all.TopScorers, 2)
	assert.Equal(t, 30, all.TopScorers[0].ID)
	assert.Equal(t, 30, all.TransferTrends.MostTransferredOut[0].ID)
	assert.Equal(t, 10, all.TransferTrends.MostTransferredIn[0].ID)

	mids, err := service.Statistics(context.Background(), "mid")
	require.NoError(t, err)
	require.Len(t, mids.TopPerformers, 1)
	assert.Equal(t, 10, mids.TopPerformers[0].ID)
	require.Len(t, mids.BestValue, 1)
	assert.InDelta(t, 12.0, mids.BestValue[0].PointsPerMillion, 1e-9)
}
