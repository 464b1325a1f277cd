package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/fpl-league-hub/internal/domain/fpl"
	usecasemock "github.com/riskibarqy/fpl-league-hub/internal/mocks/usecase"
	"github.com/riskibarqy/fpl-league-hub/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEntryService_TransfersFiltersByEvent(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewFPLSource(t)
	service := NewEntryService(source, logging.NewNop())

	rows := rawRows(
		`{"entry":7,"event":8,"element_in":10,"element_out":30,"time":"b"}`,
		`{"entry":7,"event":6,"element_in":30,"element_out":10,"time":"a"}`,
	)
	source.On("EntryTransfers", mock.Anything, int64(7)).Return(rows, nil).Twice()

	all, err := service.Transfers(context.Background(), 7, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := service.Transfers(context.Background(), 7, 8)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.JSONEq(t, string(rows[0]), string(filtered[0]))
}

func TestEntryService_TransfersMalformedRowIsUpstreamError(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewFPLSource(t)
	service := NewEntryService(source, logging.NewNop())

	rows := rawRows(
		`{"entry":7,"event":8,"element_in":10,"element_out":30,"time":"b"}`,
		`{"entry":7,"event":"eight","element_in":30,"element_out":10,"time":"a"}`,
	)
	source.On("EntryTransfers", mock.Anything, int64(7)).Return(rows, nil).Once()

	_, err := service.Transfers(context.Background(), 7, 8)
	require.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "decode row 1")
}

func TestEntryService_RejectsInvalidIDs(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewFPLSource(t)
	service := NewEntryService(source, logging.NewNop())

	_, err := service.TeamData(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "teamId")

	_, err = service.Picks(context.Background(), 7, -1)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.Transfers(context.Background(), 7, -3)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestEntryService_TeamData(t *testing.T) {
	t.Parallel()

	t.Run("adds rank movement around the current gameweek", func(t *testing.T) {
		source := usecasemock.NewFPLSource(t)
		service := NewEntryService(source, logging.NewNop())

		source.On("Entry", mock.Anything, int64(7)).Return(fpl.Entry{"id": float64(7), "name": "Seven Nation"}, nil).Once()
		source.On("Bootstrap", mock.Anything).Return(sampleBootstrap(), nil).Once()
		source.On("EntryHistory", mock.Anything, int64(7)).Return(fpl.EntryHistory{Current: []fpl.EventHistory{
			{Event: 7, OverallRank: 150_000},
			{Event: 8, OverallRank: 90_000},
		}}, nil).Once()

		got, err := service.TeamData(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "Seven Nation", got["name"])
		assert.Equal(t, 8, got["current_event"])
		assert.Equal(t, 90_000, *got["current_event_rank"].(*int))
		assert.Equal(t, 150_000, *got["previous_event_rank"].(*int))
		assert.Equal(t, 60_000, *got["rank_change"].(*int))
	})

	t.Run("history failure keeps the entry without ranks", func(t *testing.T) {
		source := usecasemock.NewFPLSource(t)
		service := NewEntryService(source, logging.NewNop())

		source.On("Entry", mock.Anything, int64(7)).Return(fpl.Entry{"id": float64(7)}, nil).Once()
		source.On("Bootstrap", mock.Anything).Return(sampleBootstrap(), nil).Once()
		source.On("EntryHistory", mock.Anything, int64(7)).Return(fpl.EntryHistory{}, errUpstreamDown).Once()

		got, err := service.TeamData(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, 8, got["current_event"])
		assert.Nil(t, got["current_event_rank"])
		assert.Nil(t, got["previous_event_rank"])
		assert.Nil(t, got["rank_change"])
	})

	t.Run("no current gameweek skips history", func(t *testing.T) {
		source := usecasemock.NewFPLSource(t)
		service := NewEntryService(source, logging.NewNop())

		bootstrap := sampleBootstrap()
		bootstrap.Events = []fpl.Event{{ID: 38, Finished: true}}
		source.On("Entry", mock.Anything, int64(7)).Return(fpl.Entry{"id": float64(7)}, nil).Once()
		source.On("Bootstrap", mock.Anything).Return(bootstrap, nil).Once()

		got, err := service.TeamData(context.Background(), 7)
		require.NoError(t, err)
		assert.Nil(t, got["current_event"])
		source.AssertNotCalled(t, "EntryHistory", mock.Anything, mock.Anything)
	})

	t.Run("first gameweek skips history", func(t *testing.T) {
		source := usecasemock.NewFPLSource(t)
		service := NewEntryService(source, logging.NewNop())

		bootstrap := sampleBootstrap()
		bootstrap.Events = []fpl.Event{{ID: 1, Name: "Gameweek 1", IsCurrent: true}}
		source.On("Entry", mock.Anything, int64(7)).Return(fpl.Entry{"id": float64(7)}, nil).Once()
		source.On("Bootstrap", mock.Anything).Return(bootstrap, nil).Once()

		got, err := service.TeamData(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, 1, got["current_event"])
		assert.Nil(t, got["current_event_rank"])
		assert.Nil(t, got["previous_event_rank"])
		assert.Nil(t, got["rank_change"])
		source.AssertNotCalled(t, "EntryHistory", mock.Anything, mock.Anything)
	})

	t.Run("entry failure fails", func(t *testing.T) {
		source := usecasemock.NewFPLSource(t)
		service := NewEntryService(source, logging.NewNop())

		source.On("Entry", mock.Anything, int64(7)).Return(fpl.Entry(nil), errUpstreamDown).Once()

		_, err := service.TeamData(context.Background(), 7)
		require.ErrorIs(t, err, ErrUpstream)
	})
}

func TestEntryService_HistoryViews(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewFPLSource(t)
	service := NewEntryService(source, logging.NewNop())

	source.On("EntryHistory", mock.Anything, int64(7)).Return(fpl.EntryHistory{
		Current: []fpl.EventHistory{
			{Event: 1, OverallRank: 500_000, Points: 50, TotalPoints: 50},
			{Event: 2, OverallRank: 200_000, Points: 70, TotalPoints: 120},
		},
		Past: []fpl.PastSeason{
			{SeasonName: "2021/22", TotalPoints: 2100, Rank: 800_000},
			{SeasonName: "2023/24", TotalPoints: 2400, Rank: 50_000},
		},
	}, nil).Twice()

	ranks, err := service.TeamHistory(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, ranks.Ranks, 2)
	assert.Equal(t, 200_000, *ranks.HighestRank)
	assert.Equal(t, 2, *ranks.HighestRankGW)
	assert.Equal(t, 500_000, *ranks.LowestRank)

	seasons, err := service.PreviousSeasons(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, seasons.Seasons, 2)
	assert.Equal(t, "2023/24", seasons.Seasons[0].Season)
	assert.Equal(t, "top1", seasons.Seasons[0].Tier)
	assert.Equal(t, "top10", seasons.Seasons[1].Tier)
}
