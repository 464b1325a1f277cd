package insight

import (
	"testing"

	"github.com/riskibarqy/fpl-league-hub/internal/domain/fpl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameweekSummary(t *testing.T) {
	t.Parallel()

	idx := fpl.NewIndex(fpl.Bootstrap{
		Teams:        []fpl.Team{{ID: 14, ShortName: "MCI"}},
		ElementTypes: []fpl.ElementType{{ID: 4, SingularNameShort: "FWD"}},
		Elements:     []fpl.Player{{ID: 351, WebName: "Haaland", Team: 14, ElementType: 4}},
	})
	event := &fpl.Event{
		ID:                5,
		Name:              "Gameweek 5",
		AverageEntryScore: 54,
		HighestScore:      127,
		MostCaptained:     351,
		MostViceCaptained: 999,
		ChipPlays: []fpl.ChipPlay{
			{ChipName: "bboost", NumPlayed: 120},
			{ChipName: "3xc", NumPlayed: 80},
		},
	}

	got := GameweekSummary(event, idx)
	require.NotNil(t, got)
	assert.Equal(t, 54, got.AverageScore)
	assert.Equal(t, 127, got.HighestScore)
	require.NotNil(t, got.MostCaptained)
	assert.Equal(t, "Haaland", got.MostCaptained.Name)
	assert.Nil(t, got.MostViceCaptained, "unknown player id stays nil")

	assert.Equal(t, []ChipUsage{
		{Chip: "wildcard", Label: "Wildcard", Played: 0},
		{Chip: "bboost", Label: "Bench Boost", Played: 120},
		{Chip: "3xc", Label: "Triple Captain", Played: 80},
		{Chip: "freehit", Label: "Free Hit", Played: 0},
	}, got.ChipUsage)
}

func TestGameweekSummary_NilEvent(t *testing.T) {
	t.Parallel()

	assert.Nil(t, GameweekSummary(nil, nil))

	got := GameweekSummary(&fpl.Event{ID: 1}, nil)
	require.NotNil(t, got)
	assert.Nil(t, got.MostCaptained)
	assert.Len(t, got.ChipUsage, 4)
}
