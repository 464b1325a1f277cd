package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/riskibarqy/fpl-league-hub/internal/domain/fpl"
)

func sampleBootstrap() fpl.Bootstrap {
	return fpl.Bootstrap{
		Events: []fpl.Event{
			{ID: 7, Name: "Gameweek 7", IsPrevious: true, Finished: true},
			{ID: 8, Name: "Gameweek 8", IsCurrent: true, AverageEntryScore: 52, HighestScore: 110, MostCaptained: 30, MostViceCaptained: 10,
				ChipPlays: []fpl.ChipPlay{{ChipName: "bboost", NumPlayed: 1200}}},
			{ID: 9, Name: "Gameweek 9", IsNext: true},
		},
		Teams: []fpl.Team{
			{ID: 1, Name: "Arsenal", ShortName: "ARS"},
			{ID: 13, Name: "Man City", ShortName: "MCI"},
		},
		ElementTypes: []fpl.ElementType{
			{ID: 3, SingularName: "Midfielder", SingularNameShort: "MID"},
			{ID: 4, SingularName: "Forward", SingularNameShort: "FWD"},
		},
		Elements: []fpl.Player{
			{ID: 10, WebName: "Saka", FirstName: "Bukayo", SecondName: "Saka", Team: 1, ElementType: 3,
				NowCost: 100, CostChangeStart: 3, TotalPoints: 120, EventPoints: 9, Form: "6.5",
				SelectedByPercent: "35.2", TransfersInEvent: 5000, TransfersOutEvent: 1000},
			{ID: 30, WebName: "Haaland", FirstName: "Erling", SecondName: "Haaland", Team: 13, ElementType: 4,
				NowCost: 150, TotalPoints: 160, EventPoints: 13, Form: "8.0",
				SelectedByPercent: "80.1", TransfersInEvent: 2000, TransfersOutEvent: 9000},
		},
		Raw: json.RawMessage(`{"events":[],"teams":[],"elements":[],"element_types":[]}`),
	}
}

func rawRows(rows ...string) fpl.RawList {
	out := make(fpl.RawList, 0, len(rows))
	for _, row := range rows {
		out = append(out, json.RawMessage(row))
	}
	return out
}

func matchRow(id, entry1 int64, points1 int, entry2 int64, points2 int) string {
	return fmt.Sprintf(
		`{"id":%d,"event":8,"entry_1_entry":%d,"entry_1_name":"Team %d","entry_1_player_name":"Manager %d","entry_1_points":%d,"entry_2_entry":%d,"entry_2_name":"Team %d","entry_2_player_name":"Manager %d","entry_2_points":%d}`,
		id, entry1, entry1, entry1, points1, entry2, entry2, entry2, points2,
	)
}

func standingRow(entry int64, manager, team string, total int) string {
	return fmt.Sprintf(`{"id":%d,"entry":%d,"entry_name":%q,"player_name":%q,"total":%d}`, entry+1000, entry, team, manager, total)
}

func samplePicks(event, points int, picks ...fpl.Pick) fpl.Picks {
	return fpl.Picks{
		EntryHistory: fpl.EventHistory{Event: event, Points: points},
		Picks:        picks,
		Raw:          json.RawMessage(fmt.Sprintf(`{"active_chip":null,"automatic_subs":[],"entry_history":{"event":%d,"points":%d},"picks":[]}`, event, points)),
	}
}
