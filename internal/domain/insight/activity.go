package insight

import (
	"cmp"
	"slices"
	"strings"

	"github.com/riskibarqy/fpl-league-hub/internal/domain/fpl"
)

// Manager identifies a league entry for activity views.
type Manager struct {
	Entry       int64  `json:"entry"`
	ManagerName string `json:"manager_name"`
	TeamName    string `json:"team_name"`
}

func ManagerFromStanding(row fpl.StandingRow) Manager {
	return Manager{Entry: row.Entry, ManagerName: row.PlayerName, TeamName: row.EntryName}
}

type TransferActivity struct {
	Manager
	ElementIn      int     `json:"element_in"`
	ElementInName  string  `json:"element_in_name"`
	ElementInCost  float64 `json:"element_in_cost"`
	ElementOut     int     `json:"element_out"`
	ElementOutName string  `json:"element_out_name"`
	ElementOutCost float64 `json:"element_out_cost"`
	Time           string  `json:"time"`
}

// EnrichTransfers joins player names onto one manager's transfers for event.
func EnrichTransfers(m Manager, transfers []fpl.Transfer, event int, idx *fpl.Index) []TransferActivity {
	out := make([]TransferActivity, 0, 2)
	for _, t := range transfers {
		if t.Event != event {
			continue
		}
		out = append(out, TransferActivity{
			Manager:        m,
			ElementIn:      t.ElementIn,
			ElementInName:  idx.PlayerName(t.ElementIn),
			ElementInCost:  float64(t.ElementInCost) / 10,
			ElementOut:     t.ElementOut,
			ElementOutName: idx.PlayerName(t.ElementOut),
			ElementOutCost: float64(t.ElementOutCost) / 10,
			Time:           t.Time,
		})
	}
	return out
}

// SortByManager orders transfers by manager name, then by time.
func SortByManager(items []TransferActivity) {
	slices.SortStableFunc(items, func(a, b TransferActivity) int {
		if c := cmp.Compare(strings.ToLower(a.ManagerName), strings.ToLower(b.ManagerName)); c != 0 {
			return c
		}
		return cmp.Compare(a.Time, b.Time)
	})
}

type ManagerScore struct {
	Manager
	Points int `json:"points"`
}

// ManagerOfTheWeek returns the highest gameweek score; the first manager
// wins ties. Nil when there are no scores.
func ManagerOfTheWeek(scores []ManagerScore) *ManagerScore {
	if len(scores) == 0 {
		return nil
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Points > best.Points {
			best = s
		}
	}
	return &best
}
