package insight

import "github.com/riskibarqy/fpl-league-hub/internal/domain/fpl"

// ChipUsage counts one chip's plays in a gameweek.
type ChipUsage struct {
	Chip   string `json:"chip"`
	Label  string `json:"label"`
	Played int    `json:"played"`
}

var chipLabels = []struct{ chip, label string }{
	{"wildcard", "Wildcard"},
	{"bboost", "Bench Boost"},
	{"3xc", "Triple Captain"},
	{"freehit", "Free Hit"},
}

type Summary struct {
	Gameweek          int            `json:"gameweek"`
	Name              string         `json:"name"`
	AverageScore      int            `json:"average_score"`
	HighestScore      int            `json:"highest_score"`
	MostCaptained     *fpl.PlayerRef `json:"most_captained"`
	MostViceCaptained *fpl.PlayerRef `json:"most_vice_captained"`
	ChipUsage         []ChipUsage    `json:"chip_usage"`
}

// GameweekSummary describes one event. Captain lookups that do not resolve
// stay nil; chip counters default to 0.
func GameweekSummary(event *fpl.Event, idx *fpl.Index) *Summary {
	if event == nil {
		return nil
	}

	played := make(map[string]int, len(event.ChipPlays))
	for _, cp := range event.ChipPlays {
		played[cp.ChipName] = cp.NumPlayed
	}
	usage := make([]ChipUsage, 0, len(chipLabels))
	for _, c := range chipLabels {
		usage = append(usage, ChipUsage{Chip: c.chip, Label: c.label, Played: played[c.chip]})
	}

	return &Summary{
		Gameweek:          event.ID,
		Name:              event.Name,
		AverageScore:      event.AverageEntryScore,
		HighestScore:      event.HighestScore,
		MostCaptained:     lookupRef(idx, event.MostCaptained),
		MostViceCaptained: lookupRef(idx, event.MostViceCaptained),
		ChipUsage:         usage,
	}
}

func lookupRef(idx *fpl.Index, id int) *fpl.PlayerRef {
	if id == 0 {
		return nil
	}
	if _, ok := idx.Player(id); !ok {
		return nil
	}
	ref := idx.Ref(id)
	return &ref
}
