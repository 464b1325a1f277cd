package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fpl-league-hub/internal/domain/fpl"
)

// FPLSource reads the Fantasy Premier League API. Each method issues one
// upstream GET and returns an error wrapping ErrUpstream when it fails.
type FPLSource interface {
	Bootstrap(ctx context.Context) (fpl.Bootstrap, error)
	H2HStandings(ctx context.Context, leagueID int64) (fpl.H2HStandings, error)
	H2HMatches(ctx context.Context, leagueID int64, event int) (fpl.RawList, error)
	Fixtures(ctx context.Context, event int) (fpl.RawList, error)
	Entry(ctx context.Context, entryID int64) (fpl.Entry, error)
	EntryHistory(ctx context.Context, entryID int64) (fpl.EntryHistory, error)
	EntryTransfers(ctx context.Context, entryID int64) (fpl.RawList, error)
	EntryPicks(ctx context.Context, entryID int64, event int) (fpl.Picks, error)
	ElementSummary(ctx context.Context, playerID int) (fpl.ElementSummary, error)
	LiveEvent(ctx context.Context, event int) (fpl.LiveEvent, error)
}

func requirePositive(name string, v int64) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be a positive integer", ErrInvalidInput, name)
	}
	return nil
}
