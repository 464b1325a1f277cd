package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fpl-league-hub/internal/domain/fpl"
	"github.com/riskibarqy/fpl-league-hub/internal/domain/insight"
	"go.opentelemetry.io/otel/attribute"
)

type memberActivity struct {
	ok        bool
	transfers []insight.TransferActivity
	score     insight.ManagerScore
}

type GameweekActivity struct {
	Event            int                        `json:"event"`
	Transfers        []insight.TransferActivity `json:"transfers"`
	ManagerOfTheWeek *insight.ManagerScore      `json:"manager_of_the_week"`
}

// Activity collects every league member's transfers and score for one
// gameweek. Members whose data cannot be fetched are logged and left out.
func (s *LeagueService) Activity(ctx context.Context, leagueID int64, event int) (GameweekActivity, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Activity",
		attribute.Int64("league_id", leagueID),
		attribute.Int("event", event),
	)
	defer span.End()

	if err := validateLeagueEvent(leagueID, event); err != nil {
		return GameweekActivity{}, err
	}

	rows, err := s.standingRows(ctx, leagueID)
	if err != nil {
		return GameweekActivity{}, err
	}
	bootstrap, err := s.source.Bootstrap(ctx)
	if err != nil {
		return GameweekActivity{}, err
	}
	idx := fpl.NewIndex(bootstrap)

	workerCount := min(s.activityWorkers, max(len(rows), 1))
	workers, err := ants.NewPool(workerCount)
	if err != nil {
		return GameweekActivity{}, fmt.Errorf("create activity worker pool: %w", err)
	}
	defer workers.Release()

	// Each task owns one slot so results keep standings order without locking.
	results := make([]memberActivity, len(rows))
	var wg sync.WaitGroup
	for i, row := range rows {
		manager := insight.ManagerFromStanding(row)
		if manager.Entry <= 0 {
			continue
		}

		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()

			moves, points, err := s.entryActivity(ctx, manager, event, idx)
			if err != nil {
				s.logger.WarnContext(ctx, "skip league member in gameweek activity",
					"league_id", leagueID,
					"entry_id", manager.Entry,
					"event", event,
					"error", err,
				)
				return
			}
			results[i] = memberActivity{ok: true, transfers: moves, score: insight.ManagerScore{Manager: manager, Points: points}}
		}); err != nil {
			wg.Done()
			wg.Wait()
			return GameweekActivity{}, fmt.Errorf("submit activity task entry_id=%d: %w", manager.Entry, err)
		}
	}
	wg.Wait()

	transfers := make([]insight.TransferActivity, 0, len(rows))
	scores := make([]insight.ManagerScore, 0, len(rows))
	for _, r := range results {
		if !r.ok {
			continue
		}
		transfers = append(transfers, r.transfers...)
		scores = append(scores, r.score)
	}

	insight.SortByManager(transfers)
	return GameweekActivity{
		Event:            event,
		Transfers:        transfers,
		ManagerOfTheWeek: insight.ManagerOfTheWeek(scores),
	}, nil
}

func (s *LeagueService) entryActivity(ctx context.Context, manager insight.Manager, event int, idx *fpl.Index) ([]insight.TransferActivity, int, error) {
	rows, err := s.source.EntryTransfers(ctx, manager.Entry)
	if err != nil {
		return nil, 0, err
	}
	transfers, err := fpl.DecodeRows[fpl.Transfer](rows)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: decode transfers entry_id=%d: %w", ErrUpstream, manager.Entry, err)
	}

	picks, err := s.source.EntryPicks(ctx, manager.Entry, event)
	if err != nil {
		return nil, 0, err
	}
	return insight.EnrichTransfers(manager, transfers, event, idx), picks.EntryHistory.Points, nil
}
