package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/riskibarqy/fpl-league-hub/internal/domain/fpl"
	"github.com/riskibarqy/fpl-league-hub/internal/domain/insight"
	"github.com/riskibarqy/fpl-league-hub/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// EntryService serves per-manager views: transfers, picks and the team
// pages built from an entry's season history.
type EntryService struct {
	source FPLSource
	logger *logging.Logger
}

func NewEntryService(source FPLSource, logger *logging.Logger) *EntryService {
	if logger == nil {
		logger = logging.Default()
	}
	return &EntryService{source: source, logger: logger}
}

// Transfers returns an entry's transfer rows verbatim. A positive event keeps
// only the rows of that gameweek; zero keeps all.
func (s *EntryService) Transfers(ctx context.Context, entryID int64, event int) (fpl.RawList, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EntryService.Transfers",
		attribute.Int64("entry_id", entryID),
		attribute.Int("event", event),
	)
	defer span.End()

	if err := requirePositive("entryId", entryID); err != nil {
		return nil, err
	}
	if event < 0 {
		return nil, fmt.Errorf("%w: event must be a positive integer", ErrInvalidInput)
	}

	rows, err := s.source.EntryTransfers(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if event == 0 {
		return rows, nil
	}
	filtered, err := fpl.Filter(rows, func(t fpl.Transfer) bool { return t.Event == event })
	if err != nil {
		return nil, fmt.Errorf("%w: entry transfers entry_id=%d: %w", ErrUpstream, entryID, err)
	}
	return filtered, nil
}

// Picks returns the upstream picks document for one gameweek verbatim.
func (s *EntryService) Picks(ctx context.Context, entryID int64, event int) (json.RawMessage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EntryService.Picks",
		attribute.Int64("entry_id", entryID),
		attribute.Int("event", event),
	)
	defer span.End()

	if err := requirePositive("entryId", entryID); err != nil {
		return nil, err
	}
	if err := requirePositive("eventId", int64(event)); err != nil {
		return nil, err
	}

	picks, err := s.source.EntryPicks(ctx, entryID, event)
	if err != nil {
		return nil, err
	}
	return picks.Raw, nil
}

// TeamData returns the entry summary augmented with the current gameweek and
// the overall-rank movement around it. History is only fetched after
// gameweek 1 and is optional: when it cannot be fetched the rank fields stay
// null.
func (s *EntryService) TeamData(ctx context.Context, entryID int64) (fpl.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EntryService.TeamData", attribute.Int64("entry_id", entryID))
	defer span.End()

	if err := requirePositive("teamId", entryID); err != nil {
		return nil, err
	}

	entry, err := s.source.Entry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		entry = fpl.Entry{}
	}
	bootstrap, err := s.source.Bootstrap(ctx)
	if err != nil {
		return nil, err
	}

	entry["current_event"] = nil
	ranks := insight.EventRank{}

	current, ok := bootstrap.CurrentEvent()
	if ok {
		entry["current_event"] = current.ID
	}
	if ok && current.ID > 1 {
		history, err := s.source.EntryHistory(ctx, entryID)
		if err != nil {
			s.logger.WarnContext(ctx, "entry history unavailable, returning team data without ranks",
				"entry_id", entryID,
				"event", current.ID,
				"error", err,
			)
		} else {
			ranks = insight.EventRankChange(history.Current, current.ID)
		}
	}

	entry["current_event_rank"] = ranks.Current
	entry["previous_event_rank"] = ranks.Previous
	entry["rank_change"] = ranks.Change
	return entry, nil
}

// TeamHistory returns the per-gameweek rank series with its extremes.
func (s *EntryService) TeamHistory(ctx context.Context, entryID int64) (insight.RankHistory, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EntryService.TeamHistory", attribute.Int64("entry_id", entryID))
	defer span.End()

	if err := requirePositive("teamId", entryID); err != nil {
		return insight.RankHistory{}, err
	}

	history, err := s.source.EntryHistory(ctx, entryID)
	if err != nil {
		return insight.RankHistory{}, err
	}
	return insight.RankExtremes(history.Current), nil
}

type PreviousSeasons struct {
	Seasons []insight.SeasonStanding `json:"seasons"`
}

func (s *EntryService) PreviousSeasons(ctx context.Context, entryID int64) (PreviousSeasons, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EntryService.PreviousSeasons", attribute.Int64("entry_id", entryID))
	defer span.End()

	if err := requirePositive("teamId", entryID); err != nil {
		return PreviousSeasons{}, err
	}

	history, err := s.source.EntryHistory(ctx, entryID)
	if err != nil {
		return PreviousSeasons{}, err
	}
	return PreviousSeasons{Seasons: insight.PreviousSeasons(history.Past)}, nil
}
