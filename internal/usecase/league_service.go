package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fpl-league-hub/internal/domain/fpl"
	"github.com/riskibarqy/fpl-league-hub/internal/domain/insight"
	"github.com/riskibarqy/fpl-league-hub/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

const defaultActivityWorkers = 8

// LeagueService serves H2H league views: the table, weekly matchups and the
// derivations built from them.
type LeagueService struct {
	source          FPLSource
	logger          *logging.Logger
	activityWorkers int
}

func NewLeagueService(source FPLSource, activityWorkers int, logger *logging.Logger) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	if activityWorkers <= 0 {
		activityWorkers = defaultActivityWorkers
	}
	return &LeagueService{source: source, logger: logger, activityWorkers: activityWorkers}
}

// Standings returns the league table rows verbatim.
func (s *LeagueService) Standings(ctx context.Context, leagueID int64) (fpl.RawList, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Standings", attribute.Int64("league_id", leagueID))
	defer span.End()

	if err := requirePositive("leagueId", leagueID); err != nil {
		return nil, err
	}
	standings, err := s.source.H2HStandings(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return standings.Rows, nil
}

// Matchups returns one gameweek's match rows as a flat list.
func (s *LeagueService) Matchups(ctx context.Context, leagueID int64, event int) (fpl.RawList, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Matchups",
		attribute.Int64("league_id", leagueID),
		attribute.Int("event", event),
	)
	defer span.End()

	if err := validateLeagueEvent(leagueID, event); err != nil {
		return nil, err
	}
	return s.source.H2HMatches(ctx, leagueID, event)
}

type MatchupPick struct {
	Element       int    `json:"element"`
	ElementType   int    `json:"element_type"`
	IsCaptainRaw  bool   `json:"is_captain"`
	IsViceRaw     bool   `json:"is_vice_captain"`
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Position      string `json:"position"`
	Club          string `json:"club"`
	Points        int    `json:"points"`
	IsCaptain     bool   `json:"isCaptain"`
	IsViceCaptain bool   `json:"isViceCaptain"`
	IsStarting    bool   `json:"isStarting"`
	Multiplier    int    `json:"multiplier"`
}

// TeamPicks is an upstream picks document whose "picks" array has been
// replaced by enriched picks. Other fields pass through untouched.
type TeamPicks map[string]any

type MatchupDetail struct {
	Matchup json.RawMessage `json:"matchup"`
	Team1   TeamPicks       `json:"team1"`
	Team2   TeamPicks       `json:"team2"`
}

// Matchup resolves one H2H match and loads both squads. Bootstrap and the two
// picks documents are required; live points are best-effort and default to 0.
func (s *LeagueService) Matchup(ctx context.Context, leagueID, matchupID int64, event int) (MatchupDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Matchup",
		attribute.Int64("league_id", leagueID),
		attribute.Int64("matchup_id", matchupID),
		attribute.Int("event", event),
	)
	defer span.End()

	if err := validateLeagueEvent(leagueID, event); err != nil {
		return MatchupDetail{}, err
	}
	if err := requirePositive("matchupId", matchupID); err != nil {
		return MatchupDetail{}, err
	}

	matches, err := s.source.H2HMatches(ctx, leagueID, event)
	if err != nil {
		return MatchupDetail{}, err
	}
	match, raw, ok := fpl.Find(matches, func(m fpl.H2HMatch) bool { return m.ID == matchupID })
	if !ok {
		return MatchupDetail{}, fmt.Errorf("%w: matchup %d in league %d event %d", ErrNotFound, matchupID, leagueID, event)
	}

	var (
		bootstrap      fpl.Bootstrap
		picks1, picks2 fpl.Picks
		points         map[int]int
	)
	p := pool.New().WithContext(ctx).WithFirstError().WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		bootstrap, err = s.source.Bootstrap(ctx)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		picks1, err = s.source.EntryPicks(ctx, match.Entry1Entry, event)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		picks2, err = s.source.EntryPicks(ctx, match.Entry2Entry, event)
		return err
	})
	p.Go(func(ctx context.Context) error {
		live, err := s.source.LiveEvent(ctx, event)
		if err != nil {
			s.logger.WarnContext(ctx, "live points unavailable, matchup picks default to 0",
				"event", event,
				"error", err,
			)
			return nil
		}
		points = live.PointsByElement()
		return nil
	})
	if err := p.Wait(); err != nil {
		return MatchupDetail{}, err
	}

	idx := fpl.NewIndex(bootstrap)
	team1, err := enrichTeamPicks(picks1, idx, points)
	if err != nil {
		return MatchupDetail{}, fmt.Errorf("%w: decode picks entry_id=%d: %w", ErrUpstream, match.Entry1Entry, err)
	}
	team2, err := enrichTeamPicks(picks2, idx, points)
	if err != nil {
		return MatchupDetail{}, fmt.Errorf("%w: decode picks entry_id=%d: %w", ErrUpstream, match.Entry2Entry, err)
	}

	return MatchupDetail{Matchup: raw, Team1: team1, Team2: team2}, nil
}

func enrichTeamPicks(doc fpl.Picks, idx *fpl.Index, points map[int]int) (TeamPicks, error) {
	out := TeamPicks{}
	if len(doc.Raw) > 0 {
		if err := sonic.Unmarshal(doc.Raw, &out); err != nil {
			return nil, err
		}
	}

	picks := make([]MatchupPick, 0, len(doc.Picks))
	for _, pick := range doc.Picks {
		ref := idx.Ref(pick.Element)
		picks = append(picks, MatchupPick{
			Element:       pick.Element,
			ElementType:   pick.ElementType,
			IsCaptainRaw:  pick.IsCaptain,
			IsViceRaw:     pick.IsViceCaptain,
			ID:            pick.Element,
			Name:          ref.Name,
			Position:      ref.Position,
			Club:          ref.Club,
			Points:        points[pick.Element],
			IsCaptain:     pick.IsCaptain,
			IsViceCaptain: pick.IsViceCaptain,
			IsStarting:    pick.Multiplier > 0,
			Multiplier:    pick.Multiplier,
		})
	}
	out["picks"] = picks
	return out, nil
}

// Insights splits the table into its top four and bottom three.
func (s *LeagueService) Insights(ctx context.Context, leagueID int64) (insight.Insights, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Insights", attribute.Int64("league_id", leagueID))
	defer span.End()

	rows, err := s.standingRows(ctx, leagueID)
	if err != nil {
		return insight.Insights{}, err
	}
	return insight.LeagueInsights(rows), nil
}

type LeaguePerformance struct {
	Event int `json:"event"`
	insight.Performance
	AverageScore int `json:"average_score"`
}

// Performance ranks the managers of one gameweek by their match score.
func (s *LeagueService) Performance(ctx context.Context, leagueID int64, event int) (LeaguePerformance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Performance",
		attribute.Int64("league_id", leagueID),
		attribute.Int("event", event),
	)
	defer span.End()

	if err := validateLeagueEvent(leagueID, event); err != nil {
		return LeaguePerformance{}, err
	}

	rows, err := s.source.H2HMatches(ctx, leagueID, event)
	if err != nil {
		return LeaguePerformance{}, err
	}
	matches, err := fpl.DecodeRows[fpl.H2HMatch](rows)
	if err != nil {
		return LeaguePerformance{}, fmt.Errorf("%w: decode matches league_id=%d: %w", ErrUpstream, leagueID, err)
	}

	return LeaguePerformance{
		Event:        event,
		Performance:  insight.LeaguePerformance(matches),
		AverageScore: insight.LeagueAverageScore(matches),
	}, nil
}

func (s *LeagueService) standingRows(ctx context.Context, leagueID int64) ([]fpl.StandingRow, error) {
	if err := requirePositive("leagueId", leagueID); err != nil {
		return nil, err
	}
	standings, err := s.source.H2HStandings(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	rows, err := fpl.DecodeRows[fpl.StandingRow](standings.Rows)
	if err != nil {
		return nil, fmt.Errorf("%w: decode standings league_id=%d: %w", ErrUpstream, leagueID, err)
	}
	return rows, nil
}

func validateLeagueEvent(leagueID int64, event int) error {
	if err := requirePositive("leagueId", leagueID); err != nil {
		return err
	}
	return requirePositive("event", int64(event))
}
