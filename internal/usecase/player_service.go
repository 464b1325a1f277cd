package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/riskibarqy/fpl-league-hub/internal/domain/fpl"
	"github.com/riskibarqy/fpl-league-hub/internal/domain/insight"
	"go.opentelemetry.io/otel/attribute"
)

// PlayerService serves season reference data and the player views derived
// from it.
type PlayerService struct {
	source FPLSource
}

func NewPlayerService(source FPLSource) *PlayerService {
	return &PlayerService{source: source}
}

func (s *PlayerService) BootstrapStatic(ctx context.Context) (json.RawMessage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.BootstrapStatic")
	defer span.End()

	bootstrap, err := s.source.Bootstrap(ctx)
	if err != nil {
		return nil, err
	}
	return bootstrap.Raw, nil
}

func (s *PlayerService) Fixtures(ctx context.Context, gameweek int) (fpl.RawList, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Fixtures", attribute.Int("gameweek", gameweek))
	defer span.End()

	if err := requirePositive("gameweek", int64(gameweek)); err != nil {
		return nil, err
	}
	return s.source.Fixtures(ctx, gameweek)
}

func (s *PlayerService) ElementSummary(ctx context.Context, playerID int) (json.RawMessage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ElementSummary", attribute.Int("player_id", playerID))
	defer span.End()

	if err := requirePositive("playerId", int64(playerID)); err != nil {
		return nil, err
	}
	summary, err := s.source.ElementSummary(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return summary.Raw, nil
}

type PlayerProfile struct {
	Player           fpl.Player               `json:"player"`
	Team             *fpl.Team                `json:"team"`
	Position         *fpl.ElementType         `json:"position"`
	Form             []fpl.PlayerRound        `json:"form"`
	UpcomingFixtures []insight.FixtureOutlook `json:"upcoming_fixtures"`
	TransferStats    insight.TransferStats    `json:"transfer_stats"`
}

// Profile joins a bootstrap player with its element summary.
func (s *PlayerService) Profile(ctx context.Context, playerID int) (PlayerProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Profile", attribute.Int("player_id", playerID))
	defer span.End()

	if err := requirePositive("playerId", int64(playerID)); err != nil {
		return PlayerProfile{}, err
	}

	bootstrap, err := s.source.Bootstrap(ctx)
	if err != nil {
		return PlayerProfile{}, err
	}
	idx := fpl.NewIndex(bootstrap)
	player, ok := idx.Player(playerID)
	if !ok {
		return PlayerProfile{}, fmt.Errorf("%w: player %d", ErrNotFound, playerID)
	}

	summary, err := s.source.ElementSummary(ctx, playerID)
	if err != nil {
		return PlayerProfile{}, err
	}

	out := PlayerProfile{
		Player:           player,
		Form:             insight.RecentForm(summary.History),
		UpcomingFixtures: insight.UpcomingFixtures(summary.Fixtures, idx),
		TransferStats:    insight.TransferStatsOf(player),
	}
	if team, ok := idx.Team(player.Team); ok {
		out.Team = &team
	}
	if position, ok := idx.Position(player.ElementType); ok {
		out.Position = &position
	}
	return out, nil
}

type SearchPlayersInput struct {
	Query     string
	ExcludeID int
	Limit     int
}

func (s *PlayerService) Search(ctx context.Context, input SearchPlayersInput) ([]fpl.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Search", attribute.String("query", input.Query))
	defer span.End()

	if input.Limit < 0 || input.Limit > insight.MaxSearchLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, insight.MaxSearchLimit)
	}
	if len([]rune(strings.TrimSpace(input.Query))) < 2 {
		return []fpl.Player{}, nil
	}

	bootstrap, err := s.source.Bootstrap(ctx)
	if err != nil {
		return nil, err
	}
	return insight.SearchPlayers(bootstrap.Elements, fpl.NewIndex(bootstrap), input.Query, input.ExcludeID, input.Limit), nil
}

type Statistics struct {
	GameweekSummary *insight.Summary       `json:"gameweek_summary"`
	TopPerformers   []fpl.Player           `json:"top_performers"`
	TransferTrends  insight.TransferTrends `json:"transfer_trends"`
	TopScorers      []fpl.Player           `json:"top_scorers"`
	BestValue       []insight.ValuePick    `json:"best_value"`
	FormLeaders     []fpl.Player           `json:"form_leaders"`
}

// Statistics builds the season-wide player tables. A non-empty position code
// (GKP, DEF, MID, FWD) restricts every table to that position.
func (s *PlayerService) Statistics(ctx context.Context, positionCode string) (Statistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Statistics", attribute.String("position", positionCode))
	defer span.End()

	position := 0
	if code := strings.ToUpper(strings.TrimSpace(positionCode)); code != "" {
		id, ok := fpl.PositionFromCode(code)
		if !ok {
			return Statistics{}, fmt.Errorf("%w: position must be one of GKP, DEF, MID, FWD", ErrInvalidInput)
		}
		position = id
	}

	bootstrap, err := s.source.Bootstrap(ctx)
	if err != nil {
		return Statistics{}, err
	}
	idx := fpl.NewIndex(bootstrap)
	players := insight.ByPosition(bootstrap.Elements, position)

	out := Statistics{
		TopPerformers:  insight.TopPerformers(players),
		TransferTrends: insight.TransferTrendsOf(players),
		TopScorers:     insight.TopScorers(players),
		BestValue:      insight.BestValue(players),
		FormLeaders:    insight.FormLeaders(players),
	}
	if current, ok := bootstrap.CurrentEvent(); ok {
		out.GameweekSummary = insight.GameweekSummary(&current, idx)
	}
	return out, nil
}
