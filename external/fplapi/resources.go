package fplapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/riskibarqy/fpl-league-hub/internal/domain/fpl"
	"github.com/riskibarqy/fpl-league-hub/internal/usecase"
)

var _ usecase.FPLSource = (*Client)(nil)

func (c *Client) Bootstrap(ctx context.Context) (fpl.Bootstrap, error) {
	var out fpl.Bootstrap
	raw, err := c.doJSON(ctx, "/bootstrap-static/", nil, &out)
	if err != nil {
		return fpl.Bootstrap{}, fmt.Errorf("fetch bootstrap-static: %w", err)
	}
	out.Raw = raw
	return out, nil
}

func (c *Client) H2HStandings(ctx context.Context, leagueID int64) (fpl.H2HStandings, error) {
	var out fpl.H2HStandings
	if _, err := c.doJSON(ctx, fmt.Sprintf("/leagues-h2h/%d/standings/", leagueID), nil, &out); err != nil {
		return fpl.H2HStandings{}, fmt.Errorf("fetch league standings league_id=%d: %w", leagueID, err)
	}
	return out, nil
}

func (c *Client) H2HMatches(ctx context.Context, leagueID int64, event int) (fpl.RawList, error) {
	query := url.Values{}
	query.Set("event", strconv.Itoa(event))
	query.Set("page", "1")

	var out fpl.RawList
	if _, err := c.doJSON(ctx, fmt.Sprintf("/leagues-h2h-matches/league/%d/", leagueID), query, &out); err != nil {
		return nil, fmt.Errorf("fetch league matches league_id=%d event=%d: %w", leagueID, event, err)
	}
	return out, nil
}

func (c *Client) Fixtures(ctx context.Context, event int) (fpl.RawList, error) {
	query := url.Values{}
	query.Set("event", strconv.Itoa(event))

	var out fpl.RawList
	if _, err := c.doJSON(ctx, "/fixtures/", query, &out); err != nil {
		return nil, fmt.Errorf("fetch fixtures event=%d: %w", event, err)
	}
	return out, nil
}

func (c *Client) Entry(ctx context.Context, entryID int64) (fpl.Entry, error) {
	var out fpl.Entry
	if _, err := c.doJSON(ctx, fmt.Sprintf("/entry/%d/", entryID), nil, &out); err != nil {
		return nil, fmt.Errorf("fetch entry entry_id=%d: %w", entryID, err)
	}
	return out, nil
}

func (c *Client) EntryHistory(ctx context.Context, entryID int64) (fpl.EntryHistory, error) {
	var out fpl.EntryHistory
	if _, err := c.doJSON(ctx, fmt.Sprintf("/entry/%d/history/", entryID), nil, &out); err != nil {
		return fpl.EntryHistory{}, fmt.Errorf("fetch entry history entry_id=%d: %w", entryID, err)
	}
	return out, nil
}

func (c *Client) EntryTransfers(ctx context.Context, entryID int64) (fpl.RawList, error) {
	var out fpl.RawList
	if _, err := c.doJSON(ctx, fmt.Sprintf("/entry/%d/transfers/", entryID), nil, &out); err != nil {
		return nil, fmt.Errorf("fetch entry transfers entry_id=%d: %w", entryID, err)
	}
	return out, nil
}

func (c *Client) EntryPicks(ctx context.Context, entryID int64, event int) (fpl.Picks, error) {
	var out fpl.Picks
	raw, err := c.doJSON(ctx, fmt.Sprintf("/entry/%d/event/%d/picks/", entryID, event), nil, &out)
	if err != nil {
		return fpl.Picks{}, fmt.Errorf("fetch picks entry_id=%d event=%d: %w", entryID, event, err)
	}
	out.Raw = raw
	return out, nil
}

func (c *Client) ElementSummary(ctx context.Context, playerID int) (fpl.ElementSummary, error) {
	var out fpl.ElementSummary
	raw, err := c.doJSON(ctx, fmt.Sprintf("/element-summary/%d/", playerID), nil, &out)
	if err != nil {
		return fpl.ElementSummary{}, fmt.Errorf("fetch element summary player_id=%d: %w", playerID, err)
	}
	out.Raw = raw
	return out, nil
}

func (c *Client) LiveEvent(ctx context.Context, event int) (fpl.LiveEvent, error) {
	var out fpl.LiveEvent
	if _, err := c.doJSON(ctx, fmt.Sprintf("/event/%d/live/", event), nil, &out); err != nil {
		return fpl.LiveEvent{}, fmt.Errorf("fetch live event event=%d: %w", event, err)
	}
	return out, nil
}
