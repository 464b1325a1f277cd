package httpapi

// Path and query params arrive as strings; the validator checks presence and
// shape before they are parsed. Zero is rejected further down by the
// services with the same field names.

type leagueRequest struct {
	LeagueID string `param:"leagueId" validate:"required,number"`
}

type leagueEventRequest struct {
	LeagueID string `param:"leagueId" validate:"required,number"`
	Event    string `param:"event" validate:"required,number"`
}

type leagueMatchupRequest struct {
	LeagueID  string `param:"leagueId" validate:"required,number"`
	MatchupID string `param:"matchupId" validate:"required,number"`
	Event     string `param:"event" validate:"required,number"`
}

type fixturesRequest struct {
	Gameweek string `param:"gameweek" validate:"required,number"`
}

type entryTransfersRequest struct {
	EntryID string `param:"entryId" validate:"required,number"`
	Event   string `param:"event" validate:"omitempty,number"`
}

type entryPicksRequest struct {
	EntryID string `param:"entryId" validate:"required,number"`
	EventID string `param:"eventId" validate:"required,number"`
}

type teamRequest struct {
	TeamID string `param:"teamId" validate:"required,number"`
}

type playerRequest struct {
	PlayerID string `param:"playerId" validate:"required,number"`
}

type playerSearchRequest struct {
	Query   string `param:"q" validate:"max=64"`
	Exclude string `param:"exclude" validate:"omitempty,number"`
	Limit   string `param:"limit" validate:"omitempty,number"`
}
