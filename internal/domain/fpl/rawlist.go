package fpl

import (
	"bytes"
	"encoding/json"
	"fmt"

	sonic "github.com/bytedance/sonic"
)

// RawList holds upstream rows verbatim. It decodes from a bare JSON array,
// from an object carrying the rows under "results", or from null, and always
// encodes back to a flat array.
type RawList []json.RawMessage

func (l *RawList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = RawList{}
		return nil
	}

	switch trimmed[0] {
	case '[':
		var rows []json.RawMessage
		if err := sonic.Unmarshal(trimmed, &rows); err != nil {
			return err
		}
		*l = normalizeRows(rows)
		return nil
	case '{':
		var wrapped struct {
			Results []json.RawMessage `json:"results"`
		}
		if err := sonic.Unmarshal(trimmed, &wrapped); err != nil {
			return err
		}
		*l = normalizeRows(wrapped.Results)
		return nil
	default:
		return fmt.Errorf("expected array or object with results, got %.20q", trimmed)
	}
}

func (l RawList) MarshalJSON() ([]byte, error) {
	if len(l) == 0 {
		return []byte("[]"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, row := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(row)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// Filter keeps the rows for which keep returns true. A row that fails to
// decode into T fails the whole filter.
func Filter[T any](l RawList, keep func(T) bool) (RawList, error) {
	out := make(RawList, 0, len(l))
	for i, row := range l {
		var item T
		if err := sonic.Unmarshal(row, &item); err != nil {
			return nil, fmt.Errorf("decode row %d: %w", i, err)
		}
		if keep(item) {
			out = append(out, row)
		}
	}
	return out, nil
}

// DecodeRows decodes every row into T.
func DecodeRows[T any](l RawList) ([]T, error) {
	out := make([]T, 0, len(l))
	for i, row := range l {
		var item T
		if err := sonic.Unmarshal(row, &item); err != nil {
			return nil, fmt.Errorf("decode row %d: %w", i, err)
		}
		out = append(out, item)
	}
	return out, nil
}

// Find returns the first row whose decoded value satisfies match.
func Find[T any](l RawList, match func(T) bool) (T, json.RawMessage, bool) {
	for _, row := range l {
		var item T
		if err := sonic.Unmarshal(row, &item); err != nil {
			continue
		}
		if match(item) {
			return item, row, true
		}
	}
	var zero T
	return zero, nil, false
}

func normalizeRows(rows []json.RawMessage) RawList {
	if rows == nil {
		return RawList{}
	}
	return RawList(rows)
}

// H2HStandings is the /leagues-h2h/{id}/standings/ document reduced to its
// rows. The usual shape nests them under standings.results; a bare array or
// a top-level results envelope is accepted too.
type H2HStandings struct {
	Rows RawList
}

func (s *H2HStandings) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope struct {
			Standings *RawList `json:"standings"`
		}
		if err := sonic.Unmarshal(trimmed, &envelope); err != nil {
			return err
		}
		if envelope.Standings != nil {
			s.Rows = *envelope.Standings
			return nil
		}
	}
	return s.Rows.UnmarshalJSON(trimmed)
}

func (s H2HStandings) MarshalJSON() ([]byte, error) {
	return s.Rows.MarshalJSON()
}
