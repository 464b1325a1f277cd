package fpl

const UnknownPlayerName = "Unknown"

// Position ids as used by element_type.
const (
	PositionGoalkeeper = 1
	PositionDefender   = 2
	PositionMidfielder = 3
	PositionForward    = 4
)

var positionCodes = map[string]int{
	"GKP": PositionGoalkeeper,
	"DEF": PositionDefender,
	"MID": PositionMidfielder,
	"FWD": PositionForward,
}

// PositionFromCode maps GKP/DEF/MID/FWD to an element_type id.
func PositionFromCode(code string) (int, bool) {
	id, ok := positionCodes[code]
	return id, ok
}

// PlayerRef is the display data joined onto picks and transfers.
type PlayerRef struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Club     string `json:"club"`
}

// Index answers id lookups over one bootstrap snapshot.
type Index struct {
	players   map[int]Player
	teams     map[int]Team
	positions map[int]ElementType
}

func NewIndex(b Bootstrap) *Index {
	idx := &Index{
		players:   make(map[int]Player, len(b.Elements)),
		teams:     make(map[int]Team, len(b.Teams)),
		positions: make(map[int]ElementType, len(b.ElementTypes)),
	}
	for _, p := range b.Elements {
		idx.players[p.ID] = p
	}
	for _, t := range b.Teams {
		idx.teams[t.ID] = t
	}
	for _, et := range b.ElementTypes {
		idx.positions[et.ID] = et
	}
	return idx
}

func (i *Index) Player(id int) (Player, bool) {
	if i == nil {
		return Player{}, false
	}
	p, ok := i.players[id]
	return p, ok
}

func (i *Index) Team(id int) (Team, bool) {
	if i == nil {
		return Team{}, false
	}
	t, ok := i.teams[id]
	return t, ok
}

func (i *Index) Position(id int) (ElementType, bool) {
	if i == nil {
		return ElementType{}, false
	}
	et, ok := i.positions[id]
	return et, ok
}

// Ref resolves a player id to display data. Dangling ids resolve to
// "Unknown" with empty position and club.
func (i *Index) Ref(id int) PlayerRef {
	ref := PlayerRef{ID: id, Name: UnknownPlayerName}
	p, ok := i.Player(id)
	if !ok {
		return ref
	}
	if p.WebName != "" {
		ref.Name = p.WebName
	}
	if et, ok := i.Position(p.ElementType); ok {
		ref.Position = et.SingularNameShort
	}
	if t, ok := i.Team(p.Team); ok {
		ref.Club = t.ShortName
	}
	return ref
}

// PlayerName returns the web name or "Unknown".
func (i *Index) PlayerName(id int) string {
	return i.Ref(id).Name
}

// CurrentEvent returns the event flagged current, falling back to the next one.
func (b Bootstrap) CurrentEvent() (Event, bool) {
	for _, e := range b.Events {
		if e.IsCurrent {
			return e, true
		}
	}
	for _, e := range b.Events {
		if e.IsNext {
			return e, true
		}
	}
	return Event{}, false
}

// EventByID returns the event with the given id.
func (b Bootstrap) EventByID(id int) (Event, bool) {
	for _, e := range b.Events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}
