package texasholdem

import (
	"encoding/json"
	"fmt"
)

// Street is a betting phase of a hand
type Street int

// constants for Street
const (
	Preflop Street = iota
	Flop
	Turn
	River
	Settled
)

// streetTransitions is the only way a hand moves forward
var streetTransitions = map[Street]Street{
	Preflop: Flop,
	Flop:    Turn,
	Turn:    River,
	River:   Settled,
}

// communityCards is how many board cards are dealt when entering a street
var communityCards = map[Street]int{
	Flop:  3,
	Turn:  1,
	River: 1,
}

// Next returns the street that follows s
// Settled is terminal; a new hand starts again at Preflop.
func (s Street) Next() Street {
	if next, ok := streetTransitions[s]; ok {
		return next
	}

	return Settled
}

// CommunityCards returns the number of board cards dealt when the street begins
func (s Street) CommunityCards() int {
	return communityCards[s]
}

// IsBetting returns true if players act on this street
func (s Street) IsBetting() bool {
	return s != Settled
}

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Settled:
		return "settled"
	}

	panic(fmt.Sprintf("unknown street: %d", int(s)))
}

// MarshalJSON encodes JSON
func (s Street) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}
