package texasholdem

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable/poker/handanalyzer"
	"time"
)

// EventType identifies what happened in a Round
type EventType string

// event types relayed to the transport
const (
	EventStreetAdvanced EventType = "streetAdvanced"
	EventTurnChanged    EventType = "turnChanged"
	EventRoundSettled   EventType = "roundSettled"
	EventPause          EventType = "pause"
	EventPaused         EventType = "paused"
)

// Event is something a Round reports to its driver
// The Round only fills the fields that apply to the event type. How an event is encoded and
// delivered is up to the transport.
type Event struct {
	Type       EventType                         `json:"type"`
	Street     Street                            `json:"street"`
	Board      deck.Hand                         `json:"board,omitempty"`
	Pot        int                               `json:"pot"`
	PlayerID   string                            `json:"playerId,omitempty"`
	CurrentBet int                               `json:"currentBet"`
	Winners    []string                          `json:"winners,omitempty"`
	Payouts    map[string]int                    `json:"payouts,omitempty"`
	Hands      map[string]*handanalyzer.HandRank `json:"hands,omitempty"`

	// Delay is how long a pause should last
	Delay time.Duration `json:"delay,omitempty"`
}

func (r *Round) emit(e Event) {
	e.Street = r.street
	r.events = append(r.events, e)
}

// Events returns and clears the events emitted since the last call
func (r *Round) Events() []Event {
	events := r.events
	r.events = nil
	return events
}
