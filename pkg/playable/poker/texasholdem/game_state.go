package texasholdem

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable/poker/action"
	"holdem-server/pkg/playable/poker/handanalyzer"
)

// ParticipantState is one seat as seen by a particular viewer
type ParticipantState struct {
	PlayerID string    `json:"playerId"`
	Seat     int       `json:"seat"`
	Stack    int       `json:"stack"`
	Bet      int       `json:"currentBet"`
	Active   bool      `json:"active"`
	AllIn    bool      `json:"allIn"`
	Cards    deck.Hand `json:"cards"`
	Hand     string    `json:"hand,omitempty"`
}

// GameState is the table as seen by a particular viewer
type GameState struct {
	Street       Street              `json:"street"`
	DealerSeat   int                 `json:"dealerSeat"`
	CurrentTurn  string              `json:"currentTurn"`
	Pot          int                 `json:"pot"`
	CurrentBet   int                 `json:"currentBet"`
	Board        deck.Hand           `json:"board"`
	HandsPlayed  int                 `json:"handsPlayed"`
	Participants []*ParticipantState `json:"participants"`
	Actions      []action.Action     `json:"actions"`
	Result       *Result             `json:"result"`
}

// GetGameState returns the state of the table for the viewer
// Hole cards are only shown to their owner, and to everybody once they are revealed at a showdown.
func (r *Round) GetGameState(viewerID string) *GameState {
	participants := make([]*ParticipantState, len(r.players))
	for i, p := range r.players {
		ps := &ParticipantState{
			PlayerID: p.PlayerID,
			Seat:     i,
			Stack:    p.Stack,
			Bet:      p.Bet,
			Active:   p.Active,
			AllIn:    p.IsAllIn(),
		}

		if p.PlayerID == viewerID || r.isRevealed(p) {
			ps.Cards = p.Cards
			if len(p.Cards) > 0 {
				ps.Hand = handanalyzer.Evaluate(append(p.Cards.Clone(), r.board...), p).Hand.String()
			}
		}

		participants[i] = ps
	}

	return &GameState{
		Street:       r.street,
		DealerSeat:   r.dealerSeat,
		CurrentTurn:  r.CurrentActorID(),
		Pot:          r.pot.Amount(),
		CurrentBet:   r.currentBet,
		Board:        r.board.Clone(),
		HandsPlayed:  r.handsPlayed,
		Participants: participants,
		Actions:      r.ActionsForParticipant(viewerID),
		Result:       r.result,
	}
}

// isRevealed returns true if the player's cards were shown down
func (r *Round) isRevealed(p *Participant) bool {
	if r.result == nil || r.result.Uncontested {
		return false
	}

	_, ok := r.result.Hands[p.PlayerID]
	return ok
}
