package texasholdem

import (
	"holdem-server/pkg/deck"
)

// Participant is a seated player as seen by a Round
// During a hand the Round mutates the participant in place. Between hands the driver owns it
// and may change the stack or replace the participant entirely.
type Participant struct {
	PlayerID string

	// Stack is the chips the player has behind
	Stack int
	// Bet is the chips committed on the current street
	Bet int
	// Active is true while the player is contesting the pot
	Active bool
	// Cards are the player's hole cards
	Cards deck.Hand
}

// NewParticipant returns a participant with the starting stack
func NewParticipant(id string, stack int) *Participant {
	return &Participant{
		PlayerID: id,
		Stack:    stack,
	}
}

// IsAllIn returns true if the player is still in the hand with no chips behind
func (p *Participant) IsAllIn() bool {
	return p.Active && p.Stack == 0
}

// canAct returns true if the player can still be asked to make a decision
func (p *Participant) canAct() bool {
	return p.Active && p.Stack > 0
}

// commit moves up to amount chips from the stack into the current bet
// The move is capped at the stack, which puts the player all-in. The chips moved are returned.
func (p *Participant) commit(amount int) int {
	if amount > p.Stack {
		amount = p.Stack
	}

	if amount < 0 {
		amount = 0
	}

	p.Stack -= amount
	p.Bet += amount
	return amount
}

// handanalyzer.Contender and potmanager.Participant

// ID returns the player ID
func (p *Participant) ID() string {
	return p.PlayerID
}

// HoleCards returns the player's hole cards
func (p *Participant) HoleCards() deck.Hand {
	return p.Cards
}

// AdjustBalance credits (or debits) the stack
func (p *Participant) AdjustBalance(amount int) {
	p.Stack += amount
}
