package potmanager

import (
	"encoding/json"
	"errors"
)

// ErrNegativeAmount is returned when chips would be taken out of the pot
var ErrNegativeAmount = errors.New("cannot add a negative amount to the pot")

// Pot is the single shared pot for a hand
// All chips committed during a hand go into one pot; there are no side pots.
type Pot struct {
	amount int
}

// Payout is the result of paying a pot out to its winners
type Payout struct {
	// Amounts is keyed by participant ID
	Amounts map[string]int `json:"amounts"`
	// Dropped are the odd chips that could not be split evenly
	Dropped int `json:"dropped"`
}

// Add moves chips into the pot
func (p *Pot) Add(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}

	p.amount += amount
	return nil
}

// Amount returns the number of chips in the pot
func (p *Pot) Amount() int {
	return p.amount
}

// Reset empties the pot
func (p *Pot) Reset() {
	p.amount = 0
}

// PayWinners splits the pot evenly between the winners and empties it
// Any remainder from the integer division is dropped.
func (p *Pot) PayWinners(winners []Participant) Payout {
	payout := Payout{
		Amounts: make(map[string]int, len(winners)),
	}

	if len(winners) == 0 {
		return payout
	}

	share := p.amount / len(winners)
	for _, winner := range winners {
		winner.AdjustBalance(share)
		payout.Amounts[winner.ID()] += share
	}

	payout.Dropped = p.amount - share*len(winners)
	p.amount = 0

	return payout
}

// MarshalJSON provides custom marshalling
func (p Pot) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount int `json:"amount"`
	}{
		Amount: p.amount,
	})
}
