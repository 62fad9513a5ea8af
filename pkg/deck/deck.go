package deck

import (
	"holdem-server/internal/rng"
)

// Size is the number of cards in a standard deck
const Size = 52

// Deck represents a playing deck
// Cards are drawn from the end of the slice.
type Deck struct {
	Cards []*Card `json:"cards"`
	rng   rng.Generator

	// exhaustions counts how many times Draw() had to reset an empty deck
	exhaustions int
}

// New returns a new, shuffled deck of cards
// If generator is nil, a crypto-backed generator is used.
func New(generator rng.Generator) *Deck {
	if generator == nil {
		generator = rng.Crypto{}
	}

	d := &Deck{
		rng: generator,
	}

	d.Reset()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, Size)
	for _, suit := range Suits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Reset repopulates the deck with all 52 cards and shuffles them
func (d *Deck) Reset() {
	d.buildDeck()
	d.shuffle()
}

// shuffle is a Fisher-Yates shuffle
func (d *Deck) shuffle() {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw removes and returns the last card in the deck
// An empty deck is reset and reshuffled before drawing. This should never happen at a
// realistically sized table; Exhaustions() reports how often it did.
func (d *Deck) Draw() *Card {
	if len(d.Cards) == 0 {
		d.exhaustions++
		d.Reset()
	}

	n := len(d.Cards) - 1
	card := d.Cards[n]
	d.Cards = d.Cards[:n]

	return card
}

// Exhaustions returns the number of times the deck ran out of cards
func (d *Deck) Exhaustions() int {
	return d.exhaustions
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
