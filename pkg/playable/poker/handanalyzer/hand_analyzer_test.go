package handanalyzer

import (
	"holdem-server/pkg/deck"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testOwner struct {
	id    string
	cards deck.Hand
}

func (t *testOwner) ID() string {
	return t.id
}

func (t *testOwner) HoleCards() deck.Hand {
	return t.cards
}

func eval(s string) *HandRank {
	return Evaluate(deck.CardsFromString(s), nil)
}

func assertHand(t *testing.T, cards string, hand Hand, tiebreak ...int) {
	t.Helper()
	hr := eval(cards)
	assert.Equal(t, hand, hr.Hand, cards)
	if len(tiebreak) == 0 {
		assert.Empty(t, hr.Tiebreak, cards)
		return
	}

	assert.Equal(t, tiebreak, hr.Tiebreak, cards)
}

func TestEvaluate_categories(t *testing.T) {
	assertHand(t, "14c,2c,5c,8d,3h", HighCard, 14, 8, 5, 3, 2)
	assertHand(t, "2c,5c,2h,9h,6d", OnePair, 2, 9, 6, 5)
	assertHand(t, "5c,5d,6h,6d,3h", TwoPair, 6, 5, 3)
	assertHand(t, "7c,7d,7h,13d,3h", ThreeOfAKind, 7, 13, 3)
	assertHand(t, "9c,10d,11h,12d,13h", Straight, 13)
	assertHand(t, "2c,9c,4c,11c,6c", Flush, 11, 9, 6, 4, 2)
	assertHand(t, "3c,3d,3h,4c,4d", FullHouse, 3, 4)
	assertHand(t, "2c,3c,3d,3h,3s", FourOfAKind, 3, 2)
	assertHand(t, "10s,11s,12s,13s,14s", StraightFlush, 14)
	assertHand(t, "14d,2d,3d,4d,5d", StraightFlush, 5)
}

func TestEvaluate_bestOfSeven(t *testing.T) {
	// two trips make a full house using the better trips
	assertHand(t, "3c,3d,3h,4c,4d,4h,5c", FullHouse, 4, 3)

	// a flush outranks the straight that is also available
	assertHand(t, "2c,3c,4c,5d,6c,9c,14h", Flush, 9, 6, 4, 3, 2)

	// three pairs, the lowest pair is discarded and the kicker is the best remaining card
	assertHand(t, "2c,2d,5h,5s,9c,9d,3h", TwoPair, 9, 5, 3)

	// six card run, the highest straight wins
	assertHand(t, "2c,3d,4h,5s,6c,7d,13h", Straight, 7)

	// quads pick the highest kicker
	assertHand(t, "8c,8d,8h,8s,2c,12d,5h", FourOfAKind, 8, 12)

	hr := eval("13s,13d,14s,12d,11c,10h,2s")
	assert.Equal(t, Straight, hr.Hand)
	assert.Len(t, hr.Cards, 5)
}

func TestEvaluate_wheel(t *testing.T) {
	a := assert.New(t)

	wheel := eval("14s,2d,3c,4h,5s")
	a.Equal(Straight, wheel.Hand)
	a.Equal([]int{5}, wheel.Tiebreak)

	sixHigh := eval("6c,5d,4s,3h,2c")
	a.Equal(Straight, sixHigh.Hand)
	a.Equal([]int{6}, sixHigh.Tiebreak)

	a.Equal(-1, wheel.Compare(sixHigh))
	a.Equal(1, sixHigh.Compare(wheel))

	// beats every non-straight, including trips of aces
	a.Equal(1, wheel.Compare(eval("14c,14d,14h,13s,12s")))
	a.Equal(1, wheel.Compare(eval("14c,13d,12h,11s,9s")))

	// ace-high never wraps around
	a.Equal(HighCard, eval("12s,13d,14c,2h,3s").Hand)
}

func TestEvaluate_fewerThanFiveCards(t *testing.T) {
	assertHand(t, "13s,13d", OnePair, 13)
	assertHand(t, "13s,2d", HighCard, 13, 2)
	assertHand(t, "13s,13d,13c,2h", ThreeOfAKind, 13, 2)
	assertHand(t, "", HighCard)
}

func TestHandRank_Compare(t *testing.T) {
	a := assert.New(t)

	pair := &HandRank{Hand: OnePair, Tiebreak: []int{10, 9}}
	a.Equal(1, pair.Compare(&HandRank{Hand: HighCard, Tiebreak: []int{14, 13}}))
	a.Equal(0, pair.Compare(&HandRank{Hand: OnePair, Tiebreak: []int{10, 9}}))
	a.Equal(-1, pair.Compare(&HandRank{Hand: OnePair, Tiebreak: []int{10, 9, 2}}), "missing positions count as zero")
	a.Equal(0, pair.Compare(&HandRank{Hand: OnePair, Tiebreak: []int{10, 9, 0}}))
	a.Equal(1, pair.Compare(nil))

	a.Equal("Pair (10, 9)", pair.String())
}

func TestHand_String(t *testing.T) {
	assert.Equal(t, "Straight flush", StraightFlush.String())
	assert.Equal(t, "High card", HighCard.String())
	assert.Panics(t, func() {
		_ = Hand(99).String()
	})

	b, err := FullHouse.MarshalJSON()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":6,"name":"Full house"}`, string(b))
}

func TestWinners_split(t *testing.T) {
	a := assert.New(t)

	board := deck.CardsFromString("14s,12d,11c,10h,2s")
	p1 := &testOwner{id: "p1", cards: deck.CardsFromString("13s,13d")}
	p2 := &testOwner{id: "p2", cards: deck.CardsFromString("13c,13h")}

	ranks := Rank([]Contender{p1, p2}, board)
	a.Len(ranks, 2)
	a.Equal(ranks[0].Hand, ranks[1].Hand)
	a.Equal(0, ranks[0].Compare(ranks[1]))

	winners := Winners(ranks)
	if a.Len(winners, 2) {
		a.Equal("p1", winners[0].Owner.ID())
		a.Equal("p2", winners[1].Owner.ID())
	}

	// the board is not modified
	a.Equal("14s,12d,11c,10h,2s", deck.CardsToString(board))
}

func TestWinners_single(t *testing.T) {
	a := assert.New(t)

	board := deck.CardsFromString("14s,12d,7c,4h,2s")
	p1 := &testOwner{id: "p1", cards: deck.CardsFromString("13s,13d")}
	p2 := &testOwner{id: "p2", cards: deck.CardsFromString("14c,3h")}
	p3 := &testOwner{id: "p3", cards: deck.CardsFromString("5c,3h")}

	winners := Winners(Rank([]Contender{p1, p2, p3}, board))
	if a.Len(winners, 1) {
		a.Equal("p3", winners[0].Owner.ID())
		a.Equal(Straight, winners[0].Hand)
		a.Equal([]int{5}, winners[0].Tiebreak, "wheel")
	}

	a.Empty(Winners(nil))
}
