package texasholdem

import (
	"fmt"
	"holdem-server/internal/rng"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable/poker/action"
	"holdem-server/pkg/playable/poker/handanalyzer"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func fixedBlinds(small, big int) Options {
	return Options{
		SmallBlind: small,
		BigBlind:   big,
	}
}

func setupParticipants(stacks ...int) []*Participant {
	p := make([]*Participant, len(stacks))
	for i, stack := range stacks {
		p[i] = NewParticipant(fmt.Sprintf("p%d", i), stack)
	}

	return p
}

func setupNewRound(opts Options) *Round {
	r, err := NewRound(logrus.StandardLogger(), opts, rng.Seeded(42))
	if err != nil {
		panic(err)
	}

	return r
}

// setupHand starts a hand with the dealer on seat 0
func setupHand(t *testing.T, opts Options, stacks ...int) (*Round, []*Participant) {
	t.Helper()

	r := setupNewRound(opts)
	players := setupParticipants(stacks...)
	if !r.StartRound(players, 0) {
		t.Fatal("could not start the hand")
	}

	return r, players
}

// panicShowdown fails the test if the evaluator is consulted
func panicShowdown(_ []handanalyzer.Contender, _ deck.Hand) []*handanalyzer.HandRank {
	panic("showdown should not be evaluated")
}

// stubShowdown ranks each contender by the score given for their ID
func stubShowdown(scores map[string]int) showdownFunc {
	return func(contenders []handanalyzer.Contender, _ deck.Hand) []*handanalyzer.HandRank {
		ranks := make([]*handanalyzer.HandRank, len(contenders))
		for i, c := range contenders {
			ranks[i] = &handanalyzer.HandRank{
				Hand:     handanalyzer.HighCard,
				Tiebreak: []int{scores[c.ID()]},
				Owner:    c,
			}
		}

		return ranks
	}
}

func assertAction(t *testing.T, r *Round, seat int, a action.Action, msgAndArgs ...interface{}) {
	t.Helper()
	assertActionAndAmount(t, r, seat, a, 0, msgAndArgs...)
}

func assertActionAndAmount(t *testing.T, r *Round, seat int, a action.Action, amount int, msgAndArgs ...interface{}) {
	t.Helper()
	assert.NoError(t, r.ApplyAction(seat, a, amount), msgAndArgs...)
}

func assertActionFailedAndAmount(t *testing.T, r *Round, seat int, a action.Action, amount int, expectedErr string, msgAndArgs ...interface{}) {
	t.Helper()
	assert.EqualError(t, r.ApplyAction(seat, a, amount), expectedErr, msgAndArgs...)
}

// checkAround checks (or calls) for every seat until the street closes
func checkAround(t *testing.T, r *Round) {
	t.Helper()

	for r.ActingSeat() != NoSeat {
		assertAction(t, r, r.ActingSeat(), action.Check)
	}
}

// chipsInPlay is every chip on the table that has not been dropped
func chipsInPlay(r *Round, players []*Participant) int {
	total := r.Pot()
	for _, p := range players {
		total += p.Stack
	}

	return total
}

func eventTypes(events []Event) []EventType {
	types := make([]EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}

	return types
}
