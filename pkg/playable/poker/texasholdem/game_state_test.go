package texasholdem

import (
	"encoding/json"
	"holdem-server/pkg/playable/poker/action"
	"holdem-server/pkg/snapshot"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound_GetGameState(t *testing.T) {
	a := assert.New(t)

	r, players := setupHand(t, fixedBlinds(10, 20), 1000, 1000, 1000)

	gs := r.GetGameState("p0")
	a.Equal(Preflop, gs.Street)
	a.Equal("p0", gs.CurrentTurn)
	a.Equal(30, gs.Pot)
	a.Equal(20, gs.CurrentBet)
	a.Equal([]action.Action{action.Call, action.Raise, action.Fold}, gs.Actions)
	a.Nil(gs.Result)
	a.Equal(players[0].Cards, gs.Participants[0].Cards)
	a.NotEmpty(gs.Participants[0].Hand)
	a.Nil(gs.Participants[1].Cards)
	a.Empty(gs.Participants[1].Hand)
	a.Equal(20, gs.Participants[2].Bet)

	gs = r.GetGameState("p1")
	a.Nil(gs.Actions)
	a.Nil(gs.Participants[0].Cards)
	a.Equal(players[1].Cards, gs.Participants[1].Cards)

	gs = r.GetGameState("")
	for _, p := range gs.Participants {
		a.Nil(p.Cards)
	}

	_, err := json.Marshal(gs)
	a.NoError(err)
}

func TestRound_GetGameState_uncontested(t *testing.T) {
	a := assert.New(t)

	r, _ := setupHand(t, fixedBlinds(10, 20), 1000, 1000, 1000)
	assertAction(t, r, 0, action.Fold)
	assertAction(t, r, 1, action.Fold)
	a.True(r.TryAdvanceStreet())

	gs := r.GetGameState("p0")
	a.Equal(Settled, gs.Street)
	a.NotNil(gs.Result)
	a.NotNil(gs.Participants[0].Cards)
	a.Nil(gs.Participants[1].Cards, "folded hands stay hidden")
	a.Nil(gs.Participants[2].Cards, "uncontested winner does not show")
}

func TestRound_GetGameState_showdown(t *testing.T) {
	a := assert.New(t)

	r, players := setupHand(t, fixedBlinds(10, 20), 1000, 1000, 1000)
	assertAction(t, r, 0, action.Fold)
	assertAction(t, r, 1, action.Call)
	playToShowdown(t, r)

	gs := r.GetGameState("p0")
	a.Nil(gs.Actions)
	a.Equal(players[0].Cards, gs.Participants[0].Cards)
	a.Equal(players[1].Cards, gs.Participants[1].Cards)
	a.Equal(players[2].Cards, gs.Participants[2].Cards)
	a.NotEmpty(gs.Participants[2].Hand)
}

func TestRound_GetGameState_snapshot(t *testing.T) {
	r, _ := setupHand(t, fixedBlinds(10, 20), 1000, 1000, 1000)
	assertAction(t, r, 0, action.Call)
	assertAction(t, r, 1, action.Call)
	assert.True(t, r.TryAdvanceStreet())

	snapshot.Match(t, r.GetGameState("p1"))
}
