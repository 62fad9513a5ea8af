package room

import (
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/texasholdem"
	"holdem-server/pkg/table"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewDealer(t *testing.T) {
	tbl, _ := setupTable()
	d, err := NewDealer(logrus.StandardLogger(), nil, tbl, texasholdem.Options{}, nil)
	assert.EqualError(t, err, "small blind must be > 0")
	assert.Nil(t, d)
}

func TestDealer_AddClient(t *testing.T) {
	d, clients := setupDealer(t, 0, "Alice", "Bob")

	assert.Len(t, d.Clients(), 2)
	assert.Same(t, d, clients[0].dealer)

	c := NewClient(nil, &table.Player{ID: "watcher", Name: "watcher"}, d.table)
	d.AddClient(c)
	drainRunLoop(d)

	responses := drainClient(c)
	clientState := findResponse(responses, "clientState", "")
	if assert.NotNil(t, clientState) {
		players := clientState.Data.([]*clientStatePlayer)
		assert.Len(t, players, 2)
		assert.True(t, players[0].IsConnected)
		assert.Equal(t, 1000, players[0].Stack)
	}

	assert.NotNil(t, findResponse(responses, "log", ""))
	assert.Nil(t, findResponse(responses, "game", ""), "no hand has been dealt")

	assert.False(t, d.RemoveClient(c))
	assert.False(t, d.RemoveClient(clients[0]))
	assert.True(t, d.RemoveClient(clients[1]))
}

func TestDealer_playHand(t *testing.T) {
	a := assert.New(t)

	d, clients := setupDealer(t, 0, "Alice", "Bob")
	alice, bob := clients[0], clients[1]

	d.handleMessage(bob, message("startHand"))
	a.Equal(playable.OK("ctx-startHand"), findResponse(drainClient(bob), "status", "OK"))

	responses := drainClient(alice)
	turn := findResponse(responses, "event", "turnChanged")
	if a.NotNil(turn) {
		a.Equal(bob.PlayerID(), turn.Data.(texasholdem.Event).PlayerID, "small blind acts first heads up")
	}

	game := findResponse(responses, "game", "")
	if a.NotNil(game) {
		gs := game.Data.(*texasholdem.GameState)
		a.Len(gs.Participants[0].Cards, 2)
		a.Nil(gs.Participants[1].Cards)
	}

	a.NotNil(findResponse(responses, "log", ""))

	d.handleMessage(bob, message("startHand"))
	a.Equal(errHandInProgress.Error(), findResponse(drainClient(bob), "error", "").Value)

	d.handleMessage(alice, message("call"))
	errResp := findResponse(drainClient(alice), "error", "")
	if a.NotNil(errResp) {
		a.Equal("it is not your turn", errResp.Value)
		a.Equal("ctx-call", errResp.Context)
	}

	d.handleMessage(bob, message("fold"))
	a.NotNil(findResponse(drainClient(bob), "status", "OK"))

	responses = drainClient(alice)
	settled := findResponse(responses, "event", "roundSettled")
	if a.NotNil(settled) {
		a.Equal([]string{alice.PlayerID()}, settled.Data.(texasholdem.Event).Winners)
	}

	a.NotNil(findResponse(responses, "event", "paused"))
	a.Equal(1010, d.participants[0].Stack)
	a.Equal(990, d.participants[1].Stack)
	a.False(d.paused)

	// the button moves, so Alice is the small blind this time
	d.handleMessage(bob, message("startHand"))
	a.NotNil(findResponse(drainClient(bob), "status", "OK"))
	a.Equal(alice.PlayerID(), d.round.CurrentActorID())
	a.Equal(1000, d.participants[0].Stack)
}

func TestDealer_revealDelay(t *testing.T) {
	a := assert.New(t)

	d, clients := setupDealer(t, time.Millisecond*10, "Alice", "Bob")
	alice, bob := clients[0], clients[1]

	d.handleMessage(bob, message("startHand"))
	d.handleMessage(bob, message("fold"))
	drainClient(bob)

	a.True(d.paused)
	a.Nil(findResponse(drainClient(alice), "event", "roundSettled"), "held back until the pause is over")

	d.handleMessage(bob, message("startHand"))
	a.Equal(errRevealPending.Error(), findResponse(drainClient(bob), "error", "").Value)

	waitForRunLoop(t, d)
	a.True(d.paused, "second pause after the reveal")
	a.NotNil(findResponse(drainClient(alice), "event", "roundSettled"))

	waitForRunLoop(t, d)
	a.False(d.paused)
	responses := drainClient(alice)
	a.NotNil(findResponse(responses, "event", "paused"))
	a.NotNil(findResponse(responses, "game", ""))

	d.handleMessage(bob, message("startHand"))
	a.NotNil(findResponse(drainClient(bob), "status", "OK"))
}

func TestDealer_notEnoughPlayers(t *testing.T) {
	d, clients := setupDealer(t, 0, "Alice")

	d.handleMessage(clients[0], message("startHand"))
	resp := findResponse(drainClient(clients[0]), "error", "")
	if assert.NotNil(t, resp) {
		assert.Equal(t, "at least two seated players with chips are needed", resp.Value)
	}
}

func TestDealer_unknownMessage(t *testing.T) {
	d, clients := setupDealer(t, 0, "Alice", "Bob")

	d.handleMessage(clients[0], message("dance"))
	resp := findResponse(drainClient(clients[0]), "error", "")
	if assert.NotNil(t, resp) {
		assert.Equal(t, "unknown message", resp.Value)
	}
}

func TestDealer_syncParticipants(t *testing.T) {
	a := assert.New(t)

	d, _ := setupDealer(t, 0, "Alice", "Bob")
	d.syncParticipants()
	a.Len(d.participants, 2)
	d.participants[0].Stack = 500

	carol, _ := d.table.Seat("Carol")
	a.NoError(d.table.Unseat(d.participants[1].PlayerID))

	d.syncParticipants()
	if a.Len(d.participants, 2) {
		a.Equal(500, d.participants[0].Stack)
		a.Equal(carol.ID, d.participants[1].PlayerID)
		a.Equal(1000, d.participants[1].Stack)
	}
}

func TestDealer_runLoop(t *testing.T) {
	d, clients := setupDealer(t, 0, "Alice", "Bob")
	d.StartShift()
	defer d.EndShift()

	clients[0].ReceivedMessage(message("startHand"))

	select {
	case msg := <-clients[0].SendChan():
		assert.NotNil(t, msg)
	case <-time.After(time.Second):
		t.Fatal("no response from the run loop")
	}
}

func TestDealer_startHand_shortBlindAllIn(t *testing.T) {
	a := assert.New(t)

	d, clients := setupDealer(t, 0, "Alice", "Bob")
	alice, bob := clients[0], clients[1]

	// Bob is the small blind and only has the blind behind
	d.syncParticipants()
	d.participants[1].Stack = 10

	d.handleMessage(bob, message("startHand"))
	a.NotNil(findResponse(drainClient(bob), "status", "OK"))

	a.False(d.round.InProgress(), "nobody can act, so the board is run out")
	if a.NotNil(d.round.Result()) {
		a.Equal(1010, d.participants[0].Stack+d.participants[1].Stack+d.round.Result().Dropped)
	}

	a.Len(d.round.Board(), 5)
	a.NotNil(findResponse(drainClient(alice), "event", "roundSettled"))

	d.handleMessage(alice, message("startHand"))
	if resp := findResponse(drainClient(alice), "error", ""); resp != nil {
		a.NotEqual(errHandInProgress.Error(), resp.Value)
	}
}

func TestDealer_unseat(t *testing.T) {
	a := assert.New(t)

	d, clients := setupDealer(t, 0, "Alice", "Bob", "Carol")
	alice, bob := clients[0], clients[1]

	d.handleMessage(alice, message("startHand"))
	a.Equal(alice.PlayerID(), d.round.CurrentActorID())

	d.handleMessage(alice, message("fold"))
	a.Equal(bob.PlayerID(), d.round.CurrentActorID())

	a.EqualError(d.unseat(bob.PlayerID()), ErrLeaveMidHand.Error())
	a.Len(d.table.Players(), 3)

	a.NoError(d.unseat(alice.PlayerID()), "folded players may leave")
	a.Len(d.table.Players(), 2)
	a.EqualError(d.unseat(alice.PlayerID()), table.ErrPlayerNotAtTable.Error())

	d.handleMessage(bob, message("fold"))
	a.False(d.round.InProgress())
	a.NoError(d.unseat(bob.PlayerID()))
	a.Len(d.table.Players(), 1)

	// coming back under the same name restores the stack
	_, err := d.table.Seat("bob")
	a.NoError(err)
	_, err = d.table.Seat("Dave")
	a.NoError(err)

	d.syncParticipants()
	if a.Len(d.participants, 3) {
		a.Equal(1010, d.participants[0].Stack, "Carol took the blinds")
		a.Equal(990, d.participants[1].Stack)
		a.Equal(1000, d.participants[2].Stack)
	}

	a.Empty(d.departed["bob"])
	a.Equal(1000, d.departed["alice"])
}
