package room

import (
	"holdem-server/internal/rng"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/texasholdem"
	"holdem-server/pkg/table"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func testOptions(delay time.Duration) texasholdem.Options {
	return texasholdem.Options{
		SmallBlind:  10,
		BigBlind:    20,
		RevealDelay: delay,
	}
}

func setupTable(names ...string) (*table.Table, []*table.Player) {
	store := table.NewStore(table.Options{MaxPlayers: 10, StartingStack: 1000})
	tbl, err := store.CreateTable("test")
	if err != nil {
		panic(err)
	}

	players := make([]*table.Player, len(names))
	for i, name := range names {
		players[i], err = tbl.Seat(name)
		if err != nil {
			panic(err)
		}
	}

	return tbl, players
}

// setupDealer creates a dealer with a client for every seated player
// The run loop is not started; tests drive it with drainRunLoop.
func setupDealer(t *testing.T, delay time.Duration, names ...string) (*Dealer, []*Client) {
	t.Helper()

	tbl, players := setupTable(names...)
	d, err := NewDealer(logrus.StandardLogger(), nil, tbl, testOptions(delay), rng.Seeded(1))
	if err != nil {
		t.Fatal(err)
	}

	clients := make([]*Client, len(players))
	for i, p := range players {
		clients[i] = NewClient(nil, p, tbl)
		d.AddClient(clients[i])
	}

	drainRunLoop(d)
	for _, c := range clients {
		drainClient(c)
	}

	return d, clients
}

// drainRunLoop runs everything queued on the dealer's run loop
func drainRunLoop(d *Dealer) {
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		default:
			return
		}
	}
}

// waitForRunLoop runs the next function queued on the run loop
func waitForRunLoop(t *testing.T, d *Dealer) {
	t.Helper()

	select {
	case fn := <-d.execInRunLoop:
		fn()
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the run loop")
	}
}

// drainClient returns every response sent to the client
func drainClient(c *Client) []*playable.Response {
	var responses []*playable.Response
	for {
		select {
		case msg := <-c.send:
			if resp, ok := msg.(*playable.Response); ok {
				responses = append(responses, resp)
			}
		default:
			return responses
		}
	}
}

func findResponse(responses []*playable.Response, key, value string) *playable.Response {
	for _, r := range responses {
		if r.Key == key && (value == "" || r.Value == value) {
			return r
		}
	}

	return nil
}

func message(action string, amount ...int) *playable.PayloadIn {
	msg := &playable.PayloadIn{
		Action:         action,
		AdditionalData: playable.AdditionalData{},
		Context:        "ctx-" + action,
	}

	if len(amount) == 1 {
		msg.AdditionalData["amount"] = float64(amount[0])
	}

	return msg
}
