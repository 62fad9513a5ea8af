package room

import (
	"errors"
	"holdem-server/internal/rng"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/texasholdem"
	"holdem-server/pkg/table"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var errHandInProgress = errors.New("a hand is already in progress")
var errNotEnoughPlayers = errors.New("at least two seated players with chips are needed")
var errRevealPending = errors.New("please wait for the showdown to finish")
var errUnknownMessage = errors.New("unknown message")

// ErrLeaveMidHand happens when a player still contesting a pot tries to leave the table
const ErrLeaveMidHand = table.UserError("you cannot leave the table in the middle of a hand")

// Dealer runs the game for a single table
// Every change to the game happens on the run loop, so only one goroutine ever touches the Round.
type Dealer struct {
	logger  logrus.FieldLogger
	pitBoss *PitBoss
	table   *table.Table
	clients map[*Client]bool
	lock    sync.RWMutex

	round        *texasholdem.Round
	participants []*texasholdem.Participant
	logMessages  []*playable.LogMessage

	// departed holds the stacks of players who left, by lowercase name, until they sit back down
	departed map[string]int

	// paused is true while the remaining events of a showdown wait out a reveal delay
	paused bool

	execInRunLoop chan func()
	close         chan bool
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(logger logrus.FieldLogger, pitBoss *PitBoss, tbl *table.Table, opts texasholdem.Options, generator rng.Generator) (*Dealer, error) {
	logger = logger.WithFields(logrus.Fields{
		"uuid": tbl.UUID,
		"name": tbl.Name,
	})

	round, err := texasholdem.NewRound(logger, opts, generator)
	if err != nil {
		return nil, err
	}

	return &Dealer{
		logger:        logger,
		pitBoss:       pitBoss,
		table:         tbl,
		clients:       make(map[*Client]bool),
		round:         round,
		departed:      make(map[string]int),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}, nil
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// exec queues fn on the run loop
// It gives up if the dealer has ended its shift.
func (d *Dealer) exec(fn func()) {
	select {
	case d.execInRunLoop <- fn:
	case <-d.close:
	}
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.exec(func() {
		d.sendPlayerData()
		d.sendGameDataTo(client)
		client.Send(newLogResponse(d.recentLogMessages()))
	})
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	if nClients > 0 {
		d.exec(d.sendPlayerData)
		return false
	}

	return true
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	d.exec(func() {
		d.handleMessage(c, msg)
	})
}

// NOTE: must only be called from the run loop
func (d *Dealer) handleMessage(c *Client, msg *playable.PayloadIn) {
	var err error
	switch msg.Action {
	case "startHand":
		err = d.startHand()
		if err == nil {
			c.Send(playable.OK(msg.Context))
		}
	case "fold", "check", "call", "bet", "raise":
		err = d.playerAction(c, msg)
	default:
		d.logger.WithField("msg", msg).Warn("unknown message")
		err = errUnknownMessage
	}

	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) startHand() error {
	if d.paused {
		return errRevealPending
	}

	if d.round.InProgress() {
		return errHandInProgress
	}

	d.syncParticipants()
	if !d.round.StartRound(d.participants, d.round.DealerSeat()) {
		return errNotEnoughPlayers
	}

	// short stacks can post all-in, leaving nobody to act preflop
	d.advanceStreets()
	d.gameChanged()
	return nil
}

// NOTE: must only be called from the run loop
func (d *Dealer) playerAction(c *Client, msg *playable.PayloadIn) error {
	if d.paused {
		return errRevealPending
	}

	resp, updateState, err := d.round.Action(c.PlayerID(), msg)
	if err != nil {
		d.logger.WithError(err).WithField("client", c.String()).Debug("could not perform action")
		return err
	}

	if resp != nil {
		resp.Context = msg.Context
		c.Send(resp)
	}

	d.advanceStreets()

	if updateState {
		d.gameChanged()
	}

	return nil
}

// unseat removes the player from the table
// A player still contesting the pot must wait for the hand to finish. Folded players may leave.
// NOTE: must only be called from the run loop
func (d *Dealer) unseat(playerID string) error {
	if d.round.InProgress() {
		if seat := d.round.SeatOf(playerID); seat != texasholdem.NoSeat && d.participants[seat].Active {
			return ErrLeaveMidHand
		}
	}

	player, err := d.table.GetPlayer(playerID)
	if err != nil {
		return err
	}

	if err := d.table.Unseat(playerID); err != nil {
		return err
	}

	for _, p := range d.participants {
		if p.PlayerID == playerID {
			d.departed[strings.ToLower(player.Name)] = p.Stack
		}
	}

	d.logger.WithField("player", player.Name).Info("player left the table")
	d.sendPlayerData()
	return nil
}

// advanceStreets deals streets until a seat must act or the hand settles
// NOTE: must only be called from the run loop
func (d *Dealer) advanceStreets() {
	for d.round.AwaitingAdvance() {
		if !d.round.TryAdvanceStreet() {
			break
		}
	}
}

// syncParticipants lines the participants up with the seated players
// Stacks carry over from hand to hand. Newly seated players get the starting stack, unless they
// left earlier under the same name, in which case they get back what they left with.
// NOTE: must only be called from the run loop, between hands
func (d *Dealer) syncParticipants() {
	existing := make(map[string]*texasholdem.Participant, len(d.participants))
	for _, p := range d.participants {
		existing[p.PlayerID] = p
	}

	players := d.table.Players()
	participants := make([]*texasholdem.Participant, len(players))
	for i, player := range players {
		p, ok := existing[player.ID]
		if !ok {
			stack, returning := d.departed[strings.ToLower(player.Name)]
			if !returning {
				stack = d.table.Options.StartingStack
			}

			delete(d.departed, strings.ToLower(player.Name))
			p = texasholdem.NewParticipant(player.ID, stack)
		}

		participants[i] = p
	}

	d.participants = participants
}

// gameChanged relays everything the Round reported to the clients
// NOTE: must only be called from the run loop
func (d *Dealer) gameChanged() {
	d.addLogMessages(d.round.LogMessages())
	d.dispatchEvents(d.round.Events())
}

// dispatchEvents broadcasts the events in order, then the new game state
// A pause event holds back the rest until its delay has passed. Actions are rejected meanwhile.
// NOTE: must only be called from the run loop
func (d *Dealer) dispatchEvents(events []texasholdem.Event) {
	for i, e := range events {
		if e.Type == texasholdem.EventPause && e.Delay > 0 {
			rest := events[i+1:]
			d.paused = true
			time.AfterFunc(e.Delay, func() {
				d.exec(func() {
					d.dispatchEvents(rest)
				})
			})

			return
		}

		d.broadcast(newEventResponse(e))
	}

	d.paused = false
	d.sendGameData()
	d.sendPlayerData()
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcast(resp *playable.Response) {
	for _, client := range d.Clients() {
		client.Send(resp)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	for _, client := range d.Clients() {
		d.sendGameDataTo(client)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameDataTo(client *Client) {
	if d.participants == nil {
		return
	}

	data, err := d.round.GetPlayerState(client.PlayerID())
	if err != nil {
		d.logger.WithError(err).Error("could not get player state")
		return
	}

	client.Send(data)
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendPlayerData() {
	connected := make(map[string]bool)
	for _, client := range d.Clients() {
		connected[client.PlayerID()] = true
	}

	stacks := make(map[string]int, len(d.participants))
	for _, p := range d.participants {
		stacks[p.PlayerID] = p.Stack
	}

	players := d.table.Players()
	csPlayers := make([]*clientStatePlayer, len(players))
	for i, player := range players {
		stack, ok := stacks[player.ID]
		if !ok {
			stack = d.table.Options.StartingStack
		}

		csPlayers[i] = &clientStatePlayer{
			Player:      player,
			Stack:       stack,
			IsConnected: connected[player.ID],
		}
	}

	d.broadcast(&playable.Response{
		Key:  "clientState",
		Data: csPlayers,
	})
}
