package room

import (
	"context"
	"holdem-server/pkg/playable/poker/texasholdem"
	"holdem-server/pkg/table"

	"github.com/sirupsen/logrus"
)

// PitBoss is responsible for dispatching players to games
type PitBoss struct {
	logger     logrus.FieldLogger
	options    texasholdem.Options
	dealers    map[string]*Dealer
	connect    chan *Client
	disconnect chan *Client
	unseat     chan *unseatRequest
}

type unseatRequest struct {
	table    *table.Table
	playerID string
	result   chan error
}

// NewPitBoss returns a new dispatch object
// Every table it opens plays with opts.
func NewPitBoss(logger logrus.FieldLogger, opts texasholdem.Options) *PitBoss {
	return &PitBoss{
		logger:     logger,
		options:    opts,
		dealers:    make(map[string]*Dealer),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
		unseat:     make(chan *unseatRequest, 256),
	}
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case client := <-p.connect:
			p.clientConnected(client)
		case client := <-p.disconnect:
			p.clientDisconnected(client)
		case req := <-p.unseat:
			p.unseatPlayer(req)
		}
	}
}

// NOTE: must only be called from the run loop
func (p *PitBoss) clientConnected(client *Client) {
	p.logger.WithField("player", client.String()).Debug("client connected")
	dealer, found := p.dealers[client.table.UUID]
	if !found {
		var err error
		dealer, err = NewDealer(p.logger, p, client.table, p.options, nil)
		if err != nil {
			p.logger.WithError(err).WithField("uuid", client.table.UUID).Error("could not create dealer")
			client.Close <- "could not open the table"
			return
		}

		dealer.StartShift()
		p.dealers[client.table.UUID] = dealer
	}

	dealer.AddClient(client)
}

// NOTE: must only be called from the run loop
func (p *PitBoss) clientDisconnected(client *Client) {
	p.logger.WithField("player", client.String()).Debug("client disconnected")
	dealer, found := p.dealers[client.table.UUID]
	if !found {
		p.logger.WithField("uuid", client.table.UUID).WithField("type", "exception").Error("table not found")
		return
	}

	// the dealer holds the stacks, so it stays on shift while anybody is still seated
	if dealer.RemoveClient(client) && len(client.table.Players()) == 0 {
		dealer.EndShift()
		delete(p.dealers, client.table.UUID)
	}
}

// NOTE: must only be called from the run loop
func (p *PitBoss) unseatPlayer(req *unseatRequest) {
	dealer, found := p.dealers[req.table.UUID]
	if !found {
		// without a dealer nobody can be in a hand
		req.result <- req.table.Unseat(req.playerID)
		return
	}

	dealer.exec(func() {
		req.result <- dealer.unseat(req.playerID)
	})
}

// Unseat removes the player from the table once they are out of the current hand
func (p *PitBoss) Unseat(ctx context.Context, tbl *table.Table, playerID string) error {
	req := &unseatRequest{
		table:    tbl,
		playerID: playerID,
		result:   make(chan error, 1),
	}

	select {
	case p.unseat <- req:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-req.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}
