package texasholdem

import (
	"errors"
	"holdem-server/internal/rng"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/handanalyzer"
	"holdem-server/pkg/playable/poker/potmanager"
	"sort"

	"github.com/sirupsen/logrus"
)

// NoSeat is used when no seat applies, i.e., nobody is on the clock
const NoSeat = -1

// MinPlayers is the fewest players with chips needed to deal a hand
const MinPlayers = 2

var errNotEnoughPlayers = errors.New("there must be at least two players with chips")

// showdownFunc ranks the hands of the players still contesting the pot
type showdownFunc func(contenders []handanalyzer.Contender, board deck.Hand) []*handanalyzer.HandRank

// Round runs hands of Texas Hold'em for one table
//
// A Round is not safe for concurrent use. Exactly one goroutine may call StartRound, ApplyAction
// and TryAdvanceStreet at a time; serialization is the driver's job.
type Round struct {
	logger  logrus.FieldLogger
	options Options
	deck    *deck.Deck

	players           []*Participant
	dealerSeat        int
	actingSeat        int
	lastAggressorSeat int
	street            Street
	pot               potmanager.Pot
	currentBet        int
	toAct             map[int]bool
	board             deck.Hand
	handsPlayed       int

	// forcedWinner is the last player standing after everyone else folded
	forcedWinner *Participant

	result      *Result
	showdown    showdownFunc
	events      []Event
	logMessages []*playable.LogMessage
}

// Result describes how the last hand was settled
type Result struct {
	Winners []string                          `json:"winners"`
	Payouts map[string]int                    `json:"payouts"`
	Dropped int                               `json:"dropped"`
	Hands   map[string]*handanalyzer.HandRank `json:"hands"`
	// Uncontested is true if everybody else folded
	Uncontested bool `json:"uncontested"`
}

// NewRound returns a Round with no hand in progress
// If generator is nil, the deck is shuffled with crypto/rand.
func NewRound(logger logrus.FieldLogger, opts Options, generator rng.Generator) (*Round, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Round{
		logger:            logger,
		options:           opts,
		deck:              deck.New(generator),
		actingSeat:        NoSeat,
		lastAggressorSeat: NoSeat,
		street:            Settled,
		toAct:             make(map[int]bool),
		board:             make(deck.Hand, 0, 5),
		showdown:          handanalyzer.Rank,
	}, nil
}

// StartRound deals a new hand to the players
// Players without chips sit the hand out. If fewer than two players have chips, no hand is dealt
// and false is returned.
func (r *Round) StartRound(players []*Participant, dealerSeat int) bool {
	r.forcedWinner = nil
	r.result = nil
	r.pot.Reset()
	r.currentBet = 0
	r.board = make(deck.Hand, 0, 5)
	r.toAct = make(map[int]bool)
	r.actingSeat = NoSeat
	r.lastAggressorSeat = NoSeat
	r.street = Settled
	r.players = players

	withChips := 0
	for _, p := range players {
		if p.Stack > 0 {
			withChips++
		}
	}

	if withChips < MinPlayers {
		r.logger.WithField("players", withChips).WithError(errNotEnoughPlayers).Warn("cannot start hand")
		return false
	}

	n := len(players)
	r.dealerSeat = ((dealerSeat % n) + n) % n

	r.deck.Reset()
	for _, p := range players {
		p.Bet = 0
		p.Cards = nil
		p.Active = p.Stack > 0
		if p.Active {
			p.Cards = deck.Hand{r.draw(), r.draw()}
		}
	}

	small, big := r.options.Blinds(r.handsPlayed, n)
	sbSeat := r.nextActiveSeat(r.dealerSeat)
	bbSeat := r.nextActiveSeat(sbSeat)

	r.postBlind(sbSeat, small)
	r.postBlind(bbSeat, big)

	r.currentBet = players[bbSeat].Bet
	if sb := players[sbSeat].Bet; sb > r.currentBet {
		r.currentBet = sb
	}

	r.street = Preflop
	r.lastAggressorSeat = bbSeat
	r.toAct = r.seatsThatCanAct(bbSeat)
	r.actingSeat = r.nextToAct(bbSeat)

	r.logger.WithFields(logrus.Fields{
		"hand":       r.handsPlayed + 1,
		"dealerSeat": r.dealerSeat,
		"smallBlind": small,
		"bigBlind":   big,
		"players":    withChips,
	}).Info("starting hand")

	r.log(playable.SimpleLogMessage("", "hand #%d, blinds are ${%d}/${%d}", r.handsPlayed+1, small, big))
	r.log(playable.SimpleLogMessage(players[sbSeat].PlayerID, "{} posted the small blind of ${%d}", players[sbSeat].Bet))
	r.log(playable.SimpleLogMessage(players[bbSeat].PlayerID, "{} posted the big blind of ${%d}", players[bbSeat].Bet))

	r.emitTurnChanged()
	return true
}

func (r *Round) postBlind(seat, amount int) {
	p := r.players[seat]
	_ = r.pot.Add(p.commit(amount))
}

func (r *Round) log(messages ...*playable.LogMessage) {
	r.logMessages = append(r.logMessages, messages...)
}

// LogMessages returns and clears the table log messages created since the last call
func (r *Round) LogMessages() []*playable.LogMessage {
	messages := r.logMessages
	r.logMessages = nil
	return messages
}

// draw takes a card from the deck and notes if the deck ran dry
func (r *Round) draw() *deck.Card {
	before := r.deck.Exhaustions()
	card := r.deck.Draw()
	if r.deck.Exhaustions() != before {
		r.logger.WithField("players", len(r.players)).Warn("deck exhausted, reshuffled")
	}

	return card
}

// nextActiveSeat returns the first seat after seat that is still in the hand
func (r *Round) nextActiveSeat(seat int) int {
	n := len(r.players)
	for i := 1; i <= n; i++ {
		next := (seat + i) % n
		if r.players[next].Active {
			return next
		}
	}

	return NoSeat
}

// nextToAct returns the first seat after seat that still needs to respond
func (r *Round) nextToAct(seat int) int {
	n := len(r.players)
	if n == 0 || len(r.toAct) == 0 {
		return NoSeat
	}

	for i := 1; i <= n; i++ {
		next := (seat + i) % n
		if r.toAct[next] {
			return next
		}
	}

	return NoSeat
}

// seatsThatCanAct returns every active, non-all-in seat other than except
func (r *Round) seatsThatCanAct(except int) map[int]bool {
	seats := make(map[int]bool)
	for i, p := range r.players {
		if i != except && p.canAct() {
			seats[i] = true
		}
	}

	return seats
}

func (r *Round) activeParticipants() []*Participant {
	active := make([]*Participant, 0, len(r.players))
	for _, p := range r.players {
		if p.Active {
			active = append(active, p)
		}
	}

	return active
}

func (r *Round) emitTurnChanged() {
	if r.actingSeat == NoSeat {
		return
	}

	r.emit(Event{
		Type:       EventTurnChanged,
		PlayerID:   r.players[r.actingSeat].PlayerID,
		CurrentBet: r.currentBet,
		Pot:        r.pot.Amount(),
	})
}

// CurrentActorID returns the ID of the player on the clock, or "" if nobody is
func (r *Round) CurrentActorID() string {
	if r.actingSeat == NoSeat || r.actingSeat >= len(r.players) {
		return ""
	}

	return r.players[r.actingSeat].PlayerID
}

// InProgress returns true while a hand is being played
func (r *Round) InProgress() bool {
	return r.street != Settled
}

// AwaitingAdvance returns true if the hand is in progress but nobody is left to act on this street
// The driver should keep calling TryAdvanceStreet while this is true.
func (r *Round) AwaitingAdvance() bool {
	return r.InProgress() && (len(r.toAct) == 0 || r.forcedWinner != nil)
}

// SeatOf returns the seat of the player, or NoSeat
func (r *Round) SeatOf(playerID string) int {
	for i, p := range r.players {
		if p.PlayerID == playerID {
			return i
		}
	}

	return NoSeat
}

// Board returns the community cards
func (r *Round) Board() deck.Hand {
	return r.board.Clone()
}

// Pot returns every chip committed this hand, including bets on the current street
func (r *Round) Pot() int {
	return r.pot.Amount()
}

// CurrentBet returns the most any player has committed on this street
func (r *Round) CurrentBet() int {
	return r.currentBet
}

// Street returns the current street
func (r *Round) Street() Street {
	return r.street
}

// HandsPlayed returns the number of hands settled by this Round
func (r *Round) HandsPlayed() int {
	return r.handsPlayed
}

// DealerSeat returns the button
func (r *Round) DealerSeat() int {
	return r.dealerSeat
}

// ActingSeat returns the seat on the clock, or NoSeat
func (r *Round) ActingSeat() int {
	return r.actingSeat
}

// LastAggressorSeat returns the seat that bet or raised last on this street, or NoSeat
func (r *Round) LastAggressorSeat() int {
	return r.lastAggressorSeat
}

// ToAct returns the seats that still need to respond on this street, in seat order
func (r *Round) ToAct() []int {
	seats := make([]int, 0, len(r.toAct))
	for seat := range r.toAct {
		seats = append(seats, seat)
	}

	sort.Ints(seats)
	return seats
}

// ForcedWinner returns the last player standing once everybody else folded
func (r *Round) ForcedWinner() *Participant {
	return r.forcedWinner
}

// Result returns how the last hand was settled, or nil while a hand is in progress
func (r *Round) Result() *Result {
	return r.result
}

// Options returns the options the Round was created with
func (r *Round) Options() Options {
	return r.options
}

// DeckExhaustions returns how many times the deck ran out mid-hand
func (r *Round) DeckExhaustions() int {
	return r.deck.Exhaustions()
}
