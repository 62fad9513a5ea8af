package texasholdem

import (
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/handanalyzer"
	"holdem-server/pkg/playable/poker/potmanager"

	"github.com/sirupsen/logrus"
)

// TryAdvanceStreet closes the street once nobody is left to act
// It returns true if the hand moved forward: a new street was dealt or the hand was settled.
func (r *Round) TryAdvanceStreet() bool {
	if !r.InProgress() {
		return false
	}

	if r.forcedWinner != nil {
		r.settle()
		return true
	}

	if len(r.toAct) > 0 {
		return false
	}

	r.resetBets()

	next := r.street.Next()
	if next == Settled {
		r.settle()
		return true
	}

	r.street = next
	for i := 0; i < next.CommunityCards(); i++ {
		r.board.AddCard(r.draw())
	}

	r.logger.WithFields(logrus.Fields{
		"street": r.street.String(),
		"board":  r.board.String(),
		"pot":    r.pot.Amount(),
	}).Debug("street advanced")

	lm := playable.SimpleLogMessage("", "dealt the %s", r.street.String())
	lm.Cards = r.board[len(r.board)-next.CommunityCards():].Clone()
	r.log(lm)

	r.emit(Event{
		Type:  EventStreetAdvanced,
		Board: r.board.Clone(),
		Pot:   r.pot.Amount(),
	})

	r.toAct = r.seatsThatCanAct(NoSeat)
	if len(r.toAct) < MinPlayers {
		// everybody else is all-in, so there is nobody left to bet against
		r.toAct = make(map[int]bool)
		r.actingSeat = NoSeat
		r.settle()
		return true
	}

	r.actingSeat = r.nextToAct(r.dealerSeat)
	r.emitTurnChanged()
	return true
}

func (r *Round) resetBets() {
	for _, p := range r.players {
		p.Bet = 0
	}

	r.currentBet = 0
	r.lastAggressorSeat = NoSeat
}

// settle runs out the board, pays the winners and moves the button
func (r *Round) settle() {
	for len(r.board) < 5 {
		r.board.AddCard(r.draw())
	}

	r.emit(Event{
		Type:  EventPause,
		Delay: r.options.RevealDelay,
	})

	result := &Result{
		Hands: make(map[string]*handanalyzer.HandRank),
	}

	var winners []*Participant
	if r.forcedWinner != nil {
		winners = []*Participant{r.forcedWinner}
		result.Uncontested = true
	} else {
		active := r.activeParticipants()
		contenders := make([]handanalyzer.Contender, len(active))
		for i, p := range active {
			contenders[i] = p
		}

		ranks := r.showdown(contenders, r.board)
		for _, hr := range ranks {
			result.Hands[hr.Owner.ID()] = hr
		}

		for _, hr := range handanalyzer.Winners(ranks) {
			winners = append(winners, hr.Owner.(*Participant))
		}
	}

	pot := r.pot.Amount()
	payees := make([]potmanager.Participant, len(winners))
	for i, w := range winners {
		payees[i] = w
		result.Winners = append(result.Winners, w.PlayerID)
	}

	payout := r.pot.PayWinners(payees)
	result.Payouts = payout.Amounts
	result.Dropped = payout.Dropped

	r.resetBets()
	r.toAct = make(map[int]bool)
	r.actingSeat = NoSeat
	r.dealerSeat = (r.dealerSeat + 1) % len(r.players)
	r.handsPlayed++
	r.street = Settled
	r.result = result

	r.logger.WithFields(logrus.Fields{
		"hand":        r.handsPlayed,
		"pot":         pot,
		"winners":     result.Winners,
		"dropped":     result.Dropped,
		"uncontested": result.Uncontested,
		"board":       r.board.String(),
	}).Info("hand settled")

	for _, id := range result.Winners {
		if hr, ok := result.Hands[id]; ok {
			lm := playable.SimpleLogMessage(id, "{} won ${%d} with %s", result.Payouts[id], hr.String())
			lm.Cards = hr.Cards
			r.log(lm)
		} else {
			r.log(playable.SimpleLogMessage(id, "{} won ${%d}", result.Payouts[id]))
		}
	}

	r.emit(Event{
		Type:    EventRoundSettled,
		Board:   r.board.Clone(),
		Pot:     pot,
		Winners: result.Winners,
		Payouts: result.Payouts,
		Hands:   result.Hands,
	})

	r.emit(Event{
		Type:  EventPause,
		Delay: r.options.RevealDelay,
	})

	r.emit(Event{
		Type: EventPaused,
	})
}
