package texasholdem

import (
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/action"

	"github.com/sirupsen/logrus"
)

// ApplyAction applies the action for the seat on the clock
// For a bet or raise, amount is the number of chips added, not the new total. On error the
// Round is left exactly as it was.
func (r *Round) ApplyAction(seat int, a action.Action, amount int) error {
	if err := r.validateAction(seat, a, amount); err != nil {
		r.logger.WithFields(logrus.Fields{
			"seat":   seat,
			"action": string(a),
			"amount": amount,
		}).WithError(err).Debug("rejected action")

		return err
	}

	p := r.players[seat]
	moved := 0

	switch a {
	case action.Fold:
		p.Active = false
		delete(r.toAct, seat)
	case action.Check, action.Call:
		// a check facing a bet is treated as a call
		if toCall := r.currentBet - p.Bet; toCall > 0 {
			moved = p.commit(toCall)
			_ = r.pot.Add(moved)
		}

		delete(r.toAct, seat)
	case action.Bet, action.Raise:
		moved = p.commit(amount)
		_ = r.pot.Add(moved)

		r.currentBet = p.Bet
		r.lastAggressorSeat = seat

		// a raise reopens the action for everybody else
		r.toAct = r.seatsThatCanAct(seat)
	}

	r.logger.WithFields(logrus.Fields{
		"playerId": p.PlayerID,
		"street":   r.street.String(),
		"pot":      r.pot.Amount(),
	}).Debug(a.LogMessage(moved))

	r.log(playable.SimpleLogMessage(p.PlayerID, "{} %s", a.LogMessage(moved)))

	if active := r.activeParticipants(); len(active) == 1 {
		r.forcedWinner = active[0]
		r.toAct = make(map[int]bool)
		r.actingSeat = NoSeat
		return nil
	}

	r.actingSeat = r.nextToAct(seat)
	r.emitTurnChanged()
	return nil
}

func (r *Round) validateAction(seat int, a action.Action, amount int) error {
	if !r.InProgress() {
		return ErrNoHandInProgress
	}

	if r.actingSeat == NoSeat {
		return ErrBettingRoundIsOver
	}

	if seat != r.actingSeat {
		return ErrNotYourTurn
	}

	p := r.players[seat]

	switch a {
	case action.Fold, action.Check, action.Call:
		return nil
	case action.Bet, action.Raise:
		if amount <= 0 {
			return newParticipantError("%s must be greater than ${0}", string(a))
		}

		if amount > p.Stack {
			return newParticipantError("you cannot %s more than your stack of ${%d}", string(a), p.Stack)
		}

		if p.Bet+amount <= r.currentBet {
			return newParticipantError("your %s to ${%d} must be greater than the current bet of ${%d}", string(a), p.Bet+amount, r.currentBet)
		}

		return nil
	}

	return newParticipantError("%s is not a valid action", string(a))
}

// ActionsForParticipant returns the actions the player can take right now
// Only the player on the clock has actions.
func (r *Round) ActionsForParticipant(playerID string) []action.Action {
	if playerID == "" || r.CurrentActorID() != playerID {
		return nil
	}

	p := r.players[r.actingSeat]

	actions := make([]action.Action, 0, 3)
	if r.currentBet == p.Bet {
		actions = append(actions, action.Check)
	} else {
		actions = append(actions, action.Call)
	}

	if r.currentBet == 0 {
		actions = append(actions, action.Bet)
	} else if p.Bet+p.Stack > r.currentBet {
		actions = append(actions, action.Raise)
	}

	return append(actions, action.Fold)
}
