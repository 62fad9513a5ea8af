package texasholdem

import (
	"errors"
	"fmt"
)

// ParticipantError is an error caused by what a participant tried to do
// The message is safe to show to the player.
type ParticipantError string

func (p ParticipantError) Error() string {
	return string(p)
}

func newParticipantError(format string, a ...interface{}) ParticipantError {
	return ParticipantError(fmt.Sprintf(format, a...))
}

// ErrNoHandInProgress is an error when an action is attempted between hands
var ErrNoHandInProgress = errors.New("no hand is in progress")

// ErrBettingRoundIsOver is an error when an action is attempted after the street closed
var ErrBettingRoundIsOver = errors.New("betting round is over")

// ErrNotYourTurn is an error when a seat acts out of turn
var ErrNotYourTurn = ParticipantError("it is not your turn")
