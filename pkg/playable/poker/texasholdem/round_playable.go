package texasholdem

import (
	"fmt"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/action"
)

var _ playable.Playable = &Round{}

// Action performs a player action
func (r *Round) Action(playerID string, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	seat := r.SeatOf(playerID)
	if seat == NoSeat {
		return nil, false, fmt.Errorf("player %s is not in the hand", playerID)
	}

	a, err := action.FromString(message.Action)
	if err != nil {
		return nil, false, err
	}

	amount, _ := message.AdditionalData.GetInt("amount")
	if err := r.ApplyAction(seat, a, amount); err != nil {
		return nil, false, err
	}

	return playable.OK(), true, nil
}

// GetPlayerState returns the current state for the player
func (r *Round) GetPlayerState(playerID string) (*playable.Response, error) {
	return &playable.Response{
		Key:   "game",
		Value: "texas-hold-em",
		Data:  r.GetGameState(playerID),
	}, nil
}

// Name returns the name
func (r *Round) Name() string {
	return NameFromOptions(r.options)
}

// NameFromOptions returns the name from the provided options
func NameFromOptions(opts Options) string {
	if err := validateOptions(opts); err != nil {
		return ""
	}

	return fmt.Sprintf("No-Limit Texas Hold'em (${%d}/${%d})", opts.SmallBlind, opts.BigBlind)
}
