package room

import (
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/texasholdem"
	"holdem-server/pkg/table"
)

type clientStatePlayer struct {
	*table.Player
	Stack       int  `json:"stack"`
	IsConnected bool `json:"isConnected"`
}

func newErrorResponse(ctx string, err error) *playable.Response {
	return &playable.Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

func newEventResponse(e texasholdem.Event) *playable.Response {
	return &playable.Response{
		Key:   "event",
		Value: string(e.Type),
		Data:  e,
	}
}

func newLogResponse(messages []*playable.LogMessage) *playable.Response {
	return &playable.Response{
		Key:  "log",
		Data: messages,
	}
}
