package room

import (
	"holdem-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages adds log messages and relays them to every client
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	if len(messages) == 0 {
		return
	}

	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m

	resp := newLogResponse(messages)
	for _, client := range d.Clients() {
		client.Send(resp)
	}
}

// recentLogMessages returns the most recent log messages
// Note: this must only be called from within the run loop
func (d *Dealer) recentLogMessages() []*playable.LogMessage {
	messages := make([]*playable.LogMessage, len(d.logMessages))
	copy(messages, d.logMessages)
	return messages
}
