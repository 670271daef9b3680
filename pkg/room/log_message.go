package room

import (
	"github.com/d-becker/schnapsen/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages adds log messages and keeps the most recent ones
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}

// Note: this must only be called from within the run loop
func (d *Dealer) sendLogMessages(messages []*playable.LogMessage) {
	res := &playable.Response{
		Key:  "log",
		Data: messages,
	}

	for _, client := range d.Clients() {
		client.Send(res)
	}
}
