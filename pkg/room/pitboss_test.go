package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPitBoss(t *testing.T) {
	a := assert.New(t)
	p := NewPitBoss()
	p.StartShift()

	matchUUID := p.AddMatch(newTestMatch(t))
	dealer, err := p.Dealer(matchUUID)
	a.NoError(err)
	a.NotNil(dealer)

	_, err = p.Dealer("missing")
	a.Equal(ErrMatchNotFound, err)

	c := NewClient(nil, matchUUID, 1)
	p.ClientConnected(c)
	waitFor(t, c, "clientState")

	missing := NewClient(nil, "missing", 1)
	p.ClientConnected(missing)

	select {
	case reason := <-missing.Close:
		a.Equal("match not found", reason)
	case <-time.After(time.Second):
		t.Fatal("client was not closed")
	}
}
