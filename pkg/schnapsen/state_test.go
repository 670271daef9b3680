package schnapsen

import (
	"encoding/json"
	"testing"

	"github.com/d-becker/schnapsen/pkg/deck"
	"github.com/d-becker/schnapsen/pkg/snapshot"
	"github.com/stretchr/testify/assert"
)

func TestGame_State(t *testing.T) {
	a := assert.New(t)
	g := newDefaultGame(t)

	_, err := g.PlayCard(card("10a"))
	a.NoError(err)

	snapshot.ValidateSnapshot(t, g.State(Player2), 0)

	state := g.State(Player1)
	a.Equal(Player1, state.Seat)
	a.Equal("uh,kh,ol,kl", deck.CardsToString(state.Hand))
	a.Equal(card("10a"), *state.LedCard)
	a.Equal(deck.Ober, *state.TrumpRank)
	a.Nil(state.Winner)
	a.Nil(state.Forty)
}

func TestNewClientGame(t *testing.T) {
	a := assert.New(t)
	g := newDefaultGame(t)
	a.NoError(g.ExchangeTrump())
	a.NoError(g.PlayForty(card("kh")))

	// the snapshot survives the wire
	b, err := json.Marshal(g.State(Player1))
	a.NoError(err)

	var state PlayerState
	a.NoError(json.Unmarshal(b, &state))

	client, err := NewClientGame(&state)
	a.NoError(err)
	a.Equal(g.State(Player1), client.State(Player1))
	a.Equal(ErrNotPlayersTurn, client.CanPlayCard(card("oh")))

	// the other seat only sees its own cards
	client, err = NewClientGame(g.State(Player2))
	a.NoError(err)
	a.NoError(client.CanPlayCard(card("ah")))
	a.Empty(client.Player(Player1).Hand())
	a.Equal("Alice", client.Player(Player1).Name())

	_, err = NewClientGame(&PlayerState{Seat: NoSeat, OnLead: Player1})
	a.Equal(ErrInvalidSeat, err)
}
