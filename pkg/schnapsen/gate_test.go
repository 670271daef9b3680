package schnapsen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate_GameAs(t *testing.T) {
	a := assert.New(t)
	g := newDefaultGame(t)
	gate := NewGate(g)

	game, err := gate.GameAs(Player2)
	a.Nil(game)
	a.Equal(ErrNotPlayersTurn, err)

	game, err = gate.GameAs(NoSeat)
	a.Nil(game)
	a.Equal(ErrInvalidSeat, err)

	game, err = gate.GameAs(Player1)
	a.NoError(err)
	a.Same(g, game)

	_, err = game.PlayCard(card("10a"))
	a.NoError(err)
	a.Equal(Player2, gate.OnTurn())

	_, err = gate.GameAs(Player1)
	a.Equal(ErrNotPlayersTurn, err)

	game, err = gate.GameAs(Player2)
	a.NoError(err)
	a.Same(g, game)
	a.Equal(NoSeat, gate.Winner())
}

func TestGate_State(t *testing.T) {
	a := assert.New(t)
	gate := NewGate(newDefaultGame(t))

	state, err := gate.State(Player2)
	a.NoError(err)
	a.Equal(Player2, state.Seat)

	for _, seat := range []Seat{NoSeat, Seat(3), Seat(-1)} {
		state, err = gate.State(seat)
		a.Nil(state)
		a.Equal(ErrInvalidSeat, err)
	}
}
