package schnapsen

import "errors"

// ErrInvalidSeat is returned for a seat other than Player1 or Player2
var ErrInvalidSeat = errors.New("invalid seat")

// Gate hands out the game only to the seat on turn
type Gate struct {
	game *Game
}

// NewGate returns a gate guarding game
func NewGate(game *Game) *Gate {
	return &Gate{game: game}
}

// GameAs returns the game if seat is on turn
func (g *Gate) GameAs(seat Seat) (*Game, error) {
	if !seat.Valid() {
		return nil, ErrInvalidSeat
	}

	if g.game.OnTurn() != seat {
		return nil, ErrNotPlayersTurn
	}

	return g.game, nil
}

// State returns the snapshot for seat
func (g *Gate) State(seat Seat) (*PlayerState, error) {
	if !seat.Valid() {
		return nil, ErrInvalidSeat
	}

	return g.game.State(seat), nil
}

// OnTurn returns the seat on turn
func (g *Gate) OnTurn() Seat {
	return g.game.OnTurn()
}

// Winner returns the winning seat, or NoSeat
func (g *Gate) Winner() Seat {
	return g.game.Winner()
}
