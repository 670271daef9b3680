package schnapsen

import "github.com/d-becker/schnapsen/pkg/deck"

// PlayerState is everything a seat may know about the game
// The opponent's hand and wins are never part of it.
type PlayerState struct {
	Seat         Seat        `json:"seat"`
	Name         string      `json:"name"`
	OpponentName string      `json:"opponentName"`
	Winner       *Seat       `json:"winner"`
	Trump        deck.Suit   `json:"trump"`
	LedCard      *deck.Card  `json:"ledCard"`
	StockSize    int         `json:"stockSize"`
	TrumpRank    *deck.Rank  `json:"trumpRank"`
	StockClosed  bool        `json:"stockClosed"`
	OnLead       Seat        `json:"onLead"`
	Hand         []deck.Card `json:"hand"`
	Wins         []deck.Card `json:"wins"`
	Twenties     []deck.Suit `json:"twenties"`
	Forty        *deck.Suit  `json:"forty"`
	Score        int         `json:"score"`
}

// StateUpdate is a numbered snapshot
// The number grows with every accepted command so clients can drop stale updates.
type StateUpdate struct {
	StateNumber int          `json:"stateNumber"`
	State       *PlayerState `json:"state"`
}

// State returns the game as seen by seat
// seat must be Player1 or Player2, use Gate.State for unchecked input.
func (g *Game) State(seat Seat) *PlayerState {
	player := g.Player(seat)

	state := &PlayerState{
		Seat:         seat,
		Name:         player.Name(),
		OpponentName: g.Player(seat.Other()).Name(),
		Trump:        g.trump,
		StockSize:    g.stock.Len(),
		StockClosed:  g.stock.IsClosed(),
		OnLead:       g.onLead,
		Hand:         player.Hand(),
		Wins:         player.Wins(),
		Twenties:     player.Twenties(),
		Score:        player.Score(),
	}

	if g.winner != NoSeat {
		winner := g.winner
		state.Winner = &winner
	}

	if g.led != nil {
		led := *g.led
		state.LedCard = &led
	}

	if rank, ok := g.stock.TrumpRank(); ok {
		state.TrumpRank = &rank
	}

	if forty, ok := player.Forty(); ok {
		state.Forty = &forty
	}

	return state
}

// NewClientGame rebuilds a game from a seat's snapshot
// The opponent is a HiddenPlayer and the stock an OpaqueStock. Commands are only accepted
// while state.Seat is on turn.
func NewClientGame(state *PlayerState) (*Game, error) {
	if !state.Seat.Valid() {
		return nil, ErrInvalidSeat
	}

	if !state.OnLead.Valid() {
		return nil, ErrInvalidSeat
	}

	own := &SeatPlayer{
		name:     state.Name,
		hand:     append(deck.Hand{}, state.Hand...),
		wins:     append([]deck.Card{}, state.Wins...),
		twenties: append([]deck.Suit{}, state.Twenties...),
	}

	if state.Forty != nil {
		own.forty = *state.Forty
	}

	g := &Game{
		stock:       NewOpaqueStock(state.StockSize, state.TrumpRank, state.StockClosed),
		trump:       state.Trump,
		onLead:      state.OnLead,
		perspective: state.Seat,
	}

	g.players[state.Seat.index()] = own
	g.players[state.Seat.Other().index()] = NewHiddenPlayer(state.OpponentName)

	if state.Winner != nil {
		g.winner = *state.Winner
	}

	if state.LedCard != nil {
		led := *state.LedCard
		g.led = &led
	}

	return g, nil
}
