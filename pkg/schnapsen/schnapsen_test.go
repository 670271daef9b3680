package schnapsen

import (
	"testing"

	"github.com/d-becker/schnapsen/pkg/deck"
	"github.com/stretchr/testify/require"
)

// hearts is trump with the ober showing
const (
	testStock = "oh,ub,ob,kb,10b,ab,ua,oa,ka,ul"
	testHand2 = "ah,10h,aa,al,10l"
	testHand1 = "uh,kh,ol,kl,10a"
)

func card(s string) deck.Card {
	return deck.CardFromString(s)
}

func cards(s string) []deck.Card {
	return deck.CardsFromString(s)
}

func newTestGame(t *testing.T, stock, hand2, hand1 string) *Game {
	t.Helper()

	all := append(append(cards(stock), cards(hand2)...), cards(hand1)...)
	g, err := NewGame(all, Options{Names: [2]string{"Alice", "Bob"}})
	require.NoError(t, err)

	return g
}

func newDefaultGame(t *testing.T) *Game {
	return newTestGame(t, testStock, testHand2, testHand1)
}

// newClientTestGame builds a game as seen by seat
func newClientTestGame(t *testing.T, state *PlayerState) *Game {
	t.Helper()

	if state.Trump == "" {
		state.Trump = deck.Hearts
	}

	g, err := NewClientGame(state)
	require.NoError(t, err)

	return g
}

func cardCount(g *Game) int {
	n := g.Stock().Len()
	for _, seat := range Seats {
		n += len(g.Player(seat).Hand()) + len(g.Player(seat).Wins())
	}

	if _, ok := g.LedCard(); ok {
		n++
	}

	return n
}
