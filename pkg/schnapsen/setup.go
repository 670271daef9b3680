package schnapsen

import (
	"errors"
	"fmt"

	"github.com/d-becker/schnapsen/internal/util"
	"github.com/d-becker/schnapsen/pkg/deck"
)

// HandSize is the number of cards each player holds after the deal
const HandSize = 5

// minDeckSize leaves a trump indicator and one pair of cards in the stock
const minDeckSize = 2*HandSize + 2

// ErrInvalidDeck is returned when a game cannot be built from the given cards
var ErrInvalidDeck = errors.New("invalid deck")

// Options configure a new game
type Options struct {
	// Names are the display names of Player1 and Player2
	// Empty names are replaced with random ones.
	Names [2]string
}

// NewGame builds a game from the cards in dealing order
// Player1 gets the last five cards, Player2 the five before them and the rest forms the stock.
// The first card is the trump indicator and Player1 leads.
func NewGame(cards []deck.Card, opts Options) (*Game, error) {
	if len(cards)%2 != 0 || len(cards) < minDeckSize {
		return nil, fmt.Errorf("%w: expected an even number of at least %d cards, got %d", ErrInvalidDeck, minDeckSize, len(cards))
	}

	seen := make(map[deck.Card]bool, len(cards))
	for _, card := range cards {
		if seen[card] {
			return nil, fmt.Errorf("%w: duplicate card %s", ErrInvalidDeck, card)
		}

		seen[card] = true
	}

	n := len(cards)
	hand1 := cards[n-HandSize:]
	hand2 := cards[n-2*HandSize : n-HandSize]
	stock := cards[:n-2*HandSize]

	names := opts.Names
	for i := range names {
		if names[i] == "" {
			names[i] = util.GetRandomName()
		}
	}

	return &Game{
		players: [2]Player{
			NewSeatPlayer(names[0], hand1),
			NewSeatPlayer(names[1], hand2),
		},
		stock:  NewServerStock(stock),
		trump:  stock[0].Suit,
		onLead: Player1,
	}, nil
}

// NewRandomGame shuffles a full deck and builds a game from it
// A seed of 0 picks a random seed. The seed that was used is returned so the deal can be replayed.
func NewRandomGame(seed int64, opts Options) (*Game, int64, error) {
	d := deck.New()
	d.Shuffle(seed)

	g, err := NewGame(d.Cards, opts)
	if err != nil {
		return nil, 0, err
	}

	return g, d.GetSeed(), nil
}
