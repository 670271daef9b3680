package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts Suit = "hearts"
	Bells  Suit = "bells"
	Acorns Suit = "acorns"
	Leaves Suit = "leaves"
)

// Suits is every suit in deck order
var Suits = []Suit{Hearts, Bells, Acorns, Leaves}

// Rank is the rank of a card
type Rank int

// ranks, numbered so that the picture cards follow Ten
const (
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Unter Rank = 11
	Ober  Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// ScoringRanks are the ranks a schnapsen deck is built from
var ScoringRanks = []Rank{Unter, Ober, King, Ten, Ace}

func (r Rank) String() string {
	switch r {
	case Unter:
		return "U"
	case Ober:
		return "O"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card is an individual playing card
// Cards are values: copy them freely and compare them with ==
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard returns a card of the suit and rank
func NewCard(suit Suit, rank Rank) Card {
	return Card{Rank: rank, Suit: suit}
}

// Value returns the points the card is worth when won in a trick
func (c Card) Value() int {
	switch c.Rank {
	case Unter:
		return 2
	case Ober:
		return 3
	case King:
		return 4
	case Ten:
		return 10
	case Ace:
		return 11
	}

	return 0
}

func (c Card) String() string {
	var suit string
	switch c.Suit {
	case Hearts:
		suit = "H"
	case Bells:
		suit = "B"
	case Acorns:
		suit = "A"
	case Leaves:
		suit = "L"
	default:
		suit = "?"
	}

	return c.Rank.String() + suit
}

var cardRx = regexp.MustCompile(`(?i)^(7|8|9|10|u|o|k|a)([hbal])\z`)

// ParseCard parses a card in the format of <rank><suit>
// rank is one of 7, 8, 9, 10, u, o, k, a and suit is one of h, b, a, l
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, fmt.Errorf("could not parse card: %s", s)
	}

	var rank Rank
	switch strings.ToLower(match[1]) {
	case "u":
		rank = Unter
	case "o":
		rank = Ober
	case "k":
		rank = King
	case "a":
		rank = Ace
	default:
		n, err := strconv.Atoi(match[1])
		if err != nil {
			return Card{}, fmt.Errorf("could not parse card `%s`: %w", s, err)
		}

		rank = Rank(n)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "h":
		suit = Hearts
	case "b":
		suit = Bells
	case "a":
		suit = Acorns
	case "l":
		suit = Leaves
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// CardFromString returns a Card from the string.
// It panics if the string cannot be parsed, so it is meant for tests and constants
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}

	return card
}

// CardsFromString will returns a slice of cards from a comma separated list
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(strings.TrimSpace(card))
	}

	return cards
}

// CardToString converts a card (Ace of Leaves) to a string (al)
func CardToString(card Card) string {
	return strings.ToLower(card.String())
}

// CardsToString will convert a slice of cards to a string in the format of uh,10b,al,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
