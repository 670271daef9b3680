package schnapsen

import (
	"github.com/d-becker/schnapsen/pkg/deck"
)

// Player is the state of one seat
// Players do not enforce any rules, all legality lives in Game
type Player interface {
	Name() string

	Hand() deck.Hand
	AddToHand(card deck.Card)

	// RemoveFromHand is a no-op if the card is not in the hand
	RemoveFromHand(card deck.Card)

	Wins() []deck.Card
	AddToWins(led, response deck.Card)

	Twenties() []deck.Suit
	AddTwenty(suit deck.Suit)

	Forty() (suit deck.Suit, ok bool)
	SetForty(suit deck.Suit)

	// Score is the value of the won cards plus the declared bonuses
	Score() int

	// IsHidden returns true if the player's cards are not known
	IsHidden() bool
}

// SeatPlayer is a player with known cards
type SeatPlayer struct {
	name     string
	hand     deck.Hand
	wins     []deck.Card
	twenties []deck.Suit
	forty    deck.Suit
}

// NewSeatPlayer returns a player holding hand
func NewSeatPlayer(name string, hand []deck.Card) *SeatPlayer {
	return &SeatPlayer{
		name: name,
		hand: append(deck.Hand{}, hand...),
	}
}

// Name returns the name of the player
func (p *SeatPlayer) Name() string {
	return p.name
}

// Hand returns a copy of the hand
func (p *SeatPlayer) Hand() deck.Hand {
	return p.hand.Clone()
}

// AddToHand adds a card to the hand
func (p *SeatPlayer) AddToHand(card deck.Card) {
	p.hand.AddCard(card)
}

// RemoveFromHand removes the card from the hand
func (p *SeatPlayer) RemoveFromHand(card deck.Card) {
	p.hand.Remove(card)
}

// Wins returns a copy of the cards won in tricks
func (p *SeatPlayer) Wins() []deck.Card {
	return append([]deck.Card{}, p.wins...)
}

// AddToWins adds both cards of a trick
func (p *SeatPlayer) AddToWins(led, response deck.Card) {
	p.wins = append(p.wins, led, response)
}

// Twenties returns the suits of the declared twenties
func (p *SeatPlayer) Twenties() []deck.Suit {
	return append([]deck.Suit{}, p.twenties...)
}

// AddTwenty records a twenty
func (p *SeatPlayer) AddTwenty(suit deck.Suit) {
	if p.hasTwenty(suit) {
		return
	}

	p.twenties = append(p.twenties, suit)
}

func (p *SeatPlayer) hasTwenty(suit deck.Suit) bool {
	for _, s := range p.twenties {
		if s == suit {
			return true
		}
	}

	return false
}

// Forty returns the suit of the declared forty
func (p *SeatPlayer) Forty() (deck.Suit, bool) {
	return p.forty, p.forty != ""
}

// SetForty records the forty
// A forty, once set, does not change
func (p *SeatPlayer) SetForty(suit deck.Suit) {
	if p.forty != "" {
		return
	}

	p.forty = suit
}

// Score returns the points of the player
func (p *SeatPlayer) Score() int {
	score := deck.Hand(p.wins).Points() + 20*len(p.twenties)
	if p.forty != "" {
		score += 40
	}

	return score
}

// IsHidden returns false
func (p *SeatPlayer) IsHidden() bool {
	return false
}

// HiddenPlayer stands in for the opponent when the game is seen from one seat
// It reports nothing and ignores every change.
type HiddenPlayer struct {
	name string
}

// NewHiddenPlayer returns a stub player
func NewHiddenPlayer(name string) *HiddenPlayer {
	return &HiddenPlayer{name: name}
}

// Name returns the name of the player
func (h *HiddenPlayer) Name() string {
	return h.name
}

// Hand returns an empty hand
func (h *HiddenPlayer) Hand() deck.Hand {
	return deck.Hand{}
}

// AddToHand does nothing
func (h *HiddenPlayer) AddToHand(deck.Card) {}

// RemoveFromHand does nothing
func (h *HiddenPlayer) RemoveFromHand(deck.Card) {}

// Wins returns no cards
func (h *HiddenPlayer) Wins() []deck.Card {
	return []deck.Card{}
}

// AddToWins does nothing
func (h *HiddenPlayer) AddToWins(deck.Card, deck.Card) {}

// Twenties returns no suits
func (h *HiddenPlayer) Twenties() []deck.Suit {
	return []deck.Suit{}
}

// AddTwenty does nothing
func (h *HiddenPlayer) AddTwenty(deck.Suit) {}

// Forty returns false
func (h *HiddenPlayer) Forty() (deck.Suit, bool) {
	return "", false
}

// SetForty does nothing
func (h *HiddenPlayer) SetForty(deck.Suit) {}

// Score returns 0
func (h *HiddenPlayer) Score() int {
	return 0
}

// IsHidden returns true
func (h *HiddenPlayer) IsHidden() bool {
	return true
}
