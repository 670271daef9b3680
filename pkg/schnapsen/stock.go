package schnapsen

import "github.com/d-becker/schnapsen/pkg/deck"

// Stock is the pile of undealt cards
type Stock interface {
	// Len is the number of undealt cards
	Len() int
	IsEmpty() bool
	IsClosed() bool

	// Close stops all further dealing
	Close()

	// TrumpRank is the rank of the exposed trump card
	// ok is false if the stock is closed or empty
	TrumpRank() (rank deck.Rank, ok bool)

	// ExchangeTrump replaces the exposed trump rank and returns the previous one
	// ok is false, and nothing changes, if the stock is closed or empty
	ExchangeTrump(rank deck.Rank) (old deck.Rank, ok bool)

	// Deal removes a card from the bottom of the stock
	// ok is false if no concrete card could be dealt
	Deal() (card deck.Card, ok bool)
}

// ServerStock holds the actual remaining cards
// cards[0] is the trump indicator, cards are dealt from the end
type ServerStock struct {
	cards  []deck.Card
	closed bool
}

// NewServerStock returns a stock of the given cards
func NewServerStock(cards []deck.Card) *ServerStock {
	return &ServerStock{
		cards: append([]deck.Card{}, cards...),
	}
}

// Len returns the number of cards in the stock
func (s *ServerStock) Len() int {
	return len(s.cards)
}

// IsEmpty returns true if no cards are left
func (s *ServerStock) IsEmpty() bool {
	return len(s.cards) == 0
}

// IsClosed returns true after the stock was closed
func (s *ServerStock) IsClosed() bool {
	return s.closed
}

// Close closes the stock
func (s *ServerStock) Close() {
	s.closed = true
}

// TrumpRank returns the rank of the indicator card
func (s *ServerStock) TrumpRank() (deck.Rank, bool) {
	if s.closed || len(s.cards) == 0 {
		return 0, false
	}

	return s.cards[0].Rank, true
}

// ExchangeTrump swaps the rank of the indicator card
func (s *ServerStock) ExchangeTrump(rank deck.Rank) (deck.Rank, bool) {
	old, ok := s.TrumpRank()
	if !ok {
		return 0, false
	}

	s.cards[0].Rank = rank
	return old, true
}

// Deal pops the last card
// A closed stock never deals
func (s *ServerStock) Deal() (deck.Card, bool) {
	if s.closed || len(s.cards) == 0 {
		return deck.Card{}, false
	}

	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card, true
}

// Cards returns a copy of the remaining cards
func (s *ServerStock) Cards() []deck.Card {
	return append([]deck.Card{}, s.cards...)
}

// OpaqueStock only knows the size of the stock and the exposed trump rank
// It backs a game rebuilt from a single seat's point of view.
type OpaqueStock struct {
	length    int
	trumpRank deck.Rank
	hasTrump  bool
	closed    bool
}

// NewOpaqueStock returns a stock with length cards
// trumpRank may be nil if no indicator is visible
func NewOpaqueStock(length int, trumpRank *deck.Rank, closed bool) *OpaqueStock {
	s := &OpaqueStock{
		length: length,
		closed: closed,
	}

	if trumpRank != nil {
		s.trumpRank = *trumpRank
		s.hasTrump = true
	}

	return s
}

// Len returns the number of cards in the stock
func (s *OpaqueStock) Len() int {
	return s.length
}

// IsEmpty returns true if no cards are left
func (s *OpaqueStock) IsEmpty() bool {
	return s.length == 0
}

// IsClosed returns true after the stock was closed
func (s *OpaqueStock) IsClosed() bool {
	return s.closed
}

// Close closes the stock
func (s *OpaqueStock) Close() {
	s.closed = true
}

// TrumpRank returns the exposed rank
func (s *OpaqueStock) TrumpRank() (deck.Rank, bool) {
	if s.closed || s.length == 0 || !s.hasTrump {
		return 0, false
	}

	return s.trumpRank, true
}

// ExchangeTrump swaps the exposed rank
func (s *OpaqueStock) ExchangeTrump(rank deck.Rank) (deck.Rank, bool) {
	old, ok := s.TrumpRank()
	if !ok {
		return 0, false
	}

	s.trumpRank = rank
	return old, true
}

// Deal shrinks the stock by one but never yields a card
func (s *OpaqueStock) Deal() (deck.Card, bool) {
	if s.length > 0 {
		s.length--
	}

	return deck.Card{}, false
}
