package deck

// Hand represents a collection of cards
type Hand []Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	return h.Index(card) >= 0
}

// Index returns the position of the card in the hand, or -1
func (h Hand) Index(card Card) int {
	for i, c := range h {
		if c == card {
			return i
		}
	}

	return -1
}

// HasSuit returns true if any card in the hand is of the suit
func (h Hand) HasSuit(suit Suit) bool {
	for _, c := range h {
		if c.Suit == suit {
			return true
		}
	}

	return false
}

// Remove removes the first occurrence of the card and reports whether it was found
func (h *Hand) Remove(card Card) bool {
	i := h.Index(card)
	if i < 0 {
		return false
	}

	newHand := make(Hand, 0, len(*h)-1)
	newHand = append(newHand, (*h)[:i]...)
	newHand = append(newHand, (*h)[i+1:]...)
	*h = newHand

	return true
}

// Points returns the sum of the card values
func (h Hand) Points() int {
	points := 0
	for _, c := range h {
		points += c.Value()
	}

	return points
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
