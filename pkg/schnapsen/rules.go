package schnapsen

import "github.com/d-becker/schnapsen/pkg/deck"

// FirstBeatsSecond returns true if the led card wins the trick against second
func FirstBeatsSecond(led, second deck.Card, trump deck.Suit) bool {
	if led.Suit == second.Suit {
		return led.Value() > second.Value()
	}

	return second.Suit != trump
}

// legalSecondCardInEndgame enforces the follow-suit rules once the stock is closed or empty
// hand still contains second
func legalSecondCardInEndgame(led deck.Card, hand deck.Hand, second deck.Card, trump deck.Suit) error {
	if led.Suit == second.Suit {
		if led.Value() < second.Value() {
			return nil
		}

		for _, card := range hand {
			if card.Suit == led.Suit && led.Value() < card.Value() {
				return MustTake(card)
			}
		}

		return nil
	}

	if hand.HasSuit(led.Suit) {
		return MustUseAnotherSuit(led.Suit)
	}

	if second.Suit == trump {
		return nil
	}

	if hand.HasSuit(trump) {
		return ErrMustUseTrump
	}

	return nil
}
