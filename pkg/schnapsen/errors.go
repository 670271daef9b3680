package schnapsen

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/d-becker/schnapsen/pkg/deck"
)

// ErrorKind is the reason a command was rejected by the game
type ErrorKind int

// error kinds
const (
	KindGameOver ErrorKind = iota + 1
	KindDeckClosed
	KindNotEnoughCardsInStock
	KindNoSuchCardInHand
	KindNotTwentyCard
	KindAlreadyCalledThisTwenty
	KindTwentyWithTrumpSuit
	KindNotFortyCard
	KindAlreadyCalledForty
	KindPlayerNotOnLead
	KindNotPlayersTurn
	KindMustUseAnotherSuit
	KindMustTake
	KindMustUseTrump
	KindScoreTooLow
)

var kindNames = map[ErrorKind]string{
	KindGameOver:                "GameOver",
	KindDeckClosed:              "DeckClosed",
	KindNotEnoughCardsInStock:   "NotEnoughCardsInStock",
	KindNoSuchCardInHand:        "NoSuchCardInHand",
	KindNotTwentyCard:           "NotTwentyCard",
	KindAlreadyCalledThisTwenty: "AlreadyCalledThisTwenty",
	KindTwentyWithTrumpSuit:     "TwentyWithTrumpSuit",
	KindNotFortyCard:            "NotFortyCard",
	KindAlreadyCalledForty:      "AlreadyCalledForty",
	KindPlayerNotOnLead:         "PlayerNotOnLead",
	KindNotPlayersTurn:          "NotPlayersTurn",
	KindMustUseAnotherSuit:      "MustUseAnotherSuit",
	KindMustTake:                "MustTake",
	KindMustUseTrump:            "MustUseTrump",
	KindScoreTooLow:             "ScoreTooLow",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// MarshalText encodes the kind by name
func (k ErrorKind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown error kind: %d", int(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText decodes the kind from its name
func (k *ErrorKind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}

	return fmt.Errorf("unknown error kind: %q", string(text))
}

// Error is a rejected command
// Only the field that belongs to the kind is set: Card for NoSuchCardInHand, NotTwentyCard,
// NotFortyCard and MustTake, Suit for AlreadyCalledThisTwenty and MustUseAnotherSuit,
// Score for ScoreTooLow.
type Error struct {
	Kind  ErrorKind
	Card  deck.Card
	Suit  deck.Suit
	Score int
}

// ErrGameOver is returned for any command after the winner has been decided
var ErrGameOver = &Error{Kind: KindGameOver}

// ErrDeckClosed happens when the stock is closed or the trump exchanged after closing
var ErrDeckClosed = &Error{Kind: KindDeckClosed}

// ErrNotEnoughCardsInStock happens when closing or exchanging with two or fewer cards left
var ErrNotEnoughCardsInStock = &Error{Kind: KindNotEnoughCardsInStock}

// ErrTwentyWithTrumpSuit happens when a twenty is called in the trump suit
var ErrTwentyWithTrumpSuit = &Error{Kind: KindTwentyWithTrumpSuit}

// ErrAlreadyCalledForty happens when the player calls forty a second time
var ErrAlreadyCalledForty = &Error{Kind: KindAlreadyCalledForty}

// ErrPlayerNotOnLead happens when a lead-only command is sent in the middle of a trick
var ErrPlayerNotOnLead = &Error{Kind: KindPlayerNotOnLead}

// ErrNotPlayersTurn happens when a seat acts out of turn
var ErrNotPlayersTurn = &Error{Kind: KindNotPlayersTurn}

// ErrMustUseTrump happens in the endgame when the player cannot follow suit but holds a trump
var ErrMustUseTrump = &Error{Kind: KindMustUseTrump}

// NoSuchCardInHand returns an error naming the card the player does not hold
func NoSuchCardInHand(card deck.Card) *Error {
	return &Error{Kind: KindNoSuchCardInHand, Card: card}
}

// NotTwentyCard returns an error for a card that cannot be part of a twenty
func NotTwentyCard(card deck.Card) *Error {
	return &Error{Kind: KindNotTwentyCard, Card: card}
}

// AlreadyCalledThisTwenty returns an error for a twenty that was called before
func AlreadyCalledThisTwenty(suit deck.Suit) *Error {
	return &Error{Kind: KindAlreadyCalledThisTwenty, Suit: suit}
}

// NotFortyCard returns an error for a card that cannot be part of the forty
func NotFortyCard(card deck.Card) *Error {
	return &Error{Kind: KindNotFortyCard, Card: card}
}

// MustUseAnotherSuit returns an error when the player has to follow the led suit
func MustUseAnotherSuit(suit deck.Suit) *Error {
	return &Error{Kind: KindMustUseAnotherSuit, Suit: suit}
}

// MustTake returns an error naming the card that would take the trick
func MustTake(card deck.Card) *Error {
	return &Error{Kind: KindMustTake, Card: card}
}

// ScoreTooLow returns an error carrying the player's current score
func ScoreTooLow(score int) *Error {
	return &Error{Kind: KindScoreTooLow, Score: score}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindGameOver:
		return "the game is over"
	case KindDeckClosed:
		return "the stock is closed"
	case KindNotEnoughCardsInStock:
		return "not enough cards in the stock"
	case KindNoSuchCardInHand:
		return fmt.Sprintf("card %s is not in the player's hand", e.Card)
	case KindNotTwentyCard:
		return fmt.Sprintf("card %s cannot be used for a twenty", e.Card)
	case KindAlreadyCalledThisTwenty:
		return fmt.Sprintf("twenty in %s was already called", e.Suit)
	case KindTwentyWithTrumpSuit:
		return "a twenty cannot be called in the trump suit"
	case KindNotFortyCard:
		return fmt.Sprintf("card %s cannot be used for a forty", e.Card)
	case KindAlreadyCalledForty:
		return "forty was already called"
	case KindPlayerNotOnLead:
		return "player is not on lead"
	case KindNotPlayersTurn:
		return "not player's turn"
	case KindMustUseAnotherSuit:
		return fmt.Sprintf("player must follow with %s", e.Suit)
	case KindMustTake:
		return fmt.Sprintf("player must take the trick with %s", e.Card)
	case KindMustUseTrump:
		return "player must use a trump card"
	case KindScoreTooLow:
		return fmt.Sprintf("score of %d is too low", e.Score)
	}

	return e.Kind.String()
}

// Is matches on the kind, so errors.Is(err, ErrGameOver) works and
// errors.Is(err, MustTake(deck.Card{})) matches any MustTake error
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Kind == e.Kind
}

// KindOf returns the kind of a game error, or 0 if err is not one
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}

type errorJSON struct {
	Kind  ErrorKind  `json:"kind"`
	Card  *deck.Card `json:"card,omitempty"`
	Suit  deck.Suit  `json:"suit,omitempty"`
	Score *int       `json:"score,omitempty"`
}

// MarshalJSON only writes the payload that belongs to the kind
func (e *Error) MarshalJSON() ([]byte, error) {
	out := errorJSON{Kind: e.Kind}
	switch e.Kind {
	case KindNoSuchCardInHand, KindNotTwentyCard, KindNotFortyCard, KindMustTake:
		card := e.Card
		out.Card = &card
	case KindAlreadyCalledThisTwenty, KindMustUseAnotherSuit:
		out.Suit = e.Suit
	case KindScoreTooLow:
		score := e.Score
		out.Score = &score
	}

	return json.Marshal(out)
}

// UnmarshalJSON reads the format written by MarshalJSON
func (e *Error) UnmarshalJSON(b []byte) error {
	var in errorJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}

	*e = Error{Kind: in.Kind, Suit: in.Suit}
	if in.Card != nil {
		e.Card = *in.Card
	}

	if in.Score != nil {
		e.Score = *in.Score
	}

	return nil
}
