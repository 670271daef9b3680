package schnapsen

import (
	"errors"
	"fmt"

	"github.com/d-becker/schnapsen/pkg/deck"
	"github.com/d-becker/schnapsen/pkg/playable"
)

// ErrUnknownAction is returned for an action outside of the command vocabulary
var ErrUnknownAction = errors.New("unknown action")

// Action names a command
type Action string

// actions
const (
	ActionClose            Action = "close"
	ActionExchangeTrump    Action = "exchangeTrump"
	ActionPlayTwenty       Action = "playTwenty"
	ActionDeclareTwentyWin Action = "declareTwentyWin"
	ActionPlayForty        Action = "playForty"
	ActionDeclareFortyWin  Action = "declareFortyWin"
	ActionDeclareWin       Action = "declareWin"
	ActionPlayCard         Action = "playCard"
)

// Command is a single move
// Card is set for playTwenty, playForty and playCard. Suit is set for declareTwentyWin.
type Command struct {
	Action Action     `json:"action"`
	Card   *deck.Card `json:"card,omitempty"`
	Suit   deck.Suit  `json:"suit,omitempty"`
}

// Close returns a command that closes the stock
func Close() Command { return Command{Action: ActionClose} }

// ExchangeTrump returns a command that exchanges the trump unter
func ExchangeTrump() Command { return Command{Action: ActionExchangeTrump} }

// PlayTwenty returns a command that calls twenty and leads card
func PlayTwenty(card deck.Card) Command { return Command{Action: ActionPlayTwenty, Card: &card} }

// DeclareTwentyWin returns a command that wins with a twenty in suit
func DeclareTwentyWin(suit deck.Suit) Command {
	return Command{Action: ActionDeclareTwentyWin, Suit: suit}
}

// PlayForty returns a command that calls forty and leads card
func PlayForty(card deck.Card) Command { return Command{Action: ActionPlayForty, Card: &card} }

// DeclareFortyWin returns a command that wins with the forty
func DeclareFortyWin() Command { return Command{Action: ActionDeclareFortyWin} }

// DeclareWin returns a command that wins with 66 points
func DeclareWin() Command { return Command{Action: ActionDeclareWin} }

// PlayCard returns a command that plays card
func PlayCard(card deck.Card) Command { return Command{Action: ActionPlayCard, Card: &card} }

func (c Command) validate() error {
	switch c.Action {
	case ActionClose, ActionExchangeTrump, ActionDeclareFortyWin, ActionDeclareWin:
		return nil
	case ActionPlayTwenty, ActionPlayForty, ActionPlayCard:
		if c.Card == nil {
			return fmt.Errorf("%s requires a card", c.Action)
		}

		return nil
	case ActionDeclareTwentyWin:
		for _, suit := range deck.Suits {
			if suit == c.Suit {
				return nil
			}
		}

		return fmt.Errorf("%s requires a suit, got %q", c.Action, c.Suit)
	}

	return fmt.Errorf("%w: %s", ErrUnknownAction, c.Action)
}

// Check runs the checks of the command against g without changing it
func (c Command) Check(g *Game) error {
	if err := c.validate(); err != nil {
		return err
	}

	switch c.Action {
	case ActionClose:
		return g.CanClose()
	case ActionExchangeTrump:
		return g.CanExchangeTrump()
	case ActionPlayTwenty:
		return g.CanPlayTwenty(*c.Card)
	case ActionDeclareTwentyWin:
		return g.CanDeclareTwentyWin(c.Suit)
	case ActionPlayForty:
		return g.CanPlayForty(*c.Card)
	case ActionDeclareFortyWin:
		return g.CanDeclareFortyWin()
	case ActionDeclareWin:
		return g.CanDeclareWin()
	default:
		return g.CanPlayCard(*c.Card)
	}
}

// Execute runs the command against g
// The trick is only set when a playCard completed one.
func (c Command) Execute(g *Game) (*Trick, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	switch c.Action {
	case ActionClose:
		return nil, g.Close()
	case ActionExchangeTrump:
		return nil, g.ExchangeTrump()
	case ActionPlayTwenty:
		return nil, g.PlayTwenty(*c.Card)
	case ActionDeclareTwentyWin:
		return nil, g.DeclareTwentyWin(c.Suit)
	case ActionPlayForty:
		return nil, g.PlayForty(*c.Card)
	case ActionDeclareFortyWin:
		return nil, g.DeclareFortyWin()
	case ActionDeclareWin:
		return nil, g.DeclareWin()
	default:
		return g.PlayCard(*c.Card)
	}
}

// CommandFromPayload reads a command from a client message
// The card is the only entry of Cards, the suit of declareTwentyWin is the Subject.
func CommandFromPayload(payload *playable.PayloadIn) (Command, error) {
	cmd := Command{Action: Action(payload.Action)}

	switch cmd.Action {
	case ActionPlayTwenty, ActionPlayForty, ActionPlayCard:
		if len(payload.Cards) != 1 {
			return Command{}, fmt.Errorf("expected to get 1 card, got %d", len(payload.Cards))
		}

		card := payload.Cards[0]
		cmd.Card = &card
	case ActionDeclareTwentyWin:
		cmd.Suit = deck.Suit(payload.Subject)
	}

	if err := cmd.validate(); err != nil {
		return Command{}, err
	}

	return cmd, nil
}

// Payload returns the client message for the command
func (c Command) Payload(ctx string) *playable.PayloadIn {
	payload := &playable.PayloadIn{
		Action:  string(c.Action),
		Subject: string(c.Suit),
		Context: ctx,
	}

	if c.Card != nil {
		payload.Cards = []deck.Card{*c.Card}
	}

	return payload
}
