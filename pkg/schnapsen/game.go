package schnapsen

import (
	"github.com/d-becker/schnapsen/pkg/deck"
)

// winning scores
const (
	WinningScore       = 66
	TwentyWinningScore = WinningScore - 20
	FortyWinningScore  = WinningScore - 40
)

// Game is a single game of schnapsen between two seats
// Every command has a Can* counterpart that runs the same checks without changing anything.
// Commands act for the seat on turn. Game is not safe for concurrent use.
type Game struct {
	players [2]Player
	stock   Stock
	trump   deck.Suit

	winner Seat
	onLead Seat
	led    *deck.Card

	// perspective is set when the game is seen from a single seat
	perspective Seat
}

// Trick is the outcome of a resolved trick
type Trick struct {
	Led      deck.Card `json:"led"`
	Response deck.Card `json:"response"`
	Winner   Seat      `json:"winner"`

	// Drawn holds the cards each seat took from the stock
	// It is empty when the stock was closed or empty.
	Drawn map[Seat]deck.Card `json:"drawn,omitempty"`
}

// Player returns the player in the seat
// It panics unless seat is Player1 or Player2.
func (g *Game) Player(seat Seat) Player {
	return g.players[seat.index()]
}

// Stock returns the stock
func (g *Game) Stock() Stock {
	return g.stock
}

// Trump returns the trump suit
func (g *Game) Trump() deck.Suit {
	return g.trump
}

// TrumpCard returns the exposed trump card
func (g *Game) TrumpCard() (deck.Card, bool) {
	rank, ok := g.stock.TrumpRank()
	if !ok {
		return deck.Card{}, false
	}

	return deck.NewCard(g.trump, rank), true
}

// OnLead returns the seat that leads the current trick
func (g *Game) OnLead() Seat {
	return g.onLead
}

// OnTurn returns the seat that has to act next
func (g *Game) OnTurn() Seat {
	if g.led != nil {
		return g.onLead.Other()
	}

	return g.onLead
}

// LedCard returns the first card of the current trick
func (g *Game) LedCard() (deck.Card, bool) {
	if g.led == nil {
		return deck.Card{}, false
	}

	return *g.led, true
}

// IsClosed returns true if the stock is closed
func (g *Game) IsClosed() bool {
	return g.stock.IsClosed()
}

// IsGameOver returns true once a winner is known
func (g *Game) IsGameOver() bool {
	return g.winner != NoSeat
}

// Winner returns the winning seat, or NoSeat
func (g *Game) Winner() Seat {
	return g.winner
}

func (g *Game) playerOnTurn() Player {
	return g.Player(g.OnTurn())
}

func (g *Game) isEndgame() bool {
	return g.stock.IsClosed() || g.stock.IsEmpty()
}

// onTurn only rejects when the game is seen from a seat that is not on turn
func (g *Game) onTurn() error {
	if g.perspective != NoSeat && g.perspective != g.OnTurn() {
		return ErrNotPlayersTurn
	}

	return nil
}

func (g *Game) onLeadCheck() error {
	if err := g.onTurn(); err != nil {
		return err
	}

	if g.led != nil {
		return ErrPlayerNotOnLead
	}

	return nil
}

// CanClose checks if the player on lead can close the stock
func (g *Game) CanClose() error {
	if err := g.onLeadCheck(); err != nil {
		return err
	}

	if g.IsGameOver() {
		return ErrGameOver
	}

	if g.stock.IsClosed() {
		return ErrDeckClosed
	}

	if g.stock.Len() <= 2 {
		return ErrNotEnoughCardsInStock
	}

	return nil
}

// Close closes the stock
func (g *Game) Close() error {
	if err := g.CanClose(); err != nil {
		return err
	}

	g.stock.Close()
	return nil
}

// CanExchangeTrump checks if the player on lead can swap the trump unter for the indicator
func (g *Game) CanExchangeTrump() error {
	if err := g.onLeadCheck(); err != nil {
		return err
	}

	if g.IsGameOver() {
		return ErrGameOver
	}

	if g.stock.IsClosed() {
		return ErrDeckClosed
	}

	if g.stock.Len() <= 2 {
		return ErrNotEnoughCardsInStock
	}

	unter := deck.NewCard(g.trump, deck.Unter)
	if !g.playerOnTurn().Hand().HasCard(unter) {
		return NoSuchCardInHand(unter)
	}

	return nil
}

// ExchangeTrump takes the indicator card into the hand and leaves the trump unter in its place
func (g *Game) ExchangeTrump() error {
	if err := g.CanExchangeTrump(); err != nil {
		return err
	}

	oldRank, _ := g.stock.ExchangeTrump(deck.Unter)

	player := g.playerOnTurn()
	player.RemoveFromHand(deck.NewCard(g.trump, deck.Unter))
	player.AddToHand(deck.NewCard(g.trump, oldRank))

	return nil
}

// CanDeclareWin checks if the player on lead has reached 66
func (g *Game) CanDeclareWin() error {
	if err := g.onLeadCheck(); err != nil {
		return err
	}

	if g.IsGameOver() {
		return ErrGameOver
	}

	if score := g.playerOnTurn().Score(); score < WinningScore {
		return ScoreTooLow(score)
	}

	return nil
}

// DeclareWin ends the game with the player on lead as the winner
func (g *Game) DeclareWin() error {
	if err := g.CanDeclareWin(); err != nil {
		return err
	}

	g.winner = g.OnTurn()
	return nil
}

func pairedCard(card deck.Card) deck.Card {
	if card.Rank == deck.Ober {
		return deck.NewCard(card.Suit, deck.King)
	}

	return deck.NewCard(card.Suit, deck.Ober)
}

// CanPlayTwenty checks if the player on lead can call twenty and lead card
func (g *Game) CanPlayTwenty(card deck.Card) error {
	if err := g.onLeadCheck(); err != nil {
		return err
	}

	if card.Rank != deck.Ober && card.Rank != deck.King {
		return NotTwentyCard(card)
	}

	if g.IsGameOver() {
		return ErrGameOver
	}

	player := g.playerOnTurn()
	hand := player.Hand()
	if !hand.HasCard(card) {
		return NoSuchCardInHand(card)
	}

	if other := pairedCard(card); !hand.HasCard(other) {
		return NoSuchCardInHand(other)
	}

	for _, suit := range player.Twenties() {
		if suit == card.Suit {
			return AlreadyCalledThisTwenty(suit)
		}
	}

	if card.Suit == g.trump {
		return ErrTwentyWithTrumpSuit
	}

	return nil
}

// PlayTwenty calls twenty in the suit of card and leads card
func (g *Game) PlayTwenty(card deck.Card) error {
	if err := g.CanPlayTwenty(card); err != nil {
		return err
	}

	g.playerOnTurn().AddTwenty(card.Suit)
	g.leadCard(card)
	return nil
}

// CanDeclareTwentyWin checks if a twenty in suit would bring the player on lead to 66
func (g *Game) CanDeclareTwentyWin(suit deck.Suit) error {
	if err := g.CanPlayTwenty(deck.NewCard(suit, deck.King)); err != nil {
		return err
	}

	if score := g.playerOnTurn().Score(); score < TwentyWinningScore {
		return ScoreTooLow(score)
	}

	return nil
}

// DeclareTwentyWin ends the game on the strength of a twenty in suit
func (g *Game) DeclareTwentyWin(suit deck.Suit) error {
	if err := g.CanDeclareTwentyWin(suit); err != nil {
		return err
	}

	g.winner = g.OnTurn()
	return nil
}

// CanPlayForty checks if the player on lead can call forty and lead card
func (g *Game) CanPlayForty(card deck.Card) error {
	if err := g.onLeadCheck(); err != nil {
		return err
	}

	if card.Suit != g.trump || (card.Rank != deck.Ober && card.Rank != deck.King) {
		return NotFortyCard(card)
	}

	if g.IsGameOver() {
		return ErrGameOver
	}

	player := g.playerOnTurn()
	hand := player.Hand()
	for _, c := range []deck.Card{deck.NewCard(g.trump, deck.Ober), deck.NewCard(g.trump, deck.King)} {
		if !hand.HasCard(c) {
			return NoSuchCardInHand(c)
		}
	}

	if _, ok := player.Forty(); ok {
		return ErrAlreadyCalledForty
	}

	return nil
}

// PlayForty calls forty and leads card
func (g *Game) PlayForty(card deck.Card) error {
	if err := g.CanPlayForty(card); err != nil {
		return err
	}

	g.playerOnTurn().SetForty(g.trump)
	g.leadCard(card)
	return nil
}

// CanDeclareFortyWin checks if the forty would bring the player on lead to 66
func (g *Game) CanDeclareFortyWin() error {
	if err := g.CanPlayForty(deck.NewCard(g.trump, deck.King)); err != nil {
		return err
	}

	if score := g.playerOnTurn().Score(); score < FortyWinningScore {
		return ScoreTooLow(score)
	}

	return nil
}

// DeclareFortyWin ends the game on the strength of the forty
func (g *Game) DeclareFortyWin() error {
	if err := g.CanDeclareFortyWin(); err != nil {
		return err
	}

	g.winner = g.OnTurn()
	return nil
}

// CanPlayCard checks if the player on turn can play card
func (g *Game) CanPlayCard(card deck.Card) error {
	if err := g.onTurn(); err != nil {
		return err
	}

	if g.IsGameOver() {
		return ErrGameOver
	}

	hand := g.playerOnTurn().Hand()
	if !hand.HasCard(card) {
		return NoSuchCardInHand(card)
	}

	if g.led == nil || !g.isEndgame() {
		return nil
	}

	return legalSecondCardInEndgame(*g.led, hand, card, g.trump)
}

// PlayCard plays card for the player on turn
// The returned trick is nil if card opened a new trick.
func (g *Game) PlayCard(card deck.Card) (*Trick, error) {
	if err := g.CanPlayCard(card); err != nil {
		return nil, err
	}

	if g.led == nil {
		g.leadCard(card)
		return nil, nil
	}

	return g.resolveTrick(card), nil
}

func (g *Game) leadCard(card deck.Card) {
	g.playerOnTurn().RemoveFromHand(card)
	g.led = &card
}

func (g *Game) resolveTrick(response deck.Card) *Trick {
	g.playerOnTurn().RemoveFromHand(response)

	led := *g.led
	winner := g.onLead
	if !FirstBeatsSecond(led, response, g.trump) {
		winner = g.onLead.Other()
	}

	g.Player(winner).AddToWins(led, response)

	trick := &Trick{
		Led:      led,
		Response: response,
		Winner:   winner,
		Drawn:    g.deal(winner),
	}

	g.onLead = winner
	g.led = nil

	for _, p := range g.players {
		if !p.IsHidden() && len(p.Hand()) == 0 {
			g.winner = winner
			break
		}
	}

	return trick
}

// deal gives one card to the trick winner, then one to the loser
// Nothing moves unless both cards could be dealt.
func (g *Game) deal(winner Seat) map[Seat]deck.Card {
	if g.isEndgame() {
		return nil
	}

	winnerCard, ok1 := g.stock.Deal()
	loserCard, ok2 := g.stock.Deal()
	if !ok1 || !ok2 {
		return nil
	}

	g.Player(winner).AddToHand(winnerCard)
	g.Player(winner.Other()).AddToHand(loserCard)

	return map[Seat]deck.Card{
		winner:         winnerCard,
		winner.Other(): loserCard,
	}
}
