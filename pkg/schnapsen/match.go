package schnapsen

import (
	"errors"
	"fmt"

	"github.com/d-becker/schnapsen/pkg/deck"
	"github.com/d-becker/schnapsen/pkg/playable"
	"github.com/sirupsen/logrus"
)

// name is the name of the game
const name = "Schnapsen"

// logChanSize is how many batches of log messages can wait for the dealer
const logChanSize = 256

// Match hosts a single game for two seats
// Requests go through the gate before they reach the game. A Match is not safe for
// concurrent use, the host must serialize calls.
type Match struct {
	game        *Game
	gate        *Gate
	seed        int64
	stateNumber int

	logger  logrus.FieldLogger
	logChan chan []*playable.LogMessage
}

// NewMatch deals a new random game
func NewMatch(logger logrus.FieldLogger, opts Options) (*Match, error) {
	game, seed, err := NewRandomGame(0, opts)
	if err != nil {
		return nil, err
	}

	m := NewMatchFromGame(logger, game)
	m.seed = seed
	m.logger = m.logger.WithField("seed", seed)

	return m, nil
}

// NewMatchFromGame hosts an existing game
func NewMatchFromGame(logger logrus.FieldLogger, game *Game) *Match {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	m := &Match{
		game:    game,
		gate:    NewGate(game),
		logger:  logger,
		logChan: make(chan []*playable.LogMessage, logChanSize),
	}

	m.sendLogMessages(playable.SimpleLogMessage(0, "New game of %s started, %s is trump", name, game.Trump()))
	return m
}

// StateNumber returns the number of accepted requests
func (m *Match) StateNumber() int {
	return m.stateNumber
}

// Seed returns the shuffle seed, or 0 if the deck was not shuffled by the match
func (m *Match) Seed() int64 {
	return m.seed
}

// StateUpdate returns the current numbered snapshot for seat
func (m *Match) StateUpdate(seat Seat) (*StateUpdate, error) {
	state, err := m.gate.State(seat)
	if err != nil {
		return nil, err
	}

	return &StateUpdate{
		StateNumber: m.stateNumber,
		State:       state,
	}, nil
}

func (m *Match) stateUpdates() map[Seat]*StateUpdate {
	updates := make(map[Seat]*StateUpdate, len(Seats))
	for _, seat := range Seats {
		updates[seat], _ = m.StateUpdate(seat)
	}

	return updates
}

// HandleRequest executes the request for seat
// A rejected command is reported in the response and produces no updates. An accepted command
// produces one update per seat. The error is only set if seat is not a valid seat.
func (m *Match) HandleRequest(seat Seat, req Request) (*Response, map[Seat]*StateUpdate, error) {
	if !seat.Valid() {
		return nil, nil, ErrInvalidSeat
	}

	res := &Response{RequestID: req.ID}
	log := m.logger.WithFields(logrus.Fields{
		"seat":   seat,
		"action": req.Command.Action,
	})

	game, err := m.gate.GameAs(seat)
	if err == nil {
		var trick *Trick
		trick, err = req.Command.Execute(game)
		if err == nil {
			m.stateNumber++
			log.WithField("stateNumber", m.stateNumber).Debug("command accepted")
			m.logCommand(seat, req.Command, trick)

			return res, m.stateUpdates(), nil
		}
	}

	var gameErr *Error
	if !errors.As(err, &gameErr) {
		// malformed commands have no game error kind
		return nil, nil, err
	}

	log.WithError(err).Debug("command rejected")
	res.Error = gameErr
	return res, nil, nil
}

func (m *Match) logCommand(seat Seat, cmd Command, trick *Trick) {
	s := int(seat)
	msgs := make([]*playable.LogMessage, 0, 3)

	switch cmd.Action {
	case ActionClose:
		msgs = append(msgs, playable.SimpleLogMessage(s, "{} closed the stock"))
	case ActionExchangeTrump:
		msgs = append(msgs, playable.SimpleLogMessage(s, "{} exchanged the trump"))
	case ActionPlayTwenty:
		msgs = append(msgs, playable.CardLogMessage(s, []deck.Card{*cmd.Card}, "{} called twenty in %s", cmd.Card.Suit))
	case ActionPlayForty:
		msgs = append(msgs, playable.CardLogMessage(s, []deck.Card{*cmd.Card}, "{} called forty"))
	case ActionDeclareTwentyWin:
		msgs = append(msgs, playable.SimpleLogMessage(s, "{} declared a win with twenty in %s", cmd.Suit))
	case ActionDeclareFortyWin:
		msgs = append(msgs, playable.SimpleLogMessage(s, "{} declared a win with forty"))
	case ActionDeclareWin:
		msgs = append(msgs, playable.SimpleLogMessage(s, "{} declared a win"))
	case ActionPlayCard:
		msgs = append(msgs, playable.CardLogMessage(s, []deck.Card{*cmd.Card}, "{} played a card"))
	}

	if trick != nil {
		msgs = append(msgs, playable.CardLogMessage(int(trick.Winner), []deck.Card{trick.Led, trick.Response}, "{} won the trick"))
	}

	if winner := m.game.Winner(); winner != NoSeat {
		msgs = append(msgs, playable.SimpleLogMessage(int(winner), "{} won the game with %d points", m.game.Player(winner).Score()))
	}

	m.sendLogMessages(msgs...)
}

func (m *Match) sendLogMessages(msgs ...*playable.LogMessage) {
	select {
	case m.logChan <- msgs:
	default:
		m.logger.WithField("messages", len(msgs)).Warn("log channel is full, dropping messages")
	}
}

// Action performs a client message for the seat
func (m *Match) Action(seat int, message *playable.PayloadIn) (*playable.Response, bool, error) {
	cmd, err := CommandFromPayload(message)
	if err != nil {
		return nil, false, err
	}

	res, _, err := m.HandleRequest(Seat(seat), Request{ID: message.Context, Command: cmd})
	if err != nil {
		return nil, false, err
	}

	if !res.OK() {
		return nil, false, res.Error
	}

	return playable.OK(message.Context), true, nil
}

// GetPlayerState returns the numbered snapshot for the seat
func (m *Match) GetPlayerState(seat int) (*playable.Response, error) {
	update, err := m.StateUpdate(Seat(seat))
	if err != nil {
		return nil, fmt.Errorf("%w: %d", err, seat)
	}

	return &playable.Response{
		Key:   "game",
		Value: "schnapsen",
		Data:  update,
	}, nil
}

// GetEndOfGameDetails returns the winner and both scores once the game is over
func (m *Match) GetEndOfGameDetails() (*playable.GameOverDetails, bool) {
	winner := m.game.Winner()
	if winner == NoSeat {
		return nil, false
	}

	points := make(map[int]int, len(Seats))
	for _, seat := range Seats {
		points[int(seat)] = m.game.Player(seat).Score()
	}

	return &playable.GameOverDetails{
		Winner: int(winner),
		Points: points,
		Log: map[string]interface{}{
			"seed":        m.seed,
			"stateNumber": m.stateNumber,
			"trump":       m.game.Trump(),
		},
	}, true
}

// Name returns the name of the game
func (m *Match) Name() string {
	return name
}

// LogChan returns the channel log messages are sent to
func (m *Match) LogChan() <-chan []*playable.LogMessage {
	return m.logChan
}
