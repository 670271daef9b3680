package room

import (
	"sync"

	"github.com/d-becker/schnapsen/pkg/playable"
	"github.com/sirupsen/logrus"
)

type state int

const (
	stateClientEvent state = iota
	stateGameEvent
	stateGameEnded
)

// Dealer owns a single match
// Every call into the game happens on the dealer's run loop, so the game never sees
// concurrent access.
type Dealer struct {
	pitBoss   *PitBoss
	matchUUID string
	clients   map[*Client]bool
	lock      sync.RWMutex
	game      playable.Playable
	isOver    bool
	log       logrus.FieldLogger

	// logMessages must only be accessed from the run loop
	logMessages []*playable.LogMessage
	details     *playable.GameOverDetails

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(pitBoss *PitBoss, matchUUID string, game playable.Playable) *Dealer {
	d := &Dealer{
		pitBoss:       pitBoss,
		matchUUID:     matchUUID,
		clients:       make(map[*Client]bool),
		game:          game,
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
		logMessages:   make([]*playable.LogMessage, 0),
		log: logrus.WithFields(logrus.Fields{
			"uuid": matchUUID,
			"game": game.Name(),
		}),
	}

	return d
}

// MatchUUID returns the UUID of the match the dealer runs
func (d *Dealer) MatchUUID() string {
	return d.matchUUID
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// IsOver returns true once the game has a winner
func (d *Dealer) IsOver() bool {
	d.lock.RLock()
	defer d.lock.RUnlock()

	return d.isOver
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.log.Debug("creating dealer run loop")
	for {
		select {
		case s := <-d.stateChanged:
			switch s {
			case stateClientEvent:
				d.sendClientState()
			case stateGameEvent:
				d.sendGameData()
			case stateGameEnded:
				d.sendGameData()
				d.sendGameEnded()
			}
		case fn := <-d.execInRunLoop:
			fn()
		case msgs := <-d.game.LogChan():
			d.addLogMessages(msgs)
			d.sendLogMessages(msgs)
		case <-d.close:
			d.log.Debug("terminating dealer run loop")
			return
		}
	}
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	client.setDealer(d)

	d.lock.Lock()
	d.clients[client] = true
	d.lock.Unlock()

	d.stateChanged <- stateClientEvent
	d.execInRunLoop <- func() {
		d.sendGameDataTo(client)
		client.Send(&playable.Response{
			Key:  "log",
			Data: append([]*playable.LogMessage{}, d.logMessages...),
		})

		if d.details != nil {
			client.Send(d.gameEndedResponse())
		}
	}
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	if nClients > 0 {
		d.stateChanged <- stateClientEvent
		return false
	}

	return true
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

func (d *Dealer) gameEndedResponse() *playable.Response {
	return &playable.Response{
		Key:  "gameEnded",
		Data: d.details,
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameEnded() {
	res := d.gameEndedResponse()
	for _, client := range d.Clients() {
		client.Send(res)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	for _, client := range d.Clients() {
		d.sendGameDataTo(client)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameDataTo(client *Client) {
	data, err := d.game.GetPlayerState(client.seat)
	if err != nil {
		d.log.WithError(err).WithField("client", client.String()).Error("could not get player state")
		return
	}

	client.Send(data)
}

// sendClientState tells every client which seats are connected
func (d *Dealer) sendClientState() {
	clients := d.Clients()

	connected := make(map[int]bool)
	for _, client := range clients {
		connected[client.seat] = true
	}

	seats := make([]*clientStateSeat, 0, 2)
	for _, seat := range []int{1, 2} {
		seats = append(seats, &clientStateSeat{
			Seat:        seat,
			IsConnected: connected[seat],
		})
	}

	res := &playable.Response{
		Key:  "clientState",
		Data: seats,
	}

	for _, client := range clients {
		client.Send(res)
	}
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	switch msg.Action {
	case "getState":
		d.execInRunLoop <- func() {
			d.sendGameDataTo(c)
			c.Send(playable.OK(msg.Context))
		}
	default:
		d.execInRunLoop <- func() {
			d.performAction(c, msg)
		}
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) performAction(c *Client, msg *playable.PayloadIn) {
	if d.details != nil {
		c.Send(playable.ErrorResponse(msg.Context, ErrGameIsOver))
		return
	}

	log := d.log.WithField("client", c.String())

	res, updateState, err := d.game.Action(c.seat, msg)
	if err != nil {
		log.WithError(err).Info("could not perform action")
		c.Send(playable.ErrorResponse(msg.Context, err))
		return
	}

	if res != nil {
		res.Context = msg.Context
		c.Send(res)
	}

	details, isOver := d.game.GetEndOfGameDetails()
	if isOver {
		log.WithField("winner", details.Winner).Info("game ended")
		d.details = details

		d.lock.Lock()
		d.isOver = true
		d.lock.Unlock()

		d.stateChanged <- stateGameEnded
		return
	}

	if updateState {
		d.stateChanged <- stateGameEvent
	}
}
