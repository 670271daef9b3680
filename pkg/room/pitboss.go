package room

import (
	"errors"
	"sync"

	"github.com/d-becker/schnapsen/pkg/playable"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrMatchNotFound is returned when no dealer runs the requested match
var ErrMatchNotFound = errors.New("match not found")

// ErrGameIsOver is returned for actions sent after the game ended
var ErrGameIsOver = errors.New("the game is over")

// PitBoss is responsible for dispatching players to matches
type PitBoss struct {
	dealers    map[string]*Dealer
	lock       sync.RWMutex
	connect    chan *Client
	disconnect chan *Client
}

// NewPitBoss returns a new dispatch object
func NewPitBoss() *PitBoss {
	return &PitBoss{
		dealers:    make(map[string]*Dealer),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
	}
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

// AddMatch starts a dealer for game and returns the match UUID
func (p *PitBoss) AddMatch(game playable.Playable) string {
	matchUUID := uuid.New().String()

	dealer := NewDealer(p, matchUUID, game)
	dealer.StartShift()

	p.lock.Lock()
	p.dealers[matchUUID] = dealer
	p.lock.Unlock()

	logrus.WithField("uuid", matchUUID).Info("match created")
	return matchUUID
}

// Dealer returns the dealer of the match
func (p *PitBoss) Dealer(matchUUID string) (*Dealer, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	dealer, found := p.dealers[matchUUID]
	if !found {
		return nil, ErrMatchNotFound
	}

	return dealer, nil
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case client := <-p.connect:
			logrus.WithField("client", client.String()).Debug("client connected")
			dealer, err := p.Dealer(client.matchUUID)
			if err != nil {
				client.CloseError = err
				client.Close <- err.Error()
				continue
			}

			dealer.AddClient(client)
		case client := <-p.disconnect:
			logrus.WithField("client", client.String()).Debug("client disconnected")
			dealer, err := p.Dealer(client.matchUUID)
			if err != nil {
				logrus.WithField("uuid", client.matchUUID).WithField("type", "exception").Error("match not found")
				continue
			}

			// a finished match goes away with its last client
			if dealer.RemoveClient(client) && dealer.IsOver() {
				dealer.EndShift()

				p.lock.Lock()
				delete(p.dealers, client.matchUUID)
				p.lock.Unlock()
			}
		}
	}
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}
