package room

import (
	"fmt"
	"sync"

	"github.com/d-becker/schnapsen/pkg/playable"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a client connected to the server via websockets
// Each client plays one seat of one match.
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	dealer     *Dealer
	dealerLock sync.RWMutex

	matchUUID string
	seat      int
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, matchUUID string, seat int) *Client {
	return &Client{
		send:      make(chan interface{}, 256),
		Close:     make(chan string, 1),
		Conn:      conn,
		matchUUID: matchUUID,
		seat:      seat,
	}
}

// Send send a message to the web client
// The message is dropped if the client is not keeping up
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		logrus.WithField("client", c.String()).Warn("send buffer is full, dropping message")
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// Seat returns the seat the client plays
func (c *Client) Seat() int {
	return c.seat
}

// MatchUUID returns the match the client belongs to
func (c *Client) MatchUUID() string {
	return c.matchUUID
}

// String returns a traceable identifier for the seat and match
func (c *Client) String() string {
	return fmt.Sprintf("%s:%d", c.matchUUID, c.seat)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	dealer := c.getDealer()
	if dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	dealer.ReceivedMessage(c, msg)
}

// setDealer is called from the pit boss run loop, messages arrive on the websocket goroutine
func (c *Client) setDealer(d *Dealer) {
	c.dealerLock.Lock()
	c.dealer = d
	c.dealerLock.Unlock()
}

func (c *Client) getDealer() *Dealer {
	c.dealerLock.RLock()
	defer c.dealerLock.RUnlock()

	return c.dealer
}
