package playable

import (
	"fmt"
	"time"

	"github.com/d-becker/schnapsen/pkg/deck"
	"github.com/google/uuid"
)

// Playable is a game that can be hosted by a dealer
// Seats are numbered from 1. A Playable is never called concurrently: the dealer serializes access.
type Playable interface {
	// Action performs with a message
	// If playerResponse is not null, that's the response sent directly to the client
	// If updateState is true, it will trigger a state update for all connected clients
	Action(seat int, message *PayloadIn) (playerResponse *Response, updateState bool, err error)

	// GetPlayerState returns the current state of the game for the seat
	GetPlayerState(seat int) (*Response, error)

	// GetEndOfGameDetails returns the details after a game is over
	// If the game is still in progress, nil will be returned and the second param will be false
	GetEndOfGameDetails() (gameOverDetails *GameOverDetails, isGameOver bool)

	// Name returns the name of the game
	Name() string

	// LogChan should return a channel that a game will send log messages to
	LogChan() <-chan []*LogMessage
}

// LogMessage is the format a game should send log messages in
// If Seats is empty, assume it's a general statement, otherwise the message will be sent like "{seat} did X, Y, Z"
type LogMessage struct {
	UUID    string      `json:"uuid"`
	Seats   []int       `json:"seats"`
	Cards   []deck.Card `json:"cards"`
	Message string      `json:"message"`
	Time    time.Time   `json:"time"`
}

// Response is a container for everything the server sends to a client
// Context echoes the context of the request it answers, if any
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// ErrorResponse returns a failure response for the request with the given context
// The error itself is attached as data so structured errors reach the client intact
func ErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Data:    err,
		Context: ctx,
	}
}

// PayloadIn is the format we expect from the client
type PayloadIn struct {
	Action  string      `json:"action"`
	Subject string      `json:"subject"`
	Cards   []deck.Card `json:"cards"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// GameOverDetails provides details on how the game ended
type GameOverDetails struct {
	Winner int         `json:"winner"`
	Points map[int]int `json:"points"`
	Log    interface{} `json:"log"`
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(seat int, format string, a ...interface{}) *LogMessage {
	var seats []int
	if seat > 0 {
		seats = []int{seat}
	}

	return &LogMessage{
		UUID:    uuid.New().String(),
		Seats:   seats,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// CardLogMessage returns a new LogMessage that shows the cards alongside the message
func CardLogMessage(seat int, cards []deck.Card, format string, a ...interface{}) *LogMessage {
	msg := SimpleLogMessage(seat, format, a...)
	if len(cards) > 0 {
		msg.Cards = append([]deck.Card{}, cards...)
	}

	return msg
}

// SimpleLogMessageSlice returns a single log message
func SimpleLogMessageSlice(seat int, format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(seat, format, a...)}
}
