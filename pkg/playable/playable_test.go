package playable

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/d-becker/schnapsen/pkg/deck"
	"github.com/stretchr/testify/assert"
)

func TestSimpleLogMessage(t *testing.T) {
	before := time.Now()
	lm := SimpleLogMessage(0, "test %d", 5)
	assert.Equal(t, "test 5", lm.Message)
	assert.Nil(t, lm.Seats)
	assert.False(t, lm.Time.Before(before))
	assert.False(t, lm.Time.After(time.Now()))
	assert.Nil(t, lm.Cards)
	assert.NotEmpty(t, lm.UUID)
}

func TestSimpleLogMessage_withSeat(t *testing.T) {
	lm := SimpleLogMessage(1, "test %d", 4)
	assert.Equal(t, "test 4", lm.Message)
	assert.Equal(t, []int{1}, lm.Seats)
}

func TestSimpleLogMessageSlice(t *testing.T) {
	lms := SimpleLogMessageSlice(0, "test %d", 38)
	assert.Equal(t, 1, len(lms))
	assert.Equal(t, "test 38", lms[0].Message)
}

func TestCardLogMessage(t *testing.T) {
	cards := deck.CardsFromString("al,kh")
	lm := CardLogMessage(2, cards, "{} played a card")
	assert.Equal(t, cards, lm.Cards)
	assert.Equal(t, []int{2}, lm.Seats)

	lm = CardLogMessage(2, nil, "{} closed the stock")
	assert.Nil(t, lm.Cards)
}

func TestOK(t *testing.T) {
	assert.Equal(t, &Response{Key: "status", Value: "OK"}, OK())
	assert.Equal(t, &Response{Key: "status", Value: "OK", Context: "7"}, OK("7"))
}

func TestErrorResponse(t *testing.T) {
	err := errors.New("bad things")
	res := ErrorResponse("3", err)
	assert.Equal(t, "error", res.Key)
	assert.Equal(t, "bad things", res.Value)
	assert.Equal(t, "3", res.Context)
	assert.Equal(t, err, res.Data)
}

func TestPayloadIn_JSON(t *testing.T) {
	var msg PayloadIn
	err := json.Unmarshal([]byte(`{"action":"playCard","cards":[{"rank":14,"suit":"leaves"}],"context":"12"}`), &msg)
	assert.NoError(t, err)
	assert.Equal(t, "playCard", msg.Action)
	assert.Equal(t, "12", msg.Context)
	assert.Equal(t, []deck.Card{deck.CardFromString("al")}, msg.Cards)
}
