package schnapsen

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeat(t *testing.T) {
	a := assert.New(t)

	a.Equal(Player2, Player1.Other())
	a.Equal(Player1, Player2.Other())
	a.Equal(NoSeat, NoSeat.Other())
	a.False(NoSeat.Valid())
	a.Equal("player1", Player1.String())

	b, err := json.Marshal(map[string]Seat{"onLead": Player2})
	a.NoError(err)
	a.JSONEq(`{"onLead":"player2"}`, string(b))

	var s Seat
	a.NoError(json.Unmarshal([]byte(`"player1"`), &s))
	a.Equal(Player1, s)
	a.Error(json.Unmarshal([]byte(`"player3"`), &s))

	_, err = json.Marshal(NoSeat)
	a.Error(err)
}
