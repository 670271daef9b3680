package schnapsen

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/d-becker/schnapsen/pkg/deck"
	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	a := assert.New(t)

	a.EqualError(ErrNotPlayersTurn, "not player's turn")
	a.EqualError(MustTake(card("aa")), "player must take the trick with AA")
	a.EqualError(MustUseAnotherSuit(deck.Bells), "player must follow with bells")
	a.EqualError(ScoreTooLow(45), "score of 45 is too low")
	a.EqualError(NoSuchCardInHand(card("10h")), "card 10H is not in the player's hand")
}

func TestError_Is(t *testing.T) {
	a := assert.New(t)

	a.True(errors.Is(ErrGameOver, ErrGameOver))
	a.False(errors.Is(ErrGameOver, ErrDeckClosed))
	a.True(errors.Is(MustTake(card("aa")), MustTake(deck.Card{})))
	a.True(errors.Is(fmt.Errorf("wrapped: %w", ScoreTooLow(12)), ScoreTooLow(0)))
	a.False(errors.Is(errors.New("not player's turn"), ErrNotPlayersTurn))

	a.Equal(KindMustTake, KindOf(fmt.Errorf("wrapped: %w", MustTake(card("aa")))))
	a.Equal(ErrorKind(0), KindOf(ErrInvalidDeck))
}

func TestError_MarshalJSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(MustTake(card("aa")))
	a.NoError(err)
	a.JSONEq(`{"kind":"MustTake","card":{"rank":14,"suit":"acorns"}}`, string(b))

	b, err = json.Marshal(ScoreTooLow(0))
	a.NoError(err)
	a.JSONEq(`{"kind":"ScoreTooLow","score":0}`, string(b))

	b, err = json.Marshal(AlreadyCalledThisTwenty(deck.Leaves))
	a.NoError(err)
	a.JSONEq(`{"kind":"AlreadyCalledThisTwenty","suit":"leaves"}`, string(b))

	b, err = json.Marshal(ErrGameOver)
	a.NoError(err)
	a.JSONEq(`{"kind":"GameOver"}`, string(b))

	var e Error
	a.NoError(json.Unmarshal([]byte(`{"kind":"MustTake","card":{"rank":14,"suit":"acorns"}}`), &e))
	a.Equal(*MustTake(card("aa")), e)

	a.Error(json.Unmarshal([]byte(`{"kind":"Nope"}`), &e))
}
