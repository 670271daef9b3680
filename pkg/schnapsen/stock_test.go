package schnapsen

import (
	"testing"

	"github.com/d-becker/schnapsen/pkg/deck"
	"github.com/stretchr/testify/assert"
)

func TestServerStock(t *testing.T) {
	a := assert.New(t)
	s := NewServerStock(cards("oh,ub,ob"))

	a.Equal(3, s.Len())
	a.False(s.IsEmpty())

	rank, ok := s.TrumpRank()
	a.True(ok)
	a.Equal(deck.Ober, rank)

	old, ok := s.ExchangeTrump(deck.Unter)
	a.True(ok)
	a.Equal(deck.Ober, old)
	a.Equal("uh,ub,ob", deck.CardsToString(s.Cards()))

	c, ok := s.Deal()
	a.True(ok)
	a.Equal(card("ob"), c)
	a.Equal(2, s.Len())

	s.Close()
	a.True(s.IsClosed())

	_, ok = s.TrumpRank()
	a.False(ok)

	_, ok = s.ExchangeTrump(deck.Ace)
	a.False(ok)

	_, ok = s.Deal()
	a.False(ok)
	a.Equal(2, s.Len())
}

func TestServerStock_empty(t *testing.T) {
	a := assert.New(t)
	s := NewServerStock(cards("oh"))

	c, ok := s.Deal()
	a.True(ok)
	a.Equal(card("oh"), c)
	a.True(s.IsEmpty())

	_, ok = s.TrumpRank()
	a.False(ok)

	_, ok = s.Deal()
	a.False(ok)
}

func TestOpaqueStock(t *testing.T) {
	a := assert.New(t)
	rank := deck.King
	s := NewOpaqueStock(2, &rank, false)

	r, ok := s.TrumpRank()
	a.True(ok)
	a.Equal(deck.King, r)

	old, ok := s.ExchangeTrump(deck.Unter)
	a.True(ok)
	a.Equal(deck.King, old)

	r, _ = s.TrumpRank()
	a.Equal(deck.Unter, r)

	_, ok = s.Deal()
	a.False(ok)
	a.Equal(1, s.Len())

	_, ok = s.Deal()
	a.False(ok)
	a.True(s.IsEmpty())

	_, ok = s.Deal()
	a.False(ok)
	a.Equal(0, s.Len())

	_, ok = s.TrumpRank()
	a.False(ok)

	s = NewOpaqueStock(4, nil, false)
	_, ok = s.TrumpRank()
	a.False(ok)

	s = NewOpaqueStock(4, &rank, true)
	a.True(s.IsClosed())
	_, ok = s.ExchangeTrump(deck.Unter)
	a.False(ok)
}
