package mux

import (
	"net/http"

	"github.com/d-becker/schnapsen/internal/jwt"
	"github.com/d-becker/schnapsen/pkg/room"
	"github.com/d-becker/schnapsen/pkg/schnapsen"
	"github.com/sirupsen/logrus"
)

type postMatchPayload struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

type matchSeat struct {
	Seat  schnapsen.Seat `json:"seat"`
	Name  string         `json:"name"`
	Token string         `json:"token"`
}

type postMatchResponse struct {
	UUID  string      `json:"uuid"`
	Seed  int64       `json:"seed"`
	Seats []matchSeat `json:"seats"`
}

func (m *Mux) postMatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postMatchPayload
		if r.ContentLength > 0 {
			if !decodeRequest(w, r, &payload) {
				return
			}
		}

		match, err := schnapsen.NewMatch(logrus.WithField("component", "match"), schnapsen.Options{
			Names: [2]string{payload.Player1, payload.Player2},
		})
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		// read the names before the dealer owns the match
		seats := make([]matchSeat, 0, len(schnapsen.Seats))
		for _, seat := range schnapsen.Seats {
			update, err := match.StateUpdate(seat)
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}

			seats = append(seats, matchSeat{
				Seat: seat,
				Name: update.State.Name,
			})
		}

		matchUUID := m.pitBoss.AddMatch(match)
		for i := range seats {
			token, err := jwt.Sign(matchUUID, int(seats[i].Seat))
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}

			seats[i].Token = token
		}

		writeJSON(w, http.StatusCreated, postMatchResponse{
			UUID:  matchUUID,
			Seed:  match.Seed(),
			Seats: seats,
		})
	}
}

type getMatchResponse struct {
	UUID   string `json:"uuid"`
	Seat   int    `json:"seat"`
	IsOver bool   `json:"isOver"`
}

func (m *Mux) getMatchUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := r.Context().Value(ctxMatchKey).(*room.Dealer)
		seat := r.Context().Value(ctxSeatKey).(int)

		writeJSON(w, http.StatusOK, getMatchResponse{
			UUID:   dealer.MatchUUID(),
			Seat:   seat,
			IsOver: dealer.IsOver(),
		})
	}
}
