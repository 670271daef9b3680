package mux

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/d-becker/schnapsen/internal/jwt"
	"github.com/d-becker/schnapsen/pkg/room"
	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxSeatKey ctxKey = iota
	ctxMatchKey
)

// matchUUIDPattern matches the UUID of a match in a route
const matchUUIDPattern = "{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	pitBoss := room.NewPitBoss()
	pitBoss.StartShift()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/match").Handler(this.postMatch())
	}

	// requires a seat token for the match
	{
		mr := this.Router.PathPrefix("/match/" + matchUUIDPattern).Subrouter()
		mr.Use(this.seatMiddleware)

		mr.Methods(http.MethodGet).Path("").Handler(this.getMatchUUID())
		mr.Methods(http.MethodGet).Path("/ws").Handler(this.getMatchUUIDWS())
	}

	return this
}

// seatMiddleware resolves the seat token and the dealer of the match
func (m *Mux) seatMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		matchUUID, seat, err := jwt.ValidSeat(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		if !strings.EqualFold(matchUUID, gmux.Vars(r)["uuid"]) {
			writeJSONError(w, http.StatusForbidden, errors.New("token is for a different match"))
			return
		}

		dealer, err := m.pitBoss.Dealer(matchUUID)
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err)
			return
		}

		ctx := context.WithValue(r.Context(), ctxSeatKey, seat)
		ctx = context.WithValue(ctx, ctxMatchKey, dealer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
