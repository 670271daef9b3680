package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/d-becker/schnapsen/internal/config"
	"github.com/d-becker/schnapsen/internal/rng"
	"github.com/d-becker/schnapsen/pkg/token"
	jwtgo "github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Issuer issues the JWT
const Issuer = "schnapsen-server"

// Audience is the intended JWT audience
const Audience = "schnapsen-seat"

// Lifetime is how long a seat token stays valid
const Lifetime = time.Hour * 24

const generatedSecretLength = 64

var secret []byte

// SeatClaims bind a token to one seat of one match
// The subject is the match UUID.
type SeatClaims struct {
	Seat int `json:"seat"`
	jwtgo.StandardClaims
}

// LoadSecret will load the signing secret from the configuration
// If none is configured, a random one is generated and tokens do not survive a restart.
// this method should only be called once.
func LoadSecret() {
	s := config.Instance().JWT.Secret
	if s == "" {
		logrus.Warn("no jwt secret configured, using a random one")
		s = token.Generate(rng.Crypto{}, generatedSecretLength)
	}

	SetSecret([]byte(s))
}

// SetSecret sets the signing secret
func SetSecret(s []byte) {
	secret = append([]byte{}, s...)
}

// Sign will sign a JWT for the seat of the match
func Sign(matchUUID string, seat int) (string, error) {
	if secret == nil {
		panic("LoadSecret() not called")
	}

	now := time.Now()
	t := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, SeatClaims{
		Seat: seat,
		StandardClaims: jwtgo.StandardClaims{
			Audience:  Audience,
			ExpiresAt: now.Add(Lifetime).Unix(),
			Id:        uuid.New().String(),
			IssuedAt:  now.Unix(),
			Issuer:    Issuer,
			Subject:   matchUUID,
		},
	})

	return t.SignedString(secret)
}

// ValidSeat will validate a signed JWT and return the match UUID and seat
func ValidSeat(signedString string) (string, int, error) {
	if secret == nil {
		panic("LoadSecret() not called")
	}

	t, err := jwtgo.ParseWithClaims(signedString, &SeatClaims{}, func(t *jwtgo.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtgo.SigningMethodHMAC); !ok {
			return nil, errors.New("expected HS256 signing method")
		}

		return secret, nil
	})

	if err != nil {
		return "", 0, err
	}

	if !t.Valid {
		logrus.Warn("token claims were not valid. did not expect to reach this code")
		return "", 0, errors.New("claims were not valid")
	}

	claims, ok := t.Claims.(*SeatClaims)
	if !ok {
		return "", 0, fmt.Errorf("expected SeatClaims, got %T", t.Claims)
	}

	if !claims.VerifyAudience(Audience, true) {
		return "", 0, errors.New("invalid audience")
	}

	if !claims.VerifyIssuer(Issuer, true) {
		return "", 0, errors.New("invalid issuer")
	}

	if claims.Seat != 1 && claims.Seat != 2 {
		return "", 0, fmt.Errorf("invalid seat: %d", claims.Seat)
	}

	return claims.Subject, claims.Seat, nil
}
