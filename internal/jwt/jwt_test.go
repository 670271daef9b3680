package jwt

import (
	"testing"
	"time"

	jwtgo "github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signClaims(t *testing.T, claims SeatClaims) string {
	t.Helper()

	signedToken, err := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}

	return signedToken
}

func TestSignAndValidSeat(t *testing.T) {
	SetSecret([]byte(testSecret))

	matchUUID := uuid.New().String()
	sign, err := Sign(matchUUID, 2)
	assert.NoError(t, err)

	id, seat, err := ValidSeat(sign)
	assert.NoError(t, err)
	assert.Equal(t, matchUUID, id)
	assert.Equal(t, 2, seat)

	SetSecret([]byte("another-secret"))
	_, _, err = ValidSeat(sign)
	assert.EqualError(t, err, "signature is invalid")
}

func TestValidSeat_InvalidAudience(t *testing.T) {
	SetSecret([]byte(testSecret))

	signedToken := signClaims(t, SeatClaims{
		Seat: 1,
		StandardClaims: jwtgo.StandardClaims{
			Audience: "different-audience",
			Id:       uuid.New().String(),
			IssuedAt: time.Now().Unix(),
			Issuer:   Issuer,
			Subject:  "match",
		},
	})

	id, seat, err := ValidSeat(signedToken)
	assert.EqualError(t, err, "invalid audience")
	assert.Equal(t, "", id)
	assert.Equal(t, 0, seat)
}

func TestValidSeat_InvalidIssuer(t *testing.T) {
	SetSecret([]byte(testSecret))

	signedToken := signClaims(t, SeatClaims{
		Seat: 1,
		StandardClaims: jwtgo.StandardClaims{
			Audience: Audience,
			Id:       uuid.New().String(),
			IssuedAt: time.Now().Unix(),
			Issuer:   "invalid-issuer",
			Subject:  "match",
		},
	})

	_, _, err := ValidSeat(signedToken)
	assert.EqualError(t, err, "invalid issuer")
}

func TestValidSeat_InvalidSeat(t *testing.T) {
	SetSecret([]byte(testSecret))

	signedToken := signClaims(t, SeatClaims{
		Seat: 3,
		StandardClaims: jwtgo.StandardClaims{
			Audience: Audience,
			Issuer:   Issuer,
			Subject:  "match",
		},
	})

	_, _, err := ValidSeat(signedToken)
	assert.EqualError(t, err, "invalid seat: 3")
}

func TestValidSeat_Expired(t *testing.T) {
	SetSecret([]byte(testSecret))

	signedToken := signClaims(t, SeatClaims{
		Seat: 1,
		StandardClaims: jwtgo.StandardClaims{
			Audience:  Audience,
			Id:        uuid.New().String(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    Issuer,
			ExpiresAt: time.Now().Add(time.Hour * -1).Unix(),
			Subject:   "match",
		},
	})

	_, seat, err := ValidSeat(signedToken)
	if err != nil {
		assert.Regexp(t, "^token is expired", err.Error())
	} else {
		t.Error("expected an error")
	}
	assert.Equal(t, 0, seat)
}

func TestLoadSecret(t *testing.T) {
	secret = nil
	LoadSecret()
	assert.Len(t, secret, generatedSecretLength)
}
