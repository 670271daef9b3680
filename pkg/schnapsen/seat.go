package schnapsen

import "fmt"

// Seat identifies one of the two players of a game
type Seat int

// seat constants
const (
	NoSeat Seat = iota
	Player1
	Player2
)

// Seats are both seats in playing order
var Seats = []Seat{Player1, Player2}

// Other returns the opponent's seat
func (s Seat) Other() Seat {
	switch s {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}

	return NoSeat
}

// Valid returns true for Player1 and Player2
func (s Seat) Valid() bool {
	return s == Player1 || s == Player2
}

func (s Seat) String() string {
	switch s {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}

	return "none"
}

// MarshalText encodes the seat as player1 or player2
func (s Seat) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot encode seat %d", int(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText decodes player1 or player2
func (s *Seat) UnmarshalText(text []byte) error {
	switch string(text) {
	case "player1":
		*s = Player1
	case "player2":
		*s = Player2
	default:
		return fmt.Errorf("unknown seat: %q", string(text))
	}

	return nil
}

func (s Seat) index() int {
	if !s.Valid() {
		panic(fmt.Sprintf("invalid seat: %d", int(s)))
	}

	return int(s) - 1
}
