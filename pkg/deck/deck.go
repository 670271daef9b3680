package deck

import (
	"math/rand"

	"github.com/d-becker/schnapsen/internal/rng"
)

// Size is the number of cards in a schnapsen deck
const Size = 20

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
	seed  int64
	rng   *rand.Rand
}

// seedSource picks a seed when Shuffle() is called without one
var seedSource rng.Generator = rng.Crypto{}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
	}

	d.buildDeck()
	return d
}

func (d *Deck) setSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed))
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for _, rank := range ScoringRanks {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards
// You can manually specify the seed, or you can leave it as 0 to have one picked for you.
// The same seed always produces the same order.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	// we always want to shuffle from an unshuffled deck.
	// this check here is to make sure we aren't double building the deck
	if len(d.Cards) != Size || d.seed != -1 {
		d.buildDeck()
	}

	if seed == 0 {
		seed = rng.Seed(seedSource)
	}

	d.setSeed(seed)

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}
