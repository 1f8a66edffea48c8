package entities

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
)

// DeckSize is the number of cards in a full single deck
const DeckSize = 52

// ErrEmptyDeck is returned when drawing from a deck with no cards left
var ErrEmptyDeck = types.NewGameError(types.ErrEmptyDeck, "the deck is empty")

// Shuffler reorders a slice of cards in place
type Shuffler interface {
	Shuffle(cards []Card)
}

// RandomShuffler shuffles with a math/rand source. It is safe for concurrent
// use.
type RandomShuffler struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandomShuffler creates a shuffler seeded from the clock
func NewRandomShuffler() *RandomShuffler {
	return NewSeededShuffler(time.Now().UnixNano())
}

// NewSeededShuffler creates a shuffler with a fixed seed, for reproducible
// deals
func NewSeededShuffler(seed int64) *RandomShuffler {
	return &RandomShuffler{r: rand.New(rand.NewSource(seed))}
}

// Shuffle implements Shuffler
func (s *RandomShuffler) Shuffle(cards []Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

type noShuffle struct{}

func (noShuffle) Shuffle([]Card) {}

var defaultShuffler Shuffler = NewRandomShuffler()

// Deck is a single 52-card deck. Cards are drawn from the end of the slice.
type Deck struct {
	cards    []Card
	shuffler Shuffler
}

// NewDeck creates a full, shuffled deck
func NewDeck() *Deck {
	return NewDeckWithShuffler(defaultShuffler)
}

// NewDeckWithShuffler creates a full deck shuffled by s
func NewDeckWithShuffler(s Shuffler) *Deck {
	if s == nil {
		s = defaultShuffler
	}
	d := &Deck{shuffler: s}
	d.Reset()
	return d
}

// NewStackedDeck creates a deck that deals exactly the given cards, first
// argument first. It never shuffles.
func NewStackedDeck(cards ...Card) *Deck {
	stacked := make([]Card, len(cards))
	for i, c := range cards {
		stacked[len(cards)-1-i] = c
	}
	return &Deck{cards: stacked, shuffler: noShuffle{}}
}

// NewDeckExcluding creates a shuffled deck holding every card except the
// given ones. Duplicates or unknown cards in held are reported as errors.
func NewDeckExcluding(held []Card, s Shuffler) (*Deck, error) {
	if s == nil {
		s = defaultShuffler
	}
	excluded := make(map[Card]bool, len(held))
	for _, c := range held {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if excluded[c] {
			return nil, types.NewGameError(types.ErrInvalidState, fmt.Sprintf("card %s is held twice", c))
		}
		excluded[c] = true
	}

	cards := make([]Card, 0, DeckSize-len(excluded))
	for _, c := range fullDeck() {
		if !excluded[c] {
			cards = append(cards, c)
		}
	}
	d := &Deck{cards: cards, shuffler: s}
	d.Shuffle()
	return d, nil
}

func fullDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range AllSuits() {
		for _, rank := range AllRanks() {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Reset restores all 52 cards and shuffles them
func (d *Deck) Reset() {
	d.cards = fullDeck()
	d.Shuffle()
}

// Shuffle randomizes the order of the remaining cards
func (d *Deck) Shuffle() {
	d.shuffler.Shuffle(d.cards)
}

// Draw removes and returns the top card
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]
	return card, nil
}

// Size returns the number of cards left
func (d *Deck) Size() int {
	return len(d.cards)
}

// IsEmpty reports whether no cards are left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards in draw order reversed (the
// last element is the next card drawn)
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
