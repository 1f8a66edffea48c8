package entities

import (
	"fmt"
	"strings"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
)

// Suit represents a card suit. Suits carry no scoring semantics.
type Suit string

const (
	Clubs    Suit = "CLUBS"
	Diamonds Suit = "DIAMONDS"
	Hearts   Suit = "HEARTS"
	Spades   Suit = "SPADES"
)

var suitSymbols = map[Suit]string{
	Clubs:    "♣",
	Diamonds: "♦",
	Hearts:   "♥",
	Spades:   "♠",
}

// AllSuits returns the four suits in canonical order
func AllSuits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Symbol returns the suit glyph
func (s Suit) Symbol() string {
	return suitSymbols[s]
}

// Rank represents a card rank
type Rank string

const (
	Ace   Rank = "ACE"
	Two   Rank = "TWO"
	Three Rank = "THREE"
	Four  Rank = "FOUR"
	Five  Rank = "FIVE"
	Six   Rank = "SIX"
	Seven Rank = "SEVEN"
	Eight Rank = "EIGHT"
	Nine  Rank = "NINE"
	Ten   Rank = "TEN"
	Jack  Rank = "JACK"
	Queen Rank = "QUEEN"
	King  Rank = "KING"
)

type rankInfo struct {
	value  int
	symbol string
}

var ranks = map[Rank]rankInfo{
	Ace:   {1, "A"},
	Two:   {2, "2"},
	Three: {3, "3"},
	Four:  {4, "4"},
	Five:  {5, "5"},
	Six:   {6, "6"},
	Seven: {7, "7"},
	Eight: {8, "8"},
	Nine:  {9, "9"},
	Ten:   {10, "10"},
	Jack:  {10, "J"},
	Queen: {10, "Q"},
	King:  {10, "K"},
}

// AllRanks returns the thirteen ranks from ACE to KING
func AllRanks() []Rank {
	return []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
}

// Value returns the baseline blackjack value of the rank. Aces count 1 here;
// promotion to 11 is the scoring rule's job.
func (r Rank) Value() int {
	return ranks[r].value
}

// Symbol returns the short rank label used on card faces
func (r Rank) Symbol() string {
	return ranks[r].symbol
}

// Card represents a playing card. Cards are immutable values and compare
// with ==.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Value returns the card's baseline blackjack value
func (c Card) Value() int {
	return c.Rank.Value()
}

// IsAce reports whether the card is an ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// String returns the short form of the card, e.g. "10♥"
func (c Card) String() string {
	return c.Rank.Symbol() + c.Suit.Symbol()
}

// Name returns the long form of the card, e.g. "Ten of Hearts"
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", capitalize(string(c.Rank)), capitalize(string(c.Suit)))
}

// ParseRank decodes a rank name as stored by Card's JSON form
func ParseRank(name string) (Rank, error) {
	r := Rank(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := ranks[r]; !ok {
		return "", types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("unknown rank %q", name))
	}
	return r, nil
}

// ParseSuit decodes a suit name as stored by Card's JSON form
func ParseSuit(name string) (Suit, error) {
	s := Suit(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := suitSymbols[s]; !ok {
		return "", types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("unknown suit %q", name))
	}
	return s, nil
}

// Validate checks that the card has a known rank and suit
func (c Card) Validate() error {
	if _, err := ParseRank(string(c.Rank)); err != nil {
		return err
	}
	_, err := ParseSuit(string(c.Suit))
	return err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
