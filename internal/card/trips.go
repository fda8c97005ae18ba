package card

import (
	"fmt"
	"time"
)

// TripCard admits a fixed number of rides. Invariant: remaining never goes
// negative; UseTrip is the sole mutator and decrements only after its own
// exhaustion check.
type TripCard struct {
	id        string
	category  Category
	remaining int
}

// NewTripCount issues a card good for the given number of rides.
func NewTripCount(id string, category Category, trips int) *TripCard {
	return &TripCard{id: id, category: category, remaining: trips}
}

func (c *TripCard) ID() string         { return c.id }
func (c *TripCard) Category() Category { return c.category }

// Remaining is the number of rides left on the card.
func (c *TripCard) Remaining() int { return c.remaining }

func (c *TripCard) Valid(time.Time) bool {
	return c.remaining > 0
}

func (c *TripCard) UseTrip(time.Time) bool {
	if c.remaining <= 0 {
		return false
	}
	c.remaining--
	return true
}

func (c *TripCard) Denial(time.Time) Denial {
	return Denial{Kind: DenialNoTripsLeft, TripsLeft: c.remaining}
}

func (c *TripCard) Describe() string {
	return fmt.Sprintf("trip card %s (%s, %d trips left)", c.id, c.category, c.remaining)
}
