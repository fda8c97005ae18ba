package card

import (
	"fmt"
	"time"
)

// PeriodCard admits unlimited rides until its expiry date. Consumption never
// mutates state; it is a re-validation.
type PeriodCard struct {
	id       string
	category Category
	issued   time.Time
	kind     PeriodKind
}

// NewPeriod issues a period card valid from the given issue date.
func NewPeriod(id string, category Category, issued time.Time, kind PeriodKind) *PeriodCard {
	return &PeriodCard{
		id:       id,
		category: category,
		issued:   DateOnly(issued),
		kind:     kind,
	}
}

func (c *PeriodCard) ID() string         { return c.id }
func (c *PeriodCard) Category() Category { return c.category }
func (c *PeriodCard) Kind() PeriodKind   { return c.kind }

// Expiry is the last date on which the card is still valid.
func (c *PeriodCard) Expiry() time.Time {
	if c.kind == PeriodMonth {
		return c.issued.AddDate(0, 1, -1)
	}
	return c.issued.AddDate(0, 0, 10)
}

func (c *PeriodCard) Valid(at time.Time) bool {
	return !DateOnly(at).After(c.Expiry())
}

func (c *PeriodCard) UseTrip(at time.Time) bool {
	return c.Valid(at)
}

func (c *PeriodCard) Denial(time.Time) Denial {
	return Denial{Kind: DenialExpired, ExpiredOn: c.Expiry()}
}

func (c *PeriodCard) Describe() string {
	return fmt.Sprintf("period card %s (%s, %s, expires %s)",
		c.id, c.category, c.kind, c.Expiry().Format("2006-01-02"))
}
