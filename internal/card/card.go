// Package card models the fare cards accepted by the turnstile: a small
// capability interface over three variants (period, trip-count, balance),
// plus the registry that owns all issued cards for the process lifetime.
package card

import (
	"fmt"
	"time"
)

// Fare is the fixed deduction per ride for balance cards.
const Fare = 25.0

// Card is the capability set shared by all variants. Validity is a pure
// predicate; UseTrip is the sole mutator and only succeeds when the variant's
// resource allows one more ride as of the given date.
//
// Cards are not safe for concurrent use. The turnstile service serializes the
// check-then-consume sequence; callers bypassing it must provide their own
// exclusion.
type Card interface {
	ID() string
	Category() Category

	// Valid reports whether the card would admit a ride as of the given
	// date, without consuming anything.
	Valid(at time.Time) bool

	// UseTrip attempts to consume one ride as of the given date. It returns
	// false without mutation when the card's resource is exhausted.
	UseTrip(at time.Time) bool

	// Denial describes why the card cannot admit a ride as of the given
	// date, carrying the variant's relevant payload. Meaningful only when
	// Valid is false.
	Denial(at time.Time) Denial

	// Describe returns a short human-readable description for notifications.
	Describe() string
}

// DenialKind classifies why passage was refused.
type DenialKind string

const (
	DenialCardNotFound        DenialKind = "card_not_found"
	DenialExpired             DenialKind = "expired"
	DenialNoTripsLeft         DenialKind = "no_trips_left"
	DenialInsufficientBalance DenialKind = "insufficient_balance"
	DenialDeductFailed        DenialKind = "deduct_failed"
)

// Denial is a structured refusal reason. The payload fields are populated per
// kind; formatting happens at the presentation boundary via Reason.
type Denial struct {
	Kind      DenialKind `json:"kind"`
	ExpiredOn time.Time  `json:"expired_on,omitzero"`
	TripsLeft int        `json:"trips_left,omitempty"`
	Balance   float64    `json:"balance,omitempty"`
}

// NotFoundDenial is the refusal for identifiers absent from the registry.
func NotFoundDenial() Denial {
	return Denial{Kind: DenialCardNotFound}
}

// DeductFailedDenial covers the anomaly where consumption fails after a
// positive validity check.
func DeductFailedDenial() Denial {
	return Denial{Kind: DenialDeductFailed}
}

// Reason renders the denial for human display.
func (d Denial) Reason() string {
	switch d.Kind {
	case DenialCardNotFound:
		return "card not found"
	case DenialExpired:
		return fmt.Sprintf("card expired on %s", d.ExpiredOn.Format("2006-01-02"))
	case DenialNoTripsLeft:
		return fmt.Sprintf("no trips left (remaining: %d)", d.TripsLeft)
	case DenialInsufficientBalance:
		return fmt.Sprintf("insufficient balance (%.2f, fare is %.2f)", d.Balance, Fare)
	case DenialDeductFailed:
		return "could not deduct trip"
	default:
		return "card not valid"
	}
}

// DateOnly truncates t to its calendar date. Validity rules operate at day
// granularity.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
