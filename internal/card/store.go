package card

import "context"

// Registry owns every issued card for the process lifetime. It is
// interface-driven to keep the turnstile service testable and to allow
// swapping storage without rewiring business code.
type Registry interface {
	// Issue inserts the card, overwriting any earlier card with the same id.
	Issue(ctx context.Context, c Card) error

	// Find returns the card for id, or sentinel.ErrNotFound.
	Find(ctx context.Context, id string) (Card, error)

	// All returns a snapshot of every issued card, in no meaningful order.
	All(ctx context.Context) ([]Card, error)
}
