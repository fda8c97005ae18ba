package turnstile

import "faregate/internal/card"

// Presenter receives one-way notifications about turnstile activity. Denials
// arrive as structured reasons so each implementation formats them for its
// own medium. Implementations must not call back into the service.
type Presenter interface {
	PassGranted(cardID string)
	PassDenied(cardID string, denial card.Denial)
	Statistics(summary string)
	Error(message string)
	Info(message string)
}

// NopPresenter discards every notification. Used when no rendering surface is
// attached, e.g. behind the HTTP transport where responses carry the outcome.
type NopPresenter struct{}

func (NopPresenter) PassGranted(string)             {}
func (NopPresenter) PassDenied(string, card.Denial) {}
func (NopPresenter) Statistics(string)              {}
func (NopPresenter) Error(string)                   {}
func (NopPresenter) Info(string)                    {}
