package handler

import (
	"faregate/internal/card"
	"faregate/internal/stats"
	"faregate/internal/turnstile"
)

type issuePeriodRequest struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Period   string `json:"period"`
}

type issueTripsRequest struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Trips    int    `json:"trips"`
}

type issueBalanceRequest struct {
	ID      string  `json:"id"`
	Balance float64 `json:"balance"`
}

type topUpRequest struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
}

type presentRequest struct {
	CardID string `json:"card_id"`
}

type issuedResponse struct {
	ID string `json:"id"`
}

// presentResponse embeds the structured result and adds the human-readable
// denial reason, formatted here at the presentation boundary.
type presentResponse struct {
	turnstile.Result
	Reason string `json:"reason,omitempty"`
}

type statsResponse struct {
	stats.Snapshot
	Summary string `json:"summary"`
}

type cardResponse struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Variant     string   `json:"variant"`
	Description string   `json:"description"`
	Expiry      string   `json:"expiry,omitempty"`
	Trips       *int     `json:"trips,omitempty"`
	Balance     *float64 `json:"balance,omitempty"`
}

func toCardResponse(c card.Card) cardResponse {
	resp := cardResponse{
		ID:          c.ID(),
		Category:    c.Category().String(),
		Description: c.Describe(),
	}
	switch v := c.(type) {
	case *card.PeriodCard:
		resp.Variant = "period"
		resp.Expiry = v.Expiry().Format("2006-01-02")
	case *card.TripCard:
		resp.Variant = "trips"
		trips := v.Remaining()
		resp.Trips = &trips
	case *card.BalanceCard:
		resp.Variant = "balance"
		balance := v.Balance()
		resp.Balance = &balance
	}
	return resp
}
