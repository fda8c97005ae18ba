package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"faregate/internal/card"
	"faregate/internal/stats"
	"faregate/internal/turnstile"
	dErrors "faregate/pkg/domainerrors"
	"faregate/pkg/platform/httputil"
)

// Service defines the turnstile operations the HTTP layer exposes.
type Service interface {
	IssuePeriodCard(ctx context.Context, id string, category card.Category, kind card.PeriodKind) error
	IssueTripCard(ctx context.Context, id string, category card.Category, trips int) error
	IssueBalanceCard(ctx context.Context, id string, balance float64) error
	TopUp(ctx context.Context, id string, amount float64) error
	Present(ctx context.Context, cardID string) (turnstile.Result, error)
	Cards(ctx context.Context) ([]card.Card, error)
	Statistics() stats.Snapshot
	Summary() string
}

// Handler is the thin HTTP layer over the turnstile service. It parses and
// validates input at the trust boundary and delegates; no business logic
// lives here.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a turnstile handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the turnstile endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/cards/period", h.handleIssuePeriod)
	r.Post("/cards/trips", h.handleIssueTrips)
	r.Post("/cards/balance", h.handleIssueBalance)
	r.Post("/cards/balance/topup", h.handleTopUp)
	r.Get("/cards", h.handleListCards)
	r.Post("/turnstile/present", h.handlePresent)
	r.Get("/turnstile/stats", h.handleStats)
}

func (h *Handler) handleIssuePeriod(w http.ResponseWriter, r *http.Request) {
	var req issuePeriodRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	category, err := card.ParseCategory(req.Category)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	kind, err := card.ParsePeriodKind(req.Period)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.IssuePeriodCard(r.Context(), req.ID, category, kind); err != nil {
		h.logger.Warn("period card issuance refused", "card_id", req.ID, "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, issuedResponse{ID: req.ID})
}

func (h *Handler) handleIssueTrips(w http.ResponseWriter, r *http.Request) {
	var req issueTripsRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	category, err := card.ParseCategory(req.Category)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.IssueTripCard(r.Context(), req.ID, category, req.Trips); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, issuedResponse{ID: req.ID})
}

func (h *Handler) handleIssueBalance(w http.ResponseWriter, r *http.Request) {
	var req issueBalanceRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.IssueBalanceCard(r.Context(), req.ID, req.Balance); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, issuedResponse{ID: req.ID})
}

func (h *Handler) handleTopUp(w http.ResponseWriter, r *http.Request) {
	var req topUpRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.TopUp(r.Context(), req.ID, req.Amount); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.service.Cards(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	out := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCardResponse(c))
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) handlePresent(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req presentRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if req.CardID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "card_id cannot be empty"))
		return
	}

	res, err := h.service.Present(r.Context(), req.CardID)
	if err != nil {
		h.logger.Error("presentation event failed",
			"card_id", req.CardID, "error", err)
		httputil.WriteError(w, err)
		return
	}

	h.logger.Info("presentation event processed",
		"event_id", res.EventID,
		"card_id", res.CardID,
		"granted", res.Granted,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, presentResponse{
		Result: res,
		Reason: denialReason(res),
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, statsResponse{
		Snapshot: h.service.Statistics(),
		Summary:  h.service.Summary(),
	})
}

func denialReason(res turnstile.Result) string {
	if res.Denial == nil {
		return ""
	}
	return res.Denial.Reason()
}
