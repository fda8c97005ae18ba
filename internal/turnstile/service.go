// Package turnstile orchestrates a single card presentation event: resolve
// the card, validate it against the current date, consume one trip, and
// record the outcome. It also hosts the issuance entry points and the one
// issuance policy check.
package turnstile

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"faregate/internal/card"
	"faregate/internal/stats"
	"faregate/internal/turnstile/metrics"
	dErrors "faregate/pkg/domainerrors"
	"faregate/pkg/platform/sentinel"
)

// Result describes the terminal outcome of one presentation event.
type Result struct {
	EventID  string        `json:"event_id"`
	CardID   string        `json:"card_id"`
	Granted  bool          `json:"granted"`
	Category card.Category `json:"category"`
	Denial   *card.Denial  `json:"denial,omitempty"`
}

// Service is the turnstile controller. Collaborators are threaded in
// explicitly; there is no package-level state.
//
// The mutex serializes the lookup + validate + consume + record sequence so
// that card resources never go negative and each event produces exactly one
// recording, even with concurrent callers sharing the registry.
type Service struct {
	mu        sync.Mutex
	registry  card.Registry
	stats     *stats.Aggregator
	presenter Presenter
	logger    *slog.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the time source, used by tests to pin dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New constructs the turnstile service. A nil presenter is replaced with
// NopPresenter; metrics may be nil.
func New(registry card.Registry, agg *stats.Aggregator, presenter Presenter, logger *slog.Logger, m *metrics.Metrics, opts ...Option) *Service {
	if presenter == nil {
		presenter = NopPresenter{}
	}
	s := &Service{
		registry:  registry,
		stats:     agg,
		presenter: presenter,
		logger:    logger,
		metrics:   m,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Present processes one presentation event for the given card id. Expected
// business conditions (unknown card, exhausted card) come back as denial
// results, not errors; the error path is reserved for store failures.
func (s *Service) Present(ctx context.Context, cardID string) (Result, error) {
	start := time.Now()
	eventID := uuid.NewString()
	at := s.now()

	s.mu.Lock()
	res, err := s.present(ctx, eventID, cardID, at)
	s.mu.Unlock()
	if err != nil {
		return Result{}, err
	}

	s.metrics.ObservePresentLatency(time.Since(start))
	return res, nil
}

func (s *Service) present(ctx context.Context, eventID, cardID string, at time.Time) (Result, error) {
	c, err := s.registry.Find(ctx, cardID)
	if errors.Is(err, sentinel.ErrNotFound) {
		// Unknown cards are billed to the regular bucket: no category is known.
		return s.deny(eventID, cardID, card.CategoryRegular, card.NotFoundDenial()), nil
	}
	if err != nil {
		s.logger.Error("card lookup failed", "event_id", eventID, "card_id", cardID, "error", err)
		return Result{}, dErrors.New(dErrors.CodeInternal, "card lookup failed")
	}

	if !c.Valid(at) {
		return s.deny(eventID, cardID, c.Category(), c.Denial(at)), nil
	}

	if !c.UseTrip(at) {
		// Validity and consumption disagreed. Anomalous, but handled as a
		// plain denial rather than a fault.
		s.logger.Warn("trip deduction failed after positive validity check",
			"event_id", eventID, "card_id", cardID)
		return s.deny(eventID, cardID, c.Category(), card.DeductFailedDenial()), nil
	}

	return s.grant(eventID, cardID, c.Category()), nil
}

// grant and deny each notify the presenter once and record the outcome once.
func (s *Service) grant(eventID, cardID string, cat card.Category) Result {
	s.presenter.PassGranted(cardID)
	s.stats.RecordPass(cat)
	s.metrics.IncrementPass(cat.String())
	s.logger.Info("pass granted", "event_id", eventID, "card_id", cardID, "category", cat)
	return Result{EventID: eventID, CardID: cardID, Granted: true, Category: cat}
}

func (s *Service) deny(eventID, cardID string, cat card.Category, d card.Denial) Result {
	s.presenter.PassDenied(cardID, d)
	s.stats.RecordDenial(cat)
	s.metrics.IncrementDenial(cat.String(), string(d.Kind))
	s.logger.Info("pass denied",
		"event_id", eventID, "card_id", cardID, "category", cat, "kind", d.Kind)
	return Result{EventID: eventID, CardID: cardID, Granted: false, Category: cat, Denial: &d}
}

// IssuePeriodCard registers a period card issued today. Regular cards cannot
// use a ten-day period; that combination is refused with an error
// notification and no registration.
func (s *Service) IssuePeriodCard(ctx context.Context, id string, category card.Category, kind card.PeriodKind) error {
	if err := validateID(id); err != nil {
		return err
	}
	if category == card.CategoryRegular && kind == card.PeriodTenDays {
		err := dErrors.New(dErrors.CodePolicyViolation, "regular cards cannot use a ten-day period")
		s.presenter.Error(err.Message)
		return err
	}
	return s.issue(ctx, card.NewPeriod(id, category, s.now(), kind), "period")
}

// IssueTripCard registers a trip-count card.
func (s *Service) IssueTripCard(ctx context.Context, id string, category card.Category, trips int) error {
	if err := validateID(id); err != nil {
		return err
	}
	if trips < 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "trip count cannot be negative")
	}
	return s.issue(ctx, card.NewTripCount(id, category, trips), "trips")
}

// IssueBalanceCard registers a balance card; balance cards are always regular.
func (s *Service) IssueBalanceCard(ctx context.Context, id string, balance float64) error {
	if err := validateID(id); err != nil {
		return err
	}
	if balance < 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "balance cannot be negative")
	}
	return s.issue(ctx, card.NewBalance(id, balance), "balance")
}

func (s *Service) issue(ctx context.Context, c card.Card, variant string) error {
	if err := s.registry.Issue(ctx, c); err != nil {
		s.logger.Error("card issuance failed", "card_id", c.ID(), "error", err)
		return dErrors.New(dErrors.CodeInternal, "card issuance failed")
	}
	s.metrics.IncrementCardsIssued(variant)
	s.presenter.Info("issued " + c.Describe())
	s.logger.Info("card issued", "card_id", c.ID(), "variant", variant, "category", c.Category())
	return nil
}

// TopUp adds funds to a balance card.
func (s *Service) TopUp(ctx context.Context, id string, amount float64) error {
	if amount <= 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "top-up amount must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.registry.Find(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "card not found")
	}
	if err != nil {
		return dErrors.New(dErrors.CodeInternal, "card lookup failed")
	}
	bc, ok := c.(*card.BalanceCard)
	if !ok {
		return dErrors.New(dErrors.CodeInvalidInput, "card does not hold a balance")
	}
	bc.TopUp(amount)
	s.presenter.Info("topped up " + bc.Describe())
	s.logger.Info("card topped up", "card_id", id, "amount", amount)
	return nil
}

// Cards returns a snapshot of every issued card. Taken under the event lock
// so readers never observe a card mid-consumption.
func (s *Service) Cards(ctx context.Context) ([]card.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.All(ctx)
}

// Summary returns the human-readable statistics report.
func (s *Service) Summary() string {
	return s.stats.Summary()
}

// Statistics returns a point-in-time copy of all counters.
func (s *Service) Statistics() stats.Snapshot {
	return s.stats.Snapshot()
}

// ShowStatistics pushes the current summary to the presenter.
func (s *Service) ShowStatistics() {
	s.presenter.Statistics(s.stats.Summary())
}

func validateID(id string) error {
	if id == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "card id cannot be empty")
	}
	return nil
}
