package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faregate/internal/card"
	"faregate/internal/stats"
	"faregate/internal/turnstile"
	"faregate/pkg/testutil"
)

// newTestRouter wires the handler over a real in-memory stack; the HTTP layer
// is thin enough that faking the service buys nothing.
func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := turnstile.New(card.NewInMemoryRegistry(), stats.New(), nil, log, nil)
	r := chi.NewRouter()
	New(svc, log).Register(r)
	return r
}

func TestIssueEndpoints(t *testing.T) {
	t.Run("issue trip card", func(t *testing.T) {
		r := newTestRouter(t)
		rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/cards/trips",
			map[string]any{"id": "T1", "category": "student", "trips": 5}))
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("issue period card", func(t *testing.T) {
		r := newTestRouter(t)
		rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/cards/period",
			map[string]any{"id": "P1", "category": "pupil", "period": "ten_days"}))
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("issue balance card", func(t *testing.T) {
		r := newTestRouter(t)
		rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/cards/balance",
			map[string]any{"id": "B1", "balance": 100.0}))
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("unknown category is a 400", func(t *testing.T) {
		r := newTestRouter(t)
		rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/cards/trips",
			map[string]any{"id": "T1", "category": "senior", "trips": 5}))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		r := newTestRouter(t)
		req := testutil.NewRequest(t, http.MethodPost, "/cards/trips")
		rr := testutil.DoRequest(r, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("regular ten-day period card is a 422", func(t *testing.T) {
		r := newTestRouter(t)
		rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/cards/period",
			map[string]any{"id": "P1", "category": "regular", "period": "ten_days"}))
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		var body map[string]string
		testutil.DecodeJSON(t, rr, &body)
		assert.Equal(t, "policy_violation", body["error"])

		// issuance aborted, the registry must not know the card
		rr = testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/turnstile/present",
			map[string]any{"card_id": "P1"}))
		require.Equal(t, http.StatusOK, rr.Code)
		var res presentResponse
		testutil.DecodeJSON(t, rr, &res)
		assert.False(t, res.Granted)
		assert.Equal(t, card.DenialCardNotFound, res.Denial.Kind)
	})
}

func TestPresentEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/cards/trips",
		map[string]any{"id": "R1", "category": "regular", "trips": 2}))
	require.Equal(t, http.StatusCreated, rr.Code)

	present := func() presentResponse {
		rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/turnstile/present",
			map[string]any{"card_id": "R1"}))
		require.Equal(t, http.StatusOK, rr.Code)
		var res presentResponse
		testutil.DecodeJSON(t, rr, &res)
		return res
	}

	first := present()
	assert.True(t, first.Granted)
	assert.NotEmpty(t, first.EventID)
	assert.Empty(t, first.Reason)

	second := present()
	assert.True(t, second.Granted)
	assert.NotEqual(t, first.EventID, second.EventID)

	third := present()
	assert.False(t, third.Granted)
	require.NotNil(t, third.Denial)
	assert.Equal(t, card.DenialNoTripsLeft, third.Denial.Kind)
	assert.Contains(t, third.Reason, "no trips left")

	t.Run("empty card id is a 400", func(t *testing.T) {
		rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/turnstile/present",
			map[string]any{}))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestStatsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/cards/balance",
		map[string]any{"id": "A1", "balance": 60.0}))
	require.Equal(t, http.StatusCreated, rr.Code)

	for i := 0; i < 3; i++ {
		rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/turnstile/present",
			map[string]any{"card_id": "A1"}))
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr = testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/turnstile/stats"))
	require.Equal(t, http.StatusOK, rr.Code)

	var res statsResponse
	testutil.DecodeJSON(t, rr, &res)
	assert.Equal(t, 2, res.TotalPasses)
	assert.Equal(t, 1, res.TotalDenials)
	assert.Equal(t, 2, res.PassesByCategory[card.CategoryRegular])
	assert.Contains(t, res.Summary, "Passes: 2")
}

func TestTopUpEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/cards/balance",
		map[string]any{"id": "A1", "balance": 10.0}))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/cards/balance/topup",
		map[string]any{"id": "A1", "amount": 50.0}))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/turnstile/present",
		map[string]any{"card_id": "A1"}))
	require.Equal(t, http.StatusOK, rr.Code)
	var res presentResponse
	testutil.DecodeJSON(t, rr, &res)
	assert.True(t, res.Granted)

	t.Run("unknown card is a 404", func(t *testing.T) {
		rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/cards/balance/topup",
			map[string]any{"id": "NOPE", "amount": 50.0}))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListCardsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	for _, req := range []struct {
		path string
		body map[string]any
	}{
		{"/cards/trips", map[string]any{"id": "T1", "category": "student", "trips": 5}},
		{"/cards/balance", map[string]any{"id": "B1", "balance": 100.0}},
		{"/cards/period", map[string]any{"id": "P1", "category": "pupil", "period": "month"}},
	} {
		rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, req.path, req.body))
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/cards"))
	require.Equal(t, http.StatusOK, rr.Code)

	var cards []cardResponse
	testutil.DecodeJSON(t, rr, &cards)
	require.Len(t, cards, 3)

	variants := map[string]string{}
	for _, c := range cards {
		variants[c.ID] = c.Variant
	}
	assert.Equal(t, "trips", variants["T1"])
	assert.Equal(t, "balance", variants["B1"])
	assert.Equal(t, "period", variants["P1"])
}
