// The demo runs a scripted day at a turnstile against the in-memory core:
// issue a handful of cards, swipe them until some run dry, then print the
// statistics summary.
package main

import (
	"context"
	"io"
	"log/slog"

	"faregate/internal/card"
	"faregate/internal/stats"
	"faregate/internal/turnstile"
)

func main() {
	registry := card.NewInMemoryRegistry()
	aggregator := stats.New()
	presenter := turnstile.NewConsolePresenter()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := turnstile.New(registry, aggregator, presenter, log, nil)
	ctx := context.Background()

	_ = service.IssuePeriodCard(ctx, "STU001", card.CategoryStudent, card.PeriodMonth)
	_ = service.IssuePeriodCard(ctx, "PUP001", card.CategoryPupil, card.PeriodTenDays)
	_ = service.IssueTripCard(ctx, "REG001", card.CategoryRegular, 5)
	_ = service.IssueTripCard(ctx, "STU002", card.CategoryStudent, 10)
	_ = service.IssueBalanceCard(ctx, "ACC001", 100.0)

	swipes := []string{
		"STU001",
		"PUP001",
		"REG001", "REG001", "REG001", "REG001", "REG001",
		"REG001", // denied, trips exhausted
		"ACC001",
		"ACC001",
		"UNKNOWN",
	}
	for _, id := range swipes {
		_, _ = service.Present(ctx, id)
	}

	service.ShowStatistics()
}
