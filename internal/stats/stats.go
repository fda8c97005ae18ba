// Package stats aggregates turnstile outcomes: overall pass/denial totals and
// per-category breakdowns over the closed category enumeration.
package stats

import (
	"fmt"
	"strings"
	"sync"

	"faregate/internal/card"
)

// Aggregator counts passes and denials. Counters only ever increase and live
// for the whole process.
type Aggregator struct {
	mu        sync.RWMutex
	passes    int
	denials   int
	passByCat map[card.Category]int
	denyByCat map[card.Category]int
}

func New() *Aggregator {
	return &Aggregator{
		passByCat: make(map[card.Category]int),
		denyByCat: make(map[card.Category]int),
	}
}

// RecordPass counts one granted passage for the category.
func (a *Aggregator) RecordPass(cat card.Category) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.passes++
	a.passByCat[cat]++
}

// RecordDenial counts one refused passage for the category.
func (a *Aggregator) RecordDenial(cat card.Category) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.denials++
	a.denyByCat[cat]++
}

// Snapshot is a point-in-time copy of all counters. Mutating the maps does
// not affect the aggregator.
type Snapshot struct {
	TotalPasses       int                   `json:"total_passes"`
	TotalDenials      int                   `json:"total_denials"`
	PassesByCategory  map[card.Category]int `json:"passes_by_category"`
	DenialsByCategory map[card.Category]int `json:"denials_by_category"`
}

func (a *Aggregator) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return Snapshot{
		TotalPasses:       a.passes,
		TotalDenials:      a.denials,
		PassesByCategory:  copyCounts(a.passByCat),
		DenialsByCategory: copyCounts(a.denyByCat),
	}
}

// Summary renders a human-readable report: totals first, then the non-zero
// per-category counts for passes and denials in canonical category order.
func (a *Aggregator) Summary() string {
	snap := a.Snapshot()

	var sb strings.Builder
	sb.WriteString("=== Turnstile statistics ===\n")
	fmt.Fprintf(&sb, "Passes: %d\n", snap.TotalPasses)
	fmt.Fprintf(&sb, "Denials: %d\n", snap.TotalDenials)

	sb.WriteString("\n=== Passes by category ===\n")
	writeCounts(&sb, snap.PassesByCategory)

	sb.WriteString("\n=== Denials by category ===\n")
	writeCounts(&sb, snap.DenialsByCategory)

	return sb.String()
}

func writeCounts(sb *strings.Builder, counts map[card.Category]int) {
	for _, cat := range card.Categories {
		if n := counts[cat]; n > 0 {
			fmt.Fprintf(sb, "%s: %d\n", cat, n)
		}
	}
}

func copyCounts(src map[card.Category]int) map[card.Category]int {
	dst := make(map[card.Category]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
