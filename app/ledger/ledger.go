// Package ledger derives the merged expense view served to the portals:
// persisted rows plus synthesized placeholders for recurring obligations
// (building rent, per-teacher salary) still unrecorded in the current
// month, and the statistics computed over that merged view.
package ledger

import (
	"sort"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

// Merge concatenates persisted and virtual rows and orders the result by
// date descending. The sort is stable so equal dates keep their input
// order, which keeps rendering deterministic for a fixed input. Virtual
// rows are stamped with "today" and therefore surface near the top; that
// is intended for a needs-attention view.
func Merge(persisted, virtual []*models.Expense) []*models.Expense {
	merged := make([]*models.Expense, 0, len(persisted)+len(virtual))
	merged = append(merged, persisted...)
	merged = append(merged, virtual...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})
	return merged
}

// PendingTotal sums the amounts of every Pending row, virtual rows
// included. The server-side stats aggregate knows nothing about virtual
// rows, so this figure is the authoritative pending total for the merged
// view.
func PendingTotal(entries []*models.Expense) int64 {
	var total int64
	for _, e := range entries {
		if e.IsPending() {
			total += e.Amount
		}
	}
	return total
}

// Find returns the entry with the given ID, persisted or synthetic, or
// nil when absent.
func Find(entries []*models.Expense, id string) *models.Expense {
	for _, e := range entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}
