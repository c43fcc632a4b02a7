package skycombat

import "slices"

// prune removes the marked indices from items. Marks may repeat and arrive
// in any order; they are applied once each, from the highest index down.
func prune[T any](items []T, marked []int) []T {
	if len(marked) == 0 {
		return items
	}
	slices.Sort(marked)
	marked = slices.Compact(marked)
	for i := len(marked) - 1; i >= 0; i-- {
		idx := marked[i]
		if idx < 0 || idx >= len(items) {
			continue
		}
		items = slices.Delete(items, idx, idx+1)
	}
	return items
}
