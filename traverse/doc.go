// Package traverse walks a grid.Grid by following per-tile connectivity
// rules, deduplicating on (position, heading) states.
//
// Walk is the general engine: a worklist seeded with one or more start
// states, an explicit visited set owned by the call, and a Rule that maps
// (tile, heading) to zero, one, or two outgoing headings. Because the grid is
// finite, the state space is at most W×H×4 and every walk terminates, even
// through mirror or pipe loops. Worklist order (FIFO or LIFO) changes only
// the visit Order, never the Visited set.
//
// TraceLoop is the single-loop variant: it follows a rule that yields exactly
// one successor per tile and stops when it comes back to the start position
// after having moved at least once.
//
// Complexity:
//
//   - Walk:      O(W×H×4) time and memory.
//   - TraceLoop: O(L) time and memory, L = loop length ≤ W×H.
package traverse
