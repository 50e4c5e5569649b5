// Package cycle detects periodic repetition in an append-only sequence of
// snapshots and extrapolates far-future values from it.
//
// A Detector records one snapshot per step together with a multi-map from
// snapshot value to the indices where it occurred. A cycle is confirmed when
// a value has occurred at least MinOccurrences times and the last
// MinOccurrences of those indices are evenly spaced; the spacing is the
// period and the first index of that run is the cycle start.
//
// For exact snapshots (a full serialized state) two occurrences already
// prove a cycle: use WithMinOccurrences(2). For lossy snapshots (a score
// that different states can share) the default of 4 gives more confidence.
//
// Given a confirmed Cycle, any step n maps back onto recorded history with
// Cycle.Index, so the value after a billion steps is read from a few hundred
// recorded ones.
package cycle
