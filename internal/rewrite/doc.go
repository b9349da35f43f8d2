// Package rewrite adjusts comment depths and blank-line placement on a
// classified record sequence.
//
// The pipeline is three ordered passes, each a total function from one
// record slice to a new one. Order matters: spacing normalization assumes
// comments already carry their header-adjusted depths, and blank collapsing
// assumes all insertions have happened. Passes never mutate their input in
// place beyond depth reassignment on a cloned slice, which keeps each pass
// independently testable and avoids index drift between insertions and
// removals.
package rewrite
