// Package explore provides the Bitmask BFS Explorer: explicit forward
// reachability exploration of a 1-safe Petri net using bit-packed markings.
//
// What
//
//   - Starting from the net's initial marking, explore reachable markings
//     by firing every transition at every frontier marking until the
//     search queue is empty or an optional visited-set size limit is hit.
//   - Returns the visited set as a map[uint64]struct{} plus whether the
//     search was truncated by the limit.
//
// Why
//
//   - Ground truth for cross-validating the Symbolic Reachability Engine's
//     BDD-computed reachable set, and a practical bound for small instances
//     where the full BDD machinery is unnecessary overhead.
//
// Determinism
//
//	The returned set does not depend on transition firing order — only set
//	membership is guaranteed, so no ordering guarantee on transitions is
//	made or needed.
//
// Complexity
//
//	O(|R| * |T|) where R is the reachable set and T the transitions, since
//	each visited marking attempts every transition once.
package explore
