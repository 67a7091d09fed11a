// Package net defines the canonical, index-normalized representation of a
// 1-safe Place/Transition Petri net: an ordered place list, transitions
// carrying pre/post index sets, and the initial marking in both tuple and
// bitmask form.
//
// What
//
//   - Normalize a parser's output (place id -> initial tokens, transition id
//     set, ordered arc list) into sorted place indices 0..|P|-1.
//   - Classify each arc by endpoint kind (place->transition or
//     transition->place); arcs between two nodes of the same kind are
//     silently ignored, matching the external parser's validation
//     boundary.
//   - Expose the firing relation (Enabled, Fire) used by the Bitmask BFS
//     Explorer, and the per-transition pre/post masks from which the
//     Symbolic Reachability Engine's transition-relation builder and the
//     ILP Oracle Loop's state-equation incidence matrix are derived.
//
// Why
//
//   - A single normalized Net is the only thing every other package
//     consumes; keeping index assignment canonical (sorted by place id)
//     makes bitmask, BDD variable, and ILP variable indices agree without
//     any translation layer.
//
// Determinism
//
//	Place indices are assigned by sorting place identifiers lexicographically.
//	Transition order (Net.Transitions) follows the same rule. Both are
//	stable across runs given the same input.
//
// Complexity (|P| places, |T| transitions, |A| arcs)
//
//   - Construction: O(|P| log |P| + |T| log |T| + |A|)
//   - Fire: O(1) (a fixed number of bitmask operations)
package net
