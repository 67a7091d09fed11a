// Package symbolic implements the Symbolic Reachability Engine: a reduced,
// ordered Binary Decision Diagram (BDD) manager plus the forward
// image / fixed-point computation that builds R(x), the exact set of
// reachable markings of a 1-safe Petri net.
//
// What
//
//   - Manager is a from-scratch ROBDD implementation: a shared node table
//     (interning), apply-based AND/OR/NOT/XOR/DIFF, existential
//     quantification, variable renaming, and constant substitution.
//   - Ref is an opaque BDD node handle. It deliberately has no exported
//     integer conversion and supports none of Go's bitwise operators (it
//     is a struct, not a numeric type), so composing two Refs with `&`/`|`
//     simply fails to compile. Every Boolean combination MUST go through
//     Manager.And / Or / Not / Xor / Diff — raw bitwise composition of node
//     handles is the single most common way this kind of code silently
//     corrupts a BDD, so it is closed off at the type level rather than by
//     convention alone.
//   - Compute builds Init(x), the global transition relation Tr(x,y), and
//     iterates R := R ∨ Image(R) to a fixed point, returning a Reachable
//     handle usable as a reachability oracle (Reachable.Contains).
//
// Why
//
//   - The explicit Bitmask BFS Explorer does not scale past small state
//     spaces; the BDD represents an exponential state set in polynomial
//     node count for the structured nets this system targets.
//   - The oracle this package exports is consumed, read-only, by the ILP
//     Oracle Loop (package ilp) to confirm or refute ILP candidates.
//
// 1-safety in the transition relation
//
//	Each transition's guard is extended with ¬xᵢ for every pure-output
//	place i ∈ post(t)\pre(t), forbidding a firing that would produce into
//	an already-occupied, non-looped place. Omitting this guard would let
//	the computed reachable set overapproximate true 1-safe reachability;
//	this package always includes it.
//
// Manager discipline
//
//	The manager is single-threaded by design: node handle identity
//	(interning) is only meaningful if all operations on a given Manager
//	happen from one goroutine at a time. Parallel analyses of distinct
//	nets must use distinct Managers.
//
// Complexity
//
//	Bounded by BDD node count, not raw state-space size; degrades to
//	exponential node blowup on adversarial variable orderings, mitigated
//	here by an interleaved current/next-state variable ordering (x0, y0,
//	x1, y1, ...) that keeps transition-relation nodes small.
package symbolic
